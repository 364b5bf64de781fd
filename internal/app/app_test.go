package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-catalog/internal/config"
	"github.com/adanyl0v/go-todo-catalog/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewLogWriter(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		env       string
		wantLevel zerolog.Level
		console   bool
	}{
		{env: config.EnvDev, wantLevel: zerolog.DebugLevel},
		{env: config.EnvProd, wantLevel: zerolog.InfoLevel},
		{env: config.EnvLocal, wantLevel: zerolog.TraceLevel, console: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := newLogWriter(tt.env, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, isConsole := w.(zerolog.ConsoleWriter)
			assert.Equal(t, tt.console, isConsole)
		})
	}

	_, err := newLogWriter("staging", &bytes.Buffer{})
	assert.ErrorIs(t, err, config.ErrUnknownEnv)
}

func TestNewPoolConfig(t *testing.T) {
	poolCfg, err := newPoolConfig(config.PostgresConfig{
		Host:           "localhost",
		Port:           5432,
		Username:       "todo",
		Password:       "secret",
		Database:       "todos",
		SSLMode:        "disable",
		ConnectTimeout: 3 * time.Second,
		MaxConns:       8,
		MinConns:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(8), poolCfg.MaxConns)
	assert.Equal(t, int32(1), poolCfg.MinConns)
	assert.Equal(t, 3*time.Second, poolCfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, "todos", poolCfg.ConnConfig.Database)
	assert.Equal(t, "todo", poolCfg.ConnConfig.User)
}

func TestNewCORSConfig(t *testing.T) {
	all := newCORSConfig([]string{"*"})
	assert.True(t, all.AllowAllOrigins)
	assert.Empty(t, all.AllowOrigins)

	some := newCORSConfig([]string{"https://a.example", "https://b.example"})
	assert.False(t, some.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, some.AllowOrigins)
}

func TestRouterServesMetrics(t *testing.T) {
	globalLogger = zerolog.Nop()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	router := newRouter(config.HTTPConfig{CORSAllowOrigins: []string{"*"}}, m, registry, nil)

	req := httptest.NewRequest(http.MethodGet, "/todos/abc", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(),
		`todo_catalog_http_requests_total{method="GET",path="/todos/:id",status="400"} 1`)
	assert.Contains(t, w.Body.String(),
		`todo_catalog_http_requests_total{method="GET",path="unmatched",status="404"} 1`)
}
