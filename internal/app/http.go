package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adanyl0v/go-todo-catalog/internal/config"
	"github.com/adanyl0v/go-todo-catalog/internal/delivery/http/v1"
	"github.com/adanyl0v/go-todo-catalog/internal/metrics"
	"github.com/adanyl0v/go-todo-catalog/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)
	metrics.RegisterPoolStats(registry, postgresPoolStats)

	router := newRouter(httpCfg, m, registry, services.NewInstrumentedDB(globalPostgresPool, m))

	server := &http.Server{
		Addr:         net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:      router,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	globalLogger.Info().
		Str("signal", sig.String()).
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func newRouter(
	httpCfg config.HTTPConfig,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	db services.DB,
) *gin.Engine {
	router := gin.New()
	// Handlers pass *gin.Context to the services, so it has to carry the
	// request's cancellation.
	router.ContextWithFallback = true

	v1Handler := v1.New(globalLogger, globalPostgresPool, v1.Services{
		Todos:       services.NewTodoService(globalLogger, db),
		Users:       services.NewUserService(globalLogger, db),
		Categories:  services.NewCategoryService(globalLogger, db),
		TodoLogs:    services.NewTodoLogService(globalLogger, db),
		TodoDetails: services.NewTodoDetailService(globalLogger, db),
	})

	// Recovery sits inside the logging and metrics middlewares so that a
	// panic is still recorded as a 500.
	router.Use(
		v1Handler.HandleRequestID,
		v1Handler.HandleAccessLog,
		m.Middleware(),
		gin.CustomRecovery(v1Handler.HandleRecovery),
		cors.New(newCORSConfig(httpCfg.CORSAllowOrigins)),
	)
	router.NoRoute(v1Handler.HandleNoRoute)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	v1.Register(router, v1Handler)
	return router
}

func newCORSConfig(allowOrigins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowOrigins
	}
	return corsCfg
}
