// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo_catalog"

// unmatchedRoute labels requests that did not hit any route, so that
// arbitrary paths never become label values.
const unmatchedRoute = "unmatched"

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DatabaseQueryDuration *prometheus.HistogramVec
	DatabaseQueryErrors   *prometheus.CounterVec
}

func New(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		DatabaseQueryDuration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "database_query_duration_seconds",
				Help:      "Database query duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
		DatabaseQueryErrors: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "database_query_errors_total",
				Help:      "Total number of failed database queries",
			},
			[]string{"operation"},
		),
	}
}

// ObserveQuery records one statement. operation is the leading SQL keyword.
func (m *Metrics) ObserveQuery(operation string, d time.Duration, err error) {
	m.DatabaseQueryDuration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil {
		m.DatabaseQueryErrors.WithLabelValues(operation).Inc()
	}
}

// Middleware counts and times every request by its route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
	}
}

type PoolStats struct {
	TotalConns    int32
	IdleConns     int32
	AcquiredConns int32
	MaxConns      int32
}

// RegisterPoolStats exports the connection pool counters. stat is called
// on every scrape.
func RegisterPoolStats(registerer prometheus.Registerer, stat func() PoolStats) {
	gauge := func(name, help string, value func(PoolStats) int32) {
		promauto.With(registerer).NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      name,
				Help:      help,
			},
			func() float64 {
				return float64(value(stat()))
			},
		)
	}

	gauge("database_connections_open", "Number of open database connections",
		func(s PoolStats) int32 { return s.TotalConns })
	gauge("database_connections_idle", "Number of idle database connections",
		func(s PoolStats) int32 { return s.IdleConns })
	gauge("database_connections_in_use", "Number of database connections in use",
		func(s PoolStats) int32 { return s.AcquiredConns })
	gauge("database_connections_max", "Maximum size of the database pool",
		func(s PoolStats) int32 { return s.MaxConns })
}
