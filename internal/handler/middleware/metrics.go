package middleware

import (
	"strconv"
	"time"

	"hotel-ops/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewMetrics(cfg config.MetricsConfig) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status code.",
			ConstLabels: prometheus.Labels{"service": cfg.ServiceName},
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: prometheus.Labels{"service": cfg.ServiceName},
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	prometheus.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// Middleware records per-route counters and latency. The route template
// (":id" form) is used as the label, not the raw path, to keep cardinality
// bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
