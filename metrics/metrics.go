// Package metrics exposes Prometheus counters for the HTTP surface.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the request counters for the API.
type Metrics struct {
	RequestsTotal *prometheus.CounterVec // labels: path, code_class (2xx/4xx/5xx)
}

// NewMetrics creates and registers the metrics with the default registry.
func NewMetrics() *Metrics {
	m := newCollectors()
	prometheus.MustRegister(m.RequestsTotal)
	return m
}

// NewMetricsForTesting creates unregistered collectors so parallel tests
// do not hit "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}

func newCollectors() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "suraksha",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status class.",
		}, []string{"path", "code_class"}),
	}
}

// Middleware counts every completed request against its route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		class := strconv.Itoa(c.Writer.Status()/100) + "xx"
		m.RequestsTotal.WithLabelValues(path, class).Inc()
	}
}
