// Package metrics exposes HTTP traffic and collection sizes to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bonrecords"

type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.GaugeVec
	refresh  prometheus.Counter
}

// New builds a private registry so several instances can coexist in tests.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Records currently held per collection.",
		}, []string{"collection"}),
		refresh: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_refresh_changes_total",
			Help:      "Records whose derived status changed during scheduled refreshes.",
		}),
	}
	m.registry.MustRegister(
		m.requests, m.duration, m.records, m.refresh,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records one sample per request, labelled by the matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// SetRecords matches the func(name, size) shape records.Repo.Watch expects.
func (m *Metrics) SetRecords(collection string, n int) {
	m.records.WithLabelValues(collection).Set(float64(n))
}

func (m *Metrics) AddRefreshed(n int) {
	if n > 0 {
		m.refresh.Add(float64(n))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
