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

const namespace = "remittance_advisor"

// Metrics holds all Prometheus collectors for the service.
// Each instance owns its registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLookupsTotal    *prometheus.CounterVec
	rateLookupDuration  *prometheus.HistogramVec
	decisionsTotal      *prometheus.CounterVec
	lastDeviation       *prometheus.GaugeVec
}

// New creates and registers the service metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		rateLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_lookups_total",
				Help:      "Total number of upstream rate lookups by outcome",
			},
			[]string{"provider", "kind", "outcome"},
		),
		rateLookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rate_lookup_duration_seconds",
				Help:      "Upstream rate lookup latency in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"provider", "kind"},
		),
		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "decisions_total",
				Help:      "Total number of decision requests by result",
			},
			[]string{"base", "quote", "result"},
		),
		lastDeviation: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_percent_deviation",
				Help:      "Percent deviation of the current rate from the trailing average, per pair",
			},
			[]string{"base", "quote"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.rateLookupsTotal,
		m.rateLookupDuration,
		m.decisionsTotal,
		m.lastDeviation,
	)

	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request counts and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveRateLookup records one upstream lookup.
func (m *Metrics) ObserveRateLookup(provider, kind string, elapsed time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.rateLookupsTotal.WithLabelValues(provider, kind, outcome).Inc()
	m.rateLookupDuration.WithLabelValues(provider, kind).Observe(elapsed.Seconds())
}

// RecordDecision records the outcome of one decision request.
// result is one of "send", "wait" or "error".
func (m *Metrics) RecordDecision(base, quote, result string) {
	m.decisionsTotal.WithLabelValues(base, quote, result).Inc()
}

// SetDeviation publishes the latest deviation computed for a pair.
func (m *Metrics) SetDeviation(base, quote string, pct float64) {
	m.lastDeviation.WithLabelValues(base, quote).Set(pct)
}
