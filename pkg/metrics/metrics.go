package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors exposed by the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BackendCallsTotal   *prometheus.CounterVec
	BackendCallDuration *prometheus.HistogramVec
	CacheHitsTotal      *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route, code string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveBackendCall records one call to the hotel backend.
func (m *Metrics) ObserveBackendCall(operation, outcome string, seconds float64) {
	m.BackendCallsTotal.WithLabelValues(operation, outcome).Inc()
	m.BackendCallDuration.WithLabelValues(operation).Observe(seconds)
}

// ObserveCacheLookup records one search-cache lookup result (hit/miss/error).
func (m *Metrics) ObserveCacheLookup(result string) {
	m.CacheHitsTotal.WithLabelValues(result).Inc()
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests handled, by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "code"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency, by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BackendCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_backend_calls_total",
			Help:        "Calls to the hotel backend, by operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		BackendCallDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "hotel_backend_call_duration_seconds",
			Help:        "Hotel backend call latency, by operation.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		CacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "search_cache_requests_total",
			Help:        "Hotel search cache lookups, by result (hit/miss/error).",
			ConstLabels: constLabels,
		}, []string{"result"}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Number of live guest sessions held in memory.",
			ConstLabels: constLabels,
		}),
	}
}
