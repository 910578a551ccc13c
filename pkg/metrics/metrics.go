package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics содержит Prometheus-коллекторы сервиса
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	ActiveSessions  prometheus.Gauge
	StaleResponses  *prometheus.CounterVec
	BackendRequests *prometheus.CounterVec
}

// New создает и регистрирует коллекторы метрик в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests currently being served",
			ConstLabels: constLabels,
		}),

		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "configurator_active_sessions",
			Help:        "Number of live configurator sessions",
			ConstLabels: constLabels,
		}),

		// Отброшенные устаревшие ответы - нормальный исход конкурентности,
		// но всплеск может указывать на деградацию бэкенда
		StaleResponses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "configurator_stale_responses_total",
			Help:        "Async responses discarded because request parameters no longer match the draft",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		BackendRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "configurator_backend_requests_total",
			Help:        "Requests issued to the booking backend",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
	}
}
