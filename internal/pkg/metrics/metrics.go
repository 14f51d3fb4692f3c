package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the collectors the service exports: HTTP traffic and
// admission outcomes.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	admissionsTotal     *prometheus.CounterVec
	indexedReservations prometheus.GaugeFunc
}

func New(serviceName string, indexSize func() int) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route, and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		admissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "admissions_total",
			Help:        "Admission decisions by outcome and rejection kind.",
			ConstLabels: labels,
		}, []string{"outcome", "kind"}),
		indexedReservations: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "conflict_index_reservations",
			Help:        "Reservations currently held in the conflict index.",
			ConstLabels: labels,
		}, func() float64 { return float64(indexSize()) }),
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.admissionsTotal,
		m.indexedReservations,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveAdmission(outcome, kind string) {
	if kind == "" {
		kind = "none"
	}
	m.admissionsTotal.WithLabelValues(outcome, kind).Inc()
}
