package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeFieldTooLong = "field_too_long"
	OutcomeError        = "error"
)

// Metrics owns a dedicated registry. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	payloads *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	payloads := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_payloads_total",
			Help: "Total number of PIX payload build attempts by outcome",
		},
		[]string{"outcome"},
	)

	registry.MustRegister(requests, duration, payloads)

	return &Metrics{
		registry: registry,
		requests: requests,
		duration: duration,
		payloads: payloads,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	statusClass := strconv.Itoa(status/100) + "xx"
	m.requests.WithLabelValues(method, path, statusClass).Inc()
	m.duration.WithLabelValues(method, path, statusClass).Observe(d.Seconds())
}

func (m *Metrics) PayloadBuilt(outcome string) {
	if m == nil {
		return
	}
	m.payloads.WithLabelValues(outcome).Inc()
}
