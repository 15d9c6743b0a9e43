package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	SavesTotal            *prometheus.CounterVec
	JustificationPrompts  prometheus.Counter
	JustificationCancels  prometheus.Counter
	SelectionExportsTotal prometheus.Counter

	// Validation Metrics
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditkeeper_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "creditkeeper_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "creditkeeper_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		SavesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditkeeper_saves_total",
				Help: "Customer save requests by outcome",
			},
			[]string{"outcome"},
		),
		JustificationPrompts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "creditkeeper_justification_prompts_total",
				Help: "Saves suspended pending a credit-change justification",
			},
		),
		JustificationCancels: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "creditkeeper_justification_cancels_total",
				Help: "Justification prompts dismissed without committing",
			},
		),
		SelectionExportsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "creditkeeper_selection_exports_total",
				Help: "Spreadsheet exports of the analytics selection",
			},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditkeeper_validation_errors_total",
				Help: "Request validation failures by field and rule",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordSave(outcome string) {
	m.SavesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordJustificationPrompt() {
	m.JustificationPrompts.Inc()
}

func (m *Metrics) RecordJustificationCancel() {
	m.JustificationCancels.Inc()
}

func (m *Metrics) RecordExport() {
	m.SelectionExportsTotal.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
