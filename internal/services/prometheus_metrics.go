package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	companiesCreated       prometheus.Counter
	companiesCreatedFailed *prometheus.CounterVec
	companiesDeleted       prometheus.Counter
	companyCreateDuration  prometheus.Histogram
	transfersCreated       *prometheus.CounterVec
	transfersCreatedFailed *prometheus.CounterVec
	transferStatusUpdates  *prometheus.CounterVec
	transferCreateDuration prometheus.Histogram
	transferAmount         prometheus.Histogram
	reportRequests         *prometheus.CounterVec
}

var (
	prometheusMetricsOnce sync.Once
	prometheusMetrics     *PrometheusMetrics
)

// NewPrometheusMetrics returns the process-wide metrics recorder. Collectors
// register with the default registry exactly once.
func NewPrometheusMetrics() MetricsRecorderInterface {
	prometheusMetricsOnce.Do(func() {
		prometheusMetrics = newPrometheusMetrics()
	})
	return prometheusMetrics
}

func newPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		companiesCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "companies_created_total",
				Help: "Total number of companies registered",
			},
		),
		companiesCreatedFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "companies_created_failed_total",
				Help: "Total number of rejected company registrations",
			},
			[]string{"reason"},
		),
		companiesDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "companies_deleted_total",
				Help: "Total number of companies deleted",
			},
		),
		companyCreateDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "company_create_duration_milliseconds",
				Help:    "Company registration duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transfersCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_created_total",
				Help: "Total number of transfers created",
			},
			[]string{"status"},
		),
		transfersCreatedFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_created_failed_total",
				Help: "Total number of rejected transfer creations",
			},
			[]string{"reason"},
		),
		transferStatusUpdates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfer_status_updates_total",
				Help: "Total number of transfer status updates",
			},
			[]string{"status"},
		),
		transferCreateDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_create_duration_milliseconds",
				Help:    "Transfer creation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		reportRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_requests_total",
				Help: "Total number of month-window report requests",
			},
			[]string{"report"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "company_created":
		m.companiesCreated.Inc()
	case "company_created_failed":
		if reason := tags["reason"]; reason != "" {
			m.companiesCreatedFailed.WithLabelValues(reason).Inc()
		}
	case "company_deleted":
		m.companiesDeleted.Inc()
	case "transfer_created":
		if status := tags["status"]; status != "" {
			m.transfersCreated.WithLabelValues(status).Inc()
		} else {
			m.transfersCreated.WithLabelValues("pending").Inc()
		}
	case "transfer_created_failed":
		if reason := tags["reason"]; reason != "" {
			m.transfersCreatedFailed.WithLabelValues(reason).Inc()
		}
	case "transfer_status_updated":
		if status := tags["status"]; status != "" {
			m.transferStatusUpdates.WithLabelValues(status).Inc()
		}
	case "report_requested":
		if report := tags["report"]; report != "" {
			m.reportRequests.WithLabelValues(report).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "company_create":
		m.companyCreateDuration.Observe(float64(duration.Milliseconds()))
	case "transfer_create":
		m.transferCreateDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "transfer_amount" {
		m.transferAmount.Observe(value)
	}
}
