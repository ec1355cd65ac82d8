package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	upstreamFetches  *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	exportsTotal     *prometheus.CounterVec
	exportDuration   prometheus.Histogram
	exportRows       prometheus.Histogram
	listRequests     *prometheus.CounterVec
	listResultSize   prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		upstreamFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_fetches_total",
				Help: "Total number of upstream dashboard fetches",
			},
			[]string{"status"},
		),
		upstreamDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_fetch_duration_milliseconds",
				Help:    "Upstream fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "csv_exports_total",
				Help: "Total number of CSV exports generated",
			},
			[]string{"status"},
		),
		exportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "csv_export_duration_milliseconds",
				Help:    "CSV export generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportRows: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "csv_export_rows",
				Help:    "Number of rows per generated CSV export",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		listRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_list_requests_total",
				Help: "Total number of transaction listing requests",
			},
			[]string{"status"},
		),
		listResultSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_list_result_size",
				Help: "Size of the most recent filtered result set",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "upstream.fetch":
		m.upstreamFetches.WithLabelValues(status).Inc()
	case "export.generated":
		m.exportsTotal.WithLabelValues(status).Inc()
	case "transactions.list":
		m.listRequests.WithLabelValues(status).Inc()
	}
}

func (m *PrometheusMetrics) RecordDuration(name string, duration time.Duration) {
	switch name {
	case "upstream.fetch":
		m.upstreamDuration.Observe(float64(duration.Milliseconds()))
	case "export.generate":
		m.exportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64) {
	switch name {
	case "export.rows":
		m.exportRows.Observe(value)
	case "transactions.result_size":
		m.listResultSize.Set(value)
	}
}
