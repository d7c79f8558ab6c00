// Package obs registers the service's Prometheus metrics.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sdr_datasets_generated_total",
		Help: "Datasets generated from a seed.",
	})

	CSVImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sdr_csv_imports_total",
		Help: "CSV import attempts by result.",
	}, []string{"status"})

	CSVExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sdr_csv_exports_total",
		Help: "CSV exports served.",
	})

	DatasetEvents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sdr_dataset_events",
		Help: "Events in the current in-memory dataset.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sdr_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
