package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RecordsProcessed *prometheus.CounterVec
	LookupErrors     prometheus.Counter
	LookupSeconds    *prometheus.HistogramVec
	ActiveWorkers    prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RecordsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "addrpipe_records_processed_total",
			Help: "Total number of processed owner records.",
		}, []string{"status"}),
		LookupErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "addrpipe_lookup_errors_total",
			Help: "Total number of errors received from the people-search provider.",
		}),
		LookupSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "addrpipe_lookup_request_duration_seconds",
			Help:    "Duration of requests to the people-search provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "addrpipe_active_workers",
			Help: "Current number of active workers processing records.",
		}),
	}
}
