package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeBackend      = "backend"
	OutcomeStatusError  = "backend_error"
	OutcomeUnreachable  = "backend_unreachable"
	OutcomeMissingField = "missing_field"
)

type Metrics struct {
	Registry      *prometheus.Registry
	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	ExportsTotal  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		FetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triphorium",
			Name:      "energy_fetch_total",
			Help:      "Energy dataset resolutions by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "triphorium",
			Name:      "energy_fetch_duration_seconds",
			Help:      "Time spent calling the energy backend.",
			Buckets:   prometheus.DefBuckets,
		}),
		ExportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "triphorium",
			Name:      "report_exports_total",
			Help:      "PDF report exports by result.",
		}, []string{"result"}),
	}

	m.Registry.MustRegister(m.FetchTotal, m.FetchDuration, m.ExportsTotal)
	return m
}
