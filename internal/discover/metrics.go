package discover

import "github.com/prometheus/client_golang/prometheus"

// Prometheus sweep metrics.
var (
	hostsProbedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomscout_hosts_probed_total",
			Help: "Total number of hosts probed, by sweep phase.",
		},
		[]string{"phase"},
	)
	endpointsFoundTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomscout_endpoints_found_total",
			Help: "Total number of responsive devices recorded, by type.",
		},
		[]string{"type"},
	)
	sweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomscout_sweep_duration_seconds",
			Help:    "Wall clock duration of a full two-phase sweep.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)
	extractDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomscout_extract_duration_seconds",
			Help:    "Duration of per-endpoint detail extraction.",
			Buckets: prometheus.DefBuckets,
		},
	)
	classifyFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "roomscout_classify_failures_total",
			Help: "Total number of detail extractions that failed.",
		},
	)
)

func init() {
	prometheus.MustRegister(hostsProbedTotal)
	prometheus.MustRegister(endpointsFoundTotal)
	prometheus.MustRegister(sweepDuration)
	prometheus.MustRegister(extractDuration)
	prometheus.MustRegister(classifyFailuresTotal)
}
