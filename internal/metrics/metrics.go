// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "fetch_total",
			Help:      "Weather lookups by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "weather_lookup",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of weather lookups, including failed ones.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	preferenceWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "preference_write_failures_total",
			Help:      "Display-mode writes the preference store rejected.",
		},
	)
)

// ObserveFetch records one completed lookup.
func ObserveFetch(provider, outcome string, elapsed time.Duration) {
	fetchTotal.WithLabelValues(provider, outcome).Inc()
	fetchDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}

// PreferenceWriteFailed counts a failed display-mode write.
func PreferenceWriteFailed() {
	preferenceWriteFailures.Inc()
}
