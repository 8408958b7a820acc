package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh outcome label values.
const (
	OutcomeFull     = "full"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)

// RefreshMetrics holds all metrics for the refresh cycle.
type RefreshMetrics struct {
	// RefreshesTotal counts refresh cycles by outcome (full, degraded, failed).
	RefreshesTotal *prometheus.CounterVec

	// RefreshDuration observes end-to-end refresh latency.
	RefreshDuration prometheus.Histogram

	// CountriesReconciled tracks the record count of the last refresh.
	CountriesReconciled prometheus.Gauge
}

// NewRefreshMetrics registers and returns the refresh metric set.
func NewRefreshMetrics(reg prometheus.Registerer) *RefreshMetrics {
	factory := promauto.With(reg)

	return &RefreshMetrics{
		RefreshesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "country_refreshes_total",
			Help: "Total refresh cycles by outcome.",
		}, []string{"outcome"}),
		RefreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "country_refresh_duration_seconds",
			Help:    "End-to-end refresh cycle duration.",
			Buckets: prometheus.DefBuckets,
		}),
		CountriesReconciled: factory.NewGauge(prometheus.GaugeOpts{
			Name: "country_records_reconciled",
			Help: "Number of records touched by the last refresh.",
		}),
	}
}
