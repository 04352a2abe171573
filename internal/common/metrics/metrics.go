// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocator_selections_total",
			Help: "Total number of applicants selected, by mode (manual/auto)",
		},
		[]string{"mode"},
	)

	RejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "allocator_rejections_total",
			Help: "Total number of applicants rejected",
		},
	)

	AllocationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "allocator_auto_allocation_runs_total",
			Help: "Total number of auto-allocation runs",
		},
	)

	TieBreaksIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "allocator_tiebreaks_issued_total",
			Help: "Total number of tie-break test references issued",
		},
	)

	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "allocator_scoring_duration_seconds",
			Help: "Duration of scoring a posting's applicant pool",
		},
	)

	EmailsQueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocator_emails_queued_total",
			Help: "Total number of emails handed to the dispatcher, by kind",
		},
		[]string{"kind"},
	)
)
