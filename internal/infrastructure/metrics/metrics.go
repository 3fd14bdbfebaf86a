package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DisputeMetrics covers the voting and settlement flow.
type DisputeMetrics struct {
	DisputesOpenedTotal prometheus.Counter
	JurorsSelectedTotal prometheus.Counter

	// Votes, labelled by side (buyer/seller)
	VotesSubmittedTotal *prometheus.CounterVec

	// Resolutions, labelled by outcome and by what triggered them
	// (vote/sweep)
	DisputesResolvedTotal  *prometheus.CounterVec
	DisputesReopenedTotal  prometheus.Counter
	SettlementsFailedTotal prometheus.Counter

	SweepRunsTotal     prometheus.Counter
	SweepFailuresTotal prometheus.Counter
	SweepDuration      prometheus.Histogram
}

func NewDisputeMetrics(reg prometheus.Registerer) *DisputeMetrics {
	factory := promauto.With(reg)
	return &DisputeMetrics{
		DisputesOpenedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispute_opened_total",
			Help: "Disputes opened",
		}),
		JurorsSelectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispute_jurors_selected_total",
			Help: "Jurors assigned across all disputes",
		}),
		VotesSubmittedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dispute_votes_submitted_total",
			Help: "Votes recorded, by side",
		}, []string{"side"}),
		DisputesResolvedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dispute_resolved_total",
			Help: "Disputes resolved, by outcome and trigger",
		}, []string{"outcome", "trigger"}),
		DisputesReopenedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispute_reopened_total",
			Help: "Voting disputes reopened after a zero-vote timeout",
		}),
		SettlementsFailedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispute_settlements_failed_total",
			Help: "Settlement attempts that returned an error",
		}),
		SweepRunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispute_sweep_runs_total",
			Help: "Expired-voting sweep passes",
		}),
		SweepFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dispute_sweep_failures_total",
			Help: "Disputes the sweep failed to process",
		}),
		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dispute_sweep_duration_seconds",
			Help:    "Duration of one sweep pass",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
