// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchRunsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_runs_completed_total",
			Help: "Total number of match runs completed by task type",
		},
		[]string{"task_type"},
	)

	MatchRunsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_runs_failed_total",
			Help: "Total number of match runs failed by task type and error code",
		},
		[]string{"task_type", "error_code"},
	)

	MatchPairsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_pairs_scored_total",
			Help: "Total number of (job, candidate) pairs scored, by outcome",
		},
		[]string{"outcome"}, // created, updated
	)

	MatchRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "match_run_duration_seconds",
			Help: "Duration of match runs in seconds",
		},
		[]string{"task_type"},
	)
)
