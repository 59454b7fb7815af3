// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

// Matchmaking metrics.
var (
	GunaMilanTotalPoints = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guna_milan_total_points",
			Help:    "Ashtakoot total (out of 36) of computed matches",
			Buckets: []float64{6, 12, 18, 21, 25, 28, 32, 36},
		},
	)

	GunaMilanVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guna_milan_verdicts_total",
			Help: "Computed matches by final verdict",
		},
		[]string{"favorable"},
	)

	FactDefaultsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fact_defaults_applied_total",
			Help: "Astrological facts that were missing or unrecognised and fell back to a default",
		},
		[]string{"field"},
	)

	ReportCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guna_milan_report_cache_requests_total",
			Help: "Report cache lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)
)
