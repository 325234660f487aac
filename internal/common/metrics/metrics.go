package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_total",
			Help: "Total number of analysis requests by category",
		},
		[]string{"item_type"},
	)

	AnalysesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_requests_failed_total",
			Help: "Total number of rejected analysis requests",
		},
		[]string{"error_code"},
	)

	FallbackScores = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_fallback_scores_total",
			Help: "Total number of analyses scored with the unknown-brand fallback",
		},
	)

	ComparisonBatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comparison_batches_total",
			Help: "Total number of comparison batches by outcome",
		},
		[]string{"outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "analysis_duration_seconds",
			Help: "Duration of a single analysis pipeline run in seconds",
		},
	)

	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reloads by result",
		},
		[]string{"result"},
	)
)
