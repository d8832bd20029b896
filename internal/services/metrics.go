package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msecli_analyses_total",
		Help: "Number of analysis runs started.",
	})

	analysisFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "msecli_analysis_failures_total",
		Help: "Number of analysis runs that failed to load a workbook.",
	})

	analysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "msecli_analysis_duration_seconds",
		Help:    "Wall time of completed analysis runs.",
		Buckets: prometheus.DefBuckets,
	})
)
