// SPDX-License-Identifier: MIT

package dependence

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queryTotal counts solver queries issued by operation
	queryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvpoly_dependence_query_total",
		Help: "Total solver queries issued by the dependence analysis, by operation",
	}, []string{"operation"})

	// opDuration tracks the latency of one analysis call
	opDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvpoly_dependence_duration_seconds",
		Help:    "Dependence analysis call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	}, []string{"operation"})

	// prunedTotal counts dependences removed by PruneTransitively
	prunedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvpoly_dependence_pruned_total",
		Help: "Total dependences removed, by reason",
	}, []string{"reason"})

	// violationTotal counts violated dependences found by CheckViolations
	violationTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lvpoly_dependence_violation_total",
		Help: "Total violated dependences detected",
	})
)
