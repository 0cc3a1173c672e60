// SPDX-License-Identifier: MIT

package pip

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("lvpoly.pip")
	meter  = otel.Meter("lvpoly.pip")
)

var (
	solveLatency metric.Float64Histogram
	solveTotal   metric.Int64Counter
	pivotTotal   metric.Int64Counter
	cutTotal     metric.Int64Counter
	branchTotal  metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics creates the instruments once. Safe to call repeatedly.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		solveLatency, err = meter.Float64Histogram(
			"pip_solve_duration_seconds",
			metric.WithDescription("Duration of top-level parametric solves"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveTotal, err = meter.Int64Counter(
			"pip_solve_total",
			metric.WithDescription("Total number of top-level solves"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		pivotTotal, err = meter.Int64Counter(
			"pip_pivot_total",
			metric.WithDescription("Total number of simplex pivots"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cutTotal, err = meter.Int64Counter(
			"pip_cut_total",
			metric.WithDescription("Total number of integer cuts by kind"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		branchTotal, err = meter.Int64Counter(
			"pip_branch_total",
			metric.WithDescription("Total number of parametric case splits"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})

	return metricsErr
}

// stats counts solver events of one top-level solve.
type stats struct {
	pivots, directCuts, paramCuts, branches, tests int64
}

func startSolveSpan(ctx context.Context, id string, nvar, nparam int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pip.Solve",
		trace.WithAttributes(
			attribute.String("pip.solve_id", id),
			attribute.Int("pip.nvar", nvar),
			attribute.Int("pip.nparam", nparam),
		),
	)
}

// finishSolveSpan records the outcome on span and ends it.
func finishSolveSpan(span trace.Span, st stats, err error) {
	span.SetAttributes(
		attribute.Int64("pip.pivots", st.pivots),
		attribute.Int64("pip.cuts", st.directCuts+st.paramCuts),
		attribute.Int64("pip.branches", st.branches),
		attribute.Int64("pip.compat_tests", st.tests),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func recordSolveMetrics(ctx context.Context, d time.Duration, st stats, err error) {
	if initMetrics() != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.Bool("success", err == nil))
	solveLatency.Record(ctx, d.Seconds(), attrs)
	solveTotal.Add(ctx, 1, attrs)
	pivotTotal.Add(ctx, st.pivots)
	cutTotal.Add(ctx, st.directCuts, metric.WithAttributes(attribute.String("kind", "direct")))
	cutTotal.Add(ctx, st.paramCuts, metric.WithAttributes(attribute.String("kind", "parametric")))
	branchTotal.Add(ctx, st.branches)
}
