// SPDX-License-Identifier: MIT

package dependence

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/pip"
)

// Option configures an analysis call.
type Option func(*Options)

// Options holds the analysis settings shared by every entry point.
type Options struct {
	// Precision is forwarded to every solver call.
	Precision exact.Precision

	// MaxTape bounds each solver tape; <= 0 means unbounded.
	MaxTape int

	// MaxCuts bounds the cuts along one solver branch; <= 0 removes the bound
	// for the solve itself. Defaults to pip.DefaultMaxCuts.
	MaxCuts int

	// Logger receives debug events; defaults to a discarding logger.
	Logger *slog.Logger

	// Ctx carries the trace context forwarded to the solver.
	Ctx context.Context
}

// DefaultOptions returns arbitrary precision, no tape bound, the default cut
// budget and silent logging.
func DefaultOptions() Options {
	return Options{
		Precision: exact.Arbitrary,
		MaxCuts:   pip.DefaultMaxCuts,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ctx:       context.Background(),
	}
}

// WithPrecision selects the solver integer backend.
func WithPrecision(p exact.Precision) Option { return func(o *Options) { o.Precision = p } }

// WithMaxTape bounds each solver tape.
func WithMaxTape(n int) Option { return func(o *Options) { o.MaxTape = n } }

// WithMaxCuts bounds the cuts of each solver branch.
func WithMaxCuts(n int) Option { return func(o *Options) { o.MaxCuts = n } }

// WithLogger installs a structured logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the trace context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// solverOptions translates o into pip options for an integer query over
// unknowns of any sign.
func (o Options) solverOptions(extra ...pip.Option) []pip.Option {
	out := []pip.Option{
		pip.WithInteger(),
		pip.WithUnrestrictedVars(),
		pip.WithPrecision(o.Precision),
		pip.WithMaxTape(o.MaxTape),
		pip.WithMaxCuts(o.MaxCuts),
		pip.WithLogger(o.Logger),
		pip.WithContext(o.Ctx),
	}

	return append(out, extra...)
}
