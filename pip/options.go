// SPDX-License-Identifier: MIT

package pip

import (
	"context"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvpoly/exact"
)

const (
	// DefaultMaxTape leaves the solution tape unbounded.
	DefaultMaxTape = 0

	// DefaultMaxCuts bounds the cuts along one branch of the tree; the whole
	// tree may spend eight times as many.
	DefaultMaxCuts = 128

	// NoBigParam marks the absence of a big parameter.
	NoBigParam = -1
)

// Option configures a Solve call.
type Option func(*Options)

// Options holds the solver flags. Zero values are valid except BigParam,
// which DefaultOptions sets to NoBigParam.
type Options struct {
	// Integer requests integer unknowns (Gomory cuts); otherwise the rational
	// lexicographic optimum is returned.
	Integer bool

	// Maximize returns the lexicographic maximum instead of the minimum.
	Maximize bool

	// UnrestrictedParams drops the p >= 0 assumption.
	UnrestrictedParams bool

	// UnrestrictedVars drops the x >= 0 assumption.
	UnrestrictedVars bool

	// Simplify collapses If(Nil, Nil) subtrees.
	Simplify bool

	// Dual attaches to every leaf the reduced cost of the first unknown with
	// respect to each domain constraint.
	Dual bool

	// BigParam is the index of a user parameter playing the role of an
	// arbitrarily large constant, or NoBigParam.
	BigParam int

	// Precision selects the integer backend.
	Precision exact.Precision

	// DeepestCut sharpens direct cuts with a Bezout multiplier (default on).
	DeepestCut bool

	// MaxTape bounds the number of tape records; exceeding it fails the solve
	// with quast.ErrTapeCapacity.
	MaxTape int

	// MaxCuts bounds the cuts applied along one branch, and eight times it the
	// cuts of the whole tree; exceeding either yields an Error leaf. <= 0 removes the bound for the solve itself; compatibility
	// tests stay bounded.
	MaxCuts int

	// Logger receives debug events; defaults to a discarding logger.
	Logger *slog.Logger

	// Ctx carries the trace context for spans and metrics.
	Ctx context.Context
}

// DefaultOptions returns rational lexicographic minimisation with
// non-negative unknowns and parameters, arbitrary precision, deepest cuts,
// an unbounded tape and DefaultMaxCuts.
func DefaultOptions() Options {
	return Options{
		BigParam:   NoBigParam,
		Precision:  exact.Arbitrary,
		DeepestCut: true,
		MaxTape:    DefaultMaxTape,
		MaxCuts:    DefaultMaxCuts,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ctx:        context.Background(),
	}
}

// WithInteger requests integer unknowns.
func WithInteger() Option { return func(o *Options) { o.Integer = true } }

// WithMaximize requests the lexicographic maximum.
func WithMaximize() Option { return func(o *Options) { o.Maximize = true } }

// WithUnrestrictedParams lets parameters take negative values.
func WithUnrestrictedParams() Option { return func(o *Options) { o.UnrestrictedParams = true } }

// WithUnrestrictedVars lets unknowns take negative values.
func WithUnrestrictedVars() Option { return func(o *Options) { o.UnrestrictedVars = true } }

// WithSimplify collapses If(Nil, Nil) subtrees into Nil.
func WithSimplify() Option { return func(o *Options) { o.Simplify = true } }

// WithDual attaches dual values to leaves.
func WithDual() Option { return func(o *Options) { o.Dual = true } }

// WithBigParam designates parameter index k as the big parameter.
func WithBigParam(k int) Option { return func(o *Options) { o.BigParam = k } }

// WithPrecision selects the integer backend.
func WithPrecision(p exact.Precision) Option { return func(o *Options) { o.Precision = p } }

// WithDeepestCut switches the Bezout refinement of direct cuts on or off.
func WithDeepestCut(on bool) Option { return func(o *Options) { o.DeepestCut = on } }

// WithMaxTape bounds the solution tape; n <= 0 means unbounded.
func WithMaxTape(n int) Option { return func(o *Options) { o.MaxTape = n } }

// WithMaxCuts bounds the cuts per branch; n <= 0 leaves the solve itself
// unbounded.
func WithMaxCuts(n int) Option { return func(o *Options) { o.MaxCuts = n } }

// WithLogger installs a structured logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the context used for tracing. A nil context has no effect.
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
