// SPDX-License-Identifier: MIT

package tableau

import (
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
)

// Sign is the per-row tag describing the sign of the row value at the current
// basis, as a function of the parameters.
type Sign uint8

const (
	// Unknown: the parameter part has mixed signs; needs a context test.
	Unknown Sign = iota
	// Zero: the row value is identically zero.
	Zero
	// Plus: the row value is non-negative for every parameter in the context.
	Plus
	// Minus: the row value is negative for every parameter in the context.
	Minus
	// Critic: Unknown and no variable coefficient is positive, so the negative
	// half of a case split is infeasible outright.
	Critic
	// Unit: the row is a non-basic variable (implicit unit column).
	Unit
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Zero:
		return "zero"
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case Critic:
		return "critic"
	case Unit:
		return "unit"
	default:
		return "sign(?)"
	}
}

// NonNegative reports whether the tag guarantees a value >= 0.
func (s Sign) NonNegative() bool { return s == Zero || s == Plus || s == Unit }

// Undetermined reports whether the tag still needs sign resolution.
func (s Sign) Undetermined() bool { return s == Unknown || s == Critic }

// NoOrigin marks rows that do not come from an input constraint.
const NoOrigin = -1

// Row is one tableau row. For Unit rows Coef is nil and UnitCol names the
// non-basic variable column the row equals.
type Row struct {
	Sign    Sign
	UnitCol int
	Coef    []*big.Int // numerators, len == width; nil for Unit rows
	Den     *big.Int   // positive shared denominator
	Origin  int        // input constraint index or NoOrigin
	Negated bool       // the row is the "<= 0" half of an input equality
}

// clone deep-copies r, inserting extra zero columns at position at.
func (r *Row) clone(at, extra int) *Row {
	out := &Row{
		Sign:    r.Sign,
		UnitCol: r.UnitCol,
		Den:     new(big.Int).Set(r.Den),
		Origin:  r.Origin,
		Negated: r.Negated,
	}
	if r.Coef == nil {
		return out
	}
	out.Coef = make([]*big.Int, 0, len(r.Coef)+extra)
	for k, v := range r.Coef {
		if k == at {
			for e := 0; e < extra; e++ {
				out.Coef = append(out.Coef, new(big.Int))
			}
		}
		out.Coef = append(out.Coef, new(big.Int).Set(v))
	}
	if at >= len(r.Coef) {
		for e := 0; e < extra; e++ {
			out.Coef = append(out.Coef, new(big.Int))
		}
	}

	return out
}

// SignPolicy drives quick sign classification.
type SignPolicy struct {
	// BigParam is the parameter index of the big parameter, or -1. Its
	// coefficient, when non-zero, decides the sign on its own.
	BigParam int

	// ParamsUnrestricted drops the assumption that parameters are >= 0; only
	// constant rows are then classified without a context test.
	ParamsUnrestricted bool
}

// Config carries the arithmetic and sign policies of a tableau.
type Config struct {
	Precision exact.Precision
	Policy    SignPolicy
}

// DefaultConfig returns arbitrary precision, no big parameter, parameters >= 0.
func DefaultConfig() Config {
	return Config{Precision: exact.Arbitrary, Policy: SignPolicy{BigParam: -1}}
}
