// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math/big"
)

// Precision selects the integer backend emulated by the solver.
type Precision uint8

const (
	// Arbitrary never overflows; values grow as needed.
	Arbitrary Precision = iota

	// Fixed64 rejects every value whose magnitude needs more than 63 bits.
	Fixed64
)

// fixedBits is the largest bit length accepted under Fixed64.
const fixedBits = 63

// String implements fmt.Stringer.
func (p Precision) String() string {
	switch p {
	case Arbitrary:
		return "arbitrary"
	case Fixed64:
		return "fixed64"
	default:
		return fmt.Sprintf("precision(%d)", uint8(p))
	}
}

// ParsePrecision maps a configuration string onto a Precision.
// Accepted values are "arbitrary" and "fixed64"; the empty string means Arbitrary.
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "", "arbitrary":
		return Arbitrary, nil
	case "fixed64":
		return Fixed64, nil
	default:
		return Arbitrary, fmt.Errorf("%q: %w", s, ErrUnknownPrecision)
	}
}

// Fits reports whether v is representable under p.
// Complexity: O(1).
func (p Precision) Fits(v *big.Int) bool {
	if p == Arbitrary {
		return true
	}

	return v.BitLen() <= fixedBits
}

// Check returns ErrArithmeticOverflow (wrapped with what) when any value in vs
// does not fit under p. Arbitrary never fails.
func (p Precision) Check(what string, vs ...*big.Int) error {
	if p == Arbitrary {
		return nil
	}
	for _, v := range vs {
		if v.BitLen() > fixedBits {
			return fmt.Errorf("%s: %d-bit value: %w", what, v.BitLen(), ErrArithmeticOverflow)
		}
	}

	return nil
}
