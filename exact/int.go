// SPDX-License-Identifier: MIT

package exact

import "math/big"

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// New returns a fresh *big.Int holding v.
func New(v int64) *big.Int { return big.NewInt(v) }

// Copy returns a fresh copy of v.
func Copy(v *big.Int) *big.Int { return new(big.Int).Set(v) }

// IsZero reports v == 0.
func IsZero(v *big.Int) bool { return v.Sign() == 0 }

// IsOne reports v == 1.
func IsOne(v *big.Int) bool { return v.Cmp(one) == 0 }

// Abs returns |v| as a fresh value.
func Abs(v *big.Int) *big.Int { return new(big.Int).Abs(v) }

// Gcd returns the non-negative gcd of a and b; Gcd(0, 0) == 0.
func Gcd(a, b *big.Int) *big.Int {
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)

	return x.GCD(nil, nil, x, y)
}

// Lcm returns the non-negative lcm of a and b; Lcm(x, 0) == 0.
func Lcm(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	g := Gcd(a, b)
	l := new(big.Int).Quo(new(big.Int).Abs(a), g)

	return l.Mul(l, new(big.Int).Abs(b))
}

// FloorDiv returns floor(a/b).
// Go's big.Int Div is Euclidean, which differs from floor for negative b.
func FloorDiv(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	// truncated quotient rounds toward zero; step down when signs differ
	if m.Sign() != 0 && (m.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, one)
	}

	return q, nil
}

// Mod returns the canonical remainder of a modulo d, in [0, |d|).
func Mod(a, d *big.Int) (*big.Int, error) {
	if d.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	r := new(big.Int).Mod(a, new(big.Int).Abs(d)) // Euclidean: always >= 0

	return r, nil
}

// VecGcd returns the gcd of all entries of v (0 for an all-zero vector).
func VecGcd(v []*big.Int) *big.Int {
	g := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		g = Gcd(g, x)
		if g.Cmp(one) == 0 {
			break
		}
	}

	return g
}

// ReduceVec divides v and den in place by gcd(v..., den) and returns the
// resulting denominator. den must be positive.
func ReduceVec(v []*big.Int, den *big.Int) *big.Int {
	g := Gcd(VecGcd(v), den)
	if g.Sign() == 0 || g.Cmp(one) == 0 {
		return den
	}
	for _, x := range v {
		x.Quo(x, g)
	}

	return den.Quo(den, g)
}

// CopyVec deep-copies v.
func CopyVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}

	return out
}

// ZeroVec returns n fresh zeros.
func ZeroVec(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}

	return out
}

// VecFromInt64 converts a slice of int64 into fresh big integers.
func VecFromInt64(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}

	return out
}

// EqualVec reports element-wise equality of a and b.
func EqualVec(a, b []*big.Int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}

	return true
}

// AllZero reports whether every entry of v is zero.
func AllZero(v []*big.Int) bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// MaxAbs returns the largest magnitude in v (0 for an empty vector).
func MaxAbs(v []*big.Int) *big.Int {
	m := new(big.Int)
	for _, x := range v {
		if x.CmpAbs(m) > 0 {
			m.Abs(x)
		}
	}

	return m
}

// ModInverse returns x in [1, m) with a*x ≡ 1 (mod m), or nil when a and m
// are not coprime. m must be > 1.
func ModInverse(a, m *big.Int) *big.Int {
	r, err := Mod(a, m)
	if err != nil || r.Sign() == 0 {
		return nil
	}

	return new(big.Int).ModInverse(r, m)
}

// NegVec returns -v as fresh values.
func NegVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Neg(x)
	}

	return out
}

// IsUnitMagnitude reports v ∈ {-1, 0, 1}.
func IsUnitMagnitude(v *big.Int) bool {
	return v.CmpAbs(one) <= 0
}

// Zero returns a fresh zero (convenience for readability at call sites).
func Zero() *big.Int { return new(big.Int).Set(zero) }
