// SPDX-License-Identifier: MIT

package pip

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
)

// Definition describes an auxiliary parameter p_Rank = floor(Coef·(p,1) / Den).
// Coef spans the parameters that existed when it was introduced.
type Definition struct {
	Rank int
	Coef []*big.Int
	Den  *big.Int
}

// Context is the parameter domain of one branch: a conjunction of
// inequalities row·(p,1) >= 0 plus the definitions of auxiliary parameters.
// A branch owns its Context; siblings work on clones.
type Context struct {
	nparam int
	rows   [][]*big.Int
	defs   []Definition
}

// NewContext returns an unconstrained context over nparam parameters.
func NewContext(nparam int) *Context {
	return &Context{nparam: nparam}
}

// NParam returns the number of parameters, auxiliary ones included.
func (c *Context) NParam() int { return c.nparam }

// Len returns the number of inequalities.
func (c *Context) Len() int { return len(c.rows) }

// Row returns a copy of inequality i.
func (c *Context) Row(i int) []*big.Int { return exact.CopyVec(c.rows[i]) }

// Definitions returns the auxiliary parameter definitions in creation order.
func (c *Context) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	for i, d := range c.defs {
		out[i] = Definition{Rank: d.Rank, Coef: exact.CopyVec(d.Coef), Den: exact.Copy(d.Den)}
	}

	return out
}

// Clone returns an independent copy.
func (c *Context) Clone() *Context {
	out := &Context{nparam: c.nparam, rows: make([][]*big.Int, len(c.rows)), defs: c.Definitions()}
	for i, r := range c.rows {
		out.rows[i] = exact.CopyVec(r)
	}

	return out
}

// AddInequality appends row·(p,1) >= 0. Parameters are integral, so the row
// is tightened: the parameter part is divided by its gcd g and the constant
// rounded down to floor(c/g).
func (c *Context) AddInequality(row []*big.Int) error {
	if len(row) != c.nparam+1 {
		return fmt.Errorf("AddInequality: have %d want %d: %w", len(row), c.nparam+1, ErrContextWidth)
	}
	r := exact.CopyVec(row)
	tighten(r)
	c.rows = append(c.rows, r)

	return nil
}

// tighten divides the variable part of the integer inequality r·(v,1) >= 0 by
// its gcd g and rounds the constant down to floor(c/g), in place.
func tighten(r []*big.Int) {
	n := len(r) - 1
	g := exact.VecGcd(r[:n])
	if g.Sign() == 0 || exact.IsOne(g) {
		return
	}
	for k := 0; k < n; k++ {
		r[k].Quo(r[k], g)
	}
	r[n], _ = exact.FloorDiv(r[n], g)
}

// padded returns v (parameters + constant) widened to the current parameter
// count by zero columns inserted before the constant.
func (c *Context) padded(v []*big.Int) []*big.Int {
	out := make([]*big.Int, 0, c.nparam+1)
	out = append(out, v[:len(v)-1]...)
	for len(out) < c.nparam {
		out = append(out, new(big.Int))
	}

	return append(out, v[len(v)-1])
}

// Lookup returns the rank of an existing auxiliary parameter with the same
// definition as floor(coef·(p,1) / den).
func (c *Context) Lookup(coef []*big.Int, den *big.Int) (int, bool) {
	want := c.padded(coef)
	for _, d := range c.defs {
		if d.Den.Cmp(den) == 0 && exact.EqualVec(c.padded(d.Coef), want) {
			return d.Rank, true
		}
	}

	return -1, false
}

// AddParam introduces q = floor(coef·(p,1) / den) as a new last parameter and
// constrains it by den·q <= coef·(p,1) <= den·q + den - 1. It returns q's rank.
func (c *Context) AddParam(coef []*big.Int, den *big.Int) (int, error) {
	if len(coef) != c.nparam+1 {
		return -1, fmt.Errorf("AddParam: have %d want %d: %w", len(coef), c.nparam+1, ErrContextWidth)
	}
	rank := c.nparam
	for i, r := range c.rows {
		c.rows[i] = insertZero(r, rank)
	}
	c.nparam++
	c.defs = append(c.defs, Definition{Rank: rank, Coef: exact.CopyVec(coef), Den: exact.Copy(den)})

	lower := insertZero(exact.CopyVec(coef), rank)
	lower[rank].Neg(den)
	upper := exact.NegVec(lower)
	upper[c.nparam].Add(upper[c.nparam], den)
	upper[c.nparam].Sub(upper[c.nparam], big.NewInt(1))
	tighten(lower)
	tighten(upper)
	c.rows = append(c.rows, lower, upper)

	return rank, nil
}

// insertZero returns v with a zero inserted at position at.
func insertZero(v []*big.Int, at int) []*big.Int {
	out := make([]*big.Int, 0, len(v)+1)
	out = append(out, v[:at]...)
	out = append(out, new(big.Int))

	return append(out, v[at:]...)
}
