// SPDX-License-Identifier: MIT

package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/quast"
	"github.com/katalvlaran/lvpoly/tableau"
)

// resolution is the outcome of one sign-resolution pass.
type resolution uint8

const (
	// settled: every row is known to be non-negative in the context.
	settled resolution = iota
	// pivotNext: some row is known to be negative.
	pivotNext
	// branchOn: a row may take both signs; the caller splits on it.
	branchOn
	// emptyContext: the context admits no parameter value at all.
	emptyContext
)

// resolveSigns settles Unknown and Critic rows against ctx. Critic rows are
// examined first so that, when a split is unavoidable, the branch row is one
// whose negative side fails outright.
func (s *solver) resolveSigns(tab *tableau.Tableau, ctx *Context) (resolution, int, error) {
	for i := 0; i < tab.Len(); i++ {
		if tab.Row(i).Sign == tableau.Unknown && !tab.HasPositiveVar(i) {
			tab.SetSign(i, tableau.Critic)
		}
	}
	candidate := -1
	for _, want := range [...]tableau.Sign{tableau.Critic, tableau.Unknown} {
		for i := 0; i < tab.Len(); i++ {
			if tab.Row(i).Sign != want {
				continue
			}
			num, _ := tab.ParamPart(i)
			pos, err := s.feasible(ctx, num)
			if err != nil {
				return settled, -1, err
			}
			neg, err := s.feasible(ctx, negated(num))
			if err != nil {
				return settled, -1, err
			}
			switch {
			case !pos && !neg:
				return emptyContext, i, nil
			case !neg:
				tab.SetSign(i, tableau.Plus)
			case !pos:
				tab.SetSign(i, tableau.Minus)
				return pivotNext, i, nil
			case candidate < 0:
				candidate = i
			}
		}
	}
	if candidate >= 0 {
		return branchOn, candidate, nil
	}

	return settled, -1, nil
}

// negated returns the row of "num·(p,1) <= -1", i.e. -num·(p,1) - 1 >= 0.
func negated(num []*big.Int) []*big.Int {
	out := make([]*big.Int, len(num))
	for k, v := range num {
		out[k] = new(big.Int).Neg(v)
	}
	out[len(out)-1].Sub(out[len(out)-1], big.NewInt(1))

	return out
}

// testMaxCuts bounds the cuts of one compatibility test. Gomory cutting need
// not terminate on a rationally unbounded polyhedron without integer points.
const testMaxCuts = 24

// testCuts returns the cut budget of a compatibility test: testMaxCuts, or
// the solve's own limit when that is smaller.
func testCuts(maxCuts int) int {
	if maxCuts > 0 && maxCuts < testMaxCuts {
		return maxCuts
	}

	return testMaxCuts
}

// feasible reports whether some integer parameter point satisfies ctx and
// every extra inequality. The test is a parameter-free integer problem solved
// by treat on a tape checkpoint; its records are dropped before returning.
// Rows are tightened by their gcd and unrestricted parameters are split as
// p = p⁺ - p⁻. The test runs under a finite cut budget and an Error leaf
// counts as feasible, which only ever costs a redundant branch or cut.
func (s *solver) feasible(ctx *Context, extra ...[]*big.Int) (bool, error) {
	s.st.tests++
	np := ctx.NParam()
	split := make([]bool, np)
	nvar := 0
	for k := 0; k < np; k++ {
		split[k] = s.opts.UnrestrictedParams && k != s.bigParam
		nvar++
		if split[k] {
			nvar++
		}
	}
	cfg := tableau.Config{Precision: s.opts.Precision, Policy: tableau.SignPolicy{BigParam: -1}}
	tab := tableau.New(nvar, 0, nvar+ctx.Len()+len(extra), cfg)
	for j := 0; j < nvar; j++ {
		tab.AppendUnit(j)
	}
	add := func(row []*big.Int) error {
		row = exact.CopyVec(row)
		tighten(row)
		coef := make([]*big.Int, 0, nvar+1)
		for k := 0; k < np; k++ {
			coef = append(coef, new(big.Int).Set(row[k]))
			if split[k] {
				coef = append(coef, new(big.Int).Neg(row[k]))
			}
		}
		coef = append(coef, new(big.Int).Set(row[np]))
		_, err := tab.AppendRow(coef, big.NewInt(1), tableau.NoOrigin, false)

		return err
	}
	for i := 0; i < ctx.Len(); i++ {
		if err := add(ctx.rows[i]); err != nil {
			return false, err
		}
	}
	for _, row := range extra {
		if err := add(row); err != nil {
			return false, err
		}
	}

	mark := s.tape.Mark()
	if err := s.treat(tab, NewContext(0), mode{integer: true, maxCuts: testCuts(s.opts.MaxCuts), test: true}); err != nil {
		return false, err
	}
	kind, err := s.tape.SubtreeKind(mark)
	if err != nil {
		return false, err
	}
	if err = s.tape.Reset(mark); err != nil {
		return false, err
	}

	return kind != quast.KindNil, nil
}
