// SPDX-License-Identifier: MIT

package pip

import (
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/katalvlaran/lvpoly/quast"
	"github.com/katalvlaran/lvpoly/tableau"
)

// Problem is a parametric integer program.
type Problem struct {
	// Domain rows are [eq | x (NVar) | p (NParam) | const].
	Domain *matrix.Dense

	// Context rows are [eq | p (NParam) | const]; nil means no constraint.
	Context *matrix.Dense

	NVar   int
	NParam int
}

// validate rejects malformed input before any tableau is built.
func (p *Problem) validate(o Options) error {
	if p == nil || p.Domain == nil {
		return ErrNilProblem
	}
	if p.NVar <= 0 || p.NParam < 0 {
		return fmt.Errorf("NVar=%d NParam=%d: %w", p.NVar, p.NParam, ErrBadDimensions)
	}
	if err := matrix.ValidateConstraints(p.Domain, p.NVar+p.NParam+2); err != nil {
		return fmt.Errorf("domain: %w", err)
	}
	if p.Context != nil {
		if err := matrix.ValidateConstraints(p.Context, p.NParam+2); err != nil {
			return fmt.Errorf("context: %w: %w", ErrContextWidth, err)
		}
	}
	if o.BigParam != NoBigParam && (o.BigParam < 0 || o.BigParam >= p.NParam) {
		return fmt.Errorf("big parameter %d with %d parameters: %w", o.BigParam, p.NParam, ErrBigParamOutOfRange)
	}

	return nil
}

// Solve returns the lexicographic minimum (maximum with WithMaximize) of the
// unknowns of p as a function of the parameters.
//
// Stage 1 (Validate): shapes, eq-flags, big-parameter index.
// Stage 2 (Prepare): when maximising or with unrestricted unknowns and no big
// parameter, an internal one M is appended to the parameters and the unknowns
// are rewritten as x = M - x' (maximise) or x = x' - M; the tableau holds one
// unit row per unknown followed by the domain rows, equalities split in two.
// Stage 3 (Execute): treat records the tree on a tape owned by this call.
// Stage 4 (Read): the tape is read back, undoing the rewrite and stripping M.
//
// Returns exact.ErrArithmeticOverflow (Fixed64 only) and quast.ErrTapeCapacity
// as fatal errors; infeasibility is a Nil tree, not an error.
func Solve(p *Problem, opts ...Option) (*quast.Node, error) {
	o := gatherOptions(opts...)
	if err := p.validate(o); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	ctx, span := startSolveSpan(o.Ctx, id, p.NVar, p.NParam)
	start := time.Now()

	s := newSolver(o)
	s.log = s.log.With("solve_id", id)
	root, err := s.run(p)

	finishSolveSpan(span, s.st, err)
	recordSolveMetrics(ctx, time.Since(start), s.st, err)
	if err != nil {
		s.log.Debug("pip: solve failed", "error", err)
		return nil, err
	}
	s.log.Debug("pip: solved",
		"pivots", s.st.pivots,
		"direct_cuts", s.st.directCuts,
		"param_cuts", s.st.paramCuts,
		"branches", s.st.branches,
		"tape", s.tape.Len(),
		"elapsed", time.Since(start),
	)

	return root, nil
}

// Feasible reports whether p has a solution for at least one parameter value.
// A branch abandoned at the cut limit counts as feasible.
func Feasible(p *Problem, opts ...Option) (bool, error) {
	root, err := Solve(p, opts...)
	if err != nil {
		return false, err
	}
	for _, leaf := range root.Leaves() {
		if leaf.Node.Kind != quast.Nil {
			return true, nil
		}
	}

	return false, nil
}

func (s *solver) run(p *Problem) (*quast.Node, error) {
	o := s.opts
	np := p.NParam
	injected := false
	if s.bigParam == NoBigParam && (o.Maximize || o.UnrestrictedVars) {
		s.bigParam = np
		np++
		injected = true
	}

	cfg := tableau.Config{
		Precision: o.Precision,
		Policy:    tableau.SignPolicy{BigParam: s.bigParam, ParamsUnrestricted: o.UnrestrictedParams},
	}
	tab := tableau.New(p.NVar, np, p.NVar+2*p.Domain.Rows(), cfg)
	for j := 0; j < p.NVar; j++ {
		tab.AppendUnit(j)
	}
	for i := 0; i < p.Domain.Rows(); i++ {
		row, _ := p.Domain.Row(i)
		coef := s.rewrite(row, p.NVar, p.NParam, injected)
		if _, err := tab.AppendRow(coef, big.NewInt(1), i, false); err != nil {
			return nil, err
		}
		if eq, _ := p.Domain.IsEquality(i); eq {
			if _, err := tab.AppendRow(exact.NegVec(coef), big.NewInt(1), i, true); err != nil {
				return nil, err
			}
		}
	}
	if o.Maximize && !o.UnrestrictedVars {
		// x_j = M - x'_j >= 0
		for j := 0; j < p.NVar; j++ {
			coef := exact.ZeroVec(p.NVar + np + 1)
			coef[j].SetInt64(-1)
			coef[p.NVar+s.bigParam].SetInt64(1)
			if _, err := tab.AppendRow(coef, big.NewInt(1), tableau.NoOrigin, false); err != nil {
				return nil, err
			}
		}
	}

	ctx, err := s.initialContext(p, np, injected)
	if err != nil {
		return nil, err
	}
	ok := true
	if ctx.Len() > 0 {
		if ok, err = s.feasible(ctx); err != nil {
			return nil, err
		}
	}
	if !ok {
		err = s.tape.Nil()
	} else {
		err = s.treat(tab, ctx, mode{integer: o.Integer, dual: o.Dual, nOrig: p.Domain.Rows(), maxCuts: o.MaxCuts})
	}
	if err != nil {
		return nil, err
	}

	read := quast.ReadOptions{Strip: -1, BigCol: s.bigParam, Negate: o.Maximize, Simplify: o.Simplify}
	if injected {
		read.Strip = s.bigParam
	}
	switch {
	case o.Maximize:
		read.Shift = 1
	case o.UnrestrictedVars:
		read.Shift = -1
	}
	root, _, err := quast.Build(s.tape, 0, read)

	return root, err
}

// rewrite maps a domain row [eq | a | b | c] onto tableau columns
// [a | b (+M) | c], substituting x = M - x' when maximising and x = x' - M
// for unrestricted unknowns.
func (s *solver) rewrite(row []*big.Int, nvar, nparam int, injected bool) []*big.Int {
	a := row[1 : 1+nvar]
	b := row[1+nvar : 1+nvar+nparam]
	c := row[1+nvar+nparam]

	coef := make([]*big.Int, 0, nvar+nparam+2)
	sum := new(big.Int)
	for _, v := range a {
		sum.Add(sum, v)
		if s.opts.Maximize {
			coef = append(coef, new(big.Int).Neg(v))
		} else {
			coef = append(coef, new(big.Int).Set(v))
		}
	}
	coef = append(coef, exact.CopyVec(b)...)
	if injected {
		coef = append(coef, new(big.Int))
	}
	coef = append(coef, new(big.Int).Set(c))

	if s.bigParam != NoBigParam {
		m := coef[nvar+s.bigParam]
		switch {
		case s.opts.Maximize:
			m.Add(m, sum)
		case s.opts.UnrestrictedVars:
			m.Sub(m, sum)
		}
	}

	return coef
}

// initialContext converts the problem context into inequalities over the
// tableau parameters.
func (s *solver) initialContext(p *Problem, np int, injected bool) (*Context, error) {
	ctx := NewContext(np)
	if p.Context == nil {
		return ctx, nil
	}
	for i := 0; i < p.Context.Rows(); i++ {
		row, _ := p.Context.Row(i)
		v := row[1:]
		if injected {
			v = insertZero(v, p.NParam)
		}
		if err := ctx.AddInequality(v); err != nil {
			return nil, err
		}
		if eq, _ := p.Context.IsEquality(i); eq {
			if err := ctx.AddInequality(exact.NegVec(v)); err != nil {
				return nil, err
			}
		}
	}

	return ctx, nil
}
