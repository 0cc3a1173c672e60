// SPDX-License-Identifier: MIT

package pip

import (
	"log/slog"
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/quast"
	"github.com/katalvlaran/lvpoly/tableau"
)

// mode carries the per-call flags of treat.
type mode struct {
	integer bool
	dual    bool
	nOrig   int // domain constraints reported in dual values
	maxCuts int
	cuts    int  // already spent on the path from the root
	test    bool // compatibility test: cuts do not draw on the tree budget
}

// treeCutFactor scales MaxCuts into the budget of the whole tree.
const treeCutFactor = 8

// solver is the state of one top-level Solve: options, the tape it owns and
// event counters. Nothing in it is shared with another solve.
type solver struct {
	opts     Options
	tape     *quast.Tape
	bigParam int
	st       stats
	log      *slog.Logger
	depth    int
	treeCuts int // cuts spent by the solve outside compatibility tests
}

func newSolver(o Options) *solver {
	return &solver{opts: o, tape: quast.NewTape(o.MaxTape), bigParam: o.BigParam, log: o.Logger}
}

// treat drives tab to a leaf under ctx, appending the resulting subtree to
// the tape. tab and ctx belong to this call: the then-side of a split works
// on clones, the else-side continues on the originals.
//
// Loop:
//  1. pivot on any Minus row (no positive column: Nil);
//  2. settle Unknown/Critic rows against ctx, pivoting or splitting;
//  3. with every row non-negative, emit the leaf, cutting first when integer
//     solutions are wanted.
//
// The cut budget is shared along a root-to-leaf path: a then-side starts with
// the cuts already spent, so every path stays finite. The whole tree may
// spend treeCutFactor times that budget; past it every open path ends in an
// Error leaf.
//
// Errors are fatal (overflow, tape capacity); every other outcome is a leaf.
func (s *solver) treat(tab *tableau.Tableau, ctx *Context, m mode) error {
	s.depth++
	defer func() { s.depth-- }()

	tab.SortRows(tab.NVar())
	cuts := m.cuts
	for {
		if r := tab.FirstWithSign(tableau.Minus); r >= 0 {
			ok, err := tab.Pivot(r)
			if err != nil {
				return err
			}
			s.st.pivots++
			if !ok {
				return s.tape.Nil()
			}
			continue
		}

		res, r, err := s.resolveSigns(tab, ctx)
		if err != nil {
			return err
		}
		switch res {
		case pivotNext:
			continue
		case emptyContext:
			return s.tape.Nil()
		case branchOn:
			m.cuts = cuts
			if err = s.branch(tab, ctx, r, m); err != nil {
				return err
			}
			continue
		}

		if !m.integer {
			return s.emitLeaf(tab, m)
		}
		if m.maxCuts > 0 && (cuts >= m.maxCuts || (!m.test && s.treeCuts >= treeCutFactor*m.maxCuts)) {
			s.log.Debug("pip: cut limit reached", "cuts", cuts, "tree", s.treeCuts, "depth", s.depth)
			return s.tape.Error(quast.CodeCutLimit)
		}
		var out cutResult
		out, tab, err = s.integerize(tab, ctx)
		if err != nil {
			return err
		}
		switch out {
		case integral:
			return s.emitLeaf(tab, m)
		case infeasible:
			return s.tape.Nil()
		}
		cuts++
		if !m.test {
			s.treeCuts++
		}
	}
}

// branch records If(row >= 0), solves the then-side on clones and turns the
// current tableau and context into the else-side (row <= -1).
func (s *solver) branch(tab *tableau.Tableau, ctx *Context, r int, m mode) error {
	s.st.branches++
	num, _ := tab.ParamPart(r)
	primitive(num)
	s.log.Debug("pip: split", "row", r, "cond", quast.Affine(num), "depth", s.depth)
	if err := s.tape.If(num); err != nil {
		return err
	}

	thenTab, thenCtx := tab.Clone(), ctx.Clone()
	if err := thenCtx.AddInequality(num); err != nil {
		return err
	}
	thenTab.SetSign(r, tableau.Plus)
	if err := s.treat(thenTab, thenCtx, m); err != nil {
		return err
	}

	if err := ctx.AddInequality(negated(num)); err != nil {
		return err
	}
	tab.SetSign(r, tableau.Minus)

	return nil
}

// emitLeaf writes the List record: one form per unknown, then the dual values.
func (s *solver) emitLeaf(tab *tableau.Tableau, m mode) error {
	duals := 0
	if m.dual {
		duals = m.nOrig
	}
	if err := s.tape.List(tab.NVar(), duals); err != nil {
		return err
	}
	for i := 0; i < tab.NVar(); i++ {
		num, den := tab.ParamPart(i)
		den = exact.ReduceVec(num, den)
		if err := s.tape.Form(num, den); err != nil {
			return err
		}
	}
	if duals == 0 {
		return nil
	}
	for _, v := range dualValues(tab, m.nOrig) {
		if err := s.tape.Value(v.Num(), v.Denom()); err != nil {
			return err
		}
	}

	return nil
}

// dualValues returns, for each domain constraint, the coefficient of its slack
// in the first unknown row (zero when the slack is basic). An equality
// contributes the difference of its two halves.
func dualValues(tab *tableau.Tableau, nOrig int) []*big.Rat {
	out := make([]*big.Rat, nOrig)
	for k := range out {
		out[k] = new(big.Rat)
	}
	if tab.NVar() == 0 {
		return out
	}
	obj := tab.VarPart(0)
	den := tab.Row(0).Den
	for i := 0; i < tab.Len(); i++ {
		row := tab.Row(i)
		if row.Sign != tableau.Unit || row.Origin < 0 || row.Origin >= nOrig {
			continue
		}
		v := new(big.Rat).SetFrac(obj[row.UnitCol], den)
		if row.Negated {
			out[row.Origin].Sub(out[row.Origin], v)
		} else {
			out[row.Origin].Add(out[row.Origin], v)
		}
	}

	return out
}

// primitive divides v in place by the gcd of its entries.
func primitive(v []*big.Int) {
	g := exact.VecGcd(v)
	if g.Sign() == 0 || exact.IsOne(g) {
		return
	}
	for _, x := range v {
		x.Quo(x, g)
	}
}
