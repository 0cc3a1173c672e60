// SPDX-License-Identifier: MIT

package pip

import (
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/tableau"
)

// cutResult is the outcome of integerize.
type cutResult uint8

const (
	integral cutResult = iota
	cutAdded
	infeasible
)

// fraction holds the reduced parts of a non-integral unknown row with
// denominator den: the Gomory coefficients (-a_k mod den) of the variables,
// and b_l mod den, c mod den of the parameters and the constant.
type fraction struct {
	row   int
	vars  []*big.Int
	param []*big.Int
	cst   *big.Int
	den   *big.Int
}

// reduce computes the fractional parts of unknown row i. The big parameter is
// taken to be a multiple of every denominator, so its column reduces to zero.
func reduce(tab *tableau.Tableau, i int) fraction {
	row := tab.Row(i)
	nvar, np := tab.NVar(), tab.NParam()
	bp := tab.Config().Policy.BigParam
	f := fraction{row: i, den: row.Den, vars: make([]*big.Int, nvar), param: make([]*big.Int, np)}
	for k := 0; k < nvar; k++ {
		f.vars[k] = new(big.Int).Neg(row.Coef[k])
		f.vars[k].Mod(f.vars[k], row.Den)
	}
	for l := 0; l < np; l++ {
		f.param[l] = new(big.Int)
		if l != bp {
			f.param[l].Mod(row.Coef[nvar+l], row.Den)
		}
	}
	f.cst = new(big.Int).Mod(row.Coef[nvar+np], row.Den)

	return f
}

// integerize looks for the first unknown row whose value is not integral in
// the current context and adds a cut for it. It may return a new tableau when
// a parametric cut widened the parameter space; ctx is updated in place.
//
// Per row, after reduction modulo the denominator:
//   - parameter and constant parts zero: the value is integral, skip;
//   - parameter part zero, constant non-zero, variable part zero: no integer
//     point exists;
//   - parameter part zero otherwise: direct Gomory cut;
//   - parameter part non-zero: cut through q = floor((β·p + γ)/D), unless the
//     context proves the remainder is always zero.
func (s *solver) integerize(tab *tableau.Tableau, ctx *Context) (cutResult, *tableau.Tableau, error) {
	for i := 0; i < tab.NVar(); i++ {
		row := tab.Row(i)
		if row.Coef == nil || exact.IsOne(row.Den) {
			continue
		}
		f := reduce(tab, i)
		paramZero := exact.AllZero(f.param)
		if paramZero && f.cst.Sign() == 0 {
			continue
		}
		if paramZero {
			if exact.AllZero(f.vars) {
				return infeasible, tab, nil
			}
			if s.opts.DeepestCut {
				deepen(&f)
				if exact.AllZero(f.vars) {
					return infeasible, tab, nil
				}
			}
			err := s.directCut(tab, f)

			return cutAdded, tab, err
		}
		ok, err := s.remainderPossible(ctx, f)
		if err != nil {
			return integral, tab, err
		}
		if !ok {
			continue
		}
		tab, err = s.paramCut(tab, ctx, f)

		return cutAdded, tab, err
	}

	return integral, tab, nil
}

// deepen multiplies the row congruence by λ chosen through a Bezout inverse so
// the right-hand side of the direct cut becomes D - gcd(c, D), its largest
// attainable value. Any integer λ yields a valid cut.
func deepen(f *fraction) {
	g := exact.Gcd(f.cst, f.den)
	d := new(big.Int).Quo(f.den, g)
	c := new(big.Int).Quo(f.cst, g)
	inv := exact.ModInverse(c, d)
	if inv == nil {
		return
	}
	lambda := new(big.Int).Sub(d, big.NewInt(1))
	lambda.Mul(lambda, inv).Mod(lambda, d)
	for _, v := range f.vars {
		v.Mul(v, lambda).Mod(v, f.den)
	}
	f.cst.Mul(f.cst, lambda).Mod(f.cst, f.den)
}

// directCut appends Σ vars_k·y_k - cst >= 0 (over den): negative at the
// current vertex, so the next iteration pivots on it. The y_k are integral,
// so the cut is tightened by the gcd of its variable part.
func (s *solver) directCut(tab *tableau.Tableau, f fraction) error {
	s.st.directCuts++
	cut := append(exact.CopyVec(f.vars), new(big.Int).Neg(f.cst))
	den := f.den
	if g := exact.VecGcd(f.vars); g.Sign() != 0 && !exact.IsOne(g) {
		tighten(cut)
		den = big.NewInt(1)
	}
	coef := make([]*big.Int, 0, tab.Width())
	coef = append(coef, cut[:len(cut)-1]...)
	coef = append(coef, exact.ZeroVec(tab.NParam())...)
	coef = append(coef, cut[len(cut)-1])
	_, err := tab.AppendRow(coef, den, tableau.NoOrigin, false)
	s.log.Debug("pip: direct cut", "row", f.row, "den", f.den.String())

	return err
}

// definition returns the vector β..., γ of q = floor((β·p + γ)/D).
func (f fraction) definition() []*big.Int {
	def := exact.CopyVec(f.param)

	return append(def, new(big.Int).Set(f.cst))
}

// remainderPossible asks whether β·p + γ can be non-zero modulo D in ctx.
func (s *solver) remainderPossible(ctx *Context, f fraction) (bool, error) {
	tmp := ctx.Clone()
	rank, ok := tmp.Lookup(f.definition(), f.den)
	if !ok {
		var err error
		if rank, err = tmp.AddParam(f.definition(), f.den); err != nil {
			return false, err
		}
	}
	// β·p + γ - D·q - 1 >= 0
	row := tmp.padded(f.definition())
	row[rank] = new(big.Int).Neg(f.den)
	last := len(row) - 1
	row[last] = new(big.Int).Sub(row[last], big.NewInt(1))

	return s.feasible(tmp, row)
}

// paramCut appends Σ vars_k·y_k - β·p - γ + D·q >= 0 (over D) where q is the
// auxiliary parameter floor((β·p + γ)/D), introduced on the tape as a
// NewParam node unless an identical one already exists in ctx.
func (s *solver) paramCut(tab *tableau.Tableau, ctx *Context, f fraction) (*tableau.Tableau, error) {
	s.st.paramCuts++
	def := f.definition()
	rank, ok := ctx.Lookup(def, f.den)
	if !ok {
		var err error
		if rank, err = ctx.AddParam(def, f.den); err != nil {
			return tab, err
		}
		if err = s.tape.NewParam(rank, def, f.den); err != nil {
			return tab, err
		}
		tab = tab.Expand(1, 1)
		s.log.Debug("pip: new parameter", "rank", rank, "den", f.den.String())
	}
	np := tab.NParam()
	coef := make([]*big.Int, 0, tab.Width())
	coef = append(coef, exact.CopyVec(f.vars)...)
	for l := 0; l < np; l++ {
		v := new(big.Int)
		if l < len(f.param) {
			v.Neg(f.param[l])
		}
		if l == rank {
			v.Add(v, f.den)
		}
		coef = append(coef, v)
	}
	coef = append(coef, new(big.Int).Neg(f.cst))
	_, err := tab.AppendRow(coef, f.den, tableau.NoOrigin, false)

	return tab, err
}
