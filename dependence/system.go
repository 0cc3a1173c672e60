// SPDX-License-Identifier: MIT

package dependence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/katalvlaran/lvpoly/pip"
)

// endpoints validates dep against scop and returns its statements.
func endpoints(scop *Scop, dep *Dependence) (*Statement, *Statement, error) {
	if dep == nil || dep.Domain == nil {
		return nil, nil, ErrNilDependence
	}
	n := len(scop.Statements)
	if dep.Source < 0 || dep.Source >= n || dep.Target < 0 || dep.Target >= n {
		return nil, nil, fmt.Errorf("%s: %w", dep, ErrUnknownStatement)
	}
	src, tgt := scop.Statements[dep.Source], scop.Statements[dep.Target]
	if src == nil || tgt == nil {
		return nil, nil, fmt.Errorf("%s: %w", dep, ErrUnknownStatement)
	}
	width := 1 + src.Depth + tgt.Depth + scop.NParam + 1
	if err := matrix.ValidateConstraints(dep.Domain, width); err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", dep, ErrDomainWidth, err)
	}

	return src, tgt, nil
}

// system accumulates constraint rows over [eq | vars | params | const] for
// one solver query.
type system struct {
	nvar, nparam int
	m            *matrix.Dense
}

func newSystem(nvar, nparam int) *system {
	m, _ := matrix.NewDense(0, nvar+nparam+2)

	return &system{nvar: nvar, nparam: nparam, m: m}
}

// place copies every row of src, mapping its variable blocks onto the
// system's columns. blocks[k] = {srcFrom, len, varOffset}; parameters and
// constant follow the variables of src starting at column srcParams.
func (s *system) place(src *matrix.Dense, srcParams int, blocks ...matrix.Placement) error {
	places := make([]matrix.Placement, 0, len(blocks)+1)
	for _, b := range blocks {
		places = append(places, matrix.Placement{From: b.From, Len: b.Len, To: 1 + b.To})
	}
	places = append(places, matrix.Placement{From: srcParams, Len: s.nparam + 1, To: 1 + s.nvar})
	for i := 0; i < src.Rows(); i++ {
		if err := matrix.PlaceRow(s.m, src, i, places...); err != nil {
			return err
		}
	}

	return nil
}

// add appends one row given as (variable index, coefficient) pairs plus a
// constant; eq selects "= 0" instead of ">= 0".
func (s *system) add(eq bool, cst int64, terms ...[2]int) error {
	row := make([]*big.Int, s.m.Cols())
	for j := range row {
		row[j] = new(big.Int)
	}
	if !eq {
		row[0].SetInt64(matrix.InequalityFlag)
	}
	for _, t := range terms {
		row[1+t[0]].Add(row[1+t[0]], big.NewInt(int64(t[1])))
	}
	row[len(row)-1].SetInt64(cst)

	return s.m.AppendRow(row)
}

// problem wraps the system for the solver.
func (s *system) problem(ctx *matrix.Dense) *pip.Problem {
	return &pip.Problem{Domain: s.m, Context: ctx, NVar: s.nvar, NParam: s.nparam}
}

// depSystem places the dependence polyhedron with its source iterators at
// srcOff and target iterators at tgtOff.
func depSystem(s *system, dep *Dependence, ns, nt, srcOff, tgtOff int) error {
	return s.place(dep.Domain, 1+ns+nt,
		matrix.Placement{From: 1, Len: ns, To: srcOff},
		matrix.Placement{From: 1 + ns, Len: nt, To: tgtOff},
	)
}

func (s *system) clone() *system {
	return &system{nvar: s.nvar, nparam: s.nparam, m: s.m.Clone()}
}
