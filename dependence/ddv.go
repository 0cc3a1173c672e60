// SPDX-License-Identifier: MIT

package dependence

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/pip"
	"github.com/katalvlaran/lvpoly/quast"
)

// commonDepth returns the number of leading loops the two statements share,
// bounded by their iterator counts.
func commonDepth(a, b *Statement) int {
	n := 0
	for n < len(a.Loops) && n < len(b.Loops) && n < a.Depth && n < b.Depth && a.Loops[n] == b.Loops[n] {
		n++
	}

	return n
}

// ExtractLoop computes the DDV of every dependence whose endpoints are both
// enclosed by loopID. Component i describes the distance t_i - s_i of the
// i-th common iterator and is decided by feasibility queries for "= 0", "> 0"
// and "< 0" plus a lexmin/lexmax pair detecting a constant distance.
// Precedence: non-zero constant, then Star (both signs), Gt, Lt, Eq; with no
// feasible direction the component stays Unknown.
func ExtractLoop(scop *Scop, deps []*Dependence, loopID int, opts ...Option) ([]DDV, error) {
	if scop == nil {
		return nil, ErrNilScop
	}
	o := gatherOptions(opts...)
	start := time.Now()
	defer func() { opDuration.WithLabelValues("ddv").Observe(time.Since(start).Seconds()) }()

	var out []DDV
	for _, dep := range deps {
		src, tgt, err := endpoints(scop, dep)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(src.Loops, loopID) || !slices.Contains(tgt.Loops, loopID) {
			continue
		}
		common := commonDepth(src, tgt)
		v := DDV{DepID: dep.ID, Kind: dep.Kind, LoopID: loopID, Components: make([]Component, common)}
		for i := 0; i < common; i++ {
			c, err := component(scop, dep, src.Depth, tgt.Depth, i, o)
			if err != nil {
				return nil, fmt.Errorf("ExtractLoop %s depth %d: %w", dep, i, err)
			}
			v.Components[i] = c
		}
		o.Logger.Debug("dependence: ddv", "dep", dep.ID, "loop", loopID, "ddv", v.String())
		out = append(out, v)
	}

	return out, nil
}

// component decides the DDV entry of depth i.
func component(scop *Scop, dep *Dependence, ns, nt, i int, o Options) (Component, error) {
	// t_i - s_i + shift >= 0 (or = 0) over [s | t]
	query := func(eq bool, sign, shift int64) (bool, error) {
		s := newSystem(ns+nt, scop.NParam)
		if err := depSystem(s, dep, ns, nt, 0, ns); err != nil {
			return false, err
		}
		if err := s.add(eq, shift, [2]int{ns + i, int(sign)}, [2]int{i, int(-sign)}); err != nil {
			return false, err
		}
		queryTotal.WithLabelValues("ddv").Inc()

		return pip.Feasible(s.problem(scop.Context), o.solverOptions()...)
	}

	eq, err := query(true, 1, 0)
	if err != nil {
		return Component{}, err
	}
	lt, err := query(false, 1, -1) // t_i - s_i >= 1
	if err != nil {
		return Component{}, err
	}
	gt, err := query(false, -1, -1) // s_i - t_i >= 1
	if err != nil {
		return Component{}, err
	}

	// a non-zero constant distance excludes "= 0" and one of the signs
	if !eq && lt != gt {
		v, ok, err := constantDistance(scop, dep, ns, nt, i, o)
		if err != nil {
			return Component{}, err
		}
		if ok && v != 0 {
			return Component{Type: Scalar, Value: v}, nil
		}
	}
	switch {
	case lt && gt:
		return Component{Type: Star}, nil
	case gt:
		return Component{Type: Gt}, nil
	case lt:
		return Component{Type: Lt}, nil
	case eq:
		return Component{Type: Eq}, nil
	default:
		return Component{Type: Unknown}, nil
	}
}

// constantDistance solves lexmin and lexmax of d = t_i - s_i over the
// dependence, d placed as the first unknown. The distance is constant when
// both trees yield the same parameter-free integral value on every leaf.
func constantDistance(scop *Scop, dep *Dependence, ns, nt, i int, o Options) (int64, bool, error) {
	s := newSystem(1+ns+nt, scop.NParam)
	if err := depSystem(s, dep, ns, nt, 1, 1+ns); err != nil {
		return 0, false, err
	}
	// t_i - s_i - d = 0
	if err := s.add(true, 0, [2]int{1 + ns + i, 1}, [2]int{1 + i, -1}, [2]int{0, -1}); err != nil {
		return 0, false, err
	}
	queryTotal.WithLabelValues("ddv").Add(2)
	lo, err := pip.Solve(s.problem(scop.Context), o.solverOptions()...)
	if err != nil {
		return 0, false, err
	}
	hi, err := pip.Solve(s.problem(scop.Context), o.solverOptions(pip.WithMaximize())...)
	if err != nil {
		return 0, false, err
	}
	a, okA := constantFirst(lo)
	b, okB := constantFirst(hi)
	if !okA || !okB || a != b {
		return 0, false, nil
	}

	return a, true, nil
}

// constantFirst returns the common value of the first form of every List
// leaf when it is the same integral constant everywhere.
func constantFirst(root *quast.Node) (int64, bool) {
	var (
		val   int64
		found bool
	)
	for _, leaf := range root.Leaves() {
		switch leaf.Node.Kind {
		case quast.Nil:
			continue
		case quast.List:
		default:
			return 0, false
		}
		f := leaf.Node.Forms[0]
		if f.Unbounded || !f.IsConstant() || !exact.IsOne(f.Den) {
			return 0, false
		}
		c := f.Coef[len(f.Coef)-1]
		if !c.IsInt64() {
			return 0, false
		}
		if found && c.Int64() != val {
			return 0, false
		}
		val, found = c.Int64(), true
	}

	return val, found
}
