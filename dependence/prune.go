// SPDX-License-Identifier: MIT

package dependence

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/pip"
	"github.com/katalvlaran/lvpoly/quast"
)

// PruneTransitively removes the dependences implied by others. Per array it
// drops exact duplicates (same endpoints and domain, the first one is kept)
// and every direct edge S→T covered by a path S→…→T of forward edges whose
// lexicographic extrema match the direct edge's on both the source and the
// target iterators.
//
// Only forward edges with iterator coefficients in {-1, 0, 1} take part in
// covering, as source or as path; other edges are kept untouched. Spans are
// handled shortest first and removed edges never serve in later paths, so
// the reachability of the dependence graph is preserved.
//
// The result is a new slice; deps itself is never modified. On error deps
// is returned as is.
func PruneTransitively(scop *Scop, deps []*Dependence, opts ...Option) ([]*Dependence, error) {
	if scop == nil {
		return deps, ErrNilScop
	}
	o := gatherOptions(opts...)
	start := time.Now()
	defer func() { opDuration.WithLabelValues("prune").Observe(time.Since(start).Seconds()) }()

	for _, dep := range deps {
		if _, _, err := endpoints(scop, dep); err != nil {
			return deps, err
		}
	}

	p := &pruner{scop: scop, opts: o, removed: make(map[*Dependence]string)}
	var arrays []int
	byArray := make(map[int][]*Dependence)
	for _, dep := range deps {
		if _, ok := byArray[dep.ArrayID]; !ok {
			arrays = append(arrays, dep.ArrayID)
		}
		byArray[dep.ArrayID] = append(byArray[dep.ArrayID], dep)
	}
	for _, a := range arrays {
		if err := p.array(byArray[a]); err != nil {
			return deps, fmt.Errorf("PruneTransitively array %d: %w", a, err)
		}
	}

	out := make([]*Dependence, 0, len(deps))
	for _, dep := range deps {
		reason, gone := p.removed[dep]
		if !gone {
			out = append(out, dep)
			continue
		}
		prunedTotal.WithLabelValues(reason).Inc()
		o.Logger.Debug("dependence: pruned", "dep", dep.ID, "reason", reason)
	}

	return out, nil
}

type pruner struct {
	scop    *Scop
	opts    Options
	removed map[*Dependence]string
}

// array prunes the dependences of one array.
func (p *pruner) array(deps []*Dependence) error {
	for i, a := range deps {
		if p.removed[a] != "" {
			continue
		}
		for _, b := range deps[i+1:] {
			if p.removed[b] == "" && a.Source == b.Source && a.Target == b.Target && a.Domain.Equal(b.Domain) {
				p.removed[b] = "duplicate"
			}
		}
	}

	var edges []*Dependence
	maxSpan := 0
	for _, dep := range deps {
		if p.removed[dep] != "" || dep.Source >= dep.Target || !unimodular(p.scop, dep) ||
			p.scop.Statements[dep.Source].Depth+p.scop.Statements[dep.Target].Depth == 0 {
			continue
		}
		edges = append(edges, dep)
		maxSpan = max(maxSpan, dep.Target-dep.Source)
	}

	for span := 2; span <= maxSpan; span++ {
		for _, direct := range edges {
			if direct.Target-direct.Source != span || p.removed[direct] != "" {
				continue
			}
			covered, err := p.search(edges, direct, direct.Source, nil)
			if err != nil {
				return err
			}
			if covered {
				p.removed[direct] = "transitive"
			}
		}
	}

	return nil
}

// unimodular reports whether every iterator coefficient of dep's domain is
// -1, 0 or 1.
func unimodular(scop *Scop, dep *Dependence) bool {
	n := scop.Statements[dep.Source].Depth + scop.Statements[dep.Target].Depth
	for i := 0; i < dep.Domain.Rows(); i++ {
		row, _ := dep.Domain.Block(i, 1, 1+n)
		for _, v := range row {
			if !exact.IsUnitMagnitude(v) {
				return false
			}
		}
	}

	return true
}

// search extends path (ending at statement at) towards direct.Target and
// reports whether a complete path covers direct.
func (p *pruner) search(edges []*Dependence, direct *Dependence, at int, path []*Dependence) (bool, error) {
	for _, e := range edges {
		if e == direct || p.removed[e] != "" || e.Source != at || e.Target > direct.Target {
			continue
		}
		if len(path) == 0 {
			if e.Kind.ReadsAtSource() != direct.Kind.ReadsAtSource() {
				continue
			}
		} else if path[len(path)-1].Kind.ReadsAtTarget() != e.Kind.ReadsAtSource() {
			continue
		}
		next := append(path[:len(path):len(path)], e)
		if e.Target == direct.Target {
			if len(next) < 2 || e.Kind.ReadsAtTarget() != direct.Kind.ReadsAtTarget() {
				continue
			}
			ok, err := p.covers(direct, next)
			if err != nil || ok {
				return ok, err
			}
			continue
		}
		if len(next) >= direct.Target-direct.Source {
			continue
		}
		ok, err := p.search(edges, direct, e.Target, next)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// covers compares the lexicographic extrema of direct with those of the
// composite system of path, on the source block and on the target block.
func (p *pruner) covers(direct *Dependence, path []*Dependence) (bool, error) {
	st := p.scop.Statements
	ns, nt := st[direct.Source].Depth, st[direct.Target].Depth

	ds := newSystem(ns+nt, p.scop.NParam)
	if err := depSystem(ds, direct, ns, nt, 0, ns); err != nil {
		return false, err
	}

	// unknowns [source | target | intermediate statements in path order]
	offset := map[int]int{direct.Source: 0, direct.Target: ns}
	nvar := ns + nt
	for _, e := range path[:len(path)-1] {
		offset[e.Target] = nvar
		nvar += st[e.Target].Depth
	}
	ps := newSystem(nvar, p.scop.NParam)
	for _, e := range path {
		if err := depSystem(ps, e, st[e.Source].Depth, st[e.Target].Depth, offset[e.Source], offset[e.Target]); err != nil {
			return false, err
		}
	}

	for _, maximize := range []bool{false, true} {
		var extra []pip.Option
		if maximize {
			extra = append(extra, pip.WithMaximize())
		}
		queryTotal.WithLabelValues("prune").Add(2)
		a, err := pip.Solve(ds.problem(p.scop.Context), p.opts.solverOptions(extra...)...)
		if err != nil {
			return false, err
		}
		b, err := pip.Solve(ps.problem(p.scop.Context), p.opts.solverOptions(extra...)...)
		if err != nil {
			return false, err
		}
		if !bounded(a) || !bounded(b) {
			return false, nil
		}
		if !a.Project(0, ns).Equal(b.Project(0, ns)) || !a.Project(ns, nt).Equal(b.Project(ns, nt)) {
			return false, nil
		}
	}

	return true, nil
}

// bounded reports a tree free of Error leaves and unbounded forms.
func bounded(n *quast.Node) bool {
	for _, leaf := range n.Leaves() {
		switch leaf.Node.Kind {
		case quast.Error:
			return false
		case quast.List:
			for _, f := range leaf.Node.Forms {
				if f.Unbounded {
					return false
				}
			}
		}
	}

	return true
}
