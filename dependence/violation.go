// SPDX-License-Identifier: MIT

package dependence

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/katalvlaran/lvpoly/pip"
)

// CheckViolations tests every dependence against the statements' scattering.
// A dependence is violated at dimension d when some pair of its instances has
// equal scattering on dimensions 0..d-1 and the source scheduled strictly
// after the target on d. The first violated dimension is reported and the
// dependence's Valid flag is cleared; all other dependences become Valid.
// On error no dependence is modified.
func CheckViolations(scop *Scop, deps []*Dependence, opts ...Option) ([]Violation, error) {
	if scop == nil {
		return nil, ErrNilScop
	}
	o := gatherOptions(opts...)
	start := time.Now()
	defer func() { opDuration.WithLabelValues("violation").Observe(time.Since(start).Seconds()) }()

	var out []Violation
	valid := make([]bool, len(deps))
	for k, dep := range deps {
		src, tgt, err := endpoints(scop, dep)
		if err != nil {
			return nil, err
		}
		if err := checkScattering(scop, src, tgt); err != nil {
			return nil, fmt.Errorf("%s: %w", dep, err)
		}
		dim, violated, err := violatedAt(scop, dep, src, tgt, o)
		if err != nil {
			return nil, fmt.Errorf("CheckViolations %s: %w", dep, err)
		}
		valid[k] = !violated
		if violated {
			out = append(out, Violation{DepID: dep.ID, Dim: dim})
			o.Logger.Debug("dependence: violated", "dep", dep.ID, "dim", dim)
		}
	}
	for k, dep := range deps {
		dep.Valid = valid[k]
	}
	violationTotal.Add(float64(len(out)))

	return out, nil
}

func checkScattering(scop *Scop, src, tgt *Statement) error {
	if src.Scattering == nil || tgt.Scattering == nil || src.NScatt != tgt.NScatt {
		return ErrScatteringMismatch
	}
	for _, st := range []*Statement{src, tgt} {
		if err := matrix.ValidateConstraints(st.Scattering, 1+st.NScatt+st.Depth+scop.NParam+1); err != nil {
			return fmt.Errorf("%w: %w", ErrScatteringMismatch, err)
		}
	}

	return nil
}

// violatedAt scans the scattering dimensions in order over the unknowns
// [θS | θT | s | t].
func violatedAt(scop *Scop, dep *Dependence, src, tgt *Statement, o Options) (int, bool, error) {
	n, ns, nt := src.NScatt, src.Depth, tgt.Depth
	base := newSystem(2*n+ns+nt, scop.NParam)
	if err := depSystem(base, dep, ns, nt, 2*n, 2*n+ns); err != nil {
		return 0, false, err
	}
	if err := base.place(src.Scattering, 1+n+ns,
		matrix.Placement{From: 1, Len: n, To: 0},
		matrix.Placement{From: 1 + n, Len: ns, To: 2 * n},
	); err != nil {
		return 0, false, err
	}
	if err := base.place(tgt.Scattering, 1+n+nt,
		matrix.Placement{From: 1, Len: n, To: n},
		matrix.Placement{From: 1 + n, Len: nt, To: 2*n + ns},
	); err != nil {
		return 0, false, err
	}

	for d := 0; d < n; d++ {
		// θS_d - θT_d >= 1 with equal prefix
		after := base.clone()
		if err := after.add(false, -1, [2]int{d, 1}, [2]int{n + d, -1}); err != nil {
			return 0, false, err
		}
		queryTotal.WithLabelValues("violation").Inc()
		ok, err := pip.Feasible(after.problem(scop.Context), o.solverOptions()...)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return d, true, nil
		}

		// extend the prefix; once equality is impossible the dependence is
		// carried by dimension d and later dimensions cannot break it
		if err := base.add(true, 0, [2]int{d, 1}, [2]int{n + d, -1}); err != nil {
			return 0, false, err
		}
		queryTotal.WithLabelValues("violation").Inc()
		ok, err = pip.Feasible(base.problem(scop.Context), o.solverOptions()...)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
	}

	return 0, false, nil
}
