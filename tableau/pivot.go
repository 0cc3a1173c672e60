// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvpoly/exact"
)

// entry returns the variable coefficient of row i at column j, treating unit
// rows as their implicit unit column.
func (t *Tableau) entry(i, j int) *big.Int {
	r := t.rows[i]
	if r.Coef == nil {
		if r.UnitCol == j {
			return big.NewInt(1)
		}

		return new(big.Int)
	}

	return r.Coef[j]
}

// chooseColumn runs the lexicographic ratio test on row r. Among columns with
// a positive coefficient it returns the one whose column over the unknown rows,
// divided by that coefficient, is lexicographically smallest. Division is
// replaced by cross-multiplication: col j beats col k at unknown row i when
// a[i][j]*a[r][k] < a[i][k]*a[r][j]. Returns -1 when no column qualifies.
func (t *Tableau) chooseColumn(r int) int {
	coef := t.rows[r].Coef
	best := -1
	var lhs, rhs big.Int
	for j := 0; j < t.nvar; j++ {
		if coef[j].Sign() <= 0 {
			continue
		}
		if best < 0 {
			best = j
			continue
		}
		for i := 0; i < t.nvar; i++ {
			lhs.Mul(t.entry(i, j), coef[best])
			rhs.Mul(t.entry(i, best), coef[j])
			if c := lhs.Cmp(&rhs); c != 0 {
				if c < 0 {
					best = j
				}
				break
			}
		}
	}

	return best
}

// Pivot performs one dual-simplex step on row r: the non-basic variable of the
// chosen column enters the basis, the slack of row r leaves and row r becomes
// a unit row. It returns false (and leaves the tableau untouched) when row r
// has no positive variable coefficient, which proves the current context
// infeasible for that row.
//
// For every row i with a non-zero coefficient in the pivot column j:
//
//	new[j] = a[i][j] * D[r]
//	new[k] = a[i][k]*a[r][j] - a[i][j]*a[r][k]   (k != j)
//	newD   = D[i] * a[r][j]
//
// followed by gcd reduction and sign reclassification. Rows with a zero
// coefficient keep their values and tags.
// Complexity: O(R·W) big-integer multiplications.
func (t *Tableau) Pivot(r int) (bool, error) {
	if r < 0 || r >= len(t.rows) {
		return false, fmt.Errorf("Pivot: row %d: %w", r, ErrRowIndex)
	}
	pr := t.rows[r]
	if pr.Coef == nil {
		return false, fmt.Errorf("Pivot: row %d: %w", r, ErrPivotOnUnit)
	}
	j := t.chooseColumn(r)
	if j < 0 {
		return false, nil
	}
	arj := pr.Coef[j]
	width := t.Width()
	var tmp big.Int
	for i, row := range t.rows {
		if i == r {
			continue
		}
		if row.Coef == nil {
			if row.UnitCol != j {
				continue
			}
			// The variable leaving the non-basic set becomes a full row.
			row.Coef = exact.ZeroVec(width)
			row.Coef[j].SetInt64(1)
			row.Den = big.NewInt(1)
		}
		aij := new(big.Int).Set(row.Coef[j])
		if aij.Sign() == 0 {
			continue
		}
		for k := 0; k < width; k++ {
			if k == j {
				row.Coef[k].Mul(aij, pr.Den)
				continue
			}
			row.Coef[k].Mul(row.Coef[k], arj)
			tmp.Mul(aij, pr.Coef[k])
			row.Coef[k].Sub(row.Coef[k], &tmp)
		}
		row.Den.Mul(row.Den, arj)
		row.Den = exact.ReduceVec(row.Coef, row.Den)
		if err := t.checkRow("Pivot", row); err != nil {
			return false, err
		}
		row.Sign = t.Classify(row)
	}
	// Row r is now the slack of column j.
	t.rows[r] = &Row{Sign: Unit, UnitCol: j, Den: big.NewInt(1), Origin: pr.Origin, Negated: pr.Negated}

	return true, t.updateDeterminant()
}

// updateDeterminant recomputes the lcm of all row denominators.
func (t *Tableau) updateDeterminant() error {
	det := big.NewInt(1)
	for _, row := range t.rows {
		if row.Coef != nil && !exact.IsOne(row.Den) {
			det = exact.Lcm(det, row.Den)
		}
	}
	t.det = det

	return t.cfg.Precision.Check("determinant", det)
}
