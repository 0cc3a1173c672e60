// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/lvpoly/exact"
)

// minCapacity is the smallest row capacity a tableau grows to.
const minCapacity = 8

// Tableau is the simplex tableau of one orchestrator call. It is never shared
// between sibling branches: a branch works on a Clone or an Expand result.
type Tableau struct {
	nvar, nparam int
	rows         []*Row
	capRows      int
	det          *big.Int // lcm of row denominators, checked under Fixed64
	cfg          Config
}

// New returns an empty tableau for nvar unknowns and nparam parameters with
// room for capRows rows before the first grow.
func New(nvar, nparam, capRows int, cfg Config) *Tableau {
	if capRows < minCapacity {
		capRows = minCapacity
	}

	return &Tableau{
		nvar:    nvar,
		nparam:  nparam,
		rows:    make([]*Row, 0, capRows),
		capRows: capRows,
		det:     big.NewInt(1),
		cfg:     cfg,
	}
}

// NVar returns the number of variable columns.
func (t *Tableau) NVar() int { return t.nvar }

// NParam returns the number of parameter columns.
func (t *Tableau) NParam() int { return t.nparam }

// Width returns nvar + nparam + 1.
func (t *Tableau) Width() int { return t.nvar + t.nparam + 1 }

// Len returns the number of rows.
func (t *Tableau) Len() int { return len(t.rows) }

// Cap returns the row capacity before the next grow.
func (t *Tableau) Cap() int { return t.capRows }

// Config returns the arithmetic and sign policies.
func (t *Tableau) Config() Config { return t.cfg }

// ConstCol returns the index of the constant column.
func (t *Tableau) ConstCol() int { return t.nvar + t.nparam }

// Determinant returns a copy of the running determinant (lcm of denominators).
func (t *Tableau) Determinant() *big.Int { return new(big.Int).Set(t.det) }

// Row returns the live row i. The caller owns the tableau, so mutation of the
// Sign tag is allowed; coefficients must be left to the pivot engine.
func (t *Tableau) Row(i int) *Row { return t.rows[i] }

// grow reallocates the row slice before an insertion would overflow it.
func (t *Tableau) grow() {
	if len(t.rows) < t.capRows {
		return
	}
	nc := 2 * t.capRows
	if nc < minCapacity {
		nc = minCapacity
	}
	rows := make([]*Row, len(t.rows), nc)
	copy(rows, t.rows)
	t.rows, t.capRows = rows, nc
}

// AppendUnit appends a row equal to the non-basic variable of column col.
func (t *Tableau) AppendUnit(col int) int {
	t.grow()
	t.rows = append(t.rows, &Row{Sign: Unit, UnitCol: col, Den: big.NewInt(1), Origin: NoOrigin})

	return len(t.rows) - 1
}

// AppendRow appends a copy of coef/den, reduces it by its gcd, classifies its
// sign and returns the new row index.
func (t *Tableau) AppendRow(coef []*big.Int, den *big.Int, origin int, negated bool) (int, error) {
	if len(coef) != t.Width() {
		return -1, fmt.Errorf("AppendRow: have %d want %d: %w", len(coef), t.Width(), ErrRowWidth)
	}
	if den == nil || den.Sign() <= 0 {
		return -1, fmt.Errorf("AppendRow: %w", ErrBadDenominator)
	}
	row := &Row{Coef: exact.CopyVec(coef), Den: new(big.Int).Set(den), Origin: origin, Negated: negated}
	row.Den = exact.ReduceVec(row.Coef, row.Den)
	if err := t.checkRow("AppendRow", row); err != nil {
		return -1, err
	}
	row.Sign = t.Classify(row)
	t.grow()
	t.rows = append(t.rows, row)
	t.det = exact.Lcm(t.det, row.Den)

	return len(t.rows) - 1, nil
}

// Expand returns a larger tableau preserving rows and tags: extraRows of
// additional capacity and extraCols zero parameter columns appended after the
// existing parameters. The receiver is left untouched.
// Complexity: O(R·W).
func (t *Tableau) Expand(extraRows, extraCols int) *Tableau {
	nt := &Tableau{
		nvar:    t.nvar,
		nparam:  t.nparam + extraCols,
		rows:    make([]*Row, 0, len(t.rows)+extraRows),
		capRows: len(t.rows) + extraRows,
		det:     new(big.Int).Set(t.det),
		cfg:     t.cfg,
	}
	if nt.capRows < minCapacity {
		nt.capRows = minCapacity
		nt.rows = make([]*Row, 0, nt.capRows)
	}
	at := t.nvar + t.nparam
	for _, r := range t.rows {
		nt.rows = append(nt.rows, r.clone(at, extraCols))
	}

	return nt
}

// Clone returns an independent deep copy.
func (t *Tableau) Clone() *Tableau { return t.Expand(0, 0) }

// SetSign overrides the tag of row i (used when a context case split decides it).
func (t *Tableau) SetSign(i int, s Sign) { t.rows[i].Sign = s }

// FirstWithSign returns the index of the first row tagged s, or -1.
func (t *Tableau) FirstWithSign(s Sign) int {
	for i, r := range t.rows {
		if r.Sign == s {
			return i
		}
	}

	return -1
}

// ParamPart returns copies of the parameter+constant numerators of row i and
// its denominator. Unit rows have value zero.
func (t *Tableau) ParamPart(i int) ([]*big.Int, *big.Int) {
	r := t.rows[i]
	if r.Coef == nil {
		return exact.ZeroVec(t.nparam + 1), big.NewInt(1)
	}

	return exact.CopyVec(r.Coef[t.nvar:]), new(big.Int).Set(r.Den)
}

// VarPart returns copies of the variable numerators of row i.
func (t *Tableau) VarPart(i int) []*big.Int {
	r := t.rows[i]
	if r.Coef == nil {
		v := exact.ZeroVec(t.nvar)
		v[r.UnitCol].SetInt64(1)

		return v
	}

	return exact.CopyVec(r.Coef[:t.nvar])
}

// HasPositiveVar reports whether row i has a positive variable coefficient.
func (t *Tableau) HasPositiveVar(i int) bool {
	r := t.rows[i]
	if r.Coef == nil {
		return true
	}
	for j := 0; j < t.nvar; j++ {
		if r.Coef[j].Sign() > 0 {
			return true
		}
	}

	return false
}

// UnitRowFor returns the index of the unit row bound to column col, or -1.
func (t *Tableau) UnitRowFor(col int) int {
	for i, r := range t.rows {
		if r.Sign == Unit && r.UnitCol == col {
			return i
		}
	}

	return -1
}

// Classify computes the quick sign of r from its parameter part.
//
//   - a non-zero big-parameter coefficient decides alone;
//   - no parameter term: the sign of the constant;
//   - parameters >= 0 and all terms >= 0: Plus; all parameter terms <= 0 with
//     a negative constant: Minus;
//   - otherwise Unknown (a context test is needed).
func (t *Tableau) Classify(r *Row) Sign {
	if r.Coef == nil {
		return Unit
	}
	base := t.nvar
	bp := t.cfg.Policy.BigParam
	if bp >= 0 && bp < t.nparam {
		switch r.Coef[base+bp].Sign() {
		case 1:
			return Plus
		case -1:
			return Minus
		}
	}
	var pos, neg bool
	for k := 0; k < t.nparam; k++ {
		if k == bp {
			continue
		}
		switch r.Coef[base+k].Sign() {
		case 1:
			pos = true
		case -1:
			neg = true
		}
	}
	c := r.Coef[t.ConstCol()].Sign()
	if !pos && !neg {
		switch c {
		case 0:
			return Zero
		case 1:
			return Plus
		default:
			return Minus
		}
	}
	if t.cfg.Policy.ParamsUnrestricted {
		return Unknown
	}
	if pos && !neg && c >= 0 {
		return Plus
	}
	if neg && !pos && c < 0 {
		return Minus
	}

	return Unknown
}

// SortRows stably orders rows[from:] by ascending largest-coefficient
// magnitude. Unit rows count as magnitude one. Rows before from (the unknowns)
// keep their order: it is the lexicographic objective.
func (t *Tableau) SortRows(from int) {
	if from >= len(t.rows) {
		return
	}
	tail := t.rows[from:]
	keys := make(map[*Row]*big.Int, len(tail))
	for _, r := range tail {
		if r.Coef == nil {
			keys[r] = big.NewInt(1)
			continue
		}
		keys[r] = exact.MaxAbs(r.Coef)
	}
	sort.SliceStable(tail, func(a, b int) bool {
		return keys[tail[a]].Cmp(keys[tail[b]]) < 0
	})
}

// String renders the tableau one row per line for debugging.
func (t *Tableau) String() string {
	var sb strings.Builder
	for i, r := range t.rows {
		fmt.Fprintf(&sb, "%3d %-7s ", i, r.Sign)
		if r.Coef == nil {
			fmt.Fprintf(&sb, "unit(%d)\n", r.UnitCol)
			continue
		}
		sb.WriteByte('[')
		for k, v := range r.Coef {
			if k > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(v.String())
		}
		fmt.Fprintf(&sb, "]/%s\n", r.Den)
	}

	return sb.String()
}

// checkRow applies the precision policy to every value of row.
func (t *Tableau) checkRow(what string, row *Row) error {
	if err := t.cfg.Precision.Check(what, row.Coef...); err != nil {
		return err
	}

	return t.cfg.Precision.Check(what, row.Den)
}
