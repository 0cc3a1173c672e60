// SPDX-License-Identifier: MIT

// Dense is a concrete, row-major matrix of exact integers, storing elements
// in a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Int values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Entries are owned by the matrix; accessors hand out copies.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Int // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): rows >= 0 (an empty constraint system is legal), cols > 0.
// Stage 2 (Prepare): allocate flat backing slice of fresh zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// FromInt64 builds a Dense from rectangular int64 rows. width is required
// explicitly so an empty system still carries its column count.
// Complexity: O(r*c).
func FromInt64(width int, rows ...[]int64) (*Dense, error) {
	m, err := NewDense(len(rows), width)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, denseErrorf("FromInt64", i, len(row), ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*width+j].SetInt64(v)
		}
	}

	return m, nil
}

// MustFromInt64 is FromInt64 that panics on malformed literals.
// Intended for tests and package examples with constant tables.
func MustFromInt64(width int, rows ...[]int64) *Dense {
	m, err := FromInt64(width, rows...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromRows builds a Dense by copying big-integer rows of equal width.
func FromRows(width int, rows ...[]*big.Int) (*Dense, error) {
	m, err := NewDense(len(rows), width)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err = m.setRow(i, row); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// Complexity: O(1) plus the copy of one integer.
func (m *Dense) At(row, col int) (*big.Int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt64 assigns v at (row, col).
func (m *Dense) SetInt64(row, col int, v int64) error {
	idx, err := m.indexOf("SetInt64", row, col)
	if err != nil {
		return err
	}
	m.data[idx].SetInt64(v)

	return nil
}

// Row returns a deep copy of row i.
func (m *Dense) Row(i int) ([]*big.Int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]*big.Int, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Int).Set(m.data[i*m.c+j])
	}

	return out, nil
}

// view returns the live backing slice of row i (package-internal, no copy).
func (m *Dense) view(i int) []*big.Int {
	return m.data[i*m.c : (i+1)*m.c]
}

// setRow copies vals into row i after width and nil checks.
func (m *Dense) setRow(i int, vals []*big.Int) error {
	if len(vals) != m.c {
		return denseErrorf("setRow", i, len(vals), ErrDimensionMismatch)
	}
	for j, v := range vals {
		if v == nil {
			return denseErrorf("setRow", i, j, ErrNilEntry)
		}
		m.data[i*m.c+j].Set(v)
	}

	return nil
}

// AppendRow grows the matrix by one row holding a copy of vals.
// Complexity: amortized O(c).
func (m *Dense) AppendRow(vals []*big.Int) error {
	if len(vals) != m.c {
		return denseErrorf("AppendRow", m.r, len(vals), ErrDimensionMismatch)
	}
	for j, v := range vals {
		if v == nil {
			return denseErrorf("AppendRow", m.r, j, ErrNilEntry)
		}
	}
	for _, v := range vals {
		m.data = append(m.data, new(big.Int).Set(v))
	}
	m.r++

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	data := make([]*big.Int, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Int).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and b have the same shape and entries.
// Nil matrices are equal only to each other.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(b.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
