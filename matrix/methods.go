// SPDX-License-Identifier: MIT

// Structural helpers over constraint systems: flag queries, column blocks and
// the column-placement primitive used to assemble composite systems.
package matrix

import (
	"fmt"
	"math/big"
)

// IsEquality reports whether row i carries the equality flag.
func (m *Dense) IsEquality(i int) (bool, error) {
	if i < 0 || i >= m.r {
		return false, denseErrorf("IsEquality", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c].Sign() == EqualityFlag, nil
}

// Block returns a copy of row i restricted to columns [from, to).
func (m *Dense) Block(i, from, to int) ([]*big.Int, error) {
	if i < 0 || i >= m.r || from < 0 || to > m.c || from > to {
		return nil, denseErrorf("Block", i, from, ErrOutOfRange)
	}
	src := m.view(i)[from:to]
	out := make([]*big.Int, len(src))
	for j, v := range src {
		out[j] = new(big.Int).Set(v)
	}

	return out, nil
}

// Placement copies the source column range [From, From+Len) of a row into the
// destination starting at column To.
type Placement struct {
	From, Len, To int
}

// PlaceRow appends to dst one row built from row i of src: the flag column is
// copied as is and every Placement copies a column block. Columns of dst not
// covered by any placement stay zero; overlapping placements accumulate, which
// is how shared columns of composite systems are folded together.
// Complexity: O(dst.Cols() + Σ Len).
func PlaceRow(dst, src *Dense, i int, places ...Placement) error {
	if dst == nil || src == nil {
		return validatorErrorf("PlaceRow", ErrNilMatrix)
	}
	if i < 0 || i >= src.r {
		return denseErrorf("PlaceRow", i, 0, ErrOutOfRange)
	}
	row := make([]*big.Int, dst.c)
	for j := range row {
		row[j] = new(big.Int)
	}
	row[0].Set(src.data[i*src.c])
	srow := src.view(i)
	for _, p := range places {
		if p.From < 0 || p.From+p.Len > src.c || p.To < 0 || p.To+p.Len > dst.c {
			return fmt.Errorf("PlaceRow: placement %+v: %w", p, ErrOutOfRange)
		}
		for k := 0; k < p.Len; k++ {
			row[p.To+k].Add(row[p.To+k], srow[p.From+k])
		}
	}

	return dst.AppendRow(row)
}
