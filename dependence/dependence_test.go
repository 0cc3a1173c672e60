// SPDX-License-Identifier: MIT
package dependence_test

import (
	"testing"

	"github.com/katalvlaran/lvpoly/dependence"
	"github.com/katalvlaran/lvpoly/matrix"
)

// box returns the rows 0 <= x_k <= hi for every iterator of a system of the
// given width over [eq | iterators (n) | const] (no parameters).
func box(width, n int, hi int64) [][]int64 {
	var rows [][]int64
	for k := 0; k < n; k++ {
		lo := make([]int64, width)
		lo[0], lo[1+k] = 1, 1
		up := make([]int64, width)
		up[0], up[1+k], up[width-1] = 1, -1, hi
		rows = append(rows, lo, up)
	}

	return rows
}

// chainScop returns n statements of depth 1 inside loop 0, no parameters.
func chainScop(n int) *dependence.Scop {
	scop := &dependence.Scop{}
	for i := 0; i < n; i++ {
		scop.Statements = append(scop.Statements, &dependence.Statement{Depth: 1, Loops: []int{0}})
	}

	return scop
}

// edge builds a depth-1 to depth-1 dependence over 0 <= s, t <= 9 plus rows.
func edge(t *testing.T, id, src, tgt int, kind dependence.Kind, extra ...[]int64) *dependence.Dependence {
	t.Helper()
	rows := append(box(4, 2, 9), extra...)

	return &dependence.Dependence{
		ID: id, Source: src, Target: tgt, Kind: kind,
		Domain: matrix.MustFromInt64(4, rows...),
	}
}

// same is t - s = 0 over [eq | s | t | const].
var same = []int64{0, -1, 1, 0}
