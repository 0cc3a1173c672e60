// SPDX-License-Identifier: MIT
package dependence_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpoly/dependence"
	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(deps []*dependence.Dependence) []int {
	out := make([]int, len(deps))
	for i, d := range deps {
		out[i] = d.ID
	}

	return out
}

func TestPruneTransitively_Duplicates(t *testing.T) {
	t.Parallel()

	scop := chainScop(2)
	deps := []*dependence.Dependence{
		edge(t, 1, 0, 1, dependence.RAW, same),
		edge(t, 2, 0, 1, dependence.WAW, same),
	}
	out, err := dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(out))
	assert.Len(t, deps, 2, "input list untouched")

	// a different array keeps its own copy
	deps[1].ArrayID = 3
	out, err = dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(out))
}

func TestPruneTransitively_Chain(t *testing.T) {
	t.Parallel()

	scop := chainScop(3)
	deps := []*dependence.Dependence{
		edge(t, 1, 0, 1, dependence.RAW, same),
		edge(t, 2, 1, 2, dependence.WAR, same),
		edge(t, 3, 0, 2, dependence.WAW, same),
	}
	out, err := dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(out))
}

func TestPruneTransitively_PerturbedDirectEdgeKept(t *testing.T) {
	t.Parallel()

	scop := chainScop(3)
	deps := []*dependence.Dependence{
		edge(t, 1, 0, 1, dependence.RAW, same),
		edge(t, 2, 1, 2, dependence.WAR, same),
		edge(t, 3, 0, 2, dependence.WAW, same, []int64{1, -1, 0, 8}), // s <= 8
	}
	out, err := dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(out))
}

func TestPruneTransitively_TargetOnlyPerturbationKept(t *testing.T) {
	t.Parallel()

	path := func() []*dependence.Dependence {
		return []*dependence.Dependence{
			edge(t, 1, 0, 1, dependence.RAW, same),
			edge(t, 2, 1, 2, dependence.WAR, same),
		}
	}
	after := []int64{1, -1, 1, 0} // t >= s

	// source extrema 0 and 9 on both sides; target extrema 0 and 9 on the path
	scop := chainScop(3)
	deps := append(path(), edge(t, 3, 0, 2, dependence.WAW, after))
	out, err := dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(out))

	// t >= 1 moves only the target minimum
	deps = append(path(), edge(t, 3, 0, 2, dependence.WAW, after, []int64{1, 0, 1, -1}))
	out, err = dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(out))
}

// reachable returns the transitive closure of the statement graph of deps.
func reachable(n int, deps []*dependence.Dependence) [][]bool {
	r := make([][]bool, n)
	for i := range r {
		r[i] = make([]bool, n)
	}
	for _, d := range deps {
		r[d.Source][d.Target] = true
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				r[i][j] = r[i][j] || (r[i][k] && r[k][j])
			}
		}
	}

	return r
}

// TestPruneTransitively_PreservesReachability prunes random chain graphs of
// mixed kinds and domains and compares the closure before and after.
func TestPruneTransitively_PreservesReachability(t *testing.T) {
	t.Parallel()

	kinds := []dependence.Kind{dependence.RAW, dependence.WAR, dependence.WAW, dependence.RAR}
	domains := [][][]int64{
		{same},
		{same, {1, -1, 0, 8}},           // s <= 8
		{same, {1, 0, 1, -1}},           // t >= 1
		{{0, -1, 1, -1}},                // t = s + 1
		{{1, -1, 1, 0}},                 // t >= s
		{{0, -2, 1, 0}},                 // t = 2s
		{same, {1, 1, 0, -2}},           // s >= 2
		{{1, -1, 1, -1}, {1, 1, -1, 3}}, // s + 1 <= t <= s + 3
	}
	rng := rand.New(rand.NewSource(20240917))
	for trial := 0; trial < 25; trial++ {
		n := 3 + rng.Intn(3)
		scop := chainScop(n)
		var deps []*dependence.Dependence
		for id, m := 0, 4+rng.Intn(6); id < m; id++ {
			src, tgt := rng.Intn(n), rng.Intn(n)
			if rng.Intn(4) != 0 && src > tgt {
				src, tgt = tgt, src
			}
			d := edge(t, id, src, tgt, kinds[rng.Intn(len(kinds))], domains[rng.Intn(len(domains))]...)
			d.ArrayID = rng.Intn(2)
			deps = append(deps, d)
		}

		out, err := dependence.PruneTransitively(scop, deps)
		require.NoErrorf(t, err, "trial %d", trial)
		assert.LessOrEqual(t, len(out), len(deps))
		assert.Equalf(t, reachable(n, deps), reachable(n, out), "trial %d kept %v", trial, ids(out))
	}
}

func TestPruneTransitively_IncompatibleKinds(t *testing.T) {
	t.Parallel()

	// a WAW edge cannot follow a RAW edge: the read in S1 is not a write
	scop := chainScop(3)
	deps := []*dependence.Dependence{
		edge(t, 1, 0, 1, dependence.RAW, same),
		edge(t, 2, 1, 2, dependence.WAW, same),
		edge(t, 3, 0, 2, dependence.WAW, same),
	}
	out, err := dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(out))
}

func TestPruneTransitively_IgnoredEdges(t *testing.T) {
	t.Parallel()

	scop := chainScop(3)
	deps := []*dependence.Dependence{
		edge(t, 1, 0, 1, dependence.RAW, same),
		edge(t, 2, 1, 2, dependence.WAR, []int64{0, -2, 1, 0}), // t = 2s
		edge(t, 3, 0, 2, dependence.WAW, same),
		edge(t, 4, 2, 0, dependence.RAW, same),
		edge(t, 5, 1, 1, dependence.RAR, same),
	}
	out, err := dependence.PruneTransitively(scop, deps)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(out))
}

func TestPruneTransitively_ErrorLeavesInput(t *testing.T) {
	t.Parallel()

	scop := chainScop(3)
	deps := []*dependence.Dependence{
		edge(t, 1, 0, 1, dependence.RAW, same),
		{ID: 2, Source: 1, Target: 2, Domain: matrix.MustFromInt64(3, []int64{1, 1, 0})},
	}
	out, err := dependence.PruneTransitively(scop, deps)
	require.ErrorIs(t, err, dependence.ErrDomainWidth)
	assert.Equal(t, deps, out)

	out, err = dependence.PruneTransitively(nil, deps)
	require.ErrorIs(t, err, dependence.ErrNilScop)
	assert.Equal(t, deps, out)
}
