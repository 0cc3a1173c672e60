// SPDX-License-Identifier: MIT
package dependence_test

import (
	"testing"

	"github.com/katalvlaran/lvpoly/dependence"
	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scheduled returns two depth-1 statements with the two-dimensional
// schedules (c0, i) and (c1, i).
func scheduled(c0, c1 int64) *dependence.Scop {
	sched := func(c int64) *matrix.Dense {
		return matrix.MustFromInt64(5,
			[]int64{0, 1, 0, 0, -c}, // θ0 = c
			[]int64{0, 0, 1, -1, 0}, // θ1 = i
		)
	}

	return &dependence.Scop{Statements: []*dependence.Statement{
		{Depth: 1, Loops: []int{0}, Scattering: sched(c0), NScatt: 2},
		{Depth: 1, Loops: []int{0}, Scattering: sched(c1), NScatt: 2},
	}}
}

func TestCheckViolations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		c0, c1 int64
		rows   [][]int64
		want   []dependence.Violation
	}{
		{"same iteration", 0, 0, [][]int64{same}, nil},
		{"forward distance", 0, 0, [][]int64{{0, -1, 1, -1}}, nil},                                  // t = s + 1
		{"backward distance", 0, 0, [][]int64{{0, -1, 1, 1}}, []dependence.Violation{{DepID: 9, Dim: 1}}}, // t = s - 1
		{"carried by first dim", 0, 1, [][]int64{{0, -1, 1, 1}}, nil},
		{"first dim reversed", 1, 0, [][]int64{same}, []dependence.Violation{{DepID: 9, Dim: 0}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dep := edge(t, 9, 0, 1, dependence.RAW, tc.rows...)
			got, err := dependence.CheckViolations(scheduled(tc.c0, tc.c1), []*dependence.Dependence{dep})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want) == 0, dep.Valid)
		})
	}
}

func TestCheckViolations_ScatteringMismatch(t *testing.T) {
	t.Parallel()

	scop := scheduled(0, 0)
	scop.Statements[1].Scattering = nil
	dep := edge(t, 1, 0, 1, dependence.RAW, same)
	dep.Valid = true
	_, err := dependence.CheckViolations(scop, []*dependence.Dependence{dep})
	require.ErrorIs(t, err, dependence.ErrScatteringMismatch)
	assert.True(t, dep.Valid, "unchanged on error")

	scop = scheduled(0, 0)
	scop.Statements[1].NScatt = 1
	_, err = dependence.CheckViolations(scop, []*dependence.Dependence{dep})
	require.ErrorIs(t, err, dependence.ErrScatteringMismatch)
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	scop := &dependence.Scop{Statements: []*dependence.Statement{
		{Depth: 2, Loops: []int{0, 1}},
		{Depth: 2, Loops: []int{0, 2}},
		{Depth: 0},
	}}
	a := &dependence.Dependence{Source: 0, Target: 1, Domain: matrix.MustFromInt64(6)}
	b := &dependence.Dependence{Source: 0, Target: 0, Domain: matrix.MustFromInt64(6)}
	c := &dependence.Dependence{Source: 2, Target: 0, Domain: matrix.MustFromInt64(4)}
	require.NoError(t, dependence.Annotate(scop, []*dependence.Dependence{a, b, c}))
	assert.Equal(t, 1, a.Depth)
	assert.Equal(t, 2, b.Depth)
	assert.Equal(t, 0, c.Depth)

	bad := &dependence.Dependence{Source: 0, Target: 1, Domain: matrix.MustFromInt64(3)}
	a.Depth = 7
	require.ErrorIs(t, dependence.Annotate(scop, []*dependence.Dependence{a, bad}), dependence.ErrDomainWidth)
	assert.Equal(t, 7, a.Depth)
	assert.ErrorIs(t, dependence.Annotate(nil, nil), dependence.ErrNilScop)
}
