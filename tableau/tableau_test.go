// SPDX-License-Identifier: MIT
package tableau_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(xs ...int64) []*big.Int { return exact.VecFromInt64(xs...) }

// newUnknowns returns a tableau with one unit row per unknown.
func newUnknowns(t *testing.T, nvar, nparam int, cfg tableau.Config) *tableau.Tableau {
	t.Helper()
	tab := tableau.New(nvar, nparam, 0, cfg)
	for j := 0; j < nvar; j++ {
		tab.AppendUnit(j)
	}

	return tab
}

func TestAppendRow_ReducesAndClassifies(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 1, 1, tableau.DefaultConfig())
	i, err := tab.AppendRow(vec(2, 4, -6), big.NewInt(2), 0, false)
	require.NoError(t, err)

	num, den := tab.ParamPart(i)
	assert.True(t, exact.EqualVec(vec(2, -3), num), "got %v", num)
	assert.Equal(t, int64(1), den.Int64())
	assert.Equal(t, tableau.Unknown, tab.Row(i).Sign)

	_, err = tab.AppendRow(vec(1, 2), big.NewInt(1), 0, false)
	assert.ErrorIs(t, err, tableau.ErrRowWidth)
	_, err = tab.AppendRow(vec(1, 2, 3), big.NewInt(0), 0, false)
	assert.ErrorIs(t, err, tableau.ErrBadDenominator)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy tableau.SignPolicy
		coef   []*big.Int
		want   tableau.Sign
	}{
		{"zero", tableau.SignPolicy{BigParam: -1}, vec(1, 0, 0, 0), tableau.Zero},
		{"constant positive", tableau.SignPolicy{BigParam: -1}, vec(0, 0, 0, 4), tableau.Plus},
		{"constant negative", tableau.SignPolicy{BigParam: -1}, vec(0, 0, 0, -4), tableau.Minus},
		{"params nonnegative", tableau.SignPolicy{BigParam: -1}, vec(0, 1, 2, 0), tableau.Plus},
		{"params negative", tableau.SignPolicy{BigParam: -1}, vec(0, -1, 0, -1), tableau.Minus},
		{"params negative zero const", tableau.SignPolicy{BigParam: -1}, vec(0, -1, 0, 0), tableau.Unknown},
		{"mixed", tableau.SignPolicy{BigParam: -1}, vec(0, 1, -1, 0), tableau.Unknown},
		{"unrestricted", tableau.SignPolicy{BigParam: -1, ParamsUnrestricted: true}, vec(0, 1, 0, 5), tableau.Unknown},
		{"big parameter dominates", tableau.SignPolicy{BigParam: 1}, vec(0, -9, 1, -9), tableau.Plus},
		{"big parameter negative", tableau.SignPolicy{BigParam: 1}, vec(0, 9, -1, 9), tableau.Minus},
		{"big parameter absent", tableau.SignPolicy{BigParam: 1}, vec(0, 3, 0, 0), tableau.Plus},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tab := tableau.New(1, 2, 0, tableau.Config{Policy: tc.policy})
			i, err := tab.AppendRow(tc.coef, big.NewInt(1), tableau.NoOrigin, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tab.Row(i).Sign)
		})
	}
}

// TestPivot_SingleBound pivots x - 3 >= 0 and expects x = s + 3.
func TestPivot_SingleBound(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 1, 0, tableau.DefaultConfig())
	r, err := tab.AppendRow(vec(1, -3), big.NewInt(1), 0, false)
	require.NoError(t, err)
	require.Equal(t, tableau.Minus, tab.Row(r).Sign)

	ok, err := tab.Pivot(r)
	require.NoError(t, err)
	require.True(t, ok)

	num, den := tab.ParamPart(0)
	assert.True(t, exact.EqualVec(vec(3), num))
	assert.Equal(t, int64(1), den.Int64())
	assert.Equal(t, tableau.Plus, tab.Row(0).Sign)
	assert.Equal(t, tableau.Unit, tab.Row(r).Sign)
	assert.Equal(t, 0, tab.Row(r).Origin)
	assert.Equal(t, r, tab.UnitRowFor(0))
}

// TestPivot_Fractional pivots 2x - 1 >= 0: x = (s + 1)/2.
func TestPivot_Fractional(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 1, 0, tableau.DefaultConfig())
	r, err := tab.AppendRow(vec(2, -1), big.NewInt(1), 0, false)
	require.NoError(t, err)
	ok, err := tab.Pivot(r)
	require.NoError(t, err)
	require.True(t, ok)

	num, den := tab.ParamPart(0)
	assert.True(t, exact.EqualVec(vec(1), num))
	assert.Equal(t, int64(2), den.Int64())
	assert.True(t, exact.EqualVec(vec(1), tab.VarPart(0)))
	assert.Equal(t, int64(2), tab.Determinant().Int64())
}

// TestPivot_LexicographicColumn checks that x + y >= 1 raises y, not x.
func TestPivot_LexicographicColumn(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 2, 0, tableau.DefaultConfig())
	r, err := tab.AppendRow(vec(1, 1, -1), big.NewInt(1), 0, false)
	require.NoError(t, err)
	ok, err := tab.Pivot(r)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, tableau.Unit, tab.Row(0).Sign, "x stays non-basic")
	num, _ := tab.ParamPart(1)
	assert.True(t, exact.EqualVec(vec(1), num))
	assert.True(t, exact.EqualVec(vec(-1, 1), tab.VarPart(1)))
}

func TestPivot_NoPositiveColumn(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 1, 0, tableau.DefaultConfig())
	r, err := tab.AppendRow(vec(-1, -1), big.NewInt(1), 0, false)
	require.NoError(t, err)
	ok, err := tab.Pivot(r)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = tab.Pivot(0)
	assert.ErrorIs(t, err, tableau.ErrPivotOnUnit)
	_, err = tab.Pivot(9)
	assert.ErrorIs(t, err, tableau.ErrRowIndex)
}

func TestPivot_Fixed64Overflow(t *testing.T) {
	t.Parallel()

	cfg := tableau.DefaultConfig()
	cfg.Precision = exact.Fixed64
	tab := newUnknowns(t, 1, 0, cfg)
	a := new(big.Int).Lsh(big.NewInt(1), 40)
	r, err := tab.AppendRow([]*big.Int{a, big.NewInt(-1)}, big.NewInt(1), 0, false)
	require.NoError(t, err)
	c := new(big.Int).Add(a, big.NewInt(1))
	_, err = tab.AppendRow([]*big.Int{big.NewInt(3), c}, big.NewInt(1), 1, false)
	require.NoError(t, err)

	_, err = tab.Pivot(r)
	assert.ErrorIs(t, err, exact.ErrArithmeticOverflow)

	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	_, err = tab.AppendRow([]*big.Int{huge, big.NewInt(0)}, big.NewInt(1), 2, false)
	assert.ErrorIs(t, err, exact.ErrArithmeticOverflow)
}

func TestExpand_InsertsParamColumns(t *testing.T) {
	t.Parallel()

	tab := tableau.New(1, 1, 1, tableau.DefaultConfig())
	tab.AppendUnit(0)
	i, err := tab.AppendRow(vec(1, 2, 3), big.NewInt(1), 0, false)
	require.NoError(t, err)

	big2 := tab.Expand(4, 1)
	assert.Equal(t, 2, big2.NParam())
	assert.Equal(t, 4, big2.Width())
	assert.GreaterOrEqual(t, big2.Cap(), tab.Len()+4)
	num, _ := big2.ParamPart(i)
	assert.True(t, exact.EqualVec(vec(2, 0, 3), num), "got %v", num)

	// the source tableau is untouched
	num, _ = tab.ParamPart(i)
	assert.True(t, exact.EqualVec(vec(2, 3), num))
}

func TestClone_Isolated(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 1, 0, tableau.DefaultConfig())
	r, err := tab.AppendRow(vec(1, -3), big.NewInt(1), 0, false)
	require.NoError(t, err)

	c := tab.Clone()
	ok, err := c.Pivot(r)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, tableau.Unit, tab.Row(0).Sign)
	assert.Equal(t, tableau.Minus, tab.Row(r).Sign)
	assert.NotEqual(t, tableau.Unit, c.Row(0).Sign)
}

func TestGrow_BeyondCapacity(t *testing.T) {
	t.Parallel()

	tab := tableau.New(1, 0, 1, tableau.DefaultConfig())
	start := tab.Cap()
	for k := 0; k < start+3; k++ {
		_, err := tab.AppendRow(vec(1, int64(k)), big.NewInt(1), k, false)
		require.NoError(t, err)
	}
	assert.Equal(t, start+3, tab.Len())
	assert.GreaterOrEqual(t, tab.Cap(), tab.Len())
}

func TestSortRows_StableByMagnitude(t *testing.T) {
	t.Parallel()

	tab := newUnknowns(t, 1, 0, tableau.DefaultConfig())
	_, _ = tab.AppendRow(vec(5, 1), big.NewInt(1), 0, false)
	_, _ = tab.AppendRow(vec(1, 2), big.NewInt(1), 1, false)
	_, _ = tab.AppendRow(vec(3, 1), big.NewInt(1), 2, false)
	_, _ = tab.AppendRow(vec(1, 1), big.NewInt(1), 3, false)

	tab.SortRows(1)
	var got []int
	for i := 1; i < tab.Len(); i++ {
		got = append(got, tab.Row(i).Origin)
	}
	assert.Equal(t, []int{3, 1, 2, 0}, got)
	assert.Equal(t, tableau.Unit, tab.Row(0).Sign)
}
