// SPDX-License-Identifier: MIT
package quast_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvpoly/exact"
	"github.com/katalvlaran/lvpoly/quast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Cmp(b) == 0
})

func vec(xs ...int64) []*big.Int { return exact.VecFromInt64(xs...) }

// branchTape records if(p0 >= 0; [p0 + 1]; nil) over one parameter.
func branchTape(t *testing.T) *quast.Tape {
	t.Helper()
	tp := quast.NewTape(0)
	require.NoError(t, tp.If(vec(1, 0)))
	require.NoError(t, tp.List(1, 0))
	require.NoError(t, tp.Form(vec(1, 1), big.NewInt(1)))
	require.NoError(t, tp.Nil())

	return tp
}

func TestBuild_Branch(t *testing.T) {
	t.Parallel()

	tp := branchTape(t)
	root, next, err := quast.Build(tp, 0, quast.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, tp.Len(), next)
	assert.Equal(t, "if(p0 >= 0; [p0 + 1]; nil)", root.String())
	assert.True(t, root.HasSolution())
	assert.False(t, root.IsNil())

	want := &quast.Node{
		Kind: quast.If,
		Cond: vec(1, 0),
		Then: &quast.Node{Kind: quast.List, Forms: []quast.Form{{Coef: vec(1, 1), Den: big.NewInt(1)}}},
		Else: &quast.Node{Kind: quast.Nil},
	}
	if diff := cmp.Diff(want, root, bigIntComparer); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

// TestBuild_Repeatable reads the same tape twice and checks the tape is not
// consumed or mutated.
func TestBuild_Repeatable(t *testing.T) {
	t.Parallel()

	tp := branchTape(t)
	a, _, err := quast.Build(tp, 0, quast.DefaultReadOptions())
	require.NoError(t, err)
	neg := quast.DefaultReadOptions()
	neg.Negate = true
	_, _, err = quast.Build(tp, 0, neg)
	require.NoError(t, err)
	b, _, err := quast.Build(tp, 0, quast.DefaultReadOptions())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestBuild_NegateShiftStrip(t *testing.T) {
	t.Parallel()

	// one user parameter p0, internal big parameter at column 1
	tp := quast.NewTape(0)
	require.NoError(t, tp.List(2, 0))
	require.NoError(t, tp.Form(vec(0, 1, -3), big.NewInt(1))) // M - 3
	require.NoError(t, tp.Form(vec(1, 0, 0), big.NewInt(1)))  // p0

	opt := quast.ReadOptions{Strip: 1, BigCol: 1, Shift: 1, Negate: true}
	root, _, err := quast.Build(tp, 0, opt)
	require.NoError(t, err)
	// x0 = M - (M - 3) = 3 ; x1 = M - p0 depends on M
	assert.Equal(t, "[3, unbounded]", root.String())
	assert.True(t, root.Forms[0].IsConstant())
	assert.True(t, root.Forms[1].Unbounded)
}

func TestBuild_StripRenumbersParams(t *testing.T) {
	t.Parallel()

	tp := quast.NewTape(0)
	require.NoError(t, tp.NewParam(2, vec(1, 0, 1), big.NewInt(2)))
	require.NoError(t, tp.List(1, 0))
	require.NoError(t, tp.Form(vec(0, 0, 1, 0), big.NewInt(1)))

	root, _, err := quast.Build(tp, 0, quast.ReadOptions{Strip: 1, BigCol: -1})
	require.NoError(t, err)
	assert.Equal(t, "newparam(p1 = floor((p0 + 1)/2); [p1])", root.String())
}

func TestBuild_Simplify(t *testing.T) {
	t.Parallel()

	tp := quast.NewTape(0)
	require.NoError(t, tp.If(vec(1, -1)))
	require.NoError(t, tp.Nil())
	require.NoError(t, tp.Nil())

	raw, _, err := quast.Build(tp, 0, quast.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, "if(p0 - 1 >= 0; nil; nil)", raw.String())

	opt := quast.DefaultReadOptions()
	opt.Simplify = true
	simple, _, err := quast.Build(tp, 0, opt)
	require.NoError(t, err)
	assert.True(t, simple.IsNil())
}

func TestBuild_Malformed(t *testing.T) {
	t.Parallel()

	tp := quast.NewTape(0)
	require.NoError(t, tp.If(vec(1, 0)))
	require.NoError(t, tp.Nil())
	_, _, err := quast.Build(tp, 0, quast.DefaultReadOptions())
	assert.ErrorIs(t, err, quast.ErrMalformedTape)

	tp = quast.NewTape(0)
	require.NoError(t, tp.Form(vec(0), big.NewInt(1)))
	_, _, err = quast.Build(tp, 0, quast.DefaultReadOptions())
	assert.ErrorIs(t, err, quast.ErrMalformedTape)
}

func TestTape_MarkReset(t *testing.T) {
	t.Parallel()

	tp := quast.NewTape(0)
	require.NoError(t, tp.Nil())
	m := tp.Mark()
	require.NoError(t, tp.List(1, 0))
	require.NoError(t, tp.Form(vec(5), big.NewInt(1)))
	k, err := tp.SubtreeKind(m)
	require.NoError(t, err)
	assert.Equal(t, quast.KindList, k)

	require.NoError(t, tp.Reset(m))
	assert.Equal(t, 1, tp.Len())
	assert.ErrorIs(t, tp.Reset(5), quast.ErrBadMark)
}

func TestTape_Capacity(t *testing.T) {
	t.Parallel()

	tp := quast.NewTape(2)
	require.NoError(t, tp.If(vec(1, 0)))
	require.NoError(t, tp.Nil())
	assert.ErrorIs(t, tp.Nil(), quast.ErrTapeCapacity)
	// a NewParam needs two slots
	tp = quast.NewTape(1)
	assert.ErrorIs(t, tp.NewParam(0, vec(1, 0), big.NewInt(2)), quast.ErrTapeCapacity)
}

func TestNode_LeavesAndEval(t *testing.T) {
	t.Parallel()

	tp := quast.NewTape(0)
	require.NoError(t, tp.NewParam(1, vec(1, 0), big.NewInt(2))) // p1 = floor(p0/2)
	require.NoError(t, tp.If(vec(1, -2, 0)))                     // p0 - 2p1 >= 0 always
	require.NoError(t, tp.List(1, 1))
	require.NoError(t, tp.Form(vec(0, 1, 0), big.NewInt(1)))
	require.NoError(t, tp.Value(big.NewInt(1), big.NewInt(2)))
	require.NoError(t, tp.Nil())

	root, _, err := quast.Build(tp, 0, quast.DefaultReadOptions())
	require.NoError(t, err)
	assert.Equal(t, "newparam(p1 = floor(p0/2); if(p0 - 2p1 >= 0; [p1; dual 1/2]; nil))", root.String())

	leaves := root.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, quast.List, leaves[0].Node.Kind)
	require.Len(t, leaves[0].Path, 2)
	assert.NotNil(t, leaves[0].Path[0].Div)
	assert.True(t, leaves[0].Path[1].Holds)
	assert.False(t, leaves[1].Path[1].Holds)

	leaf, params := root.Eval(vec(7))
	require.Equal(t, quast.List, leaf.Kind)
	assert.Equal(t, int64(3), params[1].Int64())
	assert.Equal(t, "3", leaf.Forms[0].Eval(params).RatString())
}

func TestNode_EqualPrefixAndProject(t *testing.T) {
	t.Parallel()

	mk := func(a, b int64) *quast.Node {
		return &quast.Node{Kind: quast.List, Forms: []quast.Form{
			{Coef: vec(a), Den: big.NewInt(1)},
			{Coef: vec(b), Den: big.NewInt(1)},
		}}
	}
	x, y := mk(1, 2), mk(1, 3)
	assert.False(t, x.Equal(y))
	assert.True(t, x.EqualPrefix(y, 1))
	assert.False(t, x.EqualPrefix(y, 2))
	assert.True(t, x.Project(0, 1).Equal(y.Project(0, 1)))
	assert.Equal(t, "[3]", y.Project(1, 1).String())
	assert.Equal(t, "[2]", x.Project(1, 5).String())
}

func TestAffine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", quast.Affine(vec(0, 0)))
	assert.Equal(t, "-p0 + 2p1 - 3", quast.Affine(vec(-1, 2, -3)))
	assert.Equal(t, "p1", quast.Affine(vec(0, 1, 0)))
	assert.Equal(t, "-4", quast.Affine(vec(-4)))
}
