package vpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vpath/align"
)

func TestAutoFix_Unchanged(t *testing.T) {
	from := MustParse("M 0 0 L 10 0 L 10 10")
	to := MustParse("M 0 0 L 10 0 L 10 10")

	f, g, err := AutoFix(0, from, to)
	require.NoError(t, err)
	assert.Equal(t, from.String(), f.String())
	assert.Equal(t, to.String(), g.String())
	assert.True(t, f.IsMorphableWith(g))
}

func TestAutoFix_SplitsToBalance(t *testing.T) {
	from := MustParse("M 0 0 L 10 0")
	to := MustParse("M 0 0 L 5 0 L 10 0")

	f, g, err := AutoFix(0, from, to)
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 L 5 0 L 10 0", f.String())
	assert.Equal(t, to.String(), g.String())
	assert.True(t, f.SubPath(0).Command(1).IsSplit())

	// The other direction splits to instead.
	g2, f2, err := AutoFix(0, to, from)
	require.NoError(t, err)
	assert.True(t, g2.IsMorphableWith(f2))
	assert.Equal(t, "M 0 0 L 5 0 L 10 0", f2.String())
}

func TestAutoFix_ConvertsVerbs(t *testing.T) {
	from := MustParse("M 0 0 L 10 0")
	to := MustParse("M 0 0 Q 5 5 10 0")

	f, g, err := AutoFix(0, from, to)
	require.NoError(t, err)
	require.True(t, f.IsMorphableWith(g))
	assert.Equal(t, Quad, f.SubPath(0).Command(1).Verb())
	assert.Equal(t, "M 0 0 Q 5 0 10 0", f.String())
}

func TestAutoFix_RotatesClosedSubPath(t *testing.T) {
	from := MustParse(square)
	to := MustParse("M 10 0 L 10 10 L 0 10 L 0 0 L 10 0")

	f, g, err := AutoFix(0, from, to)
	require.NoError(t, err)
	assert.Equal(t, to.String(), f.String())
	assert.True(t, f.IsMorphableWith(g))
	assert.Equal(t, sortedIDs(from), sortedIDs(f))
}

func TestAutoFix_ReversesSubPath(t *testing.T) {
	from := MustParse(square)
	to := MustParse("M 0 0 L 0 10 L 10 10 L 10 0 L 0 0")

	f, _, err := AutoFix(0, from, to)
	require.NoError(t, err)
	assert.Equal(t, to.String(), f.String())
}

func TestAutoFix_Errors(t *testing.T) {
	from := MustParse("M 0 0 L 10 0")
	to := MustParse("M 0 0 L 10 0")

	_, _, err := AutoFix(1, from, to)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, _, err = AutoConvert(-1, from, to)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAutoConvert(t *testing.T) {
	from := MustParse("M 0 0 L 10 0 C 12 2 14 2 16 0")
	to := MustParse("M 1 1 Q 5 5 10 0 L 20 0")

	f, g, err := AutoConvert(0, from, to)
	require.NoError(t, err)
	assert.True(t, f.IsMorphableWith(g))
	assert.Equal(t, Quad, f.SubPath(0).Command(1).Verb())
	assert.Equal(t, Cubic, g.SubPath(0).Command(2).Verb())

	// Different lengths are left alone.
	short := MustParse("M 0 0 L 1 1")
	f, g, err = AutoConvert(0, from, short)
	require.NoError(t, err)
	assert.Same(t, from, f)
	assert.Same(t, short, g)
}

func TestAutoFixAll_PadsSubPaths(t *testing.T) {
	from := MustParse("M 0 0 L 10 0")
	to := MustParse("M 0 0 L 10 0 M 20 20 L 30 30 L 40 20")

	f, g, err := AutoFixAll(from, to)
	require.NoError(t, err)
	require.Equal(t, 2, f.NumSubPaths())
	assert.True(t, f.IsMorphableWith(g))

	pad := f.SubPath(1)
	assert.True(t, pad.IsCollapsing())
	assert.Equal(t, Pt(30, 25), pad.Start())

	// Halfway through the morph the padding has grown towards its target.
	mid := f.Interpolate(f, g, 0.5)
	assert.Equal(t, "M 25 22.5 L 30 27.5 L 35 22.5", mid.Format(1)[len("M 0 0 L 10 0 "):])
}

func TestAutoFixAll_Symmetric(t *testing.T) {
	from := MustParse("M 0 0 L 10 0 L 10 10 Z M 20 20 L 25 20")
	to := MustParse("M 1 1 C 5 0 10 5 11 11")

	f, g, err := AutoFixAll(from, to)
	require.NoError(t, err)
	assert.True(t, f.IsMorphableWith(g))
	assert.True(t, g.SubPath(1).IsCollapsing())
}

func TestGapSplits(t *testing.T) {
	res := align.Result{Pairs: []align.Pair{
		{From: 0, To: 0},
		{From: align.Gap, To: 1},
		{From: align.Gap, To: 2},
		{From: 1, To: 3},
		{From: 2, To: align.Gap},
		{From: align.Gap, To: 4},
	}}

	from, to := gapSplits(res)
	assert.Equal(t, []gapSplit{{cmd: 1, count: 2}, {cmd: 3, count: 1}}, from)
	assert.Equal(t, []gapSplit{{cmd: 4, count: 1}}, to)
}

func TestScoreCandidates_Order(t *testing.T) {
	from := MustParse("M 0 0 L 10 0 L 10 10 L 5 15 L 0 10 Z")
	to := MustParse("M 10 10 L 5 15 L 0 10 L 0 0 L 10 0 L 10 10")

	candidates, err := alignCandidates(0, from)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(candidates), parallelCandidates)

	toCmds := to.subs[0].cmds
	results := scoreCandidates(0, candidates, toCmds)
	require.Len(t, results, len(candidates))
	for i, c := range candidates {
		want := align.Align(c.subs[0].cmds, toCmds, alignScore)
		assert.Equal(t, want, results[i], "candidate %d", i)
	}
}
