package vpath

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = "M 0 0 L 10 0 L 10 10 L 0 10 Z"

func build(t *testing.T, m *Mutator) *Path {
	t.Helper()
	p, err := m.Build()
	require.NoError(t, err)
	return p
}

func sortedIDs(p *Path) []ID {
	out := ids(p)
	slices.Sort(out)
	return out
}

func TestMutator_ReverseSubPath(t *testing.T) {
	p := MustParse("M 0 0 L 10 10 L 20 20")

	r := build(t, p.Mutate().ReverseSubPath(0))
	assert.Equal(t, "M 20 20 L 10 10 L 0 0", r.String())
	assert.Equal(t, sortedIDs(p), sortedIDs(r))

	rr := build(t, r.Mutate().ReverseSubPath(0))
	assert.Equal(t, p.String(), rr.String())
	assert.Equal(t, ids(p), ids(rr))
}

func TestMutator_ReverseClosedSubPath(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 10 10 Z")

	r := build(t, p.Mutate().ReverseSubPath(0))
	assert.Equal(t, "M 0 0 L 10 10 L 10 0 L 0 0", r.String())
	assert.True(t, r.SubPath(0).IsClosed())

	rr := build(t, r.Mutate().ReverseSubPath(0))
	assert.Equal(t, p.String(), rr.String())
}

func TestMutator_ReverseOnlyTouchesOneSubPath(t *testing.T) {
	p := MustParse("M 0 0 L 1 0 M 5 5 L 6 5 L 7 7")

	r := build(t, p.Mutate().ReverseSubPath(1))
	assert.Equal(t, "M 0 0 L 1 0 M 7 7 L 6 5 L 5 5", r.String())
	assert.Equal(t, Pt(1, 0), r.SubPath(1).Command(0).Start())
}

func TestMutator_SplitCommand(t *testing.T) {
	p := MustParse("M 0 0 L 10 10 L 20 20")

	s := build(t, p.Mutate().SplitCommand(0, 1, 0.5))
	assert.Equal(t, "M 0 0 L 5 5 L 10 10 L 20 20", s.String())

	added := s.SubPath(0).Command(1)
	assert.True(t, added.IsSplit())
	assert.NotContains(t, ids(p), added.ID())
	assert.False(t, s.SubPath(0).Command(2).IsSplit())
	assert.Equal(t, p.SubPath(0).Command(1).ID(), s.SubPath(0).Command(2).ID(),
		"the piece ending at the original end point keeps the original ID")

	u := build(t, s.Mutate().UnsplitCommand(0, 1))
	assert.Equal(t, p.String(), u.String())
	assert.Equal(t, ids(p), ids(u))
}

func TestMutator_SplitCommandMany(t *testing.T) {
	p := MustParse("M 0 0 L 10 10 L 20 20")

	s := build(t, p.Mutate().SplitCommand(0, 1, 0.5, 0.25))
	assert.Equal(t, "M 0 0 L 2.5 2.5 L 5 5 L 10 10 L 20 20", s.String())

	// Parameters are local to the piece being split.
	s2 := build(t, s.Mutate().SplitCommand(0, 3, 0.5))
	assert.Equal(t, "M 0 0 L 2.5 2.5 L 5 5 L 7.5 7.5 L 10 10 L 20 20", s2.String())
}

func TestMutator_SplitCurve(t *testing.T) {
	p := MustParse("M 0 0 C 0 10 10 10 10 0")

	s := build(t, p.Mutate().SplitCommand(0, 1, 0.5))
	require.Equal(t, 3, s.SubPath(0).Len())
	mid := s.SubPath(0).Command(1)
	assert.Equal(t, Cubic, mid.Verb())
	assert.InDelta(t, 5, mid.End().X, 1e-9)
	assert.InDelta(t, 7.5, mid.End().Y, 1e-9)

	u := build(t, s.Mutate().UnsplitCommand(0, 1))
	assert.Equal(t, p.String(), u.String())
}

func TestMutator_SplitErrors(t *testing.T) {
	p := MustParse("M 0 0 L 10 10")

	for _, tt := range []float64{0, 1, -0.5, 2, math.NaN()} {
		_, err := p.Mutate().SplitCommand(0, 1, tt).Build()
		assert.ErrorIs(t, err, ErrSplitOutOfRange, "t=%v", tt)
	}

	_, err := p.Mutate().SplitCommand(0, 2, 0.5).Build()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = p.Mutate().SplitCommand(1, 1, 0.5).Build()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	// Splitting a move does nothing.
	s := build(t, p.Mutate().SplitCommand(0, 0, 0.5))
	assert.Equal(t, p.String(), s.String())
}

func TestMutator_SplitReversed(t *testing.T) {
	p := MustParse("M 0 0 L 10 0")

	s := build(t, p.Mutate().ReverseSubPath(0).SplitCommand(0, 1, 0.25))
	assert.Equal(t, "M 10 0 L 7.5 0 L 0 0", s.String())
	assert.True(t, s.SubPath(0).Command(1).IsSplit())
	assert.False(t, s.SubPath(0).Command(2).IsSplit())

	u := build(t, s.Mutate().UnsplitCommand(0, 1))
	assert.Equal(t, "M 10 0 L 0 0", u.String())

	back := build(t, s.Mutate().ReverseSubPath(0))
	assert.Equal(t, "M 0 0 L 7.5 0 L 10 0", back.String())
	assert.True(t, back.SubPath(0).Command(1).IsSplit())
}

func TestMutator_SplitCommandInHalf(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 Q 15 10 20 0")

	s := build(t, p.Mutate().SplitCommandInHalf(0, 1))
	assert.Equal(t, "M 0 0 L 5 0 L 10 0 Q 12.5 5 15 5 Q 17.5 5 20 0", build(t, s.Mutate().SplitCommandInHalf(0, 3)).Format(1))

	s2 := build(t, p.Mutate().SplitCommandInHalf(0, 2))
	mid := s2.SubPath(0).Command(2).End()
	assert.InDelta(t, 15, mid.X, 0.05)
	assert.InDelta(t, 5, mid.Y, 0.05)
}

func TestMutator_SplitBatch(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 10 10")

	s := build(t, p.Mutate().SplitBatch(0, 1, 2))
	assert.Equal(t, "M 0 0 L 5 0 L 10 0 L 10 5 L 10 10", s.String())

	s = build(t, p.Mutate().SplitBatch(0, 2, 1))
	assert.Equal(t, "M 0 0 L 5 0 L 10 0 L 10 5 L 10 10", s.String())

	_, err := p.Mutate().SplitBatch(0, 1, 1).Build()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMutator_UnsplitErrors(t *testing.T) {
	p := MustParse("M 0 0 L 10 10 L 20 20")

	_, err := p.Mutate().UnsplitCommand(0, 1).Build()
	assert.ErrorIs(t, err, ErrNotSplit)
	_, err = p.Mutate().UnsplitCommand(0, 0).Build()
	assert.ErrorIs(t, err, ErrNotSplit)
	_, err = p.Mutate().UnsplitCommand(0, 5).Build()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMutator_Shift(t *testing.T) {
	p := MustParse(square)

	f := build(t, p.Mutate().ShiftSubPathForward(0, 1))
	assert.Equal(t, "M 10 0 L 10 10 L 0 10 L 0 0 L 10 0", f.String())
	assert.Equal(t, sortedIDs(p), sortedIDs(f))
	assert.True(t, f.SubPath(0).IsClosed())

	b := build(t, f.Mutate().ShiftSubPathBack(0, 1))
	assert.Equal(t, p.String(), b.String())
	assert.Equal(t, ids(p), ids(b))

	// A full turn is the identity.
	full := build(t, p.Mutate().ShiftSubPathForward(0, 4))
	assert.Equal(t, p.String(), full.String())

	back := build(t, p.Mutate().ShiftSubPathBack(0, 1))
	assert.Equal(t, "M 0 10 L 0 0 L 10 0 L 10 10 L 0 10", back.String())
}

func TestMutator_ShiftOpenSubPath(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 10 10")
	s := build(t, p.Mutate().ShiftSubPathForward(0, 1))
	assert.Equal(t, p.String(), s.String())
}

func TestMutator_ShiftReversed(t *testing.T) {
	p := MustParse(square)

	r := build(t, p.Mutate().ReverseSubPath(0))
	assert.Equal(t, "M 0 0 L 0 10 L 10 10 L 10 0 L 0 0", r.String())

	f := build(t, r.Mutate().ShiftSubPathForward(0, 1))
	assert.Equal(t, "M 0 10 L 10 10 L 10 0 L 0 0 L 0 10", f.String())

	b := build(t, f.Mutate().ShiftSubPathBack(0, 1))
	assert.Equal(t, r.String(), b.String())

	// Reversing a shifted subpath keeps its start point.
	s := build(t, p.Mutate().ShiftSubPathForward(0, 1).ReverseSubPath(0))
	assert.Equal(t, Pt(10, 0), s.SubPath(0).Start())
	assert.Equal(t, "M 10 0 L 0 0 L 0 10 L 10 10 L 10 0", s.String())
}

func TestMutator_SplitKeepsShiftedStart(t *testing.T) {
	p := MustParse(square)
	f := build(t, p.Mutate().ShiftSubPathForward(0, 1))

	// Command 4 of the shifted square is the original first line.
	s := build(t, f.Mutate().SplitCommand(0, 4, 0.5))
	assert.Equal(t, "M 10 0 L 10 10 L 0 10 L 0 0 L 5 0 L 10 0", s.String())

	u := build(t, s.Mutate().UnsplitCommand(0, 4))
	assert.Equal(t, f.String(), u.String())
}

func TestMutator_ConvertCommand(t *testing.T) {
	p := MustParse("M 0 0 L 30 0")

	c := build(t, p.Mutate().ConvertCommand(0, 1, Cubic))
	assert.Equal(t, "M 0 0 C 10 0 20 0 30 0", c.String())
	assert.Equal(t, ids(p), ids(c))

	q := build(t, p.Mutate().ConvertCommand(0, 1, Quad))
	assert.Equal(t, "M 0 0 Q 15 0 30 0", q.String())

	u := build(t, c.Mutate().UnconvertSubPath(0))
	assert.Equal(t, p.String(), u.String())

	_, err := p.Mutate().ConvertCommand(0, 0, Line).Build()
	assert.ErrorIs(t, err, ErrInvalidConversion)
	_, err = p.Mutate().ConvertCommand(0, 1, Move).Build()
	assert.ErrorIs(t, err, ErrInvalidConversion)
}

func TestMutator_ConvertClose(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 10 10 Z")

	c := build(t, p.Mutate().ConvertCommand(0, 3, Line))
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 L 0 0", c.String())

	// A split close keeps its first piece a line.
	s := build(t, p.Mutate().SplitCommand(0, 3, 0.5))
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 L 5 5 Z", s.String())

	// Converted closes only come back through unconvert.
	u := build(t, c.Mutate().UnconvertSubPath(0))
	assert.Equal(t, p.String(), u.String())
}

func TestMutator_ConvertToCloseRejected(t *testing.T) {
	open := MustParse("M 0 0 L 10 0 L 10 10")
	_, err := open.Mutate().ConvertCommand(0, 1, Close).Build()
	assert.ErrorIs(t, err, ErrInvalidConversion)

	// Not even on the last command of a subpath.
	_, err = open.Mutate().ConvertCommand(0, 2, Close).Build()
	assert.ErrorIs(t, err, ErrInvalidConversion)

	closed := MustParse("M 0 0 L 10 0 L 10 10 Z")
	lined := build(t, closed.Mutate().ConvertCommand(0, 3, Line))
	_, err = lined.Mutate().ConvertCommand(0, 3, Close).Build()
	assert.ErrorIs(t, err, ErrInvalidConversion)

	_, err = open.Mutate().ConvertBatch(0, Close, 1, 2).Build()
	assert.ErrorIs(t, err, ErrInvalidConversion)
}

func TestMutator_ConvertBatch(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 20 0 Q 25 5 30 0")

	c := build(t, p.Mutate().ConvertBatch(0, Cubic, 1, 2))
	assert.Equal(t, Cubic, c.SubPath(0).Command(1).Verb())
	assert.Equal(t, Cubic, c.SubPath(0).Command(2).Verb())

	_, err := p.Mutate().ConvertBatch(0, Cubic, 2, 3).Build()
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestMutator_Transforms(t *testing.T) {
	p := MustParse("M 0 0 L 10 0")

	tr := build(t, p.Mutate().AddTransforms(Translate(5, 5)))
	assert.Equal(t, "M 5 5 L 15 5", tr.String())
	assert.Equal(t, ids(p), ids(tr))

	// Transforms apply in order.
	st := build(t, p.Mutate().AddTransforms(Scale(2, 2), Translate(1, 0)))
	assert.Equal(t, "M 1 0 L 21 0", st.String())

	reset := build(t, tr.Mutate().SetTransforms())
	assert.Equal(t, p.String(), reset.String())

	set := build(t, tr.Mutate().SetTransforms(Translate(0, 1)))
	assert.Equal(t, "M 0 1 L 10 1", set.String())
}

func TestMutator_TransformInverse(t *testing.T) {
	p := MustParse("M 1 2 C 3 4 5 6 7 8 Q 9 10 11 12 Z")
	m := Rotate(0.7).Multiply(Scale(2, 3)).Multiply(Translate(4, -5))

	tr := build(t, p.Mutate().AddTransforms(m))
	assert.NotEqual(t, p.String(), tr.String())

	back := build(t, tr.Mutate().AddTransforms(m.Invert()))
	assert.Equal(t, p.String(), back.String())
}

func TestMutator_TransformKeepsSplits(t *testing.T) {
	p := MustParse("M 0 0 L 10 0")

	s := build(t, p.Mutate().SplitCommand(0, 1, 0.5).AddTransforms(Scale(2, 1)))
	assert.Equal(t, "M 0 0 L 10 0 L 20 0", s.String())

	u := build(t, s.Mutate().UnsplitCommand(0, 1))
	assert.Equal(t, "M 0 0 L 20 0", u.String())
}

func TestMutator_MoveSubPath(t *testing.T) {
	p := MustParse("M 0 0 L 1 0 M 5 5 L 6 5 M 9 9 L 9 8")

	m := build(t, p.Mutate().MoveSubPath(2, 0))
	assert.Equal(t, "M 9 9 L 9 8 M 0 0 L 1 0 M 5 5 L 6 5", m.String())
	assert.Equal(t, Pt(9, 8), m.SubPath(1).Command(0).Start())
	assert.Equal(t, sortedIDs(p), sortedIDs(m))

	// Edits address subpaths by their new position.
	r := build(t, m.Mutate().ReverseSubPath(0))
	assert.Equal(t, "M 9 8 L 9 9 M 0 0 L 1 0 M 5 5 L 6 5", r.String())

	_, err := p.Mutate().MoveSubPath(0, 3).Build()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMutator_CollapsingSubPaths(t *testing.T) {
	p := MustParse("M 0 0 L 10 0")

	c := build(t, p.Mutate().AddCollapsingSubPath(Pt(3, 4), 3))
	require.Equal(t, 2, c.NumSubPaths())
	sub := c.SubPath(1)
	assert.True(t, sub.IsCollapsing())
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, "M 0 0 L 10 0 M 3 4 L 3 4 L 3 4", c.String())

	d := build(t, c.Mutate().DeleteCollapsingSubPaths())
	assert.Equal(t, p.String(), d.String())

	_, err := p.Mutate().AddCollapsingSubPath(Pt(0, 0), 0).Build()
	assert.ErrorIs(t, err, ErrPointCount)
}

func TestMutator_Revert(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 10 10 Z M 20 20 L 30 30")

	edited := build(t, p.Mutate().
		SplitCommand(0, 1, 0.5).
		ConvertCommand(0, 2, Cubic).
		ShiftSubPathForward(0, 2).
		ReverseSubPath(1).
		MoveSubPath(1, 0).
		AddTransforms(Scale(3, 3)).
		AddCollapsingSubPath(Pt(1, 1), 2))
	assert.NotEqual(t, p.String(), edited.String())

	r := build(t, edited.Mutate().Revert())
	assert.Equal(t, p.String(), r.String())
	assert.Equal(t, ids(p), ids(r))
}

func TestMutator_StickyError(t *testing.T) {
	p := MustParse("M 0 0 L 10 0")

	m := p.Mutate().ReverseSubPath(3).SplitCommand(0, 1, 0.5)
	require.ErrorIs(t, m.Err(), ErrIndexOutOfRange)

	_, err := m.Build()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
