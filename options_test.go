package vpath

import (
	"testing"
)

func TestWithinRadius(t *testing.T) {
	in := WithinRadius(2)
	var c Command

	if !in(0, c) || !in(2, c) {
		t.Error("distances up to the radius should be accepted")
	}
	if in(2.0001, c) {
		t.Error("distances past the radius should be rejected")
	}
}

func TestRestrictToSubPaths(t *testing.T) {
	o := defaultHitOptions()
	if !o.allows(5) {
		t.Error("default options should allow every subpath")
	}

	RestrictToSubPaths(1, 3)(&o)
	for i, want := range []bool{false, true, false, true} {
		if got := o.allows(i); got != want {
			t.Errorf("allows(%d) = %v, want %v", i, got, want)
		}
	}

	RestrictToSubPaths()(&o)
	if o.allows(1) {
		t.Error("an empty restriction should exclude every subpath")
	}
}

func TestHitOptions_CustomRange(t *testing.T) {
	p := MustParse("M 0 0 L 10 0")
	s, err := p.Mutate().SplitCommand(0, 1, 0.5).Build()
	if err != nil {
		t.Fatal(err)
	}

	// Only split points count, however far away.
	onlySplits := func(_ float64, c Command) bool { return c.IsSplit() }
	res := s.HitTest(Pt(9, 0), WithPointHit(onlySplits))
	if !res.IsEndPointHit {
		t.Fatal("expected an end point hit")
	}
	if res.EndPoint != (CommandRef{SubIdx: 0, CmdIdx: 1}) {
		t.Errorf("EndPoint = %+v, want the split point", res.EndPoint)
	}
}

func TestHitOptions_Combined(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 10 10 Z")

	res := p.HitTest(Pt(9.8, 0.1),
		WithPointHit(WithinRadius(1)),
		WithSegmentHit(WithinRadius(1)),
		WithFillHit(),
	)
	if !res.IsEndPointHit || !res.IsSegmentHit || !res.IsFillHit {
		t.Errorf("expected every kind of hit, got %+v", res)
	}
	if res.EndPoint.CmdIdx != 1 {
		t.Errorf("EndPoint = %+v, want command 1", res.EndPoint)
	}
}
