package vpath

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// breakpoint records where an original command has been split and which
// verb the piece ending at that position is drawn with. t is measured in
// the parameter space of the original command.
type breakpoint struct {
	id   ID
	t    float64
	verb Verb
}

// mutationSeq remembers every split and conversion applied to one original
// command since it was parsed. Values are never modified after creation;
// every edit returns a new sequence.
//
// The breakpoint list is sorted by t and always ends with t == 1. An
// unmodified command has a single breakpoint carrying its original ID and
// verb.
type mutationSeq struct {
	backing   Command
	bps       []breakpoint
	transform Matrix
	calc      Calculator
	cmds      []Command
}

func newMutationSeq(c Command) *mutationSeq {
	s := &mutationSeq{
		backing:   c,
		bps:       []breakpoint{{id: c.id, t: 1, verb: c.verb}},
		transform: Identity(),
	}
	s.rebuild(true)
	return s
}

// clone returns a shallow copy whose breakpoint list may be edited.
func (s *mutationSeq) clone() *mutationSeq {
	out := *s
	out.bps = slices.Clone(s.bps)
	return &out
}

// rebuild regenerates the emitted commands. When the transform changed the
// calculator is rebuilt too.
func (s *mutationSeq) rebuild(transformChanged bool) {
	if transformChanged {
		s.calc = NewCalculator(s.backing.Transform(s.transform))
	}
	s.cmds = make([]Command, len(s.bps))
	prevT := 0.0
	last := len(s.bps) - 1
	for i, bp := range s.bps {
		s.cmds[i] = s.calc.Split(prevT, bp.t).Convert(bp.verb).toCommand(bp.id, i != last)
		prevT = bp.t
	}
}

// commands returns the emitted commands. The slice must not be modified.
func (s *mutationSeq) commands() []Command {
	return s.cmds
}

func (s *mutationSeq) isMove() bool {
	return s.backing.verb == Move
}

// interval returns the parameter range [lo, hi] covered by breakpoint i.
func (s *mutationSeq) interval(i int) (lo, hi float64) {
	if i > 0 {
		lo = s.bps[i-1].t
	}
	return lo, s.bps[i].t
}

// split inserts breakpoints at the given parameters of the original command.
// Each new breakpoint inherits the verb of the interval it falls in.
func (s *mutationSeq) split(ts ...float64) *mutationSeq {
	if s.isMove() || len(ts) == 0 {
		return s
	}
	out := s.clone()
	for _, t := range ts {
		idx := sort.Search(len(out.bps), func(i int) bool { return out.bps[i].t >= t })
		if idx == len(out.bps) {
			idx = len(out.bps) - 1
		}
		out.bps = slices.Insert(out.bps, idx, breakpoint{id: NewID(), t: t, verb: out.bps[idx].verb})
	}
	out.forceInnerLines()
	out.rebuild(false)
	return out
}

// splitLocal splits the piece ending at breakpoint i. The parameters are
// local to that piece and are mapped linearly onto the original command.
func (s *mutationSeq) splitLocal(i int, ts ...float64) *mutationSeq {
	lo, hi := s.interval(i)
	mapped := make([]float64, len(ts))
	for j, t := range ts {
		mapped[j] = lo + (hi-lo)*t
	}
	return s.split(mapped...)
}

// halfTime returns the local parameter that splits the piece ending at
// breakpoint i into two halves of equal arc length.
func (s *mutationSeq) halfTime(i int) float64 {
	lo, hi := s.interval(i)
	piece := s.calc.Split(lo, hi)
	return piece.FindTimeByDistance(piece.Length() / 2)
}

// unsplit removes the split point at the end of piece i, merging it with the
// following piece.
func (s *mutationSeq) unsplit(i int) (*mutationSeq, error) {
	if i < 0 || i >= len(s.bps)-1 {
		return nil, fmt.Errorf("%w: breakpoint %d of %d", ErrNotSplit, i, len(s.bps))
	}
	out := s.clone()
	out.bps = slices.Delete(out.bps, i, i+1)
	out.rebuild(false)
	return out, nil
}

// convert draws piece i with a different verb. Close is never a target: a
// closepath only ends a subpath, and only unconvert restores one.
func (s *mutationSeq) convert(i int, verb Verb) (*mutationSeq, error) {
	if s.isMove() || verb == Move || verb == Close || !verb.valid() {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidConversion, s.backing.verb, verb)
	}
	out := s.clone()
	out.bps[i].verb = verb
	out.rebuild(false)
	return out, nil
}

// unconvert restores the original verb on every piece.
func (s *mutationSeq) unconvert() *mutationSeq {
	if s.isMove() {
		return s
	}
	out := s.clone()
	for i := range out.bps {
		out.bps[i].verb = s.backing.verb
	}
	out.forceInnerLines()
	out.rebuild(false)
	return out
}

// revert drops every split, conversion and transform.
func (s *mutationSeq) revert() *mutationSeq {
	return newMutationSeq(s.backing)
}

// addTransforms appends transforms, applied in order after the current one.
func (s *mutationSeq) addTransforms(ms ...Matrix) *mutationSeq {
	return s.setTransform(s.transform.Then(ms...))
}

// setTransform replaces the accumulated transform.
func (s *mutationSeq) setTransform(m Matrix) *mutationSeq {
	out := s.clone()
	out.transform = m
	out.rebuild(true)
	return out
}

// project returns the projection onto the nearest emitted piece together
// with the index of that piece. T is local to the piece.
func (s *mutationSeq) project(p Point) (Projection, int, bool) {
	best := Projection{D: math.Inf(1)}
	bestIdx := -1
	for i, c := range s.cmds {
		proj, ok := NewCalculator(c).Project(p)
		if ok && proj.D < best.D {
			best, bestIdx = proj, i
		}
	}
	return best, bestIdx, bestIdx >= 0
}

// forceInnerLines rewrites closes that are no longer the final piece as lines.
func (s *mutationSeq) forceInnerLines() {
	for i := range len(s.bps) - 1 {
		if s.bps[i].verb == Close {
			s.bps[i].verb = Line
		}
	}
}
