package vpath

import (
	"fmt"
	"slices"
)

// Mutator edits a copy of a Path's state and produces a new Path.
//
// Operations are chained; the first failing operation records its error and
// every later operation becomes a no-op. Build returns the recorded error.
//
// Example:
//
//	p2, err := p.Mutate().
//		SplitCommandInHalf(0, 1).
//		ReverseSubPath(0).
//		ShiftSubPathForward(0, 1).
//		Build()
type Mutator struct {
	state *pathState
	err   error
}

// Err returns the first error recorded by the mutator.
func (m *Mutator) Err() error { return m.err }

// Build returns the edited path, or the first recorded error.
func (m *Mutator) Build() (*Path, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := newPath(m.state.clone())
	Logger().Debug("vpath: built path", "subpaths", len(p.subs))
	return p, nil
}

func (m *Mutator) fail(err error) *Mutator {
	if m.err == nil {
		m.err = err
	}
	return m
}

// target is a public command resolved to its storage location.
type target struct {
	slot   *slotState
	layout layout
	base   int // index into the slot's base commands
	seq    int
	bp     int
}

func (m *Mutator) slotOf(sub int) (*slotState, error) {
	return m.state.slotAt(subPathIndex(sub))
}

func (m *Mutator) resolve(sub, cmd int) (target, error) {
	s, err := m.slotOf(sub)
	if err != nil {
		return target{}, err
	}
	base := s.baseCommands()
	if cmd < 0 || cmd >= len(base) {
		return target{}, indexError("command", cmd, len(base))
	}
	l := layoutOf(base)
	b := s.baseIndex(cmd, l)
	seq, bp := s.locate(b)
	return target{slot: s, layout: l, base: b, seq: seq, bp: bp}, nil
}

// ReverseSubPath reverses the drawing direction of subpath sub.
func (m *Mutator) ReverseSubPath(sub int) *Mutator {
	if m.err != nil {
		return m
	}
	s, err := m.slotOf(sub)
	if err != nil {
		return m.fail(err)
	}
	s.reversed = !s.reversed
	return m
}

// ShiftSubPathForward rotates a closed subpath so that it starts count
// commands later. Open subpaths are left unchanged.
func (m *Mutator) ShiftSubPathForward(sub, count int) *Mutator {
	return m.shift(sub, count)
}

// ShiftSubPathBack rotates a closed subpath so that it starts count commands
// earlier. Open subpaths are left unchanged.
func (m *Mutator) ShiftSubPathBack(sub, count int) *Mutator {
	return m.shift(sub, -count)
}

func (m *Mutator) shift(sub, count int) *Mutator {
	if m.err != nil {
		return m
	}
	s, err := m.slotOf(sub)
	if err != nil {
		return m.fail(err)
	}
	l := layoutOf(s.baseCommands())
	if !l.shiftable() {
		return m
	}
	if s.reversed {
		count = -count
	}
	s.shift = mod(s.shift+count, l.n)
	return m
}

// SplitCommand splits command cmd of subpath sub at the given parameters,
// which are local to the command and must lie in (0, 1). Splitting a move
// is a no-op.
func (m *Mutator) SplitCommand(sub, cmd int, ts ...float64) *Mutator {
	if m.err != nil {
		return m
	}
	for _, t := range ts {
		if !(t > 0 && t < 1) {
			return m.fail(fmt.Errorf("%w: %v", ErrSplitOutOfRange, t))
		}
	}
	tg, err := m.resolve(sub, cmd)
	if err != nil {
		return m.fail(err)
	}
	if tg.slot.seqs[tg.seq].isMove() || len(ts) == 0 {
		return m
	}
	local := slices.Clone(ts)
	if tg.slot.reversed {
		for i, t := range local {
			local[i] = 1 - t
		}
	}
	m.splitAt(tg, local...)
	return m
}

// SplitCommandInHalf splits command cmd of subpath sub into two pieces of
// equal arc length. Splitting a move is a no-op.
func (m *Mutator) SplitCommandInHalf(sub, cmd int) *Mutator {
	if m.err != nil {
		return m
	}
	tg, err := m.resolve(sub, cmd)
	if err != nil {
		return m.fail(err)
	}
	seq := tg.slot.seqs[tg.seq]
	if seq.isMove() {
		return m
	}
	m.splitAt(tg, seq.halfTime(tg.bp))
	return m
}

// splitAt splits the piece addressed by tg at parameters local to it in
// base direction and keeps the start point of a shifted subpath in place.
func (m *Mutator) splitAt(tg target, ts ...float64) {
	s := tg.slot
	s.seqs[tg.seq] = s.seqs[tg.seq].splitLocal(tg.bp, ts...)
	if tg.layout.shiftable() && s.shift > 0 && tg.base <= s.shift {
		s.shift += len(ts)
	}
}

// SplitBatch splits each of the given commands of subpath sub in half.
// Duplicate indices are not supported.
func (m *Mutator) SplitBatch(sub int, cmds ...int) *Mutator {
	if m.err != nil {
		return m
	}
	sorted := slices.Clone(cmds)
	slices.Sort(sorted)
	if len(slices.Compact(slices.Clone(sorted))) != len(sorted) {
		return m.fail(fmt.Errorf("%w: duplicate command in split batch %v", ErrUnsupported, cmds))
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		m.SplitCommandInHalf(sub, sorted[i])
	}
	return m
}

// UnsplitCommand merges command cmd of subpath sub with the command that
// follows it. The end point of cmd must have been created by a split.
func (m *Mutator) UnsplitCommand(sub, cmd int) *Mutator {
	if m.err != nil {
		return m
	}
	tg, err := m.resolve(sub, cmd)
	if err != nil {
		return m.fail(err)
	}
	s := tg.slot
	seq, bp, end := tg.seq, tg.bp, tg.base
	if s.reversed {
		// The public end point is the end of the preceding base command.
		bp, end = bp-1, end-1
	}
	if cmd == 0 || bp < 0 {
		return m.fail(fmt.Errorf("%w: subpath %d command %d", ErrNotSplit, sub, cmd))
	}
	next, err := s.seqs[seq].unsplit(bp)
	if err != nil {
		return m.fail(fmt.Errorf("subpath %d command %d: %w", sub, cmd, err))
	}
	s.seqs[seq] = next
	if tg.layout.shiftable() && s.shift > 0 && end <= s.shift {
		s.shift--
	}
	return m
}

// ConvertCommand redraws command cmd of subpath sub with a different verb.
func (m *Mutator) ConvertCommand(sub, cmd int, verb Verb) *Mutator {
	if m.err != nil {
		return m
	}
	tg, err := m.resolve(sub, cmd)
	if err != nil {
		return m.fail(err)
	}
	next, err := tg.slot.seqs[tg.seq].convert(tg.bp, verb)
	if err != nil {
		return m.fail(fmt.Errorf("subpath %d command %d: %w", sub, cmd, err))
	}
	tg.slot.seqs[tg.seq] = next
	return m
}

// ConvertBatch converts the given commands of subpath sub to verb. All
// commands must currently share one verb.
func (m *Mutator) ConvertBatch(sub int, verb Verb, cmds ...int) *Mutator {
	if m.err != nil {
		return m
	}
	var from Verb
	for i, c := range cmds {
		tg, err := m.resolve(sub, c)
		if err != nil {
			return m.fail(err)
		}
		v := tg.slot.seqs[tg.seq].commands()[tg.bp].verb
		if i > 0 && v != from {
			return m.fail(fmt.Errorf("%w: convert batch mixes %s and %s", ErrUnsupported, from, v))
		}
		from = v
	}
	for _, c := range cmds {
		m.ConvertCommand(sub, c, verb)
	}
	return m
}

// UnconvertSubPath restores the original verbs of every command in
// subpath sub, keeping splits.
func (m *Mutator) UnconvertSubPath(sub int) *Mutator {
	if m.err != nil {
		return m
	}
	s, err := m.slotOf(sub)
	if err != nil {
		return m.fail(err)
	}
	for i, seq := range s.seqs {
		s.seqs[i] = seq.unconvert()
	}
	return m
}

// AddTransforms applies the given transforms, in order, after any existing
// transform of every command.
func (m *Mutator) AddTransforms(ms ...Matrix) *Mutator {
	if m.err != nil || len(ms) == 0 {
		return m
	}
	m.eachSeq(func(seq *mutationSeq) *mutationSeq { return seq.addTransforms(ms...) })
	return m
}

// SetTransforms replaces the transform of every command with the given
// transforms applied in order.
func (m *Mutator) SetTransforms(ms ...Matrix) *Mutator {
	if m.err != nil {
		return m
	}
	t := Identity().Then(ms...)
	m.eachSeq(func(seq *mutationSeq) *mutationSeq { return seq.setTransform(t) })
	return m
}

func (m *Mutator) eachSeq(f func(*mutationSeq) *mutationSeq) {
	for i := range m.state.slots {
		s := &m.state.slots[i]
		for j, seq := range s.seqs {
			s.seqs[j] = f(seq)
		}
	}
}

// MoveSubPath moves subpath from to index to, shifting the subpaths in
// between.
func (m *Mutator) MoveSubPath(from, to int) *Mutator {
	if m.err != nil {
		return m
	}
	n := len(m.state.order)
	if from < 0 || from >= n {
		return m.fail(indexError("subpath", from, n))
	}
	if to < 0 || to >= n {
		return m.fail(indexError("subpath", to, n))
	}
	sl := m.state.order[from]
	m.state.order = slices.Delete(m.state.order, from, from+1)
	m.state.order = slices.Insert(m.state.order, to, sl)
	return m
}

// AddCollapsingSubPath appends a subpath of count commands that all sit at
// pt: a move followed by count-1 zero-length lines. Such subpaths let a
// path morph into one with more subpaths.
func (m *Mutator) AddCollapsingSubPath(pt Point, count int) *Mutator {
	if m.err != nil {
		return m
	}
	if count < 1 {
		return m.fail(fmt.Errorf("%w: collapsing subpath needs at least one command, got %d", ErrPointCount, count))
	}
	seqs := make([]*mutationSeq, count)
	seqs[0] = newMutationSeq(newCommand(Move, NewID(), false, pt, pt))
	for i := 1; i < count; i++ {
		seqs[i] = newMutationSeq(newCommand(Line, NewID(), false, pt, pt))
	}
	m.state.slots = append(m.state.slots, slotState{seqs: seqs, collapsing: true})
	m.state.order = append(m.state.order, slot(len(m.state.slots)-1))
	return m
}

// DeleteCollapsingSubPaths removes every collapsing subpath.
func (m *Mutator) DeleteCollapsingSubPaths() *Mutator {
	if m.err != nil {
		return m
	}
	m.state.deleteCollapsing()
	return m
}

func (st *pathState) deleteCollapsing() {
	remap := make([]slot, len(st.slots))
	kept := st.slots[:0:0]
	for i, s := range st.slots {
		if s.collapsing {
			remap[i] = -1
			continue
		}
		remap[i] = slot(len(kept))
		kept = append(kept, s)
	}
	order := make([]slot, 0, len(kept))
	for _, sl := range st.order {
		if r := remap[sl]; r >= 0 {
			order = append(order, r)
		}
	}
	st.slots, st.order = kept, order
}

// Revert undoes every edit: splits, conversions, transforms, reversals,
// shifts, reordering and collapsing subpaths.
func (m *Mutator) Revert() *Mutator {
	if m.err != nil {
		return m
	}
	st := m.state
	st.deleteCollapsing()
	for i := range st.slots {
		s := &st.slots[i]
		for j, seq := range s.seqs {
			s.seqs[j] = seq.revert()
		}
		s.reversed, s.shift = false, 0
		st.order[i] = slot(i)
	}
	return m
}
