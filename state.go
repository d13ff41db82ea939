package vpath

import "slices"

// subPathIndex is the index of a subpath as callers see it.
type subPathIndex int

// slot indexes the storage of a subpath. Slots never move; the public order
// of subpaths is a permutation over them.
type slot int

// slotState holds everything remembered about one stored subpath.
//
// shift is kept in terms of the unreversed commands: it is the index of the
// base end point at which the drawn subpath starts. Reversing the subpath
// therefore keeps the same start point.
type slotState struct {
	seqs       []*mutationSeq
	reversed   bool
	shift      int
	collapsing bool
}

// pathState is the internal state behind a Path.
type pathState struct {
	slots []slotState
	order []slot // public subpath index -> slot
}

// slotAt returns the storage of public subpath i.
func (st *pathState) slotAt(i subPathIndex) (*slotState, error) {
	if i < 0 || int(i) >= len(st.order) {
		return nil, indexError("subpath", int(i), len(st.order))
	}
	return &st.slots[st.order[i]], nil
}

func (st *pathState) clone() *pathState {
	out := &pathState{
		slots: make([]slotState, len(st.slots)),
		order: slices.Clone(st.order),
	}
	for i, s := range st.slots {
		s.seqs = slices.Clone(s.seqs)
		out.slots[i] = s
	}
	return out
}

// baseCommands concatenates the emitted commands of every sequence, before
// reversal and shifting are applied.
func (s *slotState) baseCommands() []Command {
	var n int
	for _, seq := range s.seqs {
		n += len(seq.commands())
	}
	out := make([]Command, 0, n)
	for _, seq := range s.seqs {
		out = append(out, seq.commands()...)
	}
	return out
}

// layout describes the base commands of a slot.
type layout struct {
	n      int  // drawing commands, excluding the leading move
	closed bool // move end equals last end
}

func layoutOf(base []Command) layout {
	return layout{
		n:      len(base) - 1,
		closed: len(base) > 1 && base[0].End() == base[len(base)-1].End(),
	}
}

// shiftable reports whether the slot rotates its drawing commands.
func (l layout) shiftable() bool { return l.closed && l.n >= 2 }

// rotation returns the number of drawing commands rotated out of the front
// of the (possibly reversed) command list.
func (s *slotState) rotation(l layout) int {
	if !l.shiftable() {
		return 0
	}
	k := mod(s.shift, l.n)
	if s.reversed {
		return mod(l.n-k, l.n)
	}
	return k
}

// commands returns the drawn commands of the slot: reversed first, then
// shifted. The move start is patched by the caller.
func (s *slotState) commands() []Command {
	base := s.baseCommands()
	l := layoutOf(base)
	cmds := base
	if s.reversed {
		cmds = reverseCommands(cmds)
	}
	if r := s.rotation(l); r != 0 {
		cmds = shiftCommands(cmds, r)
	}
	return cmds
}

// baseIndex maps a public command index to an index into baseCommands.
func (s *slotState) baseIndex(j int, l layout) int {
	if j == 0 {
		return 0
	}
	i := j
	if r := s.rotation(l); r != 0 {
		i = mod(j-1+r, l.n) + 1
	}
	if s.reversed {
		i = l.n + 1 - i
	}
	return i
}

// publicIndex is the inverse of baseIndex.
func (s *slotState) publicIndex(b int, l layout) int {
	if b == 0 {
		return 0
	}
	i := b
	if s.reversed {
		i = l.n + 1 - b
	}
	if r := s.rotation(l); r != 0 {
		i = mod(i-1-r, l.n) + 1
	}
	return i
}

// locate returns the sequence and breakpoint producing base command b.
func (s *slotState) locate(b int) (seq, bp int) {
	for i, m := range s.seqs {
		n := len(m.commands())
		if b < n {
			return i, b
		}
		b -= n
	}
	return -1, -1
}

// offset returns the base index of the first command of sequence i.
func (s *slotState) offset(i int) int {
	var n int
	for _, m := range s.seqs[:i] {
		n += len(m.commands())
	}
	return n
}

// reverseCommands returns the subpath traversed backwards. A trailing close
// becomes a line. Split flags stay attached to the same end points: the
// reversed command that now ends at a former start point inherits the flag of
// the command that used to end there.
func reverseCommands(cmds []Command) []Command {
	if len(cmds) <= 1 {
		return cmds
	}
	n := len(cmds) - 1
	body := slices.Clone(cmds[1:])
	if last := body[n-1]; last.verb == Close {
		body[n-1] = last.withVerb(Line, last.points()...)
	}
	move := cmds[0]
	out := make([]Command, 0, len(cmds))
	out = append(out, newCommand(Move, move.id, false, move.Start(), body[n-1].End()))
	for i := n - 1; i >= 0; i-- {
		prevSplit := false
		if i > 0 {
			prevSplit = body[i-1].isSplit
		}
		out = append(out, body[i].Reversed().withSplit(prevSplit))
	}
	return out
}

// shiftCommands rotates the drawing commands of a closed subpath so that it
// starts at the end point of drawing command r. A trailing close becomes a
// line since it no longer ends the subpath.
func shiftCommands(cmds []Command, r int) []Command {
	n := len(cmds) - 1
	if r <= 0 || r >= n {
		return cmds
	}
	body := slices.Clone(cmds[1:])
	if last := body[n-1]; last.verb == Close {
		body[n-1] = last.withVerb(Line, last.points()...)
	}
	move := cmds[0]
	out := make([]Command, 0, len(cmds))
	out = append(out, newCommand(Move, move.id, false, move.Start(), body[r-1].End()))
	out = append(out, body[r:]...)
	return append(out, body[:r]...)
}

// buildSubPaths composes the public subpaths: every slot is reversed and
// shifted, the slots are reordered, and finally each move start is patched
// to the end of the preceding subpath.
func (st *pathState) buildSubPaths() []SubPath {
	out := make([]SubPath, len(st.order))
	var prevEnd Point
	for i, sl := range st.order {
		s := &st.slots[sl]
		cmds := s.commands()
		if len(cmds) > 0 {
			if i == 0 {
				cmds[0] = cmds[0].withStart(cmds[0].End())
			} else {
				cmds[0] = cmds[0].withStart(prevEnd)
			}
			prevEnd = cmds[len(cmds)-1].End()
		}
		out[i] = SubPath{cmds: cmds, collapsing: s.collapsing}
	}
	return out
}

// newStateFromSubPaths wraps every command in its own mutation sequence.
func newStateFromSubPaths(subs [][]Command, collapsing []bool) *pathState {
	st := &pathState{
		slots: make([]slotState, len(subs)),
		order: make([]slot, len(subs)),
	}
	for i, cmds := range subs {
		seqs := make([]*mutationSeq, len(cmds))
		for j, c := range cmds {
			seqs[j] = newMutationSeq(c)
		}
		st.slots[i] = slotState{seqs: seqs}
		if collapsing != nil {
			st.slots[i].collapsing = collapsing[i]
		}
		st.order[i] = slot(i)
	}
	return st
}

func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
