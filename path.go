package vpath

import (
	"fmt"
	"slices"
	"strings"
)

// SubPath is a run of commands that starts with a move.
type SubPath struct {
	cmds       []Command
	collapsing bool
}

// Commands returns a copy of the subpath's commands.
func (s SubPath) Commands() []Command {
	return slices.Clone(s.cmds)
}

// Command returns command i.
func (s SubPath) Command(i int) Command {
	return s.cmds[i]
}

// Len returns the number of commands, including the leading move.
func (s SubPath) Len() int { return len(s.cmds) }

// IsCollapsing reports whether the subpath was added only to balance
// subpath counts for morphing. Collapsing subpaths shrink to a point.
func (s SubPath) IsCollapsing() bool { return s.collapsing }

// IsClosed reports whether the subpath ends where it starts.
func (s SubPath) IsClosed() bool {
	if len(s.cmds) == 0 {
		return false
	}
	return s.cmds[0].End() == s.cmds[len(s.cmds)-1].End()
}

// Start returns the first point drawn by the subpath.
func (s SubPath) Start() Point {
	if len(s.cmds) == 0 {
		return Point{}
	}
	return s.cmds[0].End()
}

// End returns the last point drawn by the subpath.
func (s SubPath) End() Point {
	if len(s.cmds) == 0 {
		return Point{}
	}
	return s.cmds[len(s.cmds)-1].End()
}

// BoundingBox returns the bounds of everything the subpath draws.
func (s SubPath) BoundingBox() Rect {
	var r Rect
	for i, c := range s.cmds {
		b := NewCalculator(c).BoundingBox()
		if i == 0 {
			r = b
			continue
		}
		r = r.Union(b)
	}
	return r
}

// Path is an immutable vector path.
//
// Besides its drawn commands a Path remembers how it was derived from the
// commands it was created with: every split, conversion, reversal, shift,
// reordering and transform. Edits are made with a Mutator, which always
// produces a new Path and leaves the receiver untouched.
type Path struct {
	state *pathState
	subs  []SubPath
}

func newPath(st *pathState) *Path {
	return &Path{state: st, subs: st.buildSubPaths()}
}

// FromCommands creates a path from absolute commands. Every command receives
// a fresh ID. The first command must be a move; moves start new subpaths.
// Start points of moves are recomputed; every other command must start where
// the previous one ended.
func FromCommands(cmds []Command) (*Path, error) {
	subs, err := groupSubPaths(cmds)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		for i := range sub {
			sub[i].id = NewID()
			sub[i].isSplit = false
		}
	}
	return newPath(newStateFromSubPaths(subs, nil)), nil
}

// groupSubPaths checks continuity and splits cmds at every move. The
// returned commands are copies.
func groupSubPaths(cmds []Command) ([][]Command, error) {
	var (
		subs    [][]Command
		cur     []Command
		prevEnd Point
	)
	for i, c := range cmds {
		if !c.verb.valid() {
			return nil, fmt.Errorf("%w: command %d", ErrUnknownVerb, i)
		}
		if c.verb == Move {
			if cur != nil {
				subs = append(subs, cur)
			}
			if i == 0 {
				c = c.withStart(c.End())
			} else {
				c = c.withStart(prevEnd)
			}
			cur = []Command{c}
			prevEnd = c.End()
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: command %d (%s) before any move", ErrMissingCurrentPoint, i, c.verb)
		}
		if c.Start() != prevEnd {
			return nil, fmt.Errorf("%w: command %d starts at %v, previous ends at %v", ErrDiscontinuous, i, c.Start(), prevEnd)
		}
		if c.verb == Close && c.End() != cur[0].End() {
			return nil, fmt.Errorf("%w: close %d ends at %v, subpath starts at %v", ErrDiscontinuous, i, c.End(), cur[0].End())
		}
		cur = append(cur, c)
		prevEnd = c.End()
	}
	if cur != nil {
		subs = append(subs, cur)
	}
	return subs, nil
}

// NumSubPaths returns the number of subpaths.
func (p *Path) NumSubPaths() int { return len(p.subs) }

// SubPaths returns the subpaths in drawing order.
func (p *Path) SubPaths() []SubPath {
	return slices.Clone(p.subs)
}

// SubPath returns subpath i. It panics if i is out of range.
func (p *Path) SubPath(i int) SubPath {
	return p.subs[i]
}

// Commands returns every command of every subpath, in drawing order.
func (p *Path) Commands() []Command {
	var out []Command
	for _, s := range p.subs {
		out = append(out, s.cmds...)
	}
	return out
}

// Command returns command cmd of subpath sub.
func (p *Path) Command(sub, cmd int) (Command, error) {
	if sub < 0 || sub >= len(p.subs) {
		return Command{}, indexError("subpath", sub, len(p.subs))
	}
	s := p.subs[sub]
	if cmd < 0 || cmd >= len(s.cmds) {
		return Command{}, indexError("command", cmd, len(s.cmds))
	}
	return s.cmds[cmd], nil
}

// ID returns the ID of command cmd of subpath sub.
func (p *Path) ID(sub, cmd int) (ID, error) {
	c, err := p.Command(sub, cmd)
	if err != nil {
		return 0, err
	}
	return c.id, nil
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return len(p.subs) == 0 }

// BoundingBox returns the bounds of everything the path draws.
func (p *Path) BoundingBox() Rect {
	var r Rect
	for i, s := range p.subs {
		if i == 0 {
			r = s.BoundingBox()
			continue
		}
		r = r.Union(s.BoundingBox())
	}
	return r
}

// IsMorphableWith reports whether p and other have the same structure: the
// same number of subpaths, the same number of commands in each, and
// matching verbs command by command.
func (p *Path) IsMorphableWith(other *Path) bool {
	if other == nil || len(p.subs) != len(other.subs) {
		return false
	}
	for i, s := range p.subs {
		o := other.subs[i]
		if len(s.cmds) != len(o.cmds) {
			return false
		}
		for j, c := range s.cmds {
			if c.verb != o.cmds[j].verb {
				return false
			}
		}
	}
	return true
}

// Interpolate returns the path whose points lie between start and end at the
// given fraction, keeping the IDs and split flags of p. If p is not
// morphable with both inputs, p is returned unchanged.
func (p *Path) Interpolate(start, end *Path, fraction float64) *Path {
	if !p.IsMorphableWith(start) || !p.IsMorphableWith(end) {
		return p
	}
	subs := make([][]Command, len(p.subs))
	collapsing := make([]bool, len(p.subs))
	for i, s := range p.subs {
		cmds := make([]Command, len(s.cmds))
		for j, c := range s.cmds {
			c2 := start.subs[i].cmds[j].Interpolate(end.subs[i].cmds[j], fraction)
			c2.id, c2.isSplit = c.id, c.isSplit
			cmds[j] = c2
		}
		subs[i] = cmds
		collapsing[i] = s.collapsing
	}
	return newPath(newStateFromSubPaths(subs, collapsing))
}

// Mutate returns a Mutator that edits a copy of p's state.
func (p *Path) Mutate() *Mutator {
	return &Mutator{state: p.state.clone()}
}

// String returns the SVG path data of p with three fractional digits.
func (p *Path) String() string {
	return p.Format(defaultPrecision)
}

// Format returns the SVG path data of p with the given number of fractional
// digits. Tokens are separated by single spaces.
func (p *Path) Format(precision int) string {
	var sb strings.Builder
	for _, s := range p.subs {
		for _, c := range s.cmds {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			writeCommand(&sb, c, precision)
		}
	}
	return sb.String()
}
