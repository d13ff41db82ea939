package vpath

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Verb identifies the kind of a drawing command.
type Verb uint8

// Command verbs.
const (
	// Move starts a new subpath without drawing.
	Move Verb = iota
	// Line draws a straight segment.
	Line
	// Quad draws a quadratic Bezier curve.
	Quad
	// Cubic draws a cubic Bezier curve.
	Cubic
	// Close draws a straight segment back to the subpath start.
	Close
)

const numVerbs = 5

var verbChars = [numVerbs]byte{'M', 'L', 'Q', 'C', 'Z'}

// String returns the SVG path letter of the verb.
func (v Verb) String() string {
	if !v.valid() {
		return "Verb(" + strconv.Itoa(int(v)) + ")"
	}
	return string(verbChars[v])
}

// PointCount returns the number of points stored by commands of this verb,
// including the start point.
func (v Verb) PointCount() int {
	switch v {
	case Move, Line, Close:
		return 2
	case Quad:
		return 3
	case Cubic:
		return 4
	default:
		return 0
	}
}

func (v Verb) valid() bool {
	return v < numVerbs
}

// ParseVerb returns the verb for an absolute SVG path letter.
func ParseVerb(c byte) (Verb, error) {
	for i, vc := range verbChars {
		if vc == c {
			return Verb(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVerb, c)
}

// ID is a process-wide unique, stable command identifier.
// The zero ID is never issued.
type ID uint64

var lastID atomic.Uint64

// NewID returns the next identifier from the global monotonic counter.
func NewID() ID {
	return ID(lastID.Add(1))
}

func (id ID) String() string {
	return "c" + strconv.FormatUint(uint64(id), 10)
}

// Command is a single immutable drawing instruction.
//
// Points always include the start point: moves, lines and closes store
// two points, quadratics three and cubics four. The start point of a move is
// the end point of the previous subpath (or its own end point for the first
// subpath).
type Command struct {
	verb    Verb
	pts     [4]Point
	id      ID
	isSplit bool
}

// NewCommand creates a command with a fresh ID.
func NewCommand(verb Verb, pts ...Point) (Command, error) {
	if !verb.valid() {
		return Command{}, fmt.Errorf("%w: %d", ErrUnknownVerb, verb)
	}
	if len(pts) != verb.PointCount() {
		return Command{}, fmt.Errorf("%w: %s needs %d, got %d", ErrPointCount, verb, verb.PointCount(), len(pts))
	}
	c := Command{verb: verb, id: NewID()}
	copy(c.pts[:], pts)
	return c, nil
}

// newCommand builds a command whose arguments are known to be valid.
func newCommand(verb Verb, id ID, isSplit bool, pts ...Point) Command {
	c := Command{verb: verb, id: id, isSplit: isSplit}
	copy(c.pts[:], pts)
	return c
}

// Verb returns the command verb.
func (c Command) Verb() Verb { return c.verb }

// ID returns the stable identifier of the command.
func (c Command) ID() ID { return c.id }

// IsSplit reports whether the end point of the command was created by a split.
func (c Command) IsSplit() bool { return c.isSplit }

// Points returns a copy of the command's points.
func (c Command) Points() []Point {
	out := make([]Point, c.verb.PointCount())
	copy(out, c.pts[:])
	return out
}

func (c Command) points() []Point {
	return c.pts[:c.verb.PointCount()]
}

// Start returns the first point of the command.
func (c Command) Start() Point { return c.pts[0] }

// End returns the last point of the command.
func (c Command) End() Point { return c.pts[c.verb.PointCount()-1] }

// CanConvertTo reports whether the command can be rewritten as the target
// verb without changing its geometry in a way that breaks morphing.
func (c Command) CanConvertTo(target Verb) bool {
	if c.verb == Move || target == Move || c.verb == target {
		return false
	}
	switch c.verb {
	case Line:
		return target == Quad || target == Cubic
	case Close:
		return target == Line || target == Quad || target == Cubic
	case Quad:
		return target == Cubic || (target == Line && c.collapsesToLine())
	case Cubic:
		return target == Line && c.collapsesToLine()
	}
	return false
}

// collapsesToLine reports whether the control points coincide with the end
// points so that the curve has at most two distinct points.
func (c Command) collapsesToLine() bool {
	return distinctPoints(c.points()) <= 2
}

// Transform returns the command with every point mapped through m.
func (c Command) Transform(m Matrix) Command {
	out := c
	for i := range c.verb.PointCount() {
		out.pts[i] = m.TransformPoint(c.pts[i])
	}
	return out
}

// Reversed returns the command traversed in the opposite direction.
func (c Command) Reversed() Command {
	out := c
	n := c.verb.PointCount()
	for i := range n {
		out.pts[i] = c.pts[n-1-i]
	}
	return out
}

// Interpolate returns the command whose points are linearly interpolated
// between c and other. Both commands must share a verb; otherwise c is
// returned unchanged.
func (c Command) Interpolate(other Command, fraction float64) Command {
	if c.verb != other.verb {
		return c
	}
	out := c
	for i := range c.verb.PointCount() {
		out.pts[i] = c.pts[i].Lerp(other.pts[i], fraction)
	}
	return out
}

func (c Command) withVerb(v Verb, pts ...Point) Command {
	return newCommand(v, c.id, c.isSplit, pts...)
}

func (c Command) withSplit(isSplit bool) Command {
	c.isSplit = isSplit
	return c
}

func (c Command) withStart(p Point) Command {
	c.pts[0] = p
	return c
}

func (c Command) withEnd(p Point) Command {
	c.pts[c.verb.PointCount()-1] = p
	return c
}

// String formats the command as an SVG path segment with three fractional digits.
func (c Command) String() string {
	var sb strings.Builder
	writeCommand(&sb, c, defaultPrecision)
	return sb.String()
}
