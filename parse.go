package vpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// argCounts is the number of numbers following each absolute path letter.
var argCounts = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// MustParse is like Parse but panics if the path data is malformed.
func MustParse(s string) *Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses SVG path data into a Path. Every command receives a fresh ID.
//
// All SVG path letters are accepted in absolute and relative form. H and V
// become lines, S and T become curves with reflected control points, and
// elliptical arcs are approximated with cubics. A drawing command following
// a close starts a new subpath at the closed subpath's start.
func Parse(s string) (*Path, error) {
	cmds, err := parseCommands([]byte(s))
	if err != nil {
		return nil, err
	}
	return FromCommands(cmds)
}

type pathParser struct {
	cmds     []Command
	start    Point // start of the current subpath
	cur      Point
	ctrl     Point // last control point, for S and T
	hasCur   bool
	closed   bool // last command was a close
	prevVerb byte
}

func parseCommands(data []byte) ([]Command, error) {
	var (
		pp   pathParser
		args [7]float64
	)
	i := skipSeparators(data, 0)
	if i < len(data) && !isLetter(data[i]) {
		return nil, &ParseError{Pos: i, Msg: "path data must start with a command"}
	}

	cmd := byte(0)
	for {
		i = skipSeparators(data, i)
		if i >= len(data) {
			break
		}

		repeat := true
		if cmd == 0 || cmd == 'z' || cmd == 'Z' || isLetter(data[i]) {
			cmd = data[i]
			repeat = false
			i = skipSeparators(data, i+1)
		}

		upper := toUpper(cmd)
		n, ok := argCounts[upper]
		if !ok {
			return nil, &ParseError{Pos: i - 1, Msg: fmt.Sprintf("unknown command %q", cmd), Err: ErrUnknownVerb}
		}
		for j := range n {
			if upper == 'A' && (j == 3 || j == 4) {
				if i >= len(data) || (data[i] != '0' && data[i] != '1') {
					return nil, &ParseError{Pos: i, Msg: fmt.Sprintf("arc flags of %q must be 0 or 1", cmd)}
				}
				args[j] = float64(data[i] - '0')
				i = skipSeparators(data, i+1)
				continue
			}
			num, m := strconv.ParseFloat(data[i:])
			if m == 0 {
				if repeat && j == 0 {
					return nil, &ParseError{Pos: i, Msg: fmt.Sprintf("unexpected %q", data[i])}
				}
				return nil, &ParseError{Pos: i, Msg: fmt.Sprintf("%q needs %d numbers", cmd, n)}
			}
			args[j] = num
			i = skipSeparators(data, i+m)
		}

		if err := pp.apply(cmd, args[:n]); err != nil {
			return nil, &ParseError{Pos: i, Msg: err.Error(), Err: ErrMissingCurrentPoint}
		}
		// Coordinate pairs repeated after a move are lines.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return pp.cmds, nil
}

func (pp *pathParser) apply(cmd byte, f []float64) error {
	upper := toUpper(cmd)
	rel := cmd != upper
	abs := func(x, y float64) Point {
		if rel {
			return Pt(pp.cur.X+x, pp.cur.Y+y)
		}
		return Pt(x, y)
	}

	if upper == 'M' {
		if rel && !pp.hasCur {
			rel = false
		}
		p := abs(f[0], f[1])
		pp.cmds = append(pp.cmds, newCommand(Move, 0, false, pp.cur, p))
		pp.start, pp.cur, pp.ctrl = p, p, p
		pp.hasCur, pp.closed = true, false
		pp.prevVerb = upper
		return nil
	}
	if !pp.hasCur {
		return fmt.Errorf("%q without a current point", cmd)
	}
	if pp.closed {
		pp.cmds = append(pp.cmds, newCommand(Move, 0, false, pp.cur, pp.start))
		pp.closed = false
	}

	p0 := pp.cur
	switch upper {
	case 'Z':
		pp.cmds = append(pp.cmds, newCommand(Close, 0, false, p0, pp.start))
		pp.cur = pp.start
		pp.closed = true
	case 'L':
		pp.lineTo(abs(f[0], f[1]))
	case 'H':
		x := f[0]
		if rel {
			x += p0.X
		}
		pp.lineTo(Pt(x, p0.Y))
	case 'V':
		y := f[0]
		if rel {
			y += p0.Y
		}
		pp.lineTo(Pt(p0.X, y))
	case 'C':
		pp.cubicTo(abs(f[0], f[1]), abs(f[2], f[3]), abs(f[4], f[5]))
	case 'S':
		c1 := p0
		if pp.prevVerb == 'C' || pp.prevVerb == 'S' {
			c1 = p0.Mul(2).Sub(pp.ctrl)
		}
		pp.cubicTo(c1, abs(f[0], f[1]), abs(f[2], f[3]))
	case 'Q':
		pp.quadTo(abs(f[0], f[1]), abs(f[2], f[3]))
	case 'T':
		c := p0
		if pp.prevVerb == 'Q' || pp.prevVerb == 'T' {
			c = p0.Mul(2).Sub(pp.ctrl)
		}
		pp.quadTo(c, abs(f[0], f[1]))
	case 'A':
		p1 := abs(f[5], f[6])
		for _, b := range arcToCubics(p0, f[0], f[1], f[2], f[3] == 1, f[4] == 1, p1) {
			pp.cubicTo(b.P1, b.P2, b.P3)
		}
		pp.cur = p1
	}
	if upper != 'Z' {
		pp.prevVerb = upper
	} else {
		pp.prevVerb = 0
	}
	if upper != 'C' && upper != 'S' && upper != 'Q' && upper != 'T' {
		pp.ctrl = pp.cur
	}
	return nil
}

func (pp *pathParser) lineTo(p Point) {
	pp.cmds = append(pp.cmds, newCommand(Line, 0, false, pp.cur, p))
	pp.cur = p
}

func (pp *pathParser) quadTo(c, p Point) {
	pp.cmds = append(pp.cmds, newCommand(Quad, 0, false, pp.cur, c, p))
	pp.cur, pp.ctrl = p, c
}

func (pp *pathParser) cubicTo(c1, c2, p Point) {
	pp.cmds = append(pp.cmds, newCommand(Cubic, 0, false, pp.cur, c1, c2, p))
	pp.cur, pp.ctrl = p, c2
}

func skipSeparators(data []byte, i int) int {
	for i < len(data) {
		switch data[i] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			i++
		default:
			return i
		}
	}
	return i
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
