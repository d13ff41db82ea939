package vpath

import (
	"fmt"
	"math"
)

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining; the first error is kept and
// reported by Build.
type PathBuilder struct {
	cmds   []Command
	start  Point
	cur    Point
	hasCur bool
	err    error
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{cmds: make([]Command, 0, 16)}
}

func (b *PathBuilder) add(verb Verb, pts ...Point) *PathBuilder {
	if b.err != nil {
		return b
	}
	if verb != Move && !b.hasCur {
		b.err = fmt.Errorf("%w: %s before MoveTo", ErrMissingCurrentPoint, verb)
		return b
	}
	b.cmds = append(b.cmds, newCommand(verb, 0, false, append([]Point{b.cur}, pts...)...))
	b.cur = pts[len(pts)-1]
	return b
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.add(Move, Pt(x, y))
	b.start, b.hasCur = Pt(x, y), true
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	return b.add(Line, Pt(x, y))
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	return b.add(Quad, Pt(cx, cy), Pt(x, y))
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	return b.add(Cubic, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	return b.add(Close, b.start)
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// RoundRect adds a rounded rectangle to the path.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = min(r, min(w, h)/2)
	k := kappa * r

	return b.MoveTo(x+r, y).
		LineTo(x+w-r, y).
		CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r).
		LineTo(x+w, y+h-r).
		CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h).
		LineTo(x+r, y+h).
		CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r).
		LineTo(x, y+r).
		CubicTo(x, y+r-k, x+r-k, y, x+r, y).
		Close()
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse made of four cubics to the path.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	kx := kappa * rx
	ky := kappa * ry

	return b.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close()
}

// Polygon adds a regular polygon to the path, starting at the top.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}

// Star adds a star shape to the path.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		return b
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}

// Build returns the constructed path with fresh IDs.
func (b *PathBuilder) Build() (*Path, error) {
	if b.err != nil {
		return nil, b.err
	}
	return FromCommands(b.cmds)
}

// MustBuild is like Build but panics on error.
func (b *PathBuilder) MustBuild() *Path {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
