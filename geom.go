package vpath

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Vec2 converts p to a geom vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// PointFromVec2 converts a geom vector to a Point.
func PointFromVec2(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Geom converts m to a geom matrix.
func (m Matrix) Geom() matrix.Matrix {
	return matrix.Matrix{m.A, m.D, m.B, m.E, m.C, m.F}
}

// MatrixFromGeom converts a geom matrix to a Matrix.
func MatrixFromGeom(g matrix.Matrix) Matrix {
	return Matrix{
		A: g[0], B: g[2], C: g[4],
		D: g[1], E: g[3], F: g[5],
	}
}

// Geom converts r to a geom rectangle.
func (r Rect) Geom() rect.Rect {
	return rect.Rect{LLx: r.Min.X, LLy: r.Min.Y, URx: r.Max.X, URy: r.Max.Y}
}

// FromGeom creates a path from a geom path iterator. Every command receives
// a fresh ID.
func FromGeom(g path.Path) (*Path, error) {
	b := BuildPath()
	for cmd, pts := range g {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			b.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			b.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			b.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			b.Close()
		}
	}
	return b.Build()
}

// GeomPath returns the drawn commands of p as geom path data.
func (p *Path) GeomPath() *path.Data {
	d := &path.Data{}
	for _, c := range p.Commands() {
		pts := c.points()
		switch c.verb {
		case Move:
			d.MoveTo(pts[1].Vec2())
		case Line:
			d.LineTo(pts[1].Vec2())
		case Quad:
			d.QuadTo(pts[1].Vec2(), pts[2].Vec2())
		case Cubic:
			d.CubeTo(pts[1].Vec2(), pts[2].Vec2(), pts[3].Vec2())
		case Close:
			d.Close()
		}
	}
	return d
}
