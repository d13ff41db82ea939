package vpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// walkData replays geom path data as a path iterator.
func walkData(d *path.Data) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		i := 0
		for _, cmd := range d.Cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, d.Coords[i:i+n]) {
				return
			}
			i += n
		}
	}
}

func TestGeomPath(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 Q 15 5 20 0 C 21 1 22 2 23 3 Z M 5 5 L 6 6")
	d := p.GeomPath()

	assert.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose,
		path.CmdMoveTo, path.CmdLineTo,
	}, d.Cmds)
	require.Len(t, d.Coords, 10)
	assert.Equal(t, vec.Vec2{X: 15, Y: 5}, d.Coords[2])
	assert.Equal(t, vec.Vec2{X: 6, Y: 6}, d.Coords[9])
}

func TestFromGeom_RoundTrip(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 Q 15 5 20 0 C 21 1 22 2 23 3 Z M 5 5 L 6 6")

	back, err := FromGeom(walkData(p.GeomPath()))
	require.NoError(t, err)
	assert.Equal(t, p.String(), back.String())
	assert.NotEqual(t, ids(p), ids(back))
}

func TestFromGeom_MissingMove(t *testing.T) {
	bad := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdLineTo, []vec.Vec2{{X: 1, Y: 1}})
	}
	_, err := FromGeom(bad)
	assert.ErrorIs(t, err, ErrMissingCurrentPoint)
}

func TestMatrix_GeomRoundTrip(t *testing.T) {
	m := Rotate(0.3).Multiply(Translate(2, -7)).Multiply(Scale(1.5, 0.5))
	g := m.Geom()

	assert.Equal(t, m, MatrixFromGeom(g))

	// Both representations map points the same way.
	p := Pt(3, 4)
	want := m.TransformPoint(p)
	gx := g[0]*p.X + g[2]*p.Y + g[4]
	gy := g[1]*p.X + g[3]*p.Y + g[5]
	assert.InDelta(t, want.X, gx, 1e-12)
	assert.InDelta(t, want.Y, gy, 1e-12)

	assert.Equal(t, matrix.Identity, Identity().Geom())
}

func TestPoint_Vec2(t *testing.T) {
	p := Pt(1.5, -2)
	assert.Equal(t, vec.Vec2{X: 1.5, Y: -2}, p.Vec2())
	assert.Equal(t, p, PointFromVec2(p.Vec2()))
}

func TestRect_Geom(t *testing.T) {
	r := MustParse("M 1 2 L 5 8").BoundingBox().Geom()
	assert.Equal(t, 1.0, r.LLx)
	assert.Equal(t, 2.0, r.LLy)
	assert.Equal(t, 5.0, r.URx)
	assert.Equal(t, 8.0, r.URy)
}
