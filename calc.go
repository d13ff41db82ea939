package vpath

import "math"

// Arc-length search parameters for FindTimeByDistance.
const (
	distanceEpsilon   = 0.001
	maxBisectionSteps = 100
	lengthAccuracy    = 1e-4
)

// calcVariant selects the geometry engine of a Calculator.
type calcVariant uint8

const (
	calcMove   calcVariant = iota // moves: no length, no projection
	calcPoint                     // every point coincides
	calcLine                      // straight segment
	calcBezier                    // quadratic or cubic curve
)

// Projection is the nearest point on a segment to a query point.
type Projection struct {
	X, Y float64 // projected point
	T    float64 // segment parameter of the projected point
	D    float64 // distance from the query point
}

// Point returns the projected point.
func (p Projection) Point() Point { return Pt(p.X, p.Y) }

// Calculator performs segment geometry for a single command.
//
// The variant is fixed when the calculator is created: moves use a no-op
// engine, commands whose points all coincide use a point engine, lines and
// closes (and curves with only two distinct points) use a line engine, and
// the remaining quadratics and cubics use a Bezier engine. The verb and the
// emitted points are kept so the calculator can produce a Command again.
type Calculator struct {
	variant calcVariant
	verb    Verb
	pts     [4]Point
}

// NewCalculator returns the calculator for c.
func NewCalculator(c Command) Calculator {
	return makeCalculator(c.verb, c.points()...)
}

func makeCalculator(verb Verb, pts ...Point) Calculator {
	calc := Calculator{verb: verb}
	copy(calc.pts[:], pts)
	switch n := distinctPoints(pts); {
	case verb == Move:
		calc.variant = calcMove
	case n <= 1:
		calc.variant = calcPoint
	case verb == Line || verb == Close || n == 2:
		calc.variant = calcLine
	default:
		calc.variant = calcBezier
	}
	return calc
}

// Verb returns the verb of the commands this calculator produces.
func (c Calculator) Verb() Verb { return c.verb }

func (c Calculator) start() Point { return c.pts[0] }

func (c Calculator) end() Point { return c.pts[c.verb.PointCount()-1] }

func (c Calculator) line() LineSeg { return LineSeg{P0: c.start(), P1: c.end()} }

func (c Calculator) quad() QuadBez { return QuadBez{P0: c.pts[0], P1: c.pts[1], P2: c.pts[2]} }

func (c Calculator) cubic() CubicBez {
	return CubicBez{P0: c.pts[0], P1: c.pts[1], P2: c.pts[2], P3: c.pts[3]}
}

// eval returns the point at parameter t.
func (c Calculator) eval(t float64) Point {
	switch c.variant {
	case calcLine:
		return c.line().Eval(t)
	case calcBezier:
		if c.verb == Quad {
			return c.quad().Eval(t)
		}
		return c.cubic().Eval(t)
	case calcPoint:
		return c.pts[0]
	}
	return c.end()
}

// Length returns the arc length of the segment.
func (c Calculator) Length() float64 {
	switch c.variant {
	case calcLine:
		return c.line().Length()
	case calcBezier:
		if c.verb == Quad {
			return c.quad().Length(lengthAccuracy)
		}
		return c.cubic().Length(lengthAccuracy)
	}
	return 0
}

// Project returns the point on the segment nearest to p. Moves cannot be
// projected onto and report false.
func (c Calculator) Project(p Point) (Projection, bool) {
	var t float64
	switch c.variant {
	case calcMove:
		return Projection{}, false
	case calcPoint:
		t = 0.5
	case calcLine:
		t = c.line().Nearest(p)
	case calcBezier:
		t, _ = nearestOnCurve(c.eval, p)
	}
	q := c.eval(t)
	return Projection{X: q.X, Y: q.Y, T: t, D: q.Distance(p)}, true
}

// Split returns the calculator of the sub-segment between t1 and t2. The
// full range returns c itself; other ranges degrade to a lower-degree engine
// when the sub-segment is degenerate.
func (c Calculator) Split(t1, t2 float64) Calculator {
	if t1 <= 0 && t2 >= 1 {
		return c
	}
	switch c.variant {
	case calcMove, calcPoint:
		return c
	case calcLine:
		return lineCalculator(c.verb, c.line().Subsegment(t1, t2))
	}
	if c.verb == Quad {
		q := c.quad().Subsegment(t1, t2)
		return makeCalculator(Quad, q.P0, q.P1, q.P2)
	}
	b := c.cubic().Subsegment(t1, t2)
	return makeCalculator(Cubic, b.P0, b.P1, b.P2, b.P3)
}

// lineCalculator lays out a straight segment with the control points
// required by verb, spaced so that the curve parameter stays linear.
func lineCalculator(verb Verb, l LineSeg) Calculator {
	switch verb {
	case Quad:
		return makeCalculator(Quad, l.P0, l.Eval(0.5), l.P1)
	case Cubic:
		return makeCalculator(Cubic, l.P0, l.Eval(1.0/3), l.Eval(2.0/3), l.P1)
	}
	return makeCalculator(verb, l.P0, l.P1)
}

// Convert returns a calculator producing commands of the target verb.
// Quadratics are raised to cubics exactly; curves converted to lines keep
// only their end points.
func (c Calculator) Convert(target Verb) Calculator {
	if c.variant == calcMove || target == Move || target == c.verb || !target.valid() {
		return c
	}
	if c.variant == calcPoint {
		pts := make([]Point, target.PointCount())
		for i := range pts {
			pts[i] = c.pts[0]
		}
		return makeCalculator(target, pts...)
	}
	if target == Line || target == Close {
		return makeCalculator(target, c.start(), c.end())
	}
	if c.variant == calcLine && c.verb != Quad && c.verb != Cubic {
		return lineCalculator(target, c.line())
	}
	switch {
	case c.verb == Quad && target == Cubic:
		b := c.quad().Raise()
		return makeCalculator(Cubic, b.P0, b.P1, b.P2, b.P3)
	case c.verb == Cubic && target == Quad:
		q := c.cubic().Lower()
		return makeCalculator(Quad, q.P0, q.P1, q.P2)
	}
	return lineCalculator(target, c.line())
}

// FindTimeByDistance returns the parameter at which the arc length from the
// start of the segment equals d. The search bisects on arc length; when it
// does not converge the best estimate is returned and a warning is logged.
func (c Calculator) FindTimeByDistance(d float64) float64 {
	switch c.variant {
	case calcMove, calcPoint:
		return 0.5
	case calcLine:
		length := c.Length()
		if length == 0 {
			return 0.5
		}
		return math.Max(0, math.Min(1, d/length))
	}

	total := c.Length()
	switch {
	case d <= 0:
		return 0
	case d >= total:
		return 1
	}

	lo, hi := 0.0, 1.0
	t := 0.5
	for range maxBisectionSteps {
		t = (lo + hi) / 2
		l := c.Split(0, t).Length()
		if math.Abs(l-d) < distanceEpsilon {
			return t
		}
		if l < d {
			lo = t
		} else {
			hi = t
		}
	}
	Logger().Warn("vpath: arc length search did not converge",
		"verb", c.verb.String(), "distance", d, "length", total, "t", t)
	return t
}

// BoundingBox returns the axis-aligned bounds of the segment. The bounds of
// a move contain only its end point.
func (c Calculator) BoundingBox() Rect {
	switch c.variant {
	case calcLine:
		return c.line().BoundingBox()
	case calcBezier:
		if c.verb == Quad {
			return c.quad().BoundingBox()
		}
		return c.cubic().BoundingBox()
	case calcPoint:
		return Rect{Min: c.pts[0], Max: c.pts[0]}
	}
	return Rect{Min: c.end(), Max: c.end()}
}

// Intersects returns the segment parameters at which l crosses the segment.
func (c Calculator) Intersects(l LineSeg) []float64 {
	switch c.variant {
	case calcLine:
		if t, _, ok := c.line().Intersect(l); ok {
			return []float64{t}
		}
	case calcBezier:
		if c.verb == Quad {
			return c.quad().IntersectLine(l)
		}
		return c.cubic().IntersectLine(l)
	}
	return nil
}

// lineRoots returns the parameters in [0, 1] at which the segment meets the
// infinite line through l, whether or not the point lies inside l.
func (c Calculator) lineRoots(l LineSeg) []float64 {
	switch c.variant {
	case calcLine:
		return c.line().lineRoots(l)
	case calcBezier:
		if c.verb == Quad {
			return c.quad().lineRoots(l)
		}
		return c.cubic().lineRoots(l)
	}
	return nil
}

func (c Calculator) toCommand(id ID, isSplit bool) Command {
	return newCommand(c.verb, id, isSplit, c.pts[:c.verb.PointCount()]...)
}
