package vpath

import (
	"math"
	"sort"
)

// Curve types for 2D geometry operations.
// Based on kurbo patterns, adapted for Go idioms.

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// expandRect grows r so that it contains p.
func expandRect(r Rect, p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// -------------------------------------------------------------------
// LineSeg
// -------------------------------------------------------------------

// LineSeg represents a line segment from P0 to P1.
type LineSeg struct {
	P0, P1 Point
}

// NewLineSeg creates a new line segment.
func NewLineSeg(p0, p1 Point) LineSeg {
	return LineSeg{P0: p0, P1: p1}
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l LineSeg) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Subsegment returns the portion of the line from t0 to t1.
func (l LineSeg) Subsegment(t0, t1 float64) LineSeg {
	return LineSeg{
		P0: l.Eval(t0),
		P1: l.Eval(t1),
	}
}

// BoundingBox returns the axis-aligned bounding box of the line.
func (l LineSeg) BoundingBox() Rect {
	return NewRect(l.P0, l.P1)
}

// Length returns the length of the line segment.
func (l LineSeg) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Nearest returns the parameter of the point on the segment closest to p.
func (l LineSeg) Nearest(p Point) float64 {
	d := l.P1.Sub(l.P0)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return 0
	}
	t := p.Sub(l.P0).Dot(d) / lenSq
	return math.Max(0, math.Min(1, t))
}

// Intersect returns the parameters t (on l) and u (on other) of the
// intersection of the two segments. Parallel segments never intersect.
func (l LineSeg) Intersect(other LineSeg) (t, u float64, ok bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := other.P1.Sub(other.P0)
	den := d1.Cross(d2)
	if den == 0 {
		return 0, 0, false
	}
	w := other.P0.Sub(l.P0)
	t = w.Cross(d2) / den
	u = w.Cross(d1) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}
	return t, u, true
}

// Reversed returns a copy of the line with endpoints swapped.
func (l LineSeg) Reversed() LineSeg {
	return LineSeg{P0: l.P1, P1: l.P0}
}

// signedDistances returns the distance of each point from the infinite line
// through l, scaled by the length of l.
func (l LineSeg) signedDistances(pts ...Point) []float64 {
	dir := l.P1.Sub(l.P0)
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = dir.Cross(p.Sub(l.P0))
	}
	return out
}

// lineRoots returns the parameters in [0, 1] at which l meets the infinite
// line through other. A segment lying on that line reports only 0.
func (l LineSeg) lineRoots(other LineSeg) []float64 {
	d := other.signedDistances(l.P0, l.P1)
	return SolveQuadraticInUnitInterval(0, d[1]-d[0], d[0])
}

// param returns the (unclamped) parameter of p along l.
func (l LineSeg) param(p Point) float64 {
	d := l.P1.Sub(l.P0)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return 0
	}
	return p.Sub(l.P0).Dot(d) / lenSq
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// NewQuadBez creates a new quadratic Bezier curve.
func NewQuadBez(p0, p1, p2 Point) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{
			P0: q.P0,
			P1: q.P0.Lerp(q.P1, 0.5),
			P2: mid,
		}, QuadBez{
			P0: mid,
			P1: q.P1.Lerp(q.P2, 0.5),
			P2: q.P2,
		}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)

	// The tangent at t0 scaled by the new parameter range gives the control point.
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dt := t1 - t0

	tanDir := Point{
		X: d0.X + t0*(d1.X-d0.X),
		Y: d0.Y + t0*(d1.Y-d0.Y),
	}
	p1 := Point{
		X: p0.X + dt*tanDir.X,
		Y: p0.Y + dt*tanDir.Y,
	}

	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Extrema returns parameter values where the derivative is zero (extrema points).
// Used for computing tight bounding boxes.
func (q QuadBez) Extrema() []float64 {
	var result []float64

	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)]
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := Point{X: d1.X - d0.X, Y: d1.Y - d0.Y}

	if dd.X != 0 {
		t := -d0.X / dd.X
		if t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0 && t < 1 {
			result = append(result, t)
		}
	}

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = expandRect(bbox, q.Eval(t))
	}
	return bbox
}

// Raise elevates the quadratic to a cubic Bezier curve.
// Returns an exact cubic representation of this quadratic.
func (q QuadBez) Raise() CubicBez {
	// C1 = P0 + 2/3 * (P1 - P0)
	// C2 = P2 + 2/3 * (P1 - P2)
	return CubicBez{
		P0: q.P0,
		P1: Point{
			X: q.P0.X + (2.0/3.0)*(q.P1.X-q.P0.X),
			Y: q.P0.Y + (2.0/3.0)*(q.P1.Y-q.P0.Y),
		},
		P2: Point{
			X: q.P2.X + (2.0/3.0)*(q.P1.X-q.P2.X),
			Y: q.P2.Y + (2.0/3.0)*(q.P1.Y-q.P2.Y),
		},
		P3: q.P2,
	}
}

// Length returns the arc length of the curve using adaptive subdivision.
func (q QuadBez) Length(accuracy float64) float64 {
	return quadLengthRecursive(q, accuracy*accuracy, 0)
}

// IntersectLine returns the curve parameters at which q crosses the segment l.
func (q QuadBez) IntersectLine(l LineSeg) []float64 {
	return filterOnSegment(q.lineRoots(l), q.Eval, l)
}

// lineRoots returns the parameters in [0, 1] at which q meets the infinite
// line through l.
func (q QuadBez) lineRoots(l LineSeg) []float64 {
	d := l.signedDistances(q.P0, q.P1, q.P2)
	return SolveQuadraticInUnitInterval(d[0]-2*d[1]+d[2], 2*(d[1]-d[0]), d[0])
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewCubicBez creates a new cubic Bezier curve.
func NewCubicBez(p0, p1, p2, p3 Point) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	// The derivative is 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2]
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	scale := (t1 - t0) / 3.0

	mt0 := 1.0 - t0
	deriv0 := Point{
		X: 3 * (d0.X*mt0*mt0 + 2*d1.X*mt0*t0 + d2.X*t0*t0),
		Y: 3 * (d0.Y*mt0*mt0 + 2*d1.Y*mt0*t0 + d2.Y*t0*t0),
	}
	p1 := Point{
		X: p0.X + scale*deriv0.X,
		Y: p0.Y + scale*deriv0.Y,
	}

	mt1 := 1.0 - t1
	deriv1 := Point{
		X: 3 * (d0.X*mt1*mt1 + 2*d1.X*mt1*t1 + d2.X*t1*t1),
		Y: 3 * (d0.Y*mt1*mt1 + 2*d1.Y*mt1*t1 + d2.Y*t1*t1),
	}
	p2 := Point{
		X: p3.X - scale*deriv1.X,
		Y: p3.Y - scale*deriv1.Y,
	}

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Extrema returns parameter values where the derivative is zero (extrema points).
// For a cubic Bezier, there can be up to 4 extrema (2 for x, 2 for y).
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	ax := d0.X - 2*d1.X + d2.X
	bx := 2 * (d1.X - d0.X)
	result = append(result, SolveQuadraticInUnitInterval(ax, bx, d0.X)...)

	ay := d0.Y - 2*d1.Y + d2.Y
	by := 2 * (d1.Y - d0.Y)
	result = append(result, SolveQuadraticInUnitInterval(ay, by, d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = expandRect(bbox, c.Eval(t))
	}
	return bbox
}

// Length returns the arc length of the curve using adaptive subdivision.
func (c CubicBez) Length(accuracy float64) float64 {
	return cubicLengthRecursive(c, accuracy*accuracy, 0)
}

// Lower returns the quadratic closest to c. It is exact when c is a raised
// quadratic.
func (c CubicBez) Lower() QuadBez {
	ctrl := c.P1.Add(c.P2).Mul(3).Sub(c.P0).Sub(c.P3).Mul(0.25)
	return QuadBez{P0: c.P0, P1: ctrl, P2: c.P3}
}

// IntersectLine returns the curve parameters at which c crosses the segment l.
func (c CubicBez) IntersectLine(l LineSeg) []float64 {
	return filterOnSegment(c.lineRoots(l), c.Eval, l)
}

// lineRoots returns the parameters in [0, 1] at which c meets the infinite
// line through l.
func (c CubicBez) lineRoots(l LineSeg) []float64 {
	d := l.signedDistances(c.P0, c.P1, c.P2, c.P3)
	a := -d[0] + 3*d[1] - 3*d[2] + d[3]
	b := 3*d[0] - 6*d[1] + 3*d[2]
	cc := -3*d[0] + 3*d[1]
	return SolveCubicInUnitInterval(a, b, cc, d[0])
}

// filterOnSegment keeps the curve roots whose points fall inside l.
func filterOnSegment(roots []float64, eval func(float64) Point, l LineSeg) []float64 {
	if len(roots) == 0 {
		return nil
	}
	const eps = 1e-9
	out := make([]float64, 0, len(roots))
	for _, t := range roots {
		u := l.param(eval(t))
		if u >= -eps && u <= 1+eps {
			out = append(out, t)
		}
	}
	sort.Float64s(out)
	return out
}

// maxLengthDepth bounds adaptive subdivision for degenerate input.
const maxLengthDepth = 24

func quadLengthRecursive(q QuadBez, accuracySq float64, depth int) float64 {
	chord := q.P0.Distance(q.P2)
	polygon := q.P0.Distance(q.P1) + q.P1.Distance(q.P2)

	diff := polygon - chord
	if diff*diff <= accuracySq || depth >= maxLengthDepth {
		return (chord + polygon) / 2
	}

	q1, q2 := q.Subdivide()
	return quadLengthRecursive(q1, accuracySq, depth+1) + quadLengthRecursive(q2, accuracySq, depth+1)
}

func cubicLengthRecursive(c CubicBez, accuracySq float64, depth int) float64 {
	chord := c.P0.Distance(c.P3)
	polygon := c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)

	diff := polygon - chord
	if diff*diff <= accuracySq || depth >= maxLengthDepth {
		return (chord + polygon) / 2
	}

	c1, c2 := c.Subdivide()
	return cubicLengthRecursive(c1, accuracySq, depth+1) + cubicLengthRecursive(c2, accuracySq, depth+1)
}

// nearestOnCurve finds the parameter of the point on a parametric curve
// closest to p. It samples a lookup table and then refines around the best
// sample.
func nearestOnCurve(eval func(float64) Point, p Point) (t, dist float64) {
	const samples = 100
	best := math.Inf(1)
	for i := 0; i <= samples; i++ {
		s := float64(i) / samples
		if d := eval(s).Distance(p); d < best {
			best, t = d, s
		}
	}

	step := 1.0 / samples
	for i := 0; i < 64 && step > 1e-12; i++ {
		lo := math.Max(0, t-step)
		hi := math.Min(1, t+step)
		dlo := eval(lo).Distance(p)
		dhi := eval(hi).Distance(p)
		switch {
		case dlo < best && dlo <= dhi:
			best, t = dlo, lo
		case dhi < best:
			best, t = dhi, hi
		default:
			step /= 2
		}
	}
	return t, best
}
