package vpath

import (
	"math"
	"slices"
)

// Polynomial root finding for curve/line intersections and extrema.
// The cubic solver follows Jim Blinn's "How to Solve a Cubic Equation"
// (https://momentsingraphics.de/CubicRoots.html).

// SolveQuadratic returns the real roots of ax^2 + bx + c = 0 in ascending
// order. A vanishing leading coefficient degrades to the linear equation; an
// all-zero polynomial reports the single root 0.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0, sc1 := c/a, b/a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		switch {
		case isFinite(root):
			return []float64{root}
		case b == 0 && c == 0:
			return []float64{0}
		default:
			return nil
		}
	}

	disc := sc1*sc1 - 4*sc0
	var r1, r2 float64
	switch {
	case !isFinite(disc):
		r1 = -sc1
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	default:
		// Avoids cancellation between -b and sqrt(disc).
		r1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	}
	r2 = sc0 / r1
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// SolveCubic returns the real roots of ax^3 + bx^2 + cx + d = 0, unsorted.
func SolveCubic(a, b, c, d float64) []float64 {
	const third = 1.0 / 3.0
	inv := 1 / a
	c2 := b * third * inv
	c1 := c * third * inv
	c0 := d * inv
	if !isFinite(c0) || !isFinite(c1) || !isFinite(c2) {
		return SolveQuadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t1 - c2, -2*t1 - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * third
	sin, cos := math.Sincos(th)
	ss3 := sin * math.Sqrt(3)
	t := 2 * math.Sqrt(-d0)
	return []float64{
		t*cos - c2,
		t*0.5*(-cos+ss3) - c2,
		t*0.5*(-cos-ss3) - c2,
	}
}

// SolveQuadraticInUnitInterval returns the roots of ax^2 + bx + c = 0 in [0, 1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return unitRoots(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval returns the roots of ax^3 + bx^2 + cx + d = 0 in [0, 1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return unitRoots(SolveCubic(a, b, c, d))
}

// unitRoots clamps roots within a small tolerance of [0, 1] onto the
// interval, drops the rest (NaN included), and returns the survivors sorted
// and deduplicated.
func unitRoots(roots []float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range roots {
		if !(r >= -eps && r <= 1+eps) {
			continue
		}
		out = append(out, math.Max(0, math.Min(1, r)))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
