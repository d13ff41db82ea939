package vpath

import "math"

// maxArcSpan is the largest ellipse parameter span, in radians, covered by a
// single cubic when approximating an elliptical arc.
const maxArcSpan = math.Pi / 8

// arcToCubics approximates the SVG elliptical arc from p0 to p1 with cubic
// Beziers. phi is the x-axis rotation in degrees. Radii that are too small
// are scaled up so that the ellipse passes through both end points. A zero
// radius yields a straight line, and coincident end points yield nothing.
func arcToCubics(p0 Point, rx, ry, phi float64, large, sweep bool, p1 Point) []CubicBez {
	if p0 == p1 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		l := LineSeg{P0: p0, P1: p1}
		return []CubicBez{{P0: p0, P1: l.Eval(1.0 / 3), P2: l.Eval(2.0 / 3), P3: p1}}
	}

	rot := phi * math.Pi / 180
	c := ellipseCenter(&rx, &ry, rot, p0, p1, large, sweep)

	sinRot, cosRot := math.Sincos(rot)
	startAngle := math.Atan2(p0.Y-c.Y, p0.X-c.X) - rot
	endAngle := math.Atan2(p1.Y-c.Y, p1.X-c.X) - rot
	arcBig := math.Abs(endAngle-startAngle) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != large {
		if deltaEta < 0 {
			deltaEta += 2 * math.Pi
		} else {
			deltaEta -= 2 * math.Pi
		}
	}
	if deltaEta < 0 && sweep {
		deltaEta += 2 * math.Pi
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= 2 * math.Pi
	}

	// Maisonobe, "Drawing an elliptical arc using polylines, quadratic or
	// cubic Bezier curves", 2003.
	segs := max(1, int(math.Ceil(math.Abs(deltaEta)/maxArcSpan-1e-9)))
	dEta := deltaEta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	out := make([]CubicBez, 0, segs)
	prev := p0
	prevD := ellipseTangent(rx, ry, sinRot, cosRot, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		p := p1
		if i != segs {
			p = ellipsePoint(rx, ry, sinRot, cosRot, eta, c)
		}
		d := ellipseTangent(rx, ry, sinRot, cosRot, eta)
		out = append(out, CubicBez{
			P0: prev,
			P1: prev.Add(prevD.Mul(alpha)),
			P2: p.Sub(d.Mul(alpha)),
			P3: p,
		})
		prev, prevD = p, d
	}
	return out
}

func ellipseTangent(rx, ry, sinRot, cosRot, eta float64) Point {
	bCos := ry * math.Cos(eta)
	aSin := rx * math.Sin(eta)
	return Pt(-aSin*cosRot-bCos*sinRot, -aSin*sinRot+bCos*cosRot)
}

func ellipsePoint(rx, ry, sinRot, cosRot, eta float64, c Point) Point {
	aCos := rx * math.Cos(eta)
	bSin := ry * math.Sin(eta)
	return Pt(c.X+aCos*cosRot-bSin*sinRot, c.Y+aCos*sinRot+bSin*cosRot)
}

// ellipseCenter returns the center of the ellipse through p0 and p1. When no
// such ellipse exists the radii are scaled up, keeping their ratio.
func ellipseCenter(rx, ry *float64, rot float64, p0, p1 Point, large, sweep bool) Point {
	sin, cos := math.Sincos(rot)

	// Translate to p0, align the ellipse axes and scale x so the ellipse
	// becomes a circle of radius ry.
	nx, ny := p1.X-p0.X, p1.Y-p0.Y
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	nx *= *ry / *rx

	midX, midY := nx/2, ny/2
	midSq := midX*midX + midY*midY

	var hr float64
	if *ry**ry < midSq {
		nry := math.Sqrt(midSq)
		if *rx == *ry {
			*rx = nry
		} else {
			*rx = *rx * nry / *ry
		}
		*ry = nry
	} else {
		hr = math.Sqrt(*ry**ry-midSq) / math.Sqrt(midSq)
	}

	var cx, cy float64
	if sweep == large {
		cx, cy = midX+midY*hr, midY-midX*hr
	} else {
		cx, cy = midX-midY*hr, midY+midX*hr
	}
	cx *= *rx / *ry
	return Pt(cx*cos-cy*sin+p0.X, cx*sin+cy*cos+p0.Y)
}
