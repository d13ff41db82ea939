package vpath

import "math"

// ProjectionResult is the projection of a point onto a path.
type ProjectionResult struct {
	Projection
	SubIdx int
	CmdIdx int
}

// CommandRef identifies a command by its public indices.
type CommandRef struct {
	SubIdx int
	CmdIdx int
}

// HitResult reports what a hit test found. Each kind is only filled in when
// it was enabled with a HitOption.
type HitResult struct {
	IsEndPointHit bool
	EndPoint      CommandRef

	IsSegmentHit bool
	Segment      ProjectionResult

	IsFillHit bool
	FillSubIdx int
}

// IsHit reports whether anything was hit.
func (r HitResult) IsHit() bool {
	return r.IsEndPointHit || r.IsSegmentHit || r.IsFillHit
}

// Project returns the point on p nearest to pt. The parameter T is local to
// the public command, so it runs in drawing direction even for reversed
// subpaths. It returns false if the path has no drawing commands.
func (p *Path) Project(pt Point) (ProjectionResult, bool) {
	return p.project(pt, nil)
}

func (p *Path) project(pt Point, o *hitOptions) (ProjectionResult, bool) {
	best := ProjectionResult{Projection: Projection{D: math.Inf(1)}}
	found := false
	for i, sl := range p.state.order {
		if o != nil && !o.allows(i) {
			continue
		}
		s := &p.state.slots[sl]
		l := layoutOf(s.baseCommands())
		for k, seq := range s.seqs {
			proj, bp, ok := seq.project(pt)
			if !ok || proj.D >= best.D {
				continue
			}
			if s.reversed {
				proj.T = 1 - proj.T
			}
			best = ProjectionResult{
				Projection: proj,
				SubIdx:     i,
				CmdIdx:     s.publicIndex(s.offset(k)+bp, l),
			}
			found = true
		}
	}
	return best, found
}

// HitTest tests pt against the path. Which kinds of hits are considered is
// controlled by opts; with no options nothing is reported.
func (p *Path) HitTest(pt Point, opts ...HitOption) HitResult {
	o := defaultHitOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var res HitResult
	if o.pointHit != nil {
		res.EndPoint, res.IsEndPointHit = p.endPointHit(pt, &o)
	}
	if o.segmentHit != nil {
		if proj, ok := p.project(pt, &o); ok {
			c := p.subs[proj.SubIdx].cmds[proj.CmdIdx]
			if o.segmentHit(proj.D, c) {
				res.Segment, res.IsSegmentHit = proj, true
			}
		}
	}
	if o.fillHit {
		res.FillSubIdx, res.IsFillHit = p.fillHit(pt, &o)
	}
	return res
}

// endPointHit returns the command whose end point is nearest to pt among
// those accepted by the range function. Ties prefer split points, then
// later subpaths.
func (p *Path) endPointHit(pt Point, o *hitOptions) (CommandRef, bool) {
	var (
		best      CommandRef
		bestD     = math.Inf(1)
		bestSplit bool
		found     bool
	)
	for i, s := range p.subs {
		if !o.allows(i) {
			continue
		}
		for j, c := range s.cmds {
			d := c.End().Distance(pt)
			if !o.pointHit(d, c) {
				continue
			}
			better := d < bestD ||
				(d == bestD && c.isSplit && !bestSplit) ||
				(d == bestD && c.isSplit == bestSplit && i > best.SubIdx)
			if !found || better {
				best, bestD, bestSplit, found = CommandRef{SubIdx: i, CmdIdx: j}, d, c.isSplit, true
			}
		}
	}
	return best, found
}

// fillHit tests subpaths from last to first with the even-odd rule and
// returns the first that contains pt.
func (p *Path) fillHit(pt Point, o *hitOptions) (int, bool) {
	for i := len(p.subs) - 1; i >= 0; i-- {
		if !o.allows(i) {
			continue
		}
		if p.subs[i].containsEvenOdd(pt) {
			return i, true
		}
	}
	return 0, false
}

// containsEvenOdd casts a ray from pt to a point just outside the bounding
// box and counts the segments that cross it. Open subpaths are closed
// implicitly.
func (s SubPath) containsEvenOdd(pt Point) bool {
	if len(s.cmds) < 2 {
		return false
	}
	bbox := s.BoundingBox()
	if !bbox.Contains(pt) {
		return false
	}
	ray := LineSeg{P0: pt, P1: Pt(bbox.Min.X-1, bbox.Min.Y-1)}

	crossings := 0
	for _, c := range s.cmds[1:] {
		crossings += rayCrossings(NewCalculator(c), ray)
	}
	if !s.IsClosed() {
		crossings += rayCrossings(makeCalculator(Line, s.End(), s.Start()), ray)
	}
	return crossings%2 == 1
}

// rayCrossings counts how often calc passes from one side of the line
// through ray to the other at a point on ray. Points on the line count as
// the negative side, so a vertex the ray only touches adds two crossings or
// none, and a vertex it passes through adds one.
func rayCrossings(calc Calculator, ray LineSeg) int {
	const eps = 1e-9
	positive := func(p Point) bool { return ray.signedDistances(p)[0] > 0 }

	ts := []float64{0}
	for _, r := range calc.lineRoots(ray) {
		if r > 0 && r < 1 {
			ts = append(ts, r)
		}
	}
	ts = append(ts, 1)

	// Sides at t = 0, inside every interval between roots, and at t = 1.
	// Side k and k+1 are separated by ts[k].
	sides := make([]bool, 0, len(ts)+1)
	sides = append(sides, positive(calc.start()))
	for i := 1; i < len(ts); i++ {
		sides = append(sides, positive(calc.eval((ts[i-1]+ts[i])/2)))
	}
	sides = append(sides, positive(calc.end()))

	n := 0
	for k, t := range ts {
		if sides[k] == sides[k+1] {
			continue
		}
		if u := ray.param(calc.eval(t)); u >= -eps && u <= 1+eps {
			n++
		}
	}
	return n
}
