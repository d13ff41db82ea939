package vpath

// HitOption configures Path.HitTest.
// Use functional options to choose which kinds of hits are reported.
//
// Example:
//
//	// Report end points within 4 units and any hit inside a filled subpath
//	res := p.HitTest(pt, vpath.WithPointHit(vpath.WithinRadius(4)), vpath.WithFillHit())
type HitOption func(*hitOptions)

// RangeFunc decides whether a point at the given distance from a command
// counts as a hit. It receives the command so that callers can treat split
// points or particular verbs differently.
type RangeFunc func(distance float64, c Command) bool

// hitOptions holds the enabled hit kinds.
type hitOptions struct {
	pointHit   RangeFunc
	segmentHit RangeFunc
	fillHit    bool
	restrict   map[int]bool
}

func defaultHitOptions() hitOptions {
	return hitOptions{}
}

// allows reports whether subpath i takes part in the test.
func (o *hitOptions) allows(i int) bool {
	return o.restrict == nil || o.restrict[i]
}

// WithPointHit enables end point hits: the nearest command end point for
// which inRange returns true is reported.
func WithPointHit(inRange RangeFunc) HitOption {
	return func(o *hitOptions) {
		o.pointHit = inRange
	}
}

// WithSegmentHit enables segment hits: the projection onto the nearest
// segment is reported when inRange accepts its distance.
func WithSegmentHit(inRange RangeFunc) HitOption {
	return func(o *hitOptions) {
		o.segmentHit = inRange
	}
}

// WithFillHit enables fill hits using the even-odd rule, tested per subpath.
func WithFillHit() HitOption {
	return func(o *hitOptions) {
		o.fillHit = true
	}
}

// RestrictToSubPaths limits every hit kind to the given subpath indices.
// Calling it with no indices excludes every subpath.
func RestrictToSubPaths(indices ...int) HitOption {
	return func(o *hitOptions) {
		o.restrict = make(map[int]bool, len(indices))
		for _, i := range indices {
			o.restrict[i] = true
		}
	}
}

// WithinRadius returns a RangeFunc accepting distances up to r.
func WithinRadius(r float64) RangeFunc {
	return func(d float64, _ Command) bool {
		return d <= r
	}
}
