package geom

import "math"

// LineIntersection computes the intersection of the two infinite lines
// through (p1, p2) and (p3, p4). It reports ok=false when the lines are
// parallel or near-parallel (|determinant| < ParallelEps).
func LineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)

	det := d1.Cross(d2)
	if math.Abs(det) < ParallelEps {
		return Point{}, false
	}

	t := p3.Sub(p1).Cross(d2) / det
	return p1.Add(d1.Mul(t)), true
}

// SegmentParam returns the parameter of p projected onto the segment
// a→b, where 0 maps to a and 1 maps to b. A degenerate segment returns 0.
func SegmentParam(p, a, b Point) float64 {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq < ZeroLengthEps*ZeroLengthEps {
		return 0
	}
	return p.Sub(a).Dot(d) / lenSq
}

// WithinSegment reports whether the parameter t lies inside the widened
// segment window [-ParamSlack, 1+ParamSlack].
func WithinSegment(t float64) bool {
	return t >= -ParamSlack && t <= 1+ParamSlack
}

// SegmentIntersection computes the intersection of the two closed
// segments a1→a2 and b1→b2. It reports ok=false for parallel lines or
// when the crossing lies outside either segment. The windows are exact
// [0,1], with none of the slack trim/extend uses.
func SegmentIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	p, ok := LineIntersection(a1, a2, b1, b2)
	if !ok {
		return Point{}, false
	}
	ta := SegmentParam(p, a1, a2)
	tb := SegmentParam(p, b1, b2)
	if ta < 0 || ta > 1 || tb < 0 || tb > 1 {
		return Point{}, false
	}
	return p, true
}
