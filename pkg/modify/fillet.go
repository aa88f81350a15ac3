package modify

import (
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// filletAngleEps rejects fillets between (anti)parallel lines, where the
// tangent construction degenerates.
const filletAngleEps = 1e-9

// FilletResult is a tangent arc between two lines plus the trim updates
// that shorten both inputs to the tangent points.
type FilletResult struct {
	// Arc is the new tangent arc, carrying a fresh identity.
	Arc *shape.Arc
	// TrimA and TrimB shorten the two input lines to the tangent points.
	TrimA shape.Update
	TrimB shape.Update
}

// ChamferResult is a straight bevel between two lines plus the trim
// updates that shorten both inputs to the bevel endpoints.
type ChamferResult struct {
	// Bevel is the new straight segment, carrying a fresh identity.
	Bevel *shape.Line
	TrimA shape.Update
	TrimB shape.Update
}

// Fillet inserts a tangent arc of the given radius between two lines.
// Each line is trimmed to its tangent point, placed radius/tan(half) away
// from the intersection along the kept side. Degenerate input — parallel
// lines, near-zero-length lines, non-positive radius — reports ok=false.
func Fillet(a, b shape.LineLike, radius float64) (FilletResult, bool) {
	if radius <= 0 {
		return FilletResult{}, false
	}
	c, ok := corner(a, b)
	if !ok {
		return FilletResult{}, false
	}

	dist := radius / math.Tan(c.half)
	pa := c.ix.Add(c.dirA.Mul(dist))
	pb := c.ix.Add(c.dirB.Mul(dist))

	bisector, l := c.dirA.Add(c.dirB).Normalize()
	if l == 0 {
		return FilletResult{}, false
	}
	center := c.ix.Add(bisector.Mul(radius / math.Sin(c.half)))

	// The cross-product sign picks which tangent point the arc starts
	// from, so the counter-clockwise sweep stays on the corner side.
	ca := pa.Sub(center)
	cb := pb.Sub(center)
	startAngle, endAngle := ca.Angle(), cb.Angle()
	if ca.Cross(cb) < 0 {
		startAngle, endAngle = endAngle, startAngle
	}

	arc := &shape.Arc{
		Common: shape.Common{
			ID:    shape.NewID(),
			Layer: a.Header().Layer,
			Style: a.Header().Style,
		},
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}

	return FilletResult{
		Arc:   arc,
		TrimA: trimToPoint(a, c.nearStartA, pa),
		TrimB: trimToPoint(b, c.nearStartB, pb),
	}, true
}

// Chamfer inserts a straight bevel between two lines, cut at distA and
// distB from their intersection along the kept sides. Degenerate input
// (parallel lines, zero-length lines, non-positive distances) reports
// ok=false.
func Chamfer(a, b shape.LineLike, distA, distB float64) (ChamferResult, bool) {
	if distA <= 0 || distB <= 0 {
		return ChamferResult{}, false
	}
	c, ok := corner(a, b)
	if !ok {
		return ChamferResult{}, false
	}

	pa := c.ix.Add(c.dirA.Mul(distA))
	pb := c.ix.Add(c.dirB.Mul(distB))

	bevel := &shape.Line{
		Common: shape.Common{
			ID:    shape.NewID(),
			Layer: a.Header().Layer,
			Style: a.Header().Style,
		},
		Start: pa,
		End:   pb,
	}

	return ChamferResult{
		Bevel: bevel,
		TrimA: trimToPoint(a, c.nearStartA, pa),
		TrimB: trimToPoint(b, c.nearStartB, pb),
	}, true
}

// cornerGeometry describes two lines meeting at a corner: the
// intersection, the unit directions walking away from it along each
// kept side, the half-angle between them, and which endpoint of each
// line is the near (trimmed) one.
type cornerGeometry struct {
	ix         geom.Point
	dirA, dirB geom.Point
	half       float64
	nearStartA bool
	nearStartB bool
}

func corner(a, b shape.LineLike) (cornerGeometry, bool) {
	as, ae := a.Endpoints()
	bs, be := b.Endpoints()

	if _, l := ae.Sub(as).Normalize(); l == 0 {
		return cornerGeometry{}, false
	}
	if _, l := be.Sub(bs).Normalize(); l == 0 {
		return cornerGeometry{}, false
	}

	ix, ok := geom.LineIntersection(as, ae, bs, be)
	if !ok {
		return cornerGeometry{}, false
	}

	dirA, nearStartA := awayDirection(as, ae, ix)
	dirB, nearStartB := awayDirection(bs, be, ix)
	if (dirA == geom.Point{}) || (dirB == geom.Point{}) {
		return cornerGeometry{}, false
	}

	cos := dirA.Dot(dirB)
	cos = math.Max(-1, math.Min(1, cos))
	half := math.Acos(cos) / 2
	if math.Sin(half) < filletAngleEps {
		return cornerGeometry{}, false
	}

	return cornerGeometry{
		ix:         ix,
		dirA:       dirA,
		dirB:       dirB,
		half:       half,
		nearStartA: nearStartA,
		nearStartB: nearStartB,
	}, true
}

// awayDirection returns the unit direction from the intersection toward
// the line's far endpoint, and whether the near (trimmed) endpoint is
// the start. The near endpoint is the one whose segment parameter sits
// closer to the intersection's.
func awayDirection(start, end, ix geom.Point) (geom.Point, bool) {
	t := geom.SegmentParam(ix, start, end)
	if math.Abs(t) < math.Abs(t-1) {
		// Start is nearer: keep the end side.
		dir, _ := end.Sub(ix).Normalize()
		return dir, true
	}
	dir, _ := start.Sub(ix).Normalize()
	return dir, false
}

// trimToPoint moves the near endpoint of l to p.
func trimToPoint(l shape.LineLike, nearStart bool, p geom.Point) shape.Update {
	if nearStart {
		return shape.Update{ID: l.Header().ID, Start: shape.PtRef(p)}
	}
	return shape.Update{ID: l.Header().ID, End: shape.PtRef(p)}
}
