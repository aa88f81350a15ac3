package modify

import (
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// DefaultMiterTolerance is the endpoint distance within which two
// structural members are considered joined when re-resolving miters.
const DefaultMiterTolerance = 1.0

// MiterJoin joins two structural members at a corner. The junction is
// the infinite-line intersection when both members are straight; when
// either is curved it is the midpoint of the closest endpoint pair,
// since miters occur at explicitly shared corners and arcs are not
// intersected analytically.
//
// For each member the endpoint nearer the junction moves onto it and is
// capped miter; the stored miter angle is the *other* member's
// away-direction (straight far-endpoint direction, or the arc tangent at
// the junction, negated when the junction sits at the member's end).
// Parallel straight members and degenerate geometry report ok=false.
func MiterJoin(a, b shape.Structural) ([2]shape.Update, bool) {
	junction, ok := junctionPoint(a, b)
	if !ok {
		return [2]shape.Update{}, false
	}

	nearStartA := nearerStart(a, junction)
	nearStartB := nearerStart(b, junction)

	awayA, ok := awayDir(a, junction, nearStartA)
	if !ok {
		return [2]shape.Update{}, false
	}
	awayB, ok := awayDir(b, junction, nearStartB)
	if !ok {
		return [2]shape.Update{}, false
	}

	return [2]shape.Update{
		miterUpdate(a, junction, nearStartA, awayB.Angle()),
		miterUpdate(b, junction, nearStartB, awayA.Angle()),
	}, true
}

// RecalculateMiterJoins re-resolves the miter angles of a moved member
// and its still-joined partners. Partners are found by nearest-endpoint
// search within tol among all other walls and beams whose matching cap
// is still miter. Updates to the moved shape and each partner are
// state-threaded (each join sees the previous join's result) and merged
// into one consistent batch.
func RecalculateMiterJoins(movedID shape.ID, shapes []shape.Shape, tol float64) []shape.Update {
	if tol <= 0 {
		tol = DefaultMiterTolerance
	}

	local := make(map[shape.ID]shape.Structural)
	for _, s := range shapes {
		if m, ok := s.Clone().(shape.Structural); ok {
			local[s.Header().ID] = m
		}
	}
	moved, ok := local[movedID]
	if !ok {
		return nil
	}

	var batch []shape.Update
	apply := func(u shape.Update) {
		if cur, ok := local[u.ID]; ok {
			local[u.ID] = u.Apply(cur).(shape.Structural)
		}
		batch = append(batch, u)
	}

	for _, atStart := range []bool{true, false} {
		m := moved.Structure()
		capStyle := m.EndCap
		if atStart {
			capStyle = m.StartCap
		}
		if capStyle != shape.CapMiter {
			continue
		}

		start, end := moved.Endpoints()
		at := end
		if atStart {
			at = start
		}

		partner, ok := nearestMiterPartner(local, movedID, at, tol)
		if !ok {
			continue
		}
		updates, ok := MiterJoin(moved, partner)
		if !ok {
			continue
		}
		apply(updates[0])
		apply(updates[1])
		moved = local[movedID]
	}

	return shape.MergeBatch(batch)
}

// junctionPoint finds the corner two members join at.
func junctionPoint(a, b shape.Structural) (geom.Point, bool) {
	if a.Structure().Bulge == 0 && b.Structure().Bulge == 0 {
		as, ae := a.Endpoints()
		bs, be := b.Endpoints()
		return geom.LineIntersection(as, ae, bs, be)
	}

	// A curved member: use the midpoint of the closest endpoint pair.
	pa, pb, ok := closestEndpointPair(a, b)
	if !ok {
		return geom.Point{}, false
	}
	return geom.Mid(pa, pb), true
}

func closestEndpointPair(a, b shape.Structural) (geom.Point, geom.Point, bool) {
	as, ae := a.Endpoints()
	bs, be := b.Endpoints()

	best := math.Inf(1)
	var pa, pb geom.Point
	for _, ca := range []geom.Point{as, ae} {
		for _, cb := range []geom.Point{bs, be} {
			if d := ca.DistSqTo(cb); d < best {
				best = d
				pa, pb = ca, cb
			}
		}
	}
	return pa, pb, !math.IsInf(best, 1)
}

func nearerStart(m shape.Structural, junction geom.Point) bool {
	start, end := m.Endpoints()
	return junction.DistSqTo(start) < junction.DistSqTo(end)
}

// awayDir computes the member's direction pointing away from the
// junction: for a straight member the direction toward the far endpoint,
// for a curved member the arc tangent at the joined endpoint along the
// travel direction, negated at the end side where the travel tangent
// points into the junction.
func awayDir(m shape.Structural, junction geom.Point, atStart bool) (geom.Point, bool) {
	start, end := m.Endpoints()
	bulge := m.Structure().Bulge

	if bulge == 0 {
		far := end
		if !atStart {
			far = start
		}
		dir, l := far.Sub(junction).Normalize()
		return dir, l > 0
	}

	chord, l := end.Sub(start).Normalize()
	if l == 0 {
		return geom.Point{}, false
	}
	// Included angle from the bulge parameter; the tangent deviates
	// from the chord by half of it, toward the curve side.
	theta := 4 * math.Atan(bulge)
	if atStart {
		return rotateVec(chord, -theta/2), true
	}
	return rotateVec(chord, theta/2).Mul(-1), true
}

func rotateVec(v geom.Point, angle float64) geom.Point {
	sin, cos := math.Sincos(angle)
	return geom.Pt(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos)
}

func miterUpdate(m shape.Structural, junction geom.Point, atStart bool, partnerAway float64) shape.Update {
	u := shape.Update{ID: m.Header().ID}
	if atStart {
		u.Start = shape.PtRef(junction)
		u.StartCap = shape.CapRef(shape.CapMiter)
		u.StartMiterAngle = shape.FloatRef(partnerAway)
	} else {
		u.End = shape.PtRef(junction)
		u.EndCap = shape.CapRef(shape.CapMiter)
		u.EndMiterAngle = shape.FloatRef(partnerAway)
	}
	return u
}

// nearestMiterPartner finds the structural member whose mitered endpoint
// is closest to p within tol, excluding the shape with the given id.
func nearestMiterPartner(local map[shape.ID]shape.Structural, exclude shape.ID, p geom.Point, tol float64) (shape.Structural, bool) {
	best := tol * tol
	var found shape.Structural
	for id, m := range local {
		if id == exclude {
			continue
		}
		start, end := m.Endpoints()
		st := m.Structure()
		if st.StartCap == shape.CapMiter {
			if d := p.DistSqTo(start); d <= best {
				best = d
				found = m
			}
		}
		if st.EndCap == shape.CapMiter {
			if d := p.DistSqTo(end); d <= best {
				best = d
				found = m
			}
		}
	}
	return found, found != nil
}
