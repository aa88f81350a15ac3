package modify

import (
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// TrimAtEdge trims or extends target against the cutting edge, picking
// the operation from where the infinite-line intersection falls on the
// target:
//
//   - inside the target's own segment window [-0.01, 1.01]: trim. The
//     click hint selects the removed side; the endpoint nearer the click
//     is pulled to the intersection.
//   - outside the window: extend, but only if the intersection also lies
//     within the cutting edge's own window (the edge is acting as a real
//     boundary, not an arbitrary infinite line). The target endpoint
//     nearer the intersection moves to it.
//
// Parallel lines or a failed boundary check report ok=false.
func TrimAtEdge(target, edge shape.LineLike, click geom.Point) (shape.Update, bool) {
	ts, te := target.Endpoints()
	es, ee := edge.Endpoints()

	ix, ok := geom.LineIntersection(ts, te, es, ee)
	if !ok {
		return shape.Update{}, false
	}

	t := geom.SegmentParam(ix, ts, te)
	if geom.WithinSegment(t) {
		// Trim: the side nearer the click is removed.
		if click.DistSqTo(ts) < click.DistSqTo(te) {
			return shape.Update{ID: target.Header().ID, Start: shape.PtRef(ix)}, true
		}
		return shape.Update{ID: target.Header().ID, End: shape.PtRef(ix)}, true
	}

	// Extend: require the intersection to fall within the cutting edge.
	if !geom.WithinSegment(geom.SegmentParam(ix, es, ee)) {
		return shape.Update{}, false
	}
	return extendNearEnd(target, ix), true
}

// ExtendToBoundary extends the line's nearer endpoint to its intersection
// with the boundary. The intersection must lie within the boundary's own
// segment window; otherwise, or for parallel lines, ok=false.
func ExtendToBoundary(line, boundary shape.LineLike) (shape.Update, bool) {
	ls, le := line.Endpoints()
	bs, be := boundary.Endpoints()

	ix, ok := geom.LineIntersection(ls, le, bs, be)
	if !ok {
		return shape.Update{}, false
	}
	if !geom.WithinSegment(geom.SegmentParam(ix, bs, be)) {
		return shape.Update{}, false
	}
	return extendNearEnd(line, ix), true
}

// ExtendBoth extends the nearer endpoint of each shape to their mutual
// infinite-line intersection, returning paired updates. This is the
// fallback when neither one-sided extend succeeds; both segment windows
// are ignored. Parallel lines report ok=false.
func ExtendBoth(a, b shape.LineLike) ([2]shape.Update, bool) {
	as, ae := a.Endpoints()
	bs, be := b.Endpoints()

	ix, ok := geom.LineIntersection(as, ae, bs, be)
	if !ok {
		return [2]shape.Update{}, false
	}
	return [2]shape.Update{extendNearEnd(a, ix), extendNearEnd(b, ix)}, true
}

// extendNearEnd moves whichever endpoint of l is closer to p onto p.
func extendNearEnd(l shape.LineLike, p geom.Point) shape.Update {
	start, end := l.Endpoints()
	if p.DistSqTo(start) < p.DistSqTo(end) {
		return shape.Update{ID: l.Header().ID, Start: shape.PtRef(p)}
	}
	return shape.Update{ID: l.Header().ID, End: shape.PtRef(p)}
}
