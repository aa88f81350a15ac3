package spaces

import (
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// segment is one undirected boundary edge of the subdivision.
type segment struct {
	a, b geom.Point
}

// wallEdges collects the outline edges of every straight, visible wall.
// Curved walls (non-zero bulge) have no polygonal outline and are
// skipped, as are walls whose centerline or thickness degenerates.
func wallEdges(shapes []shape.Shape) []segment {
	var segs []segment
	for _, s := range shapes {
		w, ok := s.(*shape.Wall)
		if !ok || w.Hidden || w.Bulge != 0 {
			continue
		}
		corners, ok := outlineCorners(w)
		if !ok {
			continue
		}
		for i := range corners {
			segs = append(segs, segment{corners[i], corners[(i+1)%len(corners)]})
		}
	}
	return segs
}

// outlineCorners derives the four outline corners of a straight wall
// from its centerline, thickness, and justification. The corners run
// start side, end side, back along the opposite face.
func outlineCorners(w *shape.Wall) ([4]geom.Point, bool) {
	dir, length := w.End.Sub(w.Start).Normalize()
	if length == 0 || w.Thickness <= 0 {
		return [4]geom.Point{}, false
	}
	left := dir.Perp()

	// The justification states which face the centerline sits on.
	var near, far float64
	switch w.Justification {
	case shape.JustifyLeft:
		near, far = 0, w.Thickness
	case shape.JustifyRight:
		near, far = 0, -w.Thickness
	default:
		near, far = w.Thickness/2, -w.Thickness/2
	}

	return [4]geom.Point{
		w.Start.Add(left.Mul(near)),
		w.End.Add(left.Mul(near)),
		w.End.Add(left.Mul(far)),
		w.Start.Add(left.Mul(far)),
	}, true
}
