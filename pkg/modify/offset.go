package modify

import (
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// MinOffsetRadius is the smallest radius an inward offset may produce.
// Shrinking past it clamps instead of collapsing the shape.
const MinOffsetRadius = 0.001

// Offset produces a parallel copy of s displaced by distance, with the
// sign chosen from the cursor-side hint:
//
//   - line-like shapes move along their perpendicular toward the cursor;
//   - circles and arcs grow when the cursor is outside the current
//     radius and shrink when it is inside;
//   - ellipses grow or shrink both radii by the same absolute distance.
//
// Radii clamp to MinOffsetRadius rather than degenerate. The result is a
// brand-new shape with a fresh identity; the input is never mutated.
// Kinds without an offset meaning report ok=false.
func Offset(s shape.Shape, distance float64, cursor geom.Point) (shape.Shape, bool) {
	if distance < 0 {
		distance = -distance
	}

	switch v := s.(type) {
	case *shape.Line:
		return offsetLineLike(v, distance, cursor)
	case *shape.Wall:
		return offsetLineLike(v, distance, cursor)
	case *shape.Beam:
		return offsetLineLike(v, distance, cursor)
	case *shape.Gridline:
		return offsetLineLike(v, distance, cursor)
	case *shape.Circle:
		out := v.Clone().(*shape.Circle)
		out.ID = shape.NewID()
		out.Radius = offsetRadius(v.Radius, distance, cursor.DistTo(v.Center) > v.Radius)
		return out, true
	case *shape.Arc:
		out := v.Clone().(*shape.Arc)
		out.ID = shape.NewID()
		out.Radius = offsetRadius(v.Radius, distance, cursor.DistTo(v.Center) > v.Radius)
		return out, true
	case *shape.Ellipse:
		out := v.Clone().(*shape.Ellipse)
		out.ID = shape.NewID()
		grow := ellipseValue(v, cursor) > 1
		out.RadiusX = offsetRadius(v.RadiusX, distance, grow)
		out.RadiusY = offsetRadius(v.RadiusY, distance, grow)
		return out, true
	default:
		return nil, false
	}
}

func offsetLineLike(l shape.LineLike, distance float64, cursor geom.Point) (shape.Shape, bool) {
	start, end := l.Endpoints()
	dir, length := end.Sub(start).Normalize()
	if length == 0 {
		return nil, false
	}

	// The perpendicular dotted against midpoint→cursor picks the side.
	normal := dir.Perp()
	if normal.Dot(cursor.Sub(geom.Mid(start, end))) < 0 {
		normal = normal.Mul(-1)
	}
	delta := normal.Mul(distance)

	out := l.Clone().(shape.LineLike)
	out.Header().ID = shape.NewID()
	out.SetEndpoints(start.Add(delta), end.Add(delta))
	return out, true
}

func offsetRadius(radius, distance float64, grow bool) float64 {
	if grow {
		return radius + distance
	}
	return math.Max(radius-distance, MinOffsetRadius)
}

// ellipseValue evaluates the normalized ellipse equation at p: below 1
// means inside, above 1 outside.
func ellipseValue(e *shape.Ellipse, p geom.Point) float64 {
	if e.RadiusX <= 0 || e.RadiusY <= 0 {
		return math.Inf(1)
	}
	// Undo the ellipse rotation to test in axis-aligned coordinates.
	local := geom.Rotate(e.Center, -e.Rotation)(p).Sub(e.Center)
	x := local.X / e.RadiusX
	y := local.Y / e.RadiusY
	return x*x + y*y
}
