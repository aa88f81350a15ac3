package modify

import (
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// squareMMPerSquareM converts polygon areas from document units (mm²)
// to the stored space area unit (m²).
const squareMMPerSquareM = 1e6

// TransformShape returns a deep copy of s with the transform applied and
// newID assigned. Pass an empty newID to mint a fresh identity. The kind,
// layer, style, and flags of the input carry over unchanged.
func TransformShape(s shape.Shape, t geom.Transform, newID shape.ID) shape.Shape {
	out := TransformUpdates(s, t).Apply(s)
	if newID == "" {
		newID = shape.NewID()
	}
	out.Header().ID = newID
	return out
}

// TransformUpdates computes the transformed geometry of s and returns it
// as a partial-update record carrying only geometric fields. This is the
// form callers apply to an existing shape rather than replacing it.
func TransformUpdates(s shape.Shape, t geom.Transform) shape.Update {
	u := shape.Update{ID: s.Header().ID}

	switch v := s.(type) {
	case *shape.Line:
		u.Start, u.End = mapPair(t, v.Start, v.End)
	case *shape.Wall:
		u.Start, u.End = mapPair(t, v.Start, v.End)
	case *shape.Beam:
		u.Start, u.End = mapPair(t, v.Start, v.End)
	case *shape.Gridline:
		u.Start, u.End = mapPair(t, v.Start, v.End)
	case *shape.Level:
		u.Start, u.End = mapPair(t, v.Start, v.End)
		// The displayed elevation is derived from Y, so it must be
		// recomputed after the move.
		elev := int(math.Round(-u.Start.Y))
		u.Label = shape.StringRef(shape.FormatElevation(elev))
	case *shape.Dimension:
		u.Start, u.End = mapPair(t, v.Start, v.End)
		u.TextPosition = shape.PtRef(t(v.TextPosition))
	case *shape.Rectangle:
		boxUpdate(&u, t, v.Corners())
	case *shape.Image:
		boxUpdate(&u, t, v.Corners())
	case *shape.Circle:
		center := t(v.Center)
		probe := t(geom.PolarPoint(v.Center, v.Radius, 0))
		u.Center = shape.PtRef(center)
		u.Radius = shape.FloatRef(probe.DistTo(center))
	case *shape.Arc:
		center := t(v.Center)
		start := t(v.StartPoint())
		end := t(v.EndPoint())
		u.Center = shape.PtRef(center)
		u.Radius = shape.FloatRef(start.DistTo(center))
		u.StartAngle = shape.FloatRef(start.Sub(center).Angle())
		u.EndAngle = shape.FloatRef(end.Sub(center).Angle())
	case *shape.Ellipse:
		center := t(v.Center)
		axisX, _ := geom.Pt(math.Cos(v.Rotation), math.Sin(v.Rotation)).Normalize()
		probeX := t(v.Center.Add(axisX.Mul(v.RadiusX)))
		probeY := t(v.Center.Add(axisX.Perp().Mul(v.RadiusY)))
		u.Center = shape.PtRef(center)
		u.RadiusX = shape.FloatRef(probeX.DistTo(center))
		u.RadiusY = shape.FloatRef(probeY.DistTo(center))
		u.Rotation = shape.FloatRef(probeX.Sub(center).Angle())
	case *shape.Polyline:
		u.Points = mapPoints(t, v.Points)
	case *shape.Spline:
		u.Points = mapPoints(t, v.Points)
	case *shape.Hatch:
		u.Points = mapPoints(t, v.Boundary)
	case *shape.Slab:
		u.Points = mapPoints(t, v.Outline)
	case *shape.Space:
		u.Points = mapPoints(t, v.ContourPoints)
		u.LabelPosition = shape.PtRef(t(v.LabelPosition))
		u.Area = shape.FloatRef(math.Abs(geom.PolygonArea(u.Points)) / squareMMPerSquareM)
	case *shape.Text:
		pos := t(v.Position)
		dir := t(v.Position.Add(geom.Pt(math.Cos(v.Rotation), math.Sin(v.Rotation))))
		u.Position = shape.PtRef(pos)
		u.Rotation = shape.FloatRef(dir.Sub(pos).Angle())
	}

	return u
}

func mapPair(t geom.Transform, start, end geom.Point) (*geom.Point, *geom.Point) {
	return shape.PtRef(t(start)), shape.PtRef(t(end))
}

func mapPoints(t geom.Transform, pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = t(p)
	}
	return out
}

// boxUpdate re-derives a rectangle frame from its four transformed
// corners: width from the first edge, height from the side edge, rotation
// from the first edge's direction. Correct under rotation and mirroring,
// not just translation.
func boxUpdate(u *shape.Update, t geom.Transform, corners [4]geom.Point) {
	c0 := t(corners[0])
	c1 := t(corners[1])
	c3 := t(corners[3])
	u.TopLeft = shape.PtRef(c0)
	u.Width = shape.FloatRef(c1.DistTo(c0))
	u.Height = shape.FloatRef(c3.DistTo(c0))
	u.Rotation = shape.FloatRef(c1.Sub(c0).Angle())
}
