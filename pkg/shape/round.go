package shape

import "github.com/draftwise/draftcore/pkg/geom"

// Circle is a full circle around a center.
type Circle struct {
	Common
	Center geom.Point `json:"center" bson:"center"`
	Radius float64    `json:"radius" bson:"radius"`
}

func (*Circle) Kind() Kind { return KindCircle }

func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

// Arc is a circular arc swept counter-clockwise from StartAngle to
// EndAngle (radians).
type Arc struct {
	Common
	Center     geom.Point `json:"center" bson:"center"`
	Radius     float64    `json:"radius" bson:"radius"`
	StartAngle float64    `json:"startAngle" bson:"startAngle"`
	EndAngle   float64    `json:"endAngle" bson:"endAngle"`
}

func (*Arc) Kind() Kind { return KindArc }

func (a *Arc) Clone() Shape {
	cp := *a
	return &cp
}

// StartPoint returns the point where the arc begins.
func (a *Arc) StartPoint() geom.Point {
	return geom.PolarPoint(a.Center, a.Radius, a.StartAngle)
}

// EndPoint returns the point where the arc ends.
func (a *Arc) EndPoint() geom.Point {
	return geom.PolarPoint(a.Center, a.Radius, a.EndAngle)
}

// Ellipse is an axis-aligned ellipse rotated by Rotation radians.
type Ellipse struct {
	Common
	Center   geom.Point `json:"center" bson:"center"`
	RadiusX  float64    `json:"radiusX" bson:"radiusX"`
	RadiusY  float64    `json:"radiusY" bson:"radiusY"`
	Rotation float64    `json:"rotation,omitempty" bson:"rotation,omitempty"`
}

func (*Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Clone() Shape {
	cp := *e
	return &cp
}
