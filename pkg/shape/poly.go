package shape

import (
	"slices"

	"github.com/draftwise/draftcore/pkg/geom"
)

// Rectangle is an oriented rectangle described by its top-left corner,
// extents, and rotation (radians). The remaining corners are derived.
type Rectangle struct {
	Common
	TopLeft  geom.Point `json:"topLeft" bson:"topLeft"`
	Width    float64    `json:"width" bson:"width"`
	Height   float64    `json:"height" bson:"height"`
	Rotation float64    `json:"rotation,omitempty" bson:"rotation,omitempty"`
}

func (*Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Clone() Shape {
	cp := *r
	return &cp
}

// Corners returns the four corners in drawing order: top-left, top-right,
// bottom-right, bottom-left.
func (r *Rectangle) Corners() [4]geom.Point {
	return orientedCorners(r.TopLeft, r.Width, r.Height, r.Rotation)
}

// Image is a raster placement with rectangle geometry.
type Image struct {
	Common
	TopLeft  geom.Point `json:"topLeft" bson:"topLeft"`
	Width    float64    `json:"width" bson:"width"`
	Height   float64    `json:"height" bson:"height"`
	Rotation float64    `json:"rotation,omitempty" bson:"rotation,omitempty"`
	Source   string     `json:"source,omitempty" bson:"source,omitempty"`
}

func (*Image) Kind() Kind { return KindImage }

func (i *Image) Clone() Shape {
	cp := *i
	return &cp
}

// Corners returns the four corners in drawing order.
func (i *Image) Corners() [4]geom.Point {
	return orientedCorners(i.TopLeft, i.Width, i.Height, i.Rotation)
}

func orientedCorners(topLeft geom.Point, width, height, rotation float64) [4]geom.Point {
	rot := geom.Rotate(topLeft, rotation)
	return [4]geom.Point{
		topLeft,
		rot(topLeft.Add(geom.Pt(width, 0))),
		rot(topLeft.Add(geom.Pt(width, height))),
		rot(topLeft.Add(geom.Pt(0, height))),
	}
}

// Polyline is an open or closed chain of points.
type Polyline struct {
	Common
	Points []geom.Point `json:"points" bson:"points"`
	Closed bool         `json:"closed,omitempty" bson:"closed,omitempty"`
}

func (*Polyline) Kind() Kind { return KindPolyline }

func (p *Polyline) Clone() Shape {
	cp := *p
	cp.Points = slices.Clone(p.Points)
	return &cp
}

// Spline is a smooth curve through control points. The core treats the
// control polygon as the geometry; interpolation is a rendering concern.
type Spline struct {
	Common
	Points []geom.Point `json:"points" bson:"points"`
}

func (*Spline) Kind() Kind { return KindSpline }

func (s *Spline) Clone() Shape {
	cp := *s
	cp.Points = slices.Clone(s.Points)
	return &cp
}

// Hatch is a filled region bounded by a closed polygon.
type Hatch struct {
	Common
	Boundary []geom.Point `json:"boundary" bson:"boundary"`
	Pattern  string       `json:"pattern,omitempty" bson:"pattern,omitempty"`
}

func (*Hatch) Kind() Kind { return KindHatch }

func (h *Hatch) Clone() Shape {
	cp := *h
	cp.Boundary = slices.Clone(h.Boundary)
	return &cp
}

// Slab is a structural floor plate bounded by a closed outline.
type Slab struct {
	Common
	Outline   []geom.Point `json:"outline" bson:"outline"`
	Thickness float64      `json:"thickness,omitempty" bson:"thickness,omitempty"`
}

func (*Slab) Kind() Kind { return KindSlab }

func (s *Slab) Clone() Shape {
	cp := *s
	cp.Outline = slices.Clone(s.Outline)
	return &cp
}

// Space is a detected room region. ContourPoints and Area are derived
// from the wall network and recomputed by the space detector, never
// hand-edited. LabelPosition doubles as the re-detection probe point.
type Space struct {
	Common
	ContourPoints []geom.Point `json:"contourPoints" bson:"contourPoints"`
	// Area is the enclosed area in square meters.
	Area          float64    `json:"area" bson:"area"`
	LabelPosition geom.Point `json:"labelPosition" bson:"labelPosition"`
	Name          string     `json:"name,omitempty" bson:"name,omitempty"`
}

func (*Space) Kind() Kind { return KindSpace }

func (s *Space) Clone() Shape {
	cp := *s
	cp.ContourPoints = slices.Clone(s.ContourPoints)
	return &cp
}

// Text is a text annotation anchored at a position.
type Text struct {
	Common
	Position geom.Point `json:"position" bson:"position"`
	Content  string     `json:"content" bson:"content"`
	Height   float64    `json:"height,omitempty" bson:"height,omitempty"`
	Rotation float64    `json:"rotation,omitempty" bson:"rotation,omitempty"`
}

func (*Text) Kind() Kind { return KindText }

func (t *Text) Clone() Shape {
	cp := *t
	return &cp
}
