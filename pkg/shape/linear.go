package shape

import (
	"fmt"
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
)

// LineLike is implemented by every shape with a start/end pair. Only
// line-like shapes participate in trim, extend, fillet, chamfer, and
// miter joining.
type LineLike interface {
	Shape
	// Endpoints returns the start and end points.
	Endpoints() (start, end geom.Point)
	// SetEndpoints replaces the start and end points.
	SetEndpoints(start, end geom.Point)
}

// Member holds the fields shared by structural members (walls, beams):
// thickness, justification, curvature, and cap treatment.
type Member struct {
	Thickness     float64       `json:"thickness" bson:"thickness"`
	Justification Justification `json:"justification,omitempty" bson:"justification,omitempty"`
	// Bulge is the signed curvature parameter; 0 means straight, the
	// sign selects the curve side (positive bulges counter-clockwise).
	Bulge    float64  `json:"bulge,omitempty" bson:"bulge,omitempty"`
	StartCap CapStyle `json:"startCap,omitempty" bson:"startCap,omitempty"`
	EndCap   CapStyle `json:"endCap,omitempty" bson:"endCap,omitempty"`
	// StartMiterAngle and EndMiterAngle store the direction of the
	// other joined member, pointing away from the junction (radians).
	// Only meaningful while the matching cap is CapMiter.
	StartMiterAngle float64 `json:"startMiterAngle,omitempty" bson:"startMiterAngle,omitempty"`
	EndMiterAngle   float64 `json:"endMiterAngle,omitempty" bson:"endMiterAngle,omitempty"`
}

// Structural is implemented by wall- and beam-like members that can be
// miter-joined.
type Structural interface {
	LineLike
	// Structure returns the mutable structural fields.
	Structure() *Member
}

// Line is a straight segment.
type Line struct {
	Common
	Start geom.Point `json:"start" bson:"start"`
	End   geom.Point `json:"end" bson:"end"`
}

func (*Line) Kind() Kind { return KindLine }

func (l *Line) Endpoints() (geom.Point, geom.Point) { return l.Start, l.End }

func (l *Line) SetEndpoints(start, end geom.Point) { l.Start, l.End = start, end }

func (l *Line) Clone() Shape {
	c := *l
	return &c
}

// Wall is a structural member with thickness drawn along a centerline.
type Wall struct {
	Common
	Start geom.Point `json:"start" bson:"start"`
	End   geom.Point `json:"end" bson:"end"`
	Member
}

func (*Wall) Kind() Kind { return KindWall }

func (w *Wall) Endpoints() (geom.Point, geom.Point) { return w.Start, w.End }

func (w *Wall) SetEndpoints(start, end geom.Point) { w.Start, w.End = start, end }

func (w *Wall) Structure() *Member { return &w.Member }

func (w *Wall) Clone() Shape {
	c := *w
	return &c
}

// Beam is a structural member like Wall; it differs only in kind, which
// downstream consumers (renderers, schedules) care about.
type Beam struct {
	Common
	Start geom.Point `json:"start" bson:"start"`
	End   geom.Point `json:"end" bson:"end"`
	Member
}

func (*Beam) Kind() Kind { return KindBeam }

func (b *Beam) Endpoints() (geom.Point, geom.Point) { return b.Start, b.End }

func (b *Beam) SetEndpoints(start, end geom.Point) { b.Start, b.End = start, end }

func (b *Beam) Structure() *Member { return &b.Member }

func (b *Beam) Clone() Shape {
	c := *b
	return &c
}

// Gridline is a reference axis line with a bubble label.
type Gridline struct {
	Common
	Start geom.Point `json:"start" bson:"start"`
	End   geom.Point `json:"end" bson:"end"`
	Label string     `json:"label,omitempty" bson:"label,omitempty"`
}

func (*Gridline) Kind() Kind { return KindGridline }

func (g *Gridline) Endpoints() (geom.Point, geom.Point) { return g.Start, g.End }

func (g *Gridline) SetEndpoints(start, end geom.Point) { g.Start, g.End = start, end }

func (g *Gridline) Clone() Shape {
	c := *g
	return &c
}

// Level is a horizontal elevation marker. Its displayed label is derived
// from the start Y coordinate, never stored independently.
type Level struct {
	Common
	Start geom.Point `json:"start" bson:"start"`
	End   geom.Point `json:"end" bson:"end"`
	Label string     `json:"label,omitempty" bson:"label,omitempty"`
}

func (*Level) Kind() Kind { return KindLevel }

func (l *Level) Endpoints() (geom.Point, geom.Point) { return l.Start, l.End }

func (l *Level) SetEndpoints(start, end geom.Point) { l.Start, l.End = start, end }

func (l *Level) Clone() Shape {
	c := *l
	return &c
}

// Elevation returns the level's displayed elevation: round(-start.Y).
// Document Y grows downward, so higher levels have smaller Y.
func (l *Level) Elevation() int {
	return int(math.Round(-l.Start.Y))
}

// FormatElevation renders an elevation value using the fixed display
// convention: "± 0" at zero, "+ N" above, "- N" below.
func FormatElevation(elevation int) string {
	switch {
	case elevation == 0:
		return "± 0"
	case elevation > 0:
		return fmt.Sprintf("+ %d", elevation)
	default:
		return fmt.Sprintf("- %d", -elevation)
	}
}

// Dimension is a linear measurement annotation between two points.
type Dimension struct {
	Common
	Start        geom.Point `json:"start" bson:"start"`
	End          geom.Point `json:"end" bson:"end"`
	TextPosition geom.Point `json:"textPosition" bson:"textPosition"`
}

func (*Dimension) Kind() Kind { return KindDimension }

func (d *Dimension) Clone() Shape {
	c := *d
	return &c
}
