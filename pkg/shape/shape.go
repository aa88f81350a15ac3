package shape

import (
	"github.com/google/uuid"
)

// ID is an opaque shape identity. IDs are assigned once at creation and
// never reused; a copy of a shape always receives a new ID.
type ID string

// NewID mints a fresh shape identity.
func NewID() ID { return ID(uuid.NewString()) }

// Kind discriminates the shape variants.
type Kind string

// The closed set of shape kinds.
const (
	KindLine      Kind = "line"
	KindWall      Kind = "wall"
	KindBeam      Kind = "beam"
	KindGridline  Kind = "gridline"
	KindLevel     Kind = "level"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindArc       Kind = "arc"
	KindEllipse   Kind = "ellipse"
	KindPolyline  Kind = "polyline"
	KindSpline    Kind = "spline"
	KindText      Kind = "text"
	KindHatch     Kind = "hatch"
	KindSlab      Kind = "slab"
	KindSpace     Kind = "space"
	KindImage     Kind = "image"
	KindDimension Kind = "dimension"
)

// ValidKinds is the set of recognized shape kinds, used by import
// validation.
var ValidKinds = map[Kind]bool{
	KindLine: true, KindWall: true, KindBeam: true, KindGridline: true,
	KindLevel: true, KindRectangle: true, KindCircle: true, KindArc: true,
	KindEllipse: true, KindPolyline: true, KindSpline: true, KindText: true,
	KindHatch: true, KindSlab: true, KindSpace: true, KindImage: true,
	KindDimension: true,
}

// CapStyle is the end treatment of a structural member.
type CapStyle string

const (
	// CapButt is a squared cut perpendicular to the member axis.
	CapButt CapStyle = "butt"
	// CapMiter is an angled cut toward a joined partner. A miter cap is
	// only meaningful together with its stored miter angle.
	CapMiter CapStyle = "miter"
)

// Justification states which face of a member's thickness the reference
// start/end points describe.
type Justification string

const (
	JustifyCenter Justification = "center"
	JustifyLeft   Justification = "left"
	JustifyRight  Justification = "right"
)

// Style is the visual presentation of a shape. The geometry core carries
// it through operations untouched.
type Style struct {
	Stroke string  `json:"stroke,omitempty" bson:"stroke,omitempty"`
	Weight float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	Dash   string  `json:"dash,omitempty" bson:"dash,omitempty"`
}

// Common is the header every shape carries: identity, drawing
// association, presentation, and interaction flags.
type Common struct {
	ID     ID     `json:"id" bson:"id"`
	Layer  string `json:"layer,omitempty" bson:"layer,omitempty"`
	Style  Style  `json:"style,omitempty" bson:"style,omitempty"`
	Hidden bool   `json:"hidden,omitempty" bson:"hidden,omitempty"`
	Locked bool   `json:"locked,omitempty" bson:"locked,omitempty"`
}

// Header returns the shape's common header.
func (c *Common) Header() *Common { return c }

// Shape is the closed union of drawing primitives. Concrete types live in
// this package; dispatch is by type switch.
type Shape interface {
	// Kind returns the variant discriminant.
	Kind() Kind
	// Header returns the mutable common header.
	Header() *Common
	// Clone returns a deep copy with the same identity. Callers that
	// need a genuine copy must assign a fresh ID afterward.
	Clone() Shape
}
