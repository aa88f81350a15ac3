package shape

import (
	"slices"

	"github.com/draftwise/draftcore/pkg/geom"
)

// Update is a partial-update record: the identity of a shape plus the
// geometric fields that changed. Nil fields are left untouched. The
// document layer applies batches of updates atomically; the geometry
// engines only produce them.
type Update struct {
	ID ID `json:"id" bson:"id"`

	Start         *geom.Point `json:"start,omitempty" bson:"start,omitempty"`
	End           *geom.Point `json:"end,omitempty" bson:"end,omitempty"`
	Center        *geom.Point `json:"center,omitempty" bson:"center,omitempty"`
	TopLeft       *geom.Point `json:"topLeft,omitempty" bson:"topLeft,omitempty"`
	Position      *geom.Point `json:"position,omitempty" bson:"position,omitempty"`
	TextPosition  *geom.Point `json:"textPosition,omitempty" bson:"textPosition,omitempty"`
	LabelPosition *geom.Point `json:"labelPosition,omitempty" bson:"labelPosition,omitempty"`

	// Points replaces the kind's point collection: polyline and spline
	// points, hatch boundary, slab outline, space contour.
	Points []geom.Point `json:"points,omitempty" bson:"points,omitempty"`

	Radius     *float64 `json:"radius,omitempty" bson:"radius,omitempty"`
	RadiusX    *float64 `json:"radiusX,omitempty" bson:"radiusX,omitempty"`
	RadiusY    *float64 `json:"radiusY,omitempty" bson:"radiusY,omitempty"`
	StartAngle *float64 `json:"startAngle,omitempty" bson:"startAngle,omitempty"`
	EndAngle   *float64 `json:"endAngle,omitempty" bson:"endAngle,omitempty"`
	Width      *float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height     *float64 `json:"height,omitempty" bson:"height,omitempty"`
	Rotation   *float64 `json:"rotation,omitempty" bson:"rotation,omitempty"`
	Area       *float64 `json:"area,omitempty" bson:"area,omitempty"`

	StartCap        *CapStyle `json:"startCap,omitempty" bson:"startCap,omitempty"`
	EndCap          *CapStyle `json:"endCap,omitempty" bson:"endCap,omitempty"`
	StartMiterAngle *float64  `json:"startMiterAngle,omitempty" bson:"startMiterAngle,omitempty"`
	EndMiterAngle   *float64  `json:"endMiterAngle,omitempty" bson:"endMiterAngle,omitempty"`

	Label *string `json:"label,omitempty" bson:"label,omitempty"`
}

// PtRef returns a pointer to a copy of p, for building updates.
func PtRef(p geom.Point) *geom.Point { return &p }

// FloatRef returns a pointer to a copy of f, for building updates.
func FloatRef(f float64) *float64 { return &f }

// CapRef returns a pointer to a copy of c, for building updates.
func CapRef(c CapStyle) *CapStyle { return &c }

// StringRef returns a pointer to a copy of s, for building updates.
func StringRef(s string) *string { return &s }

// Apply merges the update onto a clone of s and returns the clone. The
// input shape is never modified. Fields that do not exist on the shape's
// kind are ignored.
func (u Update) Apply(s Shape) Shape {
	out := s.Clone()

	switch t := out.(type) {
	case *Line:
		applyEndpoints(u, t)
	case *Wall:
		applyEndpoints(u, t)
		applyMember(u, t.Structure())
	case *Beam:
		applyEndpoints(u, t)
		applyMember(u, t.Structure())
	case *Gridline:
		applyEndpoints(u, t)
		if u.Label != nil {
			t.Label = *u.Label
		}
	case *Level:
		applyEndpoints(u, t)
		if u.Label != nil {
			t.Label = *u.Label
		}
	case *Dimension:
		if u.Start != nil {
			t.Start = *u.Start
		}
		if u.End != nil {
			t.End = *u.End
		}
		if u.TextPosition != nil {
			t.TextPosition = *u.TextPosition
		}
	case *Rectangle:
		applyBox(u, &t.TopLeft, &t.Width, &t.Height, &t.Rotation)
	case *Image:
		applyBox(u, &t.TopLeft, &t.Width, &t.Height, &t.Rotation)
	case *Circle:
		if u.Center != nil {
			t.Center = *u.Center
		}
		if u.Radius != nil {
			t.Radius = *u.Radius
		}
	case *Arc:
		if u.Center != nil {
			t.Center = *u.Center
		}
		if u.Radius != nil {
			t.Radius = *u.Radius
		}
		if u.StartAngle != nil {
			t.StartAngle = *u.StartAngle
		}
		if u.EndAngle != nil {
			t.EndAngle = *u.EndAngle
		}
	case *Ellipse:
		if u.Center != nil {
			t.Center = *u.Center
		}
		if u.RadiusX != nil {
			t.RadiusX = *u.RadiusX
		}
		if u.RadiusY != nil {
			t.RadiusY = *u.RadiusY
		}
		if u.Rotation != nil {
			t.Rotation = *u.Rotation
		}
	case *Polyline:
		if u.Points != nil {
			t.Points = slices.Clone(u.Points)
		}
	case *Spline:
		if u.Points != nil {
			t.Points = slices.Clone(u.Points)
		}
	case *Hatch:
		if u.Points != nil {
			t.Boundary = slices.Clone(u.Points)
		}
	case *Slab:
		if u.Points != nil {
			t.Outline = slices.Clone(u.Points)
		}
	case *Space:
		if u.Points != nil {
			t.ContourPoints = slices.Clone(u.Points)
		}
		if u.Area != nil {
			t.Area = *u.Area
		}
		if u.LabelPosition != nil {
			t.LabelPosition = *u.LabelPosition
		}
	case *Text:
		if u.Position != nil {
			t.Position = *u.Position
		}
		if u.Rotation != nil {
			t.Rotation = *u.Rotation
		}
	}

	return out
}

func applyEndpoints(u Update, l LineLike) {
	start, end := l.Endpoints()
	if u.Start != nil {
		start = *u.Start
	}
	if u.End != nil {
		end = *u.End
	}
	l.SetEndpoints(start, end)
}

func applyMember(u Update, m *Member) {
	if u.StartCap != nil {
		m.StartCap = *u.StartCap
	}
	if u.EndCap != nil {
		m.EndCap = *u.EndCap
	}
	if u.StartMiterAngle != nil {
		m.StartMiterAngle = *u.StartMiterAngle
	}
	if u.EndMiterAngle != nil {
		m.EndMiterAngle = *u.EndMiterAngle
	}
}

func applyBox(u Update, topLeft *geom.Point, width, height, rotation *float64) {
	if u.TopLeft != nil {
		*topLeft = *u.TopLeft
	}
	if u.Width != nil {
		*width = *u.Width
	}
	if u.Height != nil {
		*height = *u.Height
	}
	if u.Rotation != nil {
		*rotation = *u.Rotation
	}
}

// Merge combines two updates for the same shape: fields set in next win
// over fields set in base. Merging updates for different IDs is a
// programming error; the base ID is kept.
func Merge(base, next Update) Update {
	out := base
	if next.Start != nil {
		out.Start = next.Start
	}
	if next.End != nil {
		out.End = next.End
	}
	if next.Center != nil {
		out.Center = next.Center
	}
	if next.TopLeft != nil {
		out.TopLeft = next.TopLeft
	}
	if next.Position != nil {
		out.Position = next.Position
	}
	if next.TextPosition != nil {
		out.TextPosition = next.TextPosition
	}
	if next.LabelPosition != nil {
		out.LabelPosition = next.LabelPosition
	}
	if next.Points != nil {
		out.Points = next.Points
	}
	if next.Radius != nil {
		out.Radius = next.Radius
	}
	if next.RadiusX != nil {
		out.RadiusX = next.RadiusX
	}
	if next.RadiusY != nil {
		out.RadiusY = next.RadiusY
	}
	if next.StartAngle != nil {
		out.StartAngle = next.StartAngle
	}
	if next.EndAngle != nil {
		out.EndAngle = next.EndAngle
	}
	if next.Width != nil {
		out.Width = next.Width
	}
	if next.Height != nil {
		out.Height = next.Height
	}
	if next.Rotation != nil {
		out.Rotation = next.Rotation
	}
	if next.Area != nil {
		out.Area = next.Area
	}
	if next.StartCap != nil {
		out.StartCap = next.StartCap
	}
	if next.EndCap != nil {
		out.EndCap = next.EndCap
	}
	if next.StartMiterAngle != nil {
		out.StartMiterAngle = next.StartMiterAngle
	}
	if next.EndMiterAngle != nil {
		out.EndMiterAngle = next.EndMiterAngle
	}
	if next.Label != nil {
		out.Label = next.Label
	}
	return out
}

// MergeBatch folds a sequence of updates into at most one update per
// shape, preserving first-seen order. Later updates win field-wise.
func MergeBatch(updates []Update) []Update {
	index := make(map[ID]int)
	var out []Update
	for _, u := range updates {
		if i, ok := index[u.ID]; ok {
			out[i] = Merge(out[i], u)
			continue
		}
		index[u.ID] = len(out)
		out = append(out, u)
	}
	return out
}
