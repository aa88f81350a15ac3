package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// planMargin is the whitespace around the drawing extents, in document
// units (millimeters).
const planMargin = 250.0

type PlanOption func(*planRenderer)

type planRenderer struct {
	showHidden  bool
	spaceLabels bool
	background  string
}

// WithHidden includes hidden shapes in the output.
func WithHidden() PlanOption { return func(r *planRenderer) { r.showHidden = true } }

// WithSpaceLabels draws name and area labels at space label positions.
func WithSpaceLabels() PlanOption { return func(r *planRenderer) { r.spaceLabels = true } }

// WithBackground sets the SVG background color. Default is transparent.
func WithBackground(color string) PlanOption {
	return func(r *planRenderer) { r.background = color }
}

// PlanSVG renders shapes as a 2D plan in SVG. The viewBox is fitted to
// the drawing extents plus a margin; coordinates stay in document units
// (millimeters) so the output scales losslessly.
func PlanSVG(shapes []shape.Shape, opts ...PlanOption) []byte {
	r := planRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	visible := make([]shape.Shape, 0, len(shapes))
	for _, s := range shapes {
		if s.Header().Hidden && !r.showHidden {
			continue
		}
		visible = append(visible, s)
	}

	minX, minY, maxX, maxY := extents(visible)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f">`+"\n",
		minX-planMargin, minY-planMargin, maxX-minX+2*planMargin, maxY-minY+2*planMargin)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill=%q/>`+"\n",
			minX-planMargin, minY-planMargin, maxX-minX+2*planMargin, maxY-minY+2*planMargin, r.background)
	}

	// Spaces first so walls and annotations draw on top of the fills.
	for _, s := range visible {
		if sp, ok := s.(*shape.Space); ok {
			r.renderSpace(&buf, sp)
		}
	}
	for _, s := range visible {
		if _, ok := s.(*shape.Space); ok {
			continue
		}
		r.renderShape(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *planRenderer) renderShape(buf *bytes.Buffer, s shape.Shape) {
	stroke := strokeColor(s)
	weight := strokeWeight(s)

	switch v := s.(type) {
	case *shape.Line:
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f"/>`+"\n",
			v.Start.X, v.Start.Y, v.End.X, v.End.Y, stroke, weight)
	case *shape.Wall:
		renderMember(buf, v.Start, v.End, &v.Member, stroke)
	case *shape.Beam:
		renderMember(buf, v.Start, v.End, &v.Member, stroke)
	case *shape.Gridline:
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f" stroke-dasharray="400 100 100 100"/>`+"\n",
			v.Start.X, v.Start.Y, v.End.X, v.End.Y, stroke, weight)
		if v.Label != "" {
			renderLabel(buf, v.Start, v.Label, 250)
		}
	case *shape.Level:
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f"/>`+"\n",
			v.Start.X, v.Start.Y, v.End.X, v.End.Y, stroke, weight)
		renderLabel(buf, v.Start.Add(geom.Pt(0, -100)), shape.FormatElevation(v.Elevation()), 250)
	case *shape.Rectangle:
		c := v.Corners()
		renderPolygon(buf, c[:], stroke, weight, "none")
	case *shape.Circle:
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" stroke=%q stroke-width="%.1f" fill="none"/>`+"\n",
			v.Center.X, v.Center.Y, v.Radius, stroke, weight)
	case *shape.Arc:
		renderArcPath(buf, v, stroke, weight)
	case *shape.Ellipse:
		fmt.Fprintf(buf, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" transform="rotate(%.2f %.2f %.2f)" stroke=%q stroke-width="%.1f" fill="none"/>`+"\n",
			v.Center.X, v.Center.Y, v.RadiusX, v.RadiusY, v.Rotation*180/math.Pi, v.Center.X, v.Center.Y, stroke, weight)
	case *shape.Polyline:
		if v.Closed {
			renderPolygon(buf, v.Points, stroke, weight, "none")
		} else {
			renderPolyline(buf, v.Points, stroke, weight)
		}
	case *shape.Spline:
		renderPolyline(buf, v.Points, stroke, weight)
	case *shape.Text:
		renderText(buf, v)
	case *shape.Hatch:
		renderPolygon(buf, v.Boundary, stroke, weight, "#e0e0e0")
	case *shape.Slab:
		renderPolygon(buf, v.Outline, stroke, weight, "#f0f0f0")
	case *shape.Image:
		c := v.Corners()
		renderPolygon(buf, c[:], stroke, weight, "none")
	case *shape.Dimension:
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f"/>`+"\n",
			v.Start.X, v.Start.Y, v.End.X, v.End.Y, stroke, weight)
		renderLabel(buf, v.TextPosition, fmt.Sprintf("%.0f", v.Start.DistTo(v.End)), 200)
	}
}

func (r *planRenderer) renderSpace(buf *bytes.Buffer, sp *shape.Space) {
	renderPolygon(buf, sp.ContourPoints, "none", 0, "#d6e9f8")
	if !r.spaceLabels {
		return
	}
	label := fmt.Sprintf("%.2f m²", sp.Area)
	if sp.Name != "" {
		label = sp.Name + " " + label
	}
	renderLabel(buf, sp.LabelPosition, label, 250)
}

// renderMember draws a wall or beam centerline with its thickness as
// stroke width. Curved members follow the bulge arc.
func renderMember(buf *bytes.Buffer, start, end geom.Point, m *shape.Member, stroke string) {
	width := m.Thickness
	if width <= 0 {
		width = 1
	}
	if m.Bulge == 0 {
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.1f" stroke-linecap="butt"/>`+"\n",
			start.X, start.Y, end.X, end.Y, stroke, width)
		return
	}

	// Bulge arc: sweep angle 4*atan(bulge), radius from the chord.
	theta := 4 * math.Atan(m.Bulge)
	chord := start.DistTo(end)
	radius := math.Abs(chord / (2 * math.Sin(theta/2)))
	largeArc := 0
	if math.Abs(theta) > math.Pi {
		largeArc = 1
	}
	sweep := 0
	if m.Bulge < 0 {
		sweep = 1
	}
	fmt.Fprintf(buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 %d %d %.2f %.2f" stroke=%q stroke-width="%.1f" fill="none"/>`+"\n",
		start.X, start.Y, radius, radius, largeArc, sweep, end.X, end.Y, stroke, width)
}

func renderArcPath(buf *bytes.Buffer, a *shape.Arc, stroke string, weight float64) {
	start := a.StartPoint()
	end := a.EndPoint()
	sweepAngle := math.Mod(a.EndAngle-a.StartAngle+4*math.Pi, 2*math.Pi)
	largeArc := 0
	if sweepAngle > math.Pi {
		largeArc = 1
	}
	fmt.Fprintf(buf, `  <path d="M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f" stroke=%q stroke-width="%.1f" fill="none"/>`+"\n",
		start.X, start.Y, a.Radius, a.Radius, largeArc, end.X, end.Y, stroke, weight)
}

func renderPolyline(buf *bytes.Buffer, pts []geom.Point, stroke string, weight float64) {
	if len(pts) < 2 {
		return
	}
	fmt.Fprintf(buf, `  <polyline points="%s" stroke=%q stroke-width="%.1f" fill="none"/>`+"\n",
		pointList(pts), stroke, weight)
}

func renderPolygon(buf *bytes.Buffer, pts []geom.Point, stroke string, weight float64, fill string) {
	if len(pts) < 3 {
		return
	}
	fmt.Fprintf(buf, `  <polygon points="%s" stroke=%q stroke-width="%.1f" fill=%q/>`+"\n",
		pointList(pts), stroke, weight, fill)
}

func renderText(buf *bytes.Buffer, t *shape.Text) {
	height := t.Height
	if height <= 0 {
		height = 250
	}
	if t.Rotation != 0 {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.0f" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
			t.Position.X, t.Position.Y, height, t.Rotation*180/math.Pi, t.Position.X, t.Position.Y, escapeText(t.Content))
		return
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.0f">%s</text>`+"\n",
		t.Position.X, t.Position.Y, height, escapeText(t.Content))
}

func renderLabel(buf *bytes.Buffer, at geom.Point, content string, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-size="%.0f" text-anchor="middle">%s</text>`+"\n",
		at.X, at.Y, size, escapeText(content))
}

func pointList(pts []geom.Point) string {
	var buf bytes.Buffer
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.2f,%.2f", p.X, p.Y)
	}
	return buf.String()
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '&':
			buf.WriteString("&amp;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func strokeColor(s shape.Shape) string {
	if c := s.Header().Style.Stroke; c != "" {
		return c
	}
	return "black"
}

func strokeWeight(s shape.Shape) float64 {
	if w := s.Header().Style.Weight; w > 0 {
		return w
	}
	return 10
}

// extents computes the bounding box of all shape geometry. An empty
// input yields a unit box at the origin.
func extents(shapes []shape.Shape) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(pts ...geom.Point) {
		for _, p := range pts {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	for _, s := range shapes {
		switch v := s.(type) {
		case *shape.Circle:
			grow(v.Center.Add(geom.Pt(-v.Radius, -v.Radius)), v.Center.Add(geom.Pt(v.Radius, v.Radius)))
		case *shape.Arc:
			grow(v.Center.Add(geom.Pt(-v.Radius, -v.Radius)), v.Center.Add(geom.Pt(v.Radius, v.Radius)))
		case *shape.Ellipse:
			r := math.Max(v.RadiusX, v.RadiusY)
			grow(v.Center.Add(geom.Pt(-r, -r)), v.Center.Add(geom.Pt(r, r)))
		case *shape.Rectangle:
			c := v.Corners()
			grow(c[:]...)
		case *shape.Image:
			c := v.Corners()
			grow(c[:]...)
		case *shape.Polyline:
			grow(v.Points...)
		case *shape.Spline:
			grow(v.Points...)
		case *shape.Hatch:
			grow(v.Boundary...)
		case *shape.Slab:
			grow(v.Outline...)
		case *shape.Space:
			grow(v.ContourPoints...)
		case *shape.Text:
			grow(v.Position)
		case *shape.Dimension:
			grow(v.Start, v.End, v.TextPosition)
		case shape.LineLike:
			a, b := v.Endpoints()
			grow(a, b)
		}
	}

	if minX > maxX {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}
