package render

import (
	"strings"
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

func TestPlanSVGBasicShapes(t *testing.T) {
	shapes := []shape.Shape{
		&shape.Wall{
			Common: shape.Common{ID: "w1"},
			Start:  geom.Point{X: 0, Y: 0},
			End:    geom.Point{X: 4000, Y: 0},
			Member: shape.Member{Thickness: 200},
		},
		&shape.Circle{
			Common: shape.Common{ID: "c1"},
			Center: geom.Point{X: 1000, Y: 1000},
			Radius: 300,
		},
		&shape.Text{
			Common:   shape.Common{ID: "t1"},
			Position: geom.Point{X: 500, Y: 500},
			Content:  "Kitchen <north>",
		},
	}

	svg := string(PlanSVG(shapes))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg root element:\n%s", svg[:min(len(svg), 120)])
	}
	if !strings.Contains(svg, `stroke-width="200.0"`) {
		t.Error("wall thickness not rendered as stroke width")
	}
	if !strings.Contains(svg, `<circle cx="1000.00" cy="1000.00" r="300.00"`) {
		t.Error("circle not rendered")
	}
	if !strings.Contains(svg, "Kitchen &lt;north&gt;") {
		t.Error("text content not escaped")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestPlanSVGSkipsHiddenShapes(t *testing.T) {
	shapes := []shape.Shape{
		&shape.Circle{
			Common: shape.Common{ID: "c1", Hidden: true},
			Center: geom.Point{X: 0, Y: 0},
			Radius: 100,
		},
	}

	if strings.Contains(string(PlanSVG(shapes)), "<circle") {
		t.Error("hidden shape rendered without WithHidden")
	}
	if !strings.Contains(string(PlanSVG(shapes, WithHidden())), "<circle") {
		t.Error("hidden shape not rendered with WithHidden")
	}
}

func TestPlanSVGSpaceLabels(t *testing.T) {
	shapes := []shape.Shape{
		&shape.Space{
			Common: shape.Common{ID: "sp1"},
			ContourPoints: []geom.Point{
				{X: 0, Y: 0}, {X: 4000, Y: 0}, {X: 4000, Y: 3000}, {X: 0, Y: 3000},
			},
			Area:          12.0,
			LabelPosition: geom.Point{X: 2000, Y: 1500},
			Name:          "Office",
		},
	}

	plain := string(PlanSVG(shapes))
	if !strings.Contains(plain, "<polygon") {
		t.Error("space contour not rendered")
	}
	if strings.Contains(plain, "Office") {
		t.Error("label rendered without WithSpaceLabels")
	}

	labeled := string(PlanSVG(shapes, WithSpaceLabels()))
	if !strings.Contains(labeled, "Office 12.00 m²") {
		t.Errorf("space label missing:\n%s", labeled)
	}
}

func TestPlanSVGEmptyDrawing(t *testing.T) {
	svg := string(PlanSVG(nil))
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Errorf("empty drawing should still produce a valid document:\n%s", svg)
	}
}

func TestPlanSVGBackground(t *testing.T) {
	svg := string(PlanSVG(nil, WithBackground("white")))
	if !strings.Contains(svg, `fill="white"`) {
		t.Error("background rect missing")
	}
}

func TestStyleOverrides(t *testing.T) {
	shapes := []shape.Shape{
		&shape.Line{
			Common: shape.Common{ID: "l1", Style: shape.Style{Stroke: "#ff0000", Weight: 25}},
			Start:  geom.Point{X: 0, Y: 0},
			End:    geom.Point{X: 100, Y: 0},
		},
	}

	svg := string(PlanSVG(shapes))
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("stroke color override not applied")
	}
	if !strings.Contains(svg, `stroke-width="25.0"`) {
		t.Error("stroke weight override not applied")
	}
}
