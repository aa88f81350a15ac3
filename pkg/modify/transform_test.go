package modify

import (
	"math"
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) <= eps }

func pointApprox(a, b geom.Point) bool { return approx(a.X, b.X) && approx(a.Y, b.Y) }

func TestTransformShapeKeepsKindAndAssignsID(t *testing.T) {
	l := &shape.Line{Common: shape.Common{ID: shape.NewID(), Layer: "axes"}, Start: geom.Pt(0, 0), End: geom.Pt(10, 0)}
	got := TransformShape(l, geom.Translate(5, 5), "")

	if got.Kind() != shape.KindLine {
		t.Errorf("kind changed to %s", got.Kind())
	}
	if got.Header().ID == l.ID || got.Header().ID == "" {
		t.Error("transform must assign a fresh identity")
	}
	if got.Header().Layer != "axes" {
		t.Error("layer association lost")
	}
	gl := got.(*shape.Line)
	if !pointApprox(gl.Start, geom.Pt(5, 5)) || !pointApprox(gl.End, geom.Pt(15, 5)) {
		t.Errorf("geometry = %v→%v", gl.Start, gl.End)
	}
	if l.Start.X != 0 {
		t.Error("input mutated")
	}
}

func TestTransformShapeExplicitID(t *testing.T) {
	c := &shape.Circle{Common: shape.Common{ID: "c1"}, Center: geom.Pt(0, 0), Radius: 5}
	got := TransformShape(c, geom.Identity(), "c2")
	if got.Header().ID != "c2" {
		t.Errorf("ID = %s, want c2", got.Header().ID)
	}
}

func TestTransformCircleUnderScale(t *testing.T) {
	c := &shape.Circle{Common: shape.Common{ID: "c"}, Center: geom.Pt(10, 0), Radius: 5}
	got := TransformShape(c, geom.Scale(geom.Pt(0, 0), 2), "").(*shape.Circle)
	if !pointApprox(got.Center, geom.Pt(20, 0)) {
		t.Errorf("center = %v", got.Center)
	}
	if !approx(got.Radius, 10) {
		t.Errorf("radius = %v, want 10 (re-derived from boundary probe)", got.Radius)
	}
}

func TestTransformArcUnderRotation(t *testing.T) {
	a := &shape.Arc{
		Common: shape.Common{ID: "a"},
		Center: geom.Pt(0, 0), Radius: 2,
		StartAngle: 0, EndAngle: math.Pi / 2,
	}
	got := TransformShape(a, geom.Rotate(geom.Pt(0, 0), math.Pi/2), "").(*shape.Arc)
	if !approx(got.Radius, 2) {
		t.Errorf("radius = %v", got.Radius)
	}
	if !approx(got.StartAngle, math.Pi/2) {
		t.Errorf("startAngle = %v, want %v", got.StartAngle, math.Pi/2)
	}
	if !approx(got.EndAngle, math.Pi) {
		t.Errorf("endAngle = %v, want %v", got.EndAngle, math.Pi)
	}
}

func TestTransformRectangleUnderRotation(t *testing.T) {
	r := &shape.Rectangle{Common: shape.Common{ID: "r"}, TopLeft: geom.Pt(0, 0), Width: 4, Height: 2}
	got := TransformShape(r, geom.Rotate(geom.Pt(0, 0), math.Pi/2), "").(*shape.Rectangle)

	if !approx(got.Width, 4) || !approx(got.Height, 2) {
		t.Errorf("extent = %v x %v, want 4 x 2", got.Width, got.Height)
	}
	if !approx(got.Rotation, math.Pi/2) {
		t.Errorf("rotation = %v, want %v", got.Rotation, math.Pi/2)
	}
}

func TestTransformRoundtripAcrossKinds(t *testing.T) {
	shapes := []shape.Shape{
		&shape.Line{Common: shape.Common{ID: "1"}, Start: geom.Pt(1, 2), End: geom.Pt(3, 4)},
		&shape.Wall{Common: shape.Common{ID: "2"}, Start: geom.Pt(0, 0), End: geom.Pt(100, 0), Member: shape.Member{Thickness: 20}},
		&shape.Rectangle{Common: shape.Common{ID: "3"}, TopLeft: geom.Pt(5, 5), Width: 7, Height: 3, Rotation: 0.4},
		&shape.Circle{Common: shape.Common{ID: "4"}, Center: geom.Pt(-2, 6), Radius: 3},
		&shape.Arc{Common: shape.Common{ID: "5"}, Center: geom.Pt(1, 1), Radius: 4, StartAngle: 0.3, EndAngle: 2.1},
		&shape.Ellipse{Common: shape.Common{ID: "6"}, Center: geom.Pt(2, 2), RadiusX: 5, RadiusY: 2, Rotation: 0.2},
		&shape.Polyline{Common: shape.Common{ID: "7"}, Points: []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0)}},
	}
	transforms := []struct {
		name    string
		forward geom.Transform
		inverse geom.Transform
	}{
		{"Translate", geom.Translate(11, -7), geom.Translate(-11, 7)},
		{"Rotate", geom.Rotate(geom.Pt(3, 3), 0.9), geom.Rotate(geom.Pt(3, 3), -0.9)},
		{"Scale", geom.Scale(geom.Pt(1, 1), 3), geom.Scale(geom.Pt(1, 1), 1.0/3)},
		{"Mirror", geom.Mirror(geom.Pt(0, 0), geom.Pt(1, 2)), geom.Mirror(geom.Pt(0, 0), geom.Pt(1, 2))},
	}

	for _, tr := range transforms {
		t.Run(tr.name, func(t *testing.T) {
			for _, s := range shapes {
				back := TransformShape(TransformShape(s, tr.forward, ""), tr.inverse, "")
				u := TransformUpdates(back, geom.Identity())
				orig := TransformUpdates(s, geom.Identity())
				if !updatesApprox(orig, u) {
					t.Errorf("%s roundtrip drifted for kind %s", tr.name, s.Kind())
				}
			}
		})
	}
}

// updatesApprox compares the geometric payload of two updates within eps.
func updatesApprox(a, b shape.Update) bool {
	pt := func(x, y *geom.Point) bool {
		if (x == nil) != (y == nil) {
			return false
		}
		return x == nil || geom.NearlyEqual(*x, *y, 1e-6)
	}
	fl := func(x, y *float64) bool {
		if (x == nil) != (y == nil) {
			return false
		}
		return x == nil || math.Abs(*x-*y) <= 1e-6
	}
	if !pt(a.Start, b.Start) || !pt(a.End, b.End) || !pt(a.Center, b.Center) || !pt(a.TopLeft, b.TopLeft) {
		return false
	}
	if !fl(a.Radius, b.Radius) || !fl(a.RadiusX, b.RadiusX) || !fl(a.RadiusY, b.RadiusY) ||
		!fl(a.Width, b.Width) || !fl(a.Height, b.Height) {
		return false
	}
	if len(a.Points) != len(b.Points) {
		return false
	}
	for i := range a.Points {
		if !geom.NearlyEqual(a.Points[i], b.Points[i], 1e-6) {
			return false
		}
	}
	return true
}

func TestTransformLevelRecomputesLabel(t *testing.T) {
	l := &shape.Level{Common: shape.Common{ID: "lv"}, Start: geom.Pt(0, 0), End: geom.Pt(1000, 0), Label: "± 0"}
	got := TransformShape(l, geom.Translate(0, -3000), "").(*shape.Level)
	if got.Label != "+ 3000" {
		t.Errorf("label = %q, want %q", got.Label, "+ 3000")
	}
}

func TestTransformSpaceRecomputesArea(t *testing.T) {
	// 2 m x 1 m room in mm units.
	s := &shape.Space{
		Common:        shape.Common{ID: "sp"},
		ContourPoints: []geom.Point{geom.Pt(0, 0), geom.Pt(2000, 0), geom.Pt(2000, 1000), geom.Pt(0, 1000)},
		Area:          2,
		LabelPosition: geom.Pt(1000, 500),
	}
	got := TransformShape(s, geom.Scale(geom.Pt(0, 0), 2), "").(*shape.Space)
	if !approx(got.Area, 8) {
		t.Errorf("area = %v m², want 8", got.Area)
	}
	if !pointApprox(got.LabelPosition, geom.Pt(2000, 1000)) {
		t.Errorf("label position = %v", got.LabelPosition)
	}
}

func TestTransformUpdatesCarriesOnlyGeometry(t *testing.T) {
	w := &shape.Wall{
		Common: shape.Common{ID: "w", Layer: "walls", Hidden: true},
		Start:  geom.Pt(0, 0), End: geom.Pt(10, 0),
		Member: shape.Member{Thickness: 200},
	}
	u := TransformUpdates(w, geom.Translate(1, 1))
	if u.ID != "w" {
		t.Errorf("ID = %s", u.ID)
	}
	if u.Start == nil || u.End == nil {
		t.Fatal("endpoints missing from update")
	}
	if u.StartCap != nil || u.Label != nil || u.Radius != nil {
		t.Error("update carries fields the transform does not touch")
	}
}
