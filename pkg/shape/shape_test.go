package shape

import (
	"math"
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
)

func TestNewIDUnique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestCloneIndependence(t *testing.T) {
	w := &Wall{
		Common: Common{ID: NewID(), Layer: "walls"},
		Start:  geom.Pt(0, 0),
		End:    geom.Pt(1000, 0),
		Member: Member{Thickness: 200, Justification: JustifyCenter},
	}
	c := w.Clone().(*Wall)
	c.Start = geom.Pt(5, 5)
	c.Thickness = 300
	if w.Start.X != 0 || w.Thickness != 200 {
		t.Error("clone mutation leaked into original")
	}
	if c.ID != w.ID {
		t.Error("Clone must keep identity; copies assign a new ID explicitly")
	}
}

func TestCloneDeepCopiesPoints(t *testing.T) {
	p := &Polyline{
		Common: Common{ID: NewID()},
		Points: []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)},
	}
	c := p.Clone().(*Polyline)
	c.Points[0] = geom.Pt(9, 9)
	if p.Points[0].X != 0 {
		t.Error("clone shares the points slice with the original")
	}
}

func TestLevelElevation(t *testing.T) {
	tests := []struct {
		name      string
		y         float64
		wantElev  int
		wantLabel string
	}{
		{"Zero", 0, 0, "± 0"},
		{"AboveGround", -3000, 3000, "+ 3000"},
		{"BelowGround", 2500, -2500, "- 2500"},
		{"Rounded", -2999.6, 3000, "+ 3000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Level{Start: geom.Pt(0, tt.y), End: geom.Pt(1000, tt.y)}
			if got := l.Elevation(); got != tt.wantElev {
				t.Errorf("Elevation = %d, want %d", got, tt.wantElev)
			}
			if got := FormatElevation(l.Elevation()); got != tt.wantLabel {
				t.Errorf("label = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestRectangleCorners(t *testing.T) {
	r := &Rectangle{TopLeft: geom.Pt(1, 1), Width: 4, Height: 2}
	c := r.Corners()
	want := [4]geom.Point{geom.Pt(1, 1), geom.Pt(5, 1), geom.Pt(5, 3), geom.Pt(1, 3)}
	for i := range c {
		if !geom.NearlyEqual(c[i], want[i], 1e-9) {
			t.Errorf("corner %d = %v, want %v", i, c[i], want[i])
		}
	}

	// Quarter turn moves the first edge onto the +Y axis.
	r.Rotation = math.Pi / 2
	c = r.Corners()
	if !geom.NearlyEqual(c[1], geom.Pt(1, 5), 1e-9) {
		t.Errorf("rotated corner 1 = %v, want (1,5)", c[1])
	}
}

func TestUpdateApply(t *testing.T) {
	l := &Line{Common: Common{ID: "l1"}, Start: geom.Pt(0, 0), End: geom.Pt(10, 0)}
	u := Update{ID: "l1", End: PtRef(geom.Pt(5, 0))}

	got := u.Apply(l).(*Line)
	if got.End.X != 5 {
		t.Errorf("applied End.X = %v, want 5", got.End.X)
	}
	if l.End.X != 10 {
		t.Error("Apply mutated the input shape")
	}
	if got.Start.X != 0 {
		t.Error("unset field changed")
	}
}

func TestUpdateApplyMemberFields(t *testing.T) {
	w := &Wall{Common: Common{ID: "w1"}, Start: geom.Pt(0, 0), End: geom.Pt(10, 0)}
	u := Update{
		ID:              "w1",
		Start:           PtRef(geom.Pt(1, 1)),
		StartCap:        CapRef(CapMiter),
		StartMiterAngle: FloatRef(math.Pi / 4),
	}
	got := u.Apply(w).(*Wall)
	if got.StartCap != CapMiter || got.StartMiterAngle != math.Pi/4 {
		t.Errorf("member fields not applied: %+v", got.Member)
	}
	if got.Start != geom.Pt(1, 1) {
		t.Errorf("Start = %v", got.Start)
	}
}

func TestMerge(t *testing.T) {
	base := Update{ID: "x", Start: PtRef(geom.Pt(1, 1)), End: PtRef(geom.Pt(2, 2))}
	next := Update{ID: "x", End: PtRef(geom.Pt(9, 9)), Radius: FloatRef(3)}
	got := Merge(base, next)
	if got.Start.X != 1 {
		t.Error("base-only field lost")
	}
	if got.End.X != 9 {
		t.Error("next field did not win")
	}
	if got.Radius == nil || *got.Radius != 3 {
		t.Error("next-only field lost")
	}
}

func TestMergeBatch(t *testing.T) {
	batch := []Update{
		{ID: "a", Start: PtRef(geom.Pt(1, 0))},
		{ID: "b", End: PtRef(geom.Pt(0, 1))},
		{ID: "a", End: PtRef(geom.Pt(2, 0))},
	}
	got := MergeBatch(batch)
	if len(got) != 2 {
		t.Fatalf("merged length = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[0].Start == nil || got[0].End == nil {
		t.Errorf("merged a = %+v", got[0])
	}
	if got[1].ID != "b" {
		t.Errorf("order not preserved: %+v", got[1])
	}
}
