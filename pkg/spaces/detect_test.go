package spaces

import (
	"math"
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

func wall(id string, sx, sy, ex, ey, thickness float64) *shape.Wall {
	return &shape.Wall{
		Common: shape.Common{ID: shape.ID(id)},
		Start:  geom.Pt(sx, sy),
		End:    geom.Pt(ex, ey),
		Member: shape.Member{Thickness: thickness},
	}
}

// room returns four 200 mm walls whose centerlines form a 4 m by 3 m
// rectangle. The enclosed interior is 3800 x 2800 mm.
func room() []shape.Shape {
	return []shape.Shape{
		wall("south", 0, 0, 4000, 0, 200),
		wall("east", 4000, 0, 4000, 3000, 200),
		wall("north", 4000, 3000, 0, 3000, 200),
		wall("west", 0, 3000, 0, 0, 200),
	}
}

func TestDetectRectangularRoom(t *testing.T) {
	c, ok := Detect(room(), geom.Pt(2000, 1500))
	if !ok {
		t.Fatal("no contour detected")
	}

	if math.Abs(c.Area-10.64) > 1e-9 {
		t.Errorf("area = %v m², want 10.64", c.Area)
	}
	if len(c.Points) != 4 {
		t.Fatalf("contour has %d points, want 4", len(c.Points))
	}

	want := []geom.Point{
		geom.Pt(100, 100), geom.Pt(3900, 100),
		geom.Pt(3900, 2900), geom.Pt(100, 2900),
	}
	for _, w := range want {
		found := false
		for _, p := range c.Points {
			if p.DistSqTo(w) < 1e-12 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("inner corner %v missing from contour %v", w, c.Points)
		}
	}

	if c.Centroid.DistTo(geom.Pt(2000, 1500)) > 1e-9 {
		t.Errorf("centroid = %v, want room center", c.Centroid)
	}
}

func TestDetectProbeOutsideBuilding(t *testing.T) {
	shapes := room()
	for _, probe := range []geom.Point{
		geom.Pt(-500, 1500),  // west of the building
		geom.Pt(10000, 1500), // east, ray hits nothing
	} {
		if _, ok := Detect(shapes, probe); ok {
			t.Errorf("probe %v outside the room produced a contour", probe)
		}
	}
}

func TestDetectOpenWallNetwork(t *testing.T) {
	// Three walls of the rectangle: the face never closes.
	shapes := room()[:3]
	if _, ok := Detect(shapes, geom.Pt(2000, 1500)); ok {
		t.Error("open network produced a contour")
	}
}

func TestDetectRejectsUndersizedFace(t *testing.T) {
	// 2 mm walls on a 10 mm square centerline leave an 8 x 8 mm
	// interior, below the minimum area.
	shapes := []shape.Shape{
		wall("s", 0, 0, 10, 0, 2),
		wall("e", 10, 0, 10, 10, 2),
		wall("n", 10, 10, 0, 10, 2),
		wall("w", 0, 10, 0, 0, 2),
	}
	if _, ok := Detect(shapes, geom.Pt(5, 5)); ok {
		t.Error("undersized face accepted")
	}
}

func TestDetectSkipsCurvedAndHiddenWalls(t *testing.T) {
	shapes := room()
	curved := wall("curved", 500, 500, 1500, 500, 100)
	curved.Bulge = 1
	hidden := wall("hidden", 500, 500, 500, 2500, 100)
	hidden.Hidden = true
	shapes = append(shapes, curved, hidden)

	c, ok := Detect(shapes, geom.Pt(2000, 1500))
	if !ok {
		t.Fatal("no contour detected")
	}
	if math.Abs(c.Area-10.64) > 1e-9 {
		t.Errorf("area = %v m², curved/hidden walls must not subdivide the room", c.Area)
	}
}

func TestDetectPartitionedRoom(t *testing.T) {
	// A full-height partition down the middle splits the room; the
	// probe's half is detected, not the whole.
	shapes := append(room(), wall("mid", 2000, 0, 2000, 3000, 200))

	c, ok := Detect(shapes, geom.Pt(1000, 1500))
	if !ok {
		t.Fatal("no contour detected")
	}
	// West half: 100..1900 by 100..2900 = 1800 x 2800 mm.
	if math.Abs(c.Area-5.04) > 1e-9 {
		t.Errorf("area = %v m², want 5.04", c.Area)
	}
}

func TestDetectNoWalls(t *testing.T) {
	if _, ok := Detect(nil, geom.Pt(0, 0)); ok {
		t.Error("contour detected in empty drawing")
	}
}

func TestRecontour(t *testing.T) {
	sp := &shape.Space{
		Common:        shape.Common{ID: "sp"},
		LabelPosition: geom.Pt(2000, 1500),
		Area:          1,
	}
	u, ok := Recontour(sp, room())
	if !ok {
		t.Fatal("recontour failed")
	}
	if u.ID != "sp" {
		t.Errorf("update targets %s", u.ID)
	}
	if u.Area == nil || math.Abs(*u.Area-10.64) > 1e-9 {
		t.Errorf("area = %+v, want 10.64", u.Area)
	}
	if len(u.Points) != 4 {
		t.Errorf("contour has %d points", len(u.Points))
	}
	if u.LabelPosition == nil || u.LabelPosition.DistTo(geom.Pt(2000, 1500)) > 1e-9 {
		t.Errorf("label position = %+v, want centroid", u.LabelPosition)
	}
}

func TestRecontourLabelOutsideAnyRoom(t *testing.T) {
	sp := &shape.Space{Common: shape.Common{ID: "sp"}, LabelPosition: geom.Pt(-999, -999)}
	if _, ok := Recontour(sp, room()); ok {
		t.Error("recontour succeeded with the label outside every room")
	}
}
