package document

import (
	"math"
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

func TestReconcileMiterAndSpaces(t *testing.T) {
	// A 4 m by 3 m room of 200 mm walls with a space label at its
	// center. The east wall has been dragged 100 mm outward; reconcile
	// must re-resolve the mitered corners and regrow the space.
	south := wall("south", 0, 0, 4000, 0)
	south.EndCap = shape.CapMiter
	east := wall("east", 4100, 0, 4100, 3000)
	east.StartCap = shape.CapMiter
	east.EndCap = shape.CapMiter
	north := wall("north", 4000, 3000, 0, 3000)
	north.StartCap = shape.CapMiter
	west := wall("west", 0, 3000, 0, 0)

	sp := &shape.Space{
		Common:        shape.Common{ID: "room"},
		LabelPosition: geom.Pt(2000, 1500),
		Area:          10.64,
	}

	snap := mustSnapshot(t, south, east, north, west, sp)
	batch := Reconcile(snap, []shape.ID{"east"}, 200)

	byID := make(map[shape.ID]shape.Update)
	for _, u := range batch {
		byID[u.ID] = u
	}

	// South's mitered end follows the moved wall's centerline.
	us, ok := byID["south"]
	if !ok {
		t.Fatal("no update for south")
	}
	if us.End == nil || us.End.DistTo(geom.Pt(4100, 0)) > 1e-9 {
		t.Errorf("south.end = %+v, want (4100,0)", us.End)
	}

	un, ok := byID["north"]
	if !ok {
		t.Fatal("no update for north")
	}
	if un.Start == nil || un.Start.DistTo(geom.Pt(4100, 3000)) > 1e-9 {
		t.Errorf("north.start = %+v, want (4100,3000)", un.Start)
	}

	// The room regrows: inner faces now span 100..4000 by 100..2900.
	ur, ok := byID["room"]
	if !ok {
		t.Fatal("no update for room")
	}
	wantArea := 3900.0 * 2800.0 / 1e6
	if ur.Area == nil || math.Abs(*ur.Area-wantArea) > 1e-9 {
		t.Errorf("room area = %+v, want %v", ur.Area, wantArea)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	// A consistent corner: reconciling emits updates that reproduce the
	// existing geometry.
	a := wall("a", 0, 0, 1000, 0)
	a.EndCap = shape.CapMiter
	b := wall("b", 1000, 0, 1000, 1000)
	b.StartCap = shape.CapMiter

	snap := mustSnapshot(t, a, b)
	batch := Reconcile(snap, []shape.ID{"a"}, 0)

	next, err := snap.ApplyUpdates(batch)
	if err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}
	ga, _ := next.Get("a")
	if ga.(*shape.Wall).End.DistTo(geom.Pt(1000, 0)) > 1e-9 {
		t.Errorf("a.end drifted to %v", ga.(*shape.Wall).End)
	}
}

func TestReconcileIgnoresNonStructuralChanges(t *testing.T) {
	snap := mustSnapshot(t,
		&shape.Circle{Common: shape.Common{ID: "c"}, Center: geom.Pt(0, 0), Radius: 10},
	)
	if batch := Reconcile(snap, []shape.ID{"c"}, 0); len(batch) != 0 {
		t.Errorf("batch = %v, want empty", batch)
	}
}
