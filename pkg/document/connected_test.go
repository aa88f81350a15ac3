package document

import (
	"testing"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

func wall(id string, sx, sy, ex, ey float64) *shape.Wall {
	return &shape.Wall{
		Common: shape.Common{ID: shape.ID(id)},
		Start:  geom.Pt(sx, sy),
		End:    geom.Pt(ex, ey),
		Member: shape.Member{Thickness: 200},
	}
}

func TestFindConnected(t *testing.T) {
	s := mustSnapshot(t,
		wall("a", 0, 0, 1000, 0),
		wall("b", 1000, 0, 2000, 0),
		wall("c", 2000, 0, 3000, 0),
		wall("isolated", 5000, 5000, 6000, 5000),
	)

	got := s.FindConnected("a", 0)
	want := map[shape.ID]bool{"a": true, "b": true, "c": true}
	if len(got) != len(want) {
		t.Fatalf("connected = %v, want ids a,b,c", got)
	}
	for _, id := range got {
		if !want[id] {
			t.Errorf("unexpected id %s in connected set", id)
		}
	}
	if got[0] != "a" {
		t.Errorf("start shape must lead the result, got %s", got[0])
	}
}

func TestFindConnectedTolerance(t *testing.T) {
	// Gap of 4 between endpoints: inside the default tolerance of 5.
	near := mustSnapshot(t, wall("a", 0, 0, 100, 0), wall("b", 104, 0, 200, 0))
	if got := near.FindConnected("a", 0); len(got) != 2 {
		t.Errorf("gap 4 with default tolerance: connected = %v, want 2 ids", got)
	}

	// Gap of 6: outside.
	far := mustSnapshot(t, wall("a", 0, 0, 100, 0), wall("b", 106, 0, 200, 0))
	if got := far.FindConnected("a", 0); len(got) != 1 {
		t.Errorf("gap 6 with default tolerance: connected = %v, want just the start", got)
	}

	// Wider explicit tolerance picks it back up.
	if got := far.FindConnected("a", 10); len(got) != 2 {
		t.Errorf("gap 6 with tolerance 10: connected = %v, want 2 ids", got)
	}
}

func TestFindConnectedCrossesKinds(t *testing.T) {
	// A run may chain walls, beams, and lines.
	s := mustSnapshot(t,
		wall("w", 0, 0, 1000, 0),
		&shape.Beam{Common: shape.Common{ID: "bm"}, Start: geom.Pt(1000, 0), End: geom.Pt(1000, 800)},
		line("ln", 1000, 800, 0, 800),
		&shape.Circle{Common: shape.Common{ID: "circ"}, Center: geom.Pt(1000, 0), Radius: 50},
	)

	got := s.FindConnected("w", 0)
	if len(got) != 3 {
		t.Fatalf("connected = %v, want w, bm, ln", got)
	}
	for _, id := range got {
		if id == "circ" {
			t.Error("non-line-like shape joined the run")
		}
	}
}

func TestFindConnectedBadStart(t *testing.T) {
	s := mustSnapshot(t,
		wall("w", 0, 0, 1000, 0),
		&shape.Circle{Common: shape.Common{ID: "circ"}, Center: geom.Pt(0, 0), Radius: 50},
	)
	if got := s.FindConnected("ghost", 0); got != nil {
		t.Errorf("unknown start: got %v, want nil", got)
	}
	if got := s.FindConnected("circ", 0); got != nil {
		t.Errorf("non-line-like start: got %v, want nil", got)
	}
}
