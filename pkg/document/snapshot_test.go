package document

import (
	"testing"

	"github.com/draftwise/draftcore/pkg/errors"
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

func line(id string, sx, sy, ex, ey float64) *shape.Line {
	return &shape.Line{Common: shape.Common{ID: shape.ID(id)}, Start: geom.Pt(sx, sy), End: geom.Pt(ex, ey)}
}

func mustSnapshot(t *testing.T, shapes ...shape.Shape) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(shapes)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return s
}

func TestNewSnapshot(t *testing.T) {
	s := mustSnapshot(t, line("a", 0, 0, 1, 0), line("b", 1, 0, 2, 0))
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if _, ok := s.Get("a"); !ok {
		t.Error("shape a not found")
	}
	if _, ok := s.Get("ghost"); ok {
		t.Error("unknown id resolved")
	}
}

func TestNewSnapshotRejectsDuplicates(t *testing.T) {
	_, err := NewSnapshot([]shape.Shape{line("a", 0, 0, 1, 0), line("a", 5, 5, 6, 5)})
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("err = %v, want INVALID_SHAPE", err)
	}
}

func TestNewSnapshotRejectsMissingID(t *testing.T) {
	_, err := NewSnapshot([]shape.Shape{&shape.Line{}})
	if !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("err = %v, want INVALID_SHAPE", err)
	}
}

func TestApplyUpdates(t *testing.T) {
	s := mustSnapshot(t, line("a", 0, 0, 10, 0), line("b", 0, 5, 10, 5))

	next, err := s.ApplyUpdates([]shape.Update{
		{ID: "a", End: shape.PtRef(geom.Pt(20, 0))},
	})
	if err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}

	got, _ := next.Get("a")
	if got.(*shape.Line).End.X != 20 {
		t.Errorf("a.end.x = %v, want 20", got.(*shape.Line).End.X)
	}

	// Receiver untouched; unmodified shapes shared.
	orig, _ := s.Get("a")
	if orig.(*shape.Line).End.X != 10 {
		t.Error("snapshot mutated in place")
	}
	sb, _ := s.Get("b")
	nb, _ := next.Get("b")
	if sb != nb {
		t.Error("untouched shape not shared between snapshots")
	}
}

func TestApplyUpdatesAtomic(t *testing.T) {
	s := mustSnapshot(t, line("a", 0, 0, 10, 0))

	_, err := s.ApplyUpdates([]shape.Update{
		{ID: "a", End: shape.PtRef(geom.Pt(20, 0))},
		{ID: "ghost", End: shape.PtRef(geom.Pt(1, 1))},
	})
	if !errors.Is(err, errors.ErrCodeShapeNotFound) {
		t.Fatalf("err = %v, want SHAPE_NOT_FOUND", err)
	}

	got, _ := s.Get("a")
	if got.(*shape.Line).End.X != 10 {
		t.Error("partial batch applied")
	}
}

func TestApplyUpdatesMergesSameTarget(t *testing.T) {
	s := mustSnapshot(t, line("a", 0, 0, 10, 0))
	next, err := s.ApplyUpdates([]shape.Update{
		{ID: "a", Start: shape.PtRef(geom.Pt(-5, 0))},
		{ID: "a", End: shape.PtRef(geom.Pt(20, 0))},
	})
	if err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}
	got, _ := next.Get("a")
	l := got.(*shape.Line)
	if l.Start.X != -5 || l.End.X != 20 {
		t.Errorf("merged apply = %v→%v", l.Start, l.End)
	}
}

func TestInsertAndRemove(t *testing.T) {
	s := mustSnapshot(t, line("a", 0, 0, 1, 0))

	s2, err := s.Insert(line("b", 1, 0, 2, 0))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if s2.Len() != 2 || s.Len() != 1 {
		t.Error("insert must not mutate the receiver")
	}

	if _, err := s2.Insert(line("a", 9, 9, 9, 10)); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("duplicate insert err = %v", err)
	}

	s3, err := s2.Remove("a")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := s3.Get("a"); ok {
		t.Error("removed shape still present")
	}
	if got, ok := s3.Get("b"); !ok || got.Header().ID != "b" {
		t.Error("remaining shape lost or reindexed wrong")
	}

	if _, err := s3.Remove("ghost"); !errors.Is(err, errors.ErrCodeShapeNotFound) {
		t.Errorf("remove unknown err = %v", err)
	}
}
