package document

import (
	"github.com/draftwise/draftcore/pkg/errors"
	"github.com/draftwise/draftcore/pkg/shape"
)

// Snapshot is an immutable, ordered view of all shapes in a drawing.
// The zero value is an empty snapshot.
type Snapshot struct {
	shapes []shape.Shape
	index  map[shape.ID]int
}

// NewSnapshot builds a snapshot over the given shapes. Order is
// preserved. Nil entries, empty identities, and duplicate identities are
// rejected.
func NewSnapshot(in []shape.Shape) (*Snapshot, error) {
	s := &Snapshot{
		shapes: make([]shape.Shape, 0, len(in)),
		index:  make(map[shape.ID]int, len(in)),
	}
	for _, sh := range in {
		if sh == nil {
			return nil, errors.New(errors.ErrCodeInvalidShape, "nil shape in snapshot")
		}
		id := sh.Header().ID
		if id == "" {
			return nil, errors.New(errors.ErrCodeInvalidShape, "shape of kind %s has no id", sh.Kind())
		}
		if _, dup := s.index[id]; dup {
			return nil, errors.New(errors.ErrCodeInvalidShape, "duplicate shape id %s", id)
		}
		s.index[id] = len(s.shapes)
		s.shapes = append(s.shapes, sh)
	}
	return s, nil
}

// Len returns the number of shapes in the snapshot.
func (s *Snapshot) Len() int { return len(s.shapes) }

// Get returns the shape with the given id.
func (s *Snapshot) Get(id shape.ID) (shape.Shape, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.shapes[i], true
}

// Shapes returns the shapes in snapshot order. The slice is a copy; the
// shapes themselves are shared and must be treated as read-only.
func (s *Snapshot) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// ApplyUpdates applies a batch of partial updates and returns the
// resulting snapshot. The batch is atomic: if any update names an
// unknown shape, no update is applied. Shapes the batch does not touch
// are shared with the receiver.
func (s *Snapshot) ApplyUpdates(batch []shape.Update) (*Snapshot, error) {
	for _, u := range batch {
		if _, ok := s.index[u.ID]; !ok {
			return nil, errors.New(errors.ErrCodeShapeNotFound, "update targets unknown shape %s", u.ID)
		}
	}

	next := &Snapshot{
		shapes: make([]shape.Shape, len(s.shapes)),
		index:  s.index,
	}
	copy(next.shapes, s.shapes)
	for _, u := range shape.MergeBatch(batch) {
		i := s.index[u.ID]
		next.shapes[i] = u.Apply(next.shapes[i])
	}
	return next, nil
}

// Insert returns a snapshot with sh appended.
func (s *Snapshot) Insert(sh shape.Shape) (*Snapshot, error) {
	if sh == nil {
		return nil, errors.New(errors.ErrCodeInvalidShape, "nil shape")
	}
	id := sh.Header().ID
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidShape, "shape of kind %s has no id", sh.Kind())
	}
	if _, dup := s.index[id]; dup {
		return nil, errors.New(errors.ErrCodeInvalidShape, "duplicate shape id %s", id)
	}

	next := &Snapshot{
		shapes: make([]shape.Shape, len(s.shapes), len(s.shapes)+1),
		index:  make(map[shape.ID]int, len(s.index)+1),
	}
	copy(next.shapes, s.shapes)
	for k, v := range s.index {
		next.index[k] = v
	}
	next.index[id] = len(next.shapes)
	next.shapes = append(next.shapes, sh)
	return next, nil
}

// Remove returns a snapshot without the named shape.
func (s *Snapshot) Remove(id shape.ID) (*Snapshot, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeShapeNotFound, "unknown shape %s", id)
	}

	next := &Snapshot{
		shapes: make([]shape.Shape, 0, len(s.shapes)-1),
		index:  make(map[shape.ID]int, len(s.index)-1),
	}
	for j, sh := range s.shapes {
		if j == i {
			continue
		}
		next.index[sh.Header().ID] = len(next.shapes)
		next.shapes = append(next.shapes, sh)
	}
	return next, nil
}
