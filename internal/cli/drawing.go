package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/draftwise/draftcore/pkg/document"
	"github.com/draftwise/draftcore/pkg/geom"
	dio "github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/shape"
)

// loadDrawing reads a drawing file and wraps it in a snapshot for editing.
func loadDrawing(path string) (*dio.Drawing, *document.Snapshot, error) {
	d, err := dio.ImportDrawing(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load drawing %s: %w", path, err)
	}
	snap, err := document.NewSnapshot(d.Shapes)
	if err != nil {
		return nil, nil, fmt.Errorf("load drawing %s: %w", path, err)
	}
	return d, snap, nil
}

// saveDrawing writes the edited snapshot back to disk. An empty output
// path overwrites the input file.
func saveDrawing(d *dio.Drawing, snap *document.Snapshot, input, output string) error {
	d.Shapes = snap.Shapes()
	path := output
	if path == "" {
		path = input
	}
	if err := dio.ExportDrawing(d, path); err != nil {
		return fmt.Errorf("save drawing %s: %w", path, err)
	}
	printFile(path)
	return nil
}

// parsePoint parses an "x,y" coordinate pair in millimeters.
func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("invalid point %q (expected x,y)", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return geom.Point{X: x, Y: y}, nil
}

// parseIDs parses a comma-separated shape ID list.
func parseIDs(s string) []shape.ID {
	var ids []shape.ID
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, shape.ID(part))
		}
	}
	return ids
}

// lineLikeByID looks up a shape and asserts it has straight endpoints.
func lineLikeByID(snap *document.Snapshot, id string) (shape.LineLike, error) {
	s, ok := snap.Get(shape.ID(id))
	if !ok {
		return nil, fmt.Errorf("shape %s not found", id)
	}
	l, ok := s.(shape.LineLike)
	if !ok {
		return nil, fmt.Errorf("shape %s is a %s, which has no endpoints", id, s.Kind())
	}
	return l, nil
}

// structuralByID looks up a shape and asserts it is a wall or beam.
func structuralByID(snap *document.Snapshot, id string) (shape.Structural, error) {
	s, ok := snap.Get(shape.ID(id))
	if !ok {
		return nil, fmt.Errorf("shape %s not found", id)
	}
	m, ok := s.(shape.Structural)
	if !ok {
		return nil, fmt.Errorf("shape %s is a %s, not a structural member", id, s.Kind())
	}
	return m, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout for "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
