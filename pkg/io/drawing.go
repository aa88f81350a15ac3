package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/draftwise/draftcore/pkg/errors"
	"github.com/draftwise/draftcore/pkg/shape"
)

// Drawing is the serialized unit: a named, ordered list of shapes.
type Drawing struct {
	Name   string        `json:"name"`
	Shapes []shape.Shape `json:"-"`
}

// envelope is the on-disk form of a Drawing.
type envelope struct {
	Name   string            `json:"name"`
	Shapes []json.RawMessage `json:"shapes"`
}

// kindHeader peeks the discriminant of one serialized shape.
type kindHeader struct {
	Kind shape.Kind `json:"kind"`
}

// NewShape allocates the concrete shape for a kind discriminant.
// Storage backends use it to decode kind-tagged shape records.
func NewShape(k shape.Kind) (shape.Shape, bool) {
	switch k {
	case shape.KindLine:
		return &shape.Line{}, true
	case shape.KindWall:
		return &shape.Wall{}, true
	case shape.KindBeam:
		return &shape.Beam{}, true
	case shape.KindGridline:
		return &shape.Gridline{}, true
	case shape.KindLevel:
		return &shape.Level{}, true
	case shape.KindRectangle:
		return &shape.Rectangle{}, true
	case shape.KindCircle:
		return &shape.Circle{}, true
	case shape.KindArc:
		return &shape.Arc{}, true
	case shape.KindEllipse:
		return &shape.Ellipse{}, true
	case shape.KindPolyline:
		return &shape.Polyline{}, true
	case shape.KindSpline:
		return &shape.Spline{}, true
	case shape.KindText:
		return &shape.Text{}, true
	case shape.KindHatch:
		return &shape.Hatch{}, true
	case shape.KindSlab:
		return &shape.Slab{}, true
	case shape.KindSpace:
		return &shape.Space{}, true
	case shape.KindImage:
		return &shape.Image{}, true
	case shape.KindDimension:
		return &shape.Dimension{}, true
	default:
		return nil, false
	}
}

// ReadDrawing decodes a JSON drawing from r.
//
// Each shape must carry a "kind" field naming a known shape kind and a
// non-empty "id". ReadDrawing returns an error if the JSON is malformed,
// a kind is unknown, or an id is missing or invalid. The returned
// drawing is independent of r; ReadDrawing does not close r.
func ReadDrawing(r io.Reader) (*Drawing, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDrawing, err, "decode drawing")
	}

	d := &Drawing{
		Name:   env.Name,
		Shapes: make([]shape.Shape, 0, len(env.Shapes)),
	}
	for i, raw := range env.Shapes {
		var hdr kindHeader
		if err := json.Unmarshal(raw, &hdr); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "shape %d: decode kind", i)
		}
		s, ok := NewShape(hdr.Kind)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidKind, "shape %d: unknown kind %q", i, hdr.Kind)
		}
		if err := json.Unmarshal(raw, s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "shape %d (%s): decode", i, hdr.Kind)
		}
		if err := errors.ValidateShapeID(string(s.Header().ID)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "shape %d (%s)", i, hdr.Kind)
		}
		// Image sources come from untrusted drawings; accept http(s)
		// URLs or safe relative paths, nothing that walks the tree.
		if img, ok := s.(*shape.Image); ok && img.Source != "" {
			if errors.ValidateURL(img.Source) != nil {
				if err := errors.ValidatePath(img.Source); err != nil {
					return nil, errors.Wrap(errors.ErrCodeInvalidShape, err, "shape %d (%s): source", i, hdr.Kind)
				}
			}
		}
		d.Shapes = append(d.Shapes, s)
	}
	return d, nil
}

// ImportDrawing reads a JSON drawing file at path.
//
// ImportDrawing opens the file, decodes it using [ReadDrawing], and
// closes the file. It returns the same validation errors as
// [ReadDrawing] for malformed drawings.
func ImportDrawing(path string) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "open %s", path)
	}
	defer f.Close()
	return ReadDrawing(f)
}

// WriteDrawing encodes a drawing as JSON and writes it to w.
// The output can be re-imported with [ReadDrawing] for round-trip
// processing.
func WriteDrawing(d *Drawing, w io.Writer) error {
	env := envelope{
		Name:   d.Name,
		Shapes: make([]json.RawMessage, 0, len(d.Shapes)),
	}
	for _, s := range d.Shapes {
		raw, err := marshalShape(s)
		if err != nil {
			return err
		}
		env.Shapes = append(env.Shapes, raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode drawing")
	}
	return nil
}

// ExportDrawing writes a drawing to a JSON file at path.
// This is a convenience wrapper around [WriteDrawing] for file-based output.
func ExportDrawing(d *Drawing, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create %s", path)
	}
	defer f.Close()
	return WriteDrawing(d, f)
}

// marshalShape serializes one shape with its "kind" discriminant
// injected alongside the concrete fields.
func marshalShape(s shape.Shape) (json.RawMessage, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode shape %s", s.Header().ID)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode shape %s", s.Header().ID)
	}
	kind, _ := json.Marshal(s.Kind())
	fields["kind"] = kind
	return json.Marshal(fields)
}
