package api

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/draftwise/draftcore/pkg/document"
	"github.com/draftwise/draftcore/pkg/errors"
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/shape"
)

// transformRequest describes a transform edit. Exactly one of the
// transform fields must be set. Angles are in degrees, distances in
// millimeters. An empty ID list selects every unlocked shape.
type transformRequest struct {
	IDs       []string         `json:"ids"`
	Translate *geom.Point      `json:"translate,omitempty"`
	Rotate    *rotateRequest   `json:"rotate,omitempty"`
	Scale     *scaleRequest    `json:"scale,omitempty"`
	Mirror    *[2]geom.Point   `json:"mirror,omitempty"`
	Copy      bool             `json:"copy"`
	Tolerance *toleranceFields `json:"tolerance,omitempty"`
}

type rotateRequest struct {
	Center geom.Point `json:"center"`
	Angle  float64    `json:"angle"`
}

type scaleRequest struct {
	Origin geom.Point `json:"origin"`
	Factor float64    `json:"factor"`
}

type toleranceFields struct {
	Miter float64 `json:"miter"`
}

// transform converts the request into a point transform.
func (req *transformRequest) transform() (geom.Transform, error) {
	var transforms []geom.Transform
	if req.Translate != nil {
		transforms = append(transforms, geom.Translate(req.Translate.X, req.Translate.Y))
	}
	if req.Rotate != nil {
		transforms = append(transforms, geom.Rotate(req.Rotate.Center, req.Rotate.Angle*math.Pi/180))
	}
	if req.Scale != nil {
		if req.Scale.Factor <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "scale factor must be positive")
		}
		transforms = append(transforms, geom.Scale(req.Scale.Origin, req.Scale.Factor))
	}
	if req.Mirror != nil {
		if req.Mirror[0] == req.Mirror[1] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mirror axis points coincide")
		}
		transforms = append(transforms, geom.Mirror(req.Mirror[0], req.Mirror[1]))
	}
	if len(transforms) != 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "exactly one of translate, rotate, scale, mirror is required")
	}
	return transforms[0], nil
}

// handleTransform applies a transform to the named drawing, reconciles
// miter joins and space contours, and saves the result back to the store.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode transform request"))
		return
	}
	t, err := req.transform()
	if err != nil {
		s.writeError(w, err)
		return
	}

	d, err := s.loadDrawing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := document.NewSnapshot(d.Shapes)
	if err != nil {
		s.writeError(w, err)
		return
	}

	targets, err := resolveTargets(snap, req.IDs)
	if err != nil {
		s.writeError(w, err)
		return
	}

	reconciled := 0
	if req.Copy {
		for _, sh := range targets {
			cp := modify.TransformShape(sh, t, shape.NewID())
			if snap, err = snap.Insert(cp); err != nil {
				s.writeError(w, err)
				return
			}
		}
	} else {
		updates := make([]shape.Update, 0, len(targets))
		changed := make([]shape.ID, 0, len(targets))
		for _, sh := range targets {
			updates = append(updates, modify.TransformUpdates(sh, t))
			changed = append(changed, sh.Header().ID)
		}
		if snap, err = snap.ApplyUpdates(updates); err != nil {
			s.writeError(w, err)
			return
		}

		miterTol := modify.DefaultMiterTolerance
		if req.Tolerance != nil && req.Tolerance.Miter > 0 {
			miterTol = req.Tolerance.Miter
		}
		followups := document.Reconcile(snap, changed, miterTol)
		if len(followups) > 0 {
			if snap, err = snap.ApplyUpdates(followups); err != nil {
				s.writeError(w, err)
				return
			}
		}
		reconciled = len(followups)
	}

	d.Shapes = snap.Shapes()
	if err := s.store.Save(r.Context(), d); err != nil {
		s.writeError(w, err)
		return
	}
	s.invalidateDrawing(r)

	writeJSON(w, http.StatusOK, map[string]any{
		"transformed": len(targets),
		"reconciled":  reconciled,
		"copied":      req.Copy,
		"shapes":      len(d.Shapes),
	})
}

// handleConnected returns the IDs of every shape reachable from the
// given shape through endpoints touching within the tolerance.
func (s *Server) handleConnected(w http.ResponseWriter, r *http.Request) {
	d, err := s.loadDrawing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	snap, err := document.NewSnapshot(d.Shapes)
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := shape.ID(chi.URLParam(r, "id"))
	if _, ok := snap.Get(id); !ok {
		s.writeError(w, errors.New(errors.ErrCodeShapeNotFound, "shape %s not found", id))
		return
	}

	tol := document.DefaultConnectTolerance
	if v := r.URL.Query().Get("tolerance"); v != "" {
		var parsed float64
		if err := json.Unmarshal([]byte(v), &parsed); err != nil || parsed <= 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid tolerance %q", v))
			return
		}
		tol = parsed
	}

	ids := snap.FindConnected(id, tol)
	writeJSON(w, http.StatusOK, map[string]any{
		"start": id,
		"ids":   ids,
		"count": len(ids),
	})
}

// resolveTargets maps the requested IDs to shapes. An empty list selects
// every unlocked shape.
func resolveTargets(snap *document.Snapshot, ids []string) ([]shape.Shape, error) {
	if len(ids) == 0 {
		var all []shape.Shape
		for _, sh := range snap.Shapes() {
			if !sh.Header().Locked {
				all = append(all, sh)
			}
		}
		if len(all) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "drawing has no unlocked shapes")
		}
		return all, nil
	}

	out := make([]shape.Shape, 0, len(ids))
	for _, raw := range ids {
		sh, ok := snap.Get(shape.ID(raw))
		if !ok {
			return nil, errors.New(errors.ErrCodeShapeNotFound, "shape %s not found", raw)
		}
		if sh.Header().Locked {
			return nil, errors.New(errors.ErrCodeInvalidInput, "shape %s is locked", raw)
		}
		out = append(out, sh)
	}
	return out, nil
}
