// Package api implements the HTTP interface over the drawing store and
// the detect/render pipeline.
//
// Every route operates on drawings stored by name. Edits go through the
// same snapshot and update machinery as the CLI, so the two entry points
// cannot diverge in behavior.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/draftwise/draftcore/pkg/errors"
	dio "github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/pipeline"
	"github.com/draftwise/draftcore/pkg/store"
)

// maxDrawingBytes caps the accepted request body for drawing uploads.
const maxDrawingBytes = 32 << 20

// Server routes HTTP requests to the store and pipeline.
type Server struct {
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server over the given store and runner.
func NewServer(s store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: s, runner: runner, logger: logger}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/drawings", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)
			r.Post("/detect", s.handleDetect)
			r.Post("/render", s.handleRender)
			r.Post("/transform", s.handleTransform)
			r.Get("/connected/{id}", s.handleConnected)
		})
	})

	return r
}

// logRequests logs each request with method, path, status, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// loadDrawing reads the named drawing through the runner's drawing
// cache, falling back to the store on a miss.
func (s *Server) loadDrawing(r *http.Request) (*dio.Drawing, error) {
	d, _, err := s.runner.LoadDrawing(r.Context(), chi.URLParam(r, "name"), s.store.Load)
	return d, err
}

// invalidateDrawing drops the cached copy after a write to the store.
func (s *Server) invalidateDrawing(r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.runner.InvalidateDrawing(r.Context(), name); err != nil {
		s.logger.Warn("invalidate cached drawing", "name", name, "err", err)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"drawings": names})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	d, err := s.loadDrawing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := dio.WriteDrawing(d, w); err != nil {
		s.logger.Error("write drawing response", "err", err)
	}
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	d, err := dio.ReadDrawing(http.MaxBytesReader(w, r.Body, maxDrawingBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}
	d.Name = chi.URLParam(r, "name")
	if err := s.store.Save(r.Context(), d); err != nil {
		s.writeError(w, err)
		return
	}
	s.invalidateDrawing(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"name":   d.Name,
		"shapes": len(d.Shapes),
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	s.invalidateDrawing(r)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode detect request"))
		return
	}
	if opts.Probe == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "probe point is required"))
		return
	}

	d, err := s.loadDrawing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	hash, err := pipeline.DrawingHash(d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	contour, found, hit, err := s.runner.DetectWithCacheInfo(r.Context(), d, hash, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// A probe outside any closed face is not a server failure; it maps to
	// 422 so clients can tell it apart from a bad request.
	if !found {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"found":       false,
			"cacheHit":    hit,
			"drawingHash": hash,
			"error":       "no enclosed space at the probe point",
			"code":        string(errors.ErrCodeNotFound),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"found":       true,
		"cacheHit":    hit,
		"drawingHash": hash,
		"contour":     contour,
	})
}

// formatContentTypes maps artifact formats to response content types.
var formatContentTypes = map[string]string{
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatPNG: "image/png",
	pipeline.FormatPDF: "application/pdf",
	pipeline.FormatDOT: "text/vnd.graphviz",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode render request"))
		return
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid render options"))
		return
	}

	d, err := s.loadDrawing(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	hash, err := pipeline.DrawingHash(d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), d, hash, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	// A single-format request streams the artifact directly; multi-format
	// requests return a JSON object with base64 payloads.
	if len(opts.Formats) == 1 {
		format := opts.Formats[0]
		w.Header().Set("Content-Type", formatContentTypes[format])
		w.Header().Set("X-Cache", cacheHeader(hit))
		if _, err := w.Write(artifacts[format]); err != nil {
			s.logger.Error("write artifact response", "err", err)
		}
		return
	}

	w.Header().Set("X-Cache", cacheHeader(hit))
	writeJSON(w, http.StatusOK, map[string]any{
		"drawingHash": hash,
		"artifacts":   artifacts,
	})
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its HTTP status and writes a JSON error
// body carrying the machine-readable code.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]any{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

// statusForError picks the HTTP status for an error code.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeDrawingNotFound, errors.ErrCodeShapeNotFound,
		errors.ErrCodeFileNotFound, errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidShape, errors.ErrCodeInvalidUpdate,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath,
		errors.ErrCodeInvalidDrawing:
		return http.StatusBadRequest
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
