package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/draftwise/draftcore/pkg/cache"
	dio "github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/observability"
	"github.com/draftwise/draftcore/pkg/render"
	"github.com/draftwise/draftcore/pkg/spaces"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// LoadDrawing loads a drawing by name through the cache. The loader is
// consulted on a miss and its result is cached under the drawing key,
// so hot drawings skip the store round-trip. The second return reports
// whether the cache served the drawing. Writers must call
// InvalidateDrawing after changing the stored drawing.
func (r *Runner) LoadDrawing(ctx context.Context, name string, load func(context.Context, string) (*dio.Drawing, error)) (*dio.Drawing, bool, error) {
	key := r.Keyer.DrawingKey(name)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if d, err := dio.ReadDrawing(bytes.NewReader(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, "drawing")
			return d, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "drawing")

	d, err := load(ctx, name)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := dio.WriteDrawing(d, &buf); err == nil {
		_ = r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLDrawing)
		observability.Cache().OnCacheSet(ctx, "drawing", buf.Len())
	}
	return d, false, nil
}

// InvalidateDrawing drops the cached copy of a drawing after a write.
func (r *Runner) InvalidateDrawing(ctx context.Context, name string) error {
	return r.Cache.Delete(ctx, r.Keyer.DrawingKey(name))
}

// Execute runs the complete detect → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, d *dio.Drawing, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	result.Stats.ShapeCount = len(d.Shapes)

	// The drawing content hash keys both stages.
	hash, err := DrawingHash(d)
	if err != nil {
		return nil, fmt.Errorf("hash drawing: %w", err)
	}
	result.DrawingHash = hash

	// Stage 1: Detect
	if opts.Probe != nil {
		detectStart := time.Now()
		contour, found, hit, err := r.DetectWithCacheInfo(ctx, d, hash, opts)
		if err != nil {
			return nil, fmt.Errorf("detect: %w", err)
		}
		if found {
			result.Contour = &contour
		}
		result.Stats.DetectTime = time.Since(detectStart)
		result.CacheInfo.DetectHit = hit

		r.Logger.Info("detected space",
			"found", found,
			"probe_x", opts.Probe.X,
			"probe_y", opts.Probe.Y,
			"duration", result.Stats.DetectTime)
	}

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"view", opts.View,
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// DetectWithCacheInfo finds the space contour enclosing the probe point,
// with caching, and returns cache hit info.
func (r *Runner) DetectWithCacheInfo(ctx context.Context, d *dio.Drawing, hash string, opts Options) (spaces.Contour, bool, bool, error) {
	if opts.Probe == nil {
		return spaces.Contour{}, false, false, fmt.Errorf("probe point is required")
	}

	observability.Pass().OnDetectStart(ctx, hash)
	start := time.Now()

	cacheKey := r.Keyer.ContourKey(hash, cache.ContourKeyOpts{
		ProbeX: opts.Probe.X,
		ProbeY: opts.Probe.Y,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedContour
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "contour")
				observability.Pass().OnDetectComplete(ctx, hash, cached.Found, time.Since(start))
				return cached.Contour, cached.Found, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "contour")
	}

	contour, found := spaces.Detect(d.Shapes, *opts.Probe)

	if data, err := json.Marshal(cachedContour{Contour: contour, Found: found}); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLContour)
		observability.Cache().OnCacheSet(ctx, "contour", len(data))
	}

	observability.Pass().OnDetectComplete(ctx, hash, found, time.Since(start))
	return contour, found, false, nil
}

// Detect is a convenience wrapper that discards the cache hit info.
func (r *Runner) Detect(ctx context.Context, d *dio.Drawing, opts Options) (spaces.Contour, bool, error) {
	hash, err := DrawingHash(d)
	if err != nil {
		return spaces.Contour{}, false, err
	}
	contour, found, _, err := r.DetectWithCacheInfo(ctx, d, hash, opts)
	return contour, found, err
}

// cachedContour wraps a detection result for cache storage. The Found
// flag is stored too so a negative result is also a cache hit.
type cachedContour struct {
	Contour spaces.Contour `json:"contour"`
	Found   bool           `json:"found"`
}

// RenderWithCacheInfo generates artifacts with caching and returns
// cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d *dio.Drawing, hash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte)
		allCached := true
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	rendered, err := renderArtifacts(ctx, d, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, d *dio.Drawing, opts Options) (map[string][]byte, error) {
	hash, err := DrawingHash(d)
	if err != nil {
		return nil, err
	}
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, hash, opts)
	return artifacts, err
}

// renderArtifacts generates all requested formats for the chosen view.
func renderArtifacts(ctx context.Context, d *dio.Drawing, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	// SVG is the base artifact; PNG and PDF convert from it.
	var svg []byte
	var dot string

	switch opts.View {
	case ViewTopology:
		dot = render.ToDOT(d.Shapes, render.TopologyOptions{Detailed: opts.Detailed})
	default:
		var planOpts []render.PlanOption
		if opts.SpaceLabels {
			planOpts = append(planOpts, render.WithSpaceLabels())
		}
		if opts.ShowHidden {
			planOpts = append(planOpts, render.WithHidden())
		}
		svg = render.PlanSVG(d.Shapes, planOpts...)
	}

	needSVG := false
	for _, format := range opts.Formats {
		if format != FormatDOT {
			needSVG = true
		}
	}
	if needSVG && svg == nil {
		var err error
		svg, err = render.TopologySVG(dot)
		if err != nil {
			return nil, fmt.Errorf("render topology: %w", err)
		}
	}

	for _, format := range opts.Formats {
		start := time.Now()
		observability.Pass().OnRenderStart(ctx, format)

		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = svg
		case FormatPNG:
			data, err = render.ToPNG(svg, DefaultPNGScale)
		case FormatPDF:
			data, err = render.ToPDF(svg)
		case FormatDOT:
			data = []byte(dot)
		default:
			err = fmt.Errorf("unsupported format: %s", format)
		}

		observability.Pass().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// DrawingHash computes the content hash of a drawing. Equal drawings
// always produce equal hashes, so the hash works as a cache key scope.
func DrawingHash(d *dio.Drawing) (string, error) {
	var buf bytes.Buffer
	if err := dio.WriteDrawing(d, &buf); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
