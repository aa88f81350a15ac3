// Package pipeline runs the detect → render flow over a drawing with
// caching.
//
// Both the CLI and the API serve the same two expensive passes: space
// detection (a full planar subdivision per call) and artifact rendering.
// This package centralizes them behind a Runner so the caching and
// instrumentation behavior is identical across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Detect: find the space contour enclosing a probe point
//  2. Render: generate output artifacts (SVG, PNG, PDF, DOT)
//
// Each stage is cached under keys derived from the drawing content
// hash, so any edit invalidates stale entries naturally.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Probe:   &geom.Point{X: 2000, Y: 1500},
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, drawing, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/draftwise/draftcore/pkg/cache"
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/spaces"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
	FormatDOT = "dot"
)

// View constants for render views.
const (
	ViewPlan     = "plan"
	ViewTopology = "topology"
)

// DefaultView is the default render view.
const DefaultView = ViewPlan

// DefaultPNGScale is the resolution multiplier for PNG output.
const DefaultPNGScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
	FormatDOT: true,
}

// ValidViews is the set of supported render views.
var ValidViews = map[string]bool{
	ViewPlan:     true,
	ViewTopology: true,
}

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Detect options. A nil Probe skips the detection stage.
	Probe *geom.Point `json:"probe,omitempty"`

	// Render options
	View        string   `json:"view,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	SpaceLabels bool     `json:"space_labels,omitempty"`
	ShowHidden  bool     `json:"show_hidden,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"`

	// Refresh bypasses the cache and recomputes everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DrawingHash is the content hash of the drawing.
	DrawingHash string

	// Contour is the detected space contour, if detection ran and found
	// an enclosing face.
	Contour *spaces.Contour

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount int
	DetectTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DetectHit bool // Whether the contour came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateView checks that a render view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return fmt.Errorf("invalid view: %q (must be one of: plan, topology)", view)
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateView(o.View); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.View == ViewPlan {
		for _, f := range o.Formats {
			if f == FormatDOT {
				return fmt.Errorf("format dot requires the topology view")
			}
		}
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		View:        o.View,
		SpaceLabels: o.SpaceLabels,
		ShowHidden:  o.ShowHidden,
		Detailed:    o.Detailed,
	}
}
