// Package pkg provides the core libraries for Draftcore, the geometric
// engine of a 2D construction drafting tool.
//
// # Overview
//
// Draftcore edits and analyzes 2D drawings made of typed shapes: lines,
// walls, beams, circles, arcs, polylines, spaces, and the rest of the
// drafting vocabulary. The pkg directory is organized into four areas:
//
//  1. Geometry and shapes ([geom], [shape]) - primitives and the shape union
//  2. Engines ([modify], [spaces], [document]) - edits and spatial analysis
//  3. Input/output ([io], [store], [render]) - serialization, persistence, artifacts
//  4. Orchestration ([pipeline], [cache], [observability]) - cached detect/render flow
//
// # Architecture
//
// The typical data flow through Draftcore:
//
//	drawing JSON / MongoDB document
//	         ↓
//	    [io] package (kind-discriminated decode)
//	         ↓
//	    [document] package (snapshot + update batches)
//	         ↓
//	    [modify] / [spaces] packages (geometry engines)
//	         ↓
//	    [render] package (plan SVG, topology DOT)
//	         ↓
//	    SVG/PNG/PDF/DOT output
//
// # Quick Start
//
// Load a drawing, detect the room around a point, and render a plan:
//
//	import (
//	    "github.com/draftwise/draftcore/pkg/geom"
//	    "github.com/draftwise/draftcore/pkg/io"
//	    "github.com/draftwise/draftcore/pkg/render"
//	    "github.com/draftwise/draftcore/pkg/spaces"
//	)
//
//	d, _ := io.ImportDrawing("plan.json")
//	contour, ok := spaces.Detect(d.Shapes, geom.Point{X: 2000, Y: 1500})
//	svg := render.PlanSVG(d.Shapes)
//
// # Main Packages
//
// [geom] - Points, vectors, segment intersection, polygon area, and pure
// point transforms (translate, rotate, scale, mirror).
//
// [shape] - The closed union of drawing primitives with a shared header
// (identity, layer, style, flags), plus partial-update records applied by
// the document layer.
//
// [modify] - Geometric editing engines: transform dispatch, trim and
// extend, fillet and chamfer, parallel offset, and miter joins between
// structural members.
//
// [spaces] - Room detection. Walls form a planar subdivision; detection
// walks the face enclosing a probe point and reports its contour, area,
// and centroid.
//
// [document] - Immutable drawing snapshots, atomic update batches,
// endpoint connectivity search, and reconciliation of dependent geometry
// after an edit.
//
// [io] - JSON drawing serialization with a kind discriminant per shape.
//
// [store] - Drawing persistence: a directory of JSON files for the CLI,
// MongoDB for the server.
//
// [render] - Artifact generation: scale plan SVG, connectivity topology
// graphs via Graphviz, and PNG/PDF conversion.
//
// [pipeline] - The cached detect → render flow shared by the CLI and the
// HTTP API. Results are keyed by drawing content hash.
//
// [cache] - Cache interface with file, Redis, and null implementations.
//
// [observability] - Pluggable hooks for pipeline, cache, and store events.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the API.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/spaces/...   # Specific package
//
// [geom]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/geom
// [shape]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/shape
// [modify]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/modify
// [spaces]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/spaces
// [document]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/document
// [io]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/io
// [store]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/store
// [render]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/cache
// [observability]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/observability
// [errors]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/draftwise/draftcore/pkg/buildinfo
package pkg
