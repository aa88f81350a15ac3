// Package io provides JSON import and export for drawings.
//
// # Overview
//
// This package serializes a drawing (a named, ordered list of shapes) to
// and from a simple JSON format. The format is designed for:
//
//   - Exchange with the editing frontend and external tools
//   - Storage backends (file and database stores persist this format)
//   - Round-trip preservation: import, modify, export, and re-import
//
// # JSON Format
//
// A drawing is an object with a name and a shapes array. Every shape
// carries a "kind" discriminant naming its concrete type; the remaining
// fields are kind-specific:
//
//	{
//	  "name": "ground-floor",
//	  "shapes": [
//	    {"kind": "wall", "id": "w1", "start": {"x": 0, "y": 0},
//	     "end": {"x": 4000, "y": 0}, "thickness": 200},
//	    {"kind": "circle", "id": "c1", "center": {"x": 100, "y": 100},
//	     "radius": 50}
//	  ]
//	}
//
// Import validates the structure: unknown kinds, missing ids, and
// malformed JSON are rejected with structured errors from pkg/errors.
//
// # Usage
//
//	d, err := io.ImportDrawing("plan.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... modify d.Shapes ...
//	err = io.ExportDrawing(d, "plan.json")
package io
