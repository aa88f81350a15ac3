// Package render turns drawings into visual artifacts.
//
// Two views are supported:
//
//   - Plan: a scaled 2D plan of the drawing geometry as SVG. Walls are
//     drawn with their thickness, detected spaces as filled regions with
//     area labels.
//   - Topology: the connectivity graph of the drawing (shapes as nodes,
//     touching endpoints as edges) laid out by Graphviz. Useful for
//     inspecting join and reconciliation behavior.
//
// SVG is the native output. PNG and PDF are produced by converting the
// SVG with rsvg-convert, which must be installed separately.
//
// # Usage
//
//	svg := render.PlanSVG(d.Shapes, render.WithSpaceLabels())
//
//	dot := render.ToDOT(d, render.TopologyOptions{})
//	svg, err := render.TopologySVG(dot)
package render
