// Package spaces detects closed room contours in a network of walls.
//
// Detection builds a planar subdivision of all straight wall outline
// edges, then traces the face enclosing a probe point:
//
//  1. Each wall contributes its four outline edges, derived from the
//     centerline, thickness, and justification. Curved walls are skipped.
//  2. Edges are split pairwise at mutual intersections so no edge
//     crosses another without a vertex.
//  3. A ray cast from the probe point finds the nearest boundary edge,
//     and a face walk from that edge traces the enclosing polygon.
//
// Results below a minimum area are rejected as noise. All functions are
// pure over the supplied snapshot; nothing is cached between calls, so
// the subdivision is rebuilt from scratch each time.
//
// # Usage
//
//	contour, ok := spaces.Detect(allShapes, clickPoint)
//	if ok {
//		fmt.Printf("room of %.2f m²\n", contour.Area)
//	}
package spaces
