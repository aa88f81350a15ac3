// Package geom provides the 2D geometric primitives underlying all of
// draftcore: points, point-to-point transforms, line intersection, and
// polygon measurement.
//
// All coordinates are in document (model) units, double precision. Angles
// are radians, counter-clockwise positive.
//
// # Design
//
// Transforms are plain functions from Point to Point rather than matrices.
// Every constructor (Translate, Rotate, Scale, Mirror) returns a closure
// that can be applied to any number of points and composed with Compose.
// This keeps anisotropic-safe shape transformation simple: higher layers
// re-derive radii and angles from transformed probe points instead of
// trying to decompose a matrix.
//
// # Degeneracy
//
// Geometric degeneracy is never an error. Mirror over a zero-length axis
// returns the identity transform, and LineIntersection reports ok=false
// for parallel or near-parallel input instead of dividing by a tiny
// determinant.
package geom
