// Package modify implements the geometric modification engines of
// draftcore: shape transformation, trim/extend, fillet/chamfer, offset,
// and miter joining of structural members.
//
// # Contract
//
// Every operation is a pure function over value snapshots. Operations
// never mutate their inputs: they return either a brand-new shape (with
// a fresh identity), one or more partial Update records, or ok=false
// when the geometry is degenerate (parallel lines, zero-length vectors,
// non-positive radii). Degeneracy is not an error; callers treat it as
// "operation not applicable here" and skip.
//
// # Derived fields
//
// TransformShape re-derives type-specific fields instead of mapping raw
// points: rectangle width/height/rotation come from the transformed
// corner frame, circle and arc radii from a transformed boundary probe
// point, arc angles from atan2 against the new center. This keeps every
// variant geometrically faithful under rotation and mirroring, not just
// translation.
package modify
