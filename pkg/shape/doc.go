// Package shape defines the drawing primitives of draftcore as a closed,
// tagged set of variants.
//
// Every shape carries a Common header (identity, layer, style, visibility
// and lock flags) plus type-specific geometric fields. Identity is minted
// once at creation and never reused; copying a shape always produces a
// fresh identity.
//
// # Variants
//
// The set of kinds is closed: line, wall, beam, gridline, level,
// rectangle, circle, arc, ellipse, polyline, spline, text, hatch, slab,
// space, image, dimension. Code that dispatches on kind switches on the
// concrete type, so adding a variant surfaces every incomplete switch at
// review time rather than silently no-opping.
//
// # Updates
//
// Geometry engines never mutate shapes in place. They return Update
// records ({id, changed fields}) that the document layer applies as one
// atomic batch. Update.Apply clones the target first, so snapshots stay
// immutable.
package shape
