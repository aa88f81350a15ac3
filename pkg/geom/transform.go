package geom

import "math"

// Tolerances shared by the geometry engines. These values are part of the
// observable contract: changing them changes which operations succeed.
const (
	// ParallelEps rejects line intersections whose 2x2 determinant is
	// below this bound (parallel or near-parallel lines).
	ParallelEps = 1e-10

	// ZeroLengthEps is the squared-root length below which a vector is
	// treated as zero (degenerate segments, coincident mirror axes).
	ZeroLengthEps = 1e-9

	// ParamSlack widens the [0,1] segment-parameter window for trim and
	// extend containment checks to [-ParamSlack, 1+ParamSlack].
	ParamSlack = 0.01
)

// Transform maps a point to a point. Transforms are pure: applying the
// same transform to the same point always yields the same result.
type Transform func(Point) Point

// Identity returns the transform that maps every point to itself.
func Identity() Transform {
	return func(p Point) Point { return p }
}

// Translate returns a transform moving points by (dx, dy).
func Translate(dx, dy float64) Transform {
	return func(p Point) Point {
		return Point{p.X + dx, p.Y + dy}
	}
}

// Rotate returns a transform rotating points around center by angle
// radians, counter-clockwise positive.
func Rotate(center Point, angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return func(p Point) Point {
		dx, dy := p.X-center.X, p.Y-center.Y
		return Point{
			X: center.X + dx*cos - dy*sin,
			Y: center.Y + dx*sin + dy*cos,
		}
	}
}

// Scale returns a transform scaling points uniformly around origin.
func Scale(origin Point, factor float64) Transform {
	return func(p Point) Point {
		return Point{
			X: origin.X + (p.X-origin.X)*factor,
			Y: origin.Y + (p.Y-origin.Y)*factor,
		}
	}
}

// Mirror returns a transform reflecting points across the line through
// axisA and axisB. A zero-length axis (coincident points) degrades to the
// identity transform.
func Mirror(axisA, axisB Point) Transform {
	dir, l := axisB.Sub(axisA).Normalize()
	if l == 0 {
		return Identity()
	}
	return func(p Point) Point {
		v := p.Sub(axisA)
		proj := dir.Mul(v.Dot(dir))
		return axisA.Add(proj.Mul(2)).Sub(v)
	}
}

// Compose returns the transform applying each transform in order.
func Compose(ts ...Transform) Transform {
	return func(p Point) Point {
		for _, t := range ts {
			p = t(p)
		}
		return p
	}
}
