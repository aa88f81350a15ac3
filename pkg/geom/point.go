package geom

import "math"

// Point is a location in document units. It is a value type with no
// identity; two points with equal coordinates are the same point.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p + q treated as vectors.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q treated as vectors.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns the vector p scaled by f.
func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product of p and q treated
// as vectors. Positive when q is counter-clockwise from p.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the vector length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// DistTo returns the distance between p and q.
func (p Point) DistTo(q Point) float64 { return p.Sub(q).Len() }

// DistSqTo returns the squared distance between p and q. Used for
// tolerance comparisons without the square root.
func (p Point) DistSqTo(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Angle returns the direction of p treated as a vector, in radians.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Normalize returns the unit vector in the direction of p and its
// original length. Zero-length input returns the zero vector and 0.
func (p Point) Normalize() (Point, float64) {
	l := p.Len()
	if l < ZeroLengthEps {
		return Point{}, 0
	}
	return Point{p.X / l, p.Y / l}, l
}

// Perp returns p rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// PolarPoint returns the point at the given distance and angle from center.
func PolarPoint(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// NearlyEqual reports whether p and q coincide within eps per coordinate.
func NearlyEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
