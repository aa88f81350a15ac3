package geom

import "math"

// PolygonArea returns the signed shoelace area of the polygon. The sign
// is positive for counter-clockwise winding. Fewer than 3 points yield 0.
func PolygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// PolygonCentroid returns the area centroid of the polygon. Degenerate
// polygons (near-zero area) fall back to the vertex average so a label
// position is always available.
func PolygonCentroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	area := PolygonArea(pts)
	if math.Abs(area) < ZeroLengthEps {
		var avg Point
		for _, p := range pts {
			avg = avg.Add(p)
		}
		return avg.Mul(1 / float64(len(pts)))
	}

	var cx, cy float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		f := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// PointInPolygon reports whether p lies inside the polygon, using the
// even-odd ray casting rule with a ray toward +X.
func PointInPolygon(p Point, pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
		if x > p.X {
			inside = !inside
		}
	}
	return inside
}
