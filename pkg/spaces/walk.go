package spaces

import (
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
)

// probeEdge casts a ray in +X from the probe point and returns the
// nearest crossed segment. A segment counts as crossed when its
// endpoints straddle the ray's y and the crossing sits at or right of
// the probe.
func (g *graph) probeEdge(probe geom.Point) (segment, bool) {
	best := math.Inf(1)
	var hit segment
	found := false
	for _, s := range g.segs {
		if (s.a.Y > probe.Y) == (s.b.Y > probe.Y) {
			continue
		}
		x := s.a.X + (probe.Y-s.a.Y)/(s.b.Y-s.a.Y)*(s.b.X-s.a.X)
		if x < probe.X {
			continue
		}
		if d := x - probe.X; d < best {
			best = d
			hit = s
			found = true
		}
	}
	return hit, found
}

// traceFace walks the face enclosing the probe point. The travel
// direction along the first edge is picked so the probe lies on the
// traversal's interior side; if the resulting polygon fails the
// containment check the opposite direction is tried once.
func (g *graph) traceFace(probe geom.Point) ([]geom.Point, bool) {
	edge, ok := g.probeEdge(probe)
	if !ok {
		return nil, false
	}

	from, to := keyOf(edge.a), keyOf(edge.b)
	if from == to {
		return nil, false
	}
	// Walk with the probe on the right of travel: the face walk hugs
	// right turns, so the enclosed region is the traversal's right side.
	if edge.b.Sub(edge.a).Cross(probe.Sub(edge.a)) > 0 {
		from, to = to, from
	}

	if poly, ok := g.walkFace(from, to); ok && geom.PointInPolygon(probe, poly) {
		return poly, true
	}
	// Reversed retry for probes that sit ambiguously against the first
	// edge, e.g. exactly on it.
	if poly, ok := g.walkFace(to, from); ok && geom.PointInPolygon(probe, poly) {
		return poly, true
	}
	return nil, false
}

// walkFace traces one face starting along the from→to edge, stopping
// when the walk returns to the starting vertex. The step budget bounds
// the walk on malformed or open wall networks; exhausting it reports
// ok=false rather than looping.
func (g *graph) walkFace(from, to vertexKey) ([]geom.Point, bool) {
	budget := 2*g.edgeCount + 10

	pts := []geom.Point{g.coords[from]}
	prev, cur := from, to
	for step := 0; step < budget; step++ {
		if cur == from {
			return pts, len(pts) >= 3
		}
		pts = append(pts, g.coords[cur])

		next, ok := g.nextEdge(prev, cur)
		if !ok {
			return nil, false
		}
		prev, cur = cur, next
	}
	return nil, false
}

// nextEdge picks the outgoing edge at cur that turns most sharply
// clockwise relative to the incoming direction. The immediate reverse is
// taken only when it is the sole option (a dead end).
func (g *graph) nextEdge(prev, cur vertexKey) (vertexKey, bool) {
	out := g.adjacency[cur]
	if len(out) == 0 {
		return vertexKey{}, false
	}
	incoming := g.coords[cur].Sub(g.coords[prev]).Angle()

	var best vertexKey
	bestTurn := math.Inf(1)
	found := false
	for _, e := range out {
		if e.to == prev {
			continue
		}
		if turn := signedTurn(incoming, e.angle); turn < bestTurn {
			bestTurn = turn
			best = e.to
			found = true
		}
	}
	if !found {
		return prev, true
	}
	return best, true
}

// signedTurn normalizes the deviation from the incoming direction to
// (-π, π]: right turns are negative, so the minimum is the sharpest
// clockwise turn.
func signedTurn(incoming, outgoing float64) float64 {
	turn := math.Mod(outgoing-incoming, 2*math.Pi)
	if turn > math.Pi {
		turn -= 2 * math.Pi
	} else if turn <= -math.Pi {
		turn += 2 * math.Pi
	}
	return turn
}
