package spaces

import (
	"math"
	"sort"

	"github.com/draftwise/draftcore/pkg/geom"
)

// vertexKey identifies a subdivision vertex by its rounded coordinates,
// so numerically near-identical intersection points collapse into one
// vertex.
type vertexKey struct {
	x, y int64
}

func keyOf(p geom.Point) vertexKey {
	return vertexKey{int64(math.Round(p.X)), int64(math.Round(p.Y))}
}

// halfEdge is one traversal direction of a subdivision edge.
type halfEdge struct {
	to    vertexKey
	angle float64
}

// graph is the planar subdivision: per-vertex outgoing half-edges sorted
// by direction angle, plus the undirected segment list for ray casting.
type graph struct {
	adjacency map[vertexKey][]halfEdge
	coords    map[vertexKey]geom.Point
	segs      []segment
	edgeCount int
}

func buildGraph(segs []segment) *graph {
	g := &graph{
		adjacency: make(map[vertexKey][]halfEdge),
		coords:    make(map[vertexKey]geom.Point),
		segs:      segs,
	}
	for _, s := range segs {
		ka, kb := keyOf(s.a), keyOf(s.b)
		if ka == kb {
			continue
		}
		g.addVertex(ka, s.a)
		g.addVertex(kb, s.b)
		g.adjacency[ka] = append(g.adjacency[ka], halfEdge{to: kb, angle: s.b.Sub(s.a).Angle()})
		g.adjacency[kb] = append(g.adjacency[kb], halfEdge{to: ka, angle: s.a.Sub(s.b).Angle()})
		g.edgeCount++
	}
	for k := range g.adjacency {
		out := g.adjacency[k]
		sort.Slice(out, func(i, j int) bool { return out[i].angle < out[j].angle })
	}
	return g
}

// addVertex registers the first coordinates seen for a key; later points
// rounding to the same key reuse them, keeping the walk geometry
// consistent.
func (g *graph) addVertex(k vertexKey, p geom.Point) {
	if _, ok := g.coords[k]; !ok {
		g.coords[k] = p
	}
}
