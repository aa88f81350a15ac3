package document

import (
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// DefaultConnectTolerance is the endpoint distance within which two
// line-like shapes count as physically connected.
const DefaultConnectTolerance = 5.0

// FindConnected returns the ids of every line-like shape reachable from
// start through chains of near-touching endpoints, including start
// itself. Two shapes are adjacent when any endpoint pair is within tol.
// A missing or non-line-like start yields nil.
func (s *Snapshot) FindConnected(start shape.ID, tol float64) []shape.ID {
	if tol <= 0 {
		tol = DefaultConnectTolerance
	}
	tolSq := tol * tol

	root, ok := s.Get(start)
	if !ok {
		return nil
	}
	if _, ok := root.(shape.LineLike); !ok {
		return nil
	}

	visited := map[shape.ID]bool{start: true}
	result := []shape.ID{start}
	queue := []shape.ID{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		curShape, _ := s.Get(cur)
		cs, ce := curShape.(shape.LineLike).Endpoints()

		// Snapshot order keeps the result deterministic.
		for _, cand := range s.shapes {
			id := cand.Header().ID
			if visited[id] {
				continue
			}
			l, ok := cand.(shape.LineLike)
			if !ok {
				continue
			}
			if !endpointsTouch(cs, ce, l, tolSq) {
				continue
			}
			visited[id] = true
			result = append(result, id)
			queue = append(queue, id)
		}
	}
	return result
}

func endpointsTouch(as, ae geom.Point, b shape.LineLike, tolSq float64) bool {
	bs, be := b.Endpoints()
	for _, pa := range []geom.Point{as, ae} {
		for _, pb := range []geom.Point{bs, be} {
			if pa.DistSqTo(pb) <= tolSq {
				return true
			}
		}
	}
	return false
}
