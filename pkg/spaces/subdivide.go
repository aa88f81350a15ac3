package spaces

import (
	"sort"

	"github.com/draftwise/draftcore/pkg/geom"
)

// splitEps drops split parameters that coincide with a segment endpoint
// or with the previous cut.
const splitEps = 1e-9

// subdivide splits every segment at its intersections with all other
// segments, producing a true planar subdivision in which no edge crosses
// another without a shared vertex. Intersection uses the exact [0,1]
// segment windows.
func subdivide(segs []segment) []segment {
	cuts := make([][]float64, len(segs))
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			p, ok := geom.SegmentIntersection(segs[i].a, segs[i].b, segs[j].a, segs[j].b)
			if !ok {
				continue
			}
			cuts[i] = append(cuts[i], geom.SegmentParam(p, segs[i].a, segs[i].b))
			cuts[j] = append(cuts[j], geom.SegmentParam(p, segs[j].a, segs[j].b))
		}
	}

	var out []segment
	for i, s := range segs {
		ts := cuts[i]
		sort.Float64s(ts)

		d := s.b.Sub(s.a)
		from := s.a
		prev := 0.0
		for _, t := range ts {
			if t <= prev+splitEps || t >= 1-splitEps {
				continue
			}
			to := s.a.Add(d.Mul(t))
			out = append(out, segment{from, to})
			from, prev = to, t
		}
		out = append(out, segment{from, s.b})
	}
	return out
}
