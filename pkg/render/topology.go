package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/draftwise/draftcore/pkg/shape"
)

// TopologyOptions configures connectivity graph rendering.
type TopologyOptions struct {
	// Detailed includes endpoint coordinates in node labels.
	// When false, only the shape ID and kind are shown.
	Detailed bool

	// Tolerance is the squared-distance threshold below which two
	// endpoints count as touching. Zero means exact coincidence only.
	Tolerance float64
}

// ToDOT converts a drawing's connectivity graph to Graphviz DOT format.
// Line-like shapes become nodes; an edge connects each pair whose
// endpoints touch within the tolerance. Structural members (walls,
// beams) are drawn as boxes, plain line work as ellipses.
func ToDOT(shapes []shape.Shape, opts TopologyOptions) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	linework := lineLikes(shapes)
	for _, l := range linework {
		label := topoLabel(l, opts.Detailed)
		attrs := topoAttrs(l, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", l.Header().ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	tolSq := opts.Tolerance * opts.Tolerance
	for i := 0; i < len(linework); i++ {
		for j := i + 1; j < len(linework); j++ {
			if endpointsTouch(linework[i], linework[j], tolSq) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", linework[i].Header().ID, linework[j].Header().ID)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func lineLikes(shapes []shape.Shape) []shape.LineLike {
	var out []shape.LineLike
	for _, s := range shapes {
		if l, ok := s.(shape.LineLike); ok && !s.Header().Hidden {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Header().ID < out[j].Header().ID
	})
	return out
}

func endpointsTouch(a, b shape.LineLike, tolSq float64) bool {
	as, ae := a.Endpoints()
	bs, be := b.Endpoints()
	pairs := [4]float64{
		as.DistSqTo(bs), as.DistSqTo(be),
		ae.DistSqTo(bs), ae.DistSqTo(be),
	}
	for _, d := range pairs {
		if d <= tolSq {
			return true
		}
	}
	return false
}

func topoLabel(l shape.LineLike, detailed bool) string {
	base := fmt.Sprintf("%s\n%s", l.Header().ID, l.Kind())
	if !detailed {
		return base
	}
	s, e := l.Endpoints()
	return fmt.Sprintf("%s\n(%.0f, %.0f) - (%.0f, %.0f)", base, s.X, s.Y, e.X, e.Y)
}

func topoAttrs(l shape.LineLike, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if _, ok := l.(shape.Structural); ok {
		attrs = append(attrs, "shape=box")
	} else {
		attrs = append(attrs, "shape=ellipse", "fillcolor=lightgrey")
	}
	return attrs
}

// TopologySVG renders a DOT graph to SVG using Graphviz.
func TopologySVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
