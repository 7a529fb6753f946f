// Package aspectgraph renders a chart's aspect network as a node-link
// diagram: bodies become nodes, registered aspects become labeled edges.
//
// This view complements the wheel: dense aspect patterns (grand trines,
// t-squares) read more clearly as a graph than as chords. Layout is
// delegated to Graphviz via [github.com/goccy/go-graphviz], so the package
// only builds DOT text and converts the result.
package aspectgraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/lunaterra/chartwheel/pkg/chart"
	"github.com/lunaterra/chartwheel/pkg/wheel"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes each body's degree-in-sign position in its label.
	Detailed bool
}

// ToDOT converts a chart's aspect network to Graphviz DOT format.
//
// Only bodies with known longitudes that participate in at least one
// complete aspect edge appear; edges with a nil longitude are dropped, the
// same tolerance rule the wheel applies to chords.
func ToDOT(c *chart.Chart, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph aspects {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=20];\n")
	buf.WriteString("  edge [fontsize=14];\n")
	buf.WriteString("\n")

	seen := make(map[string]bool)
	var edges []chart.Aspect
	for _, e := range c.Aspects {
		if e.LongitudeA == nil || e.LongitudeB == nil {
			continue
		}
		edges = append(edges, e)
		seen[e.BodyA] = true
		seen[e.BodyB] = true
	}

	for _, b := range c.Bodies {
		if !seen[b.Name] {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", b.Name, nodeLabel(b, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", e.BodyA, e.BodyB, wheel.AspectGlyph(e.Type))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(b chart.Body, detailed bool) string {
	label := wheel.BodyGlyphText(b.Name)
	if !detailed || !b.Known() {
		return label
	}

	parts := []string{label, wheel.FormatDegree(*b.Longitude)}
	if b.Retrograde {
		parts[1] += " " + wheel.RetrogradeMark
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	return buf.Bytes(), nil
}
