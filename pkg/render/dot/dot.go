// Package dot renders a compartment tree to Graphviz DOT, for visual
// debugging of the compartment-tree reduction independent of the pixel
// layout.
package dot

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"github.com/reactome-tools/reaction-layout/pkg/onto"
)

// Options configures DOT generation.
type Options struct {
	// Highlight marks these accessions with a filled background, e.g.
	// the compartments actually holding a participant.
	Highlight map[string]bool
}

// ToDOT converts a compartment tree to a DOT digraph, root at the top.
func ToDOT(t *onto.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n\n")

	accessions := make([]string, 0, len(t.Nodes))
	for a := range t.Nodes {
		accessions = append(accessions, a)
	}
	slices.SortFunc(accessions, func(a, b string) int { return cmp.Compare(a, b) })

	for _, a := range accessions {
		n := t.Nodes[a]
		attrs := []string{fmt.Sprintf("label=%q", n.Name)}
		if opts.Highlight[a] {
			attrs = append(attrs, "fillcolor=lightyellow")
		}
		if a == t.Root {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", a, joinAttrs(attrs))
	}

	buf.WriteString("\n")
	for _, a := range accessions {
		for _, child := range t.Children[a] {
			fmt.Fprintf(&buf, "  %q -> %q;\n", a, child)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func joinAttrs(attrs []string) string {
	out := attrs[0]
	for _, a := range attrs[1:] {
		out += ", " + a
	}
	return out
}

// RenderSVG rasterizes DOT to SVG via Graphviz.
func RenderSVG(dotSrc string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
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
