package render

import (
	"bytes"
	"fmt"

	"github.com/knotwork/knot/pkg/digraph"
)

// Options configures DOT emission.
type Options struct {
	// Detailed includes in/out degree in vertex labels.
	// When false, only the vertex value is shown.
	Detailed bool

	// HighlightCycle draws the edges of the detected cycle (if any) in red
	// with a heavier pen.
	HighlightCycle bool
}

// ToDOT converts a graph to Graphviz DOT format.
// Vertices are emitted in graph (first-seen) order and edges in insertion
// order, so the output is deterministic. The resulting DOT string can be
// rendered using [SVG] or [PNG].
func ToDOT(g *digraph.Digraph[string], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", v, fmtLabel(g, v, opts.Detailed))
	}

	hot := map[[2]string]bool{}
	if opts.HighlightCycle {
		cycle := g.Cycle()
		for i := 0; i+1 < len(cycle); i++ {
			hot[[2]string{cycle[i], cycle[i+1]}] = true
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if hot[[2]string{e.From, e.To}] {
			fmt.Fprintf(&buf, "  %q -> %q [color=red, penwidth=2];\n", e.From, e.To)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *digraph.Digraph[string], v string, detailed bool) string {
	if !detailed {
		return v
	}
	in, _ := g.InDegree(v)
	out, _ := g.OutDegree(v)
	return fmt.Sprintf("%s\nin: %d, out: %d", v, in, out)
}
