package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command for graph summaries.
func (c *CLI) statsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print summary statistics for a graph",
		Long: `Print summary statistics for a graph.

The stats command loads a graph document (JSON or TOML) and reports vertex
and edge counts, sources (no incoming edges), sinks (no outgoing edges),
whether the graph is acyclic, and its canonical fingerprint. Two graphs with
the same structure always have the same fingerprint, regardless of the order
their vertices and edges were added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, name, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if name != "" {
				fmt.Println(StyleTitle.Render(name))
			}
			printKeyValue("vertices", fmt.Sprintf("%d", g.VertexCount()))
			printKeyValue("edges", fmt.Sprintf("%d", g.EdgeCount()))
			printKeyValue("sources", formatVertexList(g.Sources()))
			printKeyValue("sinks", formatVertexList(g.Sinks()))
			printKeyValue("max out", maxDegreeLine(g.Vertices(), g.OutDegree))
			printKeyValue("max in", maxDegreeLine(g.Vertices(), g.InDegree))

			if cycle := g.Cycle(); cycle != nil {
				printKeyValue("acyclic", StyleWarning.Render("no"))
				printKeyValue("cycle", formatWalk(cycle))
			} else {
				printKeyValue("acyclic", StyleSuccess.Render("yes"))
			}

			printKeyValue("fingerprint", g.Fingerprint())
			return nil
		},
	}

	return cmd
}

// maxDegreeLine finds the vertex with the highest degree under deg.
func maxDegreeLine(vs []string, deg func(string) (int, error)) string {
	best, bestDeg := "", -1
	for _, v := range vs {
		d, err := deg(v)
		if err != nil {
			continue
		}
		if d > bestDeg {
			best, bestDeg = v, d
		}
	}
	if bestDeg < 0 {
		return "none"
	}
	return fmt.Sprintf("%d (%s)", bestDeg, best)
}

// formatVertexList renders a vertex list compactly, eliding long lists.
func formatVertexList(vs []string) string {
	const maxShown = 8
	if len(vs) == 0 {
		return "none"
	}
	if len(vs) <= maxShown {
		return strings.Join(vs, ", ")
	}
	return fmt.Sprintf("%s, … (%d total)", strings.Join(vs[:maxShown], ", "), len(vs))
}
