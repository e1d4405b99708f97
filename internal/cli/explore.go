package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/knotwork/knot/pkg/digraph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command for interactive graph walking.
func (c *CLI) exploreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Walk a graph interactively in the terminal",
		Long: `Walk a graph interactively in the terminal.

The explore command loads a graph document (JSON or TOML) and opens a
terminal UI listing its vertices with in/out degrees. Selecting a vertex
descends into its successors; backspace returns to the previous level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, name, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = args[0]
			}

			model := newExploreModel(g, name)
			p := tea.NewProgram(model)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("explore: %w", err)
			}

			if m, ok := final.(exploreModel); ok && len(m.trail) > 0 {
				printInfo("Path: %s", formatWalk(m.trail))
			}
			return nil
		},
	}

	return cmd
}

// =============================================================================
// exploreModel - Interactive vertex navigation
// =============================================================================

// exploreModel is the bubbletea model for walking a graph. Each level shows
// either all vertices (at the root) or the successors of the vertex the user
// descended into; trail records the descent path.
type exploreModel struct {
	graph    *digraph.Digraph[string]
	name     string
	vertices []string // vertices shown at the current level
	trail    []string // vertices descended into, root first
	cursor   int
	height   int
	offset   int
}

// newExploreModel creates an explore model positioned at the root level.
func newExploreModel(g *digraph.Digraph[string], name string) exploreModel {
	return exploreModel{
		graph:    g,
		name:     name,
		vertices: g.Vertices(),
		height:   15,
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.vertices)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", "right", "l":
			if len(m.vertices) == 0 {
				return m, nil
			}
			v := m.vertices[m.cursor]
			succs, err := m.graph.Successors(v)
			if err != nil || len(succs) == 0 {
				return m, nil
			}
			m.trail = append(m.trail, v)
			m.vertices = succs
			m.cursor = 0
			m.offset = 0
		case "backspace", "left", "h":
			if len(m.trail) == 0 {
				return m, nil
			}
			m.trail = m.trail[:len(m.trail)-1]
			if len(m.trail) == 0 {
				m.vertices = m.graph.Vertices()
			} else {
				succs, err := m.graph.Successors(m.trail[len(m.trail)-1])
				if err != nil {
					m.vertices = m.graph.Vertices()
					m.trail = nil
				} else {
					m.vertices = succs
				}
			}
			m.cursor = 0
			m.offset = 0
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.name))
	if len(m.trail) > 0 {
		b.WriteString(listDimStyle.Render("  " + formatWalk(m.trail)))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ descend  ⌫ back  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.vertices) {
		end = len(m.vertices)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		v := m.vertices[i]
		out, _ := m.graph.OutDegree(v)
		in, _ := m.graph.InDegree(v)

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor, v, fmt.Sprintf("%d", in), fmt.Sprintf("%d", out), successorPreview(m.graph, v),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Vertex", "In", "Out", "Successors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.vertices))))

	return b.String()
}

// successorPreview renders a short comma-separated successor list for the
// table; long lists are elided.
func successorPreview(g *digraph.Digraph[string], v string) string {
	succs, err := g.Successors(v)
	if err != nil || len(succs) == 0 {
		return "—"
	}
	const maxShown = 4
	if len(succs) <= maxShown {
		return strings.Join(succs, ", ")
	}
	return fmt.Sprintf("%s, +%d", strings.Join(succs[:maxShown], ", "), len(succs)-maxShown)
}
