package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphpad/adjacency"
	"github.com/katalvlaran/graphpad/core"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	stylePrompt = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	styleError  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00"))
	styleID     = lipgloss.NewStyle().Foreground(lipgloss.Color("#AFFFD7"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// renderGraph summarizes nodes (with coordinates) and edges in insertion
// order.
func renderGraph(g *core.Graph) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %d nodes, %d edges\n",
		styleTitle.Render("graph:"), g.NodeCount(), g.EdgeCount())
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "  %s %s\n",
			styleID.Render(n.ID),
			styleDim.Render(fmt.Sprintf("(%s, %s)", trimFloat(n.X), trimFloat(n.Y))))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s %s %s  w=%s\n",
			styleID.Render(e.From), arrow(e.Directed), styleID.Render(e.To), trimFloat(e.Weight))
	}

	return b.String()
}

// renderList prints one adjacency row per node, neighbors in edge-insertion
// order.
func renderList(g *core.Graph, list map[string][]adjacency.Neighbor) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("adjacency list:") + "\n")
	for _, n := range g.Nodes() { // node-insertion order, maps are unordered
		b.WriteString("  " + styleID.Render(n.ID) + " ->")
		for _, nb := range list[n.ID] {
			fmt.Fprintf(&b, " %s(%s)", nb.ID, trimFloat(nb.Weight))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderMatrix prints the weight matrix with a node-ID header row/column and
// the infinity glyph for absent paths.
func renderMatrix(m *adjacency.Matrix) string {
	width := 3
	for _, id := range m.Order {
		if len(id) >= width {
			width = len(id) + 1
		}
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("adjacency matrix:") + "\n")

	b.WriteString(strings.Repeat(" ", width+2))
	for _, id := range m.Order {
		fmt.Fprintf(&b, "%*s", width, id)
	}
	b.WriteString("\n")

	for i, id := range m.Order {
		fmt.Fprintf(&b, "  %*s", width, id)
		for j := range m.Order {
			v, err := m.Data.At(i, j)
			if err != nil {
				return b.String()
			}
			fmt.Fprintf(&b, "%*s", width, cell(v))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderOrder joins a visit sequence or path with arrows.
func renderOrder(ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = styleID.Render(id)
	}

	return strings.Join(parts, " -> ")
}

func cell(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}

	return trimFloat(v)
}

// trimFloat renders a float without trailing zero noise: 5 not 5.000000.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
