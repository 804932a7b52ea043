package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/graphmetrics/pkg/algorithms"
)

// Styles for the optional top-N summary table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	tableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)
)

// printTopTable renders the top-ranked nodes for one metric to stdout.
func printTopTable(metric string, top []algorithms.RankedNode) {
	if len(top) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s  %12s", "node", "score")))
	for _, rn := range top {
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(fmt.Sprintf("%8d  %12.6f", rn.NodeID, rn.Score)))
	}

	fmt.Println(titleStyle.Render("top " + metric))
	fmt.Println(tableStyle.Render(b.String()))
}
