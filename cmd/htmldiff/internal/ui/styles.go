// Package ui styles rendered difference lines for terminal output.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/htmldiff/htmldiff"
)

var (
	nodeTypeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	nodeNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	attributesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	textStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	notPresentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Render returns the one-line rendering of d, colored by kind unless color
// is disabled.
func Render(d htmldiff.Difference, color bool) string {
	line := d.String()
	if !color {
		return line
	}
	return styleFor(d.Kind).Render(line)
}

func styleFor(kind htmldiff.Kind) lipgloss.Style {
	switch kind {
	case htmldiff.NodeType:
		return nodeTypeStyle
	case htmldiff.NodeName:
		return nodeNameStyle
	case htmldiff.NodeAttributes:
		return attributesStyle
	case htmldiff.NodeText:
		return textStyle
	case htmldiff.NotPresent:
		return notPresentStyle
	}
	return lipgloss.NewStyle()
}
