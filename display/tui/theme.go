package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the demo chrome. The chart itself uses plain 16-color
// SGR escapes; lipgloss only styles the title bar and footer around it.
const (
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorMuted     = lipgloss.Color("#6B7280") // Gray
)

// Styles used by the demo views.
var (
	styleHeader lipgloss.Style
	styleFooter lipgloss.Style
	styleTitle  lipgloss.Style
)

func init() {
	styleHeader = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorMuted)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary)
}
