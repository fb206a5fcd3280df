package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1B5E20")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = blackCardStyle()

	EmptySlotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	FloatingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// blackCardStyle keeps black suits legible on dark terminals
func blackCardStyle() lipgloss.Style {
	colour := lipgloss.Color("#000000")
	if termenv.HasDarkBackground() {
		colour = lipgloss.Color("#FAFAFA")
	}
	return lipgloss.NewStyle().Foreground(colour).Bold(true)
}
