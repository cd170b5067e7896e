package style

import "github.com/charmbracelet/lipgloss"

// Palette used by the TUI stack panes.
var (
	Overlay  = lipgloss.Color("#6c7086")
	Surface  = lipgloss.Color("#313244")
	Mauve    = lipgloss.Color("#cba6f7")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor    = Mauve
	SecondaryColor = Lavender
	FaintColor     = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)

// Pane returns a rounded, padded box for a stack column. The active pane gets the accent border.
func Pane(active bool) lipgloss.Style {
	border := BorderColor
	if active {
		border = ActiveBorderColor
	}

	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
