// Package color provides the palette used by styled CLI and TUI output.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// High-intensity colors used for headings and the top-of-stack marker.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Hex-defined accent colors.
var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)
