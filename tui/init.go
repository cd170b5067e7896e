package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the cursor blink.
func (b *bubble) Init() tea.Cmd {
	return textinput.Blink
}
