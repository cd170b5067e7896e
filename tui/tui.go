// Package tui provides the full-screen interactive stack machine.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Capacity is reserved up front in the main stack.
	Capacity int
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}
