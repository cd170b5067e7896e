package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	exec, undo, complete, quit key.Binding
}

func newKeymap() *keymap {
	return &keymap{
		exec: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.exec, k.complete, k.undo, k.quit}
}

// FullHelp implements help.KeyMap.
func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
