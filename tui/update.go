package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsakit/dsakit/history"
	"github.com/dsakit/dsakit/log"
	"github.com/dsakit/dsakit/ops"
	"github.com/samber/mo"
)

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.undo):
			b.rollback()
			return b, nil
		case key.Matches(msg, b.keymap.complete):
			b.complete()
			return b, nil
		case key.Matches(msg, b.keymap.exec):
			b.submit()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.suggestion = history.Suggest(b.inputC.Value())
	return b, cmd
}

func (b *bubble) complete() {
	suggestion, ok := b.suggestion.Get()
	if !ok {
		return
	}

	b.inputC.SetValue(suggestion)
	b.inputC.CursorEnd()
	b.suggestion = mo.None[string]()
}

func (b *bubble) submit() {
	text := b.inputC.Value()
	b.inputC.Reset()
	b.suggestion = mo.None[string]()
	b.line++

	parsed, err := ops.ParseLine(b.line, text)
	if err != nil {
		b.fail(err)
		return
	}

	in, ok := parsed.Get()
	if !ok {
		return
	}

	if err := b.machine.Check(in); err != nil {
		b.fail(err)
		return
	}

	before := mo.None[*ops.Machine]()
	if in.Mutates() {
		before = mo.Some(b.machine.Clone())
	}

	step, err := b.machine.Exec(in)
	if err != nil {
		b.fail(err)
		return
	}

	if snapshot, ok := before.Get(); ok {
		b.checkpoint(snapshot)
	}

	b.lastStep = mo.Some(step)
	b.lastError = nil

	if err := history.Remember(in.String(), 1); err != nil {
		log.Warnf("history: %s", err)
	}
}
