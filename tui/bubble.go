package tui

import (
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/ops"
	"github.com/dsakit/dsakit/structures/stack"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

var errNothingToUndo = errors.New("nothing to undo")

type bubble struct {
	machine   *ops.Machine
	undo      *stack.Stack[*ops.Machine]
	undoLimit int
	showAlt   bool

	keymap *keymap
	inputC textinput.Model
	helpC  help.Model

	// line numbers instructions the way a script would
	line       int
	lastStep   mo.Option[*ops.Step]
	lastError  error
	suggestion mo.Option[string]

	width, height int
}

func newBubble(options *Options) *bubble {
	input := textinput.New()
	input.Prompt = viper.GetString(key.TUIPrompt)
	input.Placeholder = "push 1 2 3"
	input.Focus()

	return &bubble{
		machine:   ops.NewMachine(options.Capacity),
		undo:      stack.New[*ops.Machine](),
		undoLimit: max(viper.GetInt(key.TUIUndoLimit), 1),
		showAlt:   viper.GetBool(key.TUIShowAlt),
		keymap:    newKeymap(),
		inputC:    input,
		helpC:     help.New(),
	}
}

func (b *bubble) fail(err error) {
	b.lastError = err
	b.lastStep = mo.None[*ops.Step]()
}

// checkpoint saves a snapshot on the undo stack, dropping the oldest one past the limit.
func (b *bubble) checkpoint(snapshot *ops.Machine) {
	b.undo.Push(snapshot)
	if b.undo.Len() <= b.undoLimit {
		return
	}

	kept := b.undo.Slice()[:b.undoLimit]
	slices.Reverse(kept)
	b.undo = stack.From(kept)
}

func (b *bubble) rollback() {
	previous, ok := b.undo.Pop().Get()
	if !ok {
		b.fail(errNothingToUndo)
		return
	}

	b.machine = previous
	b.lastStep = mo.None[*ops.Step]()
	b.lastError = nil
}

func (b *bubble) resize(width, height int) {
	b.width, b.height = width, height
	b.inputC.Width = max(width-len(b.inputC.Prompt)-2, 10)
	b.helpC.Width = width
}
