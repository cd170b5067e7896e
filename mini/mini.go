// Package mini implements a line-oriented prompt for the stack machine, for terminals where the full TUI is unwanted.
package mini

import (
	"github.com/dsakit/dsakit/ops"
	"github.com/dsakit/dsakit/structures/stack"
	"github.com/dsakit/dsakit/util"
)

var truncateAt = 100

type Options struct {
	// Capacity is reserved up front in the main stack.
	Capacity int
}

type mini struct {
	width, height int

	state         state
	statesHistory *stack.Stack[state]

	machine *ops.Machine
	line    int
}

func newMini(options *Options) *mini {
	return &mini{
		state:         inputState,
		statesHistory: stack.New[state](),
		machine:       ops.NewMachine(options.Capacity),
	}
}

func (m *mini) previousState() {
	if s, ok := m.statesHistory.Pop().Get(); ok {
		m.setState(s)
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// Run prompts for instructions until the user quits.
func Run(options *Options) error {
	m := newMini(options)

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case inputState:
		return m.handleInputState()
	case helpState:
		return m.handleHelpState()
	case resetState:
		return m.handleResetState()
	}

	return nil
}
