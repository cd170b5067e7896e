package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/history"
	"github.com/dsakit/dsakit/icon"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/log"
	"github.com/dsakit/dsakit/ops"
	"github.com/dsakit/dsakit/style"
	"github.com/dsakit/dsakit/util"
	"github.com/lithammer/fuzzysearch/fuzzy"
	reflowtruncate "github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type state int

const (
	inputState state = iota + 1
	helpState
	resetState
	quitState
)

// commands understood by the prompt itself rather than the machine
const (
	cmdQuit  = "quit"
	cmdExit  = "exit"
	cmdHelp  = "help"
	cmdReset = "reset"
)

func (m *mini) handleInputState() error {
	var response string
	err := survey.AskOne(&survey.Input{
		Message: strings.TrimSpace(viper.GetString(key.TUIPrompt)),
		Help:    "type an instruction, or help, reset, quit",
		Suggest: suggest,
	}, &response)

	if errors.Is(err, terminal.InterruptErr) {
		m.newState(quitState)
		return nil
	}
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case cmdQuit, cmdExit:
		m.newState(quitState)
		return nil
	case cmdHelp:
		m.newState(helpState)
		return nil
	case cmdReset:
		m.newState(resetState)
		return nil
	}

	step, err := m.execute(response)
	if err != nil {
		fmt.Println(style.Fg(color.Red)(icon.Get(icon.Fail) + " " + err.Error()))
		return nil
	}

	if s, ok := step.Get(); ok {
		fmt.Println(truncate(s.Pretty()))
	}

	return nil
}

func (m *mini) handleHelpState() error {
	fmt.Println(ops.Listing(util.Min(truncateAt, 80)))
	m.previousState()
	return nil
}

func (m *mini) handleResetState() error {
	util.ClearScreen()
	m.machine = ops.NewMachine(m.machine.Main.Cap())
	m.line = 0
	m.previousState()
	return nil
}

// execute parses and runs one line. Unchecked ops on an empty stack are refused rather than aborting.
func (m *mini) execute(text string) (mo.Option[*ops.Step], error) {
	m.line++

	parsed, err := ops.ParseLine(m.line, text)
	if err != nil {
		return mo.None[*ops.Step](), err
	}

	in, ok := parsed.Get()
	if !ok {
		return mo.None[*ops.Step](), nil
	}

	if err := m.machine.Check(in); err != nil {
		return mo.None[*ops.Step](), err
	}

	step, err := m.machine.Exec(in)
	if err != nil {
		return mo.None[*ops.Step](), err
	}

	if err := history.Remember(in.String(), 1); err != nil {
		log.Warnf("history: %s", err)
	}

	return mo.Some(step), nil
}

// suggest completes op names for the first word and remembered lines otherwise.
func suggest(toComplete string) []string {
	suggestions := history.SuggestMany(toComplete)

	if fields := strings.Fields(toComplete); len(fields) <= 1 && !strings.HasSuffix(toComplete, " ") {
		word := strings.ToLower(strings.TrimSpace(toComplete))
		names := lo.Filter(ops.Ops(), func(name string, _ int) bool {
			return strings.HasPrefix(name, word)
		})
		if len(names) == 0 {
			names = fuzzy.Find(word, ops.Ops())
		}
		suggestions = append(suggestions, names...)
	}

	return lo.Uniq(suggestions)
}

func truncate(s string) string {
	if truncateAt <= 0 {
		return s
	}
	return reflowtruncate.StringWithTail(s, uint(truncateAt), "…")
}
