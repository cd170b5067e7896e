package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/icon"
	"github.com/dsakit/dsakit/structures/stack"
	"github.com/dsakit/dsakit/style"
	"github.com/dsakit/dsakit/util"
	"github.com/muesli/reflow/wrap"
)

const columnGap = 2

var paddingStyle = style.New().Padding(1, 2)

func (b *bubble) View() string {
	sections := []string{
		style.Title(constant.Dsakit),
		b.viewStacks(),
		b.viewOutcome(),
		b.inputC.View(),
	}

	if suggestion, ok := b.suggestion.Get(); ok && suggestion != b.inputC.Value() {
		sections = append(sections, style.Faint("tab: "+suggestion))
	}

	sections = append(sections, b.helpC.View(b.keymap))
	return paddingStyle.Render(strings.Join(sections, "\n\n"))
}

func (b *bubble) columnWidth() int {
	if b.width == 0 {
		return 30
	}

	columns := 1
	if b.showAlt {
		columns = 2
	}

	// outer padding plus the pane border and padding
	return util.Max((b.width-4)/columns-columnGap-4, 8)
}

func (b *bubble) viewStacks() string {
	primary := style.Pane(true).Render(b.viewStack("main", b.machine.Main))
	if !b.showAlt {
		return primary
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		primary,
		strings.Repeat(" ", columnGap),
		style.Pane(false).Render(b.viewStack("alt", b.machine.Alt)),
	)
}

func (b *bubble) viewStack(name string, s *stack.Stack[string]) string {
	var lines []string
	lines = append(lines, style.Fg(style.SecondaryColor)(style.Bold(name))+" "+style.Faint(fmt.Sprintf("len %d cap %d", s.Len(), s.Cap())))

	if s.IsEmpty() {
		lines = append(lines, style.Faint(icon.Get(icon.Empty)+" empty"))
		return strings.Join(lines, "\n")
	}

	width := b.columnWidth()
	for depth, value := range s.Backward() {
		marker := "  "
		if depth == 0 {
			marker = style.Fg(style.AccentColor)(icon.Get(icon.Top)) + " "
		}

		lines = append(lines, marker+wrap.String(value, width))
	}

	return strings.Join(lines, "\n")
}

func (b *bubble) viewOutcome() string {
	if b.lastError != nil {
		return style.ErrorTitle("error") + " " + style.Fg(color.Red)(b.lastError.Error())
	}

	step, ok := b.lastStep.Get()
	if !ok {
		return style.Faint(util.Quantify(b.undo.Len(), "undo step", "undo steps"))
	}

	return step.Pretty()
}
