package ops

import (
	"fmt"
	"strings"

	"github.com/dsakit/dsakit/color"
	"github.com/dsakit/dsakit/icon"
	"github.com/dsakit/dsakit/style"
	"github.com/muesli/reflow/wordwrap"
)

// Pretty renders the step as a single styled line: the instruction, its result and the resulting stack.
func (s *Step) Pretty() string {
	var b strings.Builder

	b.WriteString(style.Faint(fmt.Sprintf("%3d", s.Line)))
	b.WriteString(" ")
	b.WriteString(style.Fg(color.Purple)(strings.TrimSpace(s.Op + " " + s.Arg)))

	switch {
	case s.Absent:
		b.WriteString(" " + style.Absent())
	case s.Result != "":
		b.WriteString(" " + style.Fg(color.Yellow)("= "+s.Result))
	}

	b.WriteString(" " + style.Faint(fmt.Sprint(s.Stack)))
	return b.String()
}

// Pretty renders the report's steps followed by the final stack.
func (r *Report) Pretty() string {
	var b strings.Builder
	for _, step := range r.Steps {
		b.WriteString(step.Pretty())
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %s %v", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold("final"), r.Final))
	return b.String()
}

// Listing renders every op with its usage and description wrapped to width columns.
func Listing(width int) string {
	var (
		b     strings.Builder
		infos = Describe()
	)
	for i, info := range infos {
		b.WriteString(style.Bold(style.Fg(color.Purple)(info.Usage)))
		b.WriteString("\n")
		b.WriteString(style.Faint(wordwrap.String("  "+info.Description, width)))
		if i < len(infos)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
