package ops

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dsakit/dsakit/log"
	"github.com/dsakit/dsakit/structures/stack"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrEmptyStack is returned by Check for unchecked instructions that would abort on an empty stack.
var ErrEmptyStack = errors.New("stack is empty")

// Step records the outcome of one executed instruction.
type Step struct {
	Line   int      `json:"line" jsonschema:"description=1-based source line of the instruction."`
	Op     string   `json:"op" jsonschema:"description=Canonical op name."`
	Arg    string   `json:"arg,omitempty" jsonschema:"description=Instruction arguments joined by spaces."`
	Result string   `json:"result,omitempty" jsonschema:"description=Value produced by the op, if any."`
	Absent bool     `json:"absent,omitempty" jsonschema:"description=Set when a safe accessor found the stack empty."`
	Stack  []string `json:"stack" jsonschema:"description=Main stack after execution, from top to bottom."`
	Alt    []string `json:"alt" jsonschema:"description=Alternate stack after execution, from top to bottom."`
}

// Report is the structured output of a whole program run.
type Report struct {
	Source string   `json:"source" jsonschema:"description=Name of the program: a file stem, stdin or eval."`
	Steps  []*Step  `json:"steps"`
	Final  []string `json:"final" jsonschema:"description=Main stack after the last step, from top to bottom."`
}

// Machine executes instructions against a main stack and an alternate stack used by swap.
type Machine struct {
	Main *stack.Stack[string]
	Alt  *stack.Stack[string]
}

// NewMachine returns a machine whose main stack reserves capacity values up front.
// Capacity is clamped to MaxReserve; callers taking it from users should ValidateCapacity first.
func NewMachine(capacity int) *Machine {
	return &Machine{
		Main: stack.WithCapacity[string](min(capacity, MaxReserve)),
		Alt:  stack.New[string](),
	}
}

// Clone returns an independent copy of both stacks.
func (m *Machine) Clone() *Machine {
	return &Machine{Main: m.Main.Clone(), Alt: m.Alt.Clone()}
}

// Check reports ErrEmptyStack for an unchecked instruction on an empty main stack.
// Interactive front ends call it so that misuse is refused instead of aborting the process.
func (m *Machine) Check(in *Instruction) error {
	if in.Unchecked() && m.Main.IsEmpty() {
		return fmt.Errorf("%s: %w", in.Op, ErrEmptyStack)
	}
	return nil
}

func optional(step *Step, value mo.Option[string]) {
	if v, ok := value.Get(); ok {
		step.Result = v
		return
	}
	step.Absent = true
}

func snapshot(s *stack.Stack[string]) []string {
	if s.IsEmpty() {
		return []string{}
	}
	return s.Slice()
}

// Exec runs a single instruction. Unchecked ops on an empty stack panic.
func (m *Machine) Exec(in *Instruction) (*Step, error) {
	step := &Step{Line: in.Line, Op: in.Op, Arg: strings.Join(in.Args, " ")}

	switch in.Op {
	case opPush:
		for _, arg := range in.Args {
			m.Main.Push(arg)
		}
	case opPop:
		optional(step, m.Main.Pop())
	case opPopUnchecked:
		step.Result = m.Main.MustPop()
	case opTop, opPeek:
		optional(step, m.Main.Top())
	case opTopUnchecked:
		step.Result = m.Main.MustTop()
	case opSet:
		if top, ok := m.Main.TopMut().Get(); ok {
			step.Result = *top
			*top = in.Args[0]
		} else {
			step.Absent = true
		}
	case opSetUnchecked:
		top := m.Main.MustTopMut()
		step.Result = *top
		*top = in.Args[0]
	case opLen:
		step.Result = strconv.Itoa(m.Main.Len())
	case opCap:
		step.Result = strconv.Itoa(m.Main.Cap())
	case opEmpty:
		step.Result = strconv.FormatBool(m.Main.IsEmpty())
	case opClear:
		m.Main.Clear()
	case opSwap:
		m.Main.Swap(m.Alt)
	case opReserve:
		if err := validateCount(in.Args); err != nil {
			return nil, fmt.Errorf("line %d: %w: %s", in.Line, ErrArgument, err)
		}
		m.Main.Reserve(lo.Must(strconv.Atoi(in.Args[0])))
	case opDup:
		top := m.Main.Top()
		optional(step, top)
		if v, ok := top.Get(); ok {
			m.Main.Push(v)
		}
	case opPrint:
		step.Result = m.Main.String()
	case opDrain:
		drained := m.Main
		m.Main = stack.New[string]()
		step.Result = fmt.Sprint(slices.Collect(drained.Drain()))
	default:
		return nil, fmt.Errorf("line %d: %w %q", in.Line, ErrUnknownOp, in.Op)
	}

	step.Stack = snapshot(m.Main)
	step.Alt = snapshot(m.Alt)

	log.Fields(map[string]any{
		"line":   step.Line,
		"op":     step.Op,
		"result": step.Result,
		"absent": step.Absent,
		"len":    m.Main.Len(),
	}, "executed instruction")

	return step, nil
}

// Run executes program in order and collects every step into a report.
func (m *Machine) Run(source string, program []*Instruction) (*Report, error) {
	report := &Report{Source: source, Steps: make([]*Step, 0, len(program))}

	for _, in := range program {
		step, err := m.Exec(in)
		if err != nil {
			log.Errorf("%s: %s", source, err)
			return nil, err
		}
		report.Steps = append(report.Steps, step)
	}

	report.Final = snapshot(m.Main)
	log.Infof("%s: executed %d instructions", source, len(report.Steps))
	return report, nil
}
