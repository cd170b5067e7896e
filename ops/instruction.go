// Package ops implements a line-oriented stack machine that drives stack.Stack through textual instructions.
package ops

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var (
	// ErrUnknownOp is returned for instructions whose op name is not recognized.
	ErrUnknownOp = errors.New("unknown op")
	// ErrArgument is returned when an instruction has missing, extra or malformed arguments.
	ErrArgument = errors.New("invalid argument")
)

// MaxReserve bounds reserve counts and initial capacities so that growing storage cannot overflow.
const MaxReserve = 1 << 20

// ValidateCapacity reports an ErrArgument for counts outside [0, MaxReserve].
func ValidateCapacity(n int) error {
	if n < 0 || n > MaxReserve {
		return fmt.Errorf("%w: %d is outside 0..%d", ErrArgument, n, MaxReserve)
	}
	return nil
}

// Instruction is a single parsed line of a program.
type Instruction struct {
	Line int
	Op   string
	Args []string
}

// Unchecked reports whether the instruction uses a Must* accessor that panics on an empty stack.
func (in *Instruction) Unchecked() bool {
	def, ok := table[in.Op]
	return ok && def.unchecked
}

// Mutates reports whether executing the instruction may change either stack.
func (in *Instruction) Mutates() bool {
	def, ok := table[in.Op]
	return ok && def.mutates
}

func (in *Instruction) String() string {
	return strings.TrimSpace(in.Op + " " + strings.Join(in.Args, " "))
}

type opDef struct {
	usage       string
	description string
	minArgs     int
	maxArgs     int // negative means unbounded
	unchecked   bool
	mutates     bool
	validate    func(args []string) error
}

const (
	opPush         = "push"
	opPop          = "pop"
	opPopUnchecked = "pop!"
	opTop          = "top"
	opPeek         = "peek"
	opTopUnchecked = "top!"
	opSet          = "set"
	opSetUnchecked = "set!"
	opLen          = "len"
	opCap          = "cap"
	opEmpty        = "empty"
	opClear        = "clear"
	opSwap         = "swap"
	opReserve      = "reserve"
	opDup          = "dup"
	opPrint        = "print"
	opDrain        = "drain"
)

const (
	commentPrefix = "#"
	unboundedArgs = -1
)

var table = map[string]opDef{
	opPush:         {usage: "push <value...>", description: "Push each value in order; the last one ends on top", minArgs: 1, maxArgs: unboundedArgs, mutates: true},
	opPop:          {usage: "pop", description: "Remove and print the top value, or nothing when empty", mutates: true},
	opPopUnchecked: {usage: "pop!", description: "Remove and print the top value; aborts on an empty stack", unchecked: true, mutates: true},
	opTop:          {usage: "top", description: "Print the top value without removing it, or nothing when empty"},
	opPeek:         {usage: "peek", description: "Alias for top"},
	opTopUnchecked: {usage: "top!", description: "Print the top value; aborts on an empty stack", unchecked: true},
	opSet:          {usage: "set <value>", description: "Replace the top value in place and print the previous one", minArgs: 1, maxArgs: 1, mutates: true},
	opSetUnchecked: {usage: "set! <value>", description: "Replace the top value in place; aborts on an empty stack", minArgs: 1, maxArgs: 1, unchecked: true, mutates: true},
	opLen:          {usage: "len", description: "Print the number of values"},
	opCap:          {usage: "cap", description: "Print the allocated capacity"},
	opEmpty:        {usage: "empty", description: "Print whether the stack is empty"},
	opClear:        {usage: "clear", description: "Remove every value, keeping the storage", mutates: true},
	opSwap:         {usage: "swap", description: "Exchange the main stack with the alternate stack", mutates: true},
	opReserve:      {usage: "reserve <n>", description: "Make room for n more values without reallocating", minArgs: 1, maxArgs: 1, mutates: true, validate: validateCount},
	opDup:          {usage: "dup", description: "Push a copy of the top value", mutates: true},
	opPrint:        {usage: "print", description: "Print the stack from top to bottom"},
	opDrain:        {usage: "drain", description: "Consume the stack, printing values from top to bottom", mutates: true},
}

func validateCount(args []string) error {
	if len(args) != 1 {
		return errors.New("expected a single count")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%q is not a non-negative integer", args[0])
	}
	if n > MaxReserve {
		return fmt.Errorf("%d exceeds the limit of %d", n, MaxReserve)
	}
	return nil
}

// Ops returns the sorted names of every known op.
func Ops() []string {
	names := lo.Keys(table)
	sort.Strings(names)
	return names
}

// Info describes an op for listings and completions.
type Info struct {
	Name        string
	Usage       string
	Description string
}

// Describe returns every op's usage and description, sorted by name.
func Describe() []Info {
	return lo.Map(Ops(), func(name string, _ int) Info {
		def := table[name]
		return Info{Name: name, Usage: def.usage, Description: def.description}
	})
}

func closest(op string) string {
	return lo.MinBy(Ops(), func(a, b string) bool {
		return levenshtein.Distance(op, a) < levenshtein.Distance(op, b)
	})
}

// ParseLine parses one line of a program. Blank lines and comments yield None.
func ParseLine(line int, text string) (mo.Option[*Instruction], error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, commentPrefix) {
		return mo.None[*Instruction](), nil
	}

	fields := strings.Fields(text)
	op := strings.ToLower(fields[0])
	args := fields[1:]

	def, ok := table[op]
	if !ok {
		return mo.None[*Instruction](), fmt.Errorf("line %d: %w %q, did you mean %q?", line, ErrUnknownOp, op, closest(op))
	}

	if len(args) < def.minArgs || (def.maxArgs != unboundedArgs && len(args) > def.maxArgs) {
		return mo.None[*Instruction](), fmt.Errorf("line %d: %w: usage is %q", line, ErrArgument, def.usage)
	}

	if def.validate != nil {
		if err := def.validate(args); err != nil {
			return mo.None[*Instruction](), fmt.Errorf("line %d: %w: %s", line, ErrArgument, err)
		}
	}

	if op == opPeek {
		op = opTop
	}

	return mo.Some(&Instruction{Line: line, Op: op, Args: args}), nil
}

// Parse reads a whole program, one instruction per line.
// Every malformed line is reported; the returned error joins them.
func Parse(r io.Reader) ([]*Instruction, error) {
	var (
		program []*Instruction
		errs    []error
		line    int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		parsed, err := ParseLine(line, scanner.Text())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if in, ok := parsed.Get(); ok {
			program = append(program, in)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return program, nil
}

// ParseArgs parses each argument as one instruction line, numbering lines from 1.
func ParseArgs(lines []string) ([]*Instruction, error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n")))
}
