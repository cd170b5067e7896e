package ops

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func run(lines ...string) *Report {
	program := lo.Must(ParseArgs(lines))
	return lo.Must(NewMachine(0).Run("test", program))
}

func TestParseLine(t *testing.T) {
	Convey("ParseLine", t, func() {
		Convey("Skips blanks and comments", func() {
			for _, text := range []string{"", "   ", "# a comment"} {
				in, err := ParseLine(1, text)
				So(err, ShouldBeNil)
				So(in.IsAbsent(), ShouldBeTrue)
			}
		})

		Convey("Normalizes case and aliases", func() {
			in, err := ParseLine(3, "  PEEK ")
			So(err, ShouldBeNil)
			So(in.MustGet().Op, ShouldEqual, "top")
			So(in.MustGet().Line, ShouldEqual, 3)
		})

		Convey("Keeps arguments", func() {
			in, err := ParseLine(1, "push a b c")
			So(err, ShouldBeNil)
			So(in.MustGet().Args, ShouldResemble, []string{"a", "b", "c"})
			So(in.MustGet().String(), ShouldEqual, "push a b c")
		})

		Convey("Suggests the closest op for unknown names", func() {
			_, err := ParseLine(2, "popp")
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `did you mean "pop"`)
			So(err.Error(), ShouldStartWith, "line 2:")
		})

		Convey("Checks arity", func() {
			for _, text := range []string{"push", "set", "set a b", "pop x", "reserve"} {
				_, err := ParseLine(1, text)
				So(errors.Is(err, ErrArgument), ShouldBeTrue)
			}
		})

		Convey("Validates reserve counts", func() {
			_, err := ParseLine(1, "reserve -2")
			So(errors.Is(err, ErrArgument), ShouldBeTrue)
			_, err = ParseLine(1, "reserve lots")
			So(errors.Is(err, ErrArgument), ShouldBeTrue)
			_, err = ParseLine(1, "reserve 8")
			So(err, ShouldBeNil)
		})

		Convey("Rejects reserve counts storage cannot grow by", func() {
			for _, text := range []string{"reserve 9223372036854775807", "reserve " + strconv.Itoa(MaxReserve+1)} {
				_, err := ParseLine(1, text)
				So(errors.Is(err, ErrArgument), ShouldBeTrue)
			}

			in, err := ParseLine(1, "reserve "+strconv.Itoa(MaxReserve))
			So(err, ShouldBeNil)
			So(in.IsPresent(), ShouldBeTrue)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Numbers instructions by source line", func() {
			program, err := Parse(strings.NewReader("push 1\n\n# note\npop\n"))
			So(err, ShouldBeNil)
			So(len(program), ShouldEqual, 2)
			So(program[1].Line, ShouldEqual, 4)
		})

		Convey("Reports every malformed line", func() {
			_, err := Parse(strings.NewReader("pusj 1\npop\nset\n"))
			So(err, ShouldNotBeNil)
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(errors.Is(err, ErrArgument), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "line 3:")
		})
	})
}

func TestInstructionFlags(t *testing.T) {
	Convey("Instruction flags", t, func() {
		So((&Instruction{Op: "pop!"}).Unchecked(), ShouldBeTrue)
		So((&Instruction{Op: "pop"}).Unchecked(), ShouldBeFalse)
		So((&Instruction{Op: "len"}).Mutates(), ShouldBeFalse)
		So((&Instruction{Op: "swap"}).Mutates(), ShouldBeTrue)
		So((&Instruction{Op: "nope"}).Mutates(), ShouldBeFalse)
	})
}

func TestMachine(t *testing.T) {
	Convey("Given a machine", t, func() {
		Convey("Pops return values in reverse push order", func() {
			r := run("push 1 2 3", "pop", "pop", "pop", "pop")
			So(r.Steps[1].Result, ShouldEqual, "3")
			So(r.Steps[2].Result, ShouldEqual, "2")
			So(r.Steps[3].Result, ShouldEqual, "1")
			So(r.Steps[4].Absent, ShouldBeTrue)
			So(r.Final, ShouldBeEmpty)
		})

		Convey("Records top to bottom snapshots", func() {
			r := run("push a", "push b")
			So(r.Steps[1].Stack, ShouldResemble, []string{"b", "a"})
			So(r.Final, ShouldResemble, []string{"b", "a"})
		})

		Convey("Top leaves the stack untouched", func() {
			r := run("top", "push x", "top", "len")
			So(r.Steps[0].Absent, ShouldBeTrue)
			So(r.Steps[2].Result, ShouldEqual, "x")
			So(r.Steps[3].Result, ShouldEqual, "1")
		})

		Convey("Set replaces the top in place", func() {
			r := run("set z", "push a b", "set c", "print")
			So(r.Steps[0].Absent, ShouldBeTrue)
			So(r.Steps[2].Result, ShouldEqual, "b")
			So(r.Steps[3].Result, ShouldEqual, "[c a]")
		})

		Convey("Swap exchanges with the alternate stack", func() {
			r := run("push 1 2", "swap", "push 9 8", "swap")
			So(r.Steps[1].Stack, ShouldBeEmpty)
			So(r.Steps[1].Alt, ShouldResemble, []string{"2", "1"})
			So(r.Final, ShouldResemble, []string{"2", "1"})
			So(r.Steps[3].Alt, ShouldResemble, []string{"8", "9"})
		})

		Convey("Drain consumes top to bottom", func() {
			r := run("push a b c", "drain", "empty")
			So(r.Steps[1].Result, ShouldEqual, "[c b a]")
			So(r.Steps[1].Stack, ShouldBeEmpty)
			So(r.Steps[2].Result, ShouldEqual, "true")
		})

		Convey("Clear, reserve and dup", func() {
			r := run("reserve 16", "cap", "dup", "push q", "dup", "len", "clear", "empty")
			So(lo.Must(strconv.Atoi(r.Steps[1].Result)), ShouldBeGreaterThanOrEqualTo, 16)
			So(r.Steps[2].Absent, ShouldBeTrue)
			So(r.Steps[4].Result, ShouldEqual, "q")
			So(r.Steps[5].Result, ShouldEqual, "2")
			So(r.Steps[7].Result, ShouldEqual, "true")
		})

		Convey("Unchecked ops succeed on a non-empty stack", func() {
			r := run("push a", "top!", "set! b", "pop!")
			So(r.Steps[1].Result, ShouldEqual, "a")
			So(r.Steps[2].Result, ShouldEqual, "a")
			So(r.Steps[3].Result, ShouldEqual, "b")
		})

		Convey("Unchecked ops abort on an empty stack", func() {
			m := NewMachine(0)
			in := lo.Must(ParseLine(1, "pop!")).MustGet()
			So(func() { _, _ = m.Exec(in) }, ShouldPanicWith, "stack: called MustPop on an empty stack")
		})

		Convey("Check refuses unchecked ops on an empty stack", func() {
			m := NewMachine(0)
			in := lo.Must(ParseLine(1, "top!")).MustGet()
			So(errors.Is(m.Check(in), ErrEmptyStack), ShouldBeTrue)

			m.Main.Push("x")
			So(m.Check(in), ShouldBeNil)
		})

		Convey("Exec rejects hand-built oversized reserves without panicking", func() {
			m := NewMachine(0)
			for _, in := range []*Instruction{
				{Line: 1, Op: "reserve", Args: []string{"9223372036854775807"}},
				{Line: 2, Op: "reserve"},
			} {
				So(func() {
					_, err := m.Exec(in)
					So(errors.Is(err, ErrArgument), ShouldBeTrue)
				}, ShouldNotPanic)
			}
		})

		Convey("NewMachine clamps the initial capacity", func() {
			So(func() { NewMachine(math.MaxInt) }, ShouldNotPanic)
		})

		Convey("Exec rejects hand-built unknown instructions", func() {
			_, err := NewMachine(0).Exec(&Instruction{Line: 1, Op: "rot"})
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
		})

		Convey("Clone is independent", func() {
			m := NewMachine(0)
			m.Main.Push("a")
			c := m.Clone()
			c.Main.Push("b")
			So(m.Main.Len(), ShouldEqual, 1)
			So(c.Main.Len(), ShouldEqual, 2)
		})
	})
}

func TestDescribe(t *testing.T) {
	Convey("Describe covers every op in sorted order", t, func() {
		infos := Describe()
		So(len(infos), ShouldEqual, len(Ops()))
		So(infos[0].Name, ShouldEqual, Ops()[0])
		for _, info := range infos {
			So(info.Description, ShouldNotBeEmpty)
		}
		So(Listing(40), ShouldContainSubstring, "push <value...>")
	})
}

func TestPretty(t *testing.T) {
	Convey("Pretty output mentions results and the final stack", t, func() {
		r := run("push 1 2", "pop", "pop", "pop")
		out := r.Pretty()
		So(out, ShouldContainSubstring, "= 2")
		So(out, ShouldContainSubstring, "(none)")
		So(out, ShouldContainSubstring, "final")
	})
}
