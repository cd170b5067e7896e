package stack

import (
	"fmt"
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConstruction(t *testing.T) {
	Convey("Constructing a stack", t, func() {
		Convey("New is empty and unallocated", func() {
			s := New[int]()
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.Cap(), ShouldEqual, 0)
		})

		Convey("The zero value behaves like New", func() {
			var s Stack[int]
			So(Equal(&s, New[int]()), ShouldBeTrue)
			s.Push(1)
			So(s.MustTop(), ShouldEqual, 1)
		})

		Convey("WithCapacity reserves storage", func() {
			s := WithCapacity[string](10)
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Cap(), ShouldBeGreaterThanOrEqualTo, 10)

			So(WithCapacity[int](-3).Cap(), ShouldEqual, 0)
		})

		Convey("Of puts the last value on top", func() {
			s := Of(1, 2, 3)
			So(s.Len(), ShouldEqual, 3)
			So(s.MustTop(), ShouldEqual, 3)
			So(Equal(Of[int](), New[int]()), ShouldBeTrue)
		})

		Convey("Of does not alias a spread slice", func() {
			values := []int{1, 2}
			s := Of(values...)
			values[1] = 99
			So(s.MustTop(), ShouldEqual, 2)
		})

		Convey("From adopts the slice with its last element on top", func() {
			s := From([]string{"a", "b", "c"})
			So(s.MustTop(), ShouldEqual, "c")
			So(slices.Collect(s.Drain()), ShouldResemble, []string{"c", "b", "a"})
		})
	})
}

func TestPushPop(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		s := New[int]()

		Convey("Pops return values in reverse push order", func() {
			for i := 1; i <= 5; i++ {
				s.Push(i)
			}
			for i := 5; i >= 1; i-- {
				v, ok := s.Pop().Get()
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, i)
			}
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Push increments length and sets the top", func() {
			s.Push(10)
			So(s.Len(), ShouldEqual, 1)
			So(s.MustTop(), ShouldEqual, 10)
			s.Push(20)
			So(s.Len(), ShouldEqual, 2)
			So(s.MustTop(), ShouldEqual, 20)
		})

		Convey("Pop decrements length and returns the prior top", func() {
			s.Push(10)
			s.Push(20)
			So(s.Pop().MustGet(), ShouldEqual, 20)
			So(s.Len(), ShouldEqual, 1)
			So(s.MustPop(), ShouldEqual, 10)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Safe accessors report absence", func() {
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Top().IsAbsent(), ShouldBeTrue)
			So(s.TopMut().IsAbsent(), ShouldBeTrue)
		})

		Convey("Unchecked accessors panic naming the operation", func() {
			So(func() { s.MustPop() }, ShouldPanicWith, "stack: called MustPop on an empty stack")
			So(func() { s.MustTop() }, ShouldPanicWith, "stack: called MustTop on an empty stack")
			So(func() { s.MustTopMut() }, ShouldPanicWith, "stack: called MustTopMut on an empty stack")
		})

		Convey("IsEmpty tracks Len", func() {
			So(s.IsEmpty(), ShouldEqual, s.Len() == 0)
			s.Push(1)
			So(s.IsEmpty(), ShouldEqual, s.Len() == 0)
		})
	})
}

func TestPopReleasesSlot(t *testing.T) {
	Convey("Popping zeroes the vacated slot", t, func() {
		a, b := new(int), new(int)
		s := Of(a, b)
		backing := s.items[:2]

		So(s.MustPop(), ShouldEqual, b)
		So(backing[1], ShouldBeNil)
	})
}

func TestTopMut(t *testing.T) {
	Convey("Mutating the top in place", t, func() {
		s := WithCapacity[int](4)
		s.Push(1)
		s.Push(10)

		*s.MustTopMut() += 5
		So(s.MustTop(), ShouldEqual, 15)

		if top, ok := s.TopMut().Get(); ok {
			*top *= 2
		}
		So(s.MustTop(), ShouldEqual, 30)
		So(s.Slice(), ShouldResemble, []int{30, 1})
	})
}

func TestClearAndSwap(t *testing.T) {
	Convey("Clear", t, func() {
		s := Of(1, 2, 3)
		capacity := s.Cap()
		s.Clear()
		So(s.IsEmpty(), ShouldBeTrue)
		So(s.Len(), ShouldEqual, 0)
		So(s.Cap(), ShouldEqual, capacity)
		So(s.Top().IsAbsent(), ShouldBeTrue)
	})

	Convey("Swap exchanges contents", t, func() {
		a := Of(1, 2)
		b := Of(9, 8, 7)

		a.Swap(b)

		So(a.MustTop(), ShouldEqual, 7)
		So(b.MustTop(), ShouldEqual, 2)
		So(a.Len(), ShouldEqual, 3)
		So(b.Len(), ShouldEqual, 2)
	})

	Convey("Swap exchanges storage without copying", t, func() {
		a := WithCapacity[int](32)
		b := New[int]()
		b.Push(1)

		a.Swap(b)

		So(a.MustTop(), ShouldEqual, 1)
		So(b.IsEmpty(), ShouldBeTrue)
		So(b.Cap(), ShouldBeGreaterThanOrEqualTo, 32)
	})
}

func TestIteration(t *testing.T) {
	Convey("Given a stack built from 1, 2, 3", t, func() {
		s := Of(1, 2, 3)

		Convey("All yields top to bottom and leaves the stack intact", func() {
			So(slices.Collect(s.All()), ShouldResemble, []int{3, 2, 1})
			So(s.Len(), ShouldEqual, 3)

			Convey("and restarts on every range", func() {
				So(slices.Collect(s.All()), ShouldResemble, []int{3, 2, 1})
			})
		})

		Convey("All stops when the consumer breaks", func() {
			var seen []int
			for v := range s.All() {
				seen = append(seen, v)
				if v == 2 {
					break
				}
			}
			So(seen, ShouldResemble, []int{3, 2})
		})

		Convey("Backward pairs each element with its depth", func() {
			var depths, values []int
			for depth, v := range s.Backward() {
				depths = append(depths, depth)
				values = append(values, v)
			}
			So(depths, ShouldResemble, []int{0, 1, 2})
			So(values, ShouldResemble, []int{3, 2, 1})
		})

		Convey("Drain yields top to bottom and consumes the stack", func() {
			seq := s.Drain()
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Cap(), ShouldEqual, 0)
			So(slices.Collect(seq), ShouldResemble, []int{3, 2, 1})

			Convey("and is one-shot", func() {
				So(slices.Collect(seq), ShouldBeEmpty)
			})
		})

		Convey("A partially consumed drain does not resume", func() {
			seq := s.Drain()
			for range seq {
				break
			}
			So(slices.Collect(seq), ShouldBeEmpty)
		})

		Convey("The drained stack can be refilled independently", func() {
			seq := s.Drain()
			s.Push(42)
			So(slices.Collect(seq), ShouldResemble, []int{3, 2, 1})
			So(s.Slice(), ShouldResemble, []int{42})
		})
	})
}

func TestReserveAndClone(t *testing.T) {
	Convey("Reserve grows capacity ahead of pushes", t, func() {
		s := Of(1)
		s.Reserve(100)
		So(s.Cap(), ShouldBeGreaterThanOrEqualTo, 101)
		So(s.Len(), ShouldEqual, 1)
	})

	Convey("Clone is independent of the original", t, func() {
		s := Of("a", "b")
		c := s.Clone()
		c.Push("c")
		*s.MustTopMut() = "z"

		So(s.Slice(), ShouldResemble, []string{"z", "a"})
		So(c.Slice(), ShouldResemble, []string{"c", "b", "a"})
	})
}

func TestFormatting(t *testing.T) {
	Convey("String renders top to bottom", t, func() {
		So(Of(1, 2, 3).String(), ShouldEqual, "[3 2 1]")
		So(New[int]().String(), ShouldEqual, "[]")
		So(Of("hello", "world").String(), ShouldEqual, "[world hello]")

		Convey("through fmt, for values and pointers", func() {
			s := Of(1, 2, 3)
			So(fmt.Sprint(s), ShouldEqual, "[3 2 1]")
			So(fmt.Sprint(*s), ShouldEqual, "[3 2 1]")
			So(fmt.Sprintf("%v|%s", *s, s), ShouldEqual, "[3 2 1]|[3 2 1]")

			var zero Stack[int]
			So(fmt.Sprint(zero), ShouldEqual, "[]")
		})
	})
}

func TestEqual(t *testing.T) {
	Convey("Equal", t, func() {
		So(Equal(Of(1, 2), Of(1, 2)), ShouldBeTrue)
		So(Equal(Of(1, 2), Of(2, 1)), ShouldBeFalse)
		So(Equal(Of(1), Of(1, 1)), ShouldBeFalse)
		So(Equal[int](nil, New[int]()), ShouldBeTrue)
		So(Equal(WithCapacity[int](8), &Stack[int]{}), ShouldBeTrue)
	})
}
