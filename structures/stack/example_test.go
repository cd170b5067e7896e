package stack_test

import (
	"fmt"

	"github.com/dsakit/dsakit/structures/stack"
)

func Example() {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	if v, ok := s.Pop().Get(); ok {
		fmt.Println("popped:", v)
	}
	fmt.Println("unchecked pop:", s.MustPop())
	fmt.Println("top:", s.Top().OrEmpty())
	fmt.Println("len:", s.Len())
	// Output:
	// popped: 3
	// unchecked pop: 2
	// top: 1
	// len: 1
}

func ExampleOf() {
	s := stack.Of(1, 2, 3)
	fmt.Println(s)

	sum := 0
	for v := range s.All() {
		sum += v
	}
	fmt.Println("sum:", sum, "len:", s.Len())
	// Output:
	// [3 2 1]
	// sum: 6 len: 3
}

func ExampleStack_Drain() {
	s := stack.From([]string{"a", "b", "c"})
	for v := range s.Drain() {
		fmt.Println(v)
	}
	fmt.Println("empty:", s.IsEmpty())
	// Output:
	// c
	// b
	// a
	// empty: true
}

func ExampleStack_Swap() {
	a := stack.Of(1, 2)
	b := stack.Of(9, 8)
	a.Swap(b)
	fmt.Println(a.MustTop(), b.MustTop())
	// Output:
	// 8 2
}

func ExampleStack_MustTopMut() {
	s := stack.Of(10)
	*s.MustTopMut() += 5
	fmt.Println(s.MustTop())
	// Output:
	// 15
}
