// Package stack provides a generic last-in-first-out container backed by a growable slice.
//
// The zero value of Stack is an empty stack ready to use. A Stack is not safe for concurrent use.
package stack

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/mo"
)

// Stack is a LIFO container. The last element of the underlying slice is the top.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack without preallocated storage.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// WithCapacity returns an empty stack that can hold at least n elements without reallocating.
func WithCapacity[T any](n int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(n, 0))}
}

// Of returns a stack holding values in push order, so the last value ends on top.
// The values are copied; spreading a slice into Of never aliases it.
func Of[T any](values ...T) *Stack[T] {
	if len(values) == 0 {
		return New[T]()
	}
	return &Stack[T]{items: slices.Clone(values)}
}

// From adopts items as the backing storage of a new stack. The last element becomes the top.
// The caller must not use items afterwards.
func From[T any](items []T) *Stack[T] {
	return &Stack[T]{items: items}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top element, or None when the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.pop())
}

// MustPop removes and returns the top element. It panics if the stack is empty.
func (s *Stack[T]) MustPop() T {
	s.require("MustPop")
	return s.pop()
}

func (s *Stack[T]) pop() T {
	var zero T
	idx := len(s.items) - 1
	item := s.items[idx]
	// release the reference held by the vacated slot
	s.items[idx] = zero
	s.items = s.items[:idx]
	return item
}

// Top returns the top element without removing it, or None when the stack is empty.
func (s *Stack[T]) Top() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// MustTop returns the top element. It panics if the stack is empty.
func (s *Stack[T]) MustTop() T {
	s.require("MustTop")
	return s.items[len(s.items)-1]
}

// TopMut returns a pointer to the top slot, or None when the stack is empty.
// The pointer is valid until the next mutation of the stack.
func (s *Stack[T]) TopMut() mo.Option[*T] {
	if len(s.items) == 0 {
		return mo.None[*T]()
	}
	return mo.Some(&s.items[len(s.items)-1])
}

// MustTopMut returns a pointer to the top slot. It panics if the stack is empty.
func (s *Stack[T]) MustTopMut() *T {
	s.require("MustTopMut")
	return &s.items[len(s.items)-1]
}

func (s *Stack[T]) require(op string) {
	if len(s.items) == 0 {
		panic(fmt.Sprintf("stack: called %s on an empty stack", op))
	}
}

// Clear removes every element. The allocated storage is kept for reuse.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Swap exchanges the contents and storage of s and other.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.items, other.items = other.items, s.items
}

// Reserve makes room for at least n more pushes without reallocation.
func (s *Stack[T]) Reserve(n int) {
	if n > 0 {
		s.items = slices.Grow(s.items, n)
	}
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Cap returns the allocated storage size, which is never below Len.
func (s *Stack[T]) Cap() int {
	return cap(s.items)
}

// Clone returns a shallow copy with its own storage.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{items: slices.Clone(s.items)}
}

// Slice returns the elements ordered from top to bottom in a new slice.
func (s *Stack[T]) Slice() []T {
	out := slices.Clone(s.items)
	slices.Reverse(out)
	return out
}

// String renders the elements from top to bottom, e.g. "[3 2 1]".
// It has a value receiver so that fmt prints stack values and pointers alike.
func (s Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := len(s.items) - 1; i >= 0; i-- {
		fmt.Fprint(&b, s.items[i])
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold the same elements in the same order.
// A nil stack is equal to an empty one.
func Equal[T comparable](a, b *Stack[T]) bool {
	var x, y []T
	if a != nil {
		x = a.items
	}
	if b != nil {
		y = b.items
	}
	return slices.Equal(x, y)
}
