package stack

import "iter"

// All returns an iterator over the elements from top to bottom.
// It does not modify the stack and every range over it starts a fresh traversal.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over depth-element pairs, where depth 0 is the top.
func (s *Stack[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(len(s.items)-1-i, s.items[i]) {
				return
			}
		}
	}
}

// Drain moves the elements out of the stack and returns a one-shot iterator yielding them
// from top to bottom. The stack is empty, without storage, as soon as Drain returns.
// Ranging over the iterator a second time yields nothing.
func (s *Stack[T]) Drain() iter.Seq[T] {
	items := s.items
	s.items = nil

	return func(yield func(T) bool) {
		owned := items
		items = nil
		for i := len(owned) - 1; i >= 0; i-- {
			if !yield(owned[i]) {
				return
			}
		}
	}
}
