package ecs

import "errors"

var (
	ErrStackEmpty = errors.New("ecs: handle stack is empty")
	ErrStackFull  = errors.New("ecs: handle stack is full")
)

// Stack is a fixed-capacity LIFO, used to hold the handles of a category that
// are not currently bound to a live record.
type Stack[T any] struct {
	items []T
}

func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push returns a handle to the stack. Pushing more handles than the stack was
// sized for panics.
func (s *Stack[T]) Push(v T) {
	if len(s.items) == cap(s.items) {
		panic(ErrStackFull)
	}
	s.items = append(s.items, v)
}

// Pop takes the most recently pushed handle. Popping an empty stack panics:
// the caller sized the category too small.
func (s *Stack[T]) Pop() T {
	n := len(s.items)
	if n == 0 {
		panic(ErrStackEmpty)
	}
	v := s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return cap(s.items)
}
