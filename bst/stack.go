package bst

// stack is the explicit work list used in place of recursion, so walking a
// degenerate (list-shaped) tree needs no more goroutine stack than a
// balanced one.
type stack[T any] struct {
	elements []T
}

func newStack[T any]() *stack[T] {
	return &stack[T]{
		elements: []T{},
	}
}

func (s *stack[T]) Push(x T) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *stack[T]) Pop() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	// clear the slot so a popped node is not kept reachable by the backing
	// array
	var zero T
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

func (s *stack[T]) Len() int {
	return len(s.elements)
}
