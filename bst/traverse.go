package bst

import "slices"

// Each traversal builds a new slice on every call. The walks use an explicit
// stack rather than recursion.

// InOrder returns the values in ascending order (left subtree, node, right
// subtree).
func (t *Tree[T]) InOrder() []T {
	var result = []T{}
	s := newStack[*Node[T]]()
	var cur = t.root
	for cur != nil || s.Len() > 0 {
		for cur != nil {
			s.Push(cur)
			cur = cur.left
		}
		n, _ := s.Pop()
		result = append(result, n.value)
		cur = n.right
	}
	return result
}

// PreOrder returns the values with each node before its left and then right
// subtree, so the root comes first.
func (t *Tree[T]) PreOrder() []T {
	var result = []T{}
	s := newStack[*Node[T]]()
	if t.root != nil {
		s.Push(t.root)
	}
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		result = append(result, n.value)
		// right is pushed first so that left is visited first
		if n.right != nil {
			s.Push(n.right)
		}
		if n.left != nil {
			s.Push(n.left)
		}
	}
	return result
}

// PostOrder returns the values with each node after its left and then right
// subtree, so the root comes last.
func (t *Tree[T]) PostOrder() []T {
	var result = []T{}
	s := newStack[*Node[T]]()
	if t.root != nil {
		s.Push(t.root)
	}
	// collect node, right, left and reverse it
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		result = append(result, n.value)
		if n.left != nil {
			s.Push(n.left)
		}
		if n.right != nil {
			s.Push(n.right)
		}
	}
	slices.Reverse(result)
	return result
}
