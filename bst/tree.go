// Package bst implements an unbalanced binary search tree over any element
// type with a strict weak ordering.
//
// Two elements a and b are considered the same element when neither
// less(a, b) nor less(b, a) holds; the tree never consults ==. A Tree is not
// safe for concurrent use.
package bst

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
	"golang.org/x/exp/constraints"
)

// Tree is a set of unique elements kept in binary search tree order.
type Tree[T any] struct {
	root *Node[T]
	less func(a, b T) bool
}

// New returns an empty tree ordered by the < operator.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(func(a, b T) bool {
		return a < b
	})
}

// NewFunc returns an empty tree ordered by less, which must be a strict weak
// ordering.
func NewFunc[T any](less func(a, b T) bool) *Tree[T] {
	var root *Node[T]
	return &Tree[T]{root: root, less: less}
}

// search returns the slot holding value, or the empty slot where value would
// be inserted.
func (t *Tree[T]) search(value T) **Node[T] {
	var slot = &t.root
	for *slot != nil {
		n := *slot
		if t.less(value, n.value) {
			slot = &n.left
		} else if t.less(n.value, value) {
			slot = &n.right
		} else {
			break
		}
	}
	return slot
}

// Insert adds value to the tree. It returns false, leaving the tree unchanged,
// if an equivalent value is already present.
func (t *Tree[T]) Insert(value T) bool {
	slot := t.search(value)
	if *slot != nil {
		return false
	}
	*slot = newNode(value)
	return true
}

// Remove deletes the value equivalent to value. It returns false if there is
// no such value.
func (t *Tree[T]) Remove(value T) bool {
	slot := t.search(value)
	if *slot == nil {
		return false
	}
	removeAt(slot)
	return true
}

// removeAt unlinks the node in slot, which must be non-nil.
func removeAt[T any](slot **Node[T]) {
	n := *slot
	if n.left == nil {
		*slot = n.right
		n.right = nil
		return
	}
	if n.right == nil {
		*slot = n.left
		n.left = nil
		return
	}
	// two children: n keeps its place and takes the value of its in-order
	// successor, which is then spliced out of the right subtree
	var succSlot = &n.right
	for (*succSlot).left != nil {
		succSlot = &(*succSlot).left
	}
	succ := *succSlot
	primitive.Assert(succ.left == nil)
	n.value = succ.value
	*succSlot = succ.right
	succ.right = nil
}

// Contain reports whether a value equivalent to value is present.
func (t *Tree[T]) Contain(value T) bool {
	return *t.search(value) != nil
}

// FindNode returns a handle to the node holding the value equivalent to
// value, or nil if there is none.
func (t *Tree[T]) FindNode(value T) *Node[T] {
	return *t.search(value)
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Min returns the smallest value in the tree. The boolean is false if the tree
// is empty.
func (t *Tree[T]) Min() (T, bool) {
	n := t.root.Min()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Max returns the largest value in the tree. The boolean is false if the tree
// is empty.
func (t *Tree[T]) Max() (T, bool) {
	n := t.root.Max()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

type depthFrame[T any] struct {
	n     *Node[T]
	depth uint64
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, which is 0 for an empty tree.
func (t *Tree[T]) Height() uint64 {
	if t.root == nil {
		return 0
	}
	var height = uint64(0)
	s := newStack[depthFrame[T]]()
	s.Push(depthFrame[T]{n: t.root, depth: 1})
	for {
		f, ok := s.Pop()
		if !ok {
			break
		}
		if f.n.isLeaf() {
			if f.depth > height {
				height = f.depth
			}
			continue
		}
		next := std.SumAssumeNoOverflow(f.depth, 1)
		if f.n.left != nil {
			s.Push(depthFrame[T]{n: f.n.left, depth: next})
		}
		if f.n.right != nil {
			s.Push(depthFrame[T]{n: f.n.right, depth: next})
		}
	}
	return height
}

// Clear removes every value. All links are cut, so a node handle obtained
// before Clear reaches nothing but its own value.
func (t *Tree[T]) Clear() {
	var root *Node[T]
	s := newStack[*Node[T]]()
	if t.root != nil {
		s.Push(t.root)
	}
	t.root = root
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		if n.left != nil {
			s.Push(n.left)
		}
		if n.right != nil {
			s.Push(n.right)
		}
		n.left = nil
		n.right = nil
	}
	primitive.Assert(s.Len() == 0)
}
