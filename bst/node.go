package bst

// Node is a read-only handle to one element stored in a Tree.
//
// Its links are owned by the tree and cannot be changed through the handle.
// A handle stays valid only until the next Remove or Clear: removing a value
// whose node has two children moves the in-order successor's value into that
// node, so the handle then reports the successor.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

func newNode[T any](value T) *Node[T] {
	// NOTE: follows the singletonTree pattern of spelling out both child
	// links
	var n *Node[T]
	return &Node[T]{value: value, left: n, right: n}
}

// Value returns the stored element.
func (n *Node[T]) Value() T {
	return n.value
}

// Min returns the node holding the smallest value in the subtree rooted at n,
// or nil if n is nil.
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}
	var cur = n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

// Max returns the node holding the largest value in the subtree rooted at n,
// or nil if n is nil.
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}
	var cur = n
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

func (n *Node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}
