// Package tree holds the binary tree node model shared by the
// traversal iterators, the generator and the property checks.
package tree

import (
	"fmt"
	"strings"
)

// Node is a single node of a binary tree. Absent children are nil.
// A Node exclusively owns its children; no node is shared between
// trees and there are no parent links. Nodes are built once and never
// mutated afterwards - nothing in this module writes to a Node after
// construction, and callers should not either.
//
// Value is an opaque identifier. The model does not require values to
// be unique within a tree; some checks in tree/check are only
// meaningful over unique-valued trees, which tree/treegen guarantees
// for generated ones.
type Node[T comparable] struct {
	Value       T
	Left, Right *Node[T]
}

// NewNode returns a node holding v with the given children.
func NewNode[T comparable](v T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		Value: v,
		Left:  left,
		Right: right,
	}
}

// Leaf returns a childless node holding v.
func Leaf[T comparable](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

// Size returns the number of nodes in the tree rooted at n.
// The size of a nil node is 0.
// The input must be acyclic and finite; Size does not terminate on a
// cyclic structure.
func Size[T comparable](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + Size(n.Left) + Size(n.Right)
}

// String renders the subtree rooted at n in a compact parenthesized
// form: a leaf is its value, an internal node is "(left value right)",
// an absent child is "_".
func (n *Node[T]) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node[T]) render(b *strings.Builder) {
	if n == nil {
		b.WriteByte('_')
		return
	}
	if n.Left == nil && n.Right == nil {
		fmt.Fprintf(b, "%v", n.Value)
		return
	}
	b.WriteByte('(')
	n.Left.render(b)
	b.WriteByte(' ')
	fmt.Fprintf(b, "%v", n.Value)
	b.WriteByte(' ')
	n.Right.render(b)
	b.WriteByte(')')
}
