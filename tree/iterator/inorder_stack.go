package iterator

import (
	"go.lepak.sg/treewalk/tree"
)

var _ NodeIterator[int] = (*InOrderStack[int])(nil)

// InOrderStack yields the same sequence as InOrder, but on an
// explicit stack instead of the goroutine stack: how deep a tree it
// can traverse is bounded by available heap, not by the runtime's
// stack limit. It also starts no goroutine, so it may be abandoned
// at any time with no cleanup.
//
// Each stack entry is either unopened (children not pushed yet) or
// opened (due for emission); the opened set tells the two apart, and
// a node passes through the stack at most twice. The set is keyed on
// the node pointer, never the value: two distinct nodes sharing a
// value must not be conflated, and node identity is the only thing
// the model guarantees distinct.
type InOrderStack[T comparable] struct {
	stack  []*tree.Node[T]
	opened map[*tree.Node[T]]struct{}
	at     *tree.Node[T]
}

// NewInOrderStack creates a new in-order iterator over the tree
// rooted at root. If the tree's height is known, pass it as
// heightHint to size the stack up front. Otherwise it's safe to
// leave it as 0.
func NewInOrderStack[T comparable](root *tree.Node[T], heightHint int) *InOrderStack[T] {
	i := &InOrderStack[T]{
		stack:  make([]*tree.Node[T], 0, heightHint+1),
		opened: make(map[*tree.Node[T]]struct{}),
	}
	if root != nil {
		i.stack = append(i.stack, root)
	}
	return i
}

// Next advances to the next node in order and returns true if there
// is one. Next must always be called before Item or Node.
func (i *InOrderStack[T]) Next() bool {
	for len(i.stack) > 0 {
		top := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		if _, ok := i.opened[top]; ok {
			// Second visit: the left subtree has been fully
			// emitted. An emitted node never returns to the
			// stack, so its set entry can go too.
			delete(i.opened, top)
			i.at = top
			return true
		}

		// First visit: push right, the node again, then left, so
		// that left is fully emitted before the node resurfaces,
		// and the node before anything on its right.
		i.opened[top] = struct{}{}
		if top.Right != nil {
			i.stack = append(i.stack, top.Right)
		}
		i.stack = append(i.stack, top)
		if top.Left != nil {
			i.stack = append(i.stack, top.Left)
		}
	}

	i.at = nil
	return false
}

// Item returns the value of the current node.
func (i *InOrderStack[T]) Item() T {
	return i.at.Value
}

// Node returns the current node.
func (i *InOrderStack[T]) Node() *tree.Node[T] {
	return i.at
}
