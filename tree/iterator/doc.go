// Package iterator provides in-order traversals of binary trees,
// one driven by ordinary recursion and one by an explicit stack.
package iterator

import (
	"go.lepak.sg/treewalk/chops"
	"go.lepak.sg/treewalk/tree"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Item may be called any number of times if the
// last call to Next returned true.
// Iterators are not restartable: once Next has returned
// false, it keeps returning false, and re-traversing a
// tree requires a fresh iterator.
//
// The usual usage of an Iterator is like this:
//
//	i := NewInOrderStack(root, 0)
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v, or break ...
//	}
type Iterator[T comparable] interface {
	Next() bool
	Item() T
}

// NodeIterator is an Iterator that can also report the node it is
// positioned on, for callers that care about node identity rather
// than just values (the checks in tree/check do).
type NodeIterator[T comparable] interface {
	Iterator[T]
	Node() *tree.Node[T]
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
