package iterator

import (
	"go.lepak.sg/treewalk/tree"
)

// Walk visits every node of the tree rooted at n in in-order:
// the whole left subtree, then n itself, then the whole right
// subtree. An absent child contributes nothing. visit returning
// false aborts the walk; Walk reports whether the walk ran to
// completion.
//
// This is the reference traversal the iterators in this package are
// measured against. It recurses once per level, so its stack use is
// the height of the tree - for very tall trees prefer InOrderStack,
// which produces the same sequence on an explicit stack.
func Walk[T comparable](n *tree.Node[T], visit func(*tree.Node[T]) bool) bool {
	if n == nil {
		return true
	}
	if !Walk(n.Left, visit) {
		return false
	}
	if !visit(n) {
		return false
	}
	return Walk(n.Right, visit)
}

// Values exhausts it and returns every remaining item in order.
// A nil result means the iterator was already exhausted.
func Values[T comparable](it Iterator[T]) []T {
	var out []T
	for it.Next() {
		out = append(out, it.Item())
	}
	return out
}

// Nodes exhausts it and returns every remaining node in order.
func Nodes[T comparable](it NodeIterator[T]) []*tree.Node[T] {
	var out []*tree.Node[T]
	for it.Next() {
		out = append(out, it.Node())
	}
	return out
}
