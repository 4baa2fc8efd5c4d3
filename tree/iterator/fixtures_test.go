package iterator

import (
	"go.lepak.sg/treewalk/tree"
)

// The worked example: in-order is [3 2 6 4 1 5].
func newExampleTree() *tree.Node[int] {
	return tree.NewNode(1,
		tree.NewNode(2,
			tree.Leaf(3),
			tree.NewNode(4, tree.Leaf(6), nil),
		),
		tree.Leaf(5),
	)
}

// A complete tree of height 2; in-order is [1 2 3 4 5 6 7].
func newCompleteTree_2Tall() *tree.Node[int] {
	return tree.NewNode(4,
		tree.NewNode(2, tree.Leaf(1), tree.Leaf(3)),
		tree.NewNode(6, tree.Leaf(5), tree.Leaf(7)),
	)
}

// Uneven shape: long on one side, short on the other.
func newDoglegTree() *tree.Node[int] {
	return tree.NewNode(8,
		tree.NewNode(5,
			tree.Leaf(1),
			tree.NewNode(7, tree.Leaf(6), nil),
		),
		tree.Leaf(9),
	)
}

// A chain of n nodes linked only through Left; in-order is 1..n.
func newLeftChain(n int) *tree.Node[int] {
	var root *tree.Node[int]
	for v := 1; v <= n; v++ {
		root = tree.NewNode(v, root, nil)
	}
	return root
}

// A chain of n nodes linked only through Right; in-order is 1..n.
func newRightChain(n int) *tree.Node[int] {
	var root *tree.Node[int]
	for v := n; v >= 1; v-- {
		root = tree.NewNode(v, nil, root)
	}
	return root
}
