// Package check contains correctness properties for the in-order
// traversals and a harness that runs them over generated trees,
// shrinking any failing tree to a small counterexample.
package check

import (
	"fmt"
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/exp/slices"

	"go.lepak.sg/treewalk/tree"
	"go.lepak.sg/treewalk/tree/iterator"
)

// Property is one correctness condition over a single tree, returning
// a descriptive error on violation and nil otherwise. r supplies any
// auxiliary randomness the property needs for sampling. Properties
// must not retain or mutate the tree.
type Property func(root *tree.Node[int], r *rand.Rand) error

// Complete checks that the traversal emits every node exactly once:
// its length and its number of distinct values must both equal the
// structural size of the tree. A traversal that skips a node fails
// the length comparison; one that emits a node twice (or invents one)
// fails the distinct count. Values stand in for nodes here, so this
// is only meaningful over unique-valued trees such as treegen's.
func Complete(root *tree.Node[int], _ *rand.Rand) error {
	values := iterator.Values[int](iterator.NewInOrder(root))
	size := tree.Size(root)
	if len(values) != size {
		return errors.Newf("traversal emitted %d nodes, but the tree has %d", len(values), size)
	}

	distinct := make(map[int]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if len(distinct) != size {
		return errors.Newf("traversal emitted %d distinct values over %d nodes", len(distinct), size)
	}
	return nil
}

// Ordered checks in-order positioning. For every node s rooting a
// subtree of more than one node, one node is sampled from each
// present side of s, and its position in the full traversal is
// compared with s's: everything under s.Left must come out before s,
// and s before everything under s.Right. Sampling a subtree root and
// one descendant per side covers the same ground as sampling two
// arbitrary nodes and finding their lowest common ancestor, without
// implementing LCA.
func Ordered(root *tree.Node[int], r *rand.Rand) error {
	full := iterator.Nodes[int](iterator.NewInOrder(root))

	var err error
	iterator.Walk(root, func(s *tree.Node[int]) bool {
		if s.Left == nil && s.Right == nil {
			// a one-node subtree has no ordering to check
			return true
		}
		si := slices.Index(full, s)

		if l := sample(s.Left, r); l != nil {
			li := slices.Index(full, l)
			if li >= si {
				err = errors.Newf(
					"left descendant %v (index %d) does not precede subtree root %v (index %d)",
					l.Value, li, s.Value, si)
				return false
			}
		}
		if rt := sample(s.Right, r); rt != nil {
			ri := slices.Index(full, rt)
			if ri <= si {
				err = errors.Newf(
					"subtree root %v (index %d) does not precede right descendant %v (index %d)",
					s.Value, si, rt.Value, ri)
				return false
			}
		}
		return true
	})
	return err
}

// Equivalent checks that the explicit-stack traversal produces
// exactly the recursive reference sequence, node for node. Once
// Complete and Ordered establish trust in the reference, this single
// comparison is all a new traversal strategy needs.
func Equivalent(root *tree.Node[int], _ *rand.Rand) error {
	rec := iterator.Nodes[int](iterator.NewInOrder(root))
	stk := iterator.Nodes[int](iterator.NewInOrderStack(root, 0))
	if slices.Equal(rec, stk) {
		return nil
	}

	diff, diffErr := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        valueLines(rec),
		B:        valueLines(stk),
		FromFile: "recursive",
		ToFile:   "stack",
		Context:  3,
	})
	if diffErr != nil {
		diff = diffErr.Error()
	}
	return errors.Newf("stack traversal diverges from the recursive reference:\n%s", diff)
}

// sample returns a uniformly chosen node of the subtree rooted at n,
// or nil if n is nil.
func sample(n *tree.Node[int], r *rand.Rand) *tree.Node[int] {
	if n == nil {
		return nil
	}
	nodes := iterator.Nodes[int](iterator.NewInOrderStack(n, 0))
	return nodes[r.Intn(len(nodes))]
}

func valueLines(nodes []*tree.Node[int]) []string {
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = fmt.Sprintf("%d\n", n.Value)
	}
	return lines
}
