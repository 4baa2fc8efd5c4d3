// Package treegen builds random binary trees for the property checks
// in tree/check, and can shrink a tree into simpler variants when a
// check fails.
package treegen

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"go.lepak.sg/treewalk/tree"
)

// Sentinel errors returned by Params.Validate.
var (
	ErrDepth = errors.New("treegen: MaxDepth must be positive")
	ErrNodes = errors.New("treegen: MaxNodes must be positive")
	ErrProb  = errors.New("treegen: ChildProb must be in (0, 1]")
)

// Params bound the generator's recursive expansion. Both bounds are
// hard limits: generation falls back to a leaf once either is
// reached, so every generated tree is finite. Without them the
// recursive rule could expand forever - a correctness problem, not
// just a slow test.
type Params struct {
	// MaxDepth is the deepest level a node may appear at,
	// counting the root as level 0.
	MaxDepth int
	// MaxNodes caps the total number of nodes in one tree.
	MaxNodes int
	// ChildProb is the probability that a child slot is filled,
	// decided independently for the left and right slot of every
	// node while budget remains.
	ChildProb float64
}

// Validate reports the first invalid field, or nil.
func (p Params) Validate() error {
	if p.MaxDepth <= 0 {
		return ErrDepth
	}
	if p.MaxNodes <= 0 {
		return ErrNodes
	}
	if p.ChildProb <= 0 || p.ChildProb > 1 {
		return ErrProb
	}
	return nil
}

// Generator produces random trees whose node values are unique
// across everything a single Generator has ever produced: values
// come from a counter that is never reset, so "distinct values" is a
// faithful stand-in for "distinct nodes" in any tree it builds.
//
// The same seed and Params produce the same sequence of trees.
// A Generator is not safe for concurrent use; give each goroutine
// its own.
type Generator struct {
	rd   *rand.Rand
	p    Params
	next int
}

// New returns a Generator seeded with seed.
func New(seed int64, p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		rd: rand.New(rand.NewSource(seed)),
		p:  p,
	}, nil
}

// Tree builds one fresh tree. Successive calls return structurally
// independent trees sharing no nodes.
func (g *Generator) Tree() *tree.Node[int] {
	budget := g.p.MaxNodes
	return g.grow(0, &budget)
}

// grow is the recursive rule: a node with a fresh value, and each
// child either absent or grown one level deeper. The base rule (a
// bare leaf) applies when the depth or node budget runs out.
func (g *Generator) grow(depth int, budget *int) *tree.Node[int] {
	*budget--
	n := tree.Leaf(g.fresh())
	if depth >= g.p.MaxDepth {
		return n
	}
	if *budget > 0 && g.rd.Float64() < g.p.ChildProb {
		n.Left = g.grow(depth+1, budget)
	}
	if *budget > 0 && g.rd.Float64() < g.p.ChildProb {
		n.Right = g.grow(depth+1, budget)
	}
	return n
}

func (g *Generator) fresh() int {
	v := g.next
	g.next++
	return v
}

// Shrink returns simpler variants of n in the order they should be
// tried: n replaced by either child, n with either subtree dropped,
// then the same rewrites applied one level further down. Every
// variant has strictly fewer nodes than n, so repeated shrinking
// terminates. Variants share subtrees with n, which is safe because
// trees are never mutated after construction.
//
// Shrinking only ever removes substructure. A property that fails on
// n because of some node relationship keeps failing while the nodes
// involved survive, so greedy descent through these variants finds a
// small tree still exhibiting the failure.
func Shrink(n *tree.Node[int]) []*tree.Node[int] {
	if n == nil {
		return nil
	}
	var out []*tree.Node[int]
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}
	if n.Left != nil {
		out = append(out, tree.NewNode(n.Value, nil, n.Right))
	}
	if n.Right != nil {
		out = append(out, tree.NewNode(n.Value, n.Left, nil))
	}
	for _, c := range Shrink(n.Left) {
		out = append(out, tree.NewNode(n.Value, c, n.Right))
	}
	for _, c := range Shrink(n.Right) {
		out = append(out, tree.NewNode(n.Value, n.Left, c))
	}
	return out
}
