// Command treecheck generates a random tree, shows its in-order
// traversal, then runs the traversal properties over many more
// generated trees.
package main

import (
	"context"
	"log"
	"time"

	"go.lepak.sg/treewalk/chops"
	"go.lepak.sg/treewalk/tree"
	"go.lepak.sg/treewalk/tree/check"
	"go.lepak.sg/treewalk/tree/iterator"
	"go.lepak.sg/treewalk/tree/treegen"
)

func main() {
	seed := time.Now().UnixNano()
	params := treegen.Params{
		MaxDepth:  6,
		MaxNodes:  24,
		ChildProb: 0.8,
	}

	g, err := treegen.New(seed, params)
	if err != nil {
		log.Fatal(err)
	}

	root := g.Tree()
	log.Printf("seed %d", seed)
	log.Printf("tree with %d nodes: %s", tree.Size(root), root)

	var order []int
	co := chops.CoIterate[int](iterator.NewInOrderStack(root, 0))
	for v := range co.Items() {
		order = append(order, v)
	}
	log.Printf("in-order: %v", order)

	r := &check.Runner{
		Cases:   500,
		Workers: 8,
		Seed:    seed,
		Params:  params,
	}
	if err := r.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	log.Printf("complete, ordered and equivalent hold over %d trees", r.Cases)
}
