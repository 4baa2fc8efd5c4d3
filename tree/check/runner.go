package check

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/kr/pretty"
	"golang.org/x/sync/semaphore"

	"go.lepak.sg/treewalk/tree"
	"go.lepak.sg/treewalk/tree/treegen"
)

// Named pairs a Property with the name used in failure reports.
type Named struct {
	Name  string
	Check Property
}

// Props returns the standard three properties.
func Props() []Named {
	return []Named{
		{Name: "complete", Check: Complete},
		{Name: "ordered", Check: Ordered},
		{Name: "equivalent", Check: Equivalent},
	}
}

// Failure reports the lowest-numbered failing case of a run. Tree is
// the failing tree after shrinking: the smallest variant found that
// still fails the same property. Err is the property's error for that
// shrunk tree, and Unwrap exposes it to errors.Is/As.
type Failure struct {
	Case     int
	Seed     int64
	Property string
	Tree     *tree.Node[int]
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("case %d (seed %d): property %q failed: %v\nminimal tree: %s\nnodes: %s",
		f.Case, f.Seed, f.Property, f.Err, f.Tree, pretty.Sprint(f.Tree))
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Runner generates trees and evaluates properties against each of
// them, at most Workers cases in flight at once. Cases are seeded
// with Seed plus the case number, so a reported failure replays
// identically regardless of how cases were scheduled.
type Runner struct {
	// Cases is the number of trees to generate and check.
	Cases int
	// Workers bounds concurrent cases. Values below 1 mean 1.
	Workers int
	// Seed is the base seed. Case i uses Seed + i.
	Seed int64
	// Params configures the tree generator.
	Params treegen.Params
}

// Run evaluates every property in props (all of Props if empty)
// against Cases generated trees. It returns nil if everything holds,
// a *Failure describing the lowest-numbered failing case otherwise,
// or the context error if ctx is canceled first. Cases already in
// flight are finished before Run returns.
func (r *Runner) Run(ctx context.Context, props ...Named) error {
	if len(props) == 0 {
		props = Props()
	}
	if err := r.Params.Validate(); err != nil {
		return err
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	// One slot per case: workers don't coordinate beyond the
	// semaphore, and the lowest failing case wins deterministically.
	failures := make([]*Failure, r.Cases)
	sema := semaphore.NewWeighted(int64(workers))

	var err error
	for i := 0; i < r.Cases && err == nil; i++ {
		err = sema.Acquire(ctx, 1)
		if err != nil {
			break
		}
		go func(i int) {
			defer sema.Release(1)
			failures[i] = r.runCase(i, props)
		}(i)
	}

	// Wait for in-flight workers whether or not ctx fell over.
	_ = sema.Acquire(context.Background(), int64(workers))

	if err != nil {
		return err
	}
	for _, f := range failures {
		if f != nil {
			return f
		}
	}
	return nil
}

func (r *Runner) runCase(i int, props []Named) *Failure {
	seed := r.Seed + int64(i)

	gen, err := treegen.New(seed, r.Params)
	if err != nil {
		// Params were validated up front; this cannot happen.
		return &Failure{Case: i, Seed: seed, Err: err}
	}
	root := gen.Tree()

	// Auxiliary draws (sampling inside properties) get their own
	// stream so adding draws to one property cannot perturb the
	// generated tree of a later case.
	aux := rand.New(rand.NewSource(seed))

	for _, p := range props {
		if perr := p.Check(root, aux); perr != nil {
			min, minErr := shrink(root, perr, p.Check, aux)
			return &Failure{
				Case:     i,
				Seed:     seed,
				Property: p.Name,
				Tree:     min,
				Err:      minErr,
			}
		}
	}
	return nil
}

// shrink greedily walks toward a minimal failing tree: take the first
// simpler variant that still fails, restart from it, stop when no
// variant fails anymore.
func shrink(root *tree.Node[int], rootErr error, p Property, aux *rand.Rand) (*tree.Node[int], error) {
	cur, curErr := root, rootErr
	for {
		stepped := false
		for _, cand := range treegen.Shrink(cur) {
			if err := p(cand, aux); err != nil {
				cur, curErr = cand, err
				stepped = true
				break
			}
		}
		if !stepped {
			return cur, curErr
		}
	}
}
