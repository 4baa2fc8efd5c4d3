package check

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"go.lepak.sg/treewalk/tree"
	"go.lepak.sg/treewalk/tree/treegen"
)

func testRunner() *Runner {
	return &Runner{
		Cases:   100,
		Workers: 4,
		Seed:    1,
		Params: treegen.Params{
			MaxDepth:  6,
			MaxNodes:  30,
			ChildProb: 0.8,
		},
	}
}

func TestRunner_AllPropertiesHold(t *testing.T) {
	err := testRunner().Run(context.Background())
	assert.NoError(t, err)
	goleak.VerifyNone(t)
}

func TestRunner_SingleWorkerDefault(t *testing.T) {
	r := testRunner()
	r.Cases = 10
	r.Workers = 0
	assert.NoError(t, r.Run(context.Background()))
	goleak.VerifyNone(t)
}

func TestRunner_BadParams(t *testing.T) {
	r := testRunner()
	r.Params.MaxDepth = 0
	assert.ErrorIs(t, r.Run(context.Background()), treegen.ErrDepth)
}

func TestRunner_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := testRunner().Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	goleak.VerifyNone(t)
}

// A property that rejects any tree of more than one node stands in
// for a broken traversal: the runner must catch it and shrink the
// failing tree all the way down to two nodes.
func TestRunner_ShrinksFailingTree(t *testing.T) {
	errTooBig := errors.New("tree has more than one node")
	atMostOne := Named{
		Name: "at most one node",
		Check: func(root *tree.Node[int], _ *rand.Rand) error {
			if tree.Size(root) > 1 {
				return errTooBig
			}
			return nil
		},
	}

	err := testRunner().Run(context.Background(), atMostOne)
	require.Error(t, err)

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "at most one node", f.Property)
	assert.Equal(t, 2, tree.Size(f.Tree), "shrunk to the minimal failing tree")
	assert.ErrorIs(t, err, errTooBig, "Failure unwraps to the property error")
	assert.Contains(t, err.Error(), f.Tree.String())
	goleak.VerifyNone(t)
}

// The failing case must be replayable: the same seed regenerates the
// same tree the report was built from.
func TestRunner_FailureIsReproducible(t *testing.T) {
	someErr := errors.New("boom")
	var caught *tree.Node[int]
	failOnce := Named{
		Name: "fail on case 3",
		Check: func(root *tree.Node[int], _ *rand.Rand) error {
			if tree.Size(root) >= 5 {
				if caught == nil {
					caught = root
				}
				return someErr
			}
			return nil
		},
	}

	r := testRunner()
	r.Workers = 1
	err := r.Run(context.Background(), failOnce)
	require.Error(t, err)

	var f *Failure
	require.ErrorAs(t, err, &f)

	g, gerr := treegen.New(f.Seed, r.Params)
	require.NoError(t, gerr)
	assert.Equal(t, caught.String(), g.Tree().String())
	goleak.VerifyNone(t)
}

func TestProps(t *testing.T) {
	var names []string
	for _, p := range Props() {
		names = append(names, p.Name)
		assert.NotNil(t, p.Check)
	}
	assert.Equal(t, []string{"complete", "ordered", "equivalent"}, names)
}
