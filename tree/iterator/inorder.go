package iterator

import (
	"sync"
	"sync/atomic"

	"go.lepak.sg/treewalk/tree"
)

var _ NodeIterator[int] = (*InOrder[int])(nil)

// InOrder is a lazy iterator over the in-order sequence of a binary
// tree, driven by the recursive Walk running in its own goroutine.
// Each call to Next receives one node from the walk; nodes past the
// current position have not been visited yet.
//
// If the iterator is abandoned before Next returns false, Stop must
// be called to release the walking goroutine. Exhausting the iterator
// releases it too, after which Stop is a no-op.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T comparable] struct {
	items   <-chan *tree.Node[T]
	stop    chan<- struct{}
	once    sync.Once
	stopped atomic.Bool
	at      *tree.Node[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at
// root. A nil root yields an empty sequence.
func NewInOrder[T comparable](root *tree.Node[T]) *InOrder[T] {
	items := make(chan *tree.Node[T])
	stop := make(chan struct{})

	go func() {
		defer close(items)
		Walk(root, func(n *tree.Node[T]) bool {
			select {
			case items <- n:
				return true
			case <-stop:
				return false
			}
		})
	}()

	return &InOrder[T]{
		items: items,
		stop:  stop,
	}
}

// Next advances to the next node in order and returns true if there
// is one. Next must always be called before Item or Node.
func (i *InOrder[T]) Next() bool {
	if i.stopped.Load() {
		// The walker may have committed to one more send before it
		// saw the stop channel; discard anything still in flight so
		// a stopped iterator never yields again.
		for range i.items {
		}
		i.at = nil
		return false
	}
	n, ok := <-i.items
	i.at = n
	return ok
}

// Item returns the value of the current node.
func (i *InOrder[T]) Item() T {
	return i.at.Value
}

// Node returns the current node.
func (i *InOrder[T]) Node() *tree.Node[T] {
	return i.at
}

// Stop abandons the iteration and releases the walking goroutine.
// It is safe to call Stop more than once, or after exhaustion.
// Any Next call started after Stop returns false; the stopped flag
// is read before the channel so a send the walker already committed
// to cannot sneak one more item through.
func (i *InOrder[T]) Stop() {
	i.once.Do(func() {
		i.stopped.Store(true)
		close(i.stop)
	})
}
