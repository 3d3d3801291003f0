package readyqueue

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vnykmshr/dagflow/pkg/common/errors"
)

// queueIDs assigns each queue a creation-ordered id, used to take the locks
// of two queues in a fixed global order during Swap.
var queueIDs atomic.Uint64

// Queue is an unbounded, thread-safe holding area for ready work that
// returns items in uniformly random order rather than FIFO, so that a
// scheduler drawing from it does not starve late-arriving producers.
//
// The queue has two termination modes. Drain is soft: new pushes are
// rejected but queued items remain poppable until exhausted. Shutdown is
// hard: pushes are rejected and all current and future pops return
// immediately with no item, abandoning whatever remains queued. Both are
// idempotent and safe to call from any goroutine.
type Queue[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    []T
	rng      *rand.Rand
	draining bool
	shutdown bool
	id       uint64
}

// New creates an empty queue with a time-seeded random source.
func New[T any]() *Queue[T] {
	return NewSeeded[T](time.Now().UnixNano())
}

// NewSeeded creates an empty queue whose shuffles are driven by the given
// seed, making pop order deterministic for tests.
func NewSeeded[T any](seed int64) *Queue[T] {
	q := &Queue[T]{
		rng: rand.New(rand.NewSource(seed)),
		id:  queueIDs.Add(1),
	}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends an item and wakes one waiter. It never blocks. It returns
// errors.ErrDraining or errors.ErrShutdown when the queue no longer accepts
// items.
func (q *Queue[T]) Push(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch {
	case q.shutdown:
		return errors.ErrShutdown
	case q.draining:
		return errors.ErrDraining
	}

	q.items = append(q.items, item)
	q.nonEmpty.Signal()
	return nil
}

// TryPush is a historical alias of Push. The queue is unbounded, so a push
// that is not rejected by termination always succeeds.
func (q *Queue[T]) TryPush(item T) error {
	return q.Push(item)
}

// TryPop returns an item immediately if one is available, without blocking.
// It returns false when the queue is empty or shut down. Items queued before
// a Drain remain available.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.shutdown || len(q.items) == 0 {
		return zero, false
	}
	return q.popLocked(), true
}

// Pop returns a uniformly random queued item, waiting until one is available.
// It returns false once the queue is shut down, or is draining and empty.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.draining && !q.shutdown {
		q.nonEmpty.Wait()
	}

	var zero T
	if q.shutdown || len(q.items) == 0 {
		return zero, false
	}
	return q.popLocked(), true
}

// Drain soft-stops the queue: no new items are accepted, waiters are woken,
// and remaining items are served until the queue is empty.
func (q *Queue[T]) Drain() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.draining = true
	q.nonEmpty.Broadcast()
}

// Shutdown hard-stops the queue: no new items are accepted and every current
// and future Pop returns no item, even if items remain queued.
func (q *Queue[T]) Shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.shutdown = true
	q.nonEmpty.Broadcast()
}

// Len returns the number of items currently held.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Empty returns true if the queue holds no items.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Swap exchanges the contents of two queues atomically with respect to all
// other operations on either queue. Locks are taken in creation order, so
// two goroutines swapping the same pair in opposite directions cannot
// deadlock. Termination flags are not exchanged. Swapping a queue with
// itself is a no-op.
func (q *Queue[T]) Swap(other *Queue[T]) {
	if q == other {
		return
	}

	first, second := q, other
	if second.id < first.id {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	q.items, other.items = other.items, q.items

	// Either side may have gone from empty to non-empty.
	q.nonEmpty.Broadcast()
	other.nonEmpty.Broadcast()
}

// popLocked shuffles the backing slice and removes the last element, so any
// currently queued item is equally likely to be returned. Linear cost per
// pop is acceptable: the queue holds ready graph nodes, not a high-volume
// stream. Caller must hold mu.
func (q *Queue[T]) popLocked() T {
	q.rng.Shuffle(len(q.items), func(i, j int) {
		q.items[i], q.items[j] = q.items[j], q.items[i]
	})

	n := len(q.items) - 1
	item := q.items[n]
	var zero T
	q.items[n] = zero // clear reference
	q.items = q.items[:n]
	return item
}
