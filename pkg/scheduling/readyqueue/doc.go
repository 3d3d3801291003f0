/*
Package readyqueue provides an unbounded, shutdown-aware queue that returns
items in uniformly random order.

A graph scheduler that served ready nodes strictly FIFO would bias toward
whichever producers got there first and could starve late arrivals. This
queue removes the bias by shuffling its backing sequence on every pop, so
any currently queued item is equally likely to be returned next. Pop cost is
linear in queue length, which is fine for the intended load: a bounded set
of ready nodes, not a high-volume stream.

Usage:

	ready := readyqueue.New[string]()

	// producers
	if err := ready.Push(nodeID); err != nil {
		// queue is draining or shut down
	}

	// scheduler workers
	for {
		id, ok := ready.Pop()
		if !ok {
			return // terminated
		}
		service(id)
	}

Termination:

Drain is the soft stop: pushes are rejected, but queued items are served
until exhausted, after which Pop returns false. Shutdown is the hard stop:
pushes are rejected and every current and future Pop returns false
immediately, abandoning any remaining items. Both are idempotent and may be
called from any goroutine; all blocked waiters are woken.

Push rejection is reported through the sentinel errors ErrDraining and
ErrShutdown from pkg/common/errors, never through panics: termination is a
normal runtime condition for callers to check, not a programming error.

The random source is owned by the queue and seedable via NewSeeded, keeping
shuffles free of process-wide state and deterministic under test.
*/
package readyqueue
