/*
Package dagflow provides the synchronization core for dataflow/task-graph
execution engines: rendezvous channels for handing items between graph
stages, and the ready queue a scheduler uses to pick its next unit of work.

Streaming (pkg/streaming):
  - handshake: Single-slot producer/consumer rendezvous channel built on an
    explicit finite state machine with pluggable swap/wait policies

Scheduling (pkg/scheduling):
  - readyqueue: Unbounded shuffle-on-pop queue with soft and hard termination
  - readyqueue/distributed: Multi-instance ready set coordinated with Redis

Example usage:

	import (
		"github.com/vnykmshr/dagflow/pkg/scheduling/readyqueue"
		"github.com/vnykmshr/dagflow/pkg/streaming/handshake"
	)

	ch := handshake.New[int]()
	ready := readyqueue.New[string]()

	// producer side
	ch.Fill(42)
	ch.Push()

	// consumer side
	ch.Pull()
	v := ch.Drain()

	ready.Push(nodeID)
	next, ok := ready.Pop() // random ready node, ok=false after Shutdown
	_ = v
	_, _ = next, ok
*/
package dagflow
