/*
Package handshake provides a single-slot rendezvous channel between one
producer and one consumer, modeled as an explicit finite state machine.

A channel owns two item slots, one per role, and a state that is the pair of
their occupancies: empty_empty, full_empty, empty_full, full_full. The
producer alternates Fill and Push; the consumer alternates Pull and Drain.
Push and Pull both perform the same physical effect - moving the item from
the source slot to the sink slot - so whichever side reaches a transferable
state first does the move, and the peer's pending operation completes
without further work.

Core components:
  - Step: the pure transition engine, a total function from (State, Event)
    to (State, Outcome)
  - Policy: the pluggable swap/wait strategy (Manual, Async, Unified)
  - Channel: Step + Policy + the two slots behind one mutex

Basic usage:

	ch := handshake.New[int]()

	// producer goroutine
	go func() {
		for _, v := range values {
			ch.Fill(v)
			ch.Push() // returns once v has left the source slot
		}
	}()

	// consumer goroutine
	for range values {
		ch.Pull() // returns once the sink slot holds an item
		v := ch.Drain()
		process(v)
	}

Blocking semantics:

Push suspends while both slots are full; Pull suspends while both are empty.
Waiting is real thread blocking on condition variables under the channel
mutex, with the standard re-check-on-wake discipline, and is unbounded by
design: there are no error returns and no timeouts. A caller that needs
bounded waits must layer cancellation on top of this package.

Fill and Drain never suspend. Their preconditions are guaranteed by the
producer/consumer protocol itself, so violating them (filling a full source
slot, draining an empty sink slot) is a programming error and panics.

Policies:

The Async policy (the default) uses one condition variable per role; the
Unified policy uses a single shared one. Both produce identical observable
behavior. The Manual policy never blocks and is meant for deterministic,
single-threaded test sequences where the caller interleaves both roles by
hand.

Debugging and metrics:

Config.Debug enables a logrus trace of every transition (event, state, next
state, sequence number) with no change in semantics. InstrumentedChannel
adds Prometheus counters for events, transfers per side, and waits.
*/
package handshake
