package handshake

import "fmt"

// State describes the occupancy of the two slots of a channel as a pair
// (source, sink). There is no intermediate state: every event application
// moves the channel from one of these four values to another atomically.
type State int

const (
	// EmptyEmpty means neither slot holds an item.
	EmptyEmpty State = iota

	// FullEmpty means the source slot holds an item awaiting transfer.
	FullEmpty

	// EmptyFull means an item has been transferred and awaits draining.
	EmptyFull

	// FullFull means both slots hold items; the producer must wait for the
	// consumer to drain before another transfer can happen.
	FullFull
)

// String returns the human-readable state name used by tests and the debug trace.
func (s State) String() string {
	switch s {
	case EmptyEmpty:
		return "empty_empty"
	case FullEmpty:
		return "full_empty"
	case EmptyFull:
		return "empty_full"
	case FullFull:
		return "full_full"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Event is a request to move the channel state machine. Events are requests,
// not unconditional transitions: Push and Pull have preconditions that, when
// unmet, cause the calling side to wait rather than fail.
type Event int

const (
	// SourceFill records that the producer has placed an item in the source slot.
	SourceFill Event = iota

	// Push asks the producer side to transfer the source item to the sink slot.
	Push

	// Pull asks the consumer side to transfer the source item to the sink slot.
	Pull

	// SinkDrain records that the consumer has taken the item out of the sink slot.
	SinkDrain
)

// String returns the event name used by tests and the debug trace.
func (e Event) String() string {
	switch e {
	case SourceFill:
		return "source_fill"
	case Push:
		return "push"
	case Pull:
		return "pull"
	case SinkDrain:
		return "sink_drain"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Outcome classifies what applying an event to a state does.
type Outcome int

const (
	// Blocked means the transfer is not possible yet; the caller must wait
	// for the peer to change the state and then retry.
	Blocked Outcome = iota

	// Swapped means the source item moves into the sink slot.
	Swapped

	// Advanced means a slot changed occupancy without a transfer (fill or drain).
	Advanced

	// Completed means the event is already satisfied: the peer performed the
	// transfer while this side was between operations, so there is nothing
	// left to do.
	Completed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Swapped:
		return "swapped"
	case Advanced:
		return "advanced"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Step is the pure transition engine: given the current state and an event it
// returns the next state and the outcome of applying the event. It performs
// no synchronization and moves no data; Channel layers locking, waiting, and
// the item swap on top of it.
//
// SourceFill with a full source slot and SinkDrain with an empty sink slot
// are protocol violations: the producer must alternate fill/push and the
// consumer pull/drain, so neither can legally occur. Step panics on them.
func Step(s State, e Event) (State, Outcome) {
	switch e {
	case SourceFill:
		switch s {
		case EmptyEmpty:
			return FullEmpty, Advanced
		case EmptyFull:
			return FullFull, Advanced
		}
		panic("handshake: source_fill with source slot full")

	case SinkDrain:
		switch s {
		case EmptyFull:
			return EmptyEmpty, Advanced
		case FullFull:
			return FullEmpty, Advanced
		}
		panic("handshake: sink_drain with sink slot empty")

	case Push:
		switch s {
		case FullEmpty:
			return EmptyFull, Swapped
		case FullFull:
			return FullFull, Blocked
		}
		// Source slot is empty: the consumer's Pull already moved the item.
		return s, Completed

	case Pull:
		switch s {
		case FullEmpty:
			return EmptyFull, Swapped
		case EmptyEmpty:
			return EmptyEmpty, Blocked
		}
		// Sink slot is full: the producer's Push already moved the item.
		return s, Completed
	}

	panic(fmt.Sprintf("handshake: unknown event %d", int(e)))
}
