package handshake

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vnykmshr/dagflow/pkg/common/errors"
)

// Config holds configuration for a Channel.
type Config[T any] struct {
	// SourceInit and SinkInit are the initial placeholder contents of the
	// two slots. Zero values are fine for most item types; tests use
	// sentinels to make accidental reads visible.
	SourceInit T
	SinkInit   T

	// Policy selects the swap/wait strategy.
	Policy PolicyKind

	// Name labels this channel in the debug trace and metrics.
	Name string

	// Debug enables a trace of every transition through Logger.
	// Transition semantics are identical with or without it.
	Debug bool

	// Logger receives the debug trace. If nil, the logrus standard logger
	// is used.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a default channel configuration.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		Policy: Async,
		Name:   "handshake",
	}
}

// Channel is a single-slot rendezvous channel between exactly one producer
// and one consumer. The producer alternates Fill and Push; the consumer
// alternates Pull and Drain. The two sides meet through the state machine in
// Step and the channel's Policy: whichever side arrives at a transferable
// state first performs the item move, and the other side's pending operation
// completes without doing work of its own.
//
// A Channel is shared by reference between the two sides and must outlive
// both. It holds at most one item in flight: a second Fill cannot happen
// until the first item has left the source slot.
type Channel[T any] struct {
	mu     sync.Mutex
	state  State
	source T
	sink   T

	policy Policy

	// counters, guarded by mu
	events        uint64
	sourceSwaps   uint64
	sinkSwaps     uint64
	sourceBlocked uint64
	sinkBlocked   uint64

	name   string
	debug  bool
	logger logrus.FieldLogger
}

// New creates a channel with the default configuration (Async policy).
func New[T any]() *Channel[T] {
	ch, err := NewWithConfig(DefaultConfig[T]())
	if err != nil {
		// DefaultConfig is always valid.
		panic(err)
	}
	return ch
}

// NewWithConfig creates a channel with the specified configuration.
func NewWithConfig[T any](cfg Config[T]) (*Channel[T], error) {
	switch cfg.Policy {
	case Async, Unified, Manual:
	default:
		return nil, errors.NewValidationError("handshake", "policy", int(cfg.Policy), "unknown policy kind").
			WithHint("use Async, Unified, or Manual")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	name := cfg.Name
	if name == "" {
		name = "handshake"
	}

	ch := &Channel[T]{
		state:  EmptyEmpty,
		source: cfg.SourceInit,
		sink:   cfg.SinkInit,
		name:   name,
		debug:  cfg.Debug,
		logger: logger,
	}

	switch cfg.Policy {
	case Async:
		ch.policy = newAsyncPolicy(&ch.mu)
	case Unified:
		ch.policy = newUnifiedPolicy(&ch.mu)
	case Manual:
		ch.policy = manualPolicy{}
	}

	return ch, nil
}

// Fill places item into the source slot. The producer must not call Fill
// again until a Push (or the consumer's Pull) has emptied the slot; doing so
// is a protocol violation and panics. Fill never suspends.
func (c *Channel[T]) Fill(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, _ := Step(c.state, SourceFill)
	c.source = item
	c.transition(SourceFill, next, "source filled")

	// A consumer waiting in Pull on an empty channel can now swap.
	c.policy.NotifySink()
	c.policy.OnReturn(SourceFill)
}

// Push transfers the item in the source slot to the sink slot, waiting for
// the consumer to drain first if the sink slot is occupied. Push returns once
// the item has left the source slot, whether this side or the consumer's Pull
// performed the move. Blocking is unbounded; bounded waits belong to a layer
// above this core.
func (c *Channel[T]) Push() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		next, outcome := Step(c.state, Push)
		switch outcome {
		case Swapped:
			c.source, c.sink = c.sink, c.source
			c.sourceSwaps++
			c.transition(Push, next, "source swapped items")
			c.policy.NotifySink()
			c.policy.OnReturn(Push)
			return

		case Blocked:
			// Wake the consumer first: its drain is what unblocks us.
			c.trace(Push, c.state, next, "source waiting")
			c.sourceBlocked++
			c.policy.NotifySink()
			c.policy.WaitSource()

		case Completed:
			c.transition(Push, next, "push already satisfied by pull")
			c.policy.OnReturn(Push)
			return
		}
	}
}

// Pull transfers the item in the source slot to the sink slot from the
// consumer side, waiting for the producer to fill first if the channel is
// empty. Pull returns once the sink slot holds an item, whether this side or
// the producer's Push performed the move.
func (c *Channel[T]) Pull() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		next, outcome := Step(c.state, Pull)
		switch outcome {
		case Swapped:
			c.source, c.sink = c.sink, c.source
			c.sinkSwaps++
			c.transition(Pull, next, "sink swapped items")
			c.policy.NotifySource()
			c.policy.OnReturn(Pull)
			return

		case Blocked:
			c.trace(Pull, c.state, next, "sink waiting")
			c.sinkBlocked++
			c.policy.NotifySource()
			c.policy.WaitSink()

		case Completed:
			c.transition(Pull, next, "pull already satisfied by push")
			c.policy.OnReturn(Pull)
			return
		}
	}
}

// Drain takes the item out of the sink slot. The consumer must have completed
// a Pull first; draining an empty sink slot is a protocol violation and
// panics. Drain never suspends.
func (c *Channel[T]) Drain() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, _ := Step(c.state, SinkDrain)
	item := c.sink
	var zero T
	c.sink = zero
	c.transition(SinkDrain, next, "sink drained")

	// A producer waiting in Push on a full channel can now swap.
	c.policy.NotifySource()
	c.policy.OnReturn(SinkDrain)

	return item
}

// State returns the current channel state.
func (c *Channel[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Events returns the number of event applications so far. The counter is
// monotonically increasing and intended for tests and observability.
func (c *Channel[T]) Events() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

// SourceSwaps returns how many transfers the producer side performed.
func (c *Channel[T]) SourceSwaps() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sourceSwaps
}

// SinkSwaps returns how many transfers the consumer side performed.
func (c *Channel[T]) SinkSwaps() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sinkSwaps
}

// BlockedWaits returns how many times each side went to sleep waiting for
// the peer.
func (c *Channel[T]) BlockedWaits() (source, sink uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sourceBlocked, c.sinkBlocked
}

// transition applies a computed next state. Caller must hold mu.
func (c *Channel[T]) transition(e Event, next State, note string) {
	c.trace(e, c.state, next, note)
	c.state = next
	c.events++
}

// trace emits one debug line for an event application. Caller must hold mu.
func (c *Channel[T]) trace(e Event, from, to State, note string) {
	if !c.debug {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"channel":    c.name,
		"seq":        c.events,
		"event":      e.String(),
		"state":      from.String(),
		"next_state": to.String(),
	}).Debug(note)
}
