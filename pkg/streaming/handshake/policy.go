package handshake

import "sync"

// PolicyKind selects the swap/wait strategy used by a channel.
type PolicyKind int

const (
	// Async uses one condition variable per role. The default.
	Async PolicyKind = iota

	// Unified uses a single shared condition variable for both roles.
	// Observable behavior is identical to Async: at most one side can be
	// waiting at any time, and every waiter re-checks its predicate on wake.
	Unified

	// Manual never blocks. Operations whose precondition is unmet panic,
	// so a caller must only invoke them when the state permits. Intended
	// for deterministic, hand-interleaved sequences in tests.
	Manual
)

// String returns the policy kind name.
func (k PolicyKind) String() string {
	switch k {
	case Async:
		return "async"
	case Unified:
		return "unified"
	case Manual:
		return "manual"
	default:
		return "unknown"
	}
}

// Policy is the swap/wait strategy of a channel. All methods are invoked with
// the channel mutex held; Wait methods must atomically release it while
// waiting and reacquire it before returning (sync.Cond discipline). OnReturn
// is an instrumentation hook called as an event application returns; it has
// no effect on correctness.
type Policy interface {
	// NotifySource wakes the producer if it is waiting in Push.
	NotifySource()

	// NotifySink wakes the consumer if it is waiting in Pull.
	NotifySink()

	// WaitSource blocks the producer until NotifySource.
	WaitSource()

	// WaitSink blocks the consumer until NotifySink.
	WaitSink()

	// OnReturn is called with the completed event just before an operation
	// returns to the caller.
	OnReturn(e Event)
}

// asyncPolicy implements Policy with one condition variable per role.
type asyncPolicy struct {
	source sync.Cond
	sink   sync.Cond
}

func newAsyncPolicy(mu *sync.Mutex) *asyncPolicy {
	return &asyncPolicy{
		source: sync.Cond{L: mu},
		sink:   sync.Cond{L: mu},
	}
}

func (p *asyncPolicy) NotifySource() { p.source.Signal() }
func (p *asyncPolicy) NotifySink()   { p.sink.Signal() }
func (p *asyncPolicy) WaitSource()   { p.source.Wait() }
func (p *asyncPolicy) WaitSink()     { p.sink.Wait() }
func (p *asyncPolicy) OnReturn(Event) {}

// unifiedPolicy implements Policy with a single shared condition variable.
// Since a channel has exactly one producer and one consumer, and the state
// machine never lets both sides wait at once, Signal cannot wake the wrong
// side into a lost handoff: the waiter re-derives its view from the state.
type unifiedPolicy struct {
	cv sync.Cond
}

func newUnifiedPolicy(mu *sync.Mutex) *unifiedPolicy {
	return &unifiedPolicy{cv: sync.Cond{L: mu}}
}

func (p *unifiedPolicy) NotifySource() { p.cv.Signal() }
func (p *unifiedPolicy) NotifySink()   { p.cv.Signal() }
func (p *unifiedPolicy) WaitSource()   { p.cv.Wait() }
func (p *unifiedPolicy) WaitSink()     { p.cv.Wait() }
func (p *unifiedPolicy) OnReturn(Event) {}

// manualPolicy implements Policy without any blocking.
type manualPolicy struct{}

func (manualPolicy) NotifySource() {}
func (manualPolicy) NotifySink()   {}

func (manualPolicy) WaitSource() {
	panic("handshake: producer blocked with manual policy")
}

func (manualPolicy) WaitSink() {
	panic("handshake: consumer blocked with manual policy")
}

func (manualPolicy) OnReturn(Event) {}
