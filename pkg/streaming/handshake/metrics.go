package handshake

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/dagflow/pkg/metrics"
)

// InstrumentedChannel wraps a Channel with Prometheus metrics collection.
// The wrapper is transparent: operations have identical semantics, and the
// wrapped channel may still be used directly by code that does not care
// about metrics.
type InstrumentedChannel[T any] struct {
	ch       *Channel[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates an Async-policy channel with metrics enabled on a
// dedicated registry.
func NewWithMetrics[T any](name string) *InstrumentedChannel[T] {
	cfg := metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	}
	return NewInstrumented(New[T](), name, cfg)
}

// NewInstrumented wraps an existing channel with metrics collection.
func NewInstrumented[T any](ch *Channel[T], name string, cfg metrics.Config) *InstrumentedChannel[T] {
	registry := metrics.DefaultRegistry
	if cfg.Registry != nil {
		registry = metrics.NewRegistry(cfg.Registry)
	}

	ic := &InstrumentedChannel[T]{
		ch:       ch,
		name:     name,
		registry: registry,
		enabled:  cfg.Enabled,
	}
	ic.updateGauges()
	return ic
}

// Channel returns the wrapped channel.
func (ic *InstrumentedChannel[T]) Channel() *Channel[T] {
	return ic.ch
}

// Fill places item into the source slot. See Channel.Fill.
func (ic *InstrumentedChannel[T]) Fill(item T) {
	ic.ch.Fill(item)
	if ic.enabled {
		ic.registry.HandshakeEvents.WithLabelValues(ic.name, SourceFill.String()).Inc()
		ic.updateGauges()
	}
}

// Push transfers the source item to the sink slot. See Channel.Push.
func (ic *InstrumentedChannel[T]) Push() {
	swapsBefore := ic.ch.SourceSwaps()
	blockedBefore, _ := ic.ch.BlockedWaits()

	ic.ch.Push()

	if ic.enabled {
		ic.registry.HandshakeEvents.WithLabelValues(ic.name, Push.String()).Inc()
		if d := ic.ch.SourceSwaps() - swapsBefore; d > 0 {
			ic.registry.HandshakeSwaps.WithLabelValues(ic.name, "source").Add(float64(d))
		}
		if blockedAfter, _ := ic.ch.BlockedWaits(); blockedAfter > blockedBefore {
			ic.registry.HandshakeBlocked.WithLabelValues(ic.name, "source").Add(float64(blockedAfter - blockedBefore))
		}
		ic.updateGauges()
	}
}

// Pull transfers the source item to the sink slot from the consumer side.
// See Channel.Pull.
func (ic *InstrumentedChannel[T]) Pull() {
	swapsBefore := ic.ch.SinkSwaps()
	_, blockedBefore := ic.ch.BlockedWaits()

	ic.ch.Pull()

	if ic.enabled {
		ic.registry.HandshakeEvents.WithLabelValues(ic.name, Pull.String()).Inc()
		if d := ic.ch.SinkSwaps() - swapsBefore; d > 0 {
			ic.registry.HandshakeSwaps.WithLabelValues(ic.name, "sink").Add(float64(d))
		}
		if _, blockedAfter := ic.ch.BlockedWaits(); blockedAfter > blockedBefore {
			ic.registry.HandshakeBlocked.WithLabelValues(ic.name, "sink").Add(float64(blockedAfter - blockedBefore))
		}
		ic.updateGauges()
	}
}

// Drain takes the item out of the sink slot. See Channel.Drain.
func (ic *InstrumentedChannel[T]) Drain() T {
	item := ic.ch.Drain()
	if ic.enabled {
		ic.registry.HandshakeEvents.WithLabelValues(ic.name, SinkDrain.String()).Inc()
		ic.updateGauges()
	}
	return item
}

// State returns the current channel state.
func (ic *InstrumentedChannel[T]) State() State {
	return ic.ch.State()
}

// EnableMetrics enables metrics collection.
func (ic *InstrumentedChannel[T]) EnableMetrics(cfg metrics.Config) error {
	ic.enabled = cfg.Enabled
	if cfg.Registry != nil {
		ic.registry = metrics.NewRegistry(cfg.Registry)
	}
	if ic.enabled {
		ic.updateGauges()
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (ic *InstrumentedChannel[T]) DisableMetrics() {
	ic.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ic *InstrumentedChannel[T]) MetricsEnabled() bool {
	return ic.enabled
}

func (ic *InstrumentedChannel[T]) updateGauges() {
	if !ic.enabled {
		return
	}
	var inFlight float64
	switch ic.ch.State() {
	case FullEmpty, EmptyFull:
		inFlight = 1
	case FullFull:
		inFlight = 2
	}
	ic.registry.HandshakeInFlight.WithLabelValues(ic.name).Set(inFlight)
}
