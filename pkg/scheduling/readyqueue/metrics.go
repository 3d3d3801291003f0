package readyqueue

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/dagflow/pkg/common/errors"
	"github.com/vnykmshr/dagflow/pkg/metrics"
)

// InstrumentedQueue wraps a Queue with Prometheus metrics collection.
type InstrumentedQueue[T any] struct {
	q        *Queue[T]
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a queue with metrics enabled on a dedicated registry.
func NewWithMetrics[T any](name string) *InstrumentedQueue[T] {
	cfg := metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	}
	return NewInstrumented(New[T](), name, cfg)
}

// NewInstrumented wraps an existing queue with metrics collection.
func NewInstrumented[T any](q *Queue[T], name string, cfg metrics.Config) *InstrumentedQueue[T] {
	registry := metrics.DefaultRegistry
	if cfg.Registry != nil {
		registry = metrics.NewRegistry(cfg.Registry)
	}

	iq := &InstrumentedQueue[T]{
		q:        q,
		name:     name,
		registry: registry,
		enabled:  cfg.Enabled,
	}
	iq.updateDepth()
	return iq
}

// Queue returns the wrapped queue.
func (iq *InstrumentedQueue[T]) Queue() *Queue[T] {
	return iq.q
}

// Push appends an item. See Queue.Push.
func (iq *InstrumentedQueue[T]) Push(item T) error {
	err := iq.q.Push(item)
	if iq.enabled {
		switch err {
		case nil:
			iq.registry.QueuePushes.WithLabelValues(iq.name).Inc()
		case errors.ErrDraining:
			iq.registry.QueueRejected.WithLabelValues(iq.name, "draining").Inc()
		case errors.ErrShutdown:
			iq.registry.QueueRejected.WithLabelValues(iq.name, "shutdown").Inc()
		}
		iq.updateDepth()
	}
	return err
}

// TryPush is a historical alias of Push.
func (iq *InstrumentedQueue[T]) TryPush(item T) error {
	return iq.Push(item)
}

// TryPop returns an item immediately if one is available. See Queue.TryPop.
func (iq *InstrumentedQueue[T]) TryPop() (T, bool) {
	item, ok := iq.q.TryPop()
	if iq.enabled && ok {
		iq.registry.QueuePops.WithLabelValues(iq.name).Inc()
	}
	if iq.enabled {
		iq.updateDepth()
	}
	return item, ok
}

// Pop returns a random queued item, waiting until one is available.
// See Queue.Pop.
func (iq *InstrumentedQueue[T]) Pop() (T, bool) {
	item, ok := iq.q.Pop()
	if iq.enabled && ok {
		iq.registry.QueuePops.WithLabelValues(iq.name).Inc()
	}
	if iq.enabled {
		iq.updateDepth()
	}
	return item, ok
}

// Drain soft-stops the queue. See Queue.Drain.
func (iq *InstrumentedQueue[T]) Drain() {
	iq.q.Drain()
}

// Shutdown hard-stops the queue. See Queue.Shutdown.
func (iq *InstrumentedQueue[T]) Shutdown() {
	iq.q.Shutdown()
	if iq.enabled {
		iq.updateDepth()
	}
}

// Len returns the number of items currently held.
func (iq *InstrumentedQueue[T]) Len() int {
	return iq.q.Len()
}

// Empty returns true if the queue holds no items.
func (iq *InstrumentedQueue[T]) Empty() bool {
	return iq.q.Empty()
}

// EnableMetrics enables metrics collection.
func (iq *InstrumentedQueue[T]) EnableMetrics(cfg metrics.Config) error {
	iq.enabled = cfg.Enabled
	if cfg.Registry != nil {
		iq.registry = metrics.NewRegistry(cfg.Registry)
	}
	if iq.enabled {
		iq.updateDepth()
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (iq *InstrumentedQueue[T]) DisableMetrics() {
	iq.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (iq *InstrumentedQueue[T]) MetricsEnabled() bool {
	return iq.enabled
}

func (iq *InstrumentedQueue[T]) updateDepth() {
	if !iq.enabled {
		return
	}
	iq.registry.QueueDepth.WithLabelValues(iq.name).Set(float64(iq.q.Len()))
}
