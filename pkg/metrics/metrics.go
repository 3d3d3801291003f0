// Package metrics provides Prometheus instrumentation for dagflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for dagflow components.
type Registry struct {
	// Handshake Channel Metrics
	HandshakeEvents   *prometheus.CounterVec
	HandshakeSwaps    *prometheus.CounterVec
	HandshakeBlocked  *prometheus.CounterVec
	HandshakeInFlight *prometheus.GaugeVec

	// Ready Queue Metrics
	QueuePushes   *prometheus.CounterVec
	QueuePops     *prometheus.CounterVec
	QueueRejected *prometheus.CounterVec
	QueueDepth    *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by dagflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Handshake Channel Metrics
		HandshakeEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dagflow",
				Subsystem: "handshake",
				Name:      "events_total",
				Help:      "Total number of channel events by kind",
			},
			[]string{"channel_name", "event"},
		),

		HandshakeSwaps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dagflow",
				Subsystem: "handshake",
				Name:      "swaps_total",
				Help:      "Total number of item transfers by the side that performed them",
			},
			[]string{"channel_name", "side"},
		),

		HandshakeBlocked: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dagflow",
				Subsystem: "handshake",
				Name:      "blocked_total",
				Help:      "Total number of operations that had to wait for the peer",
			},
			[]string{"channel_name", "side"},
		),

		HandshakeInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "dagflow",
				Subsystem: "handshake",
				Name:      "in_flight",
				Help:      "Number of items currently held in channel slots (0-2)",
			},
			[]string{"channel_name"},
		),

		// Ready Queue Metrics
		QueuePushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dagflow",
				Subsystem: "readyqueue",
				Name:      "pushes_total",
				Help:      "Total number of items accepted by the queue",
			},
			[]string{"queue_name"},
		),

		QueuePops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dagflow",
				Subsystem: "readyqueue",
				Name:      "pops_total",
				Help:      "Total number of items returned by the queue",
			},
			[]string{"queue_name"},
		),

		QueueRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dagflow",
				Subsystem: "readyqueue",
				Name:      "rejected_total",
				Help:      "Total number of pushes rejected by reason",
			},
			[]string{"queue_name", "reason"},
		),

		QueueDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "dagflow",
				Subsystem: "readyqueue",
				Name:      "depth",
				Help:      "Current number of items held by the queue",
			},
			[]string{"queue_name"},
		),
	}
}
