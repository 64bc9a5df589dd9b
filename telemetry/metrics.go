// Package telemetry exposes prometheus metrics for the protocol core's
// driver surface.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the stimuli delivered to and effects drained from the
// protocol state machine.
type Metrics struct {
	Registry *prometheus.Registry

	EventsTotal  *prometheus.CounterVec
	EffectsTotal *prometheus.CounterVec
	TicksTotal   prometheus.Counter
}

// New creates a Metrics set registered on its own registry.
func New(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Total number of protocol events processed.",
			},
			[]string{"event"},
		),
		EffectsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "effects_total",
				Help:      "Total number of effects drained from manager outboxes.",
			},
			[]string{"effect"},
		),
		TicksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticks_total",
				Help:      "Total number of ticks delivered to the state machine.",
			},
		),
	}

	m.Registry.MustRegister(m.EventsTotal, m.EffectsTotal, m.TicksTotal)
	return m
}
