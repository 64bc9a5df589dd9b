// Package fsm is the sans-I/O protocol core of the light client: a closed
// event taxonomy, an effect-queue contract shared by every protocol manager,
// and the liveness (ping) manager built on that contract.
//
// Nothing in this package performs I/O or blocks. The machine advances only
// when the environment delivers an event or a tick; every call returns once
// the resulting effects are queued, and the environment drains them through
// the pull-based outbox.
package fsm

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strings"

	"github.com/lanternlabs/lantern/telemetry"
)

// PeerID is a peer's network address. It is the sole identifier of a peer
// session, shared by every manager.
type PeerID = netip.AddrPort

// comparePeerID orders peer addresses by (IP, port).
func comparePeerID(a, b PeerID) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	return cmpInt(int(a.Port()), int(b.Port()))
}

// Manager is the contract every protocol sub-component implements: consume
// the ordered event stream and a periodic tick, produce effects onto an
// owned outbox. Managers are mutually independent; they share only the
// clock and each event delivery.
type Manager interface {
	// ReceivedEvent delivers one event, in the exact order the environment
	// observed it. Irrelevant variants are no-ops, not errors.
	ReceivedEvent(Event)
	// Tick delivers one coarse time advance. Intervals between ticks may be
	// arbitrary and non-uniform.
	Tick()
	// Next returns the next queued effect, or false when the outbox is
	// empty.
	Next() (Io, bool)
}

// StateMachineConfig configures the composite state machine.
type StateMachineConfig struct {
	// Managers receive every event and tick, in slice order.
	Managers []Manager
	// Logger logs processed events; defaults to slog.Default().
	Logger *slog.Logger
	// Metrics is optional driver telemetry.
	Metrics *telemetry.Metrics
}

// StateMachine is the collection glue between the environment and the
// managers: it fans every stimulus out to each manager in registration
// order and drains their outboxes. The relative order of effects produced
// by different managers for the same stimulus follows registration order.
type StateMachine struct {
	managers []Manager
	logger   *slog.Logger
	metrics  *telemetry.Metrics
}

// NewStateMachine creates a composite state machine.
func NewStateMachine(cfg StateMachineConfig) *StateMachine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &StateMachine{
		managers: cfg.Managers,
		logger:   logger,
		metrics:  cfg.Metrics,
	}
}

// ReceivedEvent fans one event out to every manager.
func (sm *StateMachine) ReceivedEvent(e Event) {
	sm.logger.Debug(e.String(), "event", eventName(e))
	if sm.metrics != nil {
		sm.metrics.EventsTotal.WithLabelValues(eventName(e)).Inc()
	}
	for _, m := range sm.managers {
		m.ReceivedEvent(e)
	}
}

// Tick fans one time advance out to every manager.
func (sm *StateMachine) Tick() {
	if sm.metrics != nil {
		sm.metrics.TicksTotal.Inc()
	}
	for _, m := range sm.managers {
		m.Tick()
	}
}

// Next drains the managers' outboxes in registration order, returning the
// next pending effect or false when all outboxes are empty.
func (sm *StateMachine) Next() (Io, bool) {
	for _, m := range sm.managers {
		if io, ok := m.Next(); ok {
			if sm.metrics != nil {
				sm.metrics.EffectsTotal.WithLabelValues(ioName(io)).Inc()
			}
			return io, true
		}
	}
	return nil, false
}

// eventName returns the bare type name of an event variant, for logging and
// metrics labels.
func eventName(e Event) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "fsm.")
}

// ioName returns the bare type name of an effect variant.
func ioName(io Io) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", io), "fsm.")
}
