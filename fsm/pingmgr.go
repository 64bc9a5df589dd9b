package fsm

import (
	"math/rand/v2"
	"time"

	"github.com/lanternlabs/lantern/clock"
)

// Liveness detection.
//
// A single ping is kept in flight per peer. After a matching pong comes
// back, the peer idles until PingInterval has passed, then a fresh ping is
// sent. A peer that leaves a ping unanswered for the configured timeout is
// asked to disconnect.

const (
	// PingInterval is the time to wait between sent pings.
	PingInterval = 2 * time.Minute
	// PingTimeout is the default time to wait for a pong before considering
	// the peer dead.
	PingTimeout = 10 * time.Minute

	// maxRecordedLatencies bounds the round-trip samples kept per peer.
	maxRecordedLatencies = 64
)

// peerLivenessState is the liveness state of a single peer.
type peerLivenessState uint8

const (
	// stateAwaitingPong means a ping is in flight and its pong is pending.
	stateAwaitingPong peerLivenessState = iota
	// stateIdle means the last ping was answered.
	stateIdle
)

// Peer is the liveness record of a negotiated peer.
type Peer struct {
	address PeerID

	state peerLivenessState
	// nonce of the in-flight ping; meaningful only while awaiting a pong.
	nonce uint64
	// since is when the current state was entered.
	since clock.LocalTime

	latencies latencyRing
}

// Address returns the peer's network address.
func (p *Peer) Address() PeerID {
	return p.address
}

// AwaitingPong returns the in-flight nonce and the send time, if a pong is
// pending.
func (p *Peer) AwaitingPong() (nonce uint64, since clock.LocalTime, ok bool) {
	if p.state != stateAwaitingPong {
		return 0, 0, false
	}
	return p.nonce, p.since, true
}

// Idle returns when the last pong was received, if no ping is in flight.
func (p *Peer) Idle() (since clock.LocalTime, ok bool) {
	if p.state != stateIdle {
		return 0, false
	}
	return p.since, true
}

// Latency returns the average round-trip latency over the retained samples.
// It must not be called before at least one sample has been recorded.
func (p *Peer) Latency() time.Duration {
	return p.latencies.average()
}

// Latencies returns the retained round-trip samples, newest first.
func (p *Peer) Latencies() []time.Duration {
	return p.latencies.samples()
}

func (p *Peer) recordLatency(sample time.Duration) {
	p.latencies.record(sample)
}

// latencyRing holds up to maxRecordedLatencies samples, newest first.
// Recording beyond capacity drops the oldest sample.
type latencyRing struct {
	buf  [maxRecordedLatencies]time.Duration
	head int
	n    int
}

func (r *latencyRing) record(sample time.Duration) {
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = sample
	if r.n < len(r.buf) {
		r.n++
	}
}

func (r *latencyRing) average() time.Duration {
	var sum time.Duration
	for i := 0; i < r.n; i++ {
		sum += r.buf[(r.head+i)%len(r.buf)]
	}
	return sum / time.Duration(r.n)
}

func (r *latencyRing) samples() []time.Duration {
	out := make([]time.Duration, r.n)
	for i := 0; i < r.n; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// PingManager detects dead peer connections and answers peer pings.
type PingManager struct {
	peers       map[PeerID]*Peer
	pingTimeout time.Duration
	rng         *rand.Rand
	outbox      Outbox
	clock       clock.Clock
}

// NewPingManager creates a ping manager. The random source draws ping
// nonces; tests pass a seeded one.
func NewPingManager(pingTimeout time.Duration, rng *rand.Rand, clk clock.Clock) *PingManager {
	return &PingManager{
		peers:       make(map[PeerID]*Peer),
		pingTimeout: pingTimeout,
		rng:         rng,
		clock:       clk,
	}
}

// Peer returns the liveness record for the given address, if tracked.
func (m *PingManager) Peer(addr PeerID) (*Peer, bool) {
	p, ok := m.peers[addr]
	return p, ok
}

// NumPeers returns the number of tracked peers.
func (m *PingManager) NumPeers() int {
	return len(m.peers)
}

// ReceivedEvent delivers one ordered event to the manager. Variants the
// manager doesn't care about are no-ops.
func (m *PingManager) ReceivedEvent(e Event) {
	switch e := e.(type) {
	case PeerNegotiated:
		m.peerNegotiated(e.Addr)
	case PeerDisconnected:
		delete(m.peers, e.Addr)
	case MessageReceived:
		switch msg := e.Message.(type) {
		case *MsgPing:
			m.receivedPing(e.From, msg.Nonce)
		case *MsgPong:
			m.receivedPong(e.From, msg.Nonce)
		}
	}
}

// Tick re-evaluates every peer's timeout and interval conditions against the
// current clock reading. Intervals between ticks may be arbitrary; nothing
// is counted, only stored timestamps are compared.
func (m *PingManager) Tick() {
	now := m.clock.LocalTime()

	for _, peer := range m.peers {
		switch peer.state {
		case stateAwaitingPong:
			// A ping is in flight. If too much time has passed, the peer is
			// considered dead and asked to disconnect. The record stays until
			// the PeerDisconnected event arrives, so the disconnect repeats
			// on every tick while the condition holds.
			if now.Sub(peer.since) >= m.pingTimeout {
				m.outbox.Disconnect(peer.address, DisconnectPeerTimeout{Subsystem: "ping"})
			}
		case stateIdle:
			// No pong outstanding. Once enough time has passed since the
			// last pong, send a fresh ping.
			if now.Sub(peer.since) >= PingInterval {
				nonce := m.rng.Uint64()

				m.outbox.
					Ping(peer.address, nonce).
					SetTimer(m.pingTimeout).
					SetTimer(PingInterval)

				peer.state = stateAwaitingPong
				peer.nonce = nonce
				peer.since = now
			}
		}
	}
}

// Next returns the next queued effect, draining the manager's outbox.
func (m *PingManager) Next() (Io, bool) {
	return m.outbox.Next()
}

// peerNegotiated starts tracking a freshly negotiated peer and sends the
// first ping.
func (m *PingManager) peerNegotiated(addr PeerID) {
	nonce := m.rng.Uint64()
	now := m.clock.LocalTime()

	m.outbox.Ping(addr, nonce)
	m.peers[addr] = &Peer{
		address: addr,
		state:   stateAwaitingPong,
		nonce:   nonce,
		since:   now,
	}
}

// receivedPing echoes a peer's ping. Pings from unknown peers are ignored.
func (m *PingManager) receivedPing(addr PeerID, nonce uint64) bool {
	if _, ok := m.peers[addr]; ok {
		m.outbox.Pong(addr, nonce)

		return true
	}
	return false
}

// receivedPong resolves an in-flight ping. Only a pong whose nonce matches
// the outstanding one records a latency sample and idles the peer; stale,
// duplicate or forged pongs change nothing.
func (m *PingManager) receivedPong(addr PeerID, nonce uint64) bool {
	peer, ok := m.peers[addr]
	if !ok {
		return false
	}
	now := m.clock.LocalTime()

	if peer.state == stateAwaitingPong && nonce == peer.nonce {
		peer.recordLatency(now.Sub(peer.since))
		peer.state = stateIdle
		peer.since = now

		return true
	}
	// Unsolicited or redundant pong. Ignore.
	return false
}
