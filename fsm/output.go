package fsm

import "time"

// Io is an effect produced by a manager for the environment to perform.
// Effects are opaque to the core: they are produced, queued in order, and
// consumed by the driver.
type Io interface {
	isIo()
}

// IoSend asks the environment to send a message to a peer.
type IoSend struct {
	Addr    PeerID
	Message Message
}

// IoConnect asks the environment to open a connection to a peer.
type IoConnect struct {
	Addr PeerID
}

// IoDisconnect asks the environment to close a peer connection.
type IoDisconnect struct {
	Addr   PeerID
	Reason DisconnectReason
}

// IoSetTimer asks the environment to deliver a tick after the duration.
type IoSetTimer struct {
	Duration time.Duration
}

// IoEvent surfaces an event produced by a manager.
type IoEvent struct {
	Event Event
}

func (IoSend) isIo()       {}
func (IoConnect) isIo()    {}
func (IoDisconnect) isIo() {}
func (IoSetTimer) isIo()   {}
func (IoEvent) isIo()      {}

// Outbox is a manager's queue of pending effects. Each manager owns exactly
// one; the driver drains it after every delivered event or tick. The queue
// is unbounded, so the environment must drain at least once per stimulus.
type Outbox struct {
	queue []Io
}

// Push appends an effect to the queue.
func (o *Outbox) Push(io Io) *Outbox {
	o.queue = append(o.queue, io)
	return o
}

// Next removes and returns the oldest pending effect. It returns false when
// the queue is empty.
func (o *Outbox) Next() (Io, bool) {
	if len(o.queue) == 0 {
		return nil, false
	}
	io := o.queue[0]
	o.queue = o.queue[1:]
	return io, true
}

// Len returns the number of pending effects.
func (o *Outbox) Len() int {
	return len(o.queue)
}

// Send queues a message send to the given peer.
func (o *Outbox) Send(addr PeerID, msg Message) *Outbox {
	return o.Push(IoSend{Addr: addr, Message: msg})
}

// Ping queues a ping carrying the given nonce.
func (o *Outbox) Ping(addr PeerID, nonce uint64) *Outbox {
	return o.Send(addr, &MsgPing{Nonce: nonce})
}

// Pong queues a pong echoing the given nonce.
func (o *Outbox) Pong(addr PeerID, nonce uint64) *Outbox {
	return o.Send(addr, &MsgPong{Nonce: nonce})
}

// Connect queues a connection attempt to the given peer.
func (o *Outbox) Connect(addr PeerID) *Outbox {
	return o.Push(IoConnect{Addr: addr})
}

// Disconnect queues a disconnection of the given peer.
func (o *Outbox) Disconnect(addr PeerID, reason DisconnectReason) *Outbox {
	return o.Push(IoDisconnect{Addr: addr, Reason: reason})
}

// SetTimer queues a timer request. A send may arm several timers, so calls
// chain.
func (o *Outbox) SetTimer(d time.Duration) *Outbox {
	return o.Push(IoSetTimer{Duration: d})
}

// Event queues an event for the environment to surface.
func (o *Outbox) Event(e Event) *Outbox {
	return o.Push(IoEvent{Event: e})
}
