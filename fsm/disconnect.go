package fsm

import "fmt"

// DisconnectReason is the closed set of reasons a peer connection is closed.
type DisconnectReason interface {
	fmt.Stringer

	isDisconnectReason()
}

// DisconnectPeerTimeout means a subsystem gave up waiting on the peer.
type DisconnectPeerTimeout struct {
	// Subsystem that timed out, e.g. "ping".
	Subsystem string
}

// DisconnectPeerMisbehaving means the peer broke protocol rules.
type DisconnectPeerMisbehaving struct {
	Reason string
}

// DisconnectPeerDropped means the peer was dropped locally, e.g. to make
// room for a better connection.
type DisconnectPeerDropped struct{}

// DisconnectCommand means the user asked for the disconnection.
type DisconnectCommand struct{}

// DisconnectConnectionError means the underlying connection failed.
type DisconnectConnectionError struct {
	Err error
}

func (d DisconnectPeerTimeout) String() string {
	return fmt.Sprintf("%s timeout", d.Subsystem)
}

func (d DisconnectPeerMisbehaving) String() string {
	return fmt.Sprintf("peer misbehaving: %s", d.Reason)
}

func (DisconnectPeerDropped) String() string {
	return "peer dropped"
}

func (DisconnectCommand) String() string {
	return "user command"
}

func (d DisconnectConnectionError) String() string {
	return fmt.Sprintf("connection error: %v", d.Err)
}

func (DisconnectPeerTimeout) isDisconnectReason()     {}
func (DisconnectPeerMisbehaving) isDisconnectReason() {}
func (DisconnectPeerDropped) isDisconnectReason()     {}
func (DisconnectCommand) isDisconnectReason()         {}
func (DisconnectConnectionError) isDisconnectReason() {}
