package fsm

import "github.com/lanternlabs/lantern/types"

// Message is the closed set of gossip messages exchanged with peers. These
// are in-memory values only; encoding them for the wire is the transport
// layer's job. Events and effects hold them by pointer so cloning is cheap.
type Message interface {
	// Command returns the protocol command name of the message.
	Command() string

	isMessage()
}

// InvType is the kind of object referenced by an inventory item.
type InvType uint32

const (
	// InvTx references a transaction.
	InvTx InvType = 1
	// InvBlock references a block.
	InvBlock InvType = 2
	// InvFilteredBlock references a bloom-filtered block.
	InvFilteredBlock InvType = 3
)

// InvVect is a single inventory item.
type InvVect struct {
	Type InvType
	Hash [32]byte
}

// AddressEntry is a peer address advertisement.
type AddressEntry struct {
	Services types.ServiceFlags
	Addr     PeerID
}

// MsgPing is a liveness probe carrying a random nonce.
type MsgPing struct {
	Nonce uint64
}

// MsgPong echoes the nonce of a received ping.
type MsgPong struct {
	Nonce uint64
}

// MsgGetAddr requests known peer addresses.
type MsgGetAddr struct{}

// MsgAddr advertises known peer addresses.
type MsgAddr struct {
	Addresses []AddressEntry
}

// MsgInv announces inventory available from the sender.
type MsgInv struct {
	Items []InvVect
}

// MsgGetData requests inventory items by reference.
type MsgGetData struct {
	Items []InvVect
}

// MsgTx carries a transaction.
type MsgTx struct {
	Transaction *types.Transaction
}

// MsgGetHeaders requests headers following a block locator.
type MsgGetHeaders struct {
	Locator []types.BlockHash
	Stop    types.BlockHash
}

// MsgHeaders carries a batch of block headers.
type MsgHeaders struct {
	Headers []types.BlockHeader
}

// MsgFeeFilter advertises the minimum fee rate, in sat/kvB, for relayed
// transactions.
type MsgFeeFilter struct {
	FeeRate int64
}

func (*MsgPing) Command() string       { return "ping" }
func (*MsgPong) Command() string       { return "pong" }
func (*MsgGetAddr) Command() string    { return "getaddr" }
func (*MsgAddr) Command() string       { return "addr" }
func (*MsgInv) Command() string        { return "inv" }
func (*MsgGetData) Command() string    { return "getdata" }
func (*MsgTx) Command() string         { return "tx" }
func (*MsgGetHeaders) Command() string { return "getheaders" }
func (*MsgHeaders) Command() string    { return "headers" }
func (*MsgFeeFilter) Command() string  { return "feefilter" }

func (*MsgPing) isMessage()       {}
func (*MsgPong) isMessage()       {}
func (*MsgGetAddr) isMessage()    {}
func (*MsgAddr) isMessage()       {}
func (*MsgInv) isMessage()        {}
func (*MsgGetData) isMessage()    {}
func (*MsgTx) isMessage()         {}
func (*MsgGetHeaders) isMessage() {}
func (*MsgHeaders) isMessage()    {}
func (*MsgFeeFilter) isMessage()  {}
