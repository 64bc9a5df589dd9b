package fsm

import (
	"fmt"
	"net/netip"

	"github.com/lanternlabs/lantern/clock"
	"github.com/lanternlabs/lantern/types"
)

// Event is the closed set of observable protocol occurrences. Every variant
// is an immutable value; heavy payloads (blocks, messages, errors) are held
// by pointer so events are cheap to pass around. Each variant renders to a
// deterministic one-line description via String.
//
// Consumers switch over the concrete variant types; the marker method keeps
// the set closed to this package.
type Event interface {
	fmt.Stringer

	isEvent()
}

// Initializing fires when the node starts building its protocol state,
// before any network activity.
type Initializing struct{}

// Ready fires once the node can process peer events and commands. It is not
// necessarily the first event emitted.
type Ready struct {
	// Tip of the block header chain.
	Tip types.Height
	// FilterTip of the filter header chain.
	FilterTip types.Height
	// Time is the local time at readiness.
	Time clock.LocalTime
}

// PeerLoadedBloomFilter fires when a bloom filter was loaded onto a peer
// connection.
type PeerLoadedBloomFilter struct {
	Filter *types.FilterLoad
	Peer   PeerID
}

// PeerConnected fires when the physical connection is established. Use
// PeerNegotiated to know when the protocol handshake has completed.
type PeerConnected struct {
	Addr      PeerID
	LocalAddr netip.AddrPort
	Link      types.Link
}

// PeerConnecting fires when an outbound connection attempt starts.
type PeerConnecting struct {
	Addr     PeerID
	Source   Source
	Services types.ServiceFlags
}

// PeerDisconnected fires after a successfully connected peer goes away.
type PeerDisconnected struct {
	Addr   PeerID
	Reason DisconnectReason
}

// PeerTimedOut fires when a peer failed to respond in time. This usually
// leads to a disconnection.
type PeerTimedOut struct {
	Addr PeerID
}

// PeerConnectionFailed fires when a connection was never established.
type PeerConnectionFailed struct {
	Addr PeerID
	Err  error
}

// PeerNegotiated fires when the protocol handshake completes. The connection
// is fully functional from this point.
type PeerNegotiated struct {
	Addr       PeerID
	Link       types.Link
	Services   types.ServiceFlags
	Persistent bool
	Height     types.Height
	// Receiver is our own address as seen by the remote.
	Receiver  netip.AddrPort
	UserAgent string
	Version   uint32
	Relay     bool
}

// PeerHeightUpdated fires when the best height amongst connected peers
// changes. Peers don't have to follow the protocol, so there is no guarantee
// this height really exists.
type PeerHeightUpdated struct {
	Height types.Height
}

// PeerMisbehaved fires when a peer breaks protocol rules.
type PeerMisbehaved struct {
	Addr   PeerID
	Reason string
}

// BlockConnected fires when a block is added to the main chain.
type BlockConnected struct {
	Header types.BlockHeader
	Height types.Height
}

// BlockDisconnected fires when a main-chain block is reverted by a re-org.
// These fire from the tip backwards to the earliest reverted block; all
// transactions in the block become unconfirmed.
type BlockDisconnected struct {
	Header types.BlockHeader
	Height types.Height
}

// BlockProcessed fires when a downloaded block has been processed.
type BlockProcessed struct {
	Block  *types.Block
	Height types.Height
	Fees   *types.FeeEstimate
}

// BlockMatched fires when a block matched a loaded filter and is ready for
// processing. It usually precedes TxStatusChanged events.
type BlockMatched struct {
	Height types.Height
	Block  *types.Block
}

// ReceivedMerkleBlock fires when a merkle block arrives from the network.
type ReceivedMerkleBlock struct {
	Height      types.Height
	MerkleBlock *types.MerkleBlock
	Peer        PeerID
}

// BlockHeadersSynced fires when the header chain is in sync with the network.
type BlockHeadersSynced struct {
	Height types.Height
	Hash   types.BlockHash
}

// BlockHeadersImported fires when headers are fetched from peers or imported
// by the user.
type BlockHeadersImported struct {
	Hash   types.BlockHash
	Height types.Height
	// Connected headers joined to the active chain; never empty.
	Connected []types.ChainLink
	// Reverted headers removed from the active chain.
	Reverted []types.ChainLink
	// Reorg is set if the import triggered a chain reorganization.
	Reorg bool
}

// BlockFilterImported fires when filter headers are imported.
type BlockFilterImported struct {
	Hash      types.BlockHash
	Height    types.Height
	Connected []types.ChainLink
	Reverted  []types.ChainLink
	Reorg     bool
}

// FeeEstimated fires when a fee rate was estimated for a block.
type FeeEstimated struct {
	Block  types.BlockHash
	Height types.Height
	Fees   types.FeeEstimate
}

// FilterProcessed fires when a compact filter was processed. If it matched,
// the corresponding block was scheduled for download and a BlockMatched
// event will eventually fire.
type FilterProcessed struct {
	Block   types.BlockHash
	Height  types.Height
	Matched bool
	Valid   bool
	Cached  bool
}

// FilterReceived fires when a compact filter arrives from a peer.
type FilterReceived struct {
	From   PeerID
	Filter *types.BlockFilter
	Height types.Height
	Block  types.BlockHash
}

// FilterRescanStarted fires when a filter rescan begins. Stop is nil for an
// open-ended rescan.
type FilterRescanStarted struct {
	Start types.Height
	Stop  *types.Height
}

// FilterRescanStopped fires when a filter rescan completes.
type FilterRescanStopped struct {
	Height types.Height
}

// MerkleBlockScanStarted fires when a merkle block rescan begins.
type MerkleBlockScanStarted struct {
	Start types.Height
	Stop  *types.Height
	Peer  PeerID
}

// MerkleBlockRescanStopped fires when a merkle block rescan completes.
type MerkleBlockRescanStopped struct {
	Height types.Height
	Peer   PeerID
}

// FilterHeadersSynced fires when filter headers reach the block header
// height.
type FilterHeadersSynced struct {
	Height types.Height
}

// TxStatusChanged fires when a transaction's status changes.
type TxStatusChanged struct {
	Txid   types.Txid
	Status TxStatus
}

// ReceivedMatchedTx fires when a transaction matching the watchlist arrives.
type ReceivedMatchedTx struct {
	Transaction *types.Transaction
}

// Scanned fires when the chain has been scanned up to a height.
type Scanned struct {
	Height types.Height
}

// MessageReceived fires for every gossip message received from a peer.
type MessageReceived struct {
	From    PeerID
	Message Message
}

// AddressBookExhausted fires when no further candidate addresses are known.
type AddressBookExhausted struct{}

// Error carries a fault observed by the protocol. It is informational only
// and never interrupts processing of subsequent events.
type Error struct {
	Err error
}

func (Initializing) String() string {
	return "Initializing peer-to-peer system.."
}

func (Ready) String() string {
	return "Ready to process events and commands"
}

func (e PeerLoadedBloomFilter) String() string {
	// The filter contents are deliberately not rendered.
	return fmt.Sprintf("Bloom filter loaded to peer %s", e.Peer)
}

func (e PeerConnected) String() string {
	return fmt.Sprintf("Peer %s connected (%s)", e.Addr, e.Link)
}

func (e PeerConnecting) String() string {
	return fmt.Sprintf("Connecting to peer %s", e.Addr)
}

func (e PeerDisconnected) String() string {
	return fmt.Sprintf("Disconnected from %s (%s)", e.Addr, e.Reason)
}

func (e PeerTimedOut) String() string {
	return fmt.Sprintf("Peer %s timed out", e.Addr)
}

func (e PeerConnectionFailed) String() string {
	return fmt.Sprintf("Peer connection attempt to %s failed with %v", e.Addr, e.Err)
}

func (e PeerNegotiated) String() string {
	return fmt.Sprintf("Peer %s negotiated with services %s and height %d..",
		e.Addr, e.Services, e.Height)
}

func (e PeerHeightUpdated) String() string {
	return fmt.Sprintf("Peer height updated to %d", e.Height)
}

func (e PeerMisbehaved) String() string {
	return fmt.Sprintf("Peer %s misbehaved: %s", e.Addr, e.Reason)
}

func (e BlockConnected) String() string {
	return fmt.Sprintf("Block %s connected at height %d", e.Header.BlockHash(), e.Height)
}

func (e BlockDisconnected) String() string {
	return fmt.Sprintf("Block %s disconnected at height %d", e.Header.BlockHash(), e.Height)
}

func (e BlockProcessed) String() string {
	return fmt.Sprintf("Block %s processed at height %d", e.Block.BlockHash(), e.Height)
}

func (e BlockMatched) String() string {
	return fmt.Sprintf("Block matched at height %d", e.Height)
}

func (e ReceivedMerkleBlock) String() string {
	return fmt.Sprintf("MerkleBlock received at height %d from %s", e.Height, e.Peer)
}

func (e BlockHeadersSynced) String() string {
	return fmt.Sprintf("Chain in sync with network at height %d (%s)", e.Height, e.Hash)
}

func (e BlockHeadersImported) String() string {
	return fmt.Sprintf("Chain tip updated to %s at height %d (reorg=%t)",
		e.Hash, e.Height, e.Reorg)
}

func (e BlockFilterImported) String() string {
	return fmt.Sprintf("Block Filters imported to %s at height %d (reorg=%t)",
		e.Hash, e.Height, e.Reorg)
}

func (e FeeEstimated) String() string {
	return fmt.Sprintf("Transaction median fee rate for block #%d is %d sat/vB",
		e.Height, e.Fees.Median)
}

func (e FilterProcessed) String() string {
	return fmt.Sprintf("Filter processed at height %d (match = %t)", e.Height, e.Matched)
}

func (e FilterReceived) String() string {
	return fmt.Sprintf("Filter for block %s received from %s", e.Block, e.From)
}

func (e FilterRescanStarted) String() string {
	if e.Stop != nil {
		return fmt.Sprintf("Rescan started from height %d to %d", e.Start, *e.Stop)
	}
	return fmt.Sprintf("Rescan started from height %d", e.Start)
}

func (e FilterRescanStopped) String() string {
	return fmt.Sprintf("Rescan completed at height %d", e.Height)
}

func (e MerkleBlockScanStarted) String() string {
	return fmt.Sprintf("A merkle block rescan started at height %d", e.Start)
}

func (e MerkleBlockRescanStopped) String() string {
	return fmt.Sprintf("A merkle block rescan stopped at height %d", e.Height)
}

func (e FilterHeadersSynced) String() string {
	return fmt.Sprintf("Filter headers synced up to height %d", e.Height)
}

func (e TxStatusChanged) String() string {
	return fmt.Sprintf("Transaction %s status changed: %s", e.Txid, e.Status)
}

func (e ReceivedMatchedTx) String() string {
	return fmt.Sprintf("Received transaction match %s", e.Transaction.Txid())
}

func (e Scanned) String() string {
	return fmt.Sprintf("Chain scanned up to height %d", e.Height)
}

func (e MessageReceived) String() string {
	return fmt.Sprintf("Message `%s` received from %s", e.Message.Command(), e.From)
}

func (AddressBookExhausted) String() string {
	return "Address book exhausted.. fetching new addresses from peers"
}

func (e Error) String() string {
	return fmt.Sprintf("Error: %v", e.Err)
}

func (Initializing) isEvent()             {}
func (Ready) isEvent()                    {}
func (PeerLoadedBloomFilter) isEvent()    {}
func (PeerConnected) isEvent()            {}
func (PeerConnecting) isEvent()           {}
func (PeerDisconnected) isEvent()         {}
func (PeerTimedOut) isEvent()             {}
func (PeerConnectionFailed) isEvent()     {}
func (PeerNegotiated) isEvent()           {}
func (PeerHeightUpdated) isEvent()        {}
func (PeerMisbehaved) isEvent()           {}
func (BlockConnected) isEvent()           {}
func (BlockDisconnected) isEvent()        {}
func (BlockProcessed) isEvent()           {}
func (BlockMatched) isEvent()             {}
func (ReceivedMerkleBlock) isEvent()      {}
func (BlockHeadersSynced) isEvent()       {}
func (BlockHeadersImported) isEvent()     {}
func (BlockFilterImported) isEvent()      {}
func (FeeEstimated) isEvent()             {}
func (FilterProcessed) isEvent()          {}
func (FilterReceived) isEvent()           {}
func (FilterRescanStarted) isEvent()      {}
func (FilterRescanStopped) isEvent()      {}
func (MerkleBlockScanStarted) isEvent()   {}
func (MerkleBlockRescanStopped) isEvent() {}
func (FilterHeadersSynced) isEvent()      {}
func (TxStatusChanged) isEvent()          {}
func (ReceivedMatchedTx) isEvent()        {}
func (Scanned) isEvent()                  {}
func (MessageReceived) isEvent()          {}
func (AddressBookExhausted) isEvent()     {}
func (Error) isEvent()                    {}

// Source describes where a peer address came from.
type Source uint8

const (
	// SourceDNS means the address came from DNS seeding.
	SourceDNS Source = iota
	// SourcePeer means the address was gossiped by another peer.
	SourcePeer
	// SourceImported means the address was supplied by the user.
	SourceImported
)

func (s Source) String() string {
	switch s {
	case SourceDNS:
		return "dns"
	case SourcePeer:
		return "peer"
	case SourceImported:
		return "imported"
	default:
		return "unknown"
	}
}
