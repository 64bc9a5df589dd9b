package fsm

import (
	"bytes"
	"fmt"

	"github.com/lanternlabs/lantern/types"
)

// TxStatus is the closed set of transaction lifecycle states. Values are
// totally ordered by lifecycle progression:
//
//	Unconfirmed < Acknowledged < Confirmed < Reverted < Stale
//
// with field-lexicographic tie-breaking inside a shared tag. The order is
// for deterministic comparison and sorting only; it is not chronological.
// In particular a reverted transaction compares greater than any confirmed
// one, even though reversion conceptually returns it toward unconfirmed.
type TxStatus interface {
	fmt.Stringer

	// rank positions the variant in the lifecycle order.
	rank() int
}

// TxUnconfirmed is the initial state of a transaction after it has been
// announced by the client.
type TxUnconfirmed struct{}

// TxAcknowledged means a peer requested the transaction data after an
// inventory announcement. It does not mean the peer considers it valid.
type TxAcknowledged struct {
	Peer PeerID
}

// TxConfirmed means the transaction was included in a main-chain block.
type TxConfirmed struct {
	Height types.Height
	Block  types.BlockHash
}

// TxReverted means a previously confirmed transaction was reverted by a
// re-org. This can only fire while the confirmed transaction is still in
// memory.
type TxReverted struct {
	Transaction *types.Transaction
}

// TxStale means the transaction was replaced by a conflicting one and will
// probably never confirm. When caused by a re-org it is preceded by a
// TxReverted status.
type TxStale struct {
	ReplacedBy types.Txid
	Block      types.BlockHash
}

func (TxUnconfirmed) rank() int  { return 0 }
func (TxAcknowledged) rank() int { return 1 }
func (TxConfirmed) rank() int    { return 2 }
func (TxReverted) rank() int     { return 3 }
func (TxStale) rank() int        { return 4 }

func (TxUnconfirmed) String() string {
	return "transaction is unconfirmed"
}

func (s TxAcknowledged) String() string {
	return fmt.Sprintf("transaction was acknowledged by peer %s", s.Peer)
}

func (s TxConfirmed) String() string {
	return fmt.Sprintf("transaction was included in block %s at height %d", s.Block, s.Height)
}

func (s TxReverted) String() string {
	return fmt.Sprintf("transaction %s has been reverted", s.Transaction.Txid())
}

func (s TxStale) String() string {
	return fmt.Sprintf("transaction was replaced by %s in block %s", s.ReplacedBy, s.Block)
}

// CompareTxStatus orders two statuses, returning -1, 0 or 1. Variants order
// by lifecycle rank; within a shared variant, fields break ties in declared
// order.
func CompareTxStatus(a, b TxStatus) int {
	if c := cmpInt(a.rank(), b.rank()); c != 0 {
		return c
	}
	switch a := a.(type) {
	case TxUnconfirmed:
		return 0
	case TxAcknowledged:
		return comparePeerID(a.Peer, b.(TxAcknowledged).Peer)
	case TxConfirmed:
		b := b.(TxConfirmed)
		if c := cmpUint64(a.Height, b.Height); c != 0 {
			return c
		}
		return bytes.Compare(a.Block[:], b.Block[:])
	case TxReverted:
		atx, btx := a.Transaction.Txid(), b.(TxReverted).Transaction.Txid()
		return bytes.Compare(atx[:], btx[:])
	case TxStale:
		b := b.(TxStale)
		if c := bytes.Compare(a.ReplacedBy[:], b.ReplacedBy[:]); c != 0 {
			return c
		}
		return bytes.Compare(a.Block[:], b.Block[:])
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
