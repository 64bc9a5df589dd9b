// Package types holds the chain primitives shared by every package: block
// heights, hashes, headers, transactions and filter payloads. These are plain
// in-memory values; wire encoding and decoding live outside this module.
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Height is a block height in the main chain.
type Height = uint64

// BlockHash identifies a block. Hashes render in reversed byte order, the
// display convention of this chain family.
type BlockHash [32]byte

func (h BlockHash) String() string {
	return reversedHex(h[:])
}

// IsZero reports whether the hash is all zeroes.
func (h BlockHash) IsZero() bool {
	return h == BlockHash{}
}

// Txid identifies a transaction.
type Txid [32]byte

func (t Txid) String() string {
	return reversedHex(t[:])
}

// reversedHex encodes b as hex with byte order reversed for display.
func reversedHex(b []byte) string {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return hex.EncodeToString(r)
}

// sha256d is the double-SHA256 hash used for block and transaction ids.
func sha256d(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// ServiceFlags advertises the services a peer provides.
type ServiceFlags uint64

const (
	// ServiceNetwork means the peer can serve full blocks.
	ServiceNetwork ServiceFlags = 1 << 0
	// ServiceBloom means the peer supports bloom-filtered connections.
	ServiceBloom ServiceFlags = 1 << 2
	// ServiceWitness means the peer can serve witness data.
	ServiceWitness ServiceFlags = 1 << 3
	// ServiceCompactFilters means the peer can serve compact block filters.
	ServiceCompactFilters ServiceFlags = 1 << 6
	// ServiceNetworkLimited means the peer serves only the last ~2 days of blocks.
	ServiceNetworkLimited ServiceFlags = 1 << 10

	// ServiceNone advertises no services.
	ServiceNone ServiceFlags = 0
)

// Has reports whether all the given flags are set.
func (f ServiceFlags) Has(flags ServiceFlags) bool {
	return f&flags == flags
}

func (f ServiceFlags) String() string {
	if f == ServiceNone {
		return "NONE"
	}
	names := []struct {
		flag ServiceFlags
		name string
	}{
		{ServiceNetwork, "NETWORK"},
		{ServiceBloom, "BLOOM"},
		{ServiceWitness, "WITNESS"},
		{ServiceCompactFilters, "COMPACT_FILTERS"},
		{ServiceNetworkLimited, "NETWORK_LIMITED"},
	}
	var parts []string
	rest := f
	for _, n := range names {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "UNKNOWN")
	}
	return strings.Join(parts, "|")
}

// Link is the direction of a peer connection.
type Link uint8

const (
	// Inbound means the remote peer connected to us.
	Inbound Link = iota
	// Outbound means we connected to the remote peer.
	Outbound
)

// IsOutbound reports whether the link was initiated locally.
func (l Link) IsOutbound() bool {
	return l == Outbound
}

func (l Link) String() string {
	switch l {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	default:
		return "unknown"
	}
}

// ChainLink is a (height, header) pair on the active chain.
type ChainLink struct {
	Height Height
	Header BlockHeader
}
