package types

// BloomFlags controls how a peer updates a loaded bloom filter on match.
type BloomFlags uint8

const (
	// BloomUpdateNone never updates the filter.
	BloomUpdateNone BloomFlags = iota
	// BloomUpdateAll adds every matched outpoint to the filter.
	BloomUpdateAll
	// BloomUpdateP2PubkeyOnly adds only pay-to-pubkey matches.
	BloomUpdateP2PubkeyOnly
)

// FilterLoad is a bloom filter loaded onto a peer connection.
type FilterLoad struct {
	Filter    []byte
	HashFuncs uint32
	Tweak     uint32
	Flags     BloomFlags
}

// BlockFilter is a compact block filter covering one block.
type BlockFilter struct {
	Content []byte
}

// FeeEstimate is the fee rate estimate for a block, in sat/vB.
type FeeEstimate struct {
	Low    uint64
	Median uint64
	High   uint64
}
