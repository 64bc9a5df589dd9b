package types

import "encoding/binary"

// BlockHeader is an 80-byte chain header.
type BlockHeader struct {
	Version    int32
	PrevHash   BlockHash
	MerkleRoot [32]byte
	Time       uint32
	Bits       uint32
	Nonce      uint32
}

// encode serializes the header in the canonical 80-byte layout used for hashing.
func (h *BlockHeader) encode() []byte {
	buf := make([]byte, 0, 80)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.Version))
	buf = append(buf, h.PrevHash[:]...)
	buf = append(buf, h.MerkleRoot[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, h.Time)
	buf = binary.LittleEndian.AppendUint32(buf, h.Bits)
	buf = binary.LittleEndian.AppendUint32(buf, h.Nonce)
	return buf
}

// BlockHash returns the double-SHA256 hash of the header.
func (h *BlockHeader) BlockHash() BlockHash {
	return BlockHash(sha256d(h.encode()))
}

// Block is a full block: header plus transactions.
type Block struct {
	Header       BlockHeader
	Transactions []Transaction
}

// BlockHash returns the hash of the block's header.
func (b *Block) BlockHash() BlockHash {
	return b.Header.BlockHash()
}

// MerkleBlock is a block header together with a partial merkle tree proving
// the inclusion of a subset of the block's transactions.
type MerkleBlock struct {
	Header BlockHeader
	// TxCount is the number of transactions in the full block.
	TxCount uint32
	// Hashes are the partial merkle tree nodes, depth-first.
	Hashes [][32]byte
	// Flags are the traversal bits of the partial merkle tree.
	Flags []byte
}

// BlockHash returns the hash of the proven block's header.
func (m *MerkleBlock) BlockHash() BlockHash {
	return m.Header.BlockHash()
}
