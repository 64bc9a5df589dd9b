package types

import "encoding/binary"

// OutPoint references an output of a previous transaction.
type OutPoint struct {
	Txid Txid
	Vout uint32
}

// TxIn is a transaction input.
type TxIn struct {
	PreviousOutput OutPoint
	ScriptSig      []byte
	Sequence       uint32
}

// TxOut is a transaction output.
type TxOut struct {
	// Value in the smallest currency unit.
	Value int64
	// ScriptPubKey is the spending condition.
	ScriptPubKey []byte
}

// Transaction is a chain transaction.
type Transaction struct {
	Version  int32
	Inputs   []TxIn
	Outputs  []TxOut
	LockTime uint32
}

// encode serializes the transaction in the canonical layout used for hashing.
func (tx *Transaction) encode() []byte {
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, uint32(tx.Version))
	buf = appendCompactSize(buf, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buf = append(buf, in.PreviousOutput.Txid[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, in.PreviousOutput.Vout)
		buf = appendCompactSize(buf, uint64(len(in.ScriptSig)))
		buf = append(buf, in.ScriptSig...)
		buf = binary.LittleEndian.AppendUint32(buf, in.Sequence)
	}
	buf = appendCompactSize(buf, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(out.Value))
		buf = appendCompactSize(buf, uint64(len(out.ScriptPubKey)))
		buf = append(buf, out.ScriptPubKey...)
	}
	buf = binary.LittleEndian.AppendUint32(buf, tx.LockTime)
	return buf
}

// Txid returns the double-SHA256 hash of the transaction.
func (tx *Transaction) Txid() Txid {
	return Txid(sha256d(tx.encode()))
}

// appendCompactSize appends n in the variable-length integer encoding
// used by the canonical transaction layout.
func appendCompactSize(buf []byte, n uint64) []byte {
	switch {
	case n < 0xfd:
		return append(buf, byte(n))
	case n <= 0xffff:
		buf = append(buf, 0xfd)
		return binary.LittleEndian.AppendUint16(buf, uint16(n))
	case n <= 0xffffffff:
		buf = append(buf, 0xfe)
		return binary.LittleEndian.AppendUint32(buf, uint32(n))
	default:
		buf = append(buf, 0xff)
		return binary.LittleEndian.AppendUint64(buf, n)
	}
}
