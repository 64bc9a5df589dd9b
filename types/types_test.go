package types

import (
	"strings"
	"testing"
)

func TestBlockHash_Rendering(t *testing.T) {
	var h BlockHash
	h[31] = 0xab

	got := h.String()
	if !strings.HasPrefix(got, "ab") {
		t.Errorf("hash renders in reversed byte order; got %q", got)
	}
	if len(got) != 64 {
		t.Errorf("hash renders as 64 hex chars, got %d", len(got))
	}
	if h.IsZero() {
		t.Error("non-zero hash reported as zero")
	}
	if !(BlockHash{}).IsZero() {
		t.Error("zero hash not reported as zero")
	}
}

func TestBlockHeader_HashIsDeterministic(t *testing.T) {
	header := BlockHeader{
		Version: 1,
		Time:    1231006505,
		Bits:    0x1d00ffff,
		Nonce:   2083236893,
	}

	first := header.BlockHash()
	if second := header.BlockHash(); second != first {
		t.Error("hashing the same header twice gave different results")
	}

	changed := header
	changed.Nonce++
	if changed.BlockHash() == first {
		t.Error("different headers hashed identically")
	}
}

func TestTransaction_TxidDependsOnContents(t *testing.T) {
	tx := Transaction{
		Version: 2,
		Inputs: []TxIn{{
			PreviousOutput: OutPoint{Vout: 1},
			ScriptSig:      []byte{0x51},
			Sequence:       0xffffffff,
		}},
		Outputs: []TxOut{{Value: 50_000, ScriptPubKey: []byte{0x6a}}},
	}

	id := tx.Txid()
	if second := tx.Txid(); second != id {
		t.Error("hashing the same transaction twice gave different results")
	}

	changed := tx
	changed.LockTime = 500_000
	if changed.Txid() == id {
		t.Error("different transactions hashed identically")
	}
}

func TestAppendCompactSize(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		len  int
	}{
		{"small", 0xfc, 1},
		{"uint16", 0xfd, 3},
		{"uint32", 0x10000, 5},
		{"uint64", 0x1_0000_0000, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(appendCompactSize(nil, tt.n)); got != tt.len {
				t.Errorf("encoded length = %d, want %d", got, tt.len)
			}
		})
	}
}

func TestServiceFlags(t *testing.T) {
	flags := ServiceNetwork | ServiceCompactFilters

	if !flags.Has(ServiceNetwork) {
		t.Error("expected NETWORK to be set")
	}
	if flags.Has(ServiceBloom) {
		t.Error("did not expect BLOOM to be set")
	}
	if got := flags.String(); got != "NETWORK|COMPACT_FILTERS" {
		t.Errorf("String() = %q", got)
	}
	if got := ServiceNone.String(); got != "NONE" {
		t.Errorf("ServiceNone.String() = %q", got)
	}
}

func TestLink(t *testing.T) {
	if !Outbound.IsOutbound() || Inbound.IsOutbound() {
		t.Error("link direction misreported")
	}
	if Inbound.String() != "inbound" || Outbound.String() != "outbound" {
		t.Error("link rendering wrong")
	}
}
