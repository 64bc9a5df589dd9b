package fsm

import (
	"net/netip"
	"sort"
	"testing"

	"github.com/lanternlabs/lantern/types"
)

func TestTxStatus_LifecycleOrdering(t *testing.T) {
	peer := netip.MustParseAddrPort("203.0.113.7:8333")
	tx := &types.Transaction{Version: 2}

	progression := []TxStatus{
		TxUnconfirmed{},
		TxAcknowledged{Peer: peer},
		TxConfirmed{Height: 0, Block: types.BlockHash{}},
		TxReverted{Transaction: tx},
		TxStale{ReplacedBy: types.Txid{}, Block: types.BlockHash{}},
	}

	for i := 0; i < len(progression)-1; i++ {
		if c := CompareTxStatus(progression[i], progression[i+1]); c != -1 {
			t.Errorf("Compare(%s, %s) = %d, want -1", progression[i], progression[i+1], c)
		}
		if c := CompareTxStatus(progression[i+1], progression[i]); c != 1 {
			t.Errorf("Compare(%s, %s) = %d, want 1", progression[i+1], progression[i], c)
		}
	}
	for _, s := range progression {
		if c := CompareTxStatus(s, s); c != 0 {
			t.Errorf("Compare(%s, itself) = %d, want 0", s, c)
		}
	}
}

func TestTxStatus_ConfirmedTieBreak(t *testing.T) {
	low := TxConfirmed{Height: 10, Block: types.BlockHash{0x01}}
	highHeight := TxConfirmed{Height: 11, Block: types.BlockHash{0x00}}
	highBlock := TxConfirmed{Height: 10, Block: types.BlockHash{0x02}}

	if CompareTxStatus(low, highHeight) != -1 {
		t.Error("expected lower height to compare less, regardless of block hash")
	}
	if CompareTxStatus(low, highBlock) != -1 {
		t.Error("expected equal heights to fall back to block hash")
	}
}

func TestTxStatus_AcknowledgedTieBreak(t *testing.T) {
	a := TxAcknowledged{Peer: netip.MustParseAddrPort("10.0.0.1:8333")}
	b := TxAcknowledged{Peer: netip.MustParseAddrPort("10.0.0.2:8333")}
	c := TxAcknowledged{Peer: netip.MustParseAddrPort("10.0.0.1:8334")}

	if CompareTxStatus(a, b) != -1 {
		t.Error("expected lower address to compare less")
	}
	if CompareTxStatus(a, c) != -1 {
		t.Error("expected equal addresses to fall back to port")
	}
}

func TestTxStatus_SortIsDeterministic(t *testing.T) {
	peer := netip.MustParseAddrPort("203.0.113.7:8333")

	statuses := []TxStatus{
		TxStale{ReplacedBy: types.Txid{0x05}, Block: types.BlockHash{}},
		TxConfirmed{Height: 7, Block: types.BlockHash{0x01}},
		TxUnconfirmed{},
		TxConfirmed{Height: 3, Block: types.BlockHash{0x09}},
		TxAcknowledged{Peer: peer},
	}
	sort.Slice(statuses, func(i, j int) bool {
		return CompareTxStatus(statuses[i], statuses[j]) < 0
	})

	want := []TxStatus{
		TxUnconfirmed{},
		TxAcknowledged{Peer: peer},
		TxConfirmed{Height: 3, Block: types.BlockHash{0x09}},
		TxConfirmed{Height: 7, Block: types.BlockHash{0x01}},
		TxStale{ReplacedBy: types.Txid{0x05}, Block: types.BlockHash{}},
	}
	for i := range want {
		if CompareTxStatus(statuses[i], want[i]) != 0 {
			t.Errorf("position %d: got %s, want %s", i, statuses[i], want[i])
		}
	}
}

func TestTxStatus_Rendering(t *testing.T) {
	tests := []struct {
		status TxStatus
		want   string
	}{
		{TxUnconfirmed{}, "transaction is unconfirmed"},
		{
			TxAcknowledged{Peer: netip.MustParseAddrPort("203.0.113.7:8333")},
			"transaction was acknowledged by peer 203.0.113.7:8333",
		},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
