package fsm

import (
	"net/netip"
	"testing"
	"time"
)

func TestOutbox_FIFO(t *testing.T) {
	addr := netip.MustParseAddrPort("203.0.113.7:8333")
	var o Outbox

	o.Ping(addr, 1)
	o.Pong(addr, 2)
	o.Disconnect(addr, DisconnectPeerDropped{})

	if o.Len() != 3 {
		t.Fatalf("Len = %d, want 3", o.Len())
	}

	first, ok := o.Next()
	if !ok {
		t.Fatal("expected a queued effect")
	}
	if msg := first.(IoSend).Message.(*MsgPing); msg.Nonce != 1 {
		t.Errorf("first effect nonce = %d, want 1", msg.Nonce)
	}
	second, _ := o.Next()
	if msg := second.(IoSend).Message.(*MsgPong); msg.Nonce != 2 {
		t.Errorf("second effect nonce = %d, want 2", msg.Nonce)
	}
	third, _ := o.Next()
	if _, ok := third.(IoDisconnect); !ok {
		t.Errorf("third effect = %T, want IoDisconnect", third)
	}

	if _, ok := o.Next(); ok {
		t.Error("expected empty outbox")
	}
	if o.Len() != 0 {
		t.Errorf("Len after drain = %d, want 0", o.Len())
	}
}

func TestOutbox_ChainedTimers(t *testing.T) {
	addr := netip.MustParseAddrPort("203.0.113.7:8333")
	var o Outbox

	o.Ping(addr, 9).SetTimer(time.Minute).SetTimer(2 * time.Minute)

	if _, ok := o.Next(); !ok {
		t.Fatal("expected the send first")
	}
	t1, _ := o.Next()
	if d := t1.(IoSetTimer).Duration; d != time.Minute {
		t.Errorf("first timer = %v, want 1m", d)
	}
	t2, _ := o.Next()
	if d := t2.(IoSetTimer).Duration; d != 2*time.Minute {
		t.Errorf("second timer = %v, want 2m", d)
	}
}

func TestOutbox_RearmsAcrossDrains(t *testing.T) {
	var o Outbox

	o.Event(Initializing{})
	if _, ok := o.Next(); !ok {
		t.Fatal("expected an effect")
	}
	if _, ok := o.Next(); ok {
		t.Fatal("expected empty outbox")
	}

	// The queue keeps producing after being drained to empty.
	o.Event(AddressBookExhausted{})
	io, ok := o.Next()
	if !ok {
		t.Fatal("expected an effect after re-push")
	}
	if _, ok := io.(IoEvent).Event.(AddressBookExhausted); !ok {
		t.Errorf("effect = %#v, want AddressBookExhausted event", io)
	}
}
