package broadcast

import (
	"net"
	"testing"
	"time"

	"github.com/wfunc/draftserver/draft"
	"github.com/wfunc/draftserver/network"
	"github.com/wfunc/draftserver/session"
)

// RecordingConnection captures every packet sent through it.
type RecordingConnection struct {
	Sent []uint16
}

func (c *RecordingConnection) Send(msgID uint16, data []byte) error {
	c.Sent = append(c.Sent, msgID)
	return nil
}
func (c *RecordingConnection) Close() error                         { return nil }
func (c *RecordingConnection) RemoteAddr() net.Addr                 { return &net.TCPAddr{} }
func (c *RecordingConnection) SetHeartbeat(interval time.Duration)  {}
func (c *RecordingConnection) ReadPacket() (*network.Packet, error) { return nil, nil }

func setup() (*session.Manager, map[string]*RecordingConnection) {
	manager := session.NewManager()
	conns := make(map[string]*RecordingConnection)

	bind := func(id, draftID string, role draft.Party) {
		conn := &RecordingConnection{}
		conns[id] = conn
		sess := session.NewSession(id, conn)
		sess.Bind(draftID, role)
		manager.Add(sess)
	}

	bind("host", "abcde", draft.PartyHost)
	bind("guest", "abcde", draft.PartyGuest)
	bind("spec", "abcde", draft.PartySpectator)
	bind("other", "fghij", draft.PartyHost)

	return manager, conns
}

func TestBroadcastToDraft(t *testing.T) {
	manager, conns := setup()
	b := NewRoleBroadcaster(manager)

	if err := b.BroadcastToDraft("abcde", network.MsgTypePlayerJoined, []byte("{}")); err != nil {
		t.Fatalf("BroadcastToDraft failed: %v", err)
	}

	for _, id := range []string{"host", "guest", "spec"} {
		if len(conns[id].Sent) != 1 {
			t.Errorf("Expected %s to receive 1 message, got %d", id, len(conns[id].Sent))
		}
	}
	if len(conns["other"].Sent) != 0 {
		t.Errorf("Sessions of other drafts must not receive the broadcast, got %d", len(conns["other"].Sent))
	}
}

func TestBroadcastToRole(t *testing.T) {
	manager, conns := setup()
	b := NewRoleBroadcaster(manager)

	if err := b.BroadcastToRole("abcde", draft.PartyGuest, network.MsgTypePlayerEvent, []byte("{}")); err != nil {
		t.Fatalf("BroadcastToRole failed: %v", err)
	}

	if len(conns["guest"].Sent) != 1 {
		t.Errorf("Expected the guest to receive 1 message, got %d", len(conns["guest"].Sent))
	}
	for _, id := range []string{"host", "spec", "other"} {
		if len(conns[id].Sent) != 0 {
			t.Errorf("Expected %s to receive nothing, got %d", id, len(conns[id].Sent))
		}
	}
}
