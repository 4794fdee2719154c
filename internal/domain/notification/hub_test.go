package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitForConnections(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.ConnectionCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("hub never reached %d connections", want)
}

func receive(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data := <-ch:
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
		return nil
	}
}

func TestHubBroadcastReachesAllConnections(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Shutdown()

	a := &Connection{AdminID: uuid.New(), Send: make(chan []byte, 1)}
	b := &Connection{AdminID: uuid.New(), Send: make(chan []byte, 1)}
	h.Register(a)
	h.Register(b)
	waitForConnections(t, h, 2)

	h.Publish(&Notification{ID: uuid.New(), Kind: KindAnnouncement, Title: "maintenance window"})

	receive(t, a.Send)
	receive(t, b.Send)
}

func TestHubTargetedDeliverySkipsOtherAdmins(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Shutdown()

	target := &Connection{AdminID: uuid.New(), Send: make(chan []byte, 1)}
	other := &Connection{AdminID: uuid.New(), Send: make(chan []byte, 1)}
	h.Register(target)
	h.Register(other)
	waitForConnections(t, h, 2)

	h.Publish(&Notification{
		ID:      uuid.New(),
		Kind:    KindSystem,
		Title:   "for your eyes only",
		AdminID: uuid.NullUUID{UUID: target.AdminID, Valid: true},
	})

	receive(t, target.Send)
	select {
	case <-other.Send:
		t.Fatal("targeted notification delivered to the wrong admin")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	h := NewHub(nil)
	go h.Run()
	defer h.Shutdown()

	c := &Connection{AdminID: uuid.New(), Send: make(chan []byte, 1)}
	h.Register(c)
	waitForConnections(t, h, 1)

	h.Unregister(c)
	waitForConnections(t, h, 0)

	if _, ok := <-c.Send; ok {
		t.Fatal("send channel still open after unregister")
	}
}
