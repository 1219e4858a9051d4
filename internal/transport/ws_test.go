package transport

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func testGateway(t *testing.T) *WSGateway {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewWSGateway(GatewayConfig{URL: "wss://example.test/ws", BufferSize: 4}, logger)
}

func TestSendBeforeConnect(t *testing.T) {
	g := testGateway(t)
	err := g.Send("chan-1", Reply{Text: "hi"})
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("Send() error = %v, want ErrNotConnected", err)
	}
}

func TestConnectAfterClose(t *testing.T) {
	g := testGateway(t)
	if err := g.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	err := g.Connect(t.Context())
	if !errors.Is(err, ErrAlreadyClosed) {
		t.Errorf("Connect() after Close error = %v, want ErrAlreadyClosed", err)
	}
}

func TestHandleEventReady(t *testing.T) {
	g := testGateway(t)
	g.handleEvent([]byte(`{"type":"ready","self":{"ID":"id-bot","Name":"stalkbot"}}`))

	self := g.Self()
	if self.ID != "id-bot" || self.Name != "stalkbot" {
		t.Errorf("Self() = %+v after ready event", self)
	}
}

func TestHandleEventChannelThenMessage(t *testing.T) {
	g := testGateway(t)

	g.handleEvent([]byte(`{
		"type": "channel",
		"channel": {"id": "c1", "name": "stalk market", "kind": "text"},
		"members": [{"ID": "u1", "Name": "someone"}]
	}`))
	g.handleEvent([]byte(`{
		"type": "message",
		"channel": {"id": "c1", "name": "stalk market", "kind": "text"},
		"author": {"ID": "u1", "Name": "someone"},
		"content": "!buy 100"
	}`))

	select {
	case msg := <-g.Messages():
		if msg.Author.ID != "u1" || msg.Text != "!buy 100" {
			t.Errorf("message = %+v", msg)
		}
		if msg.Channel.Name() != "stalk market" || msg.Channel.Kind() != "text" {
			t.Errorf("channel = %q/%q", msg.Channel.Name(), msg.Channel.Kind())
		}
		members := msg.Channel.Members()
		if len(members) != 1 || members[0].ID != "u1" {
			t.Errorf("members = %+v, want the snapshot from the channel event", members)
		}
	case <-time.After(time.Second):
		t.Fatal("message event was not delivered")
	}
}

func TestHandleEventUnknownChannelStillDelivers(t *testing.T) {
	g := testGateway(t)
	g.handleEvent([]byte(`{
		"type": "message",
		"channel": {"id": "c9", "name": "lobby", "kind": "text"},
		"author": {"ID": "u2", "Name": "friend"},
		"content": "hello"
	}`))

	select {
	case msg := <-g.Messages():
		if msg.Channel.ID() != "c9" || len(msg.Channel.Members()) != 0 {
			t.Errorf("channel = %+v, want an empty directory placeholder", msg.Channel)
		}
	case <-time.After(time.Second):
		t.Fatal("message event was not delivered")
	}
}

func TestHandleEventDropsWhenBufferFull(t *testing.T) {
	g := testGateway(t)

	frame := []byte(`{
		"type": "message",
		"channel": {"id": "c1", "name": "stalk market", "kind": "text"},
		"author": {"ID": "u1", "Name": "someone"},
		"content": "spam"
	}`)
	for i := 0; i < 10; i++ {
		g.handleEvent(frame)
	}

	if got := len(g.messages); got != 4 {
		t.Errorf("buffered %d messages, want the configured capacity of 4", got)
	}
}

func TestHandleEventBadFrameIgnored(t *testing.T) {
	g := testGateway(t)
	g.handleEvent([]byte(`{not json`))
	if len(g.messages) != 0 {
		t.Error("bad frame produced a message")
	}
}
