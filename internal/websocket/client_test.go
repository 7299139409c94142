// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/cinetrack/internal/models"
)

// serveHub upgrades every request and attaches it to hub.
func serveHub(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn)
		hub.Register <- client
		client.Start()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestNewClient_AssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	a, b := NewClient(hub, nil), NewClient(hub, nil)
	if b.ID() <= a.ID() {
		t.Errorf("ids not increasing: %d then %d", a.ID(), b.ID())
	}
	if cap(a.send) != sendBuffer {
		t.Errorf("send buffer = %d, want %d", cap(a.send), sendBuffer)
	}
}

func TestClient_PingPong(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	conn := dial(t, serveHub(t, hub))

	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != MessageTypePong {
		t.Errorf("type = %q, want pong", msg.Type)
	}
}

func TestClient_ReceivesBroadcast(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	conn := dial(t, serveHub(t, hub))
	waitForClients(t, hub, 1)

	hub.BroadcastEntriesChanged(models.EntriesChanged{Action: models.ChangeCreated, ID: "9", Total: 1})

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeEntriesChanged {
		t.Fatalf("type = %q", msg.Type)
	}
	data, ok := msg.Data.(map[string]interface{})
	if !ok || data["id"] != "9" {
		t.Errorf("unexpected data %#v", msg.Data)
	}
}

func TestClient_DisconnectUnregisters(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	conn := dial(t, serveHub(t, hub))
	waitForClients(t, hub, 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()
	waitForClients(t, hub, 0)
}
