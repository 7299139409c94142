// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package websocket

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/models"
)

//nolint:gochecknoinits // quiet logs for every test in the package
func init() {
	logging.Init(logging.Config{Level: "error", Format: "console", Output: io.Discard})
}

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

func testClient(hub *Hub, buffer int) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message, buffer)}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.GetClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.GetClientCount(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	c := testClient(hub, 4)

	hub.Register <- c
	waitForClients(t, hub, 1)

	hub.Unregister <- c
	waitForClients(t, hub, 0)

	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestHub_BroadcastEntriesChanged(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	a, b := testClient(hub, 4), testClient(hub, 4)
	hub.Register <- a
	hub.Register <- b
	waitForClients(t, hub, 2)

	hub.BroadcastEntriesChanged(models.EntriesChanged{Action: models.ChangeDeleted, ID: "3", Total: 2})

	for _, c := range []*Client{a, b} {
		msg := receive(t, c)
		if msg.Type != MessageTypeEntriesChanged {
			t.Errorf("type = %q, want %q", msg.Type, MessageTypeEntriesChanged)
		}
		change, ok := msg.Data.(models.EntriesChanged)
		if !ok {
			t.Fatalf("data type = %T", msg.Data)
		}
		if change.ID != "3" || change.Total != 2 || change.Action != models.ChangeDeleted {
			t.Errorf("unexpected change %+v", change)
		}
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	slow := testClient(hub, 0)
	fast := testClient(hub, 4)
	hub.Register <- slow
	hub.Register <- fast
	waitForClients(t, hub, 2)

	hub.BroadcastJSON(MessageTypeEntriesChanged, nil)
	receive(t, fast)
	waitForClients(t, hub, 1)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()

	c := testClient(hub, 1)
	hub.Register <- c
	waitForClients(t, hub, 1)

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RunWithContext error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	if hub.GetClientCount() != 0 {
		t.Errorf("clients remaining after shutdown: %d", hub.GetClientCount())
	}
	if _, ok := <-c.send; ok {
		t.Error("client channel should be closed on shutdown")
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled reason = %s", got)
	}

	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline reason = %s", got)
	}
}

func TestBroadcastJSON_FullQueueDoesNotBlock(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.broadcast)+10; i++ {
			hub.BroadcastJSON(MessageTypeEntriesChanged, i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BroadcastJSON blocked on a full queue")
	}
}

func TestMarshalMessage(t *testing.T) {
	t.Parallel()

	data, err := MarshalMessage(Message{
		Type: MessageTypeEntriesChanged,
		Data: models.EntriesChanged{Action: models.ChangeCreated, ID: "abc", Total: 4},
	})
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}

	var decoded struct {
		Type string `json:"type"`
		Data struct {
			Action string `json:"action"`
			ID     string `json:"id"`
			Total  int    `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Type != "entries_changed" || decoded.Data.ID != "abc" || decoded.Data.Total != 4 {
		t.Errorf("unexpected payload %s", data)
	}
}
