// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package services

import (
	"context"
)

// ContextHub is a hub whose event loop stops with its context.
// *websocket.Hub satisfies it.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// WebSocketHubService runs the change-notification hub under a supervisor.
//
// The hub owns the set of connected clients and fans out one message per
// watch-log change. Running it as a supervised service means a panic in the
// event loop restarts the hub instead of taking the API server down with it.
// Clients connected at the time of a restart are dropped and reconnect.
//
// Example usage:
//
//	hub := websocket.NewHub()
//	tree.AddMessagingService(services.NewWebSocketHubService(hub))
type WebSocketHubService struct {
	hub  ContextHub
	name string
}

// NewWebSocketHubService wraps hub.
func NewWebSocketHubService(hub ContextHub) *WebSocketHubService {
	return &WebSocketHubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service. It blocks in the hub's event loop and
// returns when ctx is canceled.
func (w *WebSocketHubService) Serve(ctx context.Context) error {
	return w.hub.RunWithContext(ctx)
}

func (w *WebSocketHubService) String() string {
	return w.name
}
