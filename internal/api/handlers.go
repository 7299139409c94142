// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"time"

	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/gateway"
	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/store"
	ws "github.com/tomtom215/cinetrack/internal/websocket"
)

// Handler holds the dependencies of every endpoint.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and readiness
//   - handlers_entries.go: the watch log
//   - handlers_stats.go: derived statistics
//   - handlers_recommend.go: AI-backed recommendations
//   - handlers_websocket.go: change feed
type Handler struct {
	store     store.Store
	engine    *stats.Engine
	gateway   *gateway.Gateway
	wsHub     *ws.Hub
	config    *config.Config
	startTime time.Time
}

// NewHandler wires the handler. wsHub may be nil, in which case mutations
// are not broadcast and /ws answers 503.
func NewHandler(s store.Store, engine *stats.Engine, gw *gateway.Gateway, wsHub *ws.Hub, cfg *config.Config) *Handler {
	return &Handler{
		store:     s,
		engine:    engine,
		gateway:   gw,
		wsHub:     wsHub,
		config:    cfg,
		startTime: time.Now(),
	}
}

// notifyChange tells connected clients to refresh their derived views.
func (h *Handler) notifyChange(action, id string, total int) {
	if h.wsHub == nil {
		return
	}
	h.wsHub.BroadcastEntriesChanged(models.EntriesChanged{Action: action, ID: id, Total: total})
}
