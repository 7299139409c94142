// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/models"
)

// HealthLive answers as long as the process serves HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady answers 503 while the store is unusable. The AI provider is
// reported but never makes the service unready, since every recommendation
// has a fallback.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	storeErr := h.store.Ping(r.Context())
	ready := storeErr == nil

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
		logging.Ctx(r.Context()).Warn().Err(storeErr).Msg("Readiness check failed")
	}

	data := map[string]interface{}{
		"store_connected": ready,
		"ready_to_serve":  ready,
		"uptime":          time.Since(h.startTime).Seconds(),
	}
	if h.gateway != nil {
		data["ai_enabled"] = h.gateway.Enabled()
		data["ai_circuit"] = h.gateway.BreakerState()
		data["ai_cache"] = h.gateway.CacheStats()
	}
	if h.wsHub != nil {
		data["websocket_clients"] = h.wsHub.GetClientCount()
	}

	respondJSON(w, code, &models.APIResponse{
		Status:   status,
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
