// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package models

import "time"

// APIResponse wraps every HTTP response body.
//
// Status is "success" or "error". Error is set only for errors.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries timing and provenance for a response.
//
// Fallback is true when a recommendation endpoint answered with canned
// content because the AI provider was unavailable. Cached is true when the
// answer came from the gateway cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Fallback    bool      `json:"fallback,omitempty"`
}

// APIError is the machine-readable error block.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Change actions broadcast on the WebSocket feed.
const (
	ChangeCreated  = "created"
	ChangeUpdated  = "updated"
	ChangeDeleted  = "deleted"
	ChangeImported = "imported"
)

// EntriesChanged tells clients to refetch and re-run aggregation.
type EntriesChanged struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
	Total  int    `json:"total"`
}
