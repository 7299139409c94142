// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/stats"
)

// listView returns the entries matching ?q= sorted newest watched first.
func (h *Handler) listView(r *http.Request) []models.MovieEntry {
	entries := h.store.List(r.Context())
	entries = stats.Search(entries, r.URL.Query().Get("q"))
	return stats.SortByWatchedDateDesc(entries)
}

// ListEntries handles GET /entries.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, start, h.listView(r))
}

// GroupedEntries handles GET /entries/grouped.
func (h *Handler) GroupedEntries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, start, stats.GroupByYear(h.listView(r)))
}

// GetEntry handles GET /entries/{id}.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entry, ok := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Entry not found", nil)
		return
	}
	respondSuccess(w, start, entry)
}

// decodeEntry reads and validates an entry body. It writes the error response
// itself and reports false on failure.
func decodeEntry(w http.ResponseWriter, r *http.Request) (models.MovieEntry, bool) {
	var entry models.MovieEntry
	if err := decodeJSONBody(w, r, &entry); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return entry, false
	}
	entry.Title = strings.TrimSpace(entry.Title)
	entry.WatchedDate = strings.TrimSpace(entry.WatchedDate)
	if apiErr := validateRequest(&entry); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return entry, false
	}
	return entry, true
}

// CreateEntry handles POST /entries. The response is the updated list,
// newest watched first.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entry, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(entry.ID) == "" {
		entry.ID = uuid.New().String()
	}

	entries, err := h.store.Create(r.Context(), entry)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("id", entry.ID).Int("total", len(entries)).Msg("Entry created")
	h.notifyChange(models.ChangeCreated, entry.ID, len(entries))
	w.Header().Set("Location", "/api/v1/entries/"+entry.ID)
	respondWithMeta(w, http.StatusCreated, stats.SortByWatchedDateDesc(entries), models.Metadata{}, start)
}

// UpdateEntry handles PUT /entries/{id}. A body id, when present, must match
// the path.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")
	entry, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	if entry.ID != "" && entry.ID != id {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Body id does not match path id", nil)
		return
	}
	entry.ID = id

	entries, err := h.store.Update(r.Context(), entry)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("id", id).Msg("Entry updated")
	h.notifyChange(models.ChangeUpdated, id, len(entries))
	respondSuccess(w, start, stats.SortByWatchedDateDesc(entries))
}

// DeleteEntry handles DELETE /entries/{id}. Unknown ids succeed.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := chi.URLParam(r, "id")

	entries, err := h.store.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("id", sanitizeLogValue(id)).Int("total", len(entries)).Msg("Entry deleted")
	h.notifyChange(models.ChangeDeleted, id, len(entries))
	respondSuccess(w, start, stats.SortByWatchedDateDesc(entries))
}
