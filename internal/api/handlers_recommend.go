// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/cinetrack/internal/gateway"
	"github.com/tomtom215/cinetrack/internal/models"
)

// respondGateway always answers 200. Degraded answers are flagged in the
// metadata rather than the status code.
func respondGateway[T any](w http.ResponseWriter, start time.Time, res gateway.Result[T]) {
	respondWithMeta(w, http.StatusOK, res.Value, models.Metadata{
		Cached:   res.Source == gateway.SourceCache,
		Fallback: res.IsFallback(),
	}, start)
}

// RecommendDetails handles GET /recommend/details?title=&director=.
// data is null when nothing could be found.
func (h *Handler) RecommendDetails(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "title is required", nil)
		return
	}
	respondGateway(w, start, h.gateway.DetailsFor(r.Context(), title, r.URL.Query().Get("director")))
}

// RecommendPick handles GET /recommend/pick, seeded by the stored log.
func (h *Handler) RecommendPick(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondGateway(w, start, h.gateway.PersonalizedPick(r.Context(), h.store.List(r.Context())))
}

// RecommendTrending handles GET /recommend/trending.
func (h *Handler) RecommendTrending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondGateway(w, start, h.gateway.Trending(r.Context()))
}

// RecommendRecap handles GET /recommend/recap/{year}.
func (h *Handler) RecommendRecap(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	respondGateway(w, start, h.gateway.YearlyRecap(r.Context(), h.store.List(r.Context()), year))
}
