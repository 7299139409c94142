// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/tags"
)

// Every statistics handler lists the store on each call. Nothing here is
// cached, so a view can never outlive the mutation that invalidated it.

// StatsYears handles GET /stats/years.
func (h *Handler) StatsYears(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, start, stats.AvailableYears(h.store.List(r.Context())))
}

// yearEntries resolves {year} and returns the entries watched that year.
func (h *Handler) yearEntries(w http.ResponseWriter, r *http.Request) (int, []models.MovieEntry, bool) {
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return 0, nil, false
	}
	return year, stats.FilterYear(h.store.List(r.Context()), year), true
}

// StatsYear handles GET /stats/{year}.
func (h *Handler) StatsYear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	year, err := yearParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	respondSuccess(w, start, h.engine.YearSummary(h.store.List(r.Context()), year))
}

// StatsMonthly handles GET /stats/{year}/monthly.
func (h *Handler) StatsMonthly(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	_, entries, ok := h.yearEntries(w, r)
	if !ok {
		return
	}
	respondSuccess(w, start, stats.MonthlyHistogram(entries))
}

// ratingsView is the body of GET /stats/{year}/ratings.
type ratingsView struct {
	Buckets       [5]models.RatingBucket `json:"buckets"`
	RatedTotal    int                    `json:"ratedTotal"`
	AverageRating float64                `json:"averageRating"`
}

// StatsRatings handles GET /stats/{year}/ratings.
func (h *Handler) StatsRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	_, entries, ok := h.yearEntries(w, r)
	if !ok {
		return
	}
	buckets, rated := stats.RatingDistribution(entries)
	respondSuccess(w, start, ratingsView{
		Buckets:       buckets,
		RatedTotal:    rated,
		AverageRating: stats.AverageRating(entries),
	})
}

// StatsTop handles GET /stats/{year}/top?field=director|genre&limit=&mode=.
// limit and mode default to the single-year summary settings.
func (h *Handler) StatsTop(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	_, entries, ok := h.yearEntries(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	var field stats.Field
	switch q.Get("field") {
	case "", "genre":
		field = stats.Genre
	case "director":
		field = stats.Director
	default:
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "field must be director or genre", nil)
		return
	}

	opts := h.engine.Options()
	mode := opts.SummaryMode
	if raw := q.Get("mode"); raw != "" {
		m, ok := tags.ParseMode(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "mode must be full or primary", nil)
			return
		}
		mode = m
	}

	limit := getIntParam(r, "limit", opts.SummaryLimit)
	if limit < 1 || limit > maxTopLimit {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "limit must be between 1 and 50", nil)
		return
	}

	respondSuccess(w, start, stats.TopTags(entries, field, limit, mode))
}

// ProfileReport handles GET /profile/report.
func (h *Handler) ProfileReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, start, h.engine.YearlyReport(h.store.List(r.Context())))
}
