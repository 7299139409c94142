// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package models

import (
	"strings"
	"time"
)

// WatchedDateLayout is the calendar-date layout of MovieEntry.WatchedDate.
const WatchedDateLayout = "2006-01-02"

// Rating bounds. Zero means the entry has not been rated.
const (
	RatingUnrated = 0
	RatingMin     = 1
	RatingMax     = 5
)

// MovieEntry is one watched film or series in the log.
//
// Director and Genre are free text and may hold several values separated by
// commas (ASCII or full-width), slashes or whitespace.
type MovieEntry struct {
	ID           string `json:"id"`
	Title        string `json:"title" validate:"required,max=300"`
	Director     string `json:"director" validate:"max=300"`
	Year         int    `json:"year" validate:"omitempty,min=1870,max=2200"`
	WatchedDate  string `json:"watchedDate" validate:"required,watcheddate"`
	Rating       int    `json:"rating" validate:"min=0,max=5"`
	Genre        string `json:"genre" validate:"max=200"`
	Notes        string `json:"notes,omitempty" validate:"max=5000"`
	PosterURL    string `json:"posterUrl,omitempty" validate:"omitempty,url"`
	PosterPrompt string `json:"posterPrompt,omitempty"`
}

// ParseWatchedDate returns the watched date and whether it parsed.
func (e *MovieEntry) ParseWatchedDate() (time.Time, bool) {
	t, err := time.Parse(WatchedDateLayout, strings.TrimSpace(e.WatchedDate))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsRated reports whether Rating lies in 1..5.
func (e *MovieEntry) IsRated() bool {
	return e.Rating >= RatingMin && e.Rating <= RatingMax
}

// NormalizedRating returns Rating when it is in 1..5 and 0 otherwise.
func (e *MovieEntry) NormalizedRating() int {
	if e.IsRated() {
		return e.Rating
	}
	return RatingUnrated
}
