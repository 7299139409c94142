// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package models

import "testing"

func TestMovieEntry_Rating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rating         int
		wantRated      bool
		wantNormalized int
	}{
		{rating: 0, wantRated: false, wantNormalized: RatingUnrated},
		{rating: 1, wantRated: true, wantNormalized: 1},
		{rating: 3, wantRated: true, wantNormalized: 3},
		{rating: 5, wantRated: true, wantNormalized: 5},
		{rating: 6, wantRated: false, wantNormalized: RatingUnrated},
		{rating: -1, wantRated: false, wantNormalized: RatingUnrated},
	}
	for _, tt := range tests {
		e := MovieEntry{Title: "沙丘", Rating: tt.rating}
		if got := e.IsRated(); got != tt.wantRated {
			t.Errorf("IsRated(%d) = %v, want %v", tt.rating, got, tt.wantRated)
		}
		if got := e.NormalizedRating(); got != tt.wantNormalized {
			t.Errorf("NormalizedRating(%d) = %d, want %d", tt.rating, got, tt.wantNormalized)
		}
	}
}

func TestMovieEntry_ParseWatchedDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		wantOK bool
	}{
		{"2024-03-09", true},
		{" 2024-03-09 ", true},
		{"2024/03/09", false},
		{"", false},
	}
	for _, tt := range tests {
		e := MovieEntry{WatchedDate: tt.in}
		if _, ok := e.ParseWatchedDate(); ok != tt.wantOK {
			t.Errorf("ParseWatchedDate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
		}
	}
}
