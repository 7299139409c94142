// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package models

// TagCount is one row of a leaderboard.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// YearlyStats is the per-year block of the profile report.
type YearlyStats struct {
	Year         int        `json:"year"`
	Total        int        `json:"total"`
	TopDirectors []TagCount `json:"top_directors"`
	TopGenres    []TagCount `json:"top_genres"`
}

// YearlyReport is the profile view: every year with entries, newest first.
type YearlyReport struct {
	TotalEntries int           `json:"total_entries"`
	Years        []YearlyStats `json:"years"`
}

// MonthBucket counts entries watched in one calendar month.
type MonthBucket struct {
	Month int    `json:"month"` // 1..12
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RatingBucket is one star level of a rating distribution.
type RatingBucket struct {
	Star    int     `json:"star"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // 0-100
}

// YearSummary is the single-year statistics view.
type YearSummary struct {
	Year          int             `json:"year"`
	Total         int             `json:"total"`
	RatedTotal    int             `json:"rated_total"`
	AverageRating float64         `json:"average_rating"`
	Monthly       [12]MonthBucket `json:"monthly"`
	Ratings       [5]RatingBucket `json:"ratings"` // 5 stars first
	TopDirectors  []TagCount      `json:"top_directors"`
	TopGenres     []TagCount      `json:"top_genres"`
}

// YearGroup is a slice of entries sharing a watched year.
type YearGroup struct {
	Year    int          `json:"year"`
	Entries []MovieEntry `json:"entries"`
}
