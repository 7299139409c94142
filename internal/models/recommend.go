// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package models

// MovieDetails is the metadata suggested for a title being logged.
type MovieDetails struct {
	Director  string `json:"director"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	Summary   string `json:"summary"`
	PosterURL string `json:"posterUrl,omitempty"`
}

// FeaturedRecommendation is a single title picked from the user's history.
// Year is free text as returned by the provider.
type FeaturedRecommendation struct {
	Title     string `json:"title"`
	Year      string `json:"year"`
	Director  string `json:"director"`
	Genre     string `json:"genre"`
	Reason    string `json:"reason"`
	PosterURL string `json:"posterUrl,omitempty"`
}

// Media kinds of a TrendingItem.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// TrendingItem is one row of the trending lists. Ratings are strings because
// unreleased titles carry "N/A".
type TrendingItem struct {
	Title        string `json:"title"`
	Year         string `json:"year"`
	Type         string `json:"type"`
	IMDbRating   string `json:"imdbRating"`
	DoubanRating string `json:"doubanRating"`
	Reason       string `json:"reason"`
}

// TrendingContent holds recent releases and upcoming titles.
type TrendingContent struct {
	Latest   []TrendingItem `json:"latest"`
	Upcoming []TrendingItem `json:"upcoming"`
}
