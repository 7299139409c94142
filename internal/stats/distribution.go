// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package stats

import (
	"strconv"

	"github.com/tomtom215/cinetrack/internal/models"
)

// MonthlyHistogram counts entries per calendar month. Index 0 is January.
func MonthlyHistogram(entries []models.MovieEntry) [12]models.MonthBucket {
	var months [12]models.MonthBucket
	for i := range months {
		months[i] = models.MonthBucket{Month: i + 1, Name: strconv.Itoa(i+1) + "月"}
	}
	for i := range entries {
		if t, ok := entries[i].ParseWatchedDate(); ok {
			months[t.Month()-1].Count++
		}
	}
	return months
}

// RatingDistribution counts rated entries per star level, 5 stars first, and
// returns the number of rated entries. Percentages are relative to that
// number and are all zero when nothing is rated.
func RatingDistribution(entries []models.MovieEntry) ([5]models.RatingBucket, int) {
	var buckets [5]models.RatingBucket
	for i := range buckets {
		buckets[i].Star = models.RatingMax - i
	}

	rated := 0
	for i := range entries {
		if !entries[i].IsRated() {
			continue
		}
		buckets[models.RatingMax-entries[i].Rating].Count++
		rated++
	}

	if rated > 0 {
		for i := range buckets {
			buckets[i].Percent = float64(buckets[i].Count) / float64(rated) * 100
		}
	}
	return buckets, rated
}

// AverageRating is the mean of the ratings in 1..5, or 0 when none.
func AverageRating(entries []models.MovieEntry) float64 {
	sum, n := 0, 0
	for i := range entries {
		if entries[i].IsRated() {
			sum += entries[i].Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
