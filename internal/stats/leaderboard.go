// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package stats

import (
	"sort"

	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/tags"
)

// Field reads the free-text field a leaderboard ranks.
type Field func(models.MovieEntry) string

// Director selects MovieEntry.Director.
func Director(e models.MovieEntry) string { return e.Director }

// Genre selects MovieEntry.Genre.
func Genre(e models.MovieEntry) string { return e.Genre }

// TopTags counts the tokens of field across entries and returns them by
// descending count. Equal counts keep the order in which the tokens were
// first seen. A limit <= 0 returns every token.
func TopTags(entries []models.MovieEntry, field Field, limit int, mode tags.Mode) []models.TagCount {
	index := make(map[string]int)
	counts := make([]models.TagCount, 0)

	for i := range entries {
		for _, tok := range tags.Extract(field(entries[i]), mode) {
			pos, seen := index[tok]
			if !seen {
				index[tok] = len(counts)
				counts = append(counts, models.TagCount{Name: tok, Count: 1})
				continue
			}
			counts[pos].Count++
		}
	}

	// counts is in first-seen order, so a stable sort yields the tie-break.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
