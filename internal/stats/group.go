// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package stats

import (
	"sort"
	"strings"

	"github.com/tomtom215/cinetrack/internal/models"
)

// SortByWatchedDateDesc returns a copy of entries, newest watch first. Ties
// keep their input order. Entries with an unparseable date go last.
func SortByWatchedDateDesc(entries []models.MovieEntry) []models.MovieEntry {
	out := make([]models.MovieEntry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := out[i].ParseWatchedDate()
		tj, okJ := out[j].ParseWatchedDate()
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
	return out
}

// GroupByYear buckets entries by watched year, most recent year first.
// Entries keep their input order inside a bucket.
func GroupByYear(entries []models.MovieEntry) []models.YearGroup {
	index := make(map[int]int)
	groups := make([]models.YearGroup, 0)

	for i := range entries {
		t, ok := entries[i].ParseWatchedDate()
		if !ok {
			continue
		}
		y := t.Year()
		pos, seen := index[y]
		if !seen {
			pos = len(groups)
			index[y] = pos
			groups = append(groups, models.YearGroup{Year: y})
		}
		groups[pos].Entries = append(groups[pos].Entries, entries[i])
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Year > groups[j].Year
	})
	return groups
}

// AvailableYears lists the distinct watched years, descending.
func AvailableYears(entries []models.MovieEntry) []int {
	groups := GroupByYear(entries)
	years := make([]int, len(groups))
	for i, g := range groups {
		years[i] = g.Year
	}
	return years
}

// FilterYear returns the entries watched in year, in input order.
func FilterYear(entries []models.MovieEntry, year int) []models.MovieEntry {
	out := make([]models.MovieEntry, 0)
	for i := range entries {
		if t, ok := entries[i].ParseWatchedDate(); ok && t.Year() == year {
			out = append(out, entries[i])
		}
	}
	return out
}

// Search keeps entries whose title, director or genre contains query,
// ignoring case. A blank query returns a copy of entries.
func Search(entries []models.MovieEntry, query string) []models.MovieEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.MovieEntry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		if q == "" ||
			strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Director), q) ||
			strings.Contains(strings.ToLower(e.Genre), q) {
			out = append(out, *e)
		}
	}
	return out
}
