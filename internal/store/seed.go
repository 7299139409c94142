// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package store

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/models"
)

// demoPosters back-fills posters for the demo titles of older logs.
var demoPosters = map[string]string{
	"盗梦空间":    "https://image.tmdb.org/t/p/original/9gk7admal4zl67Yrxt8Mvru6k.jpg",
	"布达佩斯大饭店": "https://image.tmdb.org/t/p/original/eWdyYQreja6JGCzqHWXpWHDrrPo.jpg",
	"奥本海默":    "https://image.tmdb.org/t/p/original/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
}

// DemoEntries returns the starter log in stored order.
func DemoEntries() []models.MovieEntry {
	return []models.MovieEntry{
		{
			ID:          "1",
			Title:       "盗梦空间",
			Director:    "克里斯托弗·诺兰",
			Year:        2010,
			WatchedDate: "2023-11-15",
			Rating:      5,
			Genre:       "科幻",
			Notes:       "至今仍然是经典，结构太精妙了。",
			PosterURL:   demoPosters["盗梦空间"],
		},
		{
			ID:          "2",
			Title:       "布达佩斯大饭店",
			Director:    "韦斯·安德森",
			Year:        2014,
			WatchedDate: "2024-01-20",
			Rating:      4,
			Genre:       "喜剧",
			Notes:       "色彩美学满分。",
			PosterURL:   demoPosters["布达佩斯大饭店"],
		},
		{
			ID:          "3",
			Title:       "奥本海默",
			Director:    "克里斯托弗·诺兰",
			Year:        2023,
			WatchedDate: "2024-02-10",
			Rating:      5,
			Genre:       "历史",
			Notes:       "震撼人心，配乐很强。",
			PosterURL:   demoPosters["奥本海默"],
		},
	}
}

// SeedResult reports what Seed changed.
type SeedResult struct {
	Seeded       int
	PostersFixed int
}

// Seed fills an empty store with DemoEntries. A non-empty store instead gets
// posters added to demo titles that lack one.
func Seed(ctx context.Context, s Store) (SeedResult, error) {
	var res SeedResult
	current := s.List(ctx)

	if len(current) == 0 {
		demo := DemoEntries()
		// Create prepends, so insert in reverse to keep DemoEntries order.
		for i := len(demo) - 1; i >= 0; i-- {
			if _, err := s.Create(ctx, demo[i]); err != nil {
				return res, fmt.Errorf("seed demo entry %s: %w", demo[i].ID, err)
			}
			res.Seeded++
		}
		logging.Info().Int("entries", res.Seeded).Msg("Seeded demo watch log")
		return res, nil
	}

	for _, e := range current {
		if e.PosterURL != "" {
			continue
		}
		poster, ok := demoPosters[e.Title]
		if !ok {
			continue
		}
		e.PosterURL = poster
		if _, err := s.Update(ctx, e); err != nil {
			return res, fmt.Errorf("back-fill poster for %s: %w", e.ID, err)
		}
		res.PostersFixed++
	}
	if res.PostersFixed > 0 {
		logging.Info().Int("entries", res.PostersFixed).Msg("Back-filled demo posters")
	}
	return res, nil
}
