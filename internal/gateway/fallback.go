// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package gateway

import (
	"fmt"

	"github.com/tomtom215/cinetrack/internal/models"
)

// FallbackPick is returned when a personalized pick cannot be generated.
func FallbackPick() models.FeaturedRecommendation {
	return models.FeaturedRecommendation{
		Title:     "星际穿越",
		Year:      "2014",
		Director:  "克里斯托弗·诺兰",
		Genre:     "科幻",
		Reason:    "爱是唯一可以穿越时间与空间的事物。",
		PosterURL: "https://image.tmdb.org/t/p/original/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
	}
}

// FallbackTrending is returned when the trending lists cannot be generated.
func FallbackTrending() models.TrendingContent {
	return models.TrendingContent{
		Latest: []models.TrendingItem{
			{Title: "沙丘2", Year: "2024", Type: models.MediaTypeMovie, IMDbRating: "8.6", DoubanRating: "8.3", Reason: "科幻史诗"},
			{Title: "幕府将军", Year: "2024", Type: models.MediaTypeTV, IMDbRating: "8.8", DoubanRating: "8.5", Reason: "年度神剧"},
			{Title: "奥本海默", Year: "2023", Type: models.MediaTypeMovie, IMDbRating: "8.4", DoubanRating: "8.8", Reason: "诺兰新作"},
		},
		Upcoming: []models.TrendingItem{
			{Title: "米奇17", Year: "2025", Type: models.MediaTypeMovie, IMDbRating: "N/A", DoubanRating: "N/A", Reason: "奉俊昊新作"},
			{Title: "阿凡达3", Year: "2025", Type: models.MediaTypeMovie, IMDbRating: "N/A", DoubanRating: "N/A", Reason: "视觉盛宴"},
		},
	}
}

// Recap texts.
const (
	recapEmptyResponse = "你的年度观影总结！"
)

func recapNoEntries(year int) string {
	return fmt.Sprintf("%d年还没有观影记录哦！", year)
}

func recapFallback(year, count int) string {
	return fmt.Sprintf("你在 %d 年共看了 %d 部影视作品！", year, count)
}
