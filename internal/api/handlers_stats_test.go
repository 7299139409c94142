// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/tomtom215/cinetrack/internal/models"
)

func TestStatsYears(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, demoLog())
	rec := env.do(t, http.MethodGet, "/api/v1/stats/years", nil)
	expectStatus(t, rec, http.StatusOK)

	var years []int
	decodeEnvelope(t, rec, &years)
	if !reflect.DeepEqual(years, []int{2024, 2023}) {
		t.Errorf("years = %v", years)
	}
}

func TestStatsYear(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, demoLog())
	rec := env.do(t, http.MethodGet, "/api/v1/stats/2023", nil)
	expectStatus(t, rec, http.StatusOK)

	var summary models.YearSummary
	decodeEnvelope(t, rec, &summary)
	if summary.Total != 2 || summary.RatedTotal != 2 || summary.AverageRating != 4.5 {
		t.Errorf("unexpected summary %+v", summary)
	}
	if summary.Monthly[2].Count != 1 || summary.Monthly[6].Count != 1 {
		t.Errorf("unexpected histogram %+v", summary.Monthly)
	}
	// The year view ranks primary genres only.
	want := []models.TagCount{{Name: "科幻", Count: 2}}
	if !reflect.DeepEqual(summary.TopGenres, want) {
		t.Errorf("top genres = %+v, want %+v", summary.TopGenres, want)
	}
}

func TestStatsYear_InvalidYear(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, demoLog())
	for _, path := range []string{"/api/v1/stats/abc", "/api/v1/stats/12", "/api/v1/stats/abc/monthly", "/api/v1/recommend/recap/x"} {
		expectStatus(t, env.do(t, http.MethodGet, path, nil), http.StatusBadRequest)
	}
}

func TestStatsMonthlyAndRatings(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, demoLog())

	rec := env.do(t, http.MethodGet, "/api/v1/stats/2024/monthly", nil)
	expectStatus(t, rec, http.StatusOK)
	var months []models.MonthBucket
	decodeEnvelope(t, rec, &months)
	if len(months) != 12 || months[0].Count != 1 || months[0].Name != "1月" {
		t.Errorf("unexpected months %+v", months)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/stats/2024/ratings", nil)
	expectStatus(t, rec, http.StatusOK)
	var ratings ratingsView
	decodeEnvelope(t, rec, &ratings)
	if ratings.RatedTotal != 1 || ratings.Buckets[2].Star != 3 || ratings.Buckets[2].Percent != 100 {
		t.Errorf("unexpected ratings %+v", ratings)
	}
}

func TestStatsTop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		wantCode int
		want     []models.TagCount
	}{
		{"default genre primary", "", http.StatusOK, []models.TagCount{{Name: "科幻", Count: 2}}},
		{"full split", "?mode=full", http.StatusOK, []models.TagCount{{Name: "科幻", Count: 2}, {Name: "剧情", Count: 1}}},
		{"limit one", "?mode=full&limit=1", http.StatusOK, []models.TagCount{{Name: "科幻", Count: 2}}},
		{"directors", "?field=director", http.StatusOK, []models.TagCount{{Name: "克里斯托弗·诺兰", Count: 1}, {Name: "丹尼斯·维伦纽瓦", Count: 1}}},
		{"bad field", "?field=title", http.StatusBadRequest, nil},
		{"bad mode", "?mode=half", http.StatusBadRequest, nil},
		{"bad limit", "?limit=0", http.StatusBadRequest, nil},
	}
	env := newTestEnv(t, demoLog())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, "/api/v1/stats/2023/top"+tt.query, nil)
			expectStatus(t, rec, tt.wantCode)
			if tt.want == nil {
				return
			}
			var got []models.TagCount
			decodeEnvelope(t, rec, &got)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("top = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProfileReport(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, []models.MovieEntry{
		{ID: "1", Title: "A", Genre: "科幻,剧情", WatchedDate: "2023-03-01", Rating: 5},
		{ID: "2", Title: "B", Genre: "科幻", WatchedDate: "2023-07-12", Rating: 4},
		{ID: "3", Title: "C", Genre: "喜剧", WatchedDate: "2024-01-05", Rating: 3},
	})
	rec := env.do(t, http.MethodGet, "/api/v1/profile/report", nil)
	expectStatus(t, rec, http.StatusOK)

	var report models.YearlyReport
	decodeEnvelope(t, rec, &report)
	if report.TotalEntries != 3 || len(report.Years) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	want := []models.TagCount{{Name: "科幻", Count: 2}, {Name: "剧情", Count: 1}}
	if !reflect.DeepEqual(report.Years[1].TopGenres, want) {
		t.Errorf("2023 genres = %+v, want %+v", report.Years[1].TopGenres, want)
	}
}

func TestStatsReflectDeletes(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, demoLog())
	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/stats/2024", nil), http.StatusOK)
	expectStatus(t, env.do(t, http.MethodDelete, "/api/v1/entries/3", nil), http.StatusOK)

	rec := env.do(t, http.MethodGet, "/api/v1/stats/2024", nil)
	var summary models.YearSummary
	decodeEnvelope(t, rec, &summary)
	if summary.Total != 0 || summary.RatedTotal != 0 {
		t.Errorf("stale summary after delete: %+v", summary)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/profile/report", nil)
	var report models.YearlyReport
	decodeEnvelope(t, rec, &report)
	if report.TotalEntries != 2 || len(report.Years) != 1 || report.Years[0].Year != 2023 {
		t.Errorf("stale report after delete: %+v", report)
	}
}
