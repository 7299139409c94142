// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package stats

import (
	"reflect"
	"testing"

	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/tags"
)

func TestTopTags_TieBreakFirstEncountered(t *testing.T) {
	t.Parallel()

	entries := []models.MovieEntry{
		entry("1", "2024-01-01", "", "悬疑", 0),
		entry("2", "2024-01-02", "", "爱情", 0),
		entry("3", "2024-01-03", "", "爱情", 0),
		entry("4", "2024-01-04", "", "悬疑", 0),
	}

	got := TopTags(entries, Genre, 0, tags.FullSplit)
	want := []models.TagCount{{Name: "悬疑", Count: 2}, {Name: "爱情", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Reversing the input flips the tie but keeps counts and membership.
	reversed := []models.MovieEntry{entries[3], entries[2], entries[1], entries[0]}
	got = TopTags(reversed, Genre, 0, tags.FullSplit)
	want = []models.TagCount{{Name: "悬疑", Count: 2}, {Name: "爱情", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reversed: got %+v, want %+v", got, want)
	}

	swapped := []models.MovieEntry{entries[1], entries[0], entries[2], entries[3]}
	got = TopTags(swapped, Genre, 0, tags.FullSplit)
	want = []models.TagCount{{Name: "爱情", Count: 2}, {Name: "悬疑", Count: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("swapped: got %+v, want %+v", got, want)
	}
}

func TestTopTags_Modes(t *testing.T) {
	t.Parallel()

	entries := []models.MovieEntry{
		entry("1", "2024-01-01", "", "剧情, 科幻/动作", 0),
		entry("2", "2024-01-02", "", "科幻", 0),
		entry("3", "2024-01-03", "", " / ", 0),
		entry("4", "2024-01-04", "", "", 0),
	}

	tests := []struct {
		name  string
		mode  tags.Mode
		limit int
		want  []models.TagCount
	}{
		{
			name: "full split",
			mode: tags.FullSplit,
			want: []models.TagCount{{Name: "科幻", Count: 2}, {Name: "剧情", Count: 1}, {Name: "动作", Count: 1}},
		},
		{
			name: "primary only skips empty fields",
			mode: tags.PrimaryOnly,
			want: []models.TagCount{{Name: "剧情", Count: 1}, {Name: "科幻", Count: 1}},
		},
		{
			name:  "limit truncates",
			mode:  tags.FullSplit,
			limit: 1,
			want:  []models.TagCount{{Name: "科幻", Count: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := TopTags(entries, Genre, tt.limit, tt.mode)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTopTags_Empty(t *testing.T) {
	t.Parallel()

	got := TopTags(nil, Director, 3, tags.FullSplit)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestGroupByYear(t *testing.T) {
	t.Parallel()

	entries := SortByWatchedDateDesc([]models.MovieEntry{
		entry("a", "2022-05-01", "", "", 0),
		entry("b", "2024-03-01", "", "", 0),
		entry("c", "bad", "", "", 0),
		entry("d", "2024-03-01", "", "", 0),
		entry("e", "2024-08-09", "", "", 0),
	})

	groups := GroupByYear(entries)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Year != 2024 || groups[1].Year != 2022 {
		t.Errorf("unexpected year order: %d, %d", groups[0].Year, groups[1].Year)
	}

	var ids []string
	for _, e := range groups[0].Entries {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"e", "b", "d"}) {
		t.Errorf("2024 entry order = %v, want [e b d]", ids)
	}

	if years := AvailableYears(entries); !reflect.DeepEqual(years, []int{2024, 2022}) {
		t.Errorf("AvailableYears = %v", years)
	}
}

func TestSortByWatchedDateDesc_DoesNotMutate(t *testing.T) {
	t.Parallel()

	in := []models.MovieEntry{
		entry("old", "2020-01-01", "", "", 0),
		entry("bad", "??", "", "", 0),
		entry("new", "2021-01-01", "", "", 0),
	}
	out := SortByWatchedDateDesc(in)

	if in[0].ID != "old" {
		t.Error("input slice was reordered")
	}
	var ids []string
	for _, e := range out {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"new", "old", "bad"}) {
		t.Errorf("sorted ids = %v", ids)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	entries := []models.MovieEntry{
		{ID: "1", Title: "Inception", Director: "Christopher Nolan", Genre: "科幻"},
		{ID: "2", Title: "布达佩斯大饭店", Director: "韦斯·安德森", Genre: "喜剧"},
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"nolan", 1},
		{"INCEPTION", 1},
		{"喜剧", 1},
		{"missing", 0},
	}
	for _, tt := range tests {
		if got := len(Search(entries, tt.query)); got != tt.want {
			t.Errorf("Search(%q) returned %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestFilterYear(t *testing.T) {
	t.Parallel()

	entries := []models.MovieEntry{
		entry("1", "2023-12-31", "", "", 0),
		entry("2", "2024-01-01", "", "", 0),
	}
	got := FilterYear(entries, 2024)
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("FilterYear = %+v", got)
	}
	if got := FilterYear(entries, 1999); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
