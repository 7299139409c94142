// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"testing"

	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/tags"
)

func TestEngineOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.StatsConfig
		want stats.Options
	}{
		{
			name: "defaults",
			cfg:  config.StatsConfig{ReportLimit: 3, ReportMode: "full", SummaryLimit: 5, SummaryMode: "primary"},
			want: stats.DefaultOptions(),
		},
		{
			name: "swapped modes",
			cfg:  config.StatsConfig{ReportLimit: 10, ReportMode: "primary", SummaryLimit: 2, SummaryMode: "full"},
			want: stats.Options{ReportLimit: 10, ReportMode: tags.PrimaryOnly, SummaryLimit: 2, SummaryMode: tags.FullSplit},
		},
		{
			name: "unknown mode keeps default",
			cfg:  config.StatsConfig{ReportLimit: 3, ReportMode: "bogus", SummaryLimit: 5, SummaryMode: ""},
			want: stats.DefaultOptions(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := engineOptions(tt.cfg); got != tt.want {
				t.Errorf("engineOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
