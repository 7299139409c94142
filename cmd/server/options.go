// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/tags"
)

// engineOptions converts the stats section of the configuration. Unknown
// modes keep the defaults; config.Validate rejects them before this runs.
func engineOptions(cfg config.StatsConfig) stats.Options {
	opts := stats.DefaultOptions()
	opts.ReportLimit = cfg.ReportLimit
	opts.SummaryLimit = cfg.SummaryLimit
	if m, ok := tags.ParseMode(cfg.ReportMode); ok {
		opts.ReportMode = m
	}
	if m, ok := tags.ParseMode(cfg.SummaryMode); ok {
		opts.SummaryMode = m
	}
	return opts
}
