// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package stats computes every derived view of the watch log: year groupings,
// monthly histograms, rating distributions and tag leaderboards.
//
// All functions are pure. They take a snapshot of entries, never mutate it,
// never block and never fail. Entries whose watched date does not parse are
// left out of date-keyed results and entries without a rating in 1..5 are left
// out of rating results. Callers re-run the aggregation on every read so that
// results always reflect the current store contents.
package stats

import (
	"time"

	"github.com/tomtom215/cinetrack/internal/metrics"
	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/tags"
)

// Options configures leaderboard sizes and tokenization for the two report
// shapes.
type Options struct {
	// ReportLimit caps each per-year leaderboard of the profile report.
	ReportLimit int
	// ReportMode is the tokenization used by the profile report.
	ReportMode tags.Mode
	// SummaryLimit caps the leaderboards of the single-year summary.
	SummaryLimit int
	// SummaryMode is the tokenization used by the single-year summary.
	SummaryMode tags.Mode
}

// DefaultOptions returns top 3 full-split for the profile report and top 5
// primary-only for the single-year summary.
func DefaultOptions() Options {
	return Options{
		ReportLimit:  3,
		ReportMode:   tags.FullSplit,
		SummaryLimit: 5,
		SummaryMode:  tags.PrimaryOnly,
	}
}

// Engine applies Options to the package-level aggregations. The zero value is
// not useful; build one with NewEngine.
type Engine struct {
	opts Options
}

// NewEngine returns an engine. Non-positive limits fall back to the defaults.
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.ReportLimit <= 0 {
		opts.ReportLimit = def.ReportLimit
	}
	if opts.SummaryLimit <= 0 {
		opts.SummaryLimit = def.SummaryLimit
	}
	return &Engine{opts: opts}
}

// Options returns the engine configuration.
func (e *Engine) Options() Options {
	return e.opts
}

// YearlyReport groups entries by watched year, newest year first, and ranks
// directors and genres per year.
func (e *Engine) YearlyReport(entries []models.MovieEntry) models.YearlyReport {
	defer metrics.RecordAggregation("yearly_report", time.Now())
	groups := GroupByYear(entries)
	years := make([]models.YearlyStats, 0, len(groups))
	for _, g := range groups {
		years = append(years, models.YearlyStats{
			Year:         g.Year,
			Total:        len(g.Entries),
			TopDirectors: TopTags(g.Entries, Director, e.opts.ReportLimit, e.opts.ReportMode),
			TopGenres:    TopTags(g.Entries, Genre, e.opts.ReportLimit, e.opts.ReportMode),
		})
	}
	return models.YearlyReport{TotalEntries: len(entries), Years: years}
}

// YearSummary builds the single-year statistics view.
func (e *Engine) YearSummary(entries []models.MovieEntry, year int) models.YearSummary {
	defer metrics.RecordAggregation("year_summary", time.Now())
	inYear := FilterYear(entries, year)
	ratings, rated := RatingDistribution(inYear)

	return models.YearSummary{
		Year:          year,
		Total:         len(inYear),
		RatedTotal:    rated,
		AverageRating: AverageRating(inYear),
		Monthly:       MonthlyHistogram(inYear),
		Ratings:       ratings,
		TopDirectors:  TopTags(inYear, Director, e.opts.SummaryLimit, e.opts.SummaryMode),
		TopGenres:     TopTags(inYear, Genre, e.opts.SummaryLimit, e.opts.SummaryMode),
	}
}

// YearlyReport runs Engine.YearlyReport with DefaultOptions.
func YearlyReport(entries []models.MovieEntry) models.YearlyReport {
	return NewEngine(DefaultOptions()).YearlyReport(entries)
}

// YearSummary runs Engine.YearSummary with DefaultOptions.
func YearSummary(entries []models.MovieEntry, year int) models.YearSummary {
	return NewEngine(DefaultOptions()).YearSummary(entries, year)
}
