// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinetrack/internal/models"
)

// barWidth is the length of a full histogram bar.
const barWidth = 20

func newStatsCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for one watched year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			return withApp(func(a *app) error {
				renderSummary(cmd.OutOrStdout(), a.engine.YearSummary(a.store.List(cmd.Context()), year))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Watched year (default current year)")
	return cmd
}

func renderSummary(w io.Writer, s models.YearSummary) {
	fmt.Fprintf(w, "%d: %d entries, %d rated, average %.1f\n", s.Year, s.Total, s.RatedTotal, s.AverageRating)
	if s.Total == 0 {
		return
	}

	monthly := table.NewWriter()
	monthly.SetOutputMirror(w)
	monthly.SetStyle(table.StyleLight)
	monthly.SetTitle("Monthly")
	peak := 0
	for _, m := range s.Monthly {
		if m.Count > peak {
			peak = m.Count
		}
	}
	monthly.AppendHeader(table.Row{"Month", "Count", ""})
	for _, m := range s.Monthly {
		monthly.AppendRow(table.Row{m.Month, m.Count, bar(m.Count, peak)})
	}
	monthly.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	monthly.Render()

	ratings := table.NewWriter()
	ratings.SetOutputMirror(w)
	ratings.SetStyle(table.StyleLight)
	ratings.SetTitle("Ratings")
	ratings.AppendHeader(table.Row{"Stars", "Count", "Percent"})
	for _, r := range s.Ratings {
		ratings.AppendRow(table.Row{stars(&models.MovieEntry{Rating: r.Star}), r.Count, fmt.Sprintf("%.0f%%", r.Percent)})
	}
	ratings.Render()

	renderTags(w, "Top directors", s.TopDirectors)
	renderTags(w, "Top genres", s.TopGenres)
}

func renderTags(w io.Writer, title string, counts []models.TagCount) {
	if len(counts) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "Name", "Count"})
	for i, c := range counts {
		t.AppendRow(table.Row{i + 1, c.Name, c.Count})
	}
	t.Render()
}

func bar(n, peak int) string {
	if peak == 0 || n == 0 {
		return ""
	}
	width := n * barWidth / peak
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}
