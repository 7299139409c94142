// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/stats"
)

const notesWidth = 40

func newListCmd() *cobra.Command {
	var (
		query   string
		grouped bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest watched first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(a *app) error {
				entries := stats.SortByWatchedDateDesc(stats.Search(a.store.List(cmd.Context()), query))
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No entries found")
					return nil
				}
				if !grouped {
					renderEntries(cmd.OutOrStdout(), "", entries)
					return nil
				}
				for _, g := range stats.GroupByYear(entries) {
					renderEntries(cmd.OutOrStdout(), yearTitle(g.Year), g.Entries)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by title, director or genre")
	cmd.Flags().BoolVar(&grouped, "by-year", false, "Group entries by watched year")
	return cmd
}

func yearTitle(year int) string {
	if year == 0 {
		return "Unknown year"
	}
	return fmt.Sprintf("%d", year)
}

func renderEntries(w io.Writer, title string, entries []models.MovieEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}

	t.AppendHeader(table.Row{"ID", "Watched", "Title", "Year", "Director", "Genre", "Rating", "Notes"})
	for _, e := range entries {
		year := ""
		if e.Year > 0 {
			year = fmt.Sprintf("%d", e.Year)
		}
		t.AppendRow(table.Row{e.ID, e.WatchedDate, e.Title, year, e.Director, e.Genre, stars(&e), truncate(e.Notes, notesWidth)})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d entries", len(entries))})
	t.Render()
}

// stars draws a rating as five stars, or "-" when the entry is unrated or
// carries a rating outside 1..5.
func stars(e *models.MovieEntry) string {
	rating := e.NormalizedRating()
	if rating == models.RatingUnrated {
		return "-"
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", models.RatingMax-rating)
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
