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
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the per-year profile report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(a *app) error {
				renderReport(cmd.OutOrStdout(), a.engine.YearlyReport(a.store.List(cmd.Context())))
				return nil
			})
		},
	}
}

func renderReport(w io.Writer, r models.YearlyReport) {
	if len(r.Years) == 0 {
		fmt.Fprintln(w, "No dated entries yet")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Year", "Entries", "Top directors", "Top genres"})
	for _, y := range r.Years {
		t.AppendRow(table.Row{y.Year, y.Total, joinTags(y.TopDirectors), joinTags(y.TopGenres)})
	}
	t.AppendFooter(table.Row{"Total", r.TotalEntries})
	t.Render()
}

func joinTags(counts []models.TagCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s (%d)", c.Name, c.Count)
	}
	return strings.Join(parts, ", ")
}
