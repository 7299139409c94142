// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/validation"
)

func newAddCmd() *cobra.Command {
	var entry models.MovieEntry

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an entry to the watch log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry.Title = strings.TrimSpace(args[0])
			entry.WatchedDate = strings.TrimSpace(entry.WatchedDate)
			if entry.WatchedDate == "" {
				entry.WatchedDate = time.Now().Format(models.WatchedDateLayout)
			}
			if entry.ID == "" {
				entry.ID = uuid.New().String()
			}
			if verr := validation.ValidateStruct(&entry); verr != nil {
				return fmt.Errorf("invalid entry: %s", verr.Error())
			}

			return withApp(func(a *app) error {
				all, err := a.store.Create(cmd.Context(), entry)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s), %d entries in log\n", entry.Title, entry.ID, len(all))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&entry.ID, "id", "", "Entry id (generated when empty)")
	cmd.Flags().StringVar(&entry.Director, "director", "", "Director, several separated by / or ,")
	cmd.Flags().IntVar(&entry.Year, "year", 0, "Release year")
	cmd.Flags().StringVar(&entry.WatchedDate, "watched", "", "Watched date YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&entry.Rating, "rating", 0, "Rating 1-5, 0 for unrated")
	cmd.Flags().StringVar(&entry.Genre, "genre", "", "Genre, several separated by / or ,")
	cmd.Flags().StringVar(&entry.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&entry.PosterURL, "poster", "", "Poster image URL")
	return cmd
}
