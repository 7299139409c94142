// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinetrack/internal/store"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the watch log as JSON (- for stdout)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				entries := a.store.List(cmd.Context())
				if args[0] == "-" {
					return store.ExportJSON(cmd.OutOrStdout(), entries)
				}

				f, err := os.Create(args[0])
				if err != nil {
					return err
				}
				if err := store.ExportJSON(f, entries); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", len(entries), args[0])
				return nil
			})
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Merge entries from a JSON export",
		Long:  "Entries whose id already exists are skipped; entries without an id get a new one.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			return withApp(func(a *app) error {
				res, err := store.ImportJSON(cmd.Context(), a.store, f)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Imported %d, skipped %d existing, %d invalid\n", res.Added, res.Existing, res.Invalid)
				for _, p := range res.Problems {
					fmt.Fprintf(out, "  %s\n", p)
				}
				return nil
			})
		},
	}
}
