// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newRecapCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "recap",
		Short: "Write an AI recap of one watched year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			return withApp(func(a *app) error {
				gw := a.gateway(cmd.Context())
				defer gw.Close()

				res := gw.YearlyRecap(cmd.Context(), a.store.List(cmd.Context()), year)
				fmt.Fprintln(cmd.OutOrStdout(), res.Value)
				if res.IsFallback() {
					fmt.Fprintln(cmd.ErrOrStderr(), "(AI recap unavailable, showing a plain summary)")
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Watched year (default current year)")
	return cmd
}
