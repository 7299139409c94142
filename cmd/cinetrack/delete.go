// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withApp(func(a *app) error {
				entry, ok := a.store.Get(cmd.Context(), id)
				if !ok {
					return fmt.Errorf("entry %q not found", id)
				}

				if !force {
					fmt.Fprintf(cmd.ErrOrStderr(), "Delete %q watched %s? (y/N) ", entry.Title, entry.WatchedDate)
					answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					if err != nil && answer == "" {
						return err
					}
					if strings.TrimSpace(strings.ToLower(answer)) != "y" {
						fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
						return nil
					}
				}

				all, err := a.store.Delete(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q, %d entries left\n", entry.Title, len(all))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	return cmd
}
