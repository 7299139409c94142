// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/gateway"
	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/store"
)

// app is what every command works against.
type app struct {
	cfg    *config.Config
	store  store.Store
	engine *stats.Engine
}

func (a *app) Close() error {
	return a.store.Close()
}

// gateway is built on demand so that commands without AI features never
// create a provider client.
func (a *app) gateway(ctx context.Context) *gateway.Gateway {
	gw, err := gateway.NewFromConfig(ctx, a.cfg.Gemini)
	if err != nil {
		logging.Warn().Err(err).Msg("AI provider unavailable, using fallbacks")
		return gateway.New(a.cfg.Gemini, nil)
	}
	return gw
}

// openApp is replaced in tests.
var openApp = func() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(cfg.Store)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:    cfg,
		store:  s,
		engine: stats.NewEngine(engineOptions(cfg.Stats)),
	}, nil
}

// withApp opens the app for the duration of fn.
func withApp(fn func(a *app) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()
	return fn(a)
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "cinetrack",
		Short:         "CineTrack - a personal movie and TV watch log",
		Long:          "cinetrack records what you watched and summarizes your viewing by year, director and genre.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console"})
			if configPath != "" {
				return os.Setenv(config.ConfigPathEnvVar, configPath)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newRecapCmd())
	return cmd
}
