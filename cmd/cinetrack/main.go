// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Command cinetrack manages the watch log from the terminal. It opens the
// same store the server uses, so run it while the server is stopped when
// the badger backend is configured.
package main

import (
	"os"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
