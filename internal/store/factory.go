// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package store

import (
	"fmt"

	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/logging"
)

// Open builds the backend selected by cfg.Type.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case config.StoreTypeMemory:
		logging.Info().Str("backend", backendMemory).Msg("Entry store opened (not persistent)")
		return NewMemoryStore(), nil
	case config.StoreTypeBadger:
		s, err := OpenBadgerStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		logging.Info().Str("backend", backendBadger).Str("path", cfg.Path).Msg("Entry store opened")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
