// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/validation"
)

// ExportJSON writes entries in the stored layout.
func ExportJSON(w io.Writer, entries []models.MovieEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return nil
}

// ImportResult summarizes an import.
type ImportResult struct {
	Added    int      `json:"added"`
	Existing int      `json:"existing"`
	Invalid  int      `json:"invalid"`
	Problems []string `json:"problems,omitempty"`
}

// ImportJSON merges a JSON array in the stored layout into s. Entries whose
// id is already present are left alone; entries without an id get a new one;
// entries failing validation are skipped. The file's relative order is kept.
func ImportJSON(ctx context.Context, s Store, r io.Reader) (ImportResult, error) {
	var res ImportResult

	var incoming []models.MovieEntry
	if err := json.NewDecoder(r).Decode(&incoming); err != nil {
		return res, fmt.Errorf("decode import: %w", err)
	}

	known := make(map[string]bool)
	for _, e := range s.List(ctx) {
		known[e.ID] = true
	}

	// The file is newest-first; Create prepends, so walk it backwards.
	for i := len(incoming) - 1; i >= 0; i-- {
		e := incoming[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if known[e.ID] {
			res.Existing++
			continue
		}
		if verr := validation.ValidateStruct(&e); verr != nil {
			res.Invalid++
			res.Problems = append(res.Problems, fmt.Sprintf("%s: %s", e.ID, verr.Error()))
			continue
		}
		if _, err := s.Create(ctx, e); err != nil {
			return res, fmt.Errorf("import entry %s: %w", e.ID, err)
		}
		known[e.ID] = true
		res.Added++
	}
	return res, nil
}
