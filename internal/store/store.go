// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package store persists the watch log.
//
// The whole collection is one JSON array of models.MovieEntry held under the
// fixed key "cinetrack_entries_v1". New entries are prepended, so the stored
// order is newest-created first regardless of watched date. Every mutation
// returns the full updated collection, which callers feed straight back into
// the aggregation engine.
//
// A collection that cannot be read or decoded is treated as empty. The
// failure is logged and counted, never returned, so the application keeps
// working on a fresh log.
package store

import (
	"context"
	"errors"

	"github.com/tomtom215/cinetrack/internal/models"
)

// EntriesKey is the storage key of the serialized collection.
const EntriesKey = "cinetrack_entries_v1"

var (
	// ErrNotFound is returned by Update for an unknown id.
	ErrNotFound = errors.New("entry not found")
	// ErrDuplicateID is returned by Create when the id is already in use.
	ErrDuplicateID = errors.New("entry id already exists")
	// ErrEmptyID is returned when an entry has no id.
	ErrEmptyID = errors.New("entry id is required")
)

// Store is the persistence boundary of the watch log.
type Store interface {
	// List returns a fresh copy of every entry in stored order.
	List(ctx context.Context) []models.MovieEntry
	// Get returns the entry with id.
	Get(ctx context.Context, id string) (models.MovieEntry, bool)
	// Create prepends entry and returns the updated collection.
	Create(ctx context.Context, entry models.MovieEntry) ([]models.MovieEntry, error)
	// Update replaces the entry with the same id.
	Update(ctx context.Context, entry models.MovieEntry) ([]models.MovieEntry, error)
	// Delete removes id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) ([]models.MovieEntry, error)
	// Ping reports whether the backend is usable.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close() error
}

// GarbageCollector is implemented by backends that need periodic space
// reclamation.
type GarbageCollector interface {
	RunGC(ctx context.Context) error
}

func indexOf(entries []models.MovieEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

func clone(entries []models.MovieEntry) []models.MovieEntry {
	out := make([]models.MovieEntry, len(entries))
	copy(out, entries)
	return out
}

// applyCreate, applyUpdate and applyDelete are the backend-independent
// mutations. They never modify their input.
func applyCreate(entries []models.MovieEntry, entry models.MovieEntry) ([]models.MovieEntry, error) {
	if entry.ID == "" {
		return nil, ErrEmptyID
	}
	if indexOf(entries, entry.ID) >= 0 {
		return nil, ErrDuplicateID
	}
	out := make([]models.MovieEntry, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...), nil
}

func applyUpdate(entries []models.MovieEntry, entry models.MovieEntry) ([]models.MovieEntry, error) {
	i := indexOf(entries, entry.ID)
	if i < 0 {
		return nil, ErrNotFound
	}
	out := clone(entries)
	out[i] = entry
	return out, nil
}

func applyDelete(entries []models.MovieEntry, id string) []models.MovieEntry {
	out := make([]models.MovieEntry, 0, len(entries))
	for i := range entries {
		if entries[i].ID != id {
			out = append(out, entries[i])
		}
	}
	return out
}
