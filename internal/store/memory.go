// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package store

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/cinetrack/internal/metrics"
	"github.com/tomtom215/cinetrack/internal/models"
)

const backendMemory = "memory"

// MemoryStore keeps the collection in process memory. It is used by tests
// and by STORE_TYPE=memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []models.MovieEntry
}

// NewMemoryStore returns a store holding a copy of initial.
func NewMemoryStore(initial ...models.MovieEntry) *MemoryStore {
	return &MemoryStore{entries: clone(initial)}
}

// List implements Store.
func (s *MemoryStore) List(_ context.Context) []models.MovieEntry {
	start := time.Now()
	s.mu.RLock()
	out := clone(s.entries)
	s.mu.RUnlock()
	metrics.RecordStoreOperation(backendMemory, "list", time.Since(start), len(out), nil)
	return out
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (models.MovieEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.entries, id); i >= 0 {
		return s.entries[i], true
	}
	return models.MovieEntry{}, false
}

// Create implements Store.
func (s *MemoryStore) Create(ctx context.Context, entry models.MovieEntry) ([]models.MovieEntry, error) {
	return s.mutate(ctx, "create", func(cur []models.MovieEntry) ([]models.MovieEntry, error) {
		return applyCreate(cur, entry)
	})
}

// Update implements Store.
func (s *MemoryStore) Update(ctx context.Context, entry models.MovieEntry) ([]models.MovieEntry, error) {
	return s.mutate(ctx, "update", func(cur []models.MovieEntry) ([]models.MovieEntry, error) {
		return applyUpdate(cur, entry)
	})
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, id string) ([]models.MovieEntry, error) {
	return s.mutate(ctx, "delete", func(cur []models.MovieEntry) ([]models.MovieEntry, error) {
		return applyDelete(cur, id), nil
	})
}

func (s *MemoryStore) mutate(ctx context.Context, op string, fn func([]models.MovieEntry) ([]models.MovieEntry, error)) ([]models.MovieEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	s.mu.Lock()
	next, err := fn(s.entries)
	if err == nil {
		s.entries = next
	}
	out := clone(s.entries)
	s.mu.Unlock()

	metrics.RecordStoreOperation(backendMemory, op, time.Since(start), len(out), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Ping implements Store.
func (s *MemoryStore) Ping(context.Context) error { return nil }

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
