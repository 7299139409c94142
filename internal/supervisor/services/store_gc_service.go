// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinetrack/internal/logging"
)

// GarbageCollector is satisfied by *store.BadgerStore.
type GarbageCollector interface {
	RunGC(ctx context.Context) error
}

// StoreGCService reclaims value-log space on a fixed interval.
//
// Badger never rewrites its value log on its own, so deleted and overwritten
// entries keep their disk space until a GC pass runs. On every tick the
// service:
//
//  1. Calls RunGC, which rewrites value-log files until nothing is reclaimed
//  2. Logs a warning if the pass failed
//  3. Waits for the next tick
//
// A failed pass never makes the service exit. The store keeps working
// without GC and the next tick tries again.
//
// Example usage:
//
//	if gc, ok := entryStore.(store.GarbageCollector); ok {
//		tree.AddDataService(services.NewStoreGCService(gc, cfg.Store.GCInterval))
//	}
type StoreGCService struct {
	gc       GarbageCollector
	interval time.Duration
	name     string
}

// NewStoreGCService wraps gc. A non-positive interval becomes 10m.
func NewStoreGCService(gc GarbageCollector, interval time.Duration) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{
		gc:       gc,
		interval: interval,
		name:     "store-gc",
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.gc.RunGC(ctx); err != nil && ctx.Err() == nil {
				logging.Warn().Err(err).Str("service", s.name).Msg("Value log GC failed")
			}
		}
	}
}

func (s *StoreGCService) String() string {
	return s.name
}
