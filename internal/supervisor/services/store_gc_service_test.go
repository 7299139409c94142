// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinetrack/internal/store"
)

var (
	_ suture.Service   = (*StoreGCService)(nil)
	_ GarbageCollector = (*store.BadgerStore)(nil)
)

type countingGC struct {
	runs atomic.Int32
	err  error
}

func (c *countingGC) RunGC(context.Context) error {
	c.runs.Add(1)
	return c.err
}

func TestNewStoreGCService_DefaultInterval(t *testing.T) {
	svc := NewStoreGCService(&countingGC{}, 0)
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.String() != "store-gc" {
		t.Errorf("String() = %q, want store-gc", svc.String())
	}
}

func TestStoreGCService_RunsOnEveryTick(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "successful passes", err: nil},
		{name: "failures keep the loop alive", err: errors.New("disk busy")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := &countingGC{err: tt.err}
			svc := NewStoreGCService(gc, 5*time.Millisecond)

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
			defer cancel()

			if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
				t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
			}
			if n := gc.runs.Load(); n < 2 {
				t.Errorf("RunGC calls = %d, want at least 2", n)
			}
		})
	}
}
