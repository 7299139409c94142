// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/metrics"
	"github.com/tomtom215/cinetrack/internal/models"
)

const backendBadger = "badger"

// BadgerStore keeps the serialized collection in BadgerDB under EntriesKey.
//
// Writes are serialized by mu so that read-modify-write cycles never race;
// each cycle runs in a single Badger transaction and is durable on return.
type BadgerStore struct {
	db     *badger.DB
	mu     sync.Mutex
	log    zerolog.Logger
	ownsDB bool
}

// OpenBadgerStore opens (or creates) a Badger database at path.
// An empty path opens an in-memory database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &badgerLogger{log: logging.WithComponent("badger")}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for entries: %w", err)
	}
	s := NewBadgerStore(db)
	s.ownsDB = true
	return s, nil
}

// NewBadgerStore wraps an already-open database. Close does not close db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db, log: logging.WithComponent("store")}
}

// List implements Store.
func (s *BadgerStore) List(_ context.Context) []models.MovieEntry {
	start := time.Now()
	var entries []models.MovieEntry
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		entries, err = readEntries(txn)
		return err
	})
	if err != nil {
		s.log.Warn().Err(err).Str("key", EntriesKey).Msg("Entry collection unreadable, treating as empty")
		entries = []models.MovieEntry{}
	}
	metrics.RecordStoreOperation(backendBadger, "list", time.Since(start), len(entries), err)
	return entries
}

// Get implements Store.
func (s *BadgerStore) Get(ctx context.Context, id string) (models.MovieEntry, bool) {
	entries := s.List(ctx)
	if i := indexOf(entries, id); i >= 0 {
		return entries[i], true
	}
	return models.MovieEntry{}, false
}

// Create implements Store.
func (s *BadgerStore) Create(ctx context.Context, entry models.MovieEntry) ([]models.MovieEntry, error) {
	return s.mutate(ctx, "create", func(cur []models.MovieEntry) ([]models.MovieEntry, error) {
		return applyCreate(cur, entry)
	})
}

// Update implements Store.
func (s *BadgerStore) Update(ctx context.Context, entry models.MovieEntry) ([]models.MovieEntry, error) {
	return s.mutate(ctx, "update", func(cur []models.MovieEntry) ([]models.MovieEntry, error) {
		return applyUpdate(cur, entry)
	})
}

// Delete implements Store.
func (s *BadgerStore) Delete(ctx context.Context, id string) ([]models.MovieEntry, error) {
	return s.mutate(ctx, "delete", func(cur []models.MovieEntry) ([]models.MovieEntry, error) {
		return applyDelete(cur, id), nil
	})
}

func (s *BadgerStore) mutate(ctx context.Context, op string, fn func([]models.MovieEntry) ([]models.MovieEntry, error)) ([]models.MovieEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var next []models.MovieEntry
	err := s.db.Update(func(txn *badger.Txn) error {
		cur, err := readEntries(txn)
		if err != nil {
			// A corrupt blob is replaced rather than blocking every write.
			s.log.Warn().Err(err).Str("op", op).Msg("Discarding unreadable entry collection")
			cur = []models.MovieEntry{}
		}
		next, err = fn(cur)
		if err != nil {
			return err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal entries: %w", err)
		}
		return txn.Set([]byte(EntriesKey), data)
	})

	size := len(next)
	if err != nil {
		size = -1
	}
	metrics.RecordStoreOperation(backendBadger, op, time.Since(start), size, err)

	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateID) || errors.Is(err, ErrEmptyID) {
			return nil, err
		}
		return nil, fmt.Errorf("%s entry: %w", op, err)
	}
	return clone(next), nil
}

// readEntries decodes the collection. A missing key is an empty log.
func readEntries(txn *badger.Txn) ([]models.MovieEntry, error) {
	item, err := txn.Get([]byte(EntriesKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []models.MovieEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entries: %w", err)
	}

	entries := []models.MovieEntry{}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entries)
	})
	if err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

// writeRaw stores arbitrary bytes under EntriesKey. Tests use it to simulate
// a corrupt collection.
func (s *BadgerStore) writeRaw(data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(EntriesKey), data)
	})
}

// gcDiscardRatio is the share of stale data a value log file needs before it
// is rewritten.
const gcDiscardRatio = 0.5

// RunGC reclaims value log space left behind by earlier versions of the
// collection. Every mutation rewrites the whole blob, so stale versions pile
// up quickly.
func (s *BadgerStore) RunGC(ctx context.Context) error {
	start := time.Now()
	rewrites := 0
	for ctx.Err() == nil {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			break
		}
		if err != nil {
			metrics.RecordStoreOperation(backendBadger, "gc", time.Since(start), -1, err)
			return fmt.Errorf("badger value log gc: %w", err)
		}
		rewrites++
	}
	metrics.RecordStoreOperation(backendBadger, "gc", time.Since(start), -1, nil)
	logging.Debug().Int("rewrites", rewrites).Dur("duration", time.Since(start)).Msg("Badger value log GC finished")
	return ctx.Err()
}

// Ping implements Store.
func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger db is closed")
	}
	return nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}

// badgerLogger routes Badger's own logging into zerolog. Info and debug
// chatter is demoted to debug.
type badgerLogger struct {
	log zerolog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(format, args...)
}
