// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package cache is a small in-memory TTL cache. The recommendation gateway
// uses it to avoid asking the AI provider for the same trending list or title
// details over and over. Derived statistics are never cached.
package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinetrack/internal/metrics"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// TTL is a concurrency-safe map whose entries expire. A TTL of zero disables
// caching: Set is a no-op and Get always misses.
type TTL[V any] struct {
	name    string
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]entry[V]
	stats   Stats
	stop    chan struct{}
	once    sync.Once
}

// New returns a cache whose entries live for ttl. name labels the hit and
// miss metrics. A janitor goroutine drops expired entries every
// cleanupInterval until Close is called; cleanupInterval <= 0 disables it.
func New[V any](name string, ttl, cleanupInterval time.Duration) *TTL[V] {
	c := &TTL[V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
		stop:    make(chan struct{}),
	}
	c.stats.LastCleanup = c.now()
	if cleanupInterval > 0 && ttl > 0 {
		go c.cleanupLoop(cleanupInterval)
	}
	return c
}

// Get returns the live value stored under key.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the key.
		if cur, still := c.entries[key]; still && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
			c.stats.TotalKeys = int64(len(c.entries))
		}
		c.mu.Unlock()
		ok = false
	}

	c.record(ok)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for the cache TTL.
func (c *TTL[V]) Set(key string, value V) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
	c.stats.TotalKeys = int64(len(c.entries))
	c.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (c *TTL[V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate is hits / (hits + misses) as a percentage.
func (c *TTL[V]) HitRate() float64 {
	s := c.Stats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Close stops the janitor. It is safe to call more than once.
func (c *TTL[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *TTL[V]) record(hit bool) {
	c.mu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.mu.Unlock()
	metrics.RecordCacheLookup(c.name, hit)
}

func (c *TTL[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *TTL[V]) cleanup() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
}

// GenerateKey builds a stable key from a method name and JSON-encodable params.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
