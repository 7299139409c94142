// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package config loads CineTrack configuration with Koanf v2.
//
// Sources are layered, later ones winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/cinetrack/config.yaml
//  3. Environment variables, mapped explicitly by envTransformFunc
//
// Unknown environment variables are ignored. The resulting Config is validated
// before it is returned.
package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the complete runtime configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Stats    StatsConfig    `koanf:"stats"`
	Gemini   GeminiConfig   `koanf:"gemini"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Store backends.
const (
	StoreTypeMemory = "memory"
	StoreTypeBadger = "badger"
)

// StoreConfig selects and configures the entry store.
type StoreConfig struct {
	// Type is "memory" or "badger".
	Type string `koanf:"type"`
	// Path is the BadgerDB directory.
	Path string `koanf:"path"`
	// SeedDemoData inserts the demo entries into an empty store and
	// back-fills their posters on later starts.
	SeedDemoData bool `koanf:"seed_demo_data"`
	// GCInterval is the period of the value-log garbage collection pass.
	// Zero disables it.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// StatsConfig tunes the leaderboards. Modes are "full" or "primary".
type StatsConfig struct {
	ReportLimit  int    `koanf:"report_limit"`
	ReportMode   string `koanf:"report_mode"`
	SummaryLimit int    `koanf:"summary_limit"`
	SummaryMode  string `koanf:"summary_mode"`
}

// GeminiConfig configures the recommendation gateway.
//
// An empty APIKey is valid: every gateway call then answers with its
// fallback value.
type GeminiConfig struct {
	APIKey              string        `koanf:"api_key"`
	Model               string        `koanf:"model"`
	Timeout             time.Duration `koanf:"timeout"`
	TrendingCacheTTL    time.Duration `koanf:"trending_cache_ttl"`
	DetailsCacheTTL     time.Duration `koanf:"details_cache_ttl"`
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerOpenTimeout  time.Duration `koanf:"breaker_open_timeout"`
}

// Enabled reports whether a credential is configured.
func (g GeminiConfig) Enabled() bool {
	return strings.TrimSpace(g.APIKey) != ""
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from all sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether Server.Environment is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// Addr is the listen address for net/http.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
