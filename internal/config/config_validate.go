// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
	maxLeaderboardLimit  = 100
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

var validTagModes = map[string]bool{
	"full": true, "primary": true,
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateStore,
		c.validateStats,
		c.validateGemini,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateStore() error {
	if c.Store.GCInterval < 0 {
		return fmt.Errorf("STORE_GC_INTERVAL must not be negative")
	}
	switch c.Store.Type {
	case StoreTypeMemory:
		return nil
	case StoreTypeBadger:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("STORE_PATH is required when STORE_TYPE=badger")
		}
		return nil
	default:
		return fmt.Errorf("STORE_TYPE must be one of: memory, badger (got %q)", c.Store.Type)
	}
}

func (c *Config) validateStats() error {
	if c.Stats.ReportLimit < 1 || c.Stats.ReportLimit > maxLeaderboardLimit {
		return fmt.Errorf("STATS_REPORT_LIMIT must be between 1 and %d", maxLeaderboardLimit)
	}
	if c.Stats.SummaryLimit < 1 || c.Stats.SummaryLimit > maxLeaderboardLimit {
		return fmt.Errorf("STATS_SUMMARY_LIMIT must be between 1 and %d", maxLeaderboardLimit)
	}
	if !validTagModes[c.Stats.ReportMode] {
		return fmt.Errorf("STATS_REPORT_MODE must be one of: full, primary")
	}
	if !validTagModes[c.Stats.SummaryMode] {
		return fmt.Errorf("STATS_SUMMARY_MODE must be one of: full, primary")
	}
	return nil
}

func (c *Config) validateGemini() error {
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT must be positive")
	}
	if c.Gemini.BreakerFailureRatio <= 0 || c.Gemini.BreakerFailureRatio > 1 {
		return fmt.Errorf("GATEWAY_BREAKER_RATIO must be in (0, 1]")
	}
	if c.Gemini.TrendingCacheTTL < 0 || c.Gemini.DetailsCacheTTL < 0 {
		return fmt.Errorf("gateway cache TTLs must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production; set specific origins")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
