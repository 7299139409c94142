// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinetrack/config.yaml",
	"/etc/cinetrack/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultGeminiModel is used when gemini.model is empty.
const DefaultGeminiModel = "gemini-2.5-flash"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Store: StoreConfig{
			Type:         StoreTypeBadger,
			Path:         "/data/cinetrack",
			SeedDemoData: true,
			GCInterval:   10 * time.Minute,
		},
		Stats: StatsConfig{
			ReportLimit:  3,
			ReportMode:   "full",
			SummaryLimit: 5,
			SummaryMode:  "primary",
		},
		Gemini: GeminiConfig{
			APIKey:              "",
			Model:               DefaultGeminiModel,
			Timeout:             20 * time.Second,
			TrendingCacheTTL:    6 * time.Hour,
			DetailsCacheTTL:     24 * time.Hour,
			BreakerMinRequests:  5,
			BreakerFailureRatio: 0.6,
			BreakerOpenTimeout:  60 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads defaults, then the config file, then the environment,
// and validates the result.
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths arrive from the environment as comma-separated strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// API_KEY is accepted as an alias of GEMINI_API_KEY.
var envMappings = map[string]string{
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	"store_type":        "store.type",
	"store_path":        "store.path",
	"seed_demo_data":    "store.seed_demo_data",
	"store_gc_interval": "store.gc_interval",

	"stats_report_limit":  "stats.report_limit",
	"stats_report_mode":   "stats.report_mode",
	"stats_summary_limit": "stats.summary_limit",
	"stats_summary_mode":  "stats.summary_mode",

	"gemini_api_key":               "gemini.api_key",
	"api_key":                      "gemini.api_key",
	"gemini_model":                 "gemini.model",
	"gateway_timeout":              "gemini.timeout",
	"trending_cache_ttl":           "gemini.trending_cache_ttl",
	"details_cache_ttl":            "gemini.details_cache_ttl",
	"gateway_breaker_min_requests": "gemini.breaker_min_requests",
	"gateway_breaker_ratio":        "gemini.breaker_failure_ratio",
	"gateway_breaker_timeout":      "gemini.breaker_open_timeout",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc returns "" for unmapped keys so that unrelated variables
// never reach the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
