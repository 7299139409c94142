// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package tags splits the free-text Director and Genre fields into tokens.
//
// A field such as "剧情, 科幻/动作" is split on runs of ASCII commas, full-width
// commas (U+FF0C), slashes and Unicode whitespace. Empty tokens are dropped.
// Tokens are otherwise returned verbatim: no case folding, no deduplication.
package tags

import (
	"strings"
	"unicode"
)

// Mode selects how many tokens a field contributes to a leaderboard.
type Mode int

const (
	// FullSplit counts every token of the field.
	FullSplit Mode = iota
	// PrimaryOnly counts only the first token.
	PrimaryOnly
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case FullSplit:
		return "full"
	case PrimaryOnly:
		return "primary"
	default:
		return "unknown"
	}
}

// ParseMode accepts "full" and "primary" (and a few aliases). Unknown values
// return ok=false.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "full_split", "full-split", "all":
		return FullSplit, true
	case "primary", "primary_only", "primary-only", "first":
		return PrimaryOnly, true
	default:
		return FullSplit, false
	}
}

func isSeparator(r rune) bool {
	switch r {
	case ',', '，', '/':
		return true
	}
	return unicode.IsSpace(r)
}

// Tokenize splits raw into its non-empty tokens. It never returns nil.
func Tokenize(raw string) []string {
	fields := strings.FieldsFunc(raw, isSeparator)
	if fields == nil {
		return []string{}
	}
	return fields
}

// Primary returns the first token of raw.
func Primary(raw string) (string, bool) {
	raw = strings.TrimLeftFunc(raw, isSeparator)
	if raw == "" {
		return "", false
	}
	if i := strings.IndexFunc(raw, isSeparator); i >= 0 {
		raw = raw[:i]
	}
	return raw, true
}

// Extract returns the tokens of raw that count under mode.
func Extract(raw string, mode Mode) []string {
	if mode == PrimaryOnly {
		if p, ok := Primary(raw); ok {
			return []string{p}
		}
		return []string{}
	}
	return Tokenize(raw)
}
