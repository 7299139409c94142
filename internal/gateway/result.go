// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package gateway

// Source says where a Result value came from.
type Source string

const (
	// SourceLive is a fresh answer from the AI provider.
	SourceLive Source = "live"
	// SourceCache is an earlier live answer served from the cache.
	SourceCache Source = "cache"
	// SourceFallback is a fixed or locally computed default.
	SourceFallback Source = "fallback"
)

// Result always carries a usable Value. Err explains a fallback and is meant
// for logs and tests; callers must not treat it as a failure.
type Result[T any] struct {
	Value  T
	Source Source
	Err    error
}

// IsFallback reports whether Value is a default rather than a provider answer.
func (r Result[T]) IsFallback() bool {
	return r.Source == SourceFallback
}

func live[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceLive}
}

func cached[T any](v T) Result[T] {
	return Result[T]{Value: v, Source: SourceCache}
}

func fallback[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Source: SourceFallback, Err: err}
}
