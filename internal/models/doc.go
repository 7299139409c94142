// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package models defines the data shared by the store, the aggregation engine,
// the recommendation gateway and the HTTP API.
//
// MovieEntry is the only persisted type. Its JSON field names follow the
// layout written to the entry store (camelCase), so an exported collection can
// be imported again unchanged. Everything else in this package is derived on
// demand and never stored.
package models
