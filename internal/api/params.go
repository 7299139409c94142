// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

const (
	maxBodyBytes = 1 << 20
	minYear      = 1000
	maxYear      = 9999
	maxTopLimit  = 50
)

// getIntParam returns defaultValue when key is absent or not an integer.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// yearParam reads the {year} path segment.
func yearParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < minYear || year > maxYear {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

// decodeJSONBody decodes a single JSON object of at most maxBodyBytes.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("request body is empty")
		case errors.As(err, &maxErr):
			return errors.New("request body is too large")
		default:
			return fmt.Errorf("invalid JSON body: %w", err)
		}
	}
	return nil
}
