// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Command server runs the CineTrack HTTP API.

Startup order:

 1. Configuration: koanf defaults, then config.yaml, then the environment
 2. Logging: zerolog, level and format from LOG_LEVEL and LOG_FORMAT
 3. Entry store: BadgerDB (STORE_PATH) or in-memory, optionally seeded
 4. Recommendation gateway: Gemini when GEMINI_API_KEY is set, fallbacks otherwise
 5. Aggregation engine, websocket hub, chi router
 6. Supervisor tree: store GC, websocket hub, HTTP server

SIGINT and SIGTERM cancel the root context. The HTTP server then drains
in-flight requests for up to SHUTDOWN_TIMEOUT before the store is closed.

Example:

	export STORE_TYPE=badger
	export STORE_PATH=./data
	export GEMINI_API_KEY=...
	./server
*/
package main
