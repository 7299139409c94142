// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package websocket pushes change notifications to open browser tabs.

Every create, update, delete and import on the watch log is broadcast as an
"entries_changed" message. Statistics are never pushed: clients re-fetch the
views they show, which are recomputed from the current entries on each
request.

	{"type":"entries_changed","data":{"action":"deleted","id":"3","total":2}}

Clients may send {"type":"ping"} and receive {"type":"pong"}. Protocol-level
pings keep idle connections alive.

The Hub is run under the supervisor tree via RunWithContext. Slow clients
whose send buffer fills up are disconnected rather than allowed to stall the
broadcast loop.
*/
package websocket
