// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package supervisor runs CineTrack's long-lived services under suture v4.

	RootSupervisor ("cinetrack")
	├── DataSupervisor ("data-layer")
	│   └── StoreGCService (badger store only)
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a hub crash never takes the
HTTP listener down with it. Crashed services restart with suture's
decaying failure counter; once FailureThreshold is exceeded, restarts wait
FailureBackoff.

Services return nil to stop for good, an error to be restarted, and
ctx.Err() when shutdown is requested. Supervisor events are logged
through sutureslog, which main wires to the zerolog-backed slog handler.

The entry store itself is not supervised: it is a library opened once by
main and closed after the tree stops.
*/
package supervisor
