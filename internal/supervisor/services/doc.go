// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package services adapts CineTrack components to suture.Service.

  - HTTPServerService: ListenAndServe plus graceful Shutdown
  - WebSocketHubService: the change-notification hub
  - StoreGCService: periodic BadgerDB value-log GC

Each wrapper depends on a one-method interface instead of the concrete
package so tests can substitute fakes.
*/
package services
