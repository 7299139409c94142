// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

/*
Package api serves the CineTrack HTTP API on a chi router.

Routes are grouped under /api/v1:

	GET    /health/live, /health/ready
	GET    /entries?q=            newest watched first, optional search
	GET    /entries/grouped?q=    the same list grouped by watched year
	POST   /entries               create; the id is generated when empty
	GET    /entries/{id}
	PUT    /entries/{id}
	DELETE /entries/{id}          idempotent
	GET    /stats/years
	GET    /stats/{year}          single-year summary
	GET    /stats/{year}/monthly
	GET    /stats/{year}/ratings
	GET    /stats/{year}/top?field=director|genre&limit=&mode=full|primary
	GET    /profile/report        per-year leaderboards for every year
	GET    /recommend/details?title=&director=
	GET    /recommend/pick
	GET    /recommend/trending
	GET    /recommend/recap/{year}
	GET    /ws                    entries_changed feed

Prometheus metrics are exposed on /metrics.

Every body is a models.APIResponse envelope. Statistics are recomputed from
the store on each request, so they always reflect the latest mutation.
Recommendation endpoints never fail because of the AI provider: they answer
200 and set metadata.fallback when the value is a default.
*/
package api
