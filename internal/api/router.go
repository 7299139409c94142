// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinetrack/internal/middleware"
)

// Router binds handlers to routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	return &Router{handler: handler, chiMiddleware: chiMW}
}

// SetupChi builds the route tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Handle("/metrics", promhttp.Handler())

	h := router.handler
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		// Probes are exempt from rate limiting.
		r.Get("/health/live", h.HealthLive)
		r.Get("/health/ready", h.HealthReady)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Route("/entries", func(r chi.Router) {
				r.Get("/", h.ListEntries)
				r.Post("/", h.CreateEntry)
				r.Get("/grouped", h.GroupedEntries)
				r.Get("/{id}", h.GetEntry)
				r.Put("/{id}", h.UpdateEntry)
				r.Delete("/{id}", h.DeleteEntry)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/years", h.StatsYears)
				r.Get("/{year}", h.StatsYear)
				r.Get("/{year}/monthly", h.StatsMonthly)
				r.Get("/{year}/ratings", h.StatsRatings)
				r.Get("/{year}/top", h.StatsTop)
			})

			r.Get("/profile/report", h.ProfileReport)

			r.Route("/recommend", func(r chi.Router) {
				r.Get("/details", h.RecommendDetails)
				r.Get("/pick", h.RecommendPick)
				r.Get("/trending", h.RecommendTrending)
				r.Get("/recap/{year}", h.RecommendRecap)
			})

			r.Get("/ws", h.WebSocket)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}
