// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package api provides the HTTP surface: routing, request decoding, and the
// mapping from domain errors to status codes.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robm15/vibetravels/internal/auth"
	"github.com/robm15/vibetravels/internal/config"
	"github.com/robm15/vibetravels/internal/middleware"
)

// Router assembles the middleware stack and routes.
type Router struct {
	handler  *Handler
	resolver *auth.Resolver
	limiter  *auth.RateLimiter
	config   *config.Config
}

// NewRouter creates the router with its middleware collaborators.
func NewRouter(handler *Handler, resolver *auth.Resolver, limiter *auth.RateLimiter, cfg *config.Config) *Router {
	return &Router{
		handler:  handler,
		resolver: resolver,
		limiter:  limiter,
		config:   cfg,
	}
}

// Setup configures all HTTP routes.
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order. CORS must be
	// global so OPTIONS preflights are answered before authentication.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.config.Security.CORSOrigins))

	// Public endpoints.
	r.Get("/api/health", rt.handler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Authenticated API. The principal resolver runs before RequireAuth so
	// the 401 carries a JSON body instead of chi's plain-text default.
	r.Route("/api", func(r chi.Router) {
		r.Use(rt.limiter.Middleware)
		r.Use(middleware.PrometheusMetrics)
		r.Use(rt.resolver.ResolvePrincipal)
		r.Use(auth.RequireAuth)

		r.Route("/trip-plans", func(r chi.Router) {
			r.Get("/can-generate", rt.handler.CanGenerate)
			r.Post("/generate", rt.handler.Generate)
			r.Get("/", rt.handler.ListPlans)
			r.Get("/{id}", rt.handler.GetPlan)
			r.Put("/{id}/rate", rt.handler.RatePlan)
			r.Delete("/{id}", rt.handler.DeletePlan)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", rt.handler.ListNotes)
			r.Post("/", rt.handler.CreateNote)
			r.Get("/{id}", rt.handler.GetNote)
			r.Put("/{id}", rt.handler.UpdateNote)
			r.Delete("/{id}", rt.handler.DeleteNote)
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", rt.handler.GetPreferences)
			r.Put("/", rt.handler.PutPreferences)
			r.Get("/options", rt.handler.PreferenceOptions)
		})
	})

	return r
}
