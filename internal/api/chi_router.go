// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/foodiug/internal/auth"
	"github.com/tomtom215/foodiug/internal/middleware"
)

// Router wires handlers and middleware into a Chi mux.
type Router struct {
	handler       *Handler
	auth          *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, config *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		auth:          authMiddleware,
		chiMiddleware: NewChiMiddleware(config),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Unmatched paths and wrong methods share the same 404 envelope.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered everywhere

	// ========================
	// Authentication Endpoints
	// ========================
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Post("/signup", router.handler.Signup)
		r.Post("/login", router.handler.Login)
		r.With(router.auth.Authenticate).Get("/me", router.handler.Me)
	})

	// ========================
	// Restaurant Endpoints
	// ========================
	// Static segments take precedence over {ville} and {id} in Chi's tree.
	r.Route("/api/restaurants", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", router.handler.AllRestaurants)
		r.Get("/villes", router.handler.Villes)
		r.Route("/{ville}", func(r chi.Router) {
			r.Get("/", router.handler.RestaurantsByCity)
			r.Get("/search", router.handler.Search)
			r.Get("/recommendations", router.handler.Recommendations)
			r.Get("/{id}", router.handler.RestaurantByID)
		})
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/api/test", router.handler.Test)
		r.Get("/api/health", router.handler.Health)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	respondMessage(w, http.StatusNotFound, MsgRouteNotFound)
}
