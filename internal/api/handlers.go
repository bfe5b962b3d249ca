// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"context"
	"time"

	"github.com/tomtom215/foodiug/internal/auth"
	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/restaurant"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_auth.go: signup, login and profile
//   - handlers_restaurants.go: city datasets, search and recommendations
//   - handlers_health.go: liveness and store health
type Handler struct {
	credentials *auth.CredentialService
	issuer      *auth.TokenIssuer
	restaurants *restaurant.Service
	store       Pinger
	authLog     *logging.AuthLogger
	startTime   time.Time
	now         func() time.Time
}

// NewHandler creates a handler over the given services.
//
// Example:
//
//	handler := api.NewHandler(credentials, issuer, restaurants, st)
//	router := api.NewRouter(handler, auth.NewMiddleware(issuer), nil)
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(credentials *auth.CredentialService, issuer *auth.TokenIssuer, restaurants *restaurant.Service, pinger Pinger) *Handler {
	return &Handler{
		credentials: credentials,
		issuer:      issuer,
		restaurants: restaurants,
		store:       pinger,
		authLog:     logging.NewAuthLogger(),
		startTime:   time.Now(),
		now:         time.Now,
	}
}
