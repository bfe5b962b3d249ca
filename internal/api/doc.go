// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package api provides the HTTP layer of Foodiug: the Chi router, the request
handlers and the JSON envelope every endpoint answers with.

# Architecture

Handlers are thin. They decode input, call a service and map the outcome to
an envelope:

	HTTP Request -> Chi Router -> Middleware -> Handler -> Service -> Store
	                                               |
	                                           Envelope

Services live in internal/auth (accounts and sessions) and
internal/restaurant (city datasets). The store is injected at startup by
cmd/server; the package holds no globals.

# Endpoints

Authentication (/api/auth):
  - POST /signup: create an account, returns a session token
  - POST /login: verify credentials, returns a session token
  - GET  /me: own profile (requires a token)

Restaurants (/api/restaurants):
  - GET /villes: supported cities
  - GET /: every restaurant of every city, tagged with its city
  - GET /{ville}: one city's dataset
  - GET /{ville}/search: filtered search (type, category, ambiance,
    priceLevel, rating, halal, vegetarien, enfant)
  - GET /{ville}/recommendations: up to four well-rated picks
  - GET /{ville}/{id}: one restaurant

Operations:
  - GET /api/test: liveness message
  - GET /api/health: store ping
  - GET /metrics: Prometheus exposition
  - GET /swagger/*: Swagger UI

# Response Envelope

	{
	    "success": true,
	    "ville": "Rabat",
	    "count": 2,
	    "data": [...]
	}

Failures carry success=false and a French message. Internal errors also
carry the underlying error text in "error".

# Middleware Stack

Applied in order: request ID, real IP, panic recovery, CORS, security
headers and Prometheus metrics. The token check is applied per route.
*/
package api
