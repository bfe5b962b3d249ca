// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// @title Foodiug API
// @version 1.0
// @description Restaurant directory for Rabat and Tanger with filtered search, random recommendations and JWT accounts.
// @description
// @description ## Envelope
// @description
// @description Every response is a JSON object with a boolean `success`.
// @description Errors carry a French `message`; server errors add `error`.
// @description
// @description ## Authentication
// @description
// @description `/api/auth/signup` and `/api/auth/login` return a token valid for 30 days.
// @description Send it as `Authorization: Bearer <token>` or in the `token` cookie.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/foodiug/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token from /api/auth/login or /api/auth/signup.
//
// @tag.name auth
// @tag.description Account creation, login and profile
//
// @tag.name restaurants
// @tag.description City listings, search and recommendations
//
// @tag.name health
// @tag.description Liveness and store reachability
package main
