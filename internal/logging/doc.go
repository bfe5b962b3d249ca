// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package logging provides centralized zerolog-based structured logging for Foodiug.
//
// The package keeps one global zerolog logger that every component writes to.
// JSON output is the production default; console output is friendlier during
// local development.
//
// # Overview
//
// The package provides:
//   - A global logger configured once through Init
//   - Context-aware logging carrying the HTTP request ID and the authenticated user
//   - An slog adapter so suture's event hook writes through zerolog
//   - AuthLogger for signup and login audit events with masked identifiers
//
// # Quick Start
//
//	import "github.com/tomtom215/foodiug/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("ville", "Rabat").Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Store ping failed")
//
//	// Inside an HTTP handler
//	logging.Ctx(r.Context()).Debug().Int("count", n).Msg("Search executed")
//
// # Configuration
//
// Environment variables (mapped by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Never log raw passwords, tokens, or full email addresses. Use AuthLogger
// or the Sanitize helpers for anything derived from credentials.
package logging
