// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/models"
)

// Envelope is the response wrapper for all API endpoints.
type Envelope struct {
	// Success indicates whether the request was successful
	Success bool `json:"success"`

	// Message is a human-readable outcome, in French
	Message string `json:"message,omitempty"`

	// Error carries the internal error text on 500 responses
	Error string `json:"error,omitempty"`

	// Ville names the city a list response belongs to
	Ville string `json:"ville,omitempty"`

	// Count is the number of items in Data; set on every list response
	Count *int `json:"count,omitempty"`

	// Filters echoes the search query parameters; an empty echo is still written
	Filters any `json:"filters,omitempty"`

	// Token is the session token issued on signup and login
	Token string `json:"token,omitempty"`

	// User summarizes the account on signup and login
	User *models.UserSummary `json:"user,omitempty"`

	// Data contains the response payload
	Data any `json:"data,omitempty"`

	// Timestamp is set by the liveness endpoint
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// listEnvelope builds a list response; count is always present.
func listEnvelope(ville string, docs []models.Restaurant) *Envelope {
	if docs == nil {
		docs = []models.Restaurant{}
	}
	n := len(docs)
	return &Envelope{Success: true, Ville: ville, Count: &n, Data: docs}
}

// respondJSON writes the envelope with the given status.
func respondJSON(w http.ResponseWriter, status int, env *Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondMessage writes a failure envelope carrying only a message.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &Envelope{Success: false, Message: message})
}

// respondInternal writes a 500 envelope and logs the cause.
func respondInternal(w http.ResponseWriter, r *http.Request, message string, err error) {
	logging.Ctx(r.Context()).Error().
		Str("error", logging.StripControl(err.Error())).
		Str("path", logging.StripControl(r.URL.Path)).
		Msg(message)

	respondJSON(w, http.StatusInternalServerError, &Envelope{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
