// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/metrics"
)

// TokenCookie is the cookie consulted when no Authorization header is sent.
const TokenCookie = "token"

// Client-facing rejection messages.
const (
	MsgTokenMissing = "Non autorisé, token manquant"
	MsgTokenInvalid = "Non autorisé, token invalide"
)

// Middleware guards routes with a session token.
type Middleware struct {
	issuer *TokenIssuer
}

// NewMiddleware creates the token middleware.
func NewMiddleware(issuer *TokenIssuer) *Middleware {
	return &Middleware{issuer: issuer}
}

// Authenticate rejects requests without a valid token and stores the user
// id in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			metrics.RecordAuthEvent(EventToken, "missing")
			writeUnauthorized(w, MsgTokenMissing)
			return
		}

		userID, err := m.issuer.Validate(token)
		if err != nil {
			metrics.RecordAuthEvent(EventToken, "invalid")
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			writeUnauthorized(w, MsgTokenInvalid)
			return
		}

		metrics.RecordAuthEvent(EventToken, "success")
		next.ServeHTTP(w, r.WithContext(logging.ContextWithUserID(r.Context(), userID)))
	})
}

// UserIDFromContext returns the id set by Authenticate.
func UserIDFromContext(ctx context.Context) string {
	return logging.UserIDFromContext(ctx)
}

// extractToken reads "Authorization: Bearer <token>", then the token cookie.
func extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
