// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package logging

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// AuthEvent is one authentication outcome worth keeping in the audit trail.
type AuthEvent struct {
	// Event is the kind of event: signup, login, token.
	Event string
	// UserID is set once the user is known.
	UserID string
	// Email is masked before it is written.
	Email string
	// IPAddress is the client address as seen by the router.
	IPAddress string
	// Success indicates whether the operation succeeded.
	Success bool
	// Reason explains a failure in a few words.
	Reason string
}

// AuthLogger writes authentication events with sensitive values masked.
type AuthLogger struct {
	logger zerolog.Logger
}

// NewAuthLogger creates an audit logger tagged with component=auth.
func NewAuthLogger() *AuthLogger {
	return &AuthLogger{logger: WithComponent("auth")}
}

// NewAuthLoggerWithLogger creates an audit logger on top of a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAuthLoggerWithLogger(logger zerolog.Logger) *AuthLogger {
	return &AuthLogger{logger: logger.With().Str("component", "auth").Logger()}
}

// Log writes the event. Failures are logged at warn level.
func (l *AuthLogger) Log(ctx context.Context, event AuthEvent) {
	e := l.logger.Info()
	if !event.Success {
		e = l.logger.Warn()
	}

	e = e.Str("event", event.Event)
	if event.Success {
		e = e.Str("status", "success")
	} else {
		e = e.Str("status", "failed")
	}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		e = e.Str("request_id", requestID)
	}
	if event.UserID != "" {
		e = e.Str("user_id", SanitizeUserID(event.UserID))
	}
	if event.Email != "" {
		e = e.Str("email", SanitizeEmail(event.Email))
	}
	if event.IPAddress != "" {
		e = e.Str("ip", StripControl(event.IPAddress))
	}
	if event.Reason != "" && !event.Success {
		e = e.Str("reason", truncateString(StripControl(event.Reason), 200))
	}

	e.Msg("")
}

// SanitizeUserID keeps the first and last four characters of an identifier.
// Example: "65f1a2b3c4d5e6f7a8b9c0d1" -> "65f1...c0d1"
func SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}
	if len(userID) <= 8 {
		return "***"
	}
	return userID[:4] + "..." + userID[len(userID)-4:]
}

// SanitizeEmail masks an email address, keeping two characters of the local part.
// Example: "amina@example.ma" -> "am***@example.ma"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "***"
	}

	localPart := email[:atIndex]
	domain := StripControl(email[atIndex:])
	if len(localPart) <= 2 {
		return "***" + domain
	}
	return localPart[:2] + "***" + domain
}

// StripControl removes CR, LF and other control characters so request-derived
// values cannot forge log lines in console output.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
