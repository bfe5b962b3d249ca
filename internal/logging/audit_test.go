// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestAuthLogger_MasksIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewAuthLoggerWithLogger(NewTestLogger(&buf))

	logger.Log(context.Background(), AuthEvent{
		Event:   "login",
		UserID:  "65f1a2b3c4d5e6f7a8b9c0d1",
		Email:   "amina@example.ma",
		Success: true,
	})

	output := buf.String()
	if strings.Contains(output, "amina@example.ma") {
		t.Errorf("raw email leaked: %s", output)
	}
	if !strings.Contains(output, `"email":"am***@example.ma"`) {
		t.Errorf("expected masked email in %s", output)
	}
	if !strings.Contains(output, `"user_id":"65f1...c0d1"`) {
		t.Errorf("expected masked user id in %s", output)
	}
	if !strings.Contains(output, `"status":"success"`) {
		t.Errorf("expected success status in %s", output)
	}
}

func TestAuthLogger_FailureCarriesReason(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewAuthLoggerWithLogger(NewTestLogger(&buf))

	logger.Log(context.Background(), AuthEvent{
		Event:  "login",
		Email:  "x@y.z",
		Reason: "invalid\r\ncredentials",
	})

	output := buf.String()
	if !strings.Contains(output, `"level":"warn"`) {
		t.Errorf("expected warn level for failure: %s", output)
	}
	if !strings.Contains(output, `"reason":"invalidcredentials"`) {
		t.Errorf("expected control characters stripped from reason: %s", output)
	}
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"normal", "youssef@foodiug.ma", "yo***@foodiug.ma"},
		{"short local part", "ab@x.io", "***@x.io"},
		{"no at sign", "nobody", "***"},
		{"leading at", "@x.io", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeEmail(tt.input); got != tt.want {
				t.Errorf("SanitizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeUserID(t *testing.T) {
	t.Parallel()

	if got := SanitizeUserID("short"); got != "***" {
		t.Errorf("SanitizeUserID(short) = %q, want ***", got)
	}
	if got := SanitizeUserID(""); got != "" {
		t.Errorf("SanitizeUserID(\"\") = %q, want empty", got)
	}
}
