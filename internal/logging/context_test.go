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

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := ContextWithRequestID(context.Background(), "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-123")
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request ID on bare context, got %q", got)
	}
}

func TestContextWithNewRequestID(t *testing.T) {
	t.Parallel()

	a := RequestIDFromContext(ContextWithNewRequestID(context.Background()))
	b := RequestIDFromContext(ContextWithNewRequestID(context.Background()))
	if a == "" || b == "" {
		t.Fatal("expected generated request IDs")
	}
	if a == b {
		t.Errorf("expected unique request IDs, got %q twice", a)
	}
	if len(a) != 36 {
		t.Errorf("expected UUID length 36, got %d", len(a))
	}
}

func TestCtx_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	ctx := ContextWithRequestID(context.Background(), "req-abc")
	ctx = ContextWithUserID(ctx, "user-42")
	Ctx(ctx).Info().Msg("handled")

	output := buf.String()
	if !strings.Contains(output, `"request_id":"req-abc"`) {
		t.Errorf("missing request_id in %s", output)
	}
	if !strings.Contains(output, `"user_id":"user-42"`) {
		t.Errorf("missing user_id in %s", output)
	}
}

func TestCtx_NoFieldsOnBareContext(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { Init(DefaultConfig()) })

	Ctx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id in %s", buf.String())
	}
}
