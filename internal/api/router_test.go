// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/foodiug/internal/metrics"
	"github.com/tomtom215/foodiug/internal/middleware"
)

func TestRouter_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unknown path", http.MethodGet, "/api/nothing"},
		{"outside api", http.MethodGet, "/index.html"},
		{"too deep", http.MethodGet, "/api/restaurants/Rabat/a/b"},
		{"wrong method on signup", http.MethodGet, "/api/auth/signup"},
		{"wrong method on list", http.MethodDelete, "/api/restaurants/Rabat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, tt.method, tt.path, "", "")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			body := decodeEnvelope(t, rec)
			if body.Success || body.Message != MsgRouteNotFound {
				t.Errorf("envelope = %+v", body)
			}
		})
	}
}

func TestRouter_RequestID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/test")
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("response has no request id")
	}
}

func TestRouter_SecurityHeadersOnAPI(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/test", "/api/restaurants/villes", "/api/restaurants/Casablanca"} {
		rec := env.get(t, path)
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Errorf("%s: missing nosniff", path)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("%s: Content-Type = %q", path, ct)
		}
	}
}

func TestRouter_MetricsUseRoutePattern(t *testing.T) {
	env := newTestEnv(t)

	counter := metrics.APIRequestsTotal.WithLabelValues(http.MethodGet, "/api/restaurants/{ville}", "404")
	before := testutil.ToFloat64(counter)

	env.get(t, "/api/restaurants/Casablanca")
	env.get(t, "/api/restaurants/Marrakech")

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("requests counted under the route pattern = %v, want 2", got)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.get(t, "/api/test")

	rec := env.get(t, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "foodiug_api_requests_total") {
		t.Error("exposition lacks foodiug_api_requests_total")
	}
}

func TestRouter_SwaggerUI(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/swagger/index.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
