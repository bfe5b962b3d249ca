// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestTest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get(t, "/api/test")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success || body.Message != MsgAPIRunning {
		t.Errorf("envelope = %+v", body)
	}
	if !strings.Contains(rec.Body.String(), `"timestamp":`) {
		t.Errorf("body = %s, want a timestamp", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		fail       error
		wantStatus int
		wantStore  string
	}{
		{"store up", nil, http.StatusOK, storeUp},
		{"store down", errors.New("no reachable servers"), http.StatusServiceUnavailable, storeDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.store.fail = tt.fail

			rec := env.get(t, "/api/health")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeEnvelope(t, rec)
			var status HealthStatus
			if err := json.Unmarshal(body.Data, &status); err != nil {
				t.Fatal(err)
			}
			if status.Store != tt.wantStore {
				t.Errorf("store = %q, want %q", status.Store, tt.wantStore)
			}
			if body.Success != (tt.fail == nil) {
				t.Errorf("success = %v", body.Success)
			}
		})
	}
}
