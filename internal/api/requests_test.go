// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/foodiug/internal/validation"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SignupRequest
		wantField string
	}{
		{"valid", SignupRequest{Nom: "Amina", Email: "amina@example.ma", Password: "secret1"}, ""},
		{"trims before checking", SignupRequest{Nom: " Amina ", Email: " amina@example.ma ", Password: "secret1"}, ""},
		{"no name", SignupRequest{Email: "amina@example.ma", Password: "secret1"}, "nom"},
		{"no dot in domain", SignupRequest{Nom: "A", Email: "amina@example", Password: "secret1"}, "email"},
		{"space in email", SignupRequest{Nom: "A", Email: "ami na@example.ma", Password: "secret1"}, "email"},
		{"six characters", SignupRequest{Nom: "A", Email: "a@b.ma", Password: "123456"}, ""},
		{"five characters", SignupRequest{Nom: "A", Email: "a@b.ma", Password: "12345"}, "password"},
		{"beyond bcrypt limit", SignupRequest{Nom: "A", Email: "a@b.ma", Password: strings.Repeat("x", 73)}, "password"},
		{"multibyte within limit", SignupRequest{Nom: "A", Email: "a@b.ma", Password: strings.Repeat("é", 36)}, ""},
		{"multibyte beyond limit", SignupRequest{Nom: "A", Email: "a@b.ma", Password: strings.Repeat("é", 40)}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var verr *validation.RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *RequestValidationError", err)
			}
			if _, ok := verr.Fields()[tt.wantField]; !ok {
				t.Errorf("failing fields = %v, want %s", verr.Fields(), tt.wantField)
			}
		})
	}
}

func TestSignupRequest_ValidateTrims(t *testing.T) {
	req := SignupRequest{Nom: " Amina ", Email: " amina@example.ma ", Password: "secret1"}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Nom != "Amina" || req.Email != "amina@example.ma" {
		t.Errorf("req = %+v", req)
	}
}

func TestDecodeLogin(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantEmail   string
		wantErr     bool
	}{
		{"json", "application/json", `{"email":"a@b.ma","password":"x"}`, "a@b.ma", false},
		{"json with charset", "application/json; charset=utf-8", `{"email":"a@b.ma"}`, "a@b.ma", false},
		{"no content type", "", `{"email":"a@b.ma"}`, "a@b.ma", false},
		{"form", "application/x-www-form-urlencoded", "email=a%40b.ma&password=x", "a@b.ma", false},
		{"empty json", "application/json", "", "", false},
		{"bad json", "application/json", "{", "", true},
		{"xml", "application/xml", "<email/>", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			got, err := decodeLogin(httptest.NewRecorder(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeLogin() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got.Email != tt.wantEmail {
				t.Errorf("email = %q, want %q", got.Email, tt.wantEmail)
			}
		})
	}
}
