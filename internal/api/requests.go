// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/foodiug/internal/validation"
)

// maxBodyBytes bounds auth request bodies.
const maxBodyBytes = 1 << 20

var errUnsupportedBody = errors.New("unsupported content type")

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Nom      string `json:"nom" validate:"required"`
	Email    string `json:"email" validate:"required,basic_email"`
	Password string `json:"password" validate:"required,min=6,bcrypt_len"`
}

// signupMessages localizes the signup validation failures.
var signupMessages = validation.Messages{
	"nom.required":        "Le nom est requis",
	"email.required":      "L'email est requis",
	"email.basic_email":   "Email invalide",
	"password.required":   "Le mot de passe est requis",
	"password.min":        "Le mot de passe doit contenir au moins 6 caractères",
	"password.bcrypt_len": "Le mot de passe ne peut pas dépasser 72 caractères",
}

// Validate trims the name and email, then checks the struct rules.
func (req *SignupRequest) Validate() error {
	req.Nom = strings.TrimSpace(req.Nom)
	req.Email = strings.TrimSpace(req.Email)
	if verr := validation.ValidateStructWithMessages(req, signupMessages); verr != nil {
		return verr
	}
	return nil
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Complete reports whether both credentials were supplied.
func (req *LoginRequest) Complete() bool {
	return strings.TrimSpace(req.Email) != "" && req.Password != ""
}

// decodeBody fills dst from a JSON body, or hands the posted form values to
// form for url-encoded bodies. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, form func(get func(string) string)) error {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("content type: %w", err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
		return nil
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("parse form: %w", err)
		}
		form(r.PostForm.Get)
		return nil
	default:
		return errUnsupportedBody
	}
}

// decodeSignup reads a SignupRequest from r.
func decodeSignup(w http.ResponseWriter, r *http.Request) (*SignupRequest, error) {
	req := &SignupRequest{}
	err := decodeBody(w, r, req, func(get func(string) string) {
		req.Nom = get("nom")
		req.Email = get("email")
		req.Password = get("password")
	})
	return req, err
}

// decodeLogin reads a LoginRequest from r.
func decodeLogin(w http.ResponseWriter, r *http.Request) (*LoginRequest, error) {
	req := &LoginRequest{}
	err := decodeBody(w, r, req, func(get func(string) string) {
		req.Email = get("email")
		req.Password = get("password")
	})
	return req, err
}
