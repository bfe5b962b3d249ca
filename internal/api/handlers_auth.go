// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/foodiug/internal/auth"
	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/models"
)

// Signup godoc
// @Summary Create an account
// @Description Registers a user and returns a session token. Accepts JSON or form bodies.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body SignupRequest true "Account details"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope "Invalid body or email already used"
// @Failure 500 {object} Envelope
// @Router /api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSignup(w, r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if err := req.Validate(); err != nil {
		h.audit(r, auth.EventSignup, "", req.Email, false, err.Error())
		respondAuthError(w, r, err, MsgSignupFailed)
		return
	}

	user, err := h.credentials.Register(r.Context(), req.Nom, req.Email, req.Password)
	if err != nil {
		h.audit(r, auth.EventSignup, "", req.Email, false, err.Error())
		respondAuthError(w, r, err, MsgSignupFailed)
		return
	}

	h.issueSession(w, r, http.StatusCreated, MsgSignupSuccess, auth.EventSignup, user, MsgSignupFailed)
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and returns a session token.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope "Missing email or password"
// @Failure 401 {object} Envelope "Invalid credentials"
// @Failure 500 {object} Envelope
// @Router /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogin(w, r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if !req.Complete() {
		respondMessage(w, http.StatusBadRequest, MsgMissingCredentials)
		return
	}

	user, err := h.credentials.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		h.audit(r, auth.EventLogin, "", req.Email, false, err.Error())
		respondAuthError(w, r, err, MsgLoginFailed)
		return
	}

	h.issueSession(w, r, http.StatusOK, MsgLoginSuccess, auth.EventLogin, user, MsgLoginFailed)
}

// Me godoc
// @Summary Own profile
// @Description Returns the authenticated user without the password hash.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope{data=models.User}
// @Failure 401 {object} Envelope "Missing or invalid token"
// @Failure 404 {object} Envelope "User no longer exists"
// @Failure 500 {object} Envelope
// @Router /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.credentials.Profile(r.Context(), auth.UserIDFromContext(r.Context()))
	if err != nil {
		respondAuthError(w, r, err, MsgProfileFailed)
		return
	}
	respondJSON(w, http.StatusOK, &Envelope{Success: true, Data: user})
}

// issueSession signs a token for user and writes the session envelope.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, status int, message, event string, user *models.User, internal string) {
	if user == nil {
		respondInternal(w, r, internal, errors.New("no user returned"))
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		respondInternal(w, r, internal, fmt.Errorf("issue token: %w", err))
		return
	}

	h.audit(r, event, user.ID, user.Email, true, "")
	summary := user.Summary()
	respondJSON(w, status, &Envelope{
		Success: true,
		Message: message,
		Token:   token,
		User:    &summary,
	})
}

// audit writes an authentication event. RemoteAddr has already been
// rewritten by chimiddleware.RealIP.
func (h *Handler) audit(r *http.Request, event, userID, email string, success bool, reason string) {
	h.authLog.Log(r.Context(), logging.AuthEvent{
		Event:     event,
		UserID:    userID,
		Email:     email,
		IPAddress: r.RemoteAddr,
		Success:   success,
		Reason:    reason,
	})
}
