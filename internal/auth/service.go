// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/foodiug/internal/metrics"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/store"
)

// ErrInvalidCredentials is returned by Verify for an unknown email and for a
// wrong password alike.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Auth event names, used as the "event" metrics label.
const (
	EventSignup = "signup"
	EventLogin  = "login"
	EventToken  = "token"
)

// CredentialService registers and verifies accounts.
type CredentialService struct {
	users  store.UserStore
	hasher *PasswordHasher
	now    func() time.Time

	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

// NewCredentialService creates a service over users.
func NewCredentialService(users store.UserStore, hasher *PasswordHasher) *CredentialService {
	return &CredentialService{users: users, hasher: hasher, now: time.Now}
}

// Register creates an account. The email is normalized before the
// uniqueness check; the store's own constraint catches concurrent signups.
func (s *CredentialService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = models.NormalizeEmail(email)

	_, err := s.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		metrics.RecordAuthEvent(EventSignup, "duplicate")
		return nil, store.ErrDuplicateEmail
	case !errors.Is(err, store.ErrNotFound):
		metrics.RecordAuthEvent(EventSignup, "error")
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		metrics.RecordAuthEvent(EventSignup, "error")
		return nil, err
	}

	now := s.now().UTC()
	u := &models.User{
		Nom:          name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			metrics.RecordAuthEvent(EventSignup, "duplicate")
			return nil, err
		}
		metrics.RecordAuthEvent(EventSignup, "error")
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RecordAuthEvent(EventSignup, "success")
	return u.Public(), nil
}

// Verify checks a password against the stored hash.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.FindUserByEmail(ctx, models.NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		s.hasher.Compare(s.dummy(), password)
		metrics.RecordAuthEvent(EventLogin, "invalid")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		metrics.RecordAuthEvent(EventLogin, "error")
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Compare(u.PasswordHash, password) {
		metrics.RecordAuthEvent(EventLogin, "invalid")
		return nil, ErrInvalidCredentials
	}

	metrics.RecordAuthEvent(EventLogin, "success")
	return u.Public(), nil
}

// Profile returns the account without its hash.
func (s *CredentialService) Profile(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Public(), nil
}

func (s *CredentialService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("foodiug-dummy-password")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
