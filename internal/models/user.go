// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package models

import (
	"strings"
	"time"
)

// User is a registered account. PasswordHash is loaded only by credential
// lookups and never serialized.
type User struct {
	ID           string       `json:"_id"`
	Nom          string       `json:"nom"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Preferences is the optional taste profile attached to a user. Field names
// match the stored documents of both backends.
type Preferences struct {
	CuisinesPreferees []string           `json:"cuisinesPreferees,omitempty" bson:"cuisinesPreferees,omitempty"`
	NiveauPrixPrefere string             `json:"niveauPrixPrefere,omitempty" bson:"niveauPrixPrefere,omitempty"`
	RegimeAlimentaire *DietaryPreference `json:"regimeAlimentaire,omitempty" bson:"regimeAlimentaire,omitempty"`
}

// DietaryPreference flags; nil means the user never answered.
type DietaryPreference struct {
	Vegetarien *bool `json:"vegetarien,omitempty" bson:"vegetarien,omitempty"`
	Halal      *bool `json:"halal,omitempty" bson:"halal,omitempty"`
}

// UserSummary is the public identity returned next to a fresh token.
type UserSummary struct {
	ID    string `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

// Summary returns the public identity of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Nom: u.Nom, Email: u.Email}
}

// Public returns a copy of u with the password hash cleared.
func (u *User) Public() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}

// NormalizeEmail lowercases and trims an address; uniqueness is checked on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
