// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package store defines the persistence contracts for users and restaurant
// datasets along with decorators shared by every backend.
//
// Backends live in subpackages:
//   - mongostore: MongoDB, one collection per city plus "users"
//   - badgerstore: embedded Badger key-value store for local runs and tests
//
// Decorators wrap any Store:
//   - Instrument: per-operation timeout and Prometheus timings
//   - WithBreakers: gobreaker circuit breakers in front of each repository
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
)

var (
	// ErrNotFound is returned when a lookup matches nothing, including
	// lookups by a malformed identifier.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateEmail is returned when a user with the same normalized
	// email already exists.
	ErrDuplicateEmail = errors.New("store: duplicate email")
)

// UserStore persists accounts.
type UserStore interface {
	// CreateUser inserts u, assigning u.ID when empty. The email must already
	// be normalized. A uniqueness conflict returns ErrDuplicateEmail.
	CreateUser(ctx context.Context, u *models.User) error

	// FindUserByEmail returns the user including its password hash.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindUserByID returns the user without its password hash.
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// RestaurantStore reads city-partitioned restaurant datasets. The partition
// is always an already resolved city.City.
type RestaurantStore interface {
	// Find returns every document in the partition matching f, in store order.
	Find(ctx context.Context, c city.City, f query.Filter) ([]models.Restaurant, error)

	// FindByID returns one document or ErrNotFound.
	FindByID(ctx context.Context, c city.City, id string) (models.Restaurant, error)

	// Sample returns up to n documents matching f, drawn uniformly at random
	// without replacement.
	Sample(ctx context.Context, c city.City, f query.Filter, n int) ([]models.Restaurant, error)

	// Count returns the partition size.
	Count(ctx context.Context, c city.City) (int64, error)

	// InsertMany adds documents to the partition, assigning missing ids.
	InsertMany(ctx context.Context, c city.City, docs []models.Restaurant) error
}

// Store is a complete backend.
type Store interface {
	UserStore
	RestaurantStore

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend.
	Close(ctx context.Context) error
}

// NewID returns a fresh identifier in the 24-character hex form used by
// every backend.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// ValidID reports whether id has the identifier form NewID produces.
func ValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// EnsureID returns doc with an _id FindByID can resolve. A valid id is kept;
// a missing, non-string or malformed one is replaced by NewID on a copy, so
// doc itself is never modified.
func EnsureID(doc models.Restaurant) (models.Restaurant, string) {
	if id := doc.ID(); ValidID(id) {
		return doc, id
	}
	out := doc.Clone()
	id := NewID()
	out[models.FieldID] = id
	return out, id
}
