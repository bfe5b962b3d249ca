// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package store

import (
	"context"
	"sync/atomic"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
)

// fakeStore returns err from every call and counts invocations.
type fakeStore struct {
	err      error
	calls    atomic.Int32
	deadline atomic.Bool
}

func (f *fakeStore) hit(ctx context.Context) error {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); ok {
		f.deadline.Store(true)
	}
	return f.err
}

func (f *fakeStore) CreateUser(ctx context.Context, _ *models.User) error { return f.hit(ctx) }
func (f *fakeStore) FindUserByEmail(ctx context.Context, _ string) (*models.User, error) {
	return &models.User{ID: "u"}, f.hit(ctx)
}
func (f *fakeStore) FindUserByID(ctx context.Context, _ string) (*models.User, error) {
	return &models.User{ID: "u"}, f.hit(ctx)
}
func (f *fakeStore) Find(ctx context.Context, _ city.City, _ query.Filter) ([]models.Restaurant, error) {
	return []models.Restaurant{{"_id": "r"}}, f.hit(ctx)
}
func (f *fakeStore) FindByID(ctx context.Context, _ city.City, _ string) (models.Restaurant, error) {
	return models.Restaurant{"_id": "r"}, f.hit(ctx)
}
func (f *fakeStore) Sample(ctx context.Context, _ city.City, _ query.Filter, _ int) ([]models.Restaurant, error) {
	return nil, f.hit(ctx)
}
func (f *fakeStore) Count(ctx context.Context, _ city.City) (int64, error) { return 3, f.hit(ctx) }
func (f *fakeStore) InsertMany(ctx context.Context, _ city.City, _ []models.Restaurant) error {
	return f.hit(ctx)
}
func (f *fakeStore) Ping(ctx context.Context) error  { return f.hit(ctx) }
func (f *fakeStore) Close(_ context.Context) error   { return nil }
