// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package store

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/metrics"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
)

const usersPartition = "users"

// Instrumented bounds every call with a timeout and records its duration.
type Instrumented struct {
	next    Store
	timeout time.Duration
}

// Instrument wraps next. A zero timeout leaves deadlines to the caller.
func Instrument(next Store, timeout time.Duration) *Instrumented {
	return &Instrumented{next: next, timeout: timeout}
}

func (s *Instrumented) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// observe records a call. Expected outcomes are not counted as errors.
func observe(op, partition string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateEmail) {
		err = nil
	}
	metrics.RecordStoreOperation(op, partition, time.Since(start), err)
}

func (s *Instrumented) CreateUser(ctx context.Context, u *models.User) (err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("create_user", usersPartition, start, err) }(time.Now())
	return s.next.CreateUser(ctx, u)
}

func (s *Instrumented) FindUserByEmail(ctx context.Context, email string) (u *models.User, err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("find_user_by_email", usersPartition, start, err) }(time.Now())
	return s.next.FindUserByEmail(ctx, email)
}

func (s *Instrumented) FindUserByID(ctx context.Context, id string) (u *models.User, err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("find_user_by_id", usersPartition, start, err) }(time.Now())
	return s.next.FindUserByID(ctx, id)
}

func (s *Instrumented) Find(ctx context.Context, c city.City, f query.Filter) (docs []models.Restaurant, err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("find", c.String(), start, err) }(time.Now())
	return s.next.Find(ctx, c, f)
}

func (s *Instrumented) FindByID(ctx context.Context, c city.City, id string) (doc models.Restaurant, err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("find_by_id", c.String(), start, err) }(time.Now())
	return s.next.FindByID(ctx, c, id)
}

func (s *Instrumented) Sample(ctx context.Context, c city.City, f query.Filter, n int) (docs []models.Restaurant, err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("sample", c.String(), start, err) }(time.Now())
	return s.next.Sample(ctx, c, f, n)
}

func (s *Instrumented) Count(ctx context.Context, c city.City) (n int64, err error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	defer func(start time.Time) { observe("count", c.String(), start, err) }(time.Now())
	return s.next.Count(ctx, c)
}

// InsertMany is not bounded by the operation timeout; seeding a large
// dataset may legitimately take longer than a request.
func (s *Instrumented) InsertMany(ctx context.Context, c city.City, docs []models.Restaurant) (err error) {
	defer func(start time.Time) { observe("insert_many", c.String(), start, err) }(time.Now())
	return s.next.InsertMany(ctx, c, docs)
}

func (s *Instrumented) Ping(ctx context.Context) (err error) {
	defer func(start time.Time) { observe("ping", "", start, err) }(time.Now())
	return s.next.Ping(ctx)
}

func (s *Instrumented) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}
