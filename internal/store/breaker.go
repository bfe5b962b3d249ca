// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package store

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/metrics"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
)

// Breaker names, used as the "name" metrics label.
const (
	RestaurantBreakerName = "store-restaurants"
	UserBreakerName       = "store-users"
)

// newCircuitBreaker builds a breaker that opens once the failure ratio over
// at least MinRequests calls reaches FailureRatio. Lookups that find nothing,
// duplicate emails and caller cancellation are outcomes, not failures.
func newCircuitBreaker(name string, cfg config.BreakerConfig) *gobreaker.CircuitBreaker[any] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logging.Warn().Str("breaker", name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
				return true
			}
			return false
		},

		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrNotFound) ||
				errors.Is(err, ErrDuplicateEmail) ||
				errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), int(to))
		},
	})
}

// execute runs fn through cb and restores the concrete result type.
func execute[T any](cb *gobreaker.CircuitBreaker[any], fn func() (T, error)) (T, error) {
	var zero T
	result, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordBreakerRejection(cb.Name())
		}
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, nil
	}
	return typed, nil
}

// BreakerRestaurantStore guards a RestaurantStore with a circuit breaker.
type BreakerRestaurantStore struct {
	next RestaurantStore
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreakerRestaurantStore wraps next.
func NewBreakerRestaurantStore(next RestaurantStore, cfg config.BreakerConfig) *BreakerRestaurantStore {
	return &BreakerRestaurantStore{next: next, cb: newCircuitBreaker(RestaurantBreakerName, cfg)}
}

// State reports the breaker state.
func (b *BreakerRestaurantStore) State() gobreaker.State { return b.cb.State() }

func (b *BreakerRestaurantStore) Find(ctx context.Context, c city.City, f query.Filter) ([]models.Restaurant, error) {
	return execute(b.cb, func() ([]models.Restaurant, error) { return b.next.Find(ctx, c, f) })
}

func (b *BreakerRestaurantStore) FindByID(ctx context.Context, c city.City, id string) (models.Restaurant, error) {
	return execute(b.cb, func() (models.Restaurant, error) { return b.next.FindByID(ctx, c, id) })
}

func (b *BreakerRestaurantStore) Sample(ctx context.Context, c city.City, f query.Filter, n int) ([]models.Restaurant, error) {
	return execute(b.cb, func() ([]models.Restaurant, error) { return b.next.Sample(ctx, c, f, n) })
}

func (b *BreakerRestaurantStore) Count(ctx context.Context, c city.City) (int64, error) {
	return execute(b.cb, func() (int64, error) { return b.next.Count(ctx, c) })
}

func (b *BreakerRestaurantStore) InsertMany(ctx context.Context, c city.City, docs []models.Restaurant) error {
	_, err := execute(b.cb, func() (struct{}, error) { return struct{}{}, b.next.InsertMany(ctx, c, docs) })
	return err
}

// BreakerUserStore guards a UserStore with a circuit breaker.
type BreakerUserStore struct {
	next UserStore
	cb   *gobreaker.CircuitBreaker[any]
}

// NewBreakerUserStore wraps next.
func NewBreakerUserStore(next UserStore, cfg config.BreakerConfig) *BreakerUserStore {
	return &BreakerUserStore{next: next, cb: newCircuitBreaker(UserBreakerName, cfg)}
}

// State reports the breaker state.
func (b *BreakerUserStore) State() gobreaker.State { return b.cb.State() }

func (b *BreakerUserStore) CreateUser(ctx context.Context, u *models.User) error {
	_, err := execute(b.cb, func() (struct{}, error) { return struct{}{}, b.next.CreateUser(ctx, u) })
	return err
}

func (b *BreakerUserStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return execute(b.cb, func() (*models.User, error) { return b.next.FindUserByEmail(ctx, email) })
}

func (b *BreakerUserStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return execute(b.cb, func() (*models.User, error) { return b.next.FindUserByID(ctx, id) })
}

// guarded joins the two breaker-wrapped repositories back into a Store.
// Ping and Close bypass the breakers so health checks see the real backend.
type guarded struct {
	*BreakerUserStore
	*BreakerRestaurantStore
	base Store
}

func (g *guarded) Ping(ctx context.Context) error  { return g.base.Ping(ctx) }
func (g *guarded) Close(ctx context.Context) error { return g.base.Close(ctx) }

// WithBreakers wraps s when cfg.Enabled is set and returns s unchanged otherwise.
func WithBreakers(s Store, cfg config.BreakerConfig) Store {
	if !cfg.Enabled {
		return s
	}
	return &guarded{
		BreakerUserStore:       NewBreakerUserStore(s, cfg),
		BreakerRestaurantStore: NewBreakerRestaurantStore(s, cfg),
		base:                   s,
	}
}
