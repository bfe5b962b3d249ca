// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package restaurant serves city listings, search, recommendations and the
// all-cities aggregate on top of a store.RestaurantStore.
//
// City names arrive unresolved from the URL; every method resolves them
// first and fails with city.ErrUnknownCity before touching the store.
package restaurant

import (
	"context"
	"fmt"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
	"github.com/tomtom215/foodiug/internal/store"
)

const (
	// RecommendationSize is the maximum number of recommendations returned.
	RecommendationSize = 4

	// RecommendationMinRating is the lowest rating a recommendation may have.
	RecommendationMinRating = 4.0
)

// Service implements the restaurant read operations.
type Service struct {
	store store.RestaurantStore
}

// NewService creates a Service.
func NewService(s store.RestaurantStore) *Service {
	return &Service{store: s}
}

// Cities returns the supported city names in their fixed order.
func (s *Service) Cities() []string {
	return city.Names()
}

// List returns the full dataset of one city.
func (s *Service) List(ctx context.Context, ville string) ([]models.Restaurant, error) {
	c, err := city.Resolve(ville)
	if err != nil {
		return nil, err
	}
	return s.store.Find(ctx, c, query.Filter{})
}

// Get returns one restaurant. Malformed ids are reported as not found.
func (s *Service) Get(ctx context.Context, ville, id string) (models.Restaurant, error) {
	c, err := city.Resolve(ville)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, c, id)
}

// Search returns the restaurants of one city matching f.
func (s *Service) Search(ctx context.Context, ville string, f query.Filter) ([]models.Restaurant, error) {
	c, err := city.Resolve(ville)
	if err != nil {
		return nil, err
	}
	return s.store.Find(ctx, c, f)
}

// Recommend draws up to RecommendationSize restaurants rated at least
// RecommendationMinRating, uniformly at random.
func (s *Service) Recommend(ctx context.Context, ville string) ([]models.Restaurant, error) {
	c, err := city.Resolve(ville)
	if err != nil {
		return nil, err
	}
	return s.store.Sample(ctx, c, query.RatingAtLeast(RecommendationMinRating), RecommendationSize)
}

// ListAll concatenates every city's dataset in city order, each record
// copied with a "ville" field naming its city.
func (s *Service) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	all := []models.Restaurant{}
	for _, c := range city.Supported() {
		docs, err := s.store.Find(ctx, c, query.Filter{})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", c, err)
		}
		for _, d := range docs {
			all = append(all, d.WithCity(c.String()))
		}
	}
	return all, nil
}
