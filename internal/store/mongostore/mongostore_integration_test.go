// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

//go:build integration

package mongostore

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
	"github.com/tomtom215/foodiug/internal/store"
	"github.com/tomtom215/foodiug/internal/testinfra"
)

func newIntegrationStore(t *testing.T) *Store {
	t.Helper()
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	mongo, err := testinfra.NewMongoContainer(ctx)
	if err != nil {
		t.Fatalf("start mongo: %v", err)
	}
	t.Cleanup(func() { testinfra.CleanupContainer(t, context.Background(), mongo) })

	s, err := Open(ctx, config.MongoConfig{
		URI:            mongo.URI,
		Database:       "foodiug_test",
		ConnectTimeout: 30 * time.Second,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestIntegration_Users(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()

	u := &models.User{Nom: "Amina", Email: "amina@example.ma", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	err := s.CreateUser(ctx, &models.User{Nom: "Other", Email: "amina@example.ma"})
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	withHash, err := s.FindUserByEmail(ctx, "amina@example.ma")
	if err != nil || withHash.PasswordHash != "hash" {
		t.Fatalf("FindUserByEmail = %+v, %v", withHash, err)
	}
	profile, err := s.FindUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindUserByID: %v", err)
	}
	if profile.PasswordHash != "" {
		t.Error("profile lookup returned the hash")
	}
	if _, err := s.FindUserByID(ctx, "bad"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("malformed id: %v", err)
	}
}

func TestIntegration_ConcurrentSignup(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.CreateUser(ctx, &models.User{Nom: "X", Email: "race@example.ma"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if created != 1 {
		t.Errorf("created %d users, want 1", created)
	}
}

func TestIntegration_Restaurants(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()

	id := store.NewID()
	docs := []models.Restaurant{
		{"_id": id, "title": "Dar Naji", "halal": "Oui", "rating": 4.6, "priceLevel": []any{"$$"}, "menu": map[string]any{"plat": "tajine"}},
		{"title": "Le Dhow", "halal": "Non", "rating": 4.1, "priceLevel": []any{"$$$"}},
		{"title": "Snack", "halal": "Oui", "rating": 3.2, "priceLevel": []any{"$"}},
	}
	if err := s.InsertMany(ctx, city.Rabat, docs); err != nil {
		t.Fatalf("InsertMany: %v", err)
	}

	all, err := s.Find(ctx, city.Rabat, query.Filter{})
	if err != nil || len(all) != 3 {
		t.Fatalf("Find all = %d, %v", len(all), err)
	}

	halal, err := s.Find(ctx, city.Rabat, query.Parse(url.Values{"halal": {"Oui"}, "rating": {"4"}}))
	if err != nil || len(halal) != 1 || halal[0]["title"] != "Dar Naji" {
		t.Errorf("halal+rating = %v, %v", halal, err)
	}

	literal, err := s.Find(ctx, city.Rabat, query.Parse(url.Values{"priceLevel": {"$$"}}))
	if err != nil || len(literal) != 2 {
		t.Errorf("priceLevel=$$ matched %d, want 2 (%v)", len(literal), err)
	}

	got, err := s.FindByID(ctx, city.Rabat, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if menu, ok := got["menu"].(map[string]any); !ok || menu["plat"] != "tajine" {
		t.Errorf("menu = %#v", got["menu"])
	}
	if _, err := s.FindByID(ctx, city.Tanger, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("other city: %v", err)
	}

	sample, err := s.Sample(ctx, city.Rabat, query.RatingAtLeast(4), 4)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(sample) != 2 {
		t.Errorf("sample size = %d, want 2", len(sample))
	}

	n, err := s.Count(ctx, city.Tanger)
	if err != nil || n != 0 {
		t.Errorf("Count(Tanger) = %d, %v", n, err)
	}
}
