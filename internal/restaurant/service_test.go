// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package restaurant

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
	"github.com/tomtom215/foodiug/internal/store"
	"github.com/tomtom215/foodiug/internal/store/badgerstore"
)

func newTestService(t *testing.T) (*Service, *badgerstore.Store) {
	t.Helper()
	s, err := badgerstore.Open(config.BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	ctx := context.Background()
	rabat := []models.Restaurant{
		{"_id": store.NewID(), "title": "Dar Naji", "rating": 4.5, "halal": "Oui"},
		{"_id": store.NewID(), "title": "Le Dhow", "rating": 4.0, "halal": "Non"},
		{"_id": store.NewID(), "title": "Snack", "rating": 3.0, "halal": "Oui"},
		{"_id": store.NewID(), "title": "Pizza", "rating": 4.8, "halal": "Oui"},
		{"_id": store.NewID(), "title": "Sushi", "rating": 4.2},
		{"_id": store.NewID(), "title": "Tacos", "rating": 4.1},
	}
	tanger := []models.Restaurant{
		{"_id": store.NewID(), "title": "Café Hafa", "rating": 4.4},
	}
	if err := s.InsertMany(ctx, city.Rabat, rabat); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertMany(ctx, city.Tanger, tanger); err != nil {
		t.Fatal(err)
	}
	return NewService(s), s
}

func TestUnknownCity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	calls := map[string]func() error{
		"List":      func() error { _, err := svc.List(ctx, "Paris"); return err },
		"Get":       func() error { _, err := svc.Get(ctx, "rabat", store.NewID()); return err },
		"Search":    func() error { _, err := svc.Search(ctx, "Casablanca", query.Filter{}); return err },
		"Recommend": func() error { _, err := svc.Recommend(ctx, ""); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, city.ErrUnknownCity) {
				t.Errorf("error = %v, want ErrUnknownCity", err)
			}
		})
	}
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)
	docs, err := svc.List(context.Background(), "Rabat")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 6 {
		t.Errorf("len = %d, want 6", len(docs))
	}
	for _, d := range docs {
		if _, ok := d[models.FieldVille]; ok {
			t.Error("single-city list must not tag records")
		}
	}
}

func TestSearch_EmptyFilterReturnsAll(t *testing.T) {
	svc, _ := newTestService(t)
	all, _ := svc.List(context.Background(), "Rabat")
	found, err := svc.Search(context.Background(), "Rabat", query.Parse(url.Values{}))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != len(all) {
		t.Errorf("len = %d, want %d", len(found), len(all))
	}
}

func TestSearch_HalalAndRating(t *testing.T) {
	svc, _ := newTestService(t)
	found, err := svc.Search(context.Background(), "Rabat", query.Parse(url.Values{"halal": {"Oui"}, "rating": {"4"}}))
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("len = %d, want 2", len(found))
	}
	for _, d := range found {
		if d["halal"] != "Oui" || d["rating"].(float64) < 4 {
			t.Errorf("unexpected match %v", d)
		}
	}
}

func TestRecommend(t *testing.T) {
	svc, _ := newTestService(t)
	for i := 0; i < 25; i++ {
		docs, err := svc.Recommend(context.Background(), "Rabat")
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		if len(docs) > RecommendationSize {
			t.Fatalf("len = %d, want <= %d", len(docs), RecommendationSize)
		}
		for _, d := range docs {
			if d["rating"].(float64) < RecommendationMinRating {
				t.Errorf("recommended rating %v", d["rating"])
			}
		}
	}
}

func TestListAll(t *testing.T) {
	svc, _ := newTestService(t)
	docs, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(docs) != 7 {
		t.Fatalf("len = %d, want 7", len(docs))
	}

	seen := map[string]string{}
	lastIndex := -1
	order := map[string]int{"Rabat": 0, "Tanger": 1}
	for _, d := range docs {
		ville, _ := d[models.FieldVille].(string)
		if prev, dup := seen[d.ID()]; dup {
			t.Errorf("%s listed under %s and %s", d.ID(), prev, ville)
		}
		seen[d.ID()] = ville
		if order[ville] < lastIndex {
			t.Errorf("city order broken at %s", ville)
		}
		lastIndex = order[ville]
	}
	if docs[len(docs)-1][models.FieldVille] != "Tanger" {
		t.Error("Tanger records should come last")
	}
}

func TestListAll_DoesNotMutateStore(t *testing.T) {
	svc, st := newTestService(t)
	if _, err := svc.ListAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	docs, _ := st.Find(context.Background(), city.Tanger, query.Filter{})
	if _, ok := docs[0][models.FieldVille]; ok {
		t.Error("stored record gained a ville field")
	}
}

func TestGet(t *testing.T) {
	svc, st := newTestService(t)
	docs, _ := st.Find(context.Background(), city.Tanger, query.Filter{})
	id := docs[0].ID()

	got, err := svc.Get(context.Background(), "Tanger", id)
	if err != nil || got["title"] != "Café Hafa" {
		t.Errorf("Get = %v, %v", got, err)
	}
	if _, err := svc.Get(context.Background(), "Tanger", "bad-id"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("malformed id: %v", err)
	}
}

func TestCities(t *testing.T) {
	svc, _ := newTestService(t)
	got := svc.Cities()
	if len(got) != 2 || got[0] != "Rabat" || got[1] != "Tanger" {
		t.Errorf("Cities() = %v", got)
	}
}
