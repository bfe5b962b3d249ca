// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/foodiug/internal/auth"
	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
	"github.com/tomtom215/foodiug/internal/restaurant"
	"github.com/tomtom215/foodiug/internal/store"
	"github.com/tomtom215/foodiug/internal/store/badgerstore"
)

const testSecret = "test_secret_with_at_least_32_characters_for_testing"

// countingStore forwards to a real store and counts every call.
type countingStore struct {
	store.Store
	calls atomic.Int32
	fail  error
}

func (s *countingStore) hit() error {
	s.calls.Add(1)
	return s.fail
}

func (s *countingStore) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.hit(); err != nil {
		return err
	}
	return s.Store.CreateUser(ctx, u)
}

func (s *countingStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return s.Store.FindUserByEmail(ctx, email)
}

func (s *countingStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return s.Store.FindUserByID(ctx, id)
}

func (s *countingStore) Find(ctx context.Context, c city.City, f query.Filter) ([]models.Restaurant, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return s.Store.Find(ctx, c, f)
}

func (s *countingStore) FindByID(ctx context.Context, c city.City, id string) (models.Restaurant, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return s.Store.FindByID(ctx, c, id)
}

func (s *countingStore) Sample(ctx context.Context, c city.City, f query.Filter, n int) ([]models.Restaurant, error) {
	if err := s.hit(); err != nil {
		return nil, err
	}
	return s.Store.Sample(ctx, c, f, n)
}

func (s *countingStore) Ping(ctx context.Context) error {
	if err := s.hit(); err != nil {
		return err
	}
	return s.Store.Ping(ctx)
}

// testEnv is a router over an in-memory Badger store.
type testEnv struct {
	store   *countingStore
	issuer  *auth.TokenIssuer
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := badgerstore.Open(config.BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	st := &countingStore{Store: db}
	issuer, err := auth.NewTokenIssuer(testSecret)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	h := NewHandler(
		auth.NewCredentialService(st, auth.NewPasswordHasher(bcrypt.MinCost)),
		issuer,
		restaurant.NewService(st),
		st,
	)
	router := NewRouter(h, auth.NewMiddleware(issuer), nil)

	return &testEnv{store: st, issuer: issuer, handler: router.SetupChi()}
}

// seed inserts docs into c, bypassing the call counter.
func (e *testEnv) seed(t *testing.T, c city.City, docs ...models.Restaurant) {
	t.Helper()
	if err := e.store.Store.InsertMany(context.Background(), c, docs); err != nil {
		t.Fatalf("InsertMany(%s): %v", c, err)
	}
}

func (e *testEnv) do(t *testing.T, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodGet, target, "", "")
}

// testEnvelope mirrors Envelope with decodable payload fields.
type testEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Ville   string              `json:"ville"`
	Count   *int                `json:"count"`
	Filters map[string]any      `json:"filters"`
	Token   string              `json:"token"`
	User    *models.UserSummary `json:"user"`
	Data    json.RawMessage     `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeRestaurants(t *testing.T, env testEnvelope) []models.Restaurant {
	t.Helper()
	var docs []models.Restaurant
	if err := json.Unmarshal(env.Data, &docs); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return docs
}

func restaurantFixture(title string, rating float64, extra map[string]any) models.Restaurant {
	doc := models.Restaurant{
		models.FieldTitle:  title,
		models.FieldRating: rating,
	}
	for k, v := range extra {
		doc[k] = v
	}
	return doc
}
