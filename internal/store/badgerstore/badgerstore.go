// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package badgerstore is the embedded store.Store backend built on BadgerDB.
//
// Key layout:
//
//	user:id:<id>                 JSON user record, hash included
//	user:email:<email>           <id>
//	restaurant:<Ville>:<id>      JSON restaurant document
//
// Email uniqueness relies on Badger's serializable transactions: a signup
// reads the email key before writing it, so two concurrent signups for the
// same address conflict and one of them fails with store.ErrDuplicateEmail.
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
	"github.com/tomtom215/foodiug/internal/store"
)

const (
	userIDPrefix     = "user:id:"
	userEmailPrefix  = "user:email:"
	restaurantPrefix = "restaurant:"
)

var errClosed = errors.New("badgerstore: database closed")

// Store implements store.Store over a Badger database.
type Store struct {
	db *badger.DB
}

// Open opens the database described by cfg. In-memory mode ignores Path.
func Open(cfg config.BadgerConfig) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(newLogger())

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// New wraps an already open database.
func New(db *badger.DB) *Store {
	return &Store{db: db}
}

// userRecord is the persisted form of a user; models.User hides the hash
// from JSON.
type userRecord struct {
	ID           string              `json:"_id"`
	Nom          string              `json:"nom"`
	Email        string              `json:"email"`
	PasswordHash string              `json:"password"`
	Preferences  *models.Preferences `json:"preferences,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func (r *userRecord) toModel(withHash bool) *models.User {
	u := &models.User{
		ID:          r.ID,
		Nom:         r.Nom,
		Email:       r.Email,
		Preferences: r.Preferences,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if withHash {
		u.PasswordHash = r.PasswordHash
	}
	return u
}

func restaurantKey(c city.City, id string) []byte {
	return []byte(restaurantPrefix + c.String() + ":" + id)
}

func partitionPrefix(c city.City) []byte {
	return []byte(restaurantPrefix + c.String() + ":")
}

// CreateUser inserts u. The email key is read inside the transaction so a
// concurrent signup for the same address surfaces as a commit conflict.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = store.NewID()
	}
	rec := userRecord{
		ID:           u.ID,
		Nom:          u.Nom,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Preferences:  u.Preferences,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(userEmailPrefix + u.Email)
		_, err := txn.Get(emailKey)
		switch {
		case err == nil:
			return store.ErrDuplicateEmail
		case !errors.Is(err, badger.ErrKeyNotFound):
			return fmt.Errorf("check email: %w", err)
		}

		if err := txn.Set(emailKey, []byte(u.ID)); err != nil {
			return fmt.Errorf("set email index: %w", err)
		}
		if err := txn.Set([]byte(userIDPrefix+u.ID), data); err != nil {
			return fmt.Errorf("set user: %w", err)
		}
		return nil
	})
	if errors.Is(err, badger.ErrConflict) {
		return store.ErrDuplicateEmail
	}
	return err
}

// FindUserByEmail returns the user including the password hash.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userEmailPrefix + email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get email index: %w", err)
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getUser(txn, string(id), &rec)
	})
	if err != nil {
		return nil, err
	}
	return rec.toModel(true), nil
}

// FindUserByID returns the user without the password hash.
func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !store.ValidID(id) {
		return nil, store.ErrNotFound
	}

	var rec userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getUser(txn, id, &rec)
	})
	if err != nil {
		return nil, err
	}
	return rec.toModel(false), nil
}

func getUser(txn *badger.Txn, id string, rec *userRecord) error {
	item, err := txn.Get([]byte(userIDPrefix + id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, rec)
	})
}

// Find scans the partition in key order and keeps documents matching f.
func (s *Store) Find(ctx context.Context, c city.City, f query.Filter) ([]models.Restaurant, error) {
	docs := []models.Restaurant{}
	err := s.scan(ctx, c, func(doc models.Restaurant) {
		if f.Match(doc) {
			docs = append(docs, doc)
		}
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// FindByID returns one document; malformed ids are not found.
func (s *Store) FindByID(ctx context.Context, c city.City, id string) (models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !store.ValidID(id) {
		return nil, store.ErrNotFound
	}

	var doc models.Restaurant
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(restaurantKey(c, id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get restaurant: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		})
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Sample draws up to n matching documents with a partial Fisher-Yates shuffle.
func (s *Store) Sample(ctx context.Context, c city.City, f query.Filter, n int) ([]models.Restaurant, error) {
	pool, err := s.Find(ctx, c, f)
	if err != nil {
		return nil, err
	}
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}
	for i := 0; i < n; i++ {
		j := i + rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}

// Count returns the number of documents in the partition.
func (s *Store) Count(ctx context.Context, c city.City) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := partitionPrefix(c)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// InsertMany writes docs in one batch. Documents whose _id is missing or not
// a 24-character hex id get a fresh one.
func (s *Store) InsertMany(ctx context.Context, c city.City, docs []models.Restaurant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, d := range docs {
		doc, id := store.EnsureID(d)
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal restaurant %s: %w", id, err)
		}
		if err := wb.Set(restaurantKey(c, id), data); err != nil {
			return fmt.Errorf("write restaurant %s: %w", id, err)
		}
	}
	return wb.Flush()
}

// Ping reports whether the database is still open.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errClosed
	}
	return nil
}

// Close closes the database.
func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}

func (s *Store) scan(ctx context.Context, c city.City, fn func(models.Restaurant)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := partitionPrefix(c)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var doc models.Restaurant
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			fn(doc)
		}
		return nil
	})
}

var _ store.Store = (*Store)(nil)
