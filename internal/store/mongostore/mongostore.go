// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

// Package mongostore is the MongoDB store.Store backend.
//
// Each city is its own collection, named after the city ("Rabat", "Tanger").
// Accounts live in "users" with a unique index on email.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tomtom215/foodiug/internal/city"
	"github.com/tomtom215/foodiug/internal/config"
	"github.com/tomtom215/foodiug/internal/logging"
	"github.com/tomtom215/foodiug/internal/models"
	"github.com/tomtom215/foodiug/internal/query"
	"github.com/tomtom215/foodiug/internal/store"
)

const usersCollection = "users"

// Store implements store.Store over a MongoDB database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// userDoc is the persisted form of a user.
type userDoc struct {
	ID           bson.ObjectID       `bson:"_id"`
	Nom          string              `bson:"nom"`
	Email        string              `bson:"email"`
	PasswordHash string              `bson:"password,omitempty"`
	Preferences  *models.Preferences `bson:"preferences,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt"`
}

func (d *userDoc) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Nom:          d.Nom,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Preferences:  d.Preferences,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Open connects, verifies the server answers within cfg.ConnectTimeout and
// ensures the users index exists.
func Open(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	s := New(client, cfg.Database)
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logging.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
	return s, nil
}

// New wraps a connected client.
func New(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

// EnsureIndexes creates the unique email index. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (s *Store) partition(c city.City) *mongo.Collection {
	return s.db.Collection(c.String())
}

// CreateUser inserts u. The unique index turns a concurrent duplicate into
// store.ErrDuplicateEmail.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	oid := bson.NewObjectID()
	if u.ID != "" {
		parsed, err := bson.ObjectIDFromHex(u.ID)
		if err != nil {
			return fmt.Errorf("user id %q: %w", u.ID, err)
		}
		oid = parsed
	}

	doc := userDoc{
		ID:           oid,
		Nom:          u.Nom,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Preferences:  u.Preferences,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if _, err := s.db.Collection(usersCollection).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = oid.Hex()
	return nil
}

// FindUserByEmail returns the user including the password hash.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toModel(), nil
}

// FindUserByID returns the user; the hash is excluded by projection.
func (s *Store) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var doc userDoc
	opts := options.FindOne().SetProjection(bson.D{{Key: "password", Value: 0}})
	err = s.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return doc.toModel(), nil
}

// Find runs the rendered filter against the city collection in natural order.
func (s *Store) Find(ctx context.Context, c city.City, f query.Filter) ([]models.Restaurant, error) {
	cursor, err := s.partition(c).Find(ctx, FilterDocument(f))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c, err)
	}
	return decodeAll(ctx, cursor)
}

// FindByID returns one document; malformed ids are not found.
func (s *Store) FindByID(ctx context.Context, c city.City, id string) (models.Restaurant, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}

	var m bson.M
	err = s.partition(c).FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s/%s: %w", c, id, err)
	}
	return toRestaurant(m), nil
}

// Sample matches f then lets the server pick n documents with $sample.
func (s *Store) Sample(ctx context.Context, c city.City, f query.Filter, n int) ([]models.Restaurant, error) {
	if n <= 0 {
		return []models.Restaurant{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: FilterDocument(f)}},
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	}
	cursor, err := s.partition(c).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", c, err)
	}
	return decodeAll(ctx, cursor)
}

// Count returns the number of documents in the city collection.
func (s *Store) Count(ctx context.Context, c city.City) (int64, error) {
	n, err := s.partition(c).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c, err)
	}
	return n, nil
}

// InsertMany inserts docs into the city collection.
func (s *Store) InsertMany(ctx context.Context, c city.City, docs []models.Restaurant) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]any, len(docs))
	for i, d := range docs {
		batch[i] = fromRestaurant(d)
	}
	if _, err := s.partition(c).InsertMany(ctx, batch); err != nil {
		return fmt.Errorf("insert %s: %w", c, err)
	}
	return nil
}

// Ping checks the primary.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]models.Restaurant, error) {
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	docs := make([]models.Restaurant, len(raw))
	for i, m := range raw {
		docs[i] = toRestaurant(m)
	}
	return docs, nil
}

var _ store.Store = (*Store)(nil)
