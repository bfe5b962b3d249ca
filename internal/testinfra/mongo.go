// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

//go:build integration

package testinfra

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// DefaultMongoImage is the MongoDB image used by integration tests.
const DefaultMongoImage = "mongo:7"

// MongoContainer is a running single-node MongoDB.
type MongoContainer struct {
	*mongodb.MongoDBContainer
	URI string
}

// MongoOption configures the MongoDB container.
type MongoOption func(*mongoConfig)

type mongoConfig struct {
	image      string
	replicaSet string
}

// WithMongoImage overrides DefaultMongoImage.
func WithMongoImage(image string) MongoOption {
	return func(c *mongoConfig) {
		c.image = image
	}
}

// WithReplicaSet starts the node as a one-member replica set.
func WithReplicaSet(name string) MongoOption {
	return func(c *mongoConfig) {
		c.replicaSet = name
	}
}

// NewMongoContainer starts MongoDB and resolves its connection string.
//
//	mongo, err := testinfra.NewMongoContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, mongo)
func NewMongoContainer(ctx context.Context, opts ...MongoOption) (*MongoContainer, error) {
	cfg := &mongoConfig{image: DefaultMongoImage}
	for _, opt := range opts {
		opt(cfg)
	}

	var customizers []testcontainers.ContainerCustomizer
	if cfg.replicaSet != "" {
		customizers = append(customizers, mongodb.WithReplicaSet(cfg.replicaSet))
	}

	container, err := mongodb.Run(ctx, cfg.image, customizers...)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoContainer{MongoDBContainer: container, URI: uri}, nil
}
