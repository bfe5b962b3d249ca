// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

package config

import (
	"fmt"
	"time"
)

// Store drivers.
const (
	DriverMongo  = "mongo"
	DriverBadger = "badger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig selects and tunes the document store.
type StoreConfig struct {
	// Driver is "mongo" (production) or "badger" (embedded, local runs).
	Driver string `koanf:"driver"`

	// OperationTimeout bounds every store call. Zero disables the bound.
	OperationTimeout time.Duration `koanf:"operation_timeout"`

	// SeedDir holds <Ville>.json datasets imported into empty partitions at startup.
	SeedDir string `koanf:"seed_dir"`

	Mongo   MongoConfig   `koanf:"mongo"`
	Badger  BadgerConfig  `koanf:"badger"`
	Breaker BreakerConfig `koanf:"breaker"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// BadgerConfig holds embedded store settings.
type BadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// BreakerConfig holds circuit breaker thresholds for store calls.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`  // trial requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`      // closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`       // open-state duration before half-open
	FailureRatio float64       `koanf:"failure_ratio"` // trip when failures/requests reaches this
	MinRequests  uint32        `koanf:"min_requests"`  // requests needed before the ratio is considered
}

// SecurityConfig holds authentication settings.
type SecurityConfig struct {
	JWTSecret   string   `koanf:"jwt_secret"`
	BcryptCost  int      `koanf:"bcrypt_cost"`
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from defaults, an optional config file and environment variables.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
