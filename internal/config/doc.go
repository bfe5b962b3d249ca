// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package config provides centralized configuration management for Foodiug.

Configuration is loaded with Koanf v2 from three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/foodiug/config.yaml)
 3. Environment variables

# Configuration Structure

  - ServerConfig: listen address, timeouts, environment name
  - StoreConfig: backend selection (mongo or badger), per-operation timeout, seed directory
  - MongoConfig: connection URI and database name
  - BadgerConfig: on-disk path or in-memory mode
  - BreakerConfig: circuit breaker thresholds around the store
  - SecurityConfig: JWT signing secret, bcrypt cost, CORS origins
  - LoggingConfig: level, format, caller

# Environment Variables

Server:
  - PORT: Listen port (default: 5000)
  - HOST: Bind address (default: 0.0.0.0)
  - ENVIRONMENT or NODE_ENV: development, production (default: development)

Store:
  - STORE_DRIVER: mongo or badger (default: mongo)
  - MONGODB_URI: MongoDB connection string (required for mongo)
  - MONGODB_DATABASE: Database name (default: foodiug)
  - BADGER_PATH, BADGER_IN_MEMORY: Embedded store location
  - SEED_DIR: Directory of <Ville>.json datasets loaded into empty partitions

Security:
  - JWT_SECRET: Token signing secret, at least 32 characters (required)
  - BCRYPT_COST: Password hashing cost (default: 10)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Configuration error")
	}
*/
package config
