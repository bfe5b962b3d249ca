// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package main is the entry point for the Foodiug server.

Foodiug serves a city-partitioned restaurant directory (Rabat, Tanger)
and a small account system issuing 30-day JWTs.

# Application Architecture

	RootSupervisor ("foodiug")
	├── StoreSupervisor ("store-layer")
	│   └── Store monitor (foodiug_store_up gauge)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router)

Startup order:

 1. Configuration: Koanf v2 (defaults, config file, environment)
 2. Logging: zerolog with JSON/console output
 3. Store: MongoDB (production) or Badger (embedded)
 4. Seed: optional import of <Ville>.json files into empty partitions
 5. Circuit breakers around user and restaurant calls
 6. Services: token issuer, credentials, restaurant directory
 7. Supervisor tree and HTTP server

Startup failures are fatal. The store is closed after the tree stops.

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	PORT=5000                    # HTTP server port
	NODE_ENV=production          # alias of ENVIRONMENT
	STORE_DRIVER=mongo           # mongo or badger
	MONGODB_URI=mongodb://...    # required for mongo
	BADGER_PATH=/data/foodiug    # badger data directory
	SEED_DIR=/seed               # optional dataset directory
	JWT_SECRET=<32+ chars>       # required
	CORS_ORIGINS=*               # comma separated
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests for up to
SHUTDOWN_TIMEOUT.

# Example Usage

Local run on the embedded store:

	export STORE_DRIVER=badger
	export BADGER_PATH=./data
	export SEED_DIR=./seed
	export JWT_SECRET=$(openssl rand -base64 32)
	export LOG_FORMAT=console
	./foodiug

Docker with MongoDB:

	docker run -d \
	  -e MONGODB_URI=mongodb://mongo:27017 \
	  -e JWT_SECRET=... \
	  -p 5000:5000 \
	  ghcr.io/tomtom215/foodiug
*/
package main
