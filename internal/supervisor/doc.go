// Foodiug - Restaurant Directory API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/foodiug

/*
Package supervisor runs the long-lived Foodiug services under suture v4.

# Tree

	RootSupervisor ("foodiug")
	├── StoreSupervisor ("store-layer")
	│   └── StoreMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own. A service that keeps failing is
restarted with backoff (FailureThreshold, FailureDecay, FailureBackoff)
without touching its siblings in the other layer.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddStoreService(services.NewStoreMonitorService(st, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events (start, stop, failure, backoff) are logged through the
sutureslog adapter, which main wires to zerolog.

See also:
  - internal/supervisor/services: suture.Service wrappers
*/
package supervisor
