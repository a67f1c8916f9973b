// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs the long-lived parts of the ReelMatch server under a
suture v4 supervisor tree.

Tree layout:

	reelmatch (root)
	├── maintenance-layer
	│   └── cache-janitor
	└── api-layer
	    └── http-server

Each layer is its own supervisor, so a crash-looping maintenance service
enters backoff without touching the HTTP server. Supervisor events (service
panics, restarts, backoff) are logged through sutureslog into the zerolog
logger via logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(httpSvc)
	tree.AddMaintenanceService(janitor)
	err = tree.Serve(ctx) // blocks until ctx is cancelled

After Serve returns, UnstoppedServiceReport lists services that ignored the
shutdown deadline.
*/
package supervisor
