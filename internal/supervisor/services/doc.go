// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for ReelMatch components.

Each wrapper implements suture's context-aware lifecycle:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so supervisor events name the service.

Available services:

  - HTTPServerService: runs an *http.Server and drains it with Shutdown
    when the context is cancelled. Startup failures such as a port in use
    are returned so the supervisor can back off and retry.
  - CacheJanitorService: sweeps expired entries out of the engine's query
    result cache on a fixed interval.

Example:

	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout, logger))
	tree.AddMaintenanceService(services.NewCacheJanitorService(engine, cfg.Recommend.CacheTTL, logger))
*/
package services
