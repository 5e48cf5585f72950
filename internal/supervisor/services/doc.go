// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package services provides suture.Service wrappers for Streamscout components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve method and names itself through fmt.Stringer for supervisor events.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, shutting it down gracefully when the context ends
  - Returns listener failures so the supervisor restarts the server

Catalog (CatalogService):
  - Builds the catalog index when it starts
  - Rebuilds it every catalog.reload_interval (0 disables)
  - Logs failed reloads and keeps serving the published index

Reload Listener (ReloadListenerService):
  - Subscribes to catalog.reload events on the bus
  - Runs a reload for each request; throttled requests are dropped
  - Stops without restart once the bus is closed

# Usage

	tree.AddDataService(services.NewCatalogService(reloader, services.CatalogServiceConfig{
	    ReloadInterval: cfg.Catalog.ReloadInterval,
	}, logger))
	tree.AddMessagingService(services.NewReloadListenerService(bus, reloader, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
*/
package services
