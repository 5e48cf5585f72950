// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

/*
Package supervisor runs the long-lived services of Streamscout under a
suture v4 supervisor tree.

# Overview

	RootSupervisor ("streamscout")
	├── DataSupervisor ("data-layer")
	│   └── CatalogService
	├── MessagingSupervisor ("messaging-layer")
	│   └── ReloadListenerService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer restarts independently with exponential backoff. A catalog source
outage therefore never takes the HTTP server down: handlers keep reading the
last published index while the data layer retries.

Supervisor events (service started, failed, restarted, backoff) are logged
through the sutureslog hook, backed by the zerolog slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(catalogSvc)
	tree.AddMessagingService(listenerSvc)
	tree.AddAPIService(httpSvc)

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
	    // log the services that missed the shutdown timeout
	}

See the services subpackage for the service wrappers.
*/
package supervisor
