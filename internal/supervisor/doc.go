// Gustline - Content and Wind Telemetry API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gustline

/*
Package supervisor runs the long-lived parts of the process under a suture v4
supervisor tree.

	RootSupervisor ("gustline")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Database connection setup, index creation and seeding happen in main before
the tree starts, so the HTTP server never accepts a request against an
unseeded store. A crashed server is restarted with backoff; canceling the
root context shuts it down within TreeConfig.ShutdownTimeout.

Supervisor events are logged through sutureslog using the zerolog-backed
slog handler from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
