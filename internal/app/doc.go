// Package app provides application initialization and lifecycle management
// for the GrowDash server. It wires configuration, logging, observability,
// the dataset store, the websocket hub and all HTTP handlers together at
// startup, and handles graceful shutdown.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize logging and OpenTelemetry
//	3. Create the dataset loader and cached store
//	4. Wire services (dashboard, export, health) and the websocket hub
//	5. Set up HTTP routes and middleware
//	6. Configure and start the HTTP server
//
// # Usage
//
//	application, err := app.NewApplication(frontendFS)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := application.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Graceful Shutdown
//
// The package handles SIGINT and SIGTERM so that active requests complete,
// WebSocket connections close cleanly and metric providers flush before
// the process exits. Initialization errors are returned to the caller;
// the package never calls os.Exit() itself.
package app
