package server

import "context"

// Server defines the lifecycle contract of the console server.
//
// RunServer blocks until shutdown is requested by SIGINT, SIGTERM or
// SIGQUIT, or until ctx is done.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
