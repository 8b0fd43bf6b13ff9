package server

import "context"

// Server defines the lifecycle contract of the reference table server.
type Server interface {
	// RunServer serves until a stop signal arrives.
	RunServer()

	// Run serves until ctx is done or the listener fails. A clean
	// shutdown returns nil.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
