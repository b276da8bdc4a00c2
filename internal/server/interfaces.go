package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// RunServer binds the listener and serves requests until ctx is
	// cancelled or a stop signal arrives, then shuts down gracefully.
	// It returns nil after a clean shutdown.
	RunServer(ctx context.Context) error
}
