package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// Run serves requests until ctx is cancelled or a termination signal is
	// received, then shuts down gracefully. It returns nil after a clean
	// shutdown.
	Run(ctx context.Context) error
}
