package server

import "context"

// Server defines the lifecycle contract of the listener managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully. It returns a non-nil error
	// only when the listener could not be started or stopped cleanly.
	RunServer(ctx context.Context) error
}
