// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the validation server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or the listener fails. A graceful
	// shutdown after ctx is done returns nil.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests,
	// at most for the configured shutdown timeout.
	Shutdown()
}
