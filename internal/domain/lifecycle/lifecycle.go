// Package lifecycle holds timeouts shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single start or stop hook.
	DefaultTimeout = 10 * time.Second
	// ShutdownTimeout bounds the graceful HTTP shutdown.
	ShutdownTimeout = 15 * time.Second
)
