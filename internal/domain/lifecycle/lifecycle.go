// Package lifecycle provides shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout is the default timeout for lifecycle operations (startup, shutdown).
const DefaultTimeout = 10 * time.Second
