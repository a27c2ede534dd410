// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds database pings on start and graceful server shutdown.
const DefaultTimeout = 10 * time.Second
