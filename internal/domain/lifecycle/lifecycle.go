// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook may take.
const DefaultTimeout = 10 * time.Second
