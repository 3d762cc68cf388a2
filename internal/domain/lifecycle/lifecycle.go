// Package lifecycle holds shared start and stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds fx start and stop hooks.
const DefaultTimeout = 30 * time.Second
