// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each lifecycle hook (database pings, server
// shutdown) so a hung dependency cannot stall the whole application.
const DefaultTimeout = 10 * time.Second
