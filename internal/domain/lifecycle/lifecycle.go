// Package lifecycle holds timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single OnStart/OnStop hook, e.g. a database ping or a server shutdown.
const DefaultTimeout = 10 * time.Second
