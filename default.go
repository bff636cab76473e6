package mediatick

import (
	"time"

	"github.com/go-logr/logr"
)

// defaultService backs the package-level functions for callers that want a
// single process-wide time service. Loggingless; construct a Service with
// New to attach a logger or to hold isolated instances.
var defaultService = New(logr.Discard())

// Start starts the process-wide default service. See Service.Start.
func Start(resolution time.Duration, cb Callback, userData any) error {
	return defaultService.Start(resolution, cb, userData)
}

// Stop stops the process-wide default service. See Service.Stop.
func Stop() error {
	return defaultService.Stop()
}

// Started reports whether the default service is running.
func Started() bool {
	return defaultService.Started()
}

// Now returns the default service's current time. See Service.Now.
func Now() Timestamp {
	return defaultService.Now()
}

// Sleep suspends the calling goroutine for approximately d.
func Sleep(d time.Duration) {
	defaultService.Sleep(d)
}
