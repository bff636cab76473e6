// Package mediatick is an in-process time service for media-timing
// libraries: a millisecond clock anchored when the service starts, derived
// from a monotonic source, plus an optional background worker that invokes
// a callback at a fixed resolution with drift-free scheduling.
package mediatick

import "time"

// Timestamp is a count of whole milliseconds elapsed since the service's
// time origin. It is derived from a monotonic source, so it does not move
// backwards under wall-clock adjustments.
type Timestamp int64

// Duration converts t to a time.Duration.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t) * time.Millisecond
}
