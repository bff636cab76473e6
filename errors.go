package mediatick

import "github.com/cockroachdb/errors"

var (
	// ErrClockUnavailable is returned by Start when no clock source could
	// produce a time origin.
	ErrClockUnavailable = errors.New("mediatick: clock source unavailable")

	// ErrInvalidResolution is returned by Start when a callback is supplied
	// with a non-positive resolution.
	ErrInvalidResolution = errors.New("mediatick: resolution must be positive")
)
