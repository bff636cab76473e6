package mediatick

import (
	"github.com/benbjohnson/clock"

	"github.com/tonewheel/mediatick/timesource"
)

type serviceOptions struct {
	clock   clock.Clock
	source  timesource.Source
	elevate *bool
}

func (so *serviceOptions) Clock() clock.Clock {
	if so.clock == nil {
		return clock.New()
	}
	return so.clock
}

func (so *serviceOptions) Source() timesource.Source {
	if so.source == nil {
		if so.clock != nil {
			return timesource.FromClock(so.clock)
		}
		return timesource.NewSystem()
	}
	return so.source
}

func (so *serviceOptions) Elevate() bool {
	if so.elevate == nil {
		return true
	}
	return *so.elevate
}

type ServiceOption func(*serviceOptions)

// WithClock replaces the clock used for the worker's sleeps and for Sleep.
// Unless WithSource is also given, samples are derived from the same clock,
// so a clock.Mock controls both sleeping and observed time.
func WithClock(c clock.Clock) ServiceOption {
	return func(so *serviceOptions) {
		so.clock = c
	}
}

// WithSource replaces the clock-sample source used for Now and the origin.
func WithSource(s timesource.Source) ServiceOption {
	return func(so *serviceOptions) {
		so.source = s
	}
}

// WithPriorityElevation controls whether the worker attempts to raise its
// OS thread priority on start. Enabled by default; elevation is best-effort
// either way.
func WithPriorityElevation(enabled bool) ServiceOption {
	return func(so *serviceOptions) {
		so.elevate = &enabled
	}
}
