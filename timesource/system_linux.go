//go:build linux

package timesource

import (
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sys/unix"
)

// Ordered from most to least resilient. CLOCK_BOOTTIME additionally keeps
// counting across system suspend; CLOCK_REALTIME is subject to wall-clock
// steps and is a last resort.
var clockPreference = []int32{
	unix.CLOCK_BOOTTIME,
	unix.CLOCK_MONOTONIC,
	unix.CLOCK_REALTIME,
}

var clockGettime = unix.ClockGettime

type systemSource struct{}

// NewSystem returns a Source backed by the best available kernel clock.
func NewSystem() Source {
	return systemSource{}
}

// Sample tries each clock in preference order. When every clock fails, the
// returned error carries the failure of each attempt, not just the last.
func (systemSource) Sample() (Sample, error) {
	var merr error
	for _, id := range clockPreference {
		var ts unix.Timespec
		if err := clockGettime(id, &ts); err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "timesource: clock_gettime(%d)", id))
			continue
		}
		return Sample{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}, nil
	}
	return Sample{}, merr
}
