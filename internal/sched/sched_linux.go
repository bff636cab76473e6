//go:build linux

package sched

import (
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// Strongest boost available outside the real-time classes. SCHED_FIFO and
// SCHED_RR are never requested: a worker in a real-time class can starve
// the host if its callback stalls.
const elevatedNice = -20

func elevatePlatform() error {
	if os.Geteuid() != 0 {
		return errors.New("sched: elevation requires an elevated process")
	}
	// who 0 with PRIO_PROCESS targets the calling thread.
	if err := unix.Setpriority(unix.PRIO_PROCESS, 0, elevatedNice); err != nil {
		return errors.Wrap(err, "sched: setpriority")
	}
	return nil
}
