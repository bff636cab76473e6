package mediatick

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-logr/logr"

	"github.com/tonewheel/mediatick/internal/sched"
	"github.com/tonewheel/mediatick/timesource"
)

// worker is the background periodic-callback loop. It owns its registration
// (resolution, callback, userData) for its whole lifetime and exits when
// the service's live generation no longer matches the value it captured at
// spawn. Cancellation is polled once per tick, after the sleep and before
// the callback, so no callback runs once the generation has moved on.
type worker struct {
	log        logr.Logger
	clock      clock.Clock
	source     timesource.Source
	origin     timesource.Sample
	resolution time.Duration
	cb         Callback
	userData   any
	generation int64
	live       *atomic.Int64
	elevate    bool
	done       chan struct{}
}

func (w *worker) run() {
	defer close(w.done)

	// Priority elevation applies to the OS thread, so the goroutine stays
	// locked to one for its lifetime.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if w.elevate {
		if err := sched.Elevate(); err != nil {
			w.log.V(3).Info("running at normal priority", "reason", err.Error())
		} else {
			w.log.V(3).Info("worker priority elevated")
		}
	}
	w.log.V(3).Info("worker started", "resolution", w.resolution)

	// Each wake targets n*resolution of absolute elapsed time rather than
	// sleeping a fixed interval, so sleep overshoot never accumulates.
	for n := int64(1); ; n++ {
		target := time.Duration(n) * w.resolution
		delay := target - w.elapsed().Duration()
		if delay < 0 {
			delay = 0
		}
		w.clock.Sleep(delay)
		if w.live.Load() != w.generation {
			break
		}
		w.cb(w.elapsed(), w.userData)
	}

	w.log.V(3).Info("worker exiting", "generation", w.generation)
}

func (w *worker) elapsed() Timestamp {
	sample, err := w.source.Sample()
	if err != nil {
		w.log.Error(err, "clock sample failed")
		return 0
	}
	return Timestamp(sample.SubMillis(w.origin))
}
