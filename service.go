package mediatick

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/cockroachdb/errors"
	"github.com/go-logr/logr"
	"github.com/segmentio/ksuid"

	"github.com/tonewheel/mediatick/timesource"
)

// Callback is invoked by the background worker on every tick with the
// current service time and the userData value supplied to Start. It runs
// synchronously on the worker: a callback that blocks delays every
// subsequent tick, and one that never returns halts ticking entirely. The
// service does not detect or recover from a stalled callback.
type Callback func(now Timestamp, userData any)

// Service is a media-timing service. Instances are independent, each with
// its own time origin and at most one background worker; the package-level
// functions mirror this API on a shared default instance.
//
// The zero value is not usable; construct with New.
type Service struct {
	log     logr.Logger
	clock   clock.Clock
	source  timesource.Source
	elevate bool

	// generation identifies the current worker. Stop increments it; a
	// worker that observes a value other than the one it captured at spawn
	// exits. Written only under mu, read by the worker without it.
	generation atomic.Int64
	started    atomic.Bool
	origin     atomic.Pointer[timesource.Sample]

	mu         sync.Mutex
	workerDone chan struct{}
}

// New constructs a stopped Service.
func New(log logr.Logger, opts ...ServiceOption) *Service {
	options := serviceOptions{}
	for _, o := range opts {
		o(&options)
	}
	return &Service{
		log:     log.WithName("mediatick"),
		clock:   options.Clock(),
		source:  options.Source(),
		elevate: options.Elevate(),
	}
}

// Start anchors the service's time origin and, when cb is non-nil, spawns
// the background worker invoking cb every resolution. With a nil cb the
// service runs as a pure clock: Now is usable and no worker exists.
//
// Starting a running service is a successful no-op; the original callback
// and resolution stay active regardless of the arguments passed.
//
// Start fails with ErrClockUnavailable when no clock source works and with
// ErrInvalidResolution when cb is non-nil and resolution is not positive.
// On failure the service remains stopped.
func (s *Service) Start(resolution time.Duration, cb Callback, userData any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.Load() {
		return nil
	}
	if cb != nil && resolution <= 0 {
		return ErrInvalidResolution
	}

	origin, err := s.source.Sample()
	if err != nil {
		return errors.Mark(errors.Wrap(err, "mediatick: establish time origin"), ErrClockUnavailable)
	}
	s.origin.Store(&origin)
	s.started.Store(true)

	if cb != nil {
		w := &worker{
			log:        s.log.WithName("worker").WithValues("instance", ksuid.New().String()),
			clock:      s.clock,
			source:     s.source,
			origin:     origin,
			resolution: resolution,
			cb:         cb,
			userData:   userData,
			generation: s.generation.Load(),
			live:       &s.generation,
			elevate:    s.elevate,
			done:       make(chan struct{}),
		}
		s.workerDone = w.done
		s.log.V(3).Info("starting periodic worker", "resolution", resolution)
		go w.run()
	}

	return nil
}

// Stop cancels the background worker, waits for it to exit, and returns the
// service to the stopped state. No callback invocation occurs after Stop
// returns; the wait is bounded by one resolution interval plus the running
// callback, if any. Stopping a stopped service is a no-op. Stop always
// returns nil.
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started.Load() {
		return nil
	}

	s.generation.Add(1)
	if s.workerDone != nil {
		<-s.workerDone
		s.workerDone = nil
	}
	s.started.Store(false)
	s.log.V(3).Info("service stopped")
	return nil
}

// Started reports whether the service is running. It never blocks.
func (s *Service) Started() bool {
	return s.started.Load()
}

// Now returns the milliseconds elapsed since the most recent Start, or 0
// when the service is not running. Values are non-decreasing for the
// lifetime of a start given a monotonic source.
func (s *Service) Now() Timestamp {
	if !s.started.Load() {
		return 0
	}
	origin := s.origin.Load()
	if origin == nil {
		return 0
	}
	sample, err := s.source.Sample()
	if err != nil {
		// The source was validated when the origin was established; there
		// is no recovery from a failure past that point.
		s.log.Error(err, "clock sample failed")
		return 0
	}
	return Timestamp(sample.SubMillis(*origin))
}

// Sleep suspends the calling goroutine for approximately d using the
// service clock. It has no relationship to the worker's tick scheduling and
// works whether or not the service is started.
func (s *Service) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	s.clock.Sleep(d)
}
