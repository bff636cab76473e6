// Package timesource acquires point-in-time samples suitable for monotonic
// duration measurement. The system source prefers clocks that are immune to
// wall-clock adjustments (NTP steps, DST) and falls back only when a better
// clock is unavailable.
package timesource

// Sample is a single clock reading split into whole seconds and the
// nanoseconds within that second. Samples are only meaningful relative to
// other samples from the same Source.
type Sample struct {
	Sec  int64
	Nsec int64
}

// SubMillis returns the whole milliseconds elapsed between origin and s.
// The sub-second division truncates toward zero; there is no rounding.
func (s Sample) SubMillis(origin Sample) int64 {
	return (s.Sec-origin.Sec)*1000 + (s.Nsec-origin.Nsec)/1_000_000
}

// Source produces clock samples. Implementations must be safe for use from
// multiple goroutines.
type Source interface {
	Sample() (Sample, error)
}
