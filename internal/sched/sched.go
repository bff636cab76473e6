// Package sched raises the scheduling priority of the periodic worker's OS
// thread on platforms that support it.
package sched

// Elevate raises the calling OS thread's scheduling priority as far as the
// platform allows without entering a real-time scheduling class. The caller
// must already be locked to its thread. Failure is advisory: the worker
// runs at normal priority with more jitter.
func Elevate() error {
	return elevatePlatform()
}
