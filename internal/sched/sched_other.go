//go:build !linux

package sched

import "github.com/cockroachdb/errors"

func elevatePlatform() error {
	return errors.New("sched: priority elevation not supported on this platform")
}
