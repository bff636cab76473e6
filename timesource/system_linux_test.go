//go:build linux

package timesource

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestSystemSampleFallback(t *testing.T) {
	orig := clockGettime
	defer func() { clockGettime = orig }()

	t.Run("falls back past a failing preferred clock", func(t *testing.T) {
		clockGettime = func(id int32, ts *unix.Timespec) error {
			if id == unix.CLOCK_BOOTTIME {
				return unix.EINVAL
			}
			return orig(id, ts)
		}

		first, err := NewSystem().Sample()
		require.NoError(t, err)
		second, err := NewSystem().Sample()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, second.SubMillis(first), int64(0))
	})

	t.Run("total failure reports every attempted clock", func(t *testing.T) {
		clockGettime = func(id int32, ts *unix.Timespec) error {
			return unix.EINVAL
		}

		_, err := NewSystem().Sample()
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		assert.Len(t, merr.Errors, len(clockPreference))
	})
}
