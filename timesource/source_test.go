package timesource

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSubMillis(t *testing.T) {
	t.Run("whole seconds", func(t *testing.T) {
		origin := Sample{Sec: 10, Nsec: 0}
		s := Sample{Sec: 12, Nsec: 0}
		assert.Equal(t, int64(2000), s.SubMillis(origin))
	})

	t.Run("sub-second remainder truncates", func(t *testing.T) {
		origin := Sample{}
		s := Sample{Sec: 0, Nsec: 2_999_999}
		assert.Equal(t, int64(2), s.SubMillis(origin))
	})

	t.Run("under one millisecond is zero", func(t *testing.T) {
		origin := Sample{}
		s := Sample{Sec: 0, Nsec: 999_999}
		assert.Equal(t, int64(0), s.SubMillis(origin))
	})

	t.Run("nanosecond borrow across the second boundary", func(t *testing.T) {
		origin := Sample{Sec: 5, Nsec: 900_000_000}
		s := Sample{Sec: 6, Nsec: 100_000_000}
		assert.Equal(t, int64(200), s.SubMillis(origin))
	})

	t.Run("sample before origin is negative", func(t *testing.T) {
		origin := Sample{Sec: 1, Nsec: 0}
		s := Sample{Sec: 0, Nsec: 500_000_000}
		assert.Equal(t, int64(-500), s.SubMillis(origin))
	})
}

func TestSystemSource(t *testing.T) {
	src := NewSystem()

	first, err := src.Sample()
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	second, err := src.Sample()
	require.NoError(t, err)

	elapsed := second.SubMillis(first)
	assert.GreaterOrEqual(t, elapsed, int64(0))
	assert.Less(t, elapsed, int64(10_000))
}

func TestFromClock(t *testing.T) {
	mc := clock.NewMock()
	src := FromClock(mc)

	origin, err := src.Sample()
	require.NoError(t, err)

	mc.Add(1250 * time.Millisecond)
	s, err := src.Sample()
	require.NoError(t, err)
	assert.Equal(t, int64(1250), s.SubMillis(origin))

	mc.Add(999 * time.Microsecond)
	s, err = src.Sample()
	require.NoError(t, err)
	assert.Equal(t, int64(1250), s.SubMillis(origin))
}
