package sched

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElevate(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	err := Elevate()
	if runtime.GOOS == "linux" && os.Geteuid() == 0 {
		assert.NoError(t, err)
	} else {
		assert.Error(t, err)
	}
}
