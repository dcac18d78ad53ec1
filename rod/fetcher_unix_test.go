//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/locprof/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Close_KillsLaunchedBrowser(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)

	// Signal 0 probes for the process without affecting it.
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)))

	require.NoError(t, fetcher.Close())
	time.Sleep(100 * time.Millisecond)

	assert.Error(t, syscall.Kill(pid, syscall.Signal(0)), "browser should be gone after Close")
}
