package capture_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{time.Millisecond, time.Millisecond}

	t.Run("retries transient errors until success", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		html, err := capture.FetchWithRetryDelays(context.Background(), "https://www.linkedin.com/in/jane/",
			func(ctx context.Context, url string) (string, error) {
				attempts++
				if attempts < 3 {
					return "", errors.New("connection reset")
				}
				return "<html></html>", nil
			}, delays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		_, err := capture.FetchWithRetryDelays(context.Background(), "https://www.linkedin.com/in/jane/",
			func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", errors.New("connection reset")
			}, delays)

		require.EqualError(t, err, "connection reset")
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry not found", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		_, err := capture.FetchWithRetryDelays(context.Background(), "https://www.linkedin.com/in/gone/",
			func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", locprof.Errorf(locprof.ENOTFOUND, "page not found")
			}, delays)

		assert.Equal(t, locprof.ENOTFOUND, locprof.ErrorCode(err))
		assert.Equal(t, 1, attempts)
	})

	t.Run("stops waiting when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := capture.FetchWithRetryDelays(ctx, "https://www.linkedin.com/in/jane/",
			func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection reset")
			}, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
