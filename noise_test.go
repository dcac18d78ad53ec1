package locprof_test

import (
	"testing"

	"github.com/fwojciec/locprof"
	"github.com/stretchr/testify/assert"
)

func TestIsNoise(t *testing.T) {
	t.Parallel()

	noise := []string{
		"Play",
		" Fullscreen ",
		"This is a modal window.",
		"0:00",
		"-1:23",
		"1:02:03",
		"45.5%",
		"Current Time 0:00",
		"Duration 3:12",
		"Loaded: 0%",
		"Progress:",
	}
	for _, text := range noise {
		assert.True(t, locprof.IsNoise(text), text)
	}

	content := []string{
		"Senior Engineer at Acme",
		"San Francisco, CA",
		"Duration of employment matters",
		"Play to win",
		"12:00 meetings are the worst",
	}
	for _, text := range content {
		assert.False(t, locprof.IsNoise(text), text)
	}
}
