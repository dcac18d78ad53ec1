package locprof_test

import (
	"testing"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/stretchr/testify/assert"
)

func TestCapture_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		c := &locprof.Capture{SourceURL: "https://www.linkedin.com/in/jane/", CapturedAt: time.Now()}
		assert.NoError(t, c.Validate())
	})

	t.Run("missing source URL", func(t *testing.T) {
		t.Parallel()

		c := &locprof.Capture{CapturedAt: time.Now()}
		assert.Equal(t, locprof.EINVALID, locprof.ErrorCode(c.Validate()))
	})

	t.Run("missing timestamp", func(t *testing.T) {
		t.Parallel()

		c := &locprof.Capture{SourceURL: "https://www.linkedin.com/in/jane/"}
		assert.Equal(t, locprof.EINVALID, locprof.ErrorCode(c.Validate()))
	})
}

func TestCapture_Name(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (&locprof.Capture{}).Name())

	c := &locprof.Capture{Profile: locprof.Profile{Header: &locprof.Header{Name: strPtr("Jane Doe")}}}
	assert.Equal(t, "Jane Doe", c.Name())
}
