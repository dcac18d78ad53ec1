package locprof_test

import (
	"testing"

	"github.com/fwojciec/locprof"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignHeaderFields(t *testing.T) {
	t.Parallel()

	t.Run("assigns headline location and connections", func(t *testing.T) {
		t.Parallel()

		h := locprof.AssignHeaderFields([]string{
			"Senior Engineer at Acme building things",
			"San Francisco, CA",
			"500+ mutual connections",
		}, nil)

		require.NotNil(t, h.Headline)
		assert.Equal(t, "Senior Engineer at Acme building things", *h.Headline)
		require.NotNil(t, h.Location)
		assert.Equal(t, "San Francisco, CA", *h.Location)
		require.NotNil(t, h.Connections)
		assert.Equal(t, "500+ mutual connections", *h.Connections)
		assert.Nil(t, h.Organizations)
		assert.Nil(t, h.Name)
	})

	t.Run("claimed paragraph is not reused", func(t *testing.T) {
		t.Parallel()

		h := locprof.AssignHeaderFields([]string{
			"Acme · Stanford University",
			"Berlin, Germany",
		}, nil)

		require.NotNil(t, h.Headline)
		assert.Equal(t, "Acme · Stanford University", *h.Headline)
		assert.Nil(t, h.Organizations)
		require.NotNil(t, h.Location)
		assert.Equal(t, "Berlin, Germany", *h.Location)
	})

	t.Run("location excludes pipes", func(t *testing.T) {
		t.Parallel()

		h := locprof.AssignHeaderFields([]string{
			"Go | Rust, C",
		}, nil)

		assert.Nil(t, h.Location)
	})

	t.Run("drops noise before assignment", func(t *testing.T) {
		t.Parallel()

		h := locprof.AssignHeaderFields([]string{
			"This is a modal window. This modal can be closed by pressing the Escape key or activating the close button.",
			"Beginning of dialog window. Escape will cancel and close the window.",
			"0:00",
			"Principal Engineer at Initech, Austin",
		}, nil)

		require.NotNil(t, h.Headline)
		assert.Equal(t, "Principal Engineer at Initech, Austin", *h.Headline)
	})

	t.Run("connections fall back to links", func(t *testing.T) {
		t.Parallel()

		h := locprof.AssignHeaderFields(nil, []string{"Contact info", "Alex and 12 other mutual connections"})

		require.NotNil(t, h.Connections)
		assert.Equal(t, "Alex and 12 other mutual connections", *h.Connections)
	})

	t.Run("no paragraphs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, locprof.Header{}, locprof.AssignHeaderFields(nil, nil))
	})
}
