package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newCapture(url, name string, capturedAt time.Time) *locprof.Capture {
	return &locprof.Capture{
		SourceURL:   url,
		CapturedAt:  capturedAt,
		ContentHash: "9f86d081884c7d65",
		Profile: locprof.Profile{
			Header: &locprof.Header{
				Name:     ptr(name),
				Headline: ptr("Senior Engineer at Acme building things"),
			},
			Skills: []locprof.Skill{
				{Name: "Python", Endorsements: ptr(5)},
				{Name: "Go"},
			},
			Recommendations: []locprof.Recommendation{},
		},
	}
}

func TestCaptureService_CreateCapture(t *testing.T) {
	t.Parallel()

	t.Run("generates ID and round-trips profile", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCaptureService(setupTestDB(t))
		ctx := context.Background()

		capture := newCapture("https://www.linkedin.com/in/jane-doe/", "Jane Doe", time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
		capture.FailedSections = []string{"featured"}
		require.NoError(t, svc.CreateCapture(ctx, capture))
		assert.NotEmpty(t, capture.ID)

		found, err := svc.FindCaptureByID(ctx, capture.ID)
		require.NoError(t, err)
		assert.Equal(t, capture, found)
	})

	t.Run("normalizes timestamp to UTC seconds", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCaptureService(setupTestDB(t))

		loc := time.FixedZone("CET", 3600)
		capture := newCapture("https://www.linkedin.com/in/jane-doe/", "Jane Doe", time.Date(2026, 3, 14, 10, 26, 53, 999, loc))
		require.NoError(t, svc.CreateCapture(context.Background(), capture))

		assert.Equal(t, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), capture.CapturedAt)
	})

	t.Run("returns conflict for duplicate ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCaptureService(setupTestDB(t))
		ctx := context.Background()

		first := newCapture("https://www.linkedin.com/in/a/", "A", time.Now())
		first.ID = "fixed"
		require.NoError(t, svc.CreateCapture(ctx, first))

		second := newCapture("https://www.linkedin.com/in/b/", "B", time.Now())
		second.ID = "fixed"
		err := svc.CreateCapture(ctx, second)
		assert.Equal(t, locprof.ECONFLICT, locprof.ErrorCode(err))
	})

	t.Run("returns error for invalid capture", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCaptureService(setupTestDB(t))

		err := svc.CreateCapture(context.Background(), &locprof.Capture{})
		require.Error(t, err)
		assert.Equal(t, locprof.EINVALID, locprof.ErrorCode(err))
	})
}

func TestCaptureService_FindCaptureByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewCaptureService(setupTestDB(t))

	_, err := svc.FindCaptureByID(context.Background(), "missing")
	assert.Equal(t, locprof.ENOTFOUND, locprof.ErrorCode(err))
}

func TestCaptureService_FindCaptures(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewCaptureService(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	jane1 := newCapture("https://www.linkedin.com/in/jane-doe/", "Jane Doe", base)
	john := newCapture("https://www.linkedin.com/in/john-roe/", "John Roe", base.Add(time.Hour))
	jane2 := newCapture("https://www.linkedin.com/in/jane-doe/", "Jane Doe", base.Add(2*time.Hour))
	for _, c := range []*locprof.Capture{jane1, john, jane2} {
		require.NoError(t, svc.CreateCapture(ctx, c))
	}

	ids := func(captures []*locprof.Capture) []string {
		var out []string
		for _, c := range captures {
			out = append(out, c.ID)
		}
		return out
	}

	t.Run("returns all newest first", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCaptures(ctx, locprof.CaptureFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{jane2.ID, john.ID, jane1.ID}, ids(got))
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCaptures(ctx, locprof.CaptureFilter{SourceURL: ptr("https://www.linkedin.com/in/jane-doe/")})
		require.NoError(t, err)
		assert.Equal(t, []string{jane2.ID, jane1.ID}, ids(got))
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCaptures(ctx, locprof.CaptureFilter{Name: ptr("John Roe")})
		require.NoError(t, err)
		assert.Equal(t, []string{john.ID}, ids(got))
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCaptures(ctx, locprof.CaptureFilter{ID: ptr(jane1.ID)})
		require.NoError(t, err)
		assert.Equal(t, []string{jane1.ID}, ids(got))
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCaptures(ctx, locprof.CaptureFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{john.ID}, ids(got))

		got, err = svc.FindCaptures(ctx, locprof.CaptureFilter{Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{jane1.ID}, ids(got))
	})

	t.Run("returns empty for no matches", func(t *testing.T) {
		t.Parallel()

		got, err := svc.FindCaptures(ctx, locprof.CaptureFilter{Name: ptr("Nobody")})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestCaptureService_DeleteCapture(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing capture", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCaptureService(setupTestDB(t))
		ctx := context.Background()

		capture := newCapture("https://www.linkedin.com/in/jane-doe/", "Jane Doe", time.Now())
		require.NoError(t, svc.CreateCapture(ctx, capture))

		require.NoError(t, svc.DeleteCapture(ctx, capture.ID))

		_, err := svc.FindCaptureByID(ctx, capture.ID)
		assert.Equal(t, locprof.ENOTFOUND, locprof.ErrorCode(err))
	})

	t.Run("returns not found for missing capture", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewCaptureService(setupTestDB(t))

		err := svc.DeleteCapture(context.Background(), "missing")
		assert.Equal(t, locprof.ENOTFOUND, locprof.ErrorCode(err))
	})
}
