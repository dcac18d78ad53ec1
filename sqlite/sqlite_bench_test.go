package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCaptureService_CreateCapture measures inserts into a file-backed
// database, the workload of a multi-profile capture run.
func BenchmarkCaptureService_CreateCapture(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	svc := sqlite.NewCaptureService(db)
	ctx := context.Background()
	name := "Jane Doe"
	about := "I build distributed systems and the teams that run them."
	capturedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		capture := &locprof.Capture{
			SourceURL:  fmt.Sprintf("https://www.linkedin.com/in/profile-%d/", i),
			CapturedAt: capturedAt,
			Profile: locprof.Profile{
				Header: &locprof.Header{Name: &name},
				About:  &about,
				Skills: []locprof.Skill{{Name: "Go"}, {Name: "Python"}},
			},
		}
		if err := svc.CreateCapture(ctx, capture); err != nil {
			b.Fatal(err)
		}
	}
}
