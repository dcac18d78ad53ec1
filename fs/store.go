package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/locprof"
)

// Ensure FileStore implements locprof.CaptureWriter at compile time.
var _ locprof.CaptureWriter = (*FileStore)(nil)

// FileStore writes a batch of captures with atomic update semantics.
// Captures are written to a temporary directory, then moved into place on
// Commit, so readers never observe a half-written batch.
type FileStore struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewFileStore creates a new FileStore.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	s := &FileStore{baseDir: baseDir, name: name}
	s.writer = NewWriter(s.tempDir())
	return s
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateCapture writes capture to the temporary directory.
func (s *FileStore) CreateCapture(ctx context.Context, capture *locprof.Capture) error {
	return s.writer.CreateCapture(ctx, capture)
}

// Commit replaces the final directory with the written batch.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the written batch.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
