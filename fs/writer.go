// Package fs provides file-based storage for captured profiles.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/locprof"
)

// URLToPath converts a profile URL to a relative JSON file path.
// Example: https://www.linkedin.com/in/jane-doe/ → in/jane-doe.json
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	p := strings.Trim(u.Path, "/")
	if p == "" {
		return "index.json", nil
	}

	p = path.Clean(p)
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", locprof.Errorf(locprof.EINVALID, "path traversal in URL %q", rawURL)
	}

	// Saved pages keep their extension in the source URL.
	switch path.Ext(p) {
	case ".html", ".htm":
		p = strings.TrimSuffix(p, path.Ext(p))
	}

	return filepath.FromSlash(p) + ".json", nil
}

// FormatCapture encodes a capture as indented JSON with a trailing newline.
func FormatCapture(capture *locprof.Capture) ([]byte, error) {
	b, err := json.MarshalIndent(capture, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode capture: %w", err)
	}
	return append(b, '\n'), nil
}

// Ensure Writer implements locprof.CaptureWriter at compile time.
var _ locprof.CaptureWriter = (*Writer)(nil)

// Writer writes captures as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateCapture writes a capture to disk at the path derived from its
// source URL, replacing any earlier capture of the same profile.
func (w *Writer) CreateCapture(ctx context.Context, capture *locprof.Capture) error {
	if err := capture.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(capture.SourceURL)
	if err != nil {
		return err
	}

	content, err := FormatCapture(capture)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}
