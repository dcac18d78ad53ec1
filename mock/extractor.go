package mock

import "github.com/fwojciec/locprof"

var _ locprof.ProfileExtractor = (*ProfileExtractor)(nil)

// ProfileExtractor is a mock implementation of locprof.ProfileExtractor.
type ProfileExtractor struct {
	ExtractFn func(html, sourceURL string) (*locprof.Capture, error)
}

func (e *ProfileExtractor) Extract(html, sourceURL string) (*locprof.Capture, error) {
	return e.ExtractFn(html, sourceURL)
}
