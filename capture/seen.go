package capture

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// seenFalsePositiveRate is the chance that a new profile is wrongly
// skipped as already seen.
const seenFalsePositiveRate = 0.001

// URLSet records profile URLs using a Bloom filter. URLs naming the same
// profile, differing only in scheme, host case, query, fragment or trailing
// slash, are treated as one. It is not safe for concurrent use.
type URLSet struct {
	f *bloom.BloomFilter
}

// NewURLSet creates a URLSet sized for n URLs with the given false
// positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records rawURL and reports whether it was new.
func (s *URLSet) Add(rawURL string) bool {
	return !s.f.TestOrAddString(ProfileKey(rawURL))
}

// ProfileKey canonicalizes a profile URL for de-duplication. Unparsable
// URLs are returned trimmed.
func ProfileKey(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	return host + strings.TrimRight(u.Path, "/")
}
