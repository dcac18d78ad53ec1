// Package http provides an HTTP implementation of locprof.Fetcher for
// profile pages that are served pre-rendered, such as public profile
// snapshots or pages saved behind a local proxy.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/locprof"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the fetcher when no user agent is configured.
const DefaultUserAgent = "locprof/1.0"

// MaxPageSize bounds the number of bytes read from a response body.
const MaxPageSize = 16 << 20

// Ensure Fetcher implements locprof.Fetcher at compile time.
var _ locprof.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves profile HTML using plain HTTP requests. It does not
// execute JavaScript, so pages that render client-side need rod.Fetcher.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	language  string
	maxSize   int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLanguage sets the Accept-Language header. Section headings are
// matched in English, so this defaults to "en".
func WithLanguage(lang string) Option {
	return func(f *Fetcher) {
		f.language = lang
	}
}

// WithMaxPageSize sets the largest response body accepted, in bytes.
// Defaults to MaxPageSize.
func WithMaxPageSize(n int64) Option {
	return func(f *Fetcher) {
		f.maxSize = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		language:  "en",
		maxSize:   MaxPageSize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML of the page at url. A 404 response returns
// ENOTFOUND; any other non-200 status is an error naming the status. A body
// larger than the size limit returns EINVALID rather than a truncated page.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", locprof.Errorf(locprof.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", f.language)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", locprof.Errorf(locprof.ENOTFOUND, "page not found: %s", url)
	default:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.maxSize {
		return "", locprof.Errorf(locprof.EINVALID, "page too large: %s exceeds %d bytes", url, f.maxSize)
	}

	return string(body), nil
}

// Close releases resources. It is a no-op for the HTTP fetcher.
func (f *Fetcher) Close() error {
	return nil
}
