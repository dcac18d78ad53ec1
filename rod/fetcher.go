// Package rod implements locprof.Fetcher with Chrome browser automation,
// for profile pages that render their sections client-side.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page fetch.
const DefaultFetchTimeout = 10 * time.Second

// DefaultSettleTime is how long the DOM must stay unchanged before the
// page is considered rendered.
const DefaultSettleTime = 500 * time.Millisecond

// scrollScript scrolls to the bottom so lazily rendered sections mount.
const scrollScript = `() => window.scrollTo(0, document.body.scrollHeight)`

// Ensure Fetcher implements locprof.Fetcher at compile time.
var _ locprof.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered profile HTML using a Chrome browser.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager    *BrowserManager
	timeout    time.Duration
	settleTime time.Duration
	managerOps []ManagerOption
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout for a single fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleTime sets how long the DOM must be stable after loading.
func WithSettleTime(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settleTime = d
	}
}

// WithBrowser passes options to the underlying BrowserManager.
func WithBrowser(opts ...ManagerOption) Option {
	return func(f *Fetcher) {
		f.managerOps = append(f.managerOps, opts...)
	}
}

// NewFetcher creates a Fetcher backed by a new BrowserManager.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:    DefaultFetchTimeout,
		settleTime: DefaultSettleTime,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.managerOps...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to url, scrolls through the page so every section
// renders, and returns the resulting HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.manager.Closed() {
		return "", locprof.Errorf(locprof.EINVALID, "fetcher closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	if _, err := page.Eval(scrollScript); err != nil {
		return "", err
	}
	if err := page.WaitDOMStable(f.settleTime, 0); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources. It is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the launched browser.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
