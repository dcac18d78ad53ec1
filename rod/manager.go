package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// BrowserManager owns the browser used for fetching. A launched browser is
// recycled after a number of pages, since Chrome's memory baseline grows
// under sustained load. An attached browser (see WithControlURL) belongs to
// the user: it is never recycled or closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	controlURL string
	pageCount  atomic.Int64
	maxPages   int64
	mu         sync.Mutex
	closed     atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before a launched browser
// is recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithControlURL attaches to a running browser's DevTools endpoint instead
// of launching one. This reuses the browser's signed-in session, which
// profile pages require to render their sections.
func WithControlURL(u string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.controlURL = u
	}
}

// NewBrowserManager connects to a browser, launching a headless one unless
// WithControlURL is given. Close must be called when it is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if bm.controlURL != "" {
		browser := rod.New().ControlURL(bm.controlURL)
		if err := browser.Connect(); err != nil {
			return nil, fmt.Errorf("attaching to browser at %s: %w", bm.controlURL, err)
		}
		bm.browser = browser
		return bm, nil
	}

	if err := bm.launchBrowser(); err != nil {
		return nil, err
	}
	return bm, nil
}

// Browser returns the current browser, recycling a launched browser once
// the page count has reached the limit. Callers report processed pages with
// IncrementPageCount.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.launcher != nil && bm.pageCount.Load() >= bm.maxPages {
		bm.recycleBrowser()
	}

	return bm.browser
}

// IncrementPageCount records one processed page.
func (bm *BrowserManager) IncrementPageCount() {
	bm.pageCount.Add(1)
}

// Close releases a launched browser. It is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.launcher == nil {
		bm.browser = nil
		return nil
	}
	return bm.closeBrowser()
}

// Closed reports whether Close has been called.
func (bm *BrowserManager) Closed() bool {
	return bm.closed.Load()
}

func (bm *BrowserManager) launchBrowser() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("lang", "en-US").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	return nil
}

// closeBrowser shuts down the launched browser. Must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser replaces the launched browser with a fresh one, keeping
// the old one if the launch fails. Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher
	bm.browser, bm.launcher = nil, nil

	if err := bm.launchBrowser(); err != nil {
		bm.browser, bm.launcher = oldBrowser, oldLauncher
		return
	}

	_ = oldBrowser.Close()
	oldLauncher.Kill()
	bm.pageCount.Store(0)
}

// LauncherPID returns the process ID of the launched browser, or 0 when
// attached to an external browser.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
