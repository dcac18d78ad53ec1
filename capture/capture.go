// Package capture runs the fetch, extract and store pipeline over a batch
// of profile URLs.
package capture

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/locprof"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of profiles processed at once when
// Capturer.Concurrency is unset. Profile hosts throttle aggressively, so
// this is low.
const DefaultConcurrency = 2

// Capturer captures profiles from URLs and writes them to a CaptureWriter.
type Capturer struct {
	Fetcher     locprof.Fetcher
	Extractor   locprof.ProfileExtractor
	Writer      locprof.CaptureWriter
	RateLimiter locprof.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a capture run.
type Result struct {
	Saved   int
	Failed  int
	Skipped int
	Bytes   int
}

// ProgressEvent reports progress during a capture run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting capture progress.
type ProgressFunc func(event ProgressEvent)

type captureResult struct {
	url     string
	capture *locprof.Capture
	bytes   int
	err     error
}

// Capture fetches, extracts and stores every URL. URLs that name an
// already-seen profile are skipped. A failing URL is counted and reported
// through progress; it does not stop the run. Captures are written from a
// single goroutine, so the Writer need not be safe for concurrent use.
func (c *Capturer) Capture(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	var result Result
	seen := NewURLSet(uint(max(len(urls), 1)), seenFalsePositiveRate)
	var queue []string
	for _, u := range urls {
		if !seen.Add(u) {
			result.Skipped++
			continue
		}
		queue = append(queue, u)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(queue)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan captureResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range queue {
			g.Go(func() error {
				resultCh <- c.processURL(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for r := range resultCh {
		if r.err == nil {
			r.err = c.Writer.CreateCapture(ctx, r.capture)
		}

		completed++
		event := ProgressEvent{
			Completed: completed,
			Total:     total,
			URL:       r.url,
		}
		if r.err != nil {
			result.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		} else {
			result.Saved++
			result.Bytes += r.bytes
			event.Type = ProgressCompleted
			event.Name = r.capture.Name()
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	if err := ctx.Err(); err != nil {
		return &result, err
	}
	return &result, nil
}

// processURL fetches and extracts a single profile.
func (c *Capturer) processURL(ctx context.Context, rawURL string) captureResult {
	result := captureResult{url: rawURL}

	if c.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			result.err = locprof.Errorf(locprof.EINVALID, "invalid URL %q: %v", rawURL, err)
			return result
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	capture, err := c.Extractor.Extract(html, rawURL)
	if err != nil {
		result.err = err
		return result
	}
	capture.ContentHash = ComputeHash(html)

	result.capture = capture
	result.bytes = len(html)
	return result
}

// ComputeHash returns the hex xxhash of content. Captures of unchanged
// pages share a hash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
