package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/capture"
	"github.com/fwojciec/locprof/fs"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	if deps.Capturer == nil {
		return locprof.Errorf(locprof.EINTERNAL, "capture pipeline not configured")
	}

	urls := c.URLs
	if c.File != "" {
		fromFile, err := readURLs(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no profile URLs given")
		return locprof.Errorf(locprof.EINVALID, "no profile URLs given")
	}

	var store *fs.FileStore
	if c.Out != "" {
		store = fs.NewFileStore(c.Out, c.Batch)
		deps.Capturer.Writer = store
	} else {
		deps.Capturer.Writer = deps.Captures
	}
	if c.Concurrency > 0 {
		deps.Capturer.Concurrency = c.Concurrency
	}

	progress := func(event capture.ProgressEvent) {
		switch event.Type {
		case capture.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Capturing %d profiles\n", event.Total)
		case capture.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s  %s\n",
				event.Completed, event.Total, capture.TruncateURL(event.URL, 50), event.Name)
		case capture.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case capture.ProgressFinished:
		}
	}

	result, err := deps.Capturer.Capture(deps.Ctx, urls, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error capturing: %v\n", err)
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to write batch: %v\n", err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d profiles (%s)", result.Saved, capture.FormatBytes(result.Bytes))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, ", %d failed", result.Failed)
	}
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, ", %d duplicates skipped", result.Skipped)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

// readURLs reads one URL per line, ignoring blank lines and lines starting
// with '#'.
func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, locprof.Errorf(locprof.ENOTFOUND, "file %q not found", path)
		}
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
