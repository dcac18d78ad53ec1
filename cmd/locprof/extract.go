package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/capture"
	"github.com/fwojciec/locprof/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
		return err
	}

	sourceURL := c.URL
	if sourceURL == "" {
		sourceURL = c.Source
	}

	result, err := deps.Extractor.Extract(html, sourceURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
		return err
	}
	result.ContentHash = capture.ComputeHash(html)

	if c.Save {
		if err := deps.Captures.CreateCapture(deps.Ctx, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
			return err
		}
	}

	if c.Out != "" {
		if err := fs.NewWriter(c.Out).CreateCapture(deps.Ctx, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
			return err
		}
	}

	out, err := fs.FormatCapture(result)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(out)
	return err
}

func (c *ExtractCmd) read(deps *Dependencies) (string, error) {
	if isURL(c.Source) {
		if deps.Fetcher == nil {
			return "", locprof.Errorf(locprof.EINTERNAL, "no fetcher configured")
		}
		return capture.FetchWithRetryDelays(deps.Ctx, c.Source, deps.Fetcher.Fetch, capture.DefaultRetryDelays())
	}

	b, err := os.ReadFile(c.Source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", locprof.Errorf(locprof.ENOTFOUND, "file %q not found", c.Source)
		}
		return "", err
	}
	return string(b), nil
}
