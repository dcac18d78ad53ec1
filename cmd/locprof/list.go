package main

import (
	"fmt"

	"github.com/fwojciec/locprof"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := locprof.CaptureFilter{Limit: c.Limit}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	captures, err := deps.Captures.FindCaptures(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
		return err
	}

	if len(captures) == 0 {
		fmt.Fprintln(deps.Stdout, "No captures found. Use 'locprof extract --save' or 'locprof capture' to add one.")
		return nil
	}

	for _, capture := range captures {
		name := capture.Name()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			capture.ID, capture.CapturedAt.Format("2006-01-02"), name, capture.SourceURL)
	}

	return nil
}
