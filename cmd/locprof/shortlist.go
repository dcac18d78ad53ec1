package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/locprof"
)

// shortlistHeader is the CSV column order accepted by contact import tools.
var shortlistHeader = []string{"name", "position", "company", "profile_url"}

// Run executes the shortlist command.
func (c *ShortlistCmd) Run(deps *Dependencies) error {
	filter := locprof.CaptureFilter{}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	captures, err := deps.Captures.FindCaptures(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
		return err
	}

	entries := make([]locprof.ShortlistEntry, 0, len(captures))
	for _, capture := range captures {
		entries = append(entries, capture.ShortlistEntry())
	}

	if c.Format == "csv" {
		w := csv.NewWriter(deps.Stdout)
		if err := w.Write(shortlistHeader); err != nil {
			return err
		}
		for _, e := range entries {
			if err := w.Write([]string{e.Name, e.Position, e.Company, e.ProfileURL}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
