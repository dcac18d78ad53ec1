package main

import (
	"fmt"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	capture, err := deps.Captures.FindCaptureByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
		return err
	}

	out, err := fs.FormatCapture(capture)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(out)
	return err
}
