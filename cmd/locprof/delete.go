package main

import (
	"fmt"

	"github.com/fwojciec/locprof"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return locprof.Errorf(locprof.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Captures.DeleteCapture(deps.Ctx, c.ID); err != nil {
		if locprof.ErrorCode(err) == locprof.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: capture %q not found. Use 'locprof list' to see stored captures.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", locprof.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted capture %q\n", c.ID)
	return nil
}
