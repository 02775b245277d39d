package main

import (
	"fmt"

	"github.com/fwojciec/dictscrape"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		return reportf(deps, dictscrape.Errorf(dictscrape.EINVALID, "use --force to confirm deletion"),
			"use --force to confirm deletion")
	}

	if err := deps.Saved.DeleteSavedEntries(deps.Ctx, c.Word); err != nil {
		if dictscrape.ErrorCode(err) == dictscrape.ENOTFOUND {
			return reportf(deps, err, "%q is not saved. Use 'dictscrape list' to see saved entries.", c.Word)
		}
		return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Deleted saved entries for %q\n", c.Word)
	return nil
}
