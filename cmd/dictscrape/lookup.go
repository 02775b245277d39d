package main

import "github.com/fwojciec/dictscrape"

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	result, err := deps.Dictionary.Lookup(deps.Ctx, c.query(c.Word, deps))
	if err != nil {
		return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
	}

	if result.IsError() {
		if err := writeErrorResult(deps, result.Error, c.Format); err != nil {
			return err
		}
		return reported(dictscrape.Errorf(dictscrape.ENOTFOUND, "no exact match for %q", c.Word))
	}

	reportFailures(deps, result.Failures)
	return writeEntries(deps, result.Entries, c.Format)
}
