package main

import (
	"fmt"

	"github.com/fwojciec/dictscrape"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	q := c.query(c.Word, deps)
	result, err := deps.Dictionary.Lookup(deps.Ctx, q)
	if err != nil {
		return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
	}

	if result.IsError() {
		fmt.Fprintln(deps.Stderr, dictscrape.FormatErrorResult(result.Error))
		return reported(dictscrape.Errorf(dictscrape.ENOTFOUND, "no exact match for %q", c.Word))
	}

	reportFailures(deps, result.Failures)

	dialect := dictscrape.ParseDialect(string(q.Dialect))
	for _, entry := range result.Entries {
		saved := &dictscrape.SavedEntry{Word: entry.Word, Dialect: dialect, Entry: entry}
		if err := deps.Saved.SaveEntry(deps.Ctx, saved); err != nil {
			return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
		}
		fmt.Fprintf(deps.Stdout, "Saved %s (%s) %s\n", saved.Word, saved.Dialect, saved.ID)
	}

	return nil
}
