package main

import (
	"fmt"

	"github.com/fwojciec/dictscrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter dictscrape.SavedEntryFilter
	if c.Dialect != "" {
		dialect := dictscrape.ParseDialect(c.Dialect)
		filter.Dialect = &dialect
	}

	entries, err := deps.Saved.FindSavedEntries(deps.Ctx, filter)
	if err != nil {
		return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved entries. Use 'dictscrape save' to add one.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n",
			e.ID, e.Word, e.Dialect, e.SavedAt.Format("2006-01-02"), summary(e.Entry))
	}

	return nil
}

// summary returns the first meaning of an entry, if any.
func summary(e *dictscrape.Entry) string {
	if e == nil || len(e.Definitions) == 0 {
		return ""
	}
	return e.Definitions[0].Meaning
}
