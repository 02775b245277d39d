package main

import "github.com/fwojciec/dictscrape"

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	filter := dictscrape.SavedEntryFilter{Word: &c.Word}
	if c.Dialect != "" {
		dialect := dictscrape.ParseDialect(c.Dialect)
		filter.Dialect = &dialect
	}

	saved, err := deps.Saved.FindSavedEntries(deps.Ctx, filter)
	if err != nil {
		return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
	}

	if len(saved) == 0 {
		return reportf(deps, dictscrape.Errorf(dictscrape.ENOTFOUND, "%q is not saved", c.Word),
			"%q is not saved. Use 'dictscrape list' to see saved entries.", c.Word)
	}

	entries := make([]*dictscrape.Entry, 0, len(saved))
	for _, s := range saved {
		entries = append(entries, s.Entry)
	}
	return writeEntries(deps, entries, c.Format)
}
