package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/dictscrape"
)

// Run executes the import command. Every file is decoded before anything
// is saved, so a malformed file leaves the saved list untouched.
func (c *ImportCmd) Run(deps *Dependencies) error {
	dialect := deps.Dialect
	if c.Dialect != "" {
		dialect = dictscrape.ParseDialect(c.Dialect)
	}

	var entries []*dictscrape.Entry
	for _, path := range c.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return reportf(deps, dictscrape.Errorf(dictscrape.EINVALID, "read %s: %v", path, err), "%s", err)
		}
		decoded, err := deps.Decoder.DecodeEntries(data)
		if err != nil {
			return reportf(deps, err, "%s: %s", path, dictscrape.ErrorMessage(err))
		}
		entries = append(entries, decoded...)
	}

	for _, entry := range entries {
		saved := &dictscrape.SavedEntry{Word: entry.Word, Dialect: dialect, Entry: entry}
		if err := deps.Saved.SaveEntry(deps.Ctx, saved); err != nil {
			return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
		}
		fmt.Fprintf(deps.Stdout, "Saved %s (%s) %s\n", saved.Word, saved.Dialect, saved.ID)
	}

	fmt.Fprintf(deps.Stdout, "Imported %d entries\n", len(entries))
	return nil
}
