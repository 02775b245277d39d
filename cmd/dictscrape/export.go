package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/dictscrape"
	"github.com/fwojciec/dictscrape/fs"
)

// fileExt maps export formats to file extensions.
var fileExt = map[string]string{
	"markdown": "md",
	"html":     "html",
	"xml":      "xml",
}

// Run executes the export command. Nothing is written to Dir/Name unless
// every entry exports.
func (c *ExportCmd) Run(deps *Dependencies) (err error) {
	saved, err := deps.Saved.FindSavedEntries(deps.Ctx, dictscrape.SavedEntryFilter{})
	if err != nil {
		return reportf(deps, err, "%s", dictscrape.ErrorMessage(err))
	}

	if len(saved) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved entries to export.")
		return nil
	}

	store := deps.NewStore(c.Dir, c.Name)
	defer func() {
		if err != nil {
			_ = store.Abort()
		}
	}()

	names := newFileNames(fileExt[c.Format])
	for _, s := range saved {
		content, err := c.render(deps, s)
		if err != nil {
			return reportf(deps, err, "%s: %s", s.Word, dictscrape.ErrorMessage(err))
		}

		if err := store.Save(deps.Ctx, names.next(s), content); err != nil {
			return err
		}
	}

	if err := store.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d entries to %s\n", len(saved), filepath.Join(c.Dir, c.Name))
	return nil
}

func (c *ExportCmd) render(deps *Dependencies, s *dictscrape.SavedEntry) ([]byte, error) {
	switch c.Format {
	case "html":
		fragment, err := deps.Renderer.RenderEntry(s.Entry)
		if err != nil {
			return nil, err
		}
		return []byte(fragment + "\n"), nil
	case "xml":
		return deps.Encoder.EncodeEntries([]*dictscrape.Entry{s.Entry})
	default:
		md, err := entryMarkdown(deps, s.Entry)
		if err != nil {
			return nil, err
		}
		return []byte(fs.FormatMarkdown(s, md)), nil
	}
}

// fileNames hands out export file names that are unique within one export.
type fileNames struct {
	ext      string
	versions map[string]int // stem and dialect to last version used
	used     map[string]bool
}

func newFileNames(ext string) *fileNames {
	return &fileNames{ext: ext, versions: make(map[string]int), used: make(map[string]bool)}
}

func (f *fileNames) next(s *dictscrape.SavedEntry) string {
	key := fs.FileStem(s.Word) + "/" + string(dictscrape.ParseDialect(string(s.Dialect)))
	for {
		f.versions[key]++
		name := fs.FileName(s, f.versions[key], f.ext)
		if !f.used[name] {
			f.used[name] = true
			return name
		}
	}
}
