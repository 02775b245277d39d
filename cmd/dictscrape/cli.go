package main

import (
	"context"
	"io"

	"github.com/fwojciec/dictscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Dictionary dictscrape.Dictionary
	Saved      dictscrape.SavedEntryService
	Renderer   dictscrape.Renderer
	Converter  dictscrape.Converter
	Encoder    dictscrape.Encoder
	Decoder    dictscrape.Decoder
	NewStore   func(dir, name string) dictscrape.EntryStore

	// Dialect is used when a command does not set --dialect.
	Dialect dictscrape.Dialect
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Lookup LookupCmd `cmd:"" help:"Look up a word and its same-word related entries"`
	Save   SaveCmd   `cmd:"" help:"Look up a word and add its entries to the saved list"`
	List   ListCmd   `cmd:"" help:"List saved entries"`
	Show   ShowCmd   `cmd:"" help:"Show saved entries for a word"`
	Delete DeleteCmd `cmd:"" help:"Delete saved entries for a word"`
	Export ExportCmd `cmd:"" help:"Export saved entries to a directory"`
	Import ImportCmd `cmd:"" help:"Add entries from exported XML files to the saved list"`
}

// QueryFlags are shared by commands that look words up.
type QueryFlags struct {
	Slug      bool   `help:"Treat WORD as a page slug such as run_1"`
	Dialect   string `short:"d" help:"Dictionary edition (american, british); defaults to the configured dialect"`
	NoRelated bool   `help:"Do not expand same-word related entries"`
}

// query builds the lookup query for word.
func (f QueryFlags) query(word string, deps *Dependencies) dictscrape.Query {
	q := dictscrape.Query{Dialect: deps.Dialect, Depth: dictscrape.MaxDepth}
	if f.Dialect != "" {
		q.Dialect = dictscrape.ParseDialect(f.Dialect)
	}
	if f.NoRelated {
		q.Depth = 0
	}
	if f.Slug {
		q.Slug = word
	} else {
		q.Word = word
	}
	return q
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Word string `arg:"" help:"Word to look up"`
	QueryFlags
	Format string `short:"f" enum:"text,html,markdown,json,xml" default:"text" help:"Output format (text, html, markdown, json, xml)"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Word string `arg:"" help:"Word to look up and save"`
	QueryFlags
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Dialect string `short:"d" help:"Only list entries of this edition"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Word    string `arg:"" help:"Saved word"`
	Dialect string `short:"d" help:"Only show entries of this edition"`
	Format  string `short:"f" enum:"text,html,markdown,json,xml" default:"text" help:"Output format (text, html, markdown, json, xml)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Word  string `arg:"" help:"Saved word"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir    string `arg:"" help:"Parent directory"`
	Name   string `arg:"" help:"Output directory name, replaced atomically"`
	Format string `short:"f" enum:"markdown,html,xml" default:"markdown" help:"File format (markdown, html, xml)"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Files   []string `arg:"" type:"existingfile" help:"XML files written by 'export --format xml'"`
	Dialect string   `short:"d" help:"Edition to save the entries under; defaults to the configured dialect"`
}
