package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/dictscrape"
)

// writeEntries writes entries to stdout in the requested format.
func writeEntries(deps *Dependencies, entries []*dictscrape.Entry, format string) error {
	switch format {
	case "html":
		parts := make([]string, 0, len(entries))
		for _, e := range entries {
			fragment, err := deps.Renderer.RenderEntry(e)
			if err != nil {
				return err
			}
			parts = append(parts, fragment)
		}
		fmt.Fprintln(deps.Stdout, strings.Join(parts, "\n"))
	case "markdown":
		for i, e := range entries {
			md, err := entryMarkdown(deps, e)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprint(deps.Stdout, md)
		}
	case "json":
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return dictscrape.Errorf(dictscrape.EINTERNAL, "encode json: %v", err)
		}
		fmt.Fprintln(deps.Stdout, string(b))
	case "xml":
		b, err := deps.Encoder.EncodeEntries(entries)
		if err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, string(b))
	default:
		fmt.Fprintln(deps.Stdout, dictscrape.FormatEntries(entries))
	}
	return nil
}

// writeErrorResult writes the site's no-match page in the requested format.
// XML and Markdown fall back to plain text.
func writeErrorResult(deps *Dependencies, result *dictscrape.ErrorResult, format string) error {
	switch format {
	case "html":
		fragment, err := deps.Renderer.RenderError(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, fragment)
	case "json":
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return dictscrape.Errorf(dictscrape.EINTERNAL, "encode json: %v", err)
		}
		fmt.Fprintln(deps.Stdout, string(b))
	default:
		fmt.Fprintln(deps.Stdout, dictscrape.FormatErrorResult(result))
	}
	return nil
}

func entryMarkdown(deps *Dependencies, e *dictscrape.Entry) (string, error) {
	fragment, err := deps.Renderer.RenderEntry(e)
	if err != nil {
		return "", err
	}
	return deps.Converter.Convert(fragment)
}

// reportFailures warns about related entries that were skipped.
func reportFailures(deps *Dependencies, failures []dictscrape.RelatedFailure) {
	for _, f := range failures {
		fmt.Fprintf(deps.Stderr, "warning: skipped related entry %s: %s\n", f.Slug, dictscrape.ErrorMessage(f.Err))
	}
}

// reportedError wraps an error a command has already explained on stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reported marks err as already written to stderr.
func reported(err error) error {
	return &reportedError{err: err}
}

// reportf writes an error line to stderr and returns err marked as reported.
func reportf(deps *Dependencies, err error, format string, args ...any) error {
	fmt.Fprintf(deps.Stderr, "error: "+format+"\n", args...)
	return reported(err)
}

// ReportError writes err to w unless a command already reported it.
// Domain errors print their message; anything else prints as is.
func ReportError(w io.Writer, err error) {
	var r *reportedError
	if err == nil || errors.As(err, &r) {
		return
	}
	var e *dictscrape.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "error: %s\n", e.Message)
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
}
