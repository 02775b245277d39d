package dictscrape

import "strings"

// FormatEntries formats entries as indented plain text for the terminal.
// Entries are separated by blank lines.
func FormatEntries(entries []*Entry) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, formatEntry(e))
	}

	return strings.Join(parts, "\n\n")
}

func formatEntry(e *Entry) string {
	var b strings.Builder

	header := []string{e.Word}
	if len(e.PartsOfSpeech) > 0 {
		header = append(header, strings.Join(e.PartsOfSpeech, ", "))
	}
	if e.Frequency != "" {
		header = append(header, e.Frequency)
	}
	b.WriteString(strings.Join(header, "  "))

	if len(e.Pronunciations) > 0 {
		prons := make([]string, 0, len(e.Pronunciations))
		for _, p := range e.Pronunciations {
			label := p.Dialect
			if p.Qualifier != "" {
				label += ", " + p.Qualifier
			}
			if label != "" {
				prons = append(prons, p.Spelling+" ("+label+")")
			} else {
				prons = append(prons, p.Spelling)
			}
		}
		b.WriteString("\n  " + strings.Join(prons, "  "))
	}
	if !e.Keywords.IsZero() {
		b.WriteString("\n  " + formatKeywords(e.Keywords))
	}

	for _, d := range e.Definitions {
		formatDefinition(&b, d, "")
	}

	return b.String()
}

func formatDefinition(b *strings.Builder, d Definition, indent string) {
	marker := "-"
	if d.Number != "" {
		marker = d.Number + "."
	}
	b.WriteString("\n" + indent + marker + " " + d.Meaning)
	if !d.Keywords.IsZero() {
		b.WriteString(" " + formatKeywords(d.Keywords))
	}

	inner := indent + strings.Repeat(" ", len(marker)+1)
	for _, g := range d.Examples {
		if g.Pattern != "" {
			b.WriteString("\n" + inner + g.Pattern)
		}
		for _, ex := range g.Examples {
			b.WriteString("\n" + inner + "  " + ex)
		}
	}
	for _, sub := range d.SubDefinitions {
		formatDefinition(b, sub, inner)
	}
}

func formatKeywords(k Keywords) string {
	return "[" + strings.Join(k.All(), ", ") + "]"
}

// FormatErrorResult formats the site's no-match page: the messages on one
// line each, then the suggestions.
func FormatErrorResult(r *ErrorResult) string {
	lines := append([]string{}, r.Messages...)
	for _, s := range r.Suggestions {
		lines = append(lines, "  "+s)
	}
	return strings.Join(lines, "\n")
}
