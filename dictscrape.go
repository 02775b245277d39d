// Package dictscrape extracts structured dictionary entries from Macmillan
// Dictionary pages and renders them back to HTML, Markdown and XML.
//
// This package contains domain types, interfaces and the pure parts of the
// extraction pipeline (keyword bucketing, example grouping and the definition
// fold), following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, etree/).
package dictscrape
