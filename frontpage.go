// Package frontpage provides a CLI-based news front-page reader.
// It fetches a site's homepage over HTTP, extracts the headline list with
// ordered selector strategies that fall back when the page layout drifts,
// and normalizes the result into a bounded list of structured items.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, feed/).
package frontpage
