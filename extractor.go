package locprof

import "strings"

// ProfileExtractor turns a rendered profile page into a Capture.
type ProfileExtractor interface {
	// Extract parses html and assembles a profile record. Missing sections
	// and fields are nil in the result, never errors. An error is returned
	// only when html cannot be parsed as a document at all.
	Extract(html string, sourceURL string) (*Capture, error)
}

// LabeledRegion is a document region identified by its heading text rather
// than by structural identifiers.
type LabeledRegion interface {
	Heading() string
}

// HasLabel reports whether the region's heading starts with label.
// Matching is case-sensitive, so "Experience (12)" matches "Experience".
func HasLabel(r LabeledRegion, label string) bool {
	return strings.HasPrefix(strings.TrimSpace(r.Heading()), label)
}
