// Package locprof extracts structured profile records from rendered profile
// pages. Class names on these pages change between releases, so sections are
// located by heading text and their contents are recovered from the
// concatenated text runs with positional heuristics, boundary regexes and
// small per-section state machines.
//
// This package contains domain types, interfaces and the pure text
// segmentation algorithms following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, rod/).
package locprof
