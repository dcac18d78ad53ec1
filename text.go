package locprof

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NormalizeSpace collapses every whitespace run (including non-breaking
// spaces) to a single space and trims the result.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripHeading removes the first occurrence of heading from body. Both are
// whitespace-normalized first. Only the first occurrence is removed, so a
// body that legitimately repeats its heading keeps the later copies.
func StripHeading(body, heading string) string {
	body = NormalizeSpace(body)
	heading = NormalizeSpace(heading)
	if heading == "" {
		return body
	}
	return strings.TrimSpace(strings.Replace(body, heading, "", 1))
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SplitBefore splits s immediately before every match of re, so each
// marker stays attached to the chunk that follows it. Text before the first
// match forms its own chunk. No chunk is empty.
func SplitBefore(s string, re *regexp.Regexp) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for _, loc := range re.FindAllStringIndex(s, -1) {
			if loc[0] == start {
				continue
			}
			if !yield(s[start:loc[0]]) {
				return
			}
			start = loc[0]
		}
		if start < len(s) {
			yield(s[start:])
		}
	}
}

// IsShowMore reports whether text is a "Show all"/"Show more" pagination
// control rather than content.
func IsShowMore(text string) bool {
	return strings.HasPrefix(text, "Show all") || strings.HasPrefix(text, "Show more")
}
