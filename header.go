package locprof

import "strings"

// Header heuristic thresholds, in runes.
const (
	minHeadlineLen     = 20
	maxOrganizationLen = 120
	maxLocationLen     = 80
)

const middleDot = "·"

// AssignHeaderFields fills the text fields of a Header from the banner's
// paragraph texts and link texts. Name and photo URLs come from the
// document structure and are left nil.
//
// Paragraphs are normalized and noise is dropped, then each field takes the
// first unclaimed paragraph matching its rule, in order: headline (longer
// than 20 runes), organizations (contains a middle dot, shorter than 120),
// location (contains a comma but no pipe, shorter than 80). A paragraph
// claimed by one field is not considered for later fields. Connections is
// the first paragraph, then the first link text, mentioning
// "mutual connection".
func AssignHeaderFields(paragraphs, links []string) Header {
	texts := CleanParagraphs(paragraphs)
	claimed := make(map[int]bool)

	pick := func(match func(string) bool) *string {
		for i, text := range texts {
			if claimed[i] || !match(text) {
				continue
			}
			claimed[i] = true
			return &texts[i]
		}
		return nil
	}

	var h Header
	h.Headline = pick(func(s string) bool {
		return RuneLen(s) > minHeadlineLen
	})
	h.Organizations = pick(func(s string) bool {
		return strings.Contains(s, middleDot) && RuneLen(s) < maxOrganizationLen
	})
	h.Location = pick(func(s string) bool {
		return strings.Contains(s, ",") &&
			!strings.Contains(s, "|") &&
			RuneLen(s) < maxLocationLen &&
			!sameText(h.Headline, s) &&
			!sameText(h.Organizations, s)
	})
	h.Connections = firstMutualConnections(texts, links)
	return h
}

// CleanParagraphs normalizes paragraph texts and drops empty and noise entries.
func CleanParagraphs(paragraphs []string) []string {
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = NormalizeSpace(p)
		if p == "" || IsNoise(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func firstMutualConnections(paragraphs, links []string) *string {
	for _, group := range [][]string{paragraphs, links} {
		for _, text := range group {
			text = NormalizeSpace(text)
			if strings.Contains(text, "mutual connection") {
				return &text
			}
		}
	}
	return nil
}

func sameText(claimed *string, s string) bool {
	return claimed != nil && *claimed == s
}
