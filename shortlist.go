package locprof

import "strings"

// ShortlistEntry is the flattened subset of a capture accepted by contact
// import tools.
type ShortlistEntry struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Company    string `json:"company"`
	ProfileURL string `json:"profileUrl"`
}

// ShortlistEntry flattens the capture's header into a ShortlistEntry.
// Position and company come from a "Title at Company" headline; when the
// headline names no company, the first organization is used.
func (c *Capture) ShortlistEntry() ShortlistEntry {
	entry := ShortlistEntry{
		Name:       c.Name(),
		ProfileURL: c.SourceURL,
	}

	h := c.Profile.Header
	if h == nil {
		return entry
	}
	if h.Headline != nil {
		entry.Position, entry.Company = SplitHeadline(*h.Headline)
	}
	if entry.Company == "" && h.Organizations != nil {
		org, _, _ := strings.Cut(*h.Organizations, middleDot)
		entry.Company = strings.TrimSpace(org)
	}
	return entry
}

// SplitHeadline splits a headline such as "Staff Engineer at Acme | Speaker"
// into a position and a company. Recognized separators are " at ", " @ "
// and "@". Text after the first ",", ";" or "|" in the company is dropped.
// When no separator is present the whole headline is the position.
func SplitHeadline(headline string) (position, company string) {
	headline = NormalizeSpace(headline)
	for _, sep := range []string{" at ", " @ ", "@"} {
		if before, after, ok := strings.Cut(headline, sep); ok {
			position, company = before, after
			break
		}
	}
	if company == "" {
		return headline, ""
	}
	if i := strings.IndexAny(company, ",;|"); i >= 0 {
		company = company[:i]
	}
	return strings.TrimSpace(position), strings.TrimSpace(company)
}
