package locprof

import (
	"regexp"
	"strings"
)

// Description fragment bounds, in runes.
const (
	minDescriptionLen = 60
	maxDescriptionLen = 500
)

// Activity item bounds, in runes.
const (
	MinPostLen     = 40
	MaxPostLen     = 500
	MinFeaturedLen = 10
	MaxFeaturedLen = 300
	MinInterestLen = 3
	MaxInterestLen = 150
	MinLanguageLen = 1
)

// Anchor minimum lengths, in runes, for the passthrough sections.
const (
	MinRoleAnchorLen          = 15
	MinEducationAnchorLen     = 10
	MinCertificationAnchorLen = 10
)

var (
	descriptionBoundaryRe = regexp.MustCompile(`Endorsed|Show all|… more`)
	followersRe           = regexp.MustCompile(`(?i)(\d[\d,]*)\s+followers?\b`)
	commentsRe            = regexp.MustCompile(`(?i)(\d[\d,]*)\s+comments?\b`)
	repostsRe             = regexp.MustCompile(`(?i)(\d[\d,]*)\s+reposts?\b`)
)

// DescriptionFragments splits experience body text before every
// "Endorsed", "Show all" and "… more" marker and keeps the fragments longer
// than 60 runes, truncated to 500. The result is never nil.
func DescriptionFragments(body string) []string {
	out := []string{}
	for chunk := range SplitBefore(NormalizeSpace(body), descriptionBoundaryRe) {
		chunk = strings.TrimSpace(chunk)
		if RuneLen(chunk) <= minDescriptionLen {
			continue
		}
		out = append(out, Truncate(chunk, maxDescriptionLen))
	}
	return out
}

// FollowerCount returns the first "N followers" count in text.
func FollowerCount(text string) *int {
	return firstCount(followersRe, text)
}

// ParsePost builds a Post from an activity item's text, extracting its
// comment and repost counts.
func ParsePost(text string) Post {
	text = NormalizeSpace(text)
	return Post{
		Text:     Truncate(text, MaxPostLen),
		Comments: firstCount(commentsRe, text),
		Reposts:  firstCount(repostsRe, text),
	}
}

// ParseInterest builds an Interest from an interests item's text.
func ParseInterest(text string) Interest {
	text = NormalizeSpace(text)
	return Interest{
		Text:      Truncate(text, MaxInterestLen),
		Followers: FollowerCount(text),
	}
}

func firstCount(re *regexp.Regexp, text string) *int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, ok := parseCount(m[1])
	if !ok {
		return nil
	}
	return &n
}
