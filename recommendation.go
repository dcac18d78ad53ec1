package locprof

import (
	"regexp"
	"strings"
)

// MaxRecommendationLen is the maximum length, in runes, of a recommendation's text.
const MaxRecommendationLen = 800

const (
	receivedMarker = "Received"
	givenMarker    = "Given"
)

// attributionRe matches a recommender attribution: a run of capitalized name
// words followed by a middle dot and a connection degree. Names outside the
// Latin alphabet are not matched.
var attributionRe = regexp.MustCompile(`([A-Z][A-Za-z'.\-]*(?: [A-Z][A-Za-z'.\-]*)*)\s*·\s*(1st|2nd|3rd)`)

// ReceivedSegment returns the part of a recommendations body between the
// first "Received" marker and the first "Given" marker after it. When no
// "Given" marker follows, the segment runs to the end of body. The boolean
// is false when body has no "Received" marker.
func ReceivedSegment(body string) (string, bool) {
	_, after, ok := strings.Cut(body, receivedMarker)
	if !ok {
		return "", false
	}
	if i := strings.Index(after, givenMarker); i >= 0 {
		after = after[:i]
	}
	return after, true
}

// ParseRecommendations extracts received recommendations from the body text
// of a recommendations section. Each attribution match starts a
// recommendation whose text runs up to the next attribution or the end of
// the received segment. The result is never nil.
func ParseRecommendations(body string) []Recommendation {
	recs := []Recommendation{}

	segment, ok := ReceivedSegment(NormalizeSpace(body))
	if !ok {
		return recs
	}

	matches := attributionRe.FindAllStringSubmatchIndex(segment, -1)
	for i, m := range matches {
		end := len(segment)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		recs = append(recs, Recommendation{
			RecommenderName:  strings.TrimSpace(segment[m[2]:m[3]]),
			ConnectionDegree: ConnectionDegree(segment[m[4]:m[5]]),
			Text:             Truncate(strings.TrimSpace(segment[m[1]:end]), MaxRecommendationLen),
		})
	}
	return recs
}
