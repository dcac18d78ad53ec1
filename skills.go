package locprof

import (
	"iter"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Skill name bounds, in runes, exclusive.
const (
	minSkillNameLen = 1
	maxSkillNameLen = 80
)

var (
	endorseRe          = regexp.MustCompile(`\bEndorse`)
	bareEndorseRe      = regexp.MustCompile(`^Endorse\b\s*`)
	endorsementCountRe = regexp.MustCompile(`(?i)(\d[\d,]*)\+?\s+endorsements?\b`)
)

// SkillChunks splits skills body text before every "Endorse" token. The
// token stays attached to the chunk that follows it.
func SkillChunks(body string) iter.Seq[string] {
	return SplitBefore(NormalizeSpace(body), endorseRe)
}

// SkillState is the state of the skills parser between chunks. The zero
// value is the initial state.
type SkillState struct {
	// Skills accepted so far, in order.
	Skills []Skill

	// cur is the 1-based index of the open skill in Skills; 0 when none.
	cur int
}

// Current returns a copy of the skill that endorsement metadata attaches
// to. ok is false when no skill is open.
func (s SkillState) Current() (skill Skill, ok bool) {
	if s.cur == 0 {
		return Skill{}, false
	}
	return s.Skills[s.cur-1], true
}

// Next consumes one chunk and returns the following state. The receiver is
// not modified.
//
// A leading bare "Endorse" call-to-action is removed first; an empty
// remainder is skipped. "Endorsed by" chunks attach their endorsement count
// to the current skill. "Show all" chunks are skipped. Anything else opens a
// new skill named by the text before "Endorsed" or the count phrase; names
// outside the length bounds are dropped and the current skill is kept.
func (s SkillState) Next(chunk string) SkillState {
	chunk = strings.TrimSpace(bareEndorseRe.ReplaceAllString(strings.TrimSpace(chunk), ""))

	switch {
	case chunk == "":
		return s
	case strings.HasPrefix(chunk, "Endorsed by"):
		n, ok := endorsementCount(chunk)
		if !ok || s.cur == 0 {
			return s
		}
		return s.withEndorsements(s.cur-1, n)
	case IsShowMore(chunk):
		return s
	}

	name := chunk
	if i := strings.Index(name, "Endorsed"); i >= 0 {
		name = name[:i]
	}
	if loc := endorsementCountRe.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}
	name = strings.TrimSpace(name)
	if n := RuneLen(name); n <= minSkillNameLen || n >= maxSkillNameLen {
		return s
	}

	next := SkillState{
		Skills: append(slices.Clip(s.Skills), Skill{Name: name}),
	}
	next.cur = len(next.Skills)
	if n, ok := endorsementCount(chunk); ok {
		return next.withEndorsements(next.cur-1, n)
	}
	return next
}

func (s SkillState) withEndorsements(i, n int) SkillState {
	skills := slices.Clone(s.Skills)
	skills[i].Endorsements = &n
	return SkillState{Skills: skills, cur: s.cur}
}

// ParseSkills runs the skills state machine over the body text of a skills
// section. The result is never nil.
func ParseSkills(body string) []Skill {
	var state SkillState
	for chunk := range SkillChunks(body) {
		state = state.Next(chunk)
	}
	if state.Skills == nil {
		return []Skill{}
	}
	return state.Skills
}

func endorsementCount(s string) (int, bool) {
	m := endorsementCountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	return parseCount(m[1])
}

// parseCount parses a non-negative integer that may contain thousands
// separators.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
