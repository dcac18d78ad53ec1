package locprof

import (
	"regexp"
	"strings"
)

// noiseLabels are control labels rendered by embedded video players and
// modal dialogs. They surface as paragraph text in the profile banner.
var noiseLabels = newSet(
	"Play",
	"Pause",
	"Replay",
	"Mute",
	"Unmute",
	"Fullscreen",
	"Non-Fullscreen",
	"Exit Fullscreen",
	"Picture-in-Picture",
	"Playback Rate",
	"Chapters",
	"Descriptions",
	"descriptions off, selected",
	"Captions",
	"captions settings",
	"captions off, selected",
	"Subtitles",
	"subtitles off, selected",
	"Audio Track",
	"Stream Type LIVE",
	"LIVE",
	"Seek to live, currently behind live",
	"Seek to live, currently playing live",
	"Volume Level",
	"Close Modal Dialog",
	"Close",
	"Done",
	"Reset",
	"restore all settings to the default values",
	"This is a modal window.",
	"This is a modal window. This modal can be closed by pressing the Escape key or activating the close button.",
	"Beginning of dialog window. Escape will cancel and close the window.",
	"End of dialog window.",
	"Text",
	"Text Background",
	"Caption Area Background",
	"Font Size",
	"Text Edge Style",
	"Font Family",
)

// noisePrefixes introduce a player readout followed by a timer value,
// e.g. "Current Time 0:00" or "Loaded: 12.5%".
var noisePrefixes = []string{
	"Current Time",
	"Duration",
	"Remaining Time",
	"Loaded:",
	"Progress:",
}

func newSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

var timerRe = regexp.MustCompile(`^-?(?:\d{1,2}:\d{2}(?::\d{2})?|\d{1,3}(?:\.\d+)?%)$`)

// IsNoise reports whether text is a known UI control label or a timer-like
// readout (mm:ss, NN.N%) rather than profile content.
func IsNoise(text string) bool {
	text = NormalizeSpace(text)
	if _, ok := noiseLabels[text]; ok {
		return true
	}
	if timerRe.MatchString(text) {
		return true
	}
	for _, prefix := range noisePrefixes {
		if rest, ok := strings.CutPrefix(text, prefix); ok {
			rest = strings.TrimSpace(rest)
			if rest == "" || timerRe.MatchString(rest) {
				return true
			}
		}
	}
	return false
}
