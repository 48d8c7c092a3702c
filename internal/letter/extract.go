package letter

import (
	"regexp"
	"strings"
)

var (
	dashFenceRe = regexp.MustCompile(`(?s)---\s*\n(.*?)\n---`)
	hereIsRe    = regexp.MustCompile(`(?is)(Here (is|'s|’s|s the)[^\n]*:\s*\n+)(.*)`)
	thinkRe     = regexp.MustCompile(`(?is)<think>.*?</think>`)
)

// ExtractBetweenDashes pulls usable content out of a chatty model
// response. Preference order: the block between the first pair of ---
// fences, then everything after a "Here is the ...:" lead-in, then the
// whole response with any <think> block removed. Returns a fixed
// placeholder when nothing survives.
func ExtractBetweenDashes(response string) string {
	if m := dashFenceRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := hereIsRe.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[3])
	}
	fallback := strings.TrimSpace(thinkRe.ReplaceAllString(response, ""))
	if fallback == "" {
		return "No valid content found."
	}
	return fallback
}
