// Package section partitions normalized résumé text into labeled
// sections by matching lines against an ordered list of header keyword
// patterns. Unmatched lines accumulate under the section most recently
// opened, starting from the "general" catch-all.
package section

import (
	"regexp"
	"strings"
)

// General is the catch-all label for lines seen before any header.
const General = "general"

// Pattern pairs a section label with the keyword regexp that opens it.
// Patterns are tried in slice order; the first match wins when a line
// could satisfy several.
type Pattern struct {
	Label string
	Re    *regexp.Regexp
}

// DefaultPatterns returns the résumé header vocabulary in priority
// order: contact, education, experience, skills, summary.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{Label: "contact", Re: regexp.MustCompile(`contact|phone|email|address`)},
		{Label: "education", Re: regexp.MustCompile(`education|degree|university|college`)},
		{Label: "experience", Re: regexp.MustCompile(`experience|work|employment|career`)},
		{Label: "skills", Re: regexp.MustCompile(`skills|technical|competencies`)},
		{Label: "summary", Re: regexp.MustCompile(`summary|objective|overview|profile`)},
	}
}

// SectionedText maps section labels to their lines while remembering the
// order in which labels first appeared in the source document.
type SectionedText struct {
	Order []string
	Lines map[string][]string
}

func newSectionedText() SectionedText {
	return SectionedText{Lines: make(map[string][]string)}
}

// start opens (or resets) a section. Re-encountering a label discards
// its earlier lines: last-wins, matching the observed behavior of the
// segmentation this reproduces.
func (s *SectionedText) start(label string) {
	if _, seen := s.Lines[label]; !seen {
		s.Order = append(s.Order, label)
	}
	s.Lines[label] = []string{}
}

func (s *SectionedText) append(label, line string) {
	if _, seen := s.Lines[label]; !seen {
		s.Order = append(s.Order, label)
	}
	s.Lines[label] = append(s.Lines[label], line)
}

// Render flattens the sections back to text in insertion order, one
// header line per section followed by its lines. Deterministic.
func (s SectionedText) Render() string {
	var sb strings.Builder
	for _, label := range s.Order {
		lines := s.Lines[label]
		if label == General && len(lines) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.ToUpper(label))
		sb.WriteByte('\n')
		for _, line := range lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Input is the typed union accepted by Segment. Text that already went
// through segmentation upstream (for example a diagnostic mapping from
// a failure path) must pass through untouched.
type Input interface {
	segmentInput()
}

// RawText is unsegmented text input.
type RawText string

func (RawText) segmentInput() {}

// PreSegmented wraps an already-structured result; Segment returns it
// unchanged.
type PreSegmented SectionedText

func (PreSegmented) segmentInput() {}

// Segmenter splits text into sections using a configured pattern list.
type Segmenter struct {
	patterns []Pattern
}

// New returns a Segmenter. A nil or empty pattern list selects
// DefaultPatterns.
func New(patterns []Pattern) *Segmenter {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}
	return &Segmenter{patterns: patterns}
}

// Segment processes input line by line. Blank lines are skipped. A line
// matching a header pattern (case-insensitively, on the trimmed line)
// switches the current section; any other line is appended verbatim to
// the current section. Every non-blank line lands in exactly one
// section. Never fails.
func (sg *Segmenter) Segment(in Input) SectionedText {
	switch v := in.(type) {
	case PreSegmented:
		return SectionedText(v)
	case RawText:
		return sg.segmentText(string(v))
	default:
		return newSectionedText()
	}
}

// SegmentText is a convenience wrapper over Segment for plain strings.
func (sg *Segmenter) SegmentText(text string) SectionedText {
	return sg.Segment(RawText(text))
}

func (sg *Segmenter) segmentText(text string) SectionedText {
	sections := newSectionedText()
	current := General

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		matched := false
		for _, p := range sg.patterns {
			if p.Re.MatchString(lower) {
				current = p.Label
				sections.start(current)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		sections.append(current, line)
	}

	return sections
}
