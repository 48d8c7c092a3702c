// Package normalize cleans raw extracted résumé text before prompting.
//
// The cleanup is heuristic and lossy on purpose: column-merged PDF text
// tends to glue words together ("ExperienceSoftware"), and the repair
// splits at lowercase→uppercase boundaries even when that breaks
// legitimate tokens with internal capitals (acronyms, product names).
// Callers should treat the output as prompt fodder, not as a faithful
// rendition of the document.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRunRe = regexp.MustCompile(`\s+`)
	lowerUpperRe    = regexp.MustCompile(`([a-z])([A-Z])`)
	blankLineRunRe  = regexp.MustCompile(`\n\s*\n`)
)

// Normalize collapses whitespace runs to single spaces, inserts a
// separating space at every word→uppercase boundary (general pass, then
// a lowercase→uppercase pass), collapses blank-line runs to one
// paragraph break, and trims the result. Never fails; empty in, empty
// out. Idempotent: Normalize(Normalize(t)) == Normalize(t).
func Normalize(text string) string {
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	text = splitWordUpperBoundaries(text)
	text = lowerUpperRe.ReplaceAllString(text, "$1 $2")
	text = blankLineRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// splitWordUpperBoundaries inserts a space between a word character and
// an immediately following uppercase letter. A rune scan rather than a
// regexp so that runs of capitals split at every boundary, which keeps
// the whole cleanup idempotent.
func splitWordUpperBoundaries(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	var prev rune
	for i, r := range text {
		if i > 0 && unicode.IsUpper(r) && isWordRune(prev) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
		prev = r
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
