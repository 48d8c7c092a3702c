package pdftext

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// LayoutParams tunes how positioned fragments are grouped into lines
// and words when the default heuristics misjudge column breaks. The
// margins are fractions of the fragment font size.
type LayoutParams struct {
	// WordMargin: horizontal gap above which two fragments on the same
	// line are separate words.
	WordMargin float64
	// CharMargin: horizontal gap above which fragments no longer join
	// into one line run and a hard break is emitted instead.
	CharMargin float64
	// LineMargin: vertical distance within which fragments share a line.
	LineMargin float64
}

// DefaultLayoutParams mirrors the tuning the original extraction used
// for documents where default column heuristics fail.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		WordMargin: 0.1,
		CharMargin: 2.0,
		LineMargin: 0.5,
	}
}

// ExtractConstrained is the tunable-layout strategy: fragments are
// grouped into lines using LineMargin and joined into words using
// WordMargin/CharMargin, all relative to font size. Deterministic for
// identical fragment coordinates.
func ExtractConstrained(path string, params LayoutParams) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &StrategyError{Strategy: "constrained", Kind: FailureDependency, Err: err}
	}
	defer f.Close()

	var sb strings.Builder
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		page := r.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		pageText := renderConstrained(page.Content().Text, params)
		if pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", &StrategyError{Strategy: "constrained", Kind: FailureEmpty}
	}
	return out, nil
}

func renderConstrained(texts []pdf.Text, params LayoutParams) string {
	var lines []textRow
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		placed := false
		for i := range lines {
			tolerance := lineTolerance(t.FontSize, params.LineMargin)
			if abs(lines[i].y-t.Y) <= tolerance {
				lines[i].fragments = append(lines[i].fragments, t)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, textRow{y: t.Y, fragments: []pdf.Text{t}})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	var sb strings.Builder
	for _, line := range lines {
		sort.SliceStable(line.fragments, func(i, j int) bool {
			return line.fragments[i].X < line.fragments[j].X
		})
		prevEnd := -1.0
		for _, frag := range line.fragments {
			size := frag.FontSize
			if size <= 0 {
				size = 10
			}
			gap := frag.X - prevEnd
			switch {
			case prevEnd < 0:
				// first fragment on the line
			case gap > size*params.CharMargin:
				// Too far to be the same flow; treat as a column break.
				sb.WriteString("  ")
			case gap > size*params.WordMargin:
				sb.WriteByte(' ')
			}
			sb.WriteString(frag.S)
			prevEnd = frag.X + frag.W
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

func lineTolerance(fontSize, lineMargin float64) float64 {
	if fontSize <= 0 {
		fontSize = 10
	}
	tol := fontSize * lineMargin
	if tol < rowTolerance {
		tol = rowTolerance
	}
	return tol
}
