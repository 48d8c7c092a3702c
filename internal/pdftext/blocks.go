package pdftext

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is the Y-coordinate tolerance (in points) for grouping
// text fragments into the same visual row.
const rowTolerance = 3.0

// wordGapFactor is the fraction of the font size beyond which a
// horizontal gap between fragments reads as a word boundary.
const wordGapFactor = 0.3

// ExtractBlocks is the layout-ordered strategy: positioned text
// fragments are grouped into rows, rows are ordered top-to-bottom and
// fragments within a row left-to-right, and rows are concatenated with
// line breaks. Ties keep original emission order. Non-text content is
// skipped implicitly; only text fragments carry positions here.
func ExtractBlocks(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &StrategyError{Strategy: "blocks", Kind: FailureDependency, Err: err}
	}
	defer f.Close()

	var sb strings.Builder
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		page := r.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		pageText := renderRows(groupRows(page.Content().Text))
		if pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteByte('\n')
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", &StrategyError{Strategy: "blocks", Kind: FailureEmpty}
	}
	return out, nil
}

// textRow is one visual line of fragments sharing a Y position.
type textRow struct {
	y         float64
	fragments []pdf.Text
}

// groupRows clusters fragments into rows by Y tolerance. Fragment order
// inside a row stays the emission order until sorted by X.
func groupRows(texts []pdf.Text) []textRow {
	var rows []textRow
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) <= rowTolerance {
				rows[i].fragments = append(rows[i].fragments, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, fragments: []pdf.Text{t}})
		}
	}
	// PDF user space grows upward: top of the page is the largest Y.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

// renderRows joins each row's fragments left-to-right, inserting a
// space when the horizontal gap exceeds the word-gap threshold for the
// fragment's font size.
func renderRows(rows []textRow) string {
	var sb strings.Builder
	for _, row := range rows {
		sort.SliceStable(row.fragments, func(i, j int) bool {
			return row.fragments[i].X < row.fragments[j].X
		})
		prevEnd := -1.0
		for _, frag := range row.fragments {
			if prevEnd >= 0 && frag.X-prevEnd > wordGap(frag.FontSize) {
				sb.WriteByte(' ')
			}
			sb.WriteString(frag.S)
			prevEnd = frag.X + frag.W
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		fontSize = 10
	}
	return fontSize * wordGapFactor
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
