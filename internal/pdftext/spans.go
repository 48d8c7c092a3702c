package pdftext

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractSpans is the structured strategy: the page→row→span text tree
// is concatenated in document order with a line break after each row
// and a blank line after each page block. More verbose than the blocks
// strategy but preserves more inline structure.
func ExtractSpans(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &StrategyError{Strategy: "spans", Kind: FailureDependency, Err: err}
	}
	defer f.Close()

	var sb strings.Builder
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		page := r.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", &StrategyError{Strategy: "spans", Kind: FailureParse, Err: err}
		}
		wrote := false
		for _, row := range rows {
			for _, span := range row.Content {
				sb.WriteString(span.S)
			}
			sb.WriteByte('\n')
			wrote = true
		}
		if wrote {
			sb.WriteByte('\n')
		}
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", &StrategyError{Strategy: "spans", Kind: FailureEmpty}
	}
	return out, nil
}
