package pdftext

import (
	"strings"

	"github.com/gen2brain/go-fitz"
)

// pageBreak separates pages in flow output.
const pageBreak = "\n\n"

// ExtractFlow is the layout-preserving strategy backed by MuPDF. Each
// page is extracted with layout-aware ordering and pages are joined
// with a page-break separator. Empirically the best default for
// résumé-style and multi-column documents, which is why the
// orchestrator tries it first.
func ExtractFlow(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", &StrategyError{Strategy: "flow", Kind: FailureDependency, Err: err}
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			// A single unreadable page is not fatal; later pages may
			// still carry text.
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(pageBreak)
		}
		sb.WriteString(pageText)
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", &StrategyError{Strategy: "flow", Kind: FailureEmpty}
	}
	return out, nil
}
