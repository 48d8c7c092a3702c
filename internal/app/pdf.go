package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeLetterPDF renders the plain-text letter as a simple A4 PDF,
// preserving paragraph breaks. No layout beyond line wrapping.
func writeLetterPDF(text string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if strings.TrimSpace(line) == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(outPath)
}
