package pdftext

import (
	"bytes"
	"image/png"
	"io"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gen2brain/go-fitz"
)

// ocrDPI renders pages at twice the PDF's native 72 dpi, which is the
// sweet spot between OCR accuracy and rasterization cost.
const ocrDPI = 144

// ocrImage runs optical character recognition over one PNG-encoded
// page bitmap. Package-level so tests can substitute a fake engine;
// the default routes through docconv's tesseract-backed image
// converter.
var ocrImage = func(r io.Reader) (string, error) {
	res, err := docconv.Convert(r, "image/png", false)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

// ExtractOCR is the last-resort strategy for image-only or
// malformed-text PDFs: every page is rasterized at 2× scale and run
// through OCR. Slow in proportion to page count; the orchestrator only
// reaches for it when explicitly enabled.
func ExtractOCR(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", &StrategyError{Strategy: "ocr", Kind: FailureDependency, Err: err}
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, ocrDPI)
		if err != nil {
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			continue
		}
		pageText, err := ocrImage(&buf)
		if err != nil {
			return "", &StrategyError{Strategy: "ocr", Kind: FailureParse, Err: err}
		}
		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}

	out := sb.String()
	if strings.TrimSpace(out) == "" {
		return "", &StrategyError{Strategy: "ocr", Kind: FailureEmpty}
	}
	return out, nil
}
