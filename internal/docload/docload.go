// Package docload models an uploaded document as a byte blob with a
// declared kind and provides the one-shot readers for the non-PDF
// formats. PDF extraction is deliberately elsewhere (internal/pdftext);
// these readers are trivial and deterministic: the same bytes always
// yield the same text.
package docload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies a supported document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDocx Kind = "docx"
	KindText Kind = "txt"
)

// Document is an immutable uploaded blob plus its declared kind. It is
// consumed once by the matching reader or extractor and then discarded;
// nothing here persists.
type Document struct {
	Data []byte
	Kind Kind
}

// DetectKind maps a file extension to a document kind.
func DetectKind(path string) (Kind, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDocx, nil
	case ".txt", ".text":
		return KindText, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", ext)
	}
}

// Read dispatches to the reader for the document's kind. PDF documents
// are not handled here; callers route those through the extraction
// orchestrator instead.
func Read(doc Document) (string, error) {
	switch doc.Kind {
	case KindDocx:
		return ReadDocx(doc.Data)
	case KindText:
		return ReadPlainText(doc.Data)
	case KindPDF:
		return "", fmt.Errorf("pdf documents go through the extraction pipeline, not docload")
	default:
		return "", fmt.Errorf("no reader for kind: %s", doc.Kind)
	}
}
