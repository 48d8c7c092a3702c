package docload

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// maxDocxXMLDepth bounds XML nesting while walking word/document.xml.
// Billion-laughs style archives fail fast instead of exhausting memory.
const maxDocxXMLDepth = 256

// ReadDocx extracts text from .docx bytes by reading word/document.xml
// from the ZIP archive and joining paragraph texts in document order,
// one paragraph per line.
func ReadDocx(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open zip: %w", err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var paragraphs []string
	var currentText strings.Builder
	var inParagraph bool
	depth := 0

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > maxDocxXMLDepth {
				return "", fmt.Errorf("document.xml exceeds nesting depth %d", maxDocxXMLDepth)
			}
			if t.Name.Local == "p" {
				inParagraph = true
				currentText.Reset()
			}

		case xml.CharData:
			if inParagraph {
				currentText.Write(t)
			}

		case xml.EndElement:
			depth--
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				paragraphs = append(paragraphs, currentText.String())
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
