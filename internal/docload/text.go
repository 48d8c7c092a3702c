package docload

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadPlainText decodes plain-text bytes as UTF-8. Files with a UTF-8,
// UTF-16 LE, or UTF-16 BE byte-order mark are decoded accordingly so
// that résumés exported from word processors still read cleanly.
func ReadPlainText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		return string(data[3:]), nil
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}), bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
		if err != nil {
			return "", fmt.Errorf("decode utf-16: %w", err)
		}
		return string(decoded), nil
	default:
		return string(data), nil
	}
}
