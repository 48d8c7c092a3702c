package docload

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		path    string
		want    Kind
		wantErr bool
	}{
		{path: "resume.pdf", want: KindPDF},
		{path: "Resume.PDF", want: KindPDF},
		{path: "cv.docx", want: KindDocx},
		{path: "notes.txt", want: KindText},
		{path: "notes.text", want: KindText},
		{path: "archive.doc", wantErr: true},
		{path: "noextension", wantErr: true},
	}
	for _, tc := range cases {
		got, err := DetectKind(tc.path)
		if tc.wantErr {
			if err == nil {
				t.Errorf("DetectKind(%q): expected error, got %q", tc.path, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("DetectKind(%q): %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("DetectKind(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// buildDocx assembles a minimal .docx archive with the given
// document.xml body.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(documentXML)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestReadDocx(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Experience: </w:t></w:r><w:r><w:t>backend developer</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`)

	got, err := ReadDocx(data)
	if err != nil {
		t.Fatalf("ReadDocx: %v", err)
	}
	want := "Jane Doe\nExperience: backend developer\n"
	if got != want {
		t.Fatalf("ReadDocx = %q, want %q", got, want)
	}
}

func TestReadDocxNotAZip(t *testing.T) {
	if _, err := ReadDocx([]byte("not a zip archive")); err == nil {
		t.Fatal("expected error for non-zip input")
	}
}

func TestReadDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, _ := w.Create("word/styles.xml")
	_, _ = f.Write([]byte("<styles/>"))
	_ = w.Close()

	if _, err := ReadDocx(buf.Bytes()); err == nil {
		t.Fatal("expected error for archive without document.xml")
	}
}

func TestReadDocxDepthGuard(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<w:document xmlns:w="http://example.com/w">`)
	for i := 0; i < 400; i++ {
		sb.WriteString("<w:sdt>")
	}
	for i := 0; i < 400; i++ {
		sb.WriteString("</w:sdt>")
	}
	sb.WriteString(`</w:document>`)

	if _, err := ReadDocx(buildDocx(t, sb.String())); err == nil {
		t.Fatal("expected nesting depth error")
	}
}

func TestReadPlainText(t *testing.T) {
	utf16le := func(s string) []byte {
		out := []byte{0xFF, 0xFE}
		for _, r := range s {
			out = append(out, byte(r), byte(r>>8))
		}
		return out
	}

	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "plain utf-8", in: []byte("hello"), want: "hello"},
		{name: "utf-8 bom stripped", in: []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, want: "hi"},
		{name: "utf-16 le", in: utf16le("resume"), want: "resume"},
		{name: "empty", in: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadPlainText(tc.in)
			if err != nil {
				t.Fatalf("ReadPlainText: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ReadPlainText = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadDispatch(t *testing.T) {
	if _, err := Read(Document{Data: []byte("x"), Kind: KindPDF}); err == nil {
		t.Fatal("expected error routing pdf through Read")
	}
	got, err := Read(Document{Data: []byte("plain"), Kind: KindText})
	if err != nil || got != "plain" {
		t.Fatalf("Read text = %q, %v", got, err)
	}
}
