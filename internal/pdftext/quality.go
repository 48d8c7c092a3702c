package pdftext

import (
	"os"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Quality captures metrics about how well text extraction went for one
// document, used to decide whether the OCR fallback is worth its cost.
type Quality struct {
	PageCount       int
	CharsPerPage    float64
	PrintableRatio  float64
	WordlikeRatio   float64
	HasImageStreams bool
}

// NeedsOCR reports whether the document likely needs OCR: nearly no
// text per page despite embedded images, or mostly unprintable output.
func (q Quality) NeedsOCR() bool {
	return (q.CharsPerPage < 50 && q.HasImageStreams) || q.PrintableRatio < 0.85
}

// Probe inspects the PDF structure (page count, image streams) and the
// text a strategy managed to extract from it.
func Probe(path string, extracted string) (Quality, error) {
	f, err := os.Open(path)
	if err != nil {
		return Quality{}, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return Quality{}, err
	}

	q := Quality{
		PageCount:       ctx.PageCount,
		PrintableRatio:  printableRatio(extracted),
		WordlikeRatio:   wordlikeRatio(extracted),
		HasImageStreams: detectImageStreams(ctx),
	}
	if ctx.PageCount > 0 {
		q.CharsPerPage = float64(len([]rune(extracted))) / float64(ctx.PageCount)
	}
	return q, nil
}

// detectImageStreams checks whether the PDF carries image XObjects.
func detectImageStreams(ctx *model.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	// Fallback: scan the xref table for image-subtype stream objects.
	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}

// printableRatio returns the fraction of printable characters,
// discounting private-use, replacement, and control runes that signal
// a broken font encoding.
func printableRatio(text string) float64 {
	if len(text) == 0 {
		return 1.0
	}
	total := 0
	printable := 0
	for _, r := range text {
		total++
		if isGarbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(total)
}

func isGarbageRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	if r < 0x0020 && r != '\n' && r != '\r' && r != '\t' {
		return true
	}
	return false
}

// wordlikeRatio returns the fraction of tokens whose length looks like
// a real word (2-15 runes).
func wordlikeRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	wordlike := 0
	for _, f := range fields {
		if n := len([]rune(f)); n >= 2 && n <= 15 {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(fields))
}
