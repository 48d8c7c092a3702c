package pdftext

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/coverletter/internal/normalize"
	"github.com/hyperifyio/coverletter/internal/section"
)

// Orchestrator selects among extraction strategies with a fixed
// preference order and degrades instead of failing: Extract always
// returns text, possibly an error-describing string, never an error
// value. Strategy hooks are fields so tests can simulate failures
// without crafting broken PDF files.
type Orchestrator struct {
	// Primary is tried first and its output returned untouched on
	// success. Defaults to the layout-preserving flow strategy.
	Primary Strategy
	// Fallback runs when Primary fails; its output additionally goes
	// through normalization and section segmentation. Defaults to the
	// layout-ordered blocks strategy.
	Fallback Strategy
	// EnableOCR permits the rasterize-and-OCR pass when both text
	// strategies fail and the quality probe points at an image-only
	// document. Off by default; OCR latency is unbounded on large
	// documents.
	EnableOCR bool
	// OCR is the last-resort extractor, overridable in tests.
	OCR func(path string) (string, error)
	// ProbeQuality feeds the OCR gate. Overridable in tests.
	ProbeQuality func(path, extracted string) (Quality, error)
	// Diagnose is the best-effort comparison pass whose per-strategy
	// output lengths are logged. Nil disables it; its outcome never
	// affects the returned text.
	Diagnose func(path string) map[string]string

	segmenter *section.Segmenter
}

// NewOrchestrator wires the default strategy preference: flow first,
// blocks as fallback, diagnostics on, OCR off.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		Primary:      Strategy{Name: "flow", Extract: ExtractFlow},
		Fallback:     Strategy{Name: "blocks", Extract: ExtractBlocks},
		OCR:          ExtractOCR,
		ProbeQuality: Probe,
		Diagnose:     Diagnose,
		segmenter:    section.New(nil),
	}
}

// Extract converts a PDF path into text. Preference order: primary
// strategy verbatim; fallback strategy cleaned through normalization
// and segmentation; OCR when enabled and warranted; otherwise a
// diagnostic string embedding the original failure. Never returns an
// error and never panics past this boundary.
func (o *Orchestrator) Extract(path string) string {
	o.logDiagnostics(path)

	text, primaryErr := o.Primary.Extract(path)
	if primaryErr == nil {
		return text
	}
	log.Warn().Err(primaryErr).Str("strategy", o.Primary.Name).
		Msg("primary extraction failed; falling back")

	fbText, fbErr := o.Fallback.Extract(path)
	if fbErr == nil {
		return o.cleanup(fbText)
	}
	log.Warn().Err(fbErr).Str("strategy", o.Fallback.Name).
		Msg("fallback extraction failed")

	if o.EnableOCR && o.OCR != nil {
		if o.shouldOCR(path) {
			if ocrText, err := o.OCR(path); err == nil {
				return o.cleanup(ocrText)
			} else {
				log.Warn().Err(err).Msg("ocr extraction failed")
			}
		}
	}

	return fmt.Sprintf("Error extracting PDF: %v", primaryErr)
}

// cleanup applies the normalizer and segmenter to fallback output and
// renders the sections back to text.
func (o *Orchestrator) cleanup(text string) string {
	normalized := normalize.Normalize(text)
	return o.segmenter.SegmentText(normalized).Render()
}

// shouldOCR gates the expensive rasterization pass on the quality
// probe. Probe failures default to attempting OCR: when even the
// structural read fails, rasterization is the only option left.
func (o *Orchestrator) shouldOCR(path string) bool {
	if o.ProbeQuality == nil {
		return true
	}
	q, err := o.ProbeQuality(path, "")
	if err != nil {
		return true
	}
	return q.NeedsOCR()
}

// logDiagnostics runs the hybrid comparison pass and logs a length
// summary per strategy. Best effort: failures here never influence the
// extraction result.
func (o *Orchestrator) logDiagnostics(path string) {
	if o.Diagnose == nil {
		return
	}
	results := o.Diagnose(path)
	for _, s := range TextStrategies() {
		if out, ok := results[s.Name]; ok {
			log.Debug().Str("strategy", s.Name).Int("chars", len(out)).
				Msg("extraction diagnostic")
		}
	}
}
