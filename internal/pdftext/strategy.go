// Package pdftext turns a PDF file into prompt-ready text. Several
// competing extraction strategies with different layout trade-offs run
// behind a fixed-preference orchestrator that degrades gracefully when
// the preferred strategy fails. All work is synchronous and sequential;
// callers that need wall-clock bounds should impose their own.
package pdftext

import "fmt"

// FailureKind classifies why a single extraction strategy failed.
type FailureKind string

const (
	// FailureDependency means the underlying parser could not open or
	// process the document at all (corrupt file, unsupported encoding).
	FailureDependency FailureKind = "dependency-error"
	// FailureParse means the document was partially processed but the
	// structural data came back malformed or missing.
	FailureParse FailureKind = "parse-error"
	// FailureEmpty means the strategy completed without error but
	// produced no usable text.
	FailureEmpty FailureKind = "empty-output"
)

// StrategyError is the per-strategy failure result. Strategies convert
// every underlying fault into one of these; nothing panics past the
// strategy boundary.
type StrategyError struct {
	Strategy string
	Kind     FailureKind
	Err      error
}

func (e *StrategyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Strategy, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Strategy, e.Kind)
}

func (e *StrategyError) Unwrap() error { return e.Err }

// Strategy is one self-contained extraction algorithm: a name plus a
// pure path→text function with its own failure mode.
type Strategy struct {
	Name    string
	Extract func(path string) (string, error)
}

// TextStrategies returns the four primary text strategies in fixed
// order: layout-ordered blocks, structured spans, layout-preserving
// flow, constrained flow. The diagnostic pass and tests iterate this
// list; the orchestrator picks from it by name.
func TextStrategies() []Strategy {
	return []Strategy{
		{Name: "blocks", Extract: ExtractBlocks},
		{Name: "spans", Extract: ExtractSpans},
		{Name: "flow", Extract: ExtractFlow},
		{Name: "constrained", Extract: func(path string) (string, error) {
			return ExtractConstrained(path, DefaultLayoutParams())
		}},
	}
}
