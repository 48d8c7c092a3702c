package pdftext

import "fmt"

// Diagnose runs the four primary text strategies against the same
// document and returns strategy name → output, with per-strategy
// failures rendered as error strings instead of propagating. Purely
// comparative: it does not pick a winner.
func Diagnose(path string) map[string]string {
	return diagnoseWith(path, TextStrategies())
}

func diagnoseWith(path string, strategies []Strategy) map[string]string {
	results := make(map[string]string, len(strategies))
	for _, s := range strategies {
		text, err := s.Extract(path)
		if err != nil {
			results[s.Name] = fmt.Sprintf("Error: %v", err)
			continue
		}
		results[s.Name] = text
	}
	return results
}
