package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	ResumePath string
	JobPath    string
	OutputPath string
	// OutputPDFPath, when set, additionally renders the letter as PDF.
	OutputPDFPath string

	// LLM
	LLMProvider string
	LLMBaseURL  string
	LLMModel    string
	LLMAPIKey   string
	Temperature float32
	TopP        float32

	// Generation
	WordLimit int
	// CleanResume routes extracted resume text through a model
	// reformatting pass before prompt assembly.
	CleanResume bool
	// PersonalizeRequest, when non-empty, switches to personalize mode:
	// the existing letter at OutputPath is revised per the request
	// instead of generating from scratch.
	PersonalizeRequest string

	// Extraction
	EnableOCR bool
	// DumpDir, when set, receives intermediate extraction output for
	// debugging.
	DumpDir string

	// Behavior
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool
	Verbose     bool
}
