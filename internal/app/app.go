package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/coverletter/internal/cache"
	"github.com/hyperifyio/coverletter/internal/docload"
	"github.com/hyperifyio/coverletter/internal/letter"
	"github.com/hyperifyio/coverletter/internal/llm"
	"github.com/hyperifyio/coverletter/internal/pdftext"
	"github.com/hyperifyio/coverletter/internal/validate"
)

// ErrNoExtractedText is returned when a source document yields no
// usable text. Per the exit code policy, this results in a non-zero
// process exit.
var ErrNoExtractedText = errors.New("no extracted text")

type App struct {
	cfg       Config
	generator *letter.Generator
	extractor *pdftext.Orchestrator
}

func New(cfg Config) (*App, error) {
	client, err := llm.New(cfg.LLMProvider, llm.Options{
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		APIKey:      cfg.LLMAPIKey,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
	})
	if err != nil {
		return nil, err
	}

	var llmCache *cache.LLMCache
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Ignore purge errors to avoid failing startup.
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		llmCache = &cache.LLMCache{Dir: cfg.CacheDir}
	}

	extractor := pdftext.NewOrchestrator()
	extractor.EnableOCR = cfg.EnableOCR

	return &App{
		cfg: cfg,
		generator: &letter.Generator{
			Client:    client,
			Cache:     llmCache,
			Model:     cfg.LLMModel,
			WordLimit: cfg.WordLimit,
		},
		extractor: extractor,
	}, nil
}

// Run executes the pipeline: read both documents, extract text, build
// the prompt, call the model, and write the letter artifacts. In
// personalize mode it revises the existing letter instead.
func (a *App) Run(ctx context.Context) error {
	if strings.TrimSpace(a.cfg.PersonalizeRequest) != "" {
		return a.personalize(ctx)
	}

	resumeText, err := a.readDocument(a.cfg.ResumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	a.dump("extracted_resume.txt", resumeText)
	if strings.TrimSpace(resumeText) == "" {
		return fmt.Errorf("resume %s: %w", a.cfg.ResumePath, ErrNoExtractedText)
	}

	jobText, err := a.readDocument(a.cfg.JobPath)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}
	a.dump("extracted_job.txt", jobText)
	if strings.TrimSpace(jobText) == "" {
		return fmt.Errorf("job description %s: %w", a.cfg.JobPath, ErrNoExtractedText)
	}

	if a.cfg.CleanResume {
		log.Info().Msg("cleaning resume text")
		resumeText = a.generator.CleanResume(ctx, resumeText)
		a.dump("generated_resume_cleaned.txt", resumeText)
	}

	a.warnOnResumeQuality(resumeText)

	log.Info().Str("model", a.cfg.LLMModel).Msg("generating cover letter")
	letterText, err := a.generator.Generate(ctx, resumeText, jobText)
	if err != nil {
		return err
	}

	return a.writeLetter(letterText)
}

// personalize reads the previously generated letter and applies the
// requested modification.
func (a *App) personalize(ctx context.Context) error {
	current, err := os.ReadFile(a.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("read existing letter: %w", err)
	}
	if strings.TrimSpace(string(current)) == "" {
		return fmt.Errorf("existing letter %s: %w", a.cfg.OutputPath, ErrNoExtractedText)
	}

	log.Info().Str("model", a.cfg.LLMModel).Msg("personalizing cover letter")
	updated, err := a.generator.Personalize(ctx, string(current), a.cfg.PersonalizeRequest)
	if err != nil {
		return err
	}
	return a.writeLetter(updated)
}

// readDocument extracts text from one input document. PDFs go through
// the strategy orchestrator, which degrades instead of failing; other
// kinds go through the direct readers.
func (a *App) readDocument(path string) (string, error) {
	kind, err := docload.DetectKind(path)
	if err != nil {
		return "", err
	}
	if kind == docload.KindPDF {
		return a.extractor.Extract(path), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return docload.Read(docload.Document{Data: data, Kind: kind})
}

// warnOnResumeQuality logs what the resume heuristics found. Warnings
// only; generation proceeds regardless.
func (a *App) warnOnResumeQuality(resumeText string) {
	if !validate.ResumeText(resumeText) {
		log.Warn().Msg("extracted text does not look like a resume; generating anyway")
	}
	s := validate.KeySections(resumeText)
	if !s.HasContact {
		log.Warn().Msg("resume appears to lack contact information")
	}
	if !s.HasExperience {
		log.Warn().Msg("resume appears to lack an experience section")
	}
	if !s.HasEducation {
		log.Warn().Msg("resume appears to lack an education section")
	}
	if !s.HasSkills {
		log.Warn().Msg("resume appears to lack a skills section")
	}
}

// writeLetter persists the letter text and the optional PDF rendering.
func (a *App) writeLetter(text string) error {
	if err := os.WriteFile(a.cfg.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write letter: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote cover letter")
	a.dump("generated_cover_letter.txt", text)

	if a.cfg.OutputPDFPath != "" {
		if err := writeLetterPDF(text, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write letter pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote cover letter PDF")
	}
	return nil
}
