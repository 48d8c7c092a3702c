package letter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/coverletter/internal/cache"
	"github.com/hyperifyio/coverletter/internal/llm"
)

// ErrNoSubstantiveLetter indicates the model produced no usable letter
// text. Mapped to a distinct exit code by the CLI.
var ErrNoSubstantiveLetter = errors.New("no substantive letter")

// Generator turns extracted document text into a cover letter through
// the configured model, with optional response caching.
type Generator struct {
	Client llm.Client
	Cache  *cache.LLMCache
	// Model is only used for cache keying; the client carries its own
	// model selection.
	Model     string
	WordLimit int
}

// Generate writes a cover letter from resume text and a job
// description.
func (g *Generator) Generate(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if g.Client == nil {
		return "", errors.New("generator not configured")
	}
	prompt := CoverLetterPrompt(resumeText, jobDescription, g.WordLimit)
	out, err := g.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrNoSubstantiveLetter
	}
	return out, nil
}

// Personalize revises an existing letter according to a user request.
func (g *Generator) Personalize(ctx context.Context, currentLetter, userRequest string) (string, error) {
	if g.Client == nil {
		return "", errors.New("generator not configured")
	}
	out, err := g.complete(ctx, PersonalizationPrompt(currentLetter, userRequest))
	if err != nil {
		return "", fmt.Errorf("personalize cover letter: %w", err)
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrNoSubstantiveLetter
	}
	return out, nil
}

// CleanResume reformats raw extracted resume text through the model.
// Any failure returns the original text untouched; a messy resume
// still beats no resume.
func (g *Generator) CleanResume(ctx context.Context, resumeText string) string {
	if strings.TrimSpace(resumeText) == "" {
		return ""
	}
	if g.Client == nil {
		return resumeText
	}
	out, err := g.complete(ctx, CleaningPrompt(resumeText))
	if err != nil {
		log.Warn().Err(err).Msg("resume cleaning failed; using original text")
		return resumeText
	}
	cleaned := ExtractBetweenDashes(out)
	if strings.TrimSpace(cleaned) == "" {
		return resumeText
	}
	return cleaned
}

// complete issues the model call with cache lookup and one
// short-backoff retry on any client error, status errors included.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	var key string
	if g.Cache != nil {
		key = cache.KeyFrom(g.Model, prompt)
		if raw, ok, _ := g.Cache.Get(ctx, key); ok {
			var entry struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal(raw, &entry); err == nil && strings.TrimSpace(entry.Text) != "" {
				return entry.Text, nil
			}
		}
	}

	out, err := g.Client.Generate(ctx, prompt)
	if err != nil {
		if sleeper := sleepFunc; sleeper != nil {
			sleeper(100)
		} else {
			defaultSleep(100)
		}
		out, err = g.Client.Generate(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("model call (after retry): %w", err)
		}
	}

	if g.Cache != nil && strings.TrimSpace(out) != "" {
		payload, _ := json.Marshal(map[string]string{"text": out})
		_ = g.Cache.Save(ctx, key, payload)
	}
	return out, nil
}

// sleepFunc allows tests to inject a deterministic sleep hook measured
// in milliseconds. When nil, defaultSleep is used.
var sleepFunc func(ms int)

func defaultSleep(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
