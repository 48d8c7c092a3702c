package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/coverletter/internal/app"
	"github.com/hyperifyio/coverletter/internal/letter"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env first so the env lookups below and in the env fallback see
	// its values.
	_ = godotenv.Load()

	var (
		resumePath  string
		jobPath     string
		outputPath  string
		outputPDF   string
		llmProvider string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		temperature float64
		topP        float64
		words       int
		cleanResume bool
		personalize string
		enableOCR   bool
		dumpDir     string
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		configPath  string
		verbose     bool
	)

	flag.StringVar(&resumePath, "resume", "", "Path to resume file (PDF, DOCX, or TXT)")
	flag.StringVar(&jobPath, "job", "", "Path to job description file (PDF, DOCX, or TXT)")
	flag.StringVar(&outputPath, "output", app.DefaultOutputPath, "Path to write the generated cover letter")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to additionally write the letter as PDF")
	flag.StringVar(&llmProvider, "llm.provider", os.Getenv("LLM_PROVIDER"), "Generation backend: ollama or openai")
	flag.StringVar(&llmBaseURL, "llm.base", app.DefaultLLMBaseURL, "Generation endpoint base URL")
	flag.StringVar(&llmModel, "llm.model", app.DefaultLLMModel, "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible servers")
	flag.Float64Var(&temperature, "llm.temperature", 0.7, "Sampling temperature (0.0-1.0)")
	flag.Float64Var(&topP, "llm.topP", 0.9, "Nucleus sampling cutoff (0.0-1.0)")
	flag.IntVar(&words, "words", app.DefaultWordLimit, "Maximum words for the cover letter")
	flag.BoolVar(&cleanResume, "clean-resume", false, "Reformat extracted resume text through the model before generation")
	flag.StringVar(&personalize, "personalize", "", "Revise the existing letter per this request instead of generating")
	flag.BoolVar(&enableOCR, "enable-ocr", false, "Allow OCR fallback for image-only PDFs (slow)")
	flag.StringVar(&dumpDir, "dump.dir", "", "Directory for intermediate extraction dumps (empty disables)")
	flag.StringVar(&cacheDir, "cache.dir", "", "LLM response cache directory (empty disables)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		ResumePath:         resumePath,
		JobPath:            jobPath,
		OutputPath:         outputPath,
		OutputPDFPath:      outputPDF,
		LLMProvider:        llmProvider,
		LLMBaseURL:         llmBaseURL,
		LLMModel:           llmModel,
		LLMAPIKey:          llmKey,
		Temperature:        float32(temperature),
		TopP:               float32(topP),
		WordLimit:          words,
		CleanResume:        cleanResume,
		PersonalizeRequest: personalize,
		EnableOCR:          enableOCR,
		DumpDir:            dumpDir,
		CacheDir:           cacheDir,
		CacheMaxAge:        cacheMaxAge,
		CacheClear:         cacheClear,
		Verbose:            verbose,
	}

	// Precedence: flags > env > config file.
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(0)
		}
		app.ApplyFileConfig(&cfg, fc)
		app.ApplyEnvOverrides(&cfg)
	} else {
		app.ApplyEnvToConfig(&cfg)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		flag.Usage()
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(0)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: nonzero only when no text could be extracted
		// or the model produced no substantive letter; other errors are
		// completion-with-warnings.
		if errors.Is(err, app.ErrNoExtractedText) || errors.Is(err, letter.ErrNoSubstantiveLetter) {
			os.Exit(2)
		}
		os.Exit(0)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
