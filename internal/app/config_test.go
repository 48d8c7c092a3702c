package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyEnvToConfigFillsUnsetOnly(t *testing.T) {
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_BASE_URL", "http://env:11434")
	t.Setenv("WORD_LIMIT", "120")
	t.Setenv("CACHE_MAX_AGE", "24h")
	t.Setenv("CLEAN_RESUME", "true")

	cfg := Config{LLMModel: "flag-model"}
	ApplyEnvToConfig(&cfg)

	if cfg.LLMModel != "flag-model" {
		t.Errorf("explicit value overwritten: %q", cfg.LLMModel)
	}
	if cfg.LLMBaseURL != "http://env:11434" {
		t.Errorf("base url = %q", cfg.LLMBaseURL)
	}
	if cfg.WordLimit != 120 {
		t.Errorf("word limit = %d", cfg.WordLimit)
	}
	if cfg.CacheMaxAge != 24*time.Hour {
		t.Errorf("cache max age = %v", cfg.CacheMaxAge)
	}
	if !cfg.CleanResume {
		t.Error("clean resume not set from env")
	}
}

// Values from the environment (including a .env file) must land even
// though -llm.base, -llm.model, and -words carry non-empty flag
// defaults.
func TestApplyEnvToConfigReplacesFlagDefaults(t *testing.T) {
	t.Setenv("LLM_BASE_URL", "http://envhost:11434")
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("WORD_LIMIT", "120")

	cfg := Config{
		OutputPath: DefaultOutputPath,
		LLMBaseURL: DefaultLLMBaseURL,
		LLMModel:   DefaultLLMModel,
		WordLimit:  DefaultWordLimit,
	}
	ApplyEnvToConfig(&cfg)

	if cfg.LLMBaseURL != "http://envhost:11434" {
		t.Errorf("base url = %q, want env value", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != "env-model" {
		t.Errorf("model = %q, want env-model", cfg.LLMModel)
	}
	if cfg.WordLimit != 120 {
		t.Errorf("word limit = %d, want 120", cfg.WordLimit)
	}
}

func TestApplyEnvOverridesWins(t *testing.T) {
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("ENABLE_OCR", "off")

	cfg := Config{LLMModel: "file-model", EnableOCR: true}
	ApplyEnvOverrides(&cfg)

	if cfg.LLMModel != "env-model" {
		t.Errorf("model = %q, want env-model", cfg.LLMModel)
	}
	if cfg.EnableOCR {
		t.Error("falsey env did not clear flag")
	}
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
resume: cv.pdf
job: posting.txt
output: letter.txt
llm:
  provider: openai
  model: gpt-test
  temperature: 0.2
words: 150
cache:
  dir: .cache
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Resume != "cv.pdf" || fc.Job != "posting.txt" || fc.Output != "letter.txt" {
		t.Errorf("paths = %q %q %q", fc.Resume, fc.Job, fc.Output)
	}
	if fc.LLM.Provider != "openai" || fc.LLM.Model != "gpt-test" {
		t.Errorf("llm = %+v", fc.LLM)
	}
	if fc.LLM.Temperature == nil || *fc.LLM.Temperature != 0.2 {
		t.Errorf("temperature = %v", fc.LLM.Temperature)
	}
	if fc.Words != 150 || fc.Cache.Dir != ".cache" {
		t.Errorf("words/cache = %d %+v", fc.Words, fc.Cache)
	}
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"resume":"cv.pdf","llm":{"model":"m"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if fc.Resume != "cv.pdf" || fc.LLM.Model != "m" {
		t.Errorf("fc = %+v", fc)
	}
}

func TestApplyFileConfigRespectsFlags(t *testing.T) {
	var fc FileConfig
	fc.Resume = "file-cv.pdf"
	fc.LLM.Model = "file-model"
	fc.Words = 100

	cfg := Config{
		ResumePath: "flag-cv.pdf",
		LLMModel:   "gemma:2b", // flag default, file may override
		WordLimit:  250,        // explicit non-default, file must not override
	}
	ApplyFileConfig(&cfg, fc)

	if cfg.ResumePath != "flag-cv.pdf" {
		t.Errorf("resume = %q", cfg.ResumePath)
	}
	if cfg.LLMModel != "file-model" {
		t.Errorf("model = %q, want file-model", cfg.LLMModel)
	}
	if cfg.WordLimit != 250 {
		t.Errorf("word limit = %d, want 250", cfg.WordLimit)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := Config{
		ResumePath: "cv.pdf",
		JobPath:    "job.txt",
		OutputPath: "letter.txt",
		LLMModel:   "gemma:2b",
	}
	if err := ValidateConfig(valid); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing resume", mutate: func(c *Config) { c.ResumePath = "" }},
		{name: "missing job", mutate: func(c *Config) { c.JobPath = "" }},
		{name: "missing output", mutate: func(c *Config) { c.OutputPath = "" }},
		{name: "missing model", mutate: func(c *Config) { c.LLMModel = "" }},
		{name: "negative words", mutate: func(c *Config) { c.WordLimit = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			if err := ValidateConfig(cfg); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateConfigPersonalizeMode(t *testing.T) {
	cfg := Config{
		PersonalizeRequest: "make it formal",
		OutputPath:         "letter.txt",
		LLMModel:           "gemma:2b",
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("personalize mode should not require inputs: %v", err)
	}
}
