package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Flag defaults, shared with cmd/coverletter so the env and file
// overlays can tell "still the default" apart from an explicit value.
const (
	DefaultOutputPath = "generated_cover_letter.txt"
	DefaultLLMBaseURL = "http://localhost:11434"
	DefaultLLMModel   = "gemma:2b"
	DefaultWordLimit  = 200
)

// FileConfig represents the single-file configuration schema. Nested
// sections map naturally to flags and env variables.
type FileConfig struct {
	Resume    string `yaml:"resume" json:"resume"`
	Job       string `yaml:"job" json:"job"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	LLM struct {
		Provider    string   `yaml:"provider" json:"provider"`
		BaseURL     string   `yaml:"base" json:"base"`
		Model       string   `yaml:"model" json:"model"`
		APIKey      string   `yaml:"key" json:"key"`
		Temperature *float32 `yaml:"temperature" json:"temperature"`
		TopP        *float32 `yaml:"topP" json:"topP"`
	} `yaml:"llm" json:"llm"`

	Words       int  `yaml:"words" json:"words"`
	CleanResume bool `yaml:"cleanResume" json:"cleanResume"`
	EnableOCR   bool `yaml:"enableOCR" json:"enableOCR"`
	Verbose     bool `yaml:"verbose" json:"verbose"`

	Dump struct {
		Dir string `yaml:"dir" json:"dir"`
	} `yaml:"dump" json:"dump"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear  bool          `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields
// that are currently unset or still carry the flag default. Flags
// should already have been parsed; this lets file config supply
// defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.ResumePath == "" && fc.Resume != "" {
		cfg.ResumePath = fc.Resume
	}
	if cfg.JobPath == "" && fc.Job != "" {
		cfg.JobPath = fc.Job
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
	}

	if cfg.LLMProvider == "" && fc.LLM.Provider != "" {
		cfg.LLMProvider = fc.LLM.Provider
	}
	if (cfg.LLMBaseURL == "" || cfg.LLMBaseURL == DefaultLLMBaseURL) && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if (cfg.LLMModel == "" || cfg.LLMModel == DefaultLLMModel) && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Temperature != nil {
		cfg.Temperature = *fc.LLM.Temperature
	}
	if fc.LLM.TopP != nil {
		cfg.TopP = *fc.LLM.TopP
	}

	if (cfg.WordLimit == 0 || cfg.WordLimit == DefaultWordLimit) && fc.Words > 0 {
		cfg.WordLimit = fc.Words
	}
	if !cfg.CleanResume && fc.CleanResume {
		cfg.CleanResume = true
	}
	if !cfg.EnableOCR && fc.EnableOCR {
		cfg.EnableOCR = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}

	if cfg.DumpDir == "" && fc.Dump.Dir != "" {
		cfg.DumpDir = fc.Dump.Dir
	}
	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
}

// ValidateConfig performs minimal schema validation for required
// settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.PersonalizeRequest) == "" {
		if strings.TrimSpace(cfg.ResumePath) == "" {
			return errors.New("config: resume path is required")
		}
		if strings.TrimSpace(cfg.JobPath) == "" {
			return errors.New("config: job description path is required")
		}
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required (or set LLM_MODEL)")
	}
	if cfg.WordLimit < 0 {
		return errors.New("config: negative word limit is not allowed")
	}
	return nil
}
