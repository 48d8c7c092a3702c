package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env; fields still
// carrying their flag default count as unset, the same rule
// ApplyFileConfig uses.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.LLMProvider == "" {
		cfg.LLMProvider = os.Getenv("LLM_PROVIDER")
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" && (cfg.LLMBaseURL == "" || cfg.LLMBaseURL == DefaultLLMBaseURL) {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" && (cfg.LLMModel == "" || cfg.LLMModel == DefaultLLMModel) {
		cfg.LLMModel = v
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	if cfg.WordLimit == 0 || cfg.WordLimit == DefaultWordLimit {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("WORD_LIMIT"))); err == nil && n > 0 {
			cfg.WordLimit = n
		}
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}
	if cfg.DumpDir == "" {
		cfg.DumpDir = os.Getenv("DUMP_DIR")
	}

	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.CacheClear, "CACHE_CLEAR")
	setBool(&cfg.CleanResume, "CLEAN_RESUME")
	setBool(&cfg.EnableOCR, "ENABLE_OCR")
}

// ApplyEnvOverrides forcefully overrides cfg fields with environment
// variables when set. Used to let env take precedence over config file
// values while flags remain highest precedence.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLMProvider = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}

	if v := strings.TrimSpace(os.Getenv("WORD_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WordLimit = n
		}
	}

	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("DUMP_DIR"); v != "" {
		cfg.DumpDir = v
	}
	if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.CacheMaxAge = d
		}
	}

	setBool := func(dst *bool, envKey string) {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		case "0", "false", "no", "off":
			*dst = false
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
	setBool(&cfg.CacheClear, "CACHE_CLEAR")
	setBool(&cfg.CleanResume, "CLEAN_RESUME")
	setBool(&cfg.EnableOCR, "ENABLE_OCR")
}
