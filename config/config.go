package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults for knobs that are usually left unset.
const (
	DefaultPort           = "5000"
	DefaultCongress       = 118
	DefaultSearchLimit    = 20
	DefaultMaxAISummaries = 5
	DefaultRequestTimeout = 10 * time.Second
	DefaultSummaryTimeout = 15 * time.Second
	devSecretKey          = "dev-secret-key"
)

// Config holds all process-wide settings. It is built once at startup
// and passed into constructors; nothing reads the environment after Load.
type Config struct {
	SecretKey         string
	Port              string
	Debug             bool
	CongressAPIKey    string
	HuggingFaceAPIKey string
	CohereAPIKey      string

	// CurrentCongress is the congressional session queried for bills.
	CurrentCongress int
	// SearchLimit caps the number of bills returned per search.
	SearchLimit int
	// MaxAISummaries caps how many bills per search are sent to the summarizer.
	MaxAISummaries int
	// RequestTimeout bounds each Congress.gov API call.
	RequestTimeout time.Duration
	// SummaryTimeout bounds each summarizer call.
	SummaryTimeout time.Duration
}

// Load reads configuration from the environment.
// SECRET_KEY is required outside of debug mode; a dev key is substituted
// when DEBUG=true so local runs work without a .env file.
func Load() (Config, error) {
	cfg := Config{
		SecretKey:         strings.TrimSpace(os.Getenv("SECRET_KEY")),
		Port:              getEnvOrDefault("PORT", DefaultPort),
		Debug:             strings.EqualFold(strings.TrimSpace(os.Getenv("DEBUG")), "true"),
		CongressAPIKey:    strings.TrimSpace(os.Getenv("CONGRESS_API_KEY")),
		HuggingFaceAPIKey: strings.TrimSpace(os.Getenv("HUGGINGFACE_API_KEY")),
		CohereAPIKey:      strings.TrimSpace(os.Getenv("COHERE_API_KEY")),
		CurrentCongress:   getEnvIntOrDefault("CURRENT_CONGRESS", DefaultCongress),
		SearchLimit:       getEnvIntOrDefault("SEARCH_LIMIT", DefaultSearchLimit),
		MaxAISummaries:    getEnvIntOrDefault("MAX_AI_SUMMARIES", DefaultMaxAISummaries),
		RequestTimeout:    getEnvDurationOrDefault("REQUEST_TIMEOUT", DefaultRequestTimeout),
		SummaryTimeout:    getEnvDurationOrDefault("SUMMARY_TIMEOUT", DefaultSummaryTimeout),
	}

	if cfg.SecretKey == "" {
		if !cfg.Debug {
			return Config{}, errors.New("SECRET_KEY is required")
		}
		cfg.SecretKey = devSecretKey
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}
