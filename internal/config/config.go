package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment, with
// a best-effort .env load for local development.
type Config struct {
	Port string

	// Gemini completion service
	GeminiAPIKey   string
	GeminiModel    string
	GeminiTimeout  time.Duration

	// Generated PDF storage
	StorageDir     string
	MaxStoredFiles int

	// Rate limit for the generate endpoint
	RateLimitMax    int
	RateLimitWindow time.Duration

	// HTML -> PDF conversion bound
	ConvertTimeout time.Duration
}

// Load reads configuration from the environment. GEMINI_API_KEY is the only
// required setting; everything else has a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiTimeout:   time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 30)) * time.Second,
		StorageDir:      getEnv("RESUME_DIR", "resumes"),
		MaxStoredFiles:  getEnvInt("MAX_STORED_FILES", 5),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 50),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
		ConvertTimeout:  time.Duration(getEnvInt("PDF_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
