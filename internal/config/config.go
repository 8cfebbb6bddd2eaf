package config

import (
	"os"
	"strconv"
)

// Config holds the serve-mode settings, all sourced from the environment.
type Config struct {
	Port string

	// Auth; empty disables authentication.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Rendering defaults
	DefaultIndent int
}

func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8090"),
		APIKey:         os.Getenv("PDFOUTLINE_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		DefaultIndent:  envInt("DEFAULT_INDENT", 2),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultIndent <= 0 {
		cfg.DefaultIndent = 2
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
