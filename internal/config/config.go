// ABOUTME: Configuration loader for the tripsentry client
// ABOUTME: Reads settings from environment variables with defaults

package config

import (
	"os"
	"path/filepath"
)

// DefaultAPIURL is the development backend endpoint used when nothing else is set
const DefaultAPIURL = "http://localhost:8000"

// Config holds all client settings
type Config struct {
	APIBaseURL string // backend base URL
	ConfigDir  string // directory for the token blob and debug log
	LogLevel   string // debug, info, warn, error
}

// Load builds a Config from the environment
func Load() *Config {
	return &Config{
		APIBaseURL: getEnv("TRIPSENTRY_API_URL", DefaultAPIURL),
		ConfigDir:  getEnv("TRIPSENTRY_CONFIG_DIR", DefaultConfigDir()),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

// DefaultConfigDir returns the default config directory following XDG spec
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripsentry")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tripsentry")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
