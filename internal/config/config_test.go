// ABOUTME: Tests for the configuration loader
// ABOUTME: Verifies environment overrides and XDG directory resolution

package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TRIPSENTRY_API_URL", "")
	t.Setenv("TRIPSENTRY_CONFIG_DIR", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.APIBaseURL != DefaultAPIURL {
		t.Errorf("expected default API URL, got %s", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRIPSENTRY_API_URL", "http://backend.example.com")
	t.Setenv("TRIPSENTRY_CONFIG_DIR", "/tmp/ts-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.APIBaseURL != "http://backend.example.com" {
		t.Errorf("expected env API URL, got %s", cfg.APIBaseURL)
	}
	if cfg.ConfigDir != "/tmp/ts-test" {
		t.Errorf("expected env config dir, got %s", cfg.ConfigDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir := DefaultConfigDir()
	if dir != filepath.Join("/tmp/xdg", "tripsentry") {
		t.Errorf("expected XDG-based dir, got %s", dir)
	}
}
