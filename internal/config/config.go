// Package config handles loading and saving the TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory
	AppName = "nzd"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// Timezone for day-key evaluation (IANA name, e.g. "America/New_York",
	// or "Local" for the system timezone)
	Timezone string `toml:"timezone"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
	// GeminiModel is the generative model used for sparks and reflections
	GeminiModel string `toml:"gemini_model"`
	// GeminiBaseURL overrides the API endpoint (mainly for testing/proxies)
	GeminiBaseURL string `toml:"gemini_base_url"`
	// DisableSpark turns off the startup quote fetch
	DisableSpark bool `toml:"disable_spark"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Timezone:      "Local",
		Theme:         "dracula",
		GeminiModel:   "gemini-2.5-flash",
		GeminiBaseURL: "https://generativelanguage.googleapis.com",
		DisableSpark:  false,
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at path, falling back to defaults for
// a missing file. Unset fields keep their default values. A file that exists
// but cannot be parsed is an error; the user should fix or delete it.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultConfig().GeminiModel
	}
	if cfg.GeminiBaseURL == "" {
		cfg.GeminiBaseURL = DefaultConfig().GeminiBaseURL
	}

	return cfg, nil
}

// Save writes the config to path as TOML
func Save(path string, cfg Config) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Location resolves the configured timezone to a time.Location name that
// time.LoadLocation accepts. "Local" and "" map to the system timezone.
func (c Config) Location() string {
	if c.Timezone == "" {
		return "Local"
	}
	return c.Timezone
}
