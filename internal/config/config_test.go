package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timezone != "Local" {
		t.Errorf("expected Local timezone, got %q", cfg.Timezone)
	}
	if cfg.GeminiModel == "" {
		t.Error("expected a default model")
	}
	if cfg.GeminiBaseURL == "" {
		t.Error("expected a default base URL")
	}
	if cfg.DisableSpark {
		t.Error("expected spark enabled by default")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error for missing file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOrDefault_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte("theme = \"nord\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("expected theme nord, got %q", cfg.Theme)
	}
	if cfg.GeminiModel != DefaultConfig().GeminiModel {
		t.Errorf("expected default model preserved, got %q", cfg.GeminiModel)
	}
}

func TestLoadOrDefault_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	if err := os.WriteFile(path, []byte("theme = [not toml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)

	want := Config{
		Timezone:      "Europe/Oslo",
		Theme:         "gruvbox",
		GeminiModel:   "gemini-2.5-pro",
		GeminiBaseURL: "https://example.test",
		DisableSpark:  true,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n want %+v\n got  %+v", want, got)
	}
}

func TestLocation(t *testing.T) {
	if (Config{}).Location() != "Local" {
		t.Error("expected empty timezone to resolve to Local")
	}
	if (Config{Timezone: "UTC"}).Location() != "UTC" {
		t.Error("expected explicit timezone to pass through")
	}
}
