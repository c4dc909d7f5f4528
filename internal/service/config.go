package service

import (
	"fmt"
	"time"

	"github.com/nonzeroday/nzd/internal/config"
)

// ConfigService provides read/write access to the configuration file
type ConfigService struct {
	configPath string
	cfg        config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		cfg:        cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.cfg
}

// Path returns the config file location
func (s *ConfigService) Path() string {
	return s.configPath
}

// Set updates a single configuration key and persists the file
func (s *ConfigService) Set(key, value string) error {
	switch key {
	case "timezone":
		if value != "Local" {
			if _, err := time.LoadLocation(value); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", value, err)
			}
		}
		s.cfg.Timezone = value
	case "theme":
		s.cfg.Theme = value
	case "gemini_model":
		s.cfg.GeminiModel = value
	case "gemini_base_url":
		s.cfg.GeminiBaseURL = value
	case "disable_spark":
		switch value {
		case "true":
			s.cfg.DisableSpark = true
		case "false":
			s.cfg.DisableSpark = false
		default:
			return fmt.Errorf("disable_spark must be true or false, got %q", value)
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	return config.Save(s.configPath, s.cfg)
}
