package service

import (
	"time"

	"github.com/nonzeroday/nzd/internal/config"
	"github.com/nonzeroday/nzd/internal/logger"
	"github.com/nonzeroday/nzd/internal/motivation"
	"github.com/nonzeroday/nzd/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Log        *LogService
	Stats      *StatsService
	Motivation *MotivationService
	Config     *ConfigService
}

// NewServices creates a new Services instance with default paths and the
// real Gemini gateway
func NewServices() (*Services, error) {
	storagePath, err := storage.GetStoragePath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	gateway := motivation.NewClient(motivation.Options{
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
	})

	return NewServicesWithPaths(storagePath, configPath, cfg, gateway), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths and
// gateway (useful for testing)
func NewServicesWithPaths(storagePath, configPath string, cfg config.Config, gateway motivation.TextGateway) *Services {
	loc := resolveLocation(cfg)

	return &Services{
		Log:        NewLogService(storagePath, loc),
		Stats:      NewStatsService(storagePath, loc),
		Motivation: NewMotivationService(storagePath, loc, gateway),
		Config:     NewConfigService(configPath, cfg),
	}
}

// resolveLocation loads the configured timezone, degrading to the system
// local zone when the name does not resolve.
func resolveLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Location())
	if err != nil {
		logger.Logger.Warn("unknown timezone in config, using local", "timezone", cfg.Timezone, "err", err)
		return time.Local
	}
	return loc
}
