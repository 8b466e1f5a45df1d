package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally seeding it
// from a .env file first. A missing .env file is not an error.
func Load(logger *slog.Logger, envFilePath ...string) (*App, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"api_base_url", cfg.API.BaseURL,
		"api_timeout", cfg.API.Timeout,
		"rates_primary", cfg.Rates.PrimaryURL,
		"rates_secondary", cfg.Rates.SecondaryURL,
		"rates_cache_ttl", cfg.Rates.CacheTTL,
	)
	return &cfg, nil
}
