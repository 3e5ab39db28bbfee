// Package cli provides common process initialization for the spendlog
// binary: logging, env files, config, and the storage backend.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"spendlog/internal/backend"
	"spendlog/internal/config"
	applog "spendlog/internal/log"
)

// SetupLogger initializes structured logging and installs it as the
// process default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// SetupBackend builds the configured storage backend.
// Returns the backend or exits the process on failure.
func SetupBackend(logger *applog.Logger, cfg *config.Config) *backend.Result {
	backendType, dbPath := backend.FromAppConfig(cfg)
	result, err := backend.NewFactory(logger.Logger).Create(backendType, dbPath)
	if err != nil {
		logger.Error("Failed to initialize storage backend",
			applog.FieldError, err,
			applog.FieldBackend, backendType.String())
		os.Exit(1)
	}
	return result
}
