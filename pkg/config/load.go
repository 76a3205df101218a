package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from an optional .env file and the process
// environment. A missing .env file is not an error; the defaults cover a
// plain interactive run.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using process environment")
		}
		return loadFromEnv()
	}

	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		return loadFromEnv()
	}

	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Debug("config loaded",
		"env", cfg.Env,
		"branch_code", cfg.Bank.BranchCode,
		"withdrawal_ceiling", cfg.Bank.WithdrawalCeiling,
		"withdrawals_per_session", cfg.Bank.WithdrawalsPerSession,
	)
	return &cfg, nil
}
