package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port               string `env:"PORT" envDefault:"8080"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"15"`
	LogLevelName       string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultSeed        string `env:"DEFAULT_SEED" envDefault:"sdr-dashboard"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func (c Config) LogLevel() slog.Level {
	if c.LogLevelName == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
