package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	StorageBackend string `env:"STORAGE_BACKEND"  envDefault:"file"`
	LedgerFile     string `env:"LEDGER_FILE"      envDefault:"budgetbook.json"`
	AutoSave       bool   `env:"AUTO_SAVE"        envDefault:"true"`

	// Redis
	RedisURL       string `env:"REDIS_URL"        envDefault:"redis://localhost:6379"`
	RedisLedgerKey string `env:"REDIS_LEDGER_KEY" envDefault:"budgetbook:ledger"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate limiting per client address (0 disables)
	HTTPRateLimit float64 `env:"HTTP_RATE_LIMIT" envDefault:"0"`
	HTTPRateBurst int     `env:"HTTP_RATE_BURST" envDefault:"20"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotenv copies KEY=VALUE lines from paths (default .env) into the
// environment. Variables already set win. Missing files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}
