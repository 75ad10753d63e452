package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"local"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	SentryDSN string `envconfig:"SENTRY_DSN"`

	Catalog struct {
		// SeedCSV is imported into the catalog on startup when set.
		SeedCSV   string `envconfig:"CATALOG_SEED_CSV"`
		SeedLimit int    `envconfig:"CATALOG_SEED_LIMIT"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
