package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from the environment.
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Dataset source: "csv" (default), "postgres", or "sqlite".
	Source   string `env:"DATA_SOURCE" envDefault:"csv"`
	DataPath string `env:"DATA_PATH" envDefault:"AIDataset.csv"`
	Table    string `env:"DATA_TABLE" envDefault:"job_market"`

	SQLitePath string `env:"SQLITE_PATH"`

	PGHost     string `env:"PG_HOST" envDefault:"localhost"`
	PGPort     int    `env:"PG_PORT" envDefault:"5432"`
	PGUser     string `env:"PG_USER" envDefault:"postgres"`
	PGPassword string `env:"PG_PASSWORD"`
	PGDatabase string `env:"PG_DATABASE" envDefault:"jobmarket"`
	PGSSLMode  string `env:"PG_SSLMODE" envDefault:"disable"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
