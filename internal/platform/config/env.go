package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the engine settings shared by entry points and the service.
type Config struct {
	// DBPath is the SQLite file holding the serialized state snapshot.
	DBPath string `env:"TABLEFORGE_DB_PATH" envDefault:"tableforge.db"`
	// FlushInterval is how often the redundant auto-save runs.
	FlushInterval time.Duration `env:"TABLEFORGE_FLUSH_INTERVAL" envDefault:"30s"`
	// AdminName is the built-in administrator account seeded into a fresh store.
	AdminName string `env:"TABLEFORGE_ADMIN_NAME" envDefault:"host"`
	// AdminPassword is the built-in administrator credential.
	AdminPassword string `env:"TABLEFORGE_ADMIN_PASSWORD" envDefault:"boladefogo123"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the engine configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
