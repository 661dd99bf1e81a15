package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type StoreConfig struct {
	Mode        string `env:"STORE_MODE" envDefault:"memory"`
	PostgresDSN string `env:"POSTGRES_DSN"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/bidding.db"`
}

func LoadStore() (StoreConfig, error) {
	var cfg StoreConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	switch cfg.Mode {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return cfg, fmt.Errorf("POSTGRES_DSN is required when STORE_MODE=postgres")
		}
	default:
		return cfg, fmt.Errorf("unsupported STORE_MODE %q", cfg.Mode)
	}
	return cfg, nil
}
