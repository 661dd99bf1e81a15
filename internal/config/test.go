package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// TestConfig points database tests at a Postgres server. Each test creates
// and drops its own schema there; tests skip when the DSN is unset.
type TestConfig struct {
	TestPostgresDSN string `env:"TEST_POSTGRES_DSN,required,notEmpty"`
}

func LoadTest() (TestConfig, error) {
	var cfg TestConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("TEST_POSTGRES_DSN: %w", err)
	}
	return cfg, nil
}
