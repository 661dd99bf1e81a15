package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// LogConfig drives logging.Init. Output is stdout or stderr; File adds a
// rotating copy capped at MaxMB per segment.
type LogConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty      bool   `env:"LOG_PRETTY" envDefault:"false"`
	SampleEvery int    `env:"LOG_SAMPLE_EVERY" envDefault:"0"`
	Output      string `env:"LOG_OUTPUT" envDefault:"stdout"`
	File        string `env:"LOG_FILE"`
	MaxMB       int    `env:"LOG_MAX_MB" envDefault:"10"`
}

func LoadLog() (LogConfig, error) {
	var cfg LogConfig
	err := env.Parse(&cfg)
	return cfg, err
}

// LoadConsoleLog is LoadLog for the interactive console: unless overridden,
// it logs warnings and above to stderr so log lines stay out of the prompts.
func LoadConsoleLog() (LogConfig, error) {
	cfg, err := LoadLog()
	if err != nil {
		return cfg, err
	}
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		cfg.Level = "warn"
	}
	if _, ok := os.LookupEnv("LOG_OUTPUT"); !ok {
		cfg.Output = "stderr"
	}
	return cfg, nil
}
