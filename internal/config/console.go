package config

import "github.com/caarlos0/env/v11"

// ConsoleConfig presets the interactive console. Empty fields are prompted for.
type ConsoleConfig struct {
	Seat      string `env:"SEAT"`
	Dealer    string `env:"DEALER"`
	Hand      string `env:"HAND"`
	SessionID string `env:"SESSION_ID"`
}

func LoadConsole() (ConsoleConfig, error) {
	var cfg ConsoleConfig
	err := env.Parse(&cfg)
	return cfg, err
}
