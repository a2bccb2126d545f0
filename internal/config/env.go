package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the arbor command.
// Flags override the environment.
type Config struct {
	LogLevel  string `env:"ARBOR_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ARBOR_LOG_FORMAT" envDefault:"text"`
	Format    string `env:"ARBOR_FORMAT" envDefault:"text"`
	Color     bool   `env:"ARBOR_COLOR" envDefault:"true"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
