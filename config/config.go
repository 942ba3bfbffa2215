// Package config loads the simulator settings from the environment and the
// team sheets from YAML.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the simulator settings.
type Config struct {
	// Seed fixes the battle's random source. Zero draws a seed from the
	// operating system.
	Seed      uint64 `env:"BATTLE_SEED" envDefault:"0"`
	MaxTurns  int    `env:"BATTLE_MAX_TURNS" envDefault:"200"`
	LogLevel  string `env:"BATTLE_LOG_LEVEL" envDefault:"info"`
	TeamsFile string `env:"BATTLE_TEAMS_FILE"`
	NoColor   bool   `env:"BATTLE_NO_COLOR"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTurns <= 0 {
		return nil, fmt.Errorf("BATTLE_MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("BATTLE_LOG_LEVEL: %w", err)
	}
	return &cfg, nil
}

// Level returns the configured diagnostic log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// Teams returns the team sheet named by TeamsFile, or the built-in sample
// sheet when it is empty.
func (c *Config) Teams() (*Sheet, error) {
	if c.TeamsFile == "" {
		return DefaultTeams()
	}
	return LoadTeams(c.TeamsFile)
}
