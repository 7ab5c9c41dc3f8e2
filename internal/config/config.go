// internal/config/config.go
//
// Environment-driven configuration for the numguess binary.
// Responsibilities:
//   - Parse NUMGUESS_* and LOG_LEVEL variables into Config.
//   - Validate values before anything is wired up.
//
// Environment variables:
//   LOG_LEVEL=info              zerolog level name
//   NUMGUESS_LOG_FORMAT=console console | json
//   NUMGUESS_DIFFICULTY=        easy | medium | hard (empty shows the menu)
//   NUMGUESS_SEED=0             non-zero makes target selection reproducible
//   NUMGUESS_LANG=en            BCP-47 tag used to format numbers
//
// .env files are loaded by main before Load is called.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/robalobadob/numguess/internal/game"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds process configuration.
type Config struct {
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"NUMGUESS_LOG_FORMAT" envDefault:"console"`
	Difficulty string `env:"NUMGUESS_DIFFICULTY"`
	Seed       int64  `env:"NUMGUESS_SEED" envDefault:"0"`
	Lang       string `env:"NUMGUESS_LANG" envDefault:"en"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if c.LogFormat != LogFormatConsole && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("NUMGUESS_LOG_FORMAT must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}
	if c.Difficulty != "" {
		if _, err := game.ParseDifficulty(c.Difficulty); err != nil {
			return fmt.Errorf("NUMGUESS_DIFFICULTY: %w", err)
		}
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("NUMGUESS_LANG: %w", err)
	}
	return nil
}

// Level returns the configured zerolog level (validated by Load).
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// PresetDifficulty returns the preconfigured tier, if any.
func (c *Config) PresetDifficulty() (game.Difficulty, bool) {
	if c.Difficulty == "" {
		return "", false
	}
	d, err := game.ParseDifficulty(c.Difficulty)
	if err != nil {
		return "", false
	}
	return d, true
}

// Language returns the tag used for number formatting.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return tag
}
