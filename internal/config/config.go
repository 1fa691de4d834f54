// Package config handles loading and parsing application configuration.
// The path to a YAML file is taken, in priority order, from:
//  1. The --config flag of the root command
//  2. The CONFIG_PATH environment variable
//
// With no file at all the configuration is built from environment
// variables and the env-default values below, so the bot runs with zero
// setup.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the SQLite DSN the address book snapshot is kept in.
	// ":memory:" means the snapshot lives only as long as the process.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:":memory:"`

	// LogPath is where logs go: empty discards them, "-" means stderr,
	// anything else is a file logs are appended to. Stdout is reserved
	// for the conversation.
	LogPath string `yaml:"log_path" env:"LOG_PATH"`

	Session `yaml:"session"`
}

// Session holds settings of the interactive loop.
type Session struct {
	Prompt string `yaml:"prompt" env:"SESSION_PROMPT" env-default:"Enter a command: "`
}

// Load reads the configuration from path, falling back to CONFIG_PATH
// and then to the environment alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
	}

	return &cfg, nil
}
