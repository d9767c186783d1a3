package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads, parses, normalizes, and validates a config file. A missing
// file yields the defaults without error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize fills defaulted fields in place.
func Normalize(cfg *Config) {
	defaults := Default()
	if cfg.Attempts == "" {
		cfg.Attempts = defaults.Attempts
	}
	if cfg.Output == "" {
		cfg.Output = defaults.Output
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.UI == "" {
		cfg.UI = defaults.UI
	}
}
