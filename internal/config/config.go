// Package config loads the optional .keyseek.yml file controlling solve runs.
package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the .keyseek.yml schema. Command-line flags override any field.
type Config struct {
	Version   int    `yaml:"version"`
	Attempts  string `yaml:"attempts"`
	Output    string `yaml:"output"`
	Results   string `yaml:"results"`
	Workers   int    `yaml:"workers"`
	UI        string `yaml:"ui"`
	HistoryDB string `yaml:"history_db"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Version:  1,
		Attempts: "attempts.txt",
		Output:   "possible_answers.txt",
		Workers:  1,
		UI:       "auto",
	}
}

// Parse decodes a config document, rejecting unknown fields and multiple
// documents.
func Parse(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
