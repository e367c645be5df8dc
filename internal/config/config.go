// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads and validates the search engine's on-disk
// configuration, creating a default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the user-editable configuration persisted at
// ~/.simplesearch/config.yaml.
type Config struct {
	// Root is the default document tree to index when --root isn't given.
	Root string `yaml:"root" validate:"omitempty"`

	// Personality selects the console's verbosity: "full", "minimal" or
	// "machine".
	Personality string `yaml:"personality" validate:"oneof=full minimal machine"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogDir enables file logging when non-empty; the CLI writes log
	// entries only to this directory, never to stderr.
	LogDir string `yaml:"log_dir" validate:"omitempty"`

	// TraceDir, if set, writes a JSON trace of each session's spans.
	TraceDir string `yaml:"trace_dir" validate:"omitempty"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		Personality: "full",
		LogLevel:    "info",
		LogDir:      "~/.simplesearch/logs",
	}
}

var (
	// Global is the process-wide singleton populated by Load.
	Global Config
	once   sync.Once
)

// Load ensures Global is populated, creating a default config file on
// first run if none exists. Safe to call multiple times; only the first
// call does any work.
func Load() error {
	var err error
	once.Do(func() {
		err = loadInternal()
	})
	return err
}

// Path returns the on-disk location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: find home directory: %w", err)
	}
	return filepath.Join(home, ".simplesearch", "config.yaml"), nil
}

func loadInternal() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefault(path); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid %s: %w", path, err)
	}

	Global = cfg
	return nil
}

func createDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("config: create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("config: marshal default config: %w", err)
	}
	return os.WriteFile(path, data, 0640)
}
