// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads edic configuration from YAML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-edic/lexml"
)

// ErrInvalid indicates an invalid configuration value.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration.
type Config struct {
	// OutputDir is the directory converted documents are written to.
	OutputDir string `yaml:"output_dir" env:"EDIC_OUTPUT_DIR" env-default:"."`

	// Compress enables dictzip compression of converted documents.
	Compress bool `yaml:"compress" env:"EDIC_COMPRESS" env-default:"false"`

	// Jobs is the number of sources converted at the same time.
	Jobs int `yaml:"jobs" env:"EDIC_JOBS" env-default:"1"`

	// Specialized lists the names of sources rendered in specialized mode.
	Specialized []string `yaml:"specialized" env:"EDIC_SPECIALIZED" env-separator:","`

	// Modes maps source names to rendering mode names. Sources listed in
	// Specialized are rendered in specialized mode regardless of Modes.
	Modes map[string]string `yaml:"modes" env:"EDIC_MODES" env-separator:","`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"EDIC_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"EDIC_LOG_FORMAT" env-default:"text"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Load reads configuration from the YAML file at path and the environment.
// Priority: ENV > YAML > defaults. If path is empty the configuration is
// loaded from ENV and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalid, c.Jobs)
	}
	for _, name := range c.Specialized {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty specialized source name", ErrInvalid)
		}
	}
	for name, mode := range c.Modes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty mode source name", ErrInvalid)
		}
		if _, err := lexml.ParseMode(mode); err != nil {
			return fmt.Errorf("%w: source %q: %w", ErrInvalid, name, err)
		}
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ModeMap returns the source name to rendering mode mapping. Mode names
// that don't parse are ignored; see [Config.Validate].
func (c *Config) ModeMap() lexml.ModeMap {
	modes := lexml.ModeMap{}
	for name, m := range c.Modes {
		if mode, err := lexml.ParseMode(m); err == nil {
			modes[strings.TrimSpace(name)] = mode
		}
	}
	for _, name := range c.Specialized {
		modes[strings.TrimSpace(name)] = lexml.Specialized
	}
	return modes
}
