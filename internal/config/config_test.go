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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-edic/lexml"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// NOTE: Load reads the environment so these tests are not run in parallel.

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		OutputDir: ".",
		Jobs:      1,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_file(t *testing.T) {
	path := writeConfig(t, `output_dir: out
compress: true
jobs: 4
specialized:
  - phrases
  - idioms
modes:
  glossary: Specialized
  idioms: standard
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := &Config{
		OutputDir:   "out",
		Compress:    true,
		Jobs:        4,
		Specialized: []string{"phrases", "idioms"},
		Modes: map[string]string{
			"glossary": "Specialized",
			"idioms":   "standard",
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "json",
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}

	if diff := cmp.Diff(lexml.ModeMap{
		"glossary": lexml.Specialized,
		"phrases":  lexml.Specialized,
		"idioms":   lexml.Specialized,
	}, cfg.ModeMap()); diff != "" {
		t.Errorf("ModeMap (-want, +got):\n%s", diff)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("EDIC_JOBS", "3")
	t.Setenv("EDIC_SPECIALIZED", "phrases,idioms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want, got := 3, cfg.Jobs; want != got {
		t.Errorf("Jobs; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff([]string{"phrases", "idioms"}, cfg.Specialized); diff != "" {
		t.Errorf("Specialized (-want, +got):\n%s", diff)
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load: want %v, got %v", os.ErrNotExist, err)
	}
}

func TestLoad_unknownMode(t *testing.T) {
	path := writeConfig(t, "modes:\n  glossary: fancy\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load: want %v, got %v", ErrInvalid, err)
	}
	if !errors.Is(err, lexml.ErrUnknownMode) {
		t.Fatalf("Load: want %v, got %v", lexml.ErrUnknownMode, err)
	}
}

func TestLoad_invalid(t *testing.T) {
	path := writeConfig(t, "jobs: -1\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load: want %v, got %v", ErrInvalid, err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			OutputDir: ".",
			Jobs:      1,
			Log:       LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "upper case level", modify: func(c *Config) { c.Log.Level = "DEBUG" }},
		{name: "empty output dir", modify: func(c *Config) { c.OutputDir = "" }, err: ErrInvalid},
		{name: "zero jobs", modify: func(c *Config) { c.Jobs = 0 }, err: ErrInvalid},
		{name: "empty specialized", modify: func(c *Config) { c.Specialized = []string{" "} }, err: ErrInvalid},
		{name: "known mode", modify: func(c *Config) { c.Modes = map[string]string{"glossary": "specialized"} }},
		{name: "unknown mode", modify: func(c *Config) { c.Modes = map[string]string{"glossary": "fancy"} }, err: lexml.ErrUnknownMode},
		{name: "empty mode source", modify: func(c *Config) { c.Modes = map[string]string{" ": "standard"} }, err: ErrInvalid},
		{name: "bad level", modify: func(c *Config) { c.Log.Level = "loud" }, err: ErrInvalid},
		{name: "bad format", modify: func(c *Config) { c.Log.Format = "xml" }, err: ErrInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			test.modify(&c)
			if err := c.Validate(); !errors.Is(err, test.err) {
				t.Fatalf("Validate: want %v, got %v", test.err, err)
			}
		})
	}
}
