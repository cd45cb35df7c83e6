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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-edic"
	"github.com/ianlewis/go-edic/internal/config"
	"github.com/ianlewis/go-edic/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrEdic is a parent error for all command errors.
var ErrEdic = errors.New("edic")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrEdic)

// ErrConvert indicates that one or more sources failed to convert.
var ErrConvert = fmt.Errorf("%w: converting sources", ErrEdic)

var copyrightNames = []string{
	"2021 Google LLC",
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name
	// argument, but the root command also takes a directory.
	//
	// This is done because `edic --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newEdicApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert edic dictionary sources to LeXML.",
		Description: strings.Join([]string{
			"edic dictionary converter written in Go.",
			"http://github.com/ianlewis/go-edic",
		}, "\n"),
		ArgsUsage: "[DIR]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				Value:   defaultConfigPath(),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT` (text, json)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}
			if c.Bool("help") || c.NArg() != 1 {
				check(cli.ShowAppHelp(c))
				return nil
			}

			// A single directory argument is shorthand for convert.
			return runConvert(c, c.Args().First())
		},
		Commands: []*cli.Command{
			convertCommand,
			listCommand,
			queryCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\nCopyright (c) %s\n", c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, ", "))
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrEdic, err)
	}
	return nil
}

// defaultConfigPath returns the first existing config file in the default
// locations. It returns an empty string if none exist.
func defaultConfigPath() string {
	for _, path := range configLocations() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfig loads the configuration and creates the logger. Global flags
// override configuration values.
func loadConfig(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEdic, err)
	}

	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	logger, err := logging.New(c.App.ErrWriter, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return cfg, logger, nil
}

// options returns conversion options for the configuration.
func options(cfg *config.Config, logger *slog.Logger, progress io.Writer) *edic.Options {
	opts := &edic.Options{
		OutDir:   cfg.OutputDir,
		Compress: cfg.Compress,
		Jobs:     cfg.Jobs,
		Modes:    cfg.ModeMap(),
		Logger:   logger,
	}
	if progress != nil {
		w := &syncWriter{w: progress}
		opts.Progress = func(name string) {
			fmt.Fprintf(w, "[%s]\n", name)
		}
	}
	return opts
}

// syncWriter serializes writes to w.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	//nolint:wrapcheck // error should not be wrapped
	return s.w.Write(p)
}
