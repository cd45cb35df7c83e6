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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edic"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Convert all sources in a directory",
	ArgsUsage: "DIR",
	Description: "Convert each CSV source directly under DIR to a LeXML document " +
		"with the same base name.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "out",
			Usage:   "write documents to `DIR`",
			Aliases: []string{"o"},
		},
		&cli.BoolFlag{
			Name:    "compress",
			Usage:   "compress documents with dictzip",
			Aliases: []string{"z"},
		},
		&cli.IntFlag{
			Name:    "jobs",
			Usage:   "convert up to `N` sources at the same time",
			Aliases: []string{"j"},
		},
		&cli.StringSliceFlag{
			Name:    "specialized",
			Usage:   "render source `NAME` in specialized mode",
			Aliases: []string{"s"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected 1 argument, got %d", ErrFlagParse, c.NArg())
		}
		return runConvert(c, c.Args().First())
	},
}

func runConvert(c *cli.Context, dir string) error {
	cfg, logger, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.IsSet("out") {
		cfg.OutputDir = c.String("out")
	}
	if c.IsSet("compress") {
		cfg.Compress = c.Bool("compress")
	}
	if c.IsSet("jobs") {
		cfg.Jobs = c.Int("jobs")
	}
	if c.IsSet("specialized") {
		cfg.Specialized = append(cfg.Specialized, c.StringSlice("specialized")...)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	results, errs := edic.ConvertAll(dir, options(cfg, logger, c.App.Writer))
	for _, err := range errs {
		logger.Error("conversion failed", "err", err)
	}
	logger.Debug("conversion finished", "converted", len(results), "failed", len(errs))

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d failed", ErrConvert, len(errs))
	}
	return nil
}
