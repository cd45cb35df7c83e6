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

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Search sources by headword",
	ArgsUsage: "DIR QUERY",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "prefix",
			Usage:   "match headwords starting with QUERY",
			Aliases: []string{"p"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected 2 arguments, got %d", ErrFlagParse, c.NArg())
		}
		dir, query := c.Args().Get(0), c.Args().Get(1)

		cfg, logger, err := loadConfig(c)
		if err != nil {
			return err
		}

		dicts, errs := edic.LoadAll(dir, options(cfg, logger, nil))
		for _, err := range errs {
			logger.Error("loading source", "err", err)
		}

		for _, d := range dicts {
			var entries []*edic.Entry
			if c.Bool("prefix") {
				entries, err = d.SearchPrefix(query)
			} else {
				entries, err = d.Search(query)
			}
			if err != nil {
				return fmt.Errorf("%w: searching %s: %w", ErrEdic, d.Name(), err)
			}
			if len(entries) == 0 {
				continue
			}

			fmt.Fprintf(c.App.Writer, "[%s]\n\n", d.Name())
			for _, e := range entries {
				fmt.Fprintln(c.App.Writer, e)
			}
		}

		if len(errs) > 0 {
			return fmt.Errorf("%w: %d sources failed to load", ErrEdic, len(errs))
		}
		return nil
	},
}
