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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-edic"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List sources in a directory",
	ArgsUsage: "DIR",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected 1 argument, got %d", ErrFlagParse, c.NArg())
		}

		cfg, logger, err := loadConfig(c)
		if err != nil {
			return err
		}

		dicts, errs := edic.LoadAll(c.Args().First(), options(cfg, logger, nil))
		for _, err := range errs {
			logger.Error("loading source", "err", err)
		}

		tbl := table.New("Source", "Mode", "Entries", "Empty", "Skipped").WithWriter(c.App.Writer)
		for _, d := range dicts {
			tbl.AddRow(d.Name(), d.Mode(), len(d.Entries()), d.Empty(), d.Skipped())
		}
		tbl.Print()

		if len(errs) > 0 {
			return fmt.Errorf("%w: %d sources failed to load", ErrEdic, len(errs))
		}
		return nil
	},
}
