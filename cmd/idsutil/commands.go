// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ids"
)

var findCommand = &cli.Command{
	Name:         "find",
	Usage:        "find characters containing all components",
	ArgsUsage:    "COMPONENT...",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: find requires at least one component", ErrFlagParse)
		}
		return search(c, func(d *ids.Dictionary) ([]ids.Result, error) {
			return d.FindQuery(c.Args().Slice()...)
		})
	},
}

var matchCommand = &cli.Command{
	Name:         "match",
	Usage:        "find characters whose decomposition matches a pattern",
	ArgsUsage:    "PATTERN",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: match requires one pattern", ErrFlagParse)
		}
		return search(c, func(d *ids.Dictionary) ([]ids.Result, error) {
			return d.MatchQuery(c.Args().First())
		})
	},
}

var pmatchCommand = &cli.Command{
	Name:         "pmatch",
	Usage:        "find characters with a component that matches a pattern",
	ArgsUsage:    "PATTERN",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: pmatch requires one pattern", ErrFlagParse)
		}
		return search(c, func(d *ids.Dictionary) ([]ids.Result, error) {
			return d.PartialMatchQuery(c.Args().First())
		})
	},
}

var showCommand = &cli.Command{
	Name:         "show",
	Usage:        "print the decompositions of characters",
	ArgsUsage:    "CHAR...",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: show requires at least one character", ErrFlagParse)
		}

		var chars []rune
		for _, arg := range c.Args().Slice() {
			for _, r := range arg {
				if r == utf8.RuneError {
					return fmt.Errorf("%w: invalid character in %q", ErrFlagParse, arg)
				}
				chars = append(chars, r)
			}
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		d, _, err := openDictionary(c, cfg)
		if err != nil {
			return err
		}
		return newPrinter(c.App.Writer, cfg).variants(d, chars)
	},
}

var statsCommand = &cli.Command{
	Name:         "stats",
	Usage:        "print dictionary statistics",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return fmt.Errorf("%w: stats takes no arguments", ErrFlagParse)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		d, skipped, err := openDictionary(c, cfg)
		if err != nil {
			return err
		}
		t := d.Table()
		return newPrinter(c.App.Writer, cfg).stats(statsRow{
			Characters: t.Chars(),
			Entries:    t.Len(),
			Anonymous:  t.Anonymous(),
			Skipped:    skipped,
		})
	},
}

// search opens the dictionary, runs the query and prints the results.
func search(c *cli.Context, query func(*ids.Dictionary) ([]ids.Result, error)) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	d, _, err := openDictionary(c, cfg)
	if err != nil {
		return err
	}

	results, err := query(d)
	if err != nil {
		return err
	}
	return newPrinter(c.App.Writer, cfg).results(d, results)
}
