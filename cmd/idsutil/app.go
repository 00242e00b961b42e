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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ids"
	"github.com/ianlewis/go-ids/internal/logger"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeQueryError is the exit code for a query that could not be
	// parsed.
	ExitCodeQueryError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrIdsutil is a parent error for all command errors.
var ErrIdsutil = errors.New("idsutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrIdsutil)

// ErrNoDictionary indicates that no dictionary file could be found.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary found", ErrIdsutil)

// dictNames are the dictionary file names searched for in data directories.
var dictNames = []string{
	"ids.txt",
	"ids.txt.gz",
	"ids.txt.dz",
}

var copyrightNames = []string{
	"2025 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ids.ErrQuery):
		return ExitCodeQueryError
	default:
		return ExitCodeUnknownError
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// findDictionary returns the first dictionary file found in dirs.
func findDictionary(dirs []string) (string, error) {
	for _, dir := range dirs {
		for _, name := range dictNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoDictionary, strings.Join(dirs, ", "))
}

// newLogger returns the logger for the app's error output.
func newLogger(c *cli.Context) *log.Logger {
	level := log.WarnLevel
	if c.Bool("verbose") {
		level = log.DebugLevel
	}
	return logger.NewWithLevel(c.App.Name, c.App.ErrWriter, level)
}

// openDictionary opens the dictionary given by the configuration. Records
// that could not be read are logged and counted.
func openDictionary(c *cli.Context, cfg *Config) (*ids.Dictionary, int, error) {
	l := newLogger(c)

	path := cfg.Data.Path
	if path == "" {
		var err error
		path, err = findDictionary(dataLocations())
		if err != nil {
			return nil, 0, err
		}
	}
	l.Debug("opening dictionary", "path", path)

	wildcard, err := cfg.WildcardRune()
	if err != nil {
		return nil, 0, err
	}

	d, errs := ids.Open(path, &ids.Options{
		Wildcard:  wildcard,
		Normalize: cfg.Data.Normalize,
		Logger:    l,
	})
	if d == nil {
		return nil, 0, errors.Join(errs...)
	}
	for _, err := range errs {
		l.Warn("skipped record", "err", err)
	}
	return d, len(errs), nil
}

func newIdsutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search Ideographic Description Sequence dictionaries.",
		Description: strings.Join([]string{
			"IDS dictionary utility written in Go.",
			"http://github.com/ianlewis/go-ids",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Usage:   "read the dictionary from `FILE`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "read configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  "wildcard",
				Usage: "use `CHAR` as the wildcard component",
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output `FORMAT` (" + strings.Join(formats, ", ") + ")",
				Aliases: []string{"f"},
			},
			&cli.BoolFlag{
				Name:  "normalize",
				Usage: "normalize dictionary and query text to NFC",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "print debug messages",
				Aliases: []string{"v"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideVersion:     true,
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			findCommand,
			matchCommand,
			pmatchCommand,
			showCommand,
			statsCommand,
		},
	}
}
