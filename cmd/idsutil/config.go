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
	"io"
	"io/fs"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ids/match"
)

// ErrConfig indicates an invalid configuration.
var ErrConfig = fmt.Errorf("%w: invalid config", ErrIdsutil)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config is the idsutil configuration.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Search SearchConfig `toml:"search"`
	Output OutputConfig `toml:"output"`
}

// DataConfig holds dictionary options.
type DataConfig struct {
	// Path is the dictionary file path. If empty the default data locations
	// are searched.
	Path string `toml:"path"`

	// Normalize enables NFC normalization of dictionary and query text.
	Normalize bool `toml:"normalize"`
}

// SearchConfig holds search options.
type SearchConfig struct {
	Wildcard string `toml:"wildcard"`
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format string `toml:"format"`

	// Color is one of "auto", "always" or "never".
	Color string `toml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Wildcard: string(match.DefaultWildcard),
		},
		Output: OutputConfig{
			Format: formatText,
			Color:  colorAuto,
		},
	}
}

// LoadConfig loads the TOML file at path over the default config.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s: unknown keys: %s", ErrConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// loadConfig loads the config for the command. The file given by the
// --config flag must exist. Otherwise the first config file found in the
// default locations is used. Flags override values from the file.
func loadConfig(c *cli.Context) (*Config, error) {
	cfg := DefaultConfig()

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = LoadConfig(path)
		if err != nil {
			return nil, err
		}
	} else {
		for _, path := range configLocations() {
			loaded, err := LoadConfig(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			cfg = loaded
			break
		}
	}

	if c.IsSet("data") {
		cfg.Data.Path = c.String("data")
	}
	if c.IsSet("normalize") {
		cfg.Data.Normalize = c.Bool("normalize")
	}
	if c.IsSet("wildcard") {
		cfg.Search.Wildcard = c.String("wildcard")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.Bool("no-color") {
		cfg.Output.Color = colorNever
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config values.
func (cfg *Config) Validate() error {
	if _, err := cfg.WildcardRune(); err != nil {
		return err
	}
	if !slices.Contains(formats, cfg.Output.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrConfig, cfg.Output.Format)
	}
	switch cfg.Output.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrConfig, cfg.Output.Color)
	}
	return nil
}

// WildcardRune returns the wildcard character.
func (cfg *Config) WildcardRune() (rune, error) {
	w := cfg.Search.Wildcard
	r, size := utf8.DecodeRuneInString(w)
	if w == "" || size != len(w) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: wildcard must be a single character: %q", ErrConfig, w)
	}
	return r, nil
}

// colorEnabled returns whether output to w should be colored.
func (cfg *Config) colorEnabled(w io.Writer) bool {
	switch cfg.Output.Color {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	return isTerminal(w)
}
