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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/rodaine/table"

	"github.com/ianlewis/go-ids"
	"github.com/ianlewis/go-ids/tree"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

var formats = []string{
	formatText,
	formatJSON,
	formatYAML,
	formatTable,
}

// resultSet is the JSON and YAML form of search results.
type resultSet struct {
	Results []string `json:"results" yaml:"results"`
}

// variantRow is the JSON and YAML form of a decomposition variant.
type variantRow struct {
	Char string `json:"char" yaml:"char"`
	Tag  string `json:"tag" yaml:"tag"`
	IDS  string `json:"ids" yaml:"ids"`
}

// statsRow is the JSON and YAML form of dictionary statistics.
type statsRow struct {
	Characters int `json:"characters" yaml:"characters"`
	Entries    int `json:"entries" yaml:"entries"`
	Anonymous  int `json:"anonymous" yaml:"anonymous"`
	Skipped    int `json:"skipped" yaml:"skipped"`
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printer writes command output in the configured format.
type printer struct {
	w      io.Writer
	format string
	color  bool
}

func newPrinter(w io.Writer, cfg *Config) *printer {
	return &printer{
		w:      w,
		format: cfg.Output.Format,
		color:  cfg.colorEnabled(w),
	}
}

func (p *printer) encode(v any) error {
	switch p.format {
	case formatJSON:
		e := json.NewEncoder(p.w)
		e.SetIndent("", "  ")
		e.SetEscapeHTML(false)
		if err := e.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		if _, err := p.w.Write(b); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrIdsutil, p.format)
	}
	return nil
}

func (p *printer) newTable(columns ...interface{}) table.Table {
	headerColor := color.New(color.FgGreen, color.Underline)
	columnColor := color.New(color.FgYellow)
	if p.color {
		headerColor.EnableColor()
		columnColor.EnableColor()
	} else {
		headerColor.DisableColor()
		columnColor.DisableColor()
	}

	return table.New(columns...).
		WithWriter(p.w).
		WithHeaderFormatter(headerColor.SprintfFunc()).
		WithFirstColumnFormatter(columnColor.SprintfFunc())
}

// results prints search results. The table format also prints each
// result's decomposition.
func (p *printer) results(d *ids.Dictionary, results []ids.Result) error {
	switch p.format {
	case formatText:
		for _, r := range results {
			if _, err := fmt.Fprintln(p.w, r); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		return nil
	case formatTable:
		tbl := p.newTable("Character", "Tag", "IDS")
		for _, r := range results {
			x, _ := d.Table().Lookup(r.Char, r.Tag)
			tbl.AddRow(string(r.Char), r.Label(), x)
		}
		tbl.Print()
		return nil
	}
	return p.encode(resultSet{Results: ids.Strings(results)})
}

// variants prints the decomposition variants of characters.
func (p *printer) variants(d *ids.Dictionary, chars []rune) error {
	var rows []variantRow
	for _, c := range chars {
		for _, e := range d.Lookup(c) {
			rows = append(rows, variantRow{
				Char: string(e.Char),
				Tag:  tagLabel(e.Tag),
				IDS:  e.Tree.String(),
			})
		}
	}

	switch p.format {
	case formatText:
		for _, c := range chars {
			for _, e := range d.Lookup(c) {
				if _, err := fmt.Fprintf(p.w, "%c\t%s\n", e.Char, tree.Format(e.Tree, e.Tag)); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			}
		}
		return nil
	case formatTable:
		tbl := p.newTable("Character", "Tag", "IDS")
		for _, r := range rows {
			tbl.AddRow(r.Char, r.Tag, r.IDS)
		}
		tbl.Print()
		return nil
	}
	return p.encode(rows)
}

// stats prints dictionary statistics.
func (p *printer) stats(s statsRow) error {
	switch p.format {
	case formatText, formatTable:
		tbl := p.newTable("Statistic", "Count")
		tbl.AddRow("Characters", s.Characters)
		tbl.AddRow("Entries", s.Entries)
		tbl.AddRow("Anonymous tags", s.Anonymous)
		tbl.AddRow("Skipped records", s.Skipped)
		tbl.Print()
		return nil
	}
	return p.encode(s)
}

// tagLabel returns the tag label. Anonymous tags are shown as "#n".
func tagLabel(t tree.Tag) string {
	if t.Kind() == tree.AnonymousTag {
		return t.String()
	}
	return t.Label()
}
