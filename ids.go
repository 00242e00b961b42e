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

package ids

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-ids/internal/folding"
	"github.com/ianlewis/go-ids/internal/index"
	"github.com/ianlewis/go-ids/match"
	"github.com/ianlewis/go-ids/table"
	"github.com/ianlewis/go-ids/tree"
)

// ErrQuery is returned when query text cannot be parsed.
var ErrQuery = errors.New("invalid query")

// Options are options for a Dictionary.
type Options struct {
	// Wildcard is the character that matches any component in Match and
	// PartialMatch.
	Wildcard rune

	// Normalize enables Unicode NFC normalization of dictionary lines and
	// query text.
	Normalize bool

	// Logger receives messages while loading the dictionary.
	Logger *log.Logger
}

// DefaultOptions are the default options for a Dictionary.
var DefaultOptions = &Options{
	Wildcard: match.DefaultWildcard,
	Logger:   log.New(io.Discard),
}

// Dictionary is a searchable IDS dictionary. A Dictionary is safe for
// concurrent use.
type Dictionary struct {
	table   *table.Table
	matcher *match.Matcher

	// entries sorted by character. Variants of the same character are in
	// table order.
	entries *index.Index[rune, table.Entry]

	folder func() transform.Transformer
}

func withDefaults(options *Options) *Options {
	if options == nil {
		return DefaultOptions
	}
	o := *options
	if o.Wildcard == 0 {
		o.Wildcard = DefaultOptions.Wildcard
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions.Logger
	}
	return &o
}

// New returns a new Dictionary that searches t.
func New(t *table.Table, options *Options) *Dictionary {
	options = withDefaults(options)

	var entries []table.Entry
	for e := range t.All() {
		entries = append(entries, e)
	}

	return &Dictionary{
		table:   t,
		matcher: match.New(t, options.Wildcard),
		entries: index.NewIndex(entries, func(e table.Entry) rune {
			return e.Char
		}, cmp.Compare[rune]),
		folder: folding.Query(options.Normalize),
	}
}

// Open opens the dictionary file at the given path. Records that could not be
// read are skipped and returned as errors along with the dictionary. If the
// file cannot be read the returned Dictionary is nil.
func Open(path string, options *Options) (*Dictionary, []error) {
	return load(func(o *table.Options) (*table.Table, []error) {
		return table.Open(path, o)
	}, options)
}

// Read reads a dictionary from r. Records that could not be read are skipped
// and returned as errors along with the dictionary.
func Read(r io.Reader, options *Options) (*Dictionary, []error) {
	return load(func(o *table.Options) (*table.Table, []error) {
		return table.Read(r, o)
	}, options)
}

func load(fn func(*table.Options) (*table.Table, []error), options *Options) (*Dictionary, []error) {
	options = withDefaults(options)
	t, errs := fn(&table.Options{
		Folder: folding.Lines(options.Normalize),
		Logger: options.Logger,
	})
	if t == nil {
		return nil, errs
	}
	return New(t, options), errs
}

// Table returns the dictionary's decomposition table.
func (d *Dictionary) Table() *table.Table {
	return d.table
}

// Wildcard returns the dictionary's wildcard character.
func (d *Dictionary) Wildcard() rune {
	return d.matcher.Wildcard()
}

// Lookup returns the decomposition variants of the character c in the order
// they were read.
func (d *Dictionary) Lookup(c rune) []table.Entry {
	return d.entries.Search(c)
}

// Find returns every decomposition variant that contains all needles.
func (d *Dictionary) Find(needles ...tree.Tree) []Result {
	return d.search(func(x tree.Tree) bool {
		for _, needle := range needles {
			if !d.matcher.Contains(x, needle) {
				return false
			}
		}
		return true
	})
}

// Match returns every decomposition variant that matches pattern.
func (d *Dictionary) Match(pattern tree.Tree) []Result {
	return d.search(func(x tree.Tree) bool {
		return d.matcher.Match(x, pattern)
	})
}

// PartialMatch returns every decomposition variant with a component that
// matches pattern. Each variant is returned at most once.
func (d *Dictionary) PartialMatch(pattern tree.Tree) []Result {
	return d.search(func(x tree.Tree) bool {
		return d.matcher.HasMatchingDescendant(x, pattern)
	})
}

func (d *Dictionary) search(pred func(tree.Tree) bool) []Result {
	var results []Result
	for _, e := range d.entries.Values() {
		if pred(e.Tree) {
			results = append(results, Result{Char: e.Char, Tag: e.Tag})
		}
	}
	return index.Sorted(results, CompareResults)
}

// FindQuery parses each needle and calls Find. Each needle may contain
// several whitespace separated trees.
func (d *Dictionary) FindQuery(needles ...string) ([]Result, error) {
	var trees []tree.Tree
	for _, n := range needles {
		for _, text := range strings.Fields(n) {
			x, err := d.parse(text)
			if err != nil {
				return nil, fmt.Errorf("%w: cannot parse needle %q: %w", ErrQuery, text, err)
			}
			trees = append(trees, x)
		}
	}
	if len(trees) == 0 {
		return nil, fmt.Errorf("%w: no needles", ErrQuery)
	}
	return d.Find(trees...), nil
}

// MatchQuery parses pattern and calls Match.
func (d *Dictionary) MatchQuery(pattern string) ([]Result, error) {
	x, err := d.parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse pattern %q: %w", ErrQuery, pattern, err)
	}
	return d.Match(x), nil
}

// PartialMatchQuery parses pattern and calls PartialMatch.
func (d *Dictionary) PartialMatchQuery(pattern string) ([]Result, error) {
	x, err := d.parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse pattern %q: %w", ErrQuery, pattern, err)
	}
	return d.PartialMatch(x), nil
}

func (d *Dictionary) parse(text string) (tree.Tree, error) {
	folded, _, err := transform.String(d.folder(), text)
	if err != nil {
		return nil, err
	}
	return tree.Parse(folded)
}
