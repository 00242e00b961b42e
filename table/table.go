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

// Package table implements the decomposition table: an immutable index of
// characters to their tagged decomposition trees.
//
// A table is loaded once from dictionary records and is never modified
// afterwards. It is safe for concurrent use by multiple readers.
//
// A character may have several decomposition variants, each under its own
// tag. When the dictionary lists the same tag twice for a character, the
// later variant is kept under a new anonymous tag whose index is the number
// of variants already recorded for the character.
package table

import (
	"errors"
	"io"
	"iter"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-ids/tree"
)

// Options are options for loading a table.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// Unicode normalization) on each dictionary line before it is parsed.
	Folder func() transform.Transformer

	// Logger receives debug messages while loading.
	Logger *log.Logger
}

// DefaultOptions is the default options for a Table.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
	Logger: log.New(io.Discard),
}

// Entry is a single tagged decomposition in the table.
type Entry struct {
	Char rune
	Tag  tree.Tag
	Tree tree.Tree
}

type variant struct {
	tag  tree.Tag
	tree tree.Tree
}

// entry holds the variants of a character in insertion order.
type entry struct {
	char     rune
	variants []variant
}

func (e *entry) lookup(tag tree.Tag) (tree.Tree, bool) {
	for _, v := range e.variants {
		if v.tag == tag {
			return v.tree, true
		}
	}
	return nil, false
}

// Table is an immutable decomposition table.
type Table struct {
	// trie maps the UTF-8 encoding of a character to its *entry.
	trie *patricia.Trie

	chars     int
	entries   int
	anonymous int
}

// errStopVisit stops a trie visit early.
var errStopVisit = errors.New("stop")

func newTable() *Table {
	return &Table{
		trie: patricia.NewTrie(),
	}
}

// Load builds a table from records. Decompositions that fail to parse are
// skipped and returned as *RecordError values alongside the table.
func Load(records []Record, options *Options) (*Table, []error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = DefaultOptions.Logger
	}

	t := newTable()
	var errs []error
	for _, r := range records {
		for _, s := range r.Trees {
			x, tag, err := tree.ParseTagged(s)
			if err != nil {
				errs = append(errs, &RecordError{
					Line: r.Line,
					Text: s,
					Err:  err,
				})
				continue
			}
			if stored := t.insert(r.Char, tag, x); stored != tag {
				logger.Debug("duplicate tag", "char", string(r.Char), "tag", tag, "stored", stored, "line", r.Line)
			}
		}
	}
	return t, errs
}

// insert adds a variant and returns the tag it was stored under.
func (t *Table) insert(c rune, tag tree.Tag, x tree.Tree) tree.Tag {
	key := patricia.Prefix(string(c))
	e, _ := t.trie.Get(key).(*entry)
	if e == nil {
		e = &entry{char: c}
		t.trie.Insert(key, e)
		t.chars++
	}

	if _, ok := e.lookup(tag); ok {
		tag = tree.Anonymous(len(e.variants))
		t.anonymous++
	}
	e.variants = append(e.variants, variant{tag: tag, tree: x})
	t.entries++
	return tag
}

func (t *Table) get(c rune) *entry {
	e, _ := t.trie.Get(patricia.Prefix(string(c))).(*entry)
	return e
}

// Has returns true if the table has at least one decomposition for c.
func (t *Table) Has(c rune) bool {
	return t.get(c) != nil
}

// Lookup returns the decomposition of c recorded under tag.
func (t *Table) Lookup(c rune, tag tree.Tag) (tree.Tree, bool) {
	e := t.get(c)
	if e == nil {
		return nil, false
	}
	return e.lookup(tag)
}

// Tags returns the tags of c in insertion order.
func (t *Table) Tags(c rune) []tree.Tag {
	e := t.get(c)
	if e == nil {
		return nil
	}
	tags := make([]tree.Tag, len(e.variants))
	for i, v := range e.variants {
		tags[i] = v.tag
	}
	return tags
}

// Expand returns the first decomposition of c, in tag order, that is not
// the atom c itself. Only the first such decomposition is ever returned even
// if c has other variants.
func (t *Table) Expand(c rune) (tree.Tree, bool) {
	e := t.get(c)
	if e == nil {
		return nil, false
	}
	for _, v := range e.variants {
		// Skip self references like "人 人".
		if a, ok := v.tree.(tree.Atom); ok && rune(a) == c {
			continue
		}
		return v.tree, true
	}
	return nil, false
}

// All returns an iterator over every tagged decomposition in the table. The
// variants of a character are visited in tag insertion order. The order of
// characters is unspecified.
func (t *Table) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		//nolint:errcheck // errStopVisit is the only error returned.
		t.trie.Visit(func(_ patricia.Prefix, item patricia.Item) error {
			e := item.(*entry)
			for _, v := range e.variants {
				if !yield(Entry{Char: e.char, Tag: v.tag, Tree: v.tree}) {
					return errStopVisit
				}
			}
			return nil
		})
	}
}

// Len returns the number of tagged decompositions in the table.
func (t *Table) Len() int {
	return t.entries
}

// Chars returns the number of distinct characters in the table.
func (t *Table) Chars() int {
	return t.chars
}

// Anonymous returns the number of decompositions stored under anonymous
// tags.
func (t *Table) Anonymous() int {
	return t.anonymous
}
