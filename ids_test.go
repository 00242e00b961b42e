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

package ids_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-ids"
	"github.com/ianlewis/go-ids/internal/testutil"
	"github.com/ianlewis/go-ids/tree"
)

var testLines = []string{
	"0001 人 人",
	"0002 亻 亻",
	"0003 木 木",
	"0004 休 ⿰亻木",
	"0005 从 ⿰人人",
	"0006 众 ⿱人从",
	"0007 林 ⿰木木",
	"0008 森 ⿱木林",
	"0009 兀 ⿱一儿[G] ⿰一人[G]",
}

func readDictionary(t *testing.T, options *ids.Options, lines ...string) *ids.Dictionary {
	t.Helper()

	d, errs := ids.Read(bytes.NewReader(testutil.MakeDictionary(lines...)), options)
	if len(errs) != 0 {
		t.Fatalf("Read: %v", errs)
	}
	return d
}

// TestDictionary_basic runs the queries over the two record dictionary used
// in the package documentation.
func TestDictionary_basic(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil,
		"0001 人 ⿰亻人",
		"0002 从 ⿰人人",
	)

	find, err := d.FindQuery("人")
	if err != nil {
		t.Fatalf("FindQuery: %v", err)
	}
	if diff := cmp.Diff([]string{"人", "从"}, ids.Strings(find)); diff != "" {
		t.Errorf("FindQuery (-want, +got):\n%s", diff)
	}

	match, err := d.MatchQuery("⿰人人")
	if err != nil {
		t.Fatalf("MatchQuery: %v", err)
	}
	if diff := cmp.Diff([]string{"从"}, ids.Strings(match)); diff != "" {
		t.Errorf("MatchQuery (-want, +got):\n%s", diff)
	}

	pmatch, err := d.PartialMatchQuery("人")
	if err != nil {
		t.Fatalf("PartialMatchQuery: %v", err)
	}
	if diff := cmp.Diff([]string{"人", "从"}, ids.Strings(pmatch)); diff != "" {
		t.Errorf("PartialMatchQuery (-want, +got):\n%s", diff)
	}
}

func TestDictionary_FindQuery(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil, testLines...)

	tests := []struct {
		name     string
		needles  []string
		expected []string
	}{
		{
			name:     "single needle",
			needles:  []string{"木"},
			expected: []string{"休", "木", "林", "森"},
		},
		{
			name:     "all needles must match",
			needles:  []string{"木", "林"},
			expected: []string{"森"},
		},
		{
			name:     "whitespace separated needles",
			needles:  []string{"木 林"},
			expected: []string{"森"},
		},
		{
			name:     "anonymous variant",
			needles:  []string{"人"},
			expected: []string{"人", "从", "众", "兀"},
		},
		{
			name:     "composition needle",
			needles:  []string{"⿰人人"},
			expected: []string{"从", "众"},
		},
		{
			name:    "no results",
			needles: []string{"口"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.FindQuery(test.needles...)
			if err != nil {
				t.Fatalf("FindQuery: %v", err)
			}
			if diff := cmp.Diff(test.expected, ids.Strings(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("FindQuery (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictionary_MatchQuery(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil, testLines...)

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "exact",
			pattern:  "⿰木木",
			expected: []string{"林"},
		},
		{
			name:     "wildcard",
			pattern:  "⿰.木",
			expected: []string{"休", "林"},
		},
		{
			name:     "expanded component",
			pattern:  "⿱木⿰木木",
			expected: []string{"森"},
		},
		{
			name:     "whitespace is ignored",
			pattern:  " ⿰ 人 人 ",
			expected: []string{"从"},
		},
		{
			name:     "named tag label",
			pattern:  "⿱一儿",
			expected: []string{"兀G"},
		},
		{
			name:     "atom",
			pattern:  "木",
			expected: []string{"木"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.MatchQuery(test.pattern)
			if err != nil {
				t.Fatalf("MatchQuery: %v", err)
			}
			if diff := cmp.Diff(test.expected, ids.Strings(got)); diff != "" {
				t.Errorf("MatchQuery (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictionary_PartialMatchQuery(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil, testLines...)

	tests := []struct {
		name     string
		pattern  string
		expected []ids.Result
	}{
		{
			name:    "repeated component is returned once",
			pattern: "人",
			expected: []ids.Result{
				{Char: '人', Tag: tree.Named("")},
				{Char: '从', Tag: tree.Named("")},
				{Char: '众', Tag: tree.Named("")},
				{Char: '兀', Tag: tree.Anonymous(1)},
			},
		},
		{
			name:    "expanded component",
			pattern: "⿰木木",
			expected: []ids.Result{
				{Char: '林', Tag: tree.Named("")},
				{Char: '森', Tag: tree.Named("")},
			},
		},
		{
			name:    "wildcard",
			pattern: "⿱.儿",
			expected: []ids.Result{
				{Char: '兀', Tag: tree.Named("G")},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.PartialMatchQuery(test.pattern)
			if err != nil {
				t.Fatalf("PartialMatchQuery: %v", err)
			}
			if diff := cmp.Diff(test.expected, got, cmp.AllowUnexported(tree.Tag{})); diff != "" {
				t.Errorf("PartialMatchQuery (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestDictionary_queryErrors(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil, testLines...)

	tests := []struct {
		name   string
		query  func() ([]ids.Result, error)
		syntax bool
	}{
		{
			name: "find unparsable needle",
			query: func() ([]ids.Result, error) {
				return d.FindQuery("人", "⿰人")
			},
			syntax: true,
		},
		{
			name: "find no needles",
			query: func() ([]ids.Result, error) {
				return d.FindQuery(" ")
			},
		},
		{
			name: "match unterminated opaque",
			query: func() ([]ids.Result, error) {
				return d.MatchQuery("⿰{木")
			},
			syntax: true,
		},
		{
			name: "match tagged pattern",
			query: func() ([]ids.Result, error) {
				return d.MatchQuery("⿰木木[G]")
			},
			syntax: true,
		},
		{
			name: "partial match empty pattern",
			query: func() ([]ids.Result, error) {
				return d.PartialMatchQuery("")
			},
			syntax: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := test.query()
			if !errors.Is(err, ids.ErrQuery) {
				t.Fatalf("want %v, got: %v", ids.ErrQuery, err)
			}
			if got, want := errors.Is(err, tree.ErrSyntax), test.syntax; got != want {
				t.Errorf("errors.Is(%v, ErrSyntax): want: %v, got: %v", err, want, got)
			}
			if got != nil {
				t.Errorf("want no results, got: %v", got)
			}
		})
	}
}

func TestDictionary_customWildcard(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, &ids.Options{Wildcard: '？'}, testLines...)
	if got, want := d.Wildcard(), '？'; got != want {
		t.Errorf("Wildcard: want: %q, got: %q", want, got)
	}

	got, err := d.MatchQuery("⿰？木")
	if err != nil {
		t.Fatalf("MatchQuery: %v", err)
	}
	if diff := cmp.Diff([]string{"休", "林"}, ids.Strings(got)); diff != "" {
		t.Errorf("MatchQuery (-want, +got):\n%s", diff)
	}
}

func TestDictionary_normalize(t *testing.T) {
	t.Parallel()

	// U+F9B4 is a compatibility ideograph that normalizes to U+9818.
	d := readDictionary(t, &ids.Options{Normalize: true}, "0001 \uF9B4 ⿰令頁")

	got, err := d.MatchQuery("⿰令頁")
	if err != nil {
		t.Fatalf("MatchQuery: %v", err)
	}
	if diff := cmp.Diff([]string{"\u9818"}, ids.Strings(got)); diff != "" {
		t.Errorf("MatchQuery (-want, +got):\n%s", diff)
	}

	got, err = d.PartialMatchQuery("\uF9B4")
	if err != nil {
		t.Fatalf("PartialMatchQuery: %v", err)
	}
	if diff := cmp.Diff([]string{"\u9818"}, ids.Strings(got)); diff != "" {
		t.Errorf("PartialMatchQuery (-want, +got):\n%s", diff)
	}
}

func TestDictionary_Lookup(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil, testLines...)

	var got []string
	for _, e := range d.Lookup('兀') {
		got = append(got, tree.Format(e.Tree, e.Tag))
	}
	if diff := cmp.Diff([]string{"⿱一儿[G]", "⿰一人"}, got); diff != "" {
		t.Errorf("Lookup (-want, +got):\n%s", diff)
	}

	if got := d.Lookup('口'); len(got) != 0 {
		t.Errorf("Lookup(%q): want none, got: %v", '口', got)
	}
}

func TestDictionary_concurrentQueries(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil, testLines...)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := d.PartialMatchQuery("木")
			if err != nil {
				t.Errorf("PartialMatchQuery: %v", err)
				return
			}
			if diff := cmp.Diff([]string{"休", "木", "林", "森"}, ids.Strings(got)); diff != "" {
				t.Errorf("PartialMatchQuery (-want, +got):\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

// TestDictionary_branchingCycle checks that queries finish over a record whose
// decomposition refers to itself more than once.
func TestDictionary_branchingCycle(t *testing.T) {
	t.Parallel()

	d := readDictionary(t, nil,
		"0001 从 ⿰从从",
		"0002 口 口",
		"0003 木 木",
	)

	tests := []struct {
		name     string
		query    func() ([]ids.Result, error)
		expected []string
	}{
		{
			name:     "find",
			query:    func() ([]ids.Result, error) { return d.FindQuery("木") },
			expected: []string{"木"},
		},
		{
			name:     "match",
			query:    func() ([]ids.Result, error) { return d.MatchQuery("⿰..") },
			expected: []string{"从"},
		},
		{
			name:     "pmatch",
			query:    func() ([]ids.Result, error) { return d.PartialMatchQuery("木") },
			expected: []string{"木"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := test.query()
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if diff := cmp.Diff(test.expected, ids.Strings(got)); diff != "" {
				t.Errorf("results (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	lines := append([]string{"0000 口"}, testLines...)
	path := testutil.MakeTempDictionary(t, lines, &testutil.MakeDictionaryOptions{Gzip: true})

	d, errs := ids.Open(path, nil)
	if d == nil {
		t.Fatalf("Open: %v", errs)
	}
	if len(errs) != 1 {
		t.Errorf("Open: want 1 error, got: %v", errs)
	}
	if got, want := d.Table().Chars(), 9; got != want {
		t.Errorf("Chars: want: %d, got: %d", want, got)
	}
}

func TestOpen_notExist(t *testing.T) {
	t.Parallel()

	d, errs := ids.Open("/does/not/exist/ids.txt", nil)
	if d != nil {
		t.Errorf("Open: want nil dictionary")
	}
	if len(errs) == 0 {
		t.Errorf("Open: want errors")
	}
}
