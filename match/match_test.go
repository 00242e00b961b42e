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

package match_test

import (
	"bytes"
	"testing"

	"github.com/ianlewis/go-ids/internal/testutil"
	"github.com/ianlewis/go-ids/match"
	"github.com/ianlewis/go-ids/table"
	"github.com/ianlewis/go-ids/tree"
)

var testLines = []string{
	"0001 人 人",
	"0002 从 ⿰人人",
	"0003 众 ⿱人从",
	"0004 丛 ⿱从一",
	"0005 亻 亻",
	"0006 木 木",
	"0007 休 ⿰亻木",
	"0008 彳 彳",
	"0009 亍 亍",
	"0010 圭 ⿱土土",
	"0011 街 ⿲彳圭亍",
	"0012 行 ⿰彳亍",
	"0013 兀 ⿱一儿[A] ⿰一人[B]",
	"0014 甲 乙",
	"0015 乙 甲",
	"0016 囚 ⿴囗人",
	"0017 丝 ⿰丝丝",
	"0018 卯 ⿰夕夕",
	"0019 夕 ⿰卯卯",
}

func newMatcher(t *testing.T) *match.Matcher {
	t.Helper()

	tbl, errs := table.Read(bytes.NewReader(testutil.MakeDictionary(testLines...)), nil)
	if len(errs) != 0 {
		t.Fatalf("table.Read: %v", errs)
	}
	return match.New(tbl, match.DefaultWildcard)
}

func mustParse(t *testing.T, s string) tree.Tree {
	t.Helper()

	x, err := tree.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return x
}

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	m := newMatcher(t)

	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "same atom", a: "人", b: "人", expected: true},
		{name: "different atoms", a: "人", b: "亻"},
		{name: "atoms are not expanded against atoms", a: "从", b: "众"},
		{name: "same opaque", a: "{柬中}", b: "{柬中}", expected: true},
		{name: "different opaque", a: "{柬中}", b: "{柬}"},
		{name: "opaque and atom", a: "{人}", b: "人"},
		{name: "opaque and composition", a: "{从}", b: "⿰人人"},
		{name: "equal compositions", a: "⿰人人", b: "⿰人人", expected: true},
		{name: "different operators", a: "⿰人人", b: "⿱人人"},
		{name: "atom expands", a: "从", b: "⿰人人", expected: true},
		{name: "nested atom expands", a: "⿱人从", b: "⿱人⿰人人", expected: true},
		{name: "atom expands to mismatch", a: "从", b: "⿱人人"},
		{name: "wildcard child", a: "⿰人人", b: "⿰.人", expected: true},
		{name: "wildcard whole", a: "⿲彳圭亍", b: ".", expected: true},
		{name: "wildcard matches opaque", a: "{柬中}", b: ".", expected: true},
		{name: "wildcard through expansion", a: "丛", b: "⿱⿰人.一", expected: true},
		{name: "ternary grouped left", a: "⿲彳圭亍", b: "⿰⿰彳圭亍", expected: true},
		{name: "ternary grouped right", a: "⿲彳圭亍", b: "⿰彳⿰圭亍", expected: true},
		{name: "ternary grouped with expansion", a: "⿲人人人", b: "⿰从人", expected: true},
		{name: "ternary grouped with wildcard", a: "街", b: "⿰.亍", expected: true},
		{name: "ternary different direction", a: "⿲彳圭亍", b: "⿱⿰彳圭亍"},
		{name: "ternary no grouping matches", a: "⿲彳圭亍", b: "⿰行圭"},
		{name: "ternary against ternary", a: "⿳一口一", b: "⿳一口一", expected: true},
		{name: "enclosing operators differ", a: "⿴囗人", b: "⿵囗人"},
		{name: "self reference does not expand", a: "人", b: "⿰人人"},
		{name: "unknown atom does not expand", a: "口", b: "⿰人人"},
		{name: "only first variant is tried", a: "兀", b: "⿰一人"},
		{name: "first variant", a: "兀", b: "⿱一儿", expected: true},
		{name: "reference cycle terminates", a: "甲", b: "⿰人人"},
		{name: "branching cycle terminates", a: "丝", b: "⿰人人"},
		{name: "branching cycle expands once", a: "丝", b: "⿰丝丝", expected: true},
		{name: "mutual branching cycle terminates", a: "卯", b: "⿰⿰人人⿰人人"},
		{name: "unary", a: "⿾人", b: "⿾人", expected: true},
		{name: "unary different operator", a: "⿾人", b: "⿿人"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			a, b := mustParse(t, test.a), mustParse(t, test.b)
			if got := m.Match(a, b); got != test.expected {
				t.Errorf("Match(%v, %v): want: %v, got: %v", a, b, test.expected, got)
			}
			if got := m.Match(b, a); got != test.expected {
				t.Errorf("Match(%v, %v): want: %v, got: %v", b, a, test.expected, got)
			}
		})
	}
}

func TestMatcher_Match_wildcard(t *testing.T) {
	t.Parallel()

	m := newMatcher(t)
	wildcard := tree.Atom(m.Wildcard())

	for _, s := range []string{"人", ".", "{柬中}", "⿰人人", "⿲彳圭亍", "⿾人", "甲"} {
		x := mustParse(t, s)
		if !m.Match(x, wildcard) {
			t.Errorf("Match(%v, %v): want: true, got: false", x, wildcard)
		}
		if !m.Match(wildcard, x) {
			t.Errorf("Match(%v, %v): want: true, got: false", wildcard, x)
		}
	}
}

func TestMatcher_Match_customWildcard(t *testing.T) {
	t.Parallel()

	tbl, _ := table.Load(nil, nil)
	m := match.New(tbl, '？')

	if !m.Match(mustParse(t, "⿰人人"), mustParse(t, "⿰？人")) {
		t.Errorf("Match: want: true, got: false")
	}
	if m.Match(mustParse(t, "⿰人人"), mustParse(t, "⿰.人")) {
		t.Errorf("Match: want: false, got: true")
	}
}

func TestMatcher_HasMatchingDescendant(t *testing.T) {
	t.Parallel()

	m := newMatcher(t)

	tests := []struct {
		name     string
		a, b     string
		expected bool
	}{
		{name: "itself", a: "⿰人人", b: "⿰人人", expected: true},
		{name: "child", a: "⿱人从", b: "人", expected: true},
		{name: "expanded child", a: "⿱人从", b: "⿰人人", expected: true},
		{name: "expanded atom", a: "丛", b: "⿰人.", expected: true},
		{name: "deep expansion", a: "⿰口丛", b: "⿰人人", expected: true},
		{name: "regrouped child", a: "⿱一⿲彳圭亍", b: "⿰⿰彳圭亍", expected: true},
		{name: "wildcard", a: "⿴囗人", b: "⿴.人", expected: true},
		{name: "no match", a: "⿰亻木", b: "人"},
		{name: "opaque", a: "⿰{柬中}人", b: "{柬中}", expected: true},
		{name: "self reference", a: "人", b: "亻"},
		{name: "only first variant is tried", a: "兀", b: "人"},
		{name: "reference cycle terminates", a: "甲", b: "人"},
		{name: "branching cycle terminates", a: "丝", b: "木"},
		{name: "mutual branching cycle terminates", a: "卯", b: "木"},
		{name: "mutual branching cycle descendant", a: "卯", b: "⿰卯卯", expected: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			a, b := mustParse(t, test.a), mustParse(t, test.b)
			if got := m.HasMatchingDescendant(a, b); got != test.expected {
				t.Errorf("HasMatchingDescendant(%v, %v): want: %v, got: %v", a, b, test.expected, got)
			}
		})
	}
}

func TestMatcher_Contains(t *testing.T) {
	t.Parallel()

	m := newMatcher(t)

	tests := []struct {
		name             string
		haystack, needle string
		expected         bool
	}{
		{name: "atom in composition", haystack: "⿰人人", needle: "人", expected: true},
		{name: "expanded atom", haystack: "众", needle: "人", expected: true},
		{name: "expanded subtree", haystack: "⿰口丛", needle: "⿰人人", expected: true},
		{name: "different operator", haystack: "⿰人人", needle: "⿱人人"},
		{name: "no match", haystack: "⿰亻木", needle: "人"},
		{name: "no wildcard", haystack: "⿰人人", needle: "."},
		{name: "no regrouping", haystack: "⿲彳圭亍", needle: "⿰彳圭"},
		{name: "opaque", haystack: "⿰{柬中}人", needle: "{柬中}", expected: true},
		{name: "different opaque", haystack: "⿰{柬中}人", needle: "{柬}"},
		{name: "unknown atom", haystack: "口", needle: "人"},
		{name: "self reference", haystack: "亻", needle: "人"},
		{name: "only first variant is tried", haystack: "兀", needle: "人"},
		{name: "first variant", haystack: "兀", needle: "儿", expected: true},
		{name: "reference cycle terminates", haystack: "甲", needle: "人"},
		{name: "branching cycle terminates", haystack: "丝", needle: "木"},
		{name: "branching cycle contains its expansion", haystack: "丝", needle: "⿰丝丝", expected: true},
		{name: "mutual branching cycle terminates", haystack: "⿱卯夕", needle: "木"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			haystack, needle := mustParse(t, test.haystack), mustParse(t, test.needle)
			if got := m.Contains(haystack, needle); got != test.expected {
				t.Errorf("Contains(%v, %v): want: %v, got: %v", haystack, needle, test.expected, got)
			}
		})
	}
}

// TestMatcher_Contains_reflexive checks that every tree contains itself.
func TestMatcher_Contains_reflexive(t *testing.T) {
	t.Parallel()

	m := newMatcher(t)
	for _, s := range []string{"人", "口", ".", "{柬中}", "⿰人人", "⿲彳圭亍", "⿾人", "甲"} {
		x := mustParse(t, s)
		if !m.Contains(x, x) {
			t.Errorf("Contains(%v, %v): want: true, got: false", x, x)
		}
	}
}
