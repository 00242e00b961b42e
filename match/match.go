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

// Package match implements matching of decomposition trees against each
// other using a decomposition table to expand atoms.
//
// Three predicates are provided:
//  1. [Matcher.Match] tests structural equivalence with a wildcard atom and
//     regrouping of ternary compositions into binary ones.
//  2. [Matcher.HasMatchingDescendant] tests whether any subtree matches.
//  3. [Matcher.Contains] tests strict containment without wildcard or
//     regrouping.
//
// When an atom is expanded, only its first decomposition that is not the
// atom itself is used. Later variants are never tried even if the first one
// fails to match.
package match

import (
	"slices"

	"github.com/ianlewis/go-ids/table"
	"github.com/ianlewis/go-ids/tree"
)

// DefaultWildcard is the atom that matches any tree.
const DefaultWildcard = '.'

// expansions holds the atoms being expanded on the current path. An atom
// that is reached again while it is being expanded does not match. This
// only affects tables with reference cycles such as A -> B -> A or
// A -> ⿰AA.
type expansions []rune

func (e expansions) has(r rune) bool {
	return slices.Contains(e, r)
}

// Matcher matches trees against each other. A Matcher is safe for concurrent
// use.
type Matcher struct {
	table    *table.Table
	wildcard tree.Atom
}

// New returns a new Matcher that expands atoms using t. The wildcard atom
// matches any tree in Match and HasMatchingDescendant.
func New(t *table.Table, wildcard rune) *Matcher {
	return &Matcher{
		table:    t,
		wildcard: tree.Atom(wildcard),
	}
}

// Wildcard returns the matcher's wildcard character.
func (m *Matcher) Wildcard() rune {
	return rune(m.wildcard)
}

// Match returns true if a and b are structurally equivalent. Match is
// symmetric.
func (m *Matcher) Match(a, b tree.Tree) bool {
	return m.match(a, b, nil)
}

func (m *Matcher) isWildcard(x tree.Tree) bool {
	a, ok := x.(tree.Atom)
	return ok && a == m.wildcard
}

func (m *Matcher) match(a, b tree.Tree, path expansions) bool {
	if m.isWildcard(a) || m.isWildcard(b) {
		return true
	}

	switch x := a.(type) {
	case tree.Opaque:
		y, ok := b.(tree.Opaque)
		return ok && x == y
	case tree.Atom:
		switch y := b.(type) {
		case tree.Atom:
			return x == y
		case *tree.Composition:
			return m.matchAtom(x, y, path)
		}
	case *tree.Composition:
		switch y := b.(type) {
		case tree.Atom:
			return m.matchAtom(y, x, path)
		case *tree.Composition:
			return m.matchCompositions(x, y, path)
		}
	}
	return false
}

// matchAtom matches an atom against a composition by expanding the atom.
func (m *Matcher) matchAtom(a tree.Atom, c *tree.Composition, path expansions) bool {
	if path.has(rune(a)) {
		return false
	}
	def, ok := m.table.Expand(rune(a))
	if !ok {
		return false
	}
	return m.match(def, c, append(path, rune(a)))
}

func (m *Matcher) matchCompositions(x, y *tree.Composition, path expansions) bool {
	if x.Operator() == y.Operator() {
		for i := range x.Len() {
			if !m.match(x.Child(i), y.Child(i), path) {
				return false
			}
		}
		return true
	}

	if x.Operator().Direction() != y.Operator().Direction() {
		return false
	}
	switch {
	case x.Len() == 3 && y.Len() == 2:
		return m.regroup(x, y, path)
	case x.Len() == 2 && y.Len() == 3:
		return m.regroup(y, x, path)
	}
	return false
}

// regroup matches a ternary composition (a, b, c) against a binary
// composition (d, e) of the same direction by grouping either (a, b) or
// (b, c) under the ternary operator's binary reduction.
func (m *Matcher) regroup(ternary, binary *tree.Composition, path expansions) bool {
	op, ok := ternary.Operator().Reduce()
	if !ok {
		return false
	}
	a, b, c := ternary.Child(0), ternary.Child(1), ternary.Child(2)
	d, e := binary.Child(0), binary.Child(1)

	if m.match(tree.Compose(op, a, b), d, path) && m.match(c, e, path) {
		return true
	}
	return m.match(a, d, path) && m.match(tree.Compose(op, b, c), e, path)
}

// HasMatchingDescendant returns true if a or any of its descendants matches
// b. Atoms in a are expanded to search their decomposition.
func (m *Matcher) HasMatchingDescendant(a, b tree.Tree) bool {
	return m.hasMatchingDescendant(a, b, nil)
}

func (m *Matcher) hasMatchingDescendant(a, b tree.Tree, path expansions) bool {
	if m.match(a, b, path) {
		return true
	}

	switch x := a.(type) {
	case tree.Atom:
		if path.has(rune(x)) {
			return false
		}
		def, ok := m.table.Expand(rune(x))
		if !ok {
			return false
		}
		return m.hasMatchingDescendant(def, b, append(path, rune(x)))
	case *tree.Composition:
		for i := range x.Len() {
			if m.hasMatchingDescendant(x.Child(i), b, path) {
				return true
			}
		}
	}
	return false
}

// Contains returns true if needle occurs in haystack. Atoms in haystack are
// expanded to search their decomposition. The wildcard and regrouping are
// not applied.
func (m *Matcher) Contains(haystack, needle tree.Tree) bool {
	return m.contains(haystack, needle, nil)
}

func (m *Matcher) contains(haystack, needle tree.Tree, path expansions) bool {
	if tree.Equal(haystack, needle) {
		return true
	}

	switch x := haystack.(type) {
	case tree.Atom:
		if path.has(rune(x)) {
			return false
		}
		def, ok := m.table.Expand(rune(x))
		if !ok {
			return false
		}
		return m.contains(def, needle, append(path, rune(x)))
	case *tree.Composition:
		for i := range x.Len() {
			if m.contains(x.Child(i), needle, path) {
				return true
			}
		}
	}
	// Opaque components only contain themselves.
	return false
}
