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

	"github.com/ianlewis/go-ids/tree"
)

// Result is a search result. It identifies a single decomposition variant of a
// character.
type Result struct {
	// Char is the matching character.
	Char rune

	// Tag is the tag of the matching decomposition variant.
	Tag tree.Tag
}

// Label returns the result's tag label. The label is empty for anonymous tags.
func (r Result) Label() string {
	if r.Tag.Kind() == tree.AnonymousTag {
		return ""
	}
	return r.Tag.Label()
}

// String returns the character followed by the tag label.
func (r Result) String() string {
	return string(r.Char) + r.Label()
}

// CompareResults orders results by character and then by tag.
func CompareResults(a, b Result) int {
	if c := cmp.Compare(a.Char, b.Char); c != 0 {
		return c
	}
	return tree.CompareTags(a.Tag, b.Tag)
}

// Strings returns the string form of each result.
func Strings(results []Result) []string {
	s := make([]string, len(results))
	for i, r := range results {
		s[i] = r.String()
	}
	return s
}
