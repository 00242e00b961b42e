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

package tree

import (
	"cmp"
	"strconv"
)

// TagKind is the kind of a [Tag].
type TagKind int

const (
	// NamedTag is a tag read from the dictionary source.
	NamedTag TagKind = iota

	// AnonymousTag is a tag minted for a duplicate decomposition variant.
	AnonymousTag
)

// Tag distinguishes decomposition variants recorded for the same character.
// Tags are comparable and may be used as map keys.
type Tag struct {
	kind  TagKind
	label string
	index int
}

// Named returns a named tag with the given source label.
func Named(label string) Tag {
	return Tag{kind: NamedTag, label: label}
}

// Anonymous returns an anonymous tag with the given index.
func Anonymous(index int) Tag {
	return Tag{kind: AnonymousTag, index: index}
}

// Kind returns the tag's kind.
func (t Tag) Kind() TagKind {
	return t.kind
}

// Label returns the tag's source label. Anonymous tags have an empty label.
func (t Tag) Label() string {
	return t.label
}

// Index returns the index of an anonymous tag. Named tags return zero.
func (t Tag) Index() int {
	return t.index
}

// String returns a debug representation of the tag.
func (t Tag) String() string {
	if t.kind == AnonymousTag {
		return "#" + strconv.Itoa(t.index)
	}
	return "[" + t.label + "]"
}

// CompareTags orders tags. Named tags sort before anonymous tags, named tags
// are ordered by label and anonymous tags by index.
func CompareTags(a, b Tag) int {
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	if a.kind == AnonymousTag {
		return cmp.Compare(a.index, b.index)
	}
	return cmp.Compare(a.label, b.label)
}
