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

// Package ids implements searching of Ideographic Description Sequence (IDS)
// dictionaries in pure Go.
//
// An IDS describes how a CJK character is composed from components using
// description operators such as ⿰ (left to right) and ⿱ (above to below).
// For example "从" is described as "⿰人人".
//
// IDS dictionaries are plain text files with one record per line:
//  1. A code column that is ignored (e.g. "U+4ECE").
//  2. The character.
//  3. One or more whitespace separated decompositions, each optionally
//     followed by a tag in brackets (e.g. "⿰人人[GTJKV]").
//
// Lines beginning with '#' are comments. Dictionary files can be compressed
// using gzip or the dictzip format.
//
// A [Dictionary] supports three kinds of searches:
//  1. [Dictionary.Find] returns characters whose decomposition contains all of
//     the given components.
//  2. [Dictionary.Match] returns characters whose decomposition matches a
//     pattern. The pattern may contain a wildcard component ('.' by default).
//  3. [Dictionary.PartialMatch] returns characters with a component that
//     matches a pattern.
package ids
