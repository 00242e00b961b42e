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

// Package folding implements text folding for IDS query text.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// WhitespaceRemover removes all whitespace from the input. IDS text never
// contains significant whitespace so queries like "⿰ 亻 人" are read as
// "⿰亻人".
type WhitespaceRemover struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (WhitespaceRemover) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			continue
		}

		// Copy the original bytes so that invalid UTF-8 is passed through
		// for the parser to report.
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Query returns a function that creates transformers for query text. The
// transformer removes whitespace and, if nfc is true, normalizes the text to
// Unicode Normalization Form C.
func Query(nfc bool) func() transform.Transformer {
	if nfc {
		return func() transform.Transformer {
			return transform.Chain(norm.NFC, WhitespaceRemover{})
		}
	}
	return func() transform.Transformer {
		return WhitespaceRemover{}
	}
}

// Lines returns a function that creates transformers for dictionary lines.
// If nfc is false the lines are not changed.
func Lines(nfc bool) func() transform.Transformer {
	if nfc {
		return func() transform.Transformer {
			return norm.NFC
		}
	}
	return func() transform.Transformer {
		return transform.Nop
	}
}
