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

package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrRecord is a parent error for all dictionary record errors.
	ErrRecord = errors.New("invalid record")

	// ErrRecordTooShort indicates a record without a code, a character and
	// at least one decomposition.
	ErrRecordTooShort = fmt.Errorf("%w: too few fields", ErrRecord)

	// ErrInvalidCharacter indicates the character field is not valid UTF-8.
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrRecord)

	// ErrLineTooLong indicates a line longer than MaxLineLength.
	ErrLineTooLong = fmt.Errorf("%w: line too long", ErrRecord)
)

// RecordError is a problem with a single dictionary record or with one of
// its decompositions. Record errors are not fatal. The record or
// decomposition is skipped and loading continues.
type RecordError struct {
	// Line is the 1-based line number of the record, or zero if unknown.
	Line int

	// Text is the offending record or decomposition text.
	Text string

	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// Record is a dictionary record. A record line has the form
//
//	code character tree1 tree2 ...
//
// where each tree is a decomposition in IDS text form with an optional tag.
type Record struct {
	// Line is the 1-based line number the record was read from.
	Line int

	// Code is the record's code field. It is informational only.
	Code string

	// Char is the character being decomposed.
	Char rune

	// Trees are the unparsed tagged decompositions.
	Trees []string
}

// ParseRecord parses a single record line. Fields are separated by
// whitespace.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Record{}, &RecordError{Text: line, Err: ErrRecordTooShort}
	}

	c, size := utf8.DecodeRuneInString(fields[1])
	if c == utf8.RuneError && size <= 1 {
		return Record{}, &RecordError{Text: line, Err: ErrInvalidCharacter}
	}

	return Record{
		Code:  fields[0],
		Char:  c,
		Trees: fields[2:],
	}, nil
}
