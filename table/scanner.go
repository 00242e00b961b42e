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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/transform"
)

const byteOrderMark = "\uFEFF"

// MaxLineLength is the maximum length of a dictionary line in bytes,
// including its line ending. Longer lines are skipped and reported as record
// errors.
const MaxLineLength = 64 * 1024

// errorTextLength is the number of bytes of an over-long line kept in its
// RecordError.
const errorTextLength = 32

// Scanner scans dictionary records from start to end. Blank lines and lines
// starting with '#' are skipped.
type Scanner struct {
	r      *bufio.Reader
	folder func() transform.Transformer

	line    int
	record  Record
	err     error
	readErr error
}

// NewScanner returns a new record scanner. If folder is non-nil, each line
// is transformed by a new transformer returned by folder before it is
// parsed.
func NewScanner(r io.Reader, folder func() transform.Transformer) *Scanner {
	return &Scanner{
		r:      bufio.NewReader(r),
		folder: folder,
	}
}

// Scan advances the scanner to the next record. It returns false if the
// scan stops either by reaching the end of the input or a read error. A
// malformed record does not stop the scan. It is reported by Record.
func (s *Scanner) Scan() bool {
	for {
		text, tooLong, err := s.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.readErr = err
			}
			return false
		}
		s.line++
		if tooLong {
			s.record = Record{Line: s.line}
			s.err = &RecordError{Line: s.line, Text: text, Err: ErrLineTooLong}
			return true
		}
		if s.line == 1 {
			text = strings.TrimPrefix(text, byteOrderMark)
		}

		if s.folder != nil {
			folded, _, err := transform.String(s.folder(), text)
			if err != nil {
				s.record = Record{}
				s.err = &RecordError{Line: s.line, Text: text, Err: fmt.Errorf("%w: folding: %w", ErrRecord, err)}
				return true
			}
			text = folded
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		s.record, s.err = ParseRecord(text)
		if s.err != nil {
			var recErr *RecordError
			if errors.As(s.err, &recErr) {
				recErr.Line = s.line
			}
		}
		s.record.Line = s.line
		return true
	}
}

// readLine reads the next line without its line ending. If the line is
// longer than MaxLineLength the rest of it is discarded, tooLong is true and
// only the start of the line is returned.
func (s *Scanner) readLine() (string, bool, error) {
	var line []byte
	var n int
	for {
		chunk, err := s.r.ReadSlice('\n')
		n += len(chunk)
		if n <= MaxLineLength {
			line = append(line, chunk...)
		} else if len(line) < errorTextLength {
			line = append(line, chunk[:min(len(chunk), errorTextLength-len(line))]...)
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if n == 0 {
				return "", false, io.EOF
			}
		case err != nil:
			//nolint:wrapcheck // error should not be wrapped
			return "", false, err
		}

		if n > MaxLineLength {
			if len(line) > errorTextLength {
				line = line[:errorTextLength]
			}
			return strings.ToValidUTF8(string(line), ""), true, nil
		}
		text := strings.TrimSuffix(string(line), "\n")
		return strings.TrimSuffix(text, "\r"), false, nil
	}
}

// Record returns the most recent record read by Scan. The error is a
// *RecordError if the line could not be parsed as a record.
func (s *Scanner) Record() (Record, error) {
	return s.record, s.err
}

// Line returns the line number of the most recent record.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first read error encountered.
func (s *Scanner) Err() error {
	return s.readErr
}
