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
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ianlewis/go-ids/idc"
)

// ErrSyntax indicates that text is not a valid decomposition.
var ErrSyntax = errors.New("invalid IDS")

// SyntaxError is a parse failure at a byte offset in the input text.
type SyntaxError struct {
	// Text is the full input text.
	Text string

	// Offset is the byte offset at which parsing failed.
	Offset int

	// Msg describes the failure.
	Msg string
}

// Error implements error.Error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v %q: %s at offset %d", ErrSyntax, e.Text, e.Msg, e.Offset)
}

// Unwrap returns [ErrSyntax].
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Text:   p.text,
		Offset: p.pos,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.text)
}

// Parse parses text as a single decomposition tree. The whole text must be
// consumed.
func Parse(text string) (Tree, error) {
	p := &parser{text: text}
	t, err := p.tree()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected trailing text %q", p.text[p.pos:])
	}
	return t, nil
}

// ParseTagged parses text as a decomposition tree optionally followed by a
// tag in brackets, e.g. ⿰亻人[G]. A missing tag yields a [Named] tag with an
// empty label.
func ParseTagged(text string) (Tree, Tag, error) {
	p := &parser{text: text}
	t, err := p.tree()
	if err != nil {
		return nil, Tag{}, err
	}

	tag := Named("")
	if !p.eof() && p.text[p.pos] == '[' {
		label, err := p.delimited('[', ']')
		if err != nil {
			return nil, Tag{}, err
		}
		tag = Named(label)
	}

	if !p.eof() {
		return nil, Tag{}, p.errorf("unexpected trailing text %q", p.text[p.pos:])
	}
	return t, tag, nil
}

// tree parses a composition, an opaque component, or an atom.
func (p *parser) tree() (Tree, error) {
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}

	r, size := utf8.DecodeRuneInString(p.text[p.pos:])
	switch {
	case r == utf8.RuneError && size <= 1:
		return nil, p.errorf("invalid UTF-8")
	case idc.IsOperator(r):
		p.pos += size
		return p.composition(idc.Operator(r))
	case r == '{':
		label, err := p.delimited('{', '}')
		if err != nil {
			return nil, err
		}
		return Opaque(label), nil
	case r == '[':
		return nil, p.errorf("unexpected %q", r)
	default:
		p.pos += size
		return Atom(r), nil
	}
}

func (p *parser) composition(op idc.Operator) (*Composition, error) {
	arity := op.Arity()
	children := make([]Tree, 0, arity)
	for len(children) < arity {
		if p.eof() {
			return nil, p.errorf("%v expects %d components, got %d", op, arity, len(children))
		}
		child, err := p.tree()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &Composition{
		op:       op,
		children: children,
	}, nil
}

// delimited parses non-empty text between the left and right delimiters.
func (p *parser) delimited(left, right byte) (string, error) {
	// Skip the left delimiter.
	start := p.pos + 1
	i := strings.IndexByte(p.text[start:], right)
	switch {
	case i < 0:
		return "", p.errorf("unterminated %q", left)
	case i == 0:
		return "", p.errorf("empty %c%c", left, right)
	}
	p.pos = start + i + 1
	return p.text[start : start+i], nil
}
