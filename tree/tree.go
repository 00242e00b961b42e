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

// Package tree implements decomposition trees for Ideographic Description
// Sequences and a parser for their text form.
//
// A decomposition tree is one of:
//  1. An [Atom]: a single character that is not decomposed further.
//  2. An [Opaque] component: free text given in braces, e.g. {柬中}.
//  3. A [Composition]: an operator followed by exactly as many children as
//     the operator's arity, e.g. ⿰亻人.
//
// Trees are immutable once built and are compared with [Equal].
package tree

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-ids/idc"
)

// Tree is a decomposition tree. The set of implementations is closed: a
// Tree is always an [Atom], an [Opaque] or a *[Composition].
type Tree interface {
	// String renders the tree in the IDS text grammar.
	String() string

	isTree()
}

// Atom is a single irreducible character.
type Atom rune

func (Atom) isTree() {}

// String implements [Tree.String].
func (a Atom) String() string {
	return string(rune(a))
}

// Opaque is a component given as unanalyzed free text.
type Opaque string

func (Opaque) isTree() {}

// String implements [Tree.String].
func (o Opaque) String() string {
	return "{" + string(o) + "}"
}

// Composition is an operator applied to its children. The number of children
// always equals the operator's arity.
type Composition struct {
	op       idc.Operator
	children []Tree
}

func (*Composition) isTree() {}

// Compose returns a new composition. It panics if the number of children
// does not equal the operator's arity.
func Compose(op idc.Operator, children ...Tree) *Composition {
	if len(children) != op.Arity() {
		panic(fmt.Sprintf("tree: Compose(%c): want %d children, got %d", rune(op), op.Arity(), len(children)))
	}
	c := make([]Tree, len(children))
	copy(c, children)
	return &Composition{
		op:       op,
		children: c,
	}
}

// Operator returns the composition's operator.
func (c *Composition) Operator() idc.Operator {
	return c.op
}

// Len returns the number of children.
func (c *Composition) Len() int {
	return len(c.children)
}

// Child returns the i-th child.
func (c *Composition) Child(i int) Tree {
	return c.children[i]
}

// Children returns a copy of the composition's children.
func (c *Composition) Children() []Tree {
	children := make([]Tree, len(c.children))
	copy(children, c.children)
	return children
}

// String implements [Tree.String].
func (c *Composition) String() string {
	var b strings.Builder
	b.WriteRune(rune(c.op))
	for _, child := range c.children {
		b.WriteString(child.String())
	}
	return b.String()
}

// Equal returns true if a and b are structurally equal.
func Equal(a, b Tree) bool {
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x == y
	case Opaque:
		y, ok := b.(Opaque)
		return ok && x == y
	case *Composition:
		y, ok := b.(*Composition)
		if !ok || x.op != y.op || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Format renders a tagged tree. Named tags with a non-empty label are
// rendered in brackets after the tree. Other tags are omitted.
func Format(t Tree, tag Tag) string {
	if tag.Label() == "" {
		return t.String()
	}
	return t.String() + "[" + tag.Label() + "]"
}
