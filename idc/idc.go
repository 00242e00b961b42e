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

// Package idc implements Ideographic Description Characters.
//
// An Ideographic Description Character (IDC) is an operator in an
// Ideographic Description Sequence. Each operator describes how its
// children are laid out relative to each other and takes a fixed number of
// children:
//  1. ⿾ and ⿿ take a single child.
//  2. ⿲ and ⿳ take three children.
//  3. All other operators take two children.
package idc

import (
	"strings"
)

// Operator is an Ideographic Description Character.
type Operator rune

const (
	// LeftToRight is ⿰.
	LeftToRight = Operator('⿰')

	// AboveToBelow is ⿱.
	AboveToBelow = Operator('⿱')

	// LeftToMiddleAndRight is ⿲.
	LeftToMiddleAndRight = Operator('⿲')

	// AboveToMiddleAndBelow is ⿳.
	AboveToMiddleAndBelow = Operator('⿳')

	// FullSurround is ⿴.
	FullSurround = Operator('⿴')

	// SurroundFromAbove is ⿵.
	SurroundFromAbove = Operator('⿵')

	// SurroundFromBelow is ⿶.
	SurroundFromBelow = Operator('⿶')

	// SurroundFromLeft is ⿷.
	SurroundFromLeft = Operator('⿷')

	// SurroundFromUpperLeft is ⿸.
	SurroundFromUpperLeft = Operator('⿸')

	// SurroundFromUpperRight is ⿹.
	SurroundFromUpperRight = Operator('⿹')

	// SurroundFromLowerLeft is ⿺.
	SurroundFromLowerLeft = Operator('⿺')

	// Overlaid is ⿻.
	Overlaid = Operator('⿻')

	// SurroundFromRight is ⿼.
	SurroundFromRight = Operator('⿼')

	// SurroundFromLowerRight is ⿽.
	SurroundFromLowerRight = Operator('⿽')

	// HorizontalReflection is ⿾.
	HorizontalReflection = Operator('⿾')

	// Rotation is ⿿.
	Rotation = Operator('⿿')

	// Subtraction is ㇯.
	Subtraction = Operator('㇯')
)

// Operators is the string of all known operators.
const Operators = "⿰⿱⿲⿳⿴⿵⿶⿷⿸⿹⿺⿻⿼⿽⿾⿿㇯"

// Direction is the layout direction of an operator.
type Direction int

const (
	// Other is the direction of enclosing, overlaid and unary operators.
	Other Direction = iota

	// Horizontal is the direction of operators that lay out children left
	// to right.
	Horizontal

	// Vertical is the direction of operators that lay out children top to
	// bottom.
	Vertical
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "other"
	}
}

// IsOperator returns true if r is a known operator.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Arity returns the number of children the operator takes.
func (op Operator) Arity() int {
	switch op {
	case HorizontalReflection, Rotation:
		return 1
	case LeftToMiddleAndRight, AboveToMiddleAndBelow:
		return 3
	default:
		return 2
	}
}

// Direction returns the layout direction of the operator.
func (op Operator) Direction() Direction {
	switch op {
	case LeftToRight, LeftToMiddleAndRight:
		return Horizontal
	case AboveToBelow, AboveToMiddleAndBelow:
		return Vertical
	default:
		return Other
	}
}

// Reduce returns the binary operator with the same direction as a ternary
// operator. The second return value is false if op has no reduction.
func (op Operator) Reduce() (Operator, bool) {
	switch op {
	case LeftToMiddleAndRight:
		return LeftToRight, true
	case AboveToMiddleAndBelow:
		return AboveToBelow, true
	default:
		return 0, false
	}
}

// String returns the operator character.
func (op Operator) String() string {
	return string(rune(op))
}
