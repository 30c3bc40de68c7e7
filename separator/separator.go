// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package separator - how consecutive watermarks are delimited in text
package separator

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/watermark/fault"
)

// Kind - the closed set of delimiting policies
type Kind uint8

// enumerate the strategies
const (
	// leave one insert position empty after each copy
	SkipInsertPosition = Kind(iota)
	// one character before each copy
	SingleSeparatorChar = Kind(iota)
	// one character opens and another closes each copy
	StartEndSeparatorChars = Kind(iota)
)

// default delimiter characters
const (
	DefaultSeparatorChar = '\u2007' // figure space
	DefaultStartChar     = '\u2062' // invisible times
	DefaultEndChar       = '\u2063' // invisible separator
)

// Strategy - a delimiting policy with its characters
type Strategy struct {
	kind  Kind
	start rune
	end   rune
}

// Skip - leave an insert position unfilled after each copy
func Skip() Strategy {
	return Strategy{kind: SkipInsertPosition}
}

// Single - a separator character before each copy
func Single(c rune) Strategy {
	return Strategy{kind: SingleSeparatorChar, start: c}
}

// StartEnd - separate opening and closing characters around each copy
func StartEnd(start rune, end rune) (Strategy, error) {
	if start == end {
		return Strategy{}, fault.ErrDuplicateSeparatorCharacter
	}
	return Strategy{kind: StartEndSeparatorChars, start: start, end: end}, nil
}

// Default - single separator using the figure space
func Default() Strategy {
	return Single(DefaultSeparatorChar)
}

// New - build a strategy from a kind and its characters
//
// a nil or empty characters list selects the default characters
func New(kind Kind, characters []rune) (Strategy, error) {
	switch kind {
	case SkipInsertPosition:
		return Skip(), nil

	case SingleSeparatorChar:
		switch len(characters) {
		case 0:
			return Default(), nil
		case 1:
			return Single(characters[0]), nil
		}

	case StartEndSeparatorChars:
		switch len(characters) {
		case 0:
			return StartEnd(DefaultStartChar, DefaultEndChar)
		case 2:
			return StartEnd(characters[0], characters[1])
		}

	default:
		return Strategy{}, fault.ErrUnknownSeparator
	}
	return Strategy{}, fault.ErrMissingSeparatorCharacter
}

// ParseKind - the strategy name used in configuration files
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "skip", "skip-insert-position":
		return SkipInsertPosition, nil
	case "single", "single-separator-char", "":
		return SingleSeparatorChar, nil
	case "start-end", "start-end-separator-chars":
		return StartEndSeparatorChars, nil
	default:
		return 0, fault.ErrUnknownSeparator
	}
}

// String - name of the kind
func (k Kind) String() string {
	switch k {
	case SkipInsertPosition:
		return "skip"
	case SingleSeparatorChar:
		return "single"
	case StartEndSeparatorChars:
		return "start-end"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Kind - which policy
func (s Strategy) Kind() Kind {
	return s.kind
}

// Separator - the single separator character
func (s Strategy) Separator() rune {
	return s.start
}

// Start - the opening character
func (s Strategy) Start() rune {
	return s.start
}

// End - the closing character
func (s Strategy) End() rune {
	return s.end
}

// Characters - the delimiter characters of this strategy
func (s Strategy) Characters() []rune {
	switch s.kind {
	case SingleSeparatorChar:
		return []rune{s.start}
	case StartEndSeparatorChars:
		return []rune{s.start, s.end}
	default:
		return nil
	}
}

// FullAlphabet - delimiters followed by the transcoding alphabet with
// duplicates removed; none of these may occur in text before embedding
func (s Strategy) FullAlphabet(alphabet []rune) []rune {
	seen := make(map[rune]struct{})
	result := make([]rune, 0, len(alphabet)+2)
	for _, list := range [][]rune{s.Characters(), alphabet} {
		for _, c := range list {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			result = append(result, c)
		}
	}
	return result
}

// Wrap - surround an encoded watermark with the delimiters
func (s Strategy) Wrap(encoded []rune) []rune {
	switch s.kind {
	case SingleSeparatorChar:
		result := make([]rune, 0, len(encoded)+1)
		result = append(result, s.start)
		return append(result, encoded...)

	case StartEndSeparatorChars:
		result := make([]rune, 0, len(encoded)+2)
		result = append(result, s.start)
		result = append(result, encoded...)
		return append(result, s.end)

	default:
		result := make([]rune, len(encoded))
		copy(result, encoded)
		return result
	}
}

// WrappedLength - length of Wrap for an encoded length
func (s Strategy) WrappedLength(encodedLength int) int {
	return encodedLength + len(s.Characters())
}

// ReservedPositions - insert positions left empty after each copy
func (s Strategy) ReservedPositions() int {
	if SkipInsertPosition == s.kind {
		return 1
	}
	return 0
}

// String - for log output
func (s Strategy) String() string {
	switch s.kind {
	case SingleSeparatorChar:
		return fmt.Sprintf("single(%U)", s.start)
	case StartEndSeparatorChars:
		return fmt.Sprintf("start-end(%U, %U)", s.start, s.end)
	default:
		return s.kind.String()
	}
}
