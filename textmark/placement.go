// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textmark

import (
	"sort"
	"unicode"

	"github.com/bitmark-inc/watermark/fault"
)

// Placement - select the rune indices that an invisible character
// may follow
type Placement func(text []rune) []int

// SpacePositions - every U+0020 character
func SpacePositions(text []rune) []int {
	positions := make([]int, 0, len(text)/4)
	for i, c := range text {
		if ' ' == c {
			positions = append(positions, i)
		}
	}
	return positions
}

// WhitespacePositions - every Unicode white space character
func WhitespacePositions(text []rune) []int {
	positions := make([]int, 0, len(text)/4)
	for i, c := range text {
		if unicode.IsSpace(c) {
			positions = append(positions, i)
		}
	}
	return positions
}

var placements = map[string]Placement{
	"":           SpacePositions,
	"spaces":     SpacePositions,
	"whitespace": WhitespacePositions,
}

// PlacementByName - look up a built-in placement
func PlacementByName(name string) (Placement, error) {
	p, ok := placements[name]
	if !ok {
		return nil, fault.ErrUnknownPlacement
	}
	return p, nil
}

// run the placement and return sorted, distinct, in-range indices
func (e *Engine) positions(text []rune) []int {
	raw := e.placement(text)
	positions := make([]int, 0, len(raw))
	for _, p := range raw {
		if p >= 0 && p < len(text) {
			positions = append(positions, p)
		}
	}
	sort.Ints(positions)

	n := 0
	for i, p := range positions {
		if 0 == i || positions[n-1] != p {
			positions[n] = p
			n += 1
		}
	}
	return positions[:n]
}
