// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aggregate - collapse many recovered copies of a watermark
//
// a text usually carries several copies of the same watermark, some
// of them damaged; Squash keeps the distinct values and MostFrequent
// keeps the value seen most often
package aggregate

import (
	"github.com/bitmark-inc/watermark/fault"
)

const source = "aggregate"

// Options - the two independent extraction toggles
type Options struct {
	Squash          bool `gluamapper:"squash" json:"squash"`
	SingleWatermark bool `gluamapper:"single_watermark" json:"single_watermark"`
}

// watermarks with identical bytes
type group struct {
	value []byte
	count int
}

// group by byte content keeping first-seen order
func groupBy(watermarks [][]byte) []*group {
	index := make(map[string]*group, len(watermarks))
	groups := make([]*group, 0, len(watermarks))
	for _, w := range watermarks {
		key := string(w)
		if g, ok := index[key]; ok {
			g.count += 1
			continue
		}
		g := &group{value: w, count: 1}
		index[key] = g
		groups = append(groups, g)
	}
	return groups
}

// Squash - the distinct watermarks in first-seen order
func Squash(watermarks [][]byte) [][]byte {
	groups := groupBy(watermarks)
	result := make([][]byte, len(groups))
	for i, g := range groups {
		result[i] = g.value
	}
	return result
}

// MostFrequent - the watermark seen most often, repeated by its count
//
// a tie is not broken: every tied value is returned, each repeated by
// its count, together with a warning giving the number of tied values
func MostFrequent(watermarks [][]byte) ([][]byte, *fault.Status) {
	status := fault.NewStatus()
	if 0 == len(watermarks) {
		return [][]byte{}, status
	}

	groups := groupBy(watermarks)
	highest := 0
	for _, g := range groups {
		if g.count > highest {
			highest = g.count
		}
	}

	result := make([][]byte, 0, len(watermarks))
	tied := 0
	for _, g := range groups {
		if g.count != highest {
			continue
		}
		tied += 1
		for i := 0; i < g.count; i += 1 {
			result = append(result, g.value)
		}
	}

	if tied > 1 {
		status.Add(fault.MultipleMostFrequent(source, tied))
	}
	return result, status
}

// Apply - most frequent selection first, then squash
func Apply(watermarks [][]byte, options Options) ([][]byte, *fault.Status) {
	status := fault.NewStatus()
	result := watermarks
	if options.SingleWatermark {
		var s *fault.Status
		result, s = MostFrequent(result)
		status.Merge(s)
	}
	if options.Squash {
		result = Squash(result)
	}
	return result, status
}
