// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textmark

import (
	"strings"

	"github.com/bitmark-inc/watermark/carrier"
	"github.com/bitmark-inc/watermark/fault"
)

// AddWatermark - embed as many complete copies of watermark as the
// text has insert positions for
//
// returns the marked text and the rune index of the first insert
// position of each copy.  Positions left over after the last complete
// copy receive nothing.  A text that already holds any invisible
// character is returned unchanged with an error status.  When not even
// one copy fits, the leading part of the encoded watermark is embedded
// without delimiters and a warning is reported.
func (e *Engine) AddWatermark(text string, watermark []byte) (string, []int, *fault.Status) {
	status := fault.NewStatus()
	runes := []rune(text)

	if offending := e.invisibleIn(runes); 0 != len(offending) {
		status.Add(fault.AlphabetInText(source, offending))
		e.report("add watermark", status)
		return text, nil, status
	}

	if 0 == len(watermark) {
		return text, []int{}, status
	}

	positions := e.positions(runes)
	encoded := e.transcoder.Encode(watermark)
	sequence := e.separator.Wrap(encoded)
	chunk := len(sequence) + e.separator.ReservedPositions()

	inserts := make(map[int]rune, len(positions))
	starts := make([]int, 0, len(positions)/chunk+1)

	copies := len(positions) / chunk
	if 0 == copies {
		status.Add(fault.OversizedWatermark(source, chunk, len(positions)))
		n := len(encoded)
		if n > len(positions) {
			n = len(positions)
		}
		for i := 0; i < n; i += 1 {
			inserts[positions[i]] = encoded[i]
		}
		if 0 != n {
			starts = append(starts, positions[0])
		}
	} else {
		// positions after the last complete copy are left unused
		for k := 0; k < copies; k += 1 {
			base := k * chunk
			for j, c := range sequence {
				inserts[positions[base+j]] = c
			}
			starts = append(starts, positions[base])
		}
	}

	var b strings.Builder
	b.Grow(len(text) + 4*len(inserts))
	for i, c := range runes {
		b.WriteRune(c)
		if ic, ok := inserts[i]; ok {
			b.WriteRune(ic)
		}
	}

	if nil != e.log {
		e.log.Debugf("add watermark: %d bytes  %d copies  %d of %d positions used", len(watermark), copies, len(inserts), len(positions))
	}
	e.report("add watermark", status)

	return b.String(), starts, status
}

// AddWatermarkTo - embed watermark into a carrier's content
//
// the carrier is only updated when embedding did not fail
func (e *Engine) AddWatermarkTo(c carrier.Carrier, watermark []byte) ([]int, *fault.Status) {
	text, err := c.Content()
	if nil != err {
		return nil, carrierStatus(err)
	}

	marked, starts, status := e.AddWatermark(text, watermark)
	if status.IsError() {
		return nil, status
	}

	err = c.SetContent(marked)
	if nil != err {
		status.Add(fault.CarrierAccess(source, err))
		return nil, status
	}
	return starts, status
}

// each distinct invisible character present, in order of first occurrence
func (e *Engine) invisibleIn(text []rune) []rune {
	seen := make(map[rune]struct{})
	found := []rune{}
	for _, c := range text {
		if !e.isInvisible(c) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		found = append(found, c)
	}
	return found
}

func carrierStatus(err error) *fault.Status {
	if s, ok := err.(*fault.Status); ok {
		return s
	}
	return fault.StatusOf(fault.CarrierAccess(source, err))
}
