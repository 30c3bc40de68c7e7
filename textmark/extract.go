// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textmark

import (
	"github.com/bitmark-inc/watermark/aggregate"
	"github.com/bitmark-inc/watermark/carrier"
	"github.com/bitmark-inc/watermark/fault"
	"github.com/bitmark-inc/watermark/separator"
	"github.com/bitmark-inc/watermark/watermarkrecord"
)

// GetWatermarks - decode every delimited copy found in text
//
// when no delimited copy exists all encoding characters of the text
// are decoded as one incomplete watermark.  Copies that decode to
// nothing are dropped.  Problems are reported as warnings.
func (e *Engine) GetWatermarks(text string) ([][]byte, *fault.Status) {
	status := fault.NewStatus()
	runes := []rune(text)

	var spans [][]rune
	switch e.separator.Kind() {
	case separator.SkipInsertPosition:
		spans = e.skipSpans(runes)
	case separator.SingleSeparatorChar:
		spans = e.singleSpans(runes)
	case separator.StartEndSeparatorChars:
		spans = e.startEndSpans(runes)
	}

	delimited := 0 != len(spans)
	if !delimited {
		content := e.encodingCharacters(runes)
		if 0 == len(content) {
			return [][]byte{}, status
		}
		status.Add(fault.IncompleteWatermark(source))
		spans = [][]rune{content}
	}

	digits := e.transcoder.DigitsPerByte()
	watermarks := make([][]byte, 0, len(spans))
	for _, span := range spans {
		if delimited && 0 != len(span)%digits {
			status.Add(fault.IncompleteWatermark(source))
		}
		decoded, s := e.transcoder.Decode(span)
		status.Merge(s)
		if 0 == len(decoded) {
			continue
		}
		watermarks = append(watermarks, decoded)
	}

	if nil != e.log {
		e.log.Debugf("get watermarks: %d spans  %d watermarks", len(spans), len(watermarks))
	}
	e.report("get watermarks", status)

	return watermarks, status
}

// Extract - get watermarks then aggregate them
func (e *Engine) Extract(text string, options aggregate.Options) ([][]byte, *fault.Status) {
	watermarks, status := e.GetWatermarks(text)
	result, s := aggregate.Apply(watermarks, options)
	status.Merge(s)
	return result, status
}

// GetRecords - get watermarks and parse each as a tagged record
//
// records that fail to parse are dropped and reported
func (e *Engine) GetRecords(text string) ([]watermarkrecord.Record, *fault.Status) {
	watermarks, extraction := e.GetWatermarks(text)
	records, status := watermarkrecord.ParseAll(watermarks)
	status.Merge(extraction)
	return records, status
}

// GetWatermarksFrom - get watermarks from a carrier's content
func (e *Engine) GetWatermarksFrom(c carrier.Carrier) ([][]byte, *fault.Status) {
	text, err := c.Content()
	if nil != err {
		return nil, carrierStatus(err)
	}
	return e.GetWatermarks(text)
}

// the content after each separator up to the next separator or the
// end of text, anything before the first separator is ignored
func (e *Engine) singleSpans(text []rune) [][]rune {
	sep := e.separator.Separator()

	spans := [][]rune{}
	started := false
	var current []rune
	for _, c := range text {
		switch {
		case sep == c:
			if started && 0 != len(current) {
				spans = append(spans, current)
			}
			started = true
			current = nil
		case e.transcoder.Contains(c):
			if started {
				current = append(current, c)
			}
		}
	}
	if started && 0 != len(current) {
		spans = append(spans, current)
	}
	return spans
}

// start..end pairs, an end without a start closes everything since
// the previous end and an unterminated start is discarded
func (e *Engine) startEndSpans(text []rune) [][]rune {
	start := e.separator.Start()
	end := e.separator.End()

	spans := [][]rune{}
	open := false
	var current []rune
	var sinceEnd []rune
	for _, c := range text {
		switch {
		case start == c:
			open = true
			current = nil
		case end == c:
			span := sinceEnd
			if open {
				span = current
			}
			if 0 != len(span) {
				spans = append(spans, span)
			}
			open = false
			current = nil
			sinceEnd = nil
		case e.transcoder.Contains(c):
			if open {
				current = append(current, c)
			}
			sinceEnd = append(sinceEnd, c)
		}
	}
	return spans
}

// insert positions of the stripped text are replayed: a position
// followed by encoding characters continues the current copy and an
// empty position ends it
func (e *Engine) skipSpans(text []rune) [][]rune {
	stripped := make([]rune, 0, len(text))
	following := make([][]rune, 0, len(text))
	for _, c := range text {
		if !e.isInvisible(c) {
			stripped = append(stripped, c)
			following = append(following, nil)
			continue
		}
		n := len(stripped)
		if 0 != n && e.transcoder.Contains(c) {
			following[n-1] = append(following[n-1], c)
		}
	}

	spans := [][]rune{}
	var current []rune
	for _, p := range e.positions(stripped) {
		if 0 != len(following[p]) {
			current = append(current, following[p]...)
			continue
		}
		if 0 != len(current) {
			spans = append(spans, current)
			current = nil
		}
	}
	return spans
}

func (e *Engine) encodingCharacters(text []rune) []rune {
	content := make([]rune, 0, len(text))
	for _, c := range text {
		if e.transcoder.Contains(c) {
			content = append(content, c)
		}
	}
	return content
}
