// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watermarkrecord

import (
	"github.com/bitmark-inc/watermark/fault"
)

// Parse - turn an untrusted byte slice into a validated record
//
// the record refers to the bytes, no copy is made; an unknown tag
// produces exactly one UnknownTag event and no validation
func Parse(b []byte) (Record, *fault.Status) {
	if 0 == len(b) {
		return Record{}, fault.StatusOf(fault.NotEnoughData(source, tagLength, 0))
	}

	tag := TagType(b[0])
	if !tag.Valid() {
		return Record{}, fault.StatusOf(fault.UnknownTag(source, b[0]))
	}

	r := Record{tag: tag, packed: b}
	return r, r.Validate()
}

// Deserialize - inverse of Serialize for the container layer
func Deserialize(b []byte) (Record, *fault.Status) {
	return Parse(b)
}

// ParseAll - parse a batch of raw watermarks
//
// every record that parsed without an error is returned; when some
// but not all items fail the status is downgraded to a warning and a
// summary event is appended so the successful items are not lost
func ParseAll(raw [][]byte) ([]Record, *fault.Status) {
	status := fault.NewStatus()
	records := make([]Record, 0, len(raw))
	failed := 0

	for _, b := range raw {
		r, s := Parse(b)
		status.Merge(s)
		if s.IsError() {
			failed += 1
			continue
		}
		records = append(records, r)
	}

	if failed > 0 && len(records) > 0 {
		status.OverrideSeverity(fault.Warning)
		status.Add(fault.SomeItemsFailed(source, failed, len(raw)))
	}
	return records, status
}

// Contents - the content of each record, skipping any that fail
func Contents(records []Record) ([][]byte, *fault.Status) {
	status := fault.NewStatus()
	result := make([][]byte, 0, len(records))
	for _, r := range records {
		content, s := r.Content()
		status.Merge(s)
		if s.IsError() {
			continue
		}
		result = append(result, content)
	}
	return result, status
}
