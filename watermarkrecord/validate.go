// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watermarkrecord

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/watermark/fault"
)

// Validate - run every check the variant supports
//
// all checks run even if an earlier one fails; a field that does not
// fit in the record is reported once and its check is skipped
func (r Record) Validate() *fault.Status {
	status := fault.NewStatus()
	name := r.tag.String()

	if 0 == len(r.packed) {
		status.Add(fault.NotEnoughData(name, tagLength, 0))
		return status
	}
	if byte(r.tag) != r.packed[0] {
		status.Add(fault.InvalidTag(name, uint8(r.tag), r.packed[0]))
	}

	l := r.tag.layout()
	if !l.size.empty() {
		validateSize(r.packed, l.size, name, status)
	}
	if !l.checksum.empty() {
		validateChecksum(r.packed, l.checksum, name, status)
	}
	if !l.hash.empty() {
		validateHash(r.packed, l.hash, name, status)
	}
	if r.tag.Has(FlagCompressed) {
		validateCompression(r.packed, l.payload, name, status)
	}
	return status
}

func validateSize(record []byte, field span, name string, status *fault.Status) {
	if len(record) < field.end {
		status.Add(fault.NotEnoughData(name, field.end, len(record)))
		return
	}
	declared := binary.LittleEndian.Uint32(record[field.start:field.end])
	if uint64(declared) != uint64(len(record)) {
		status.Add(fault.MismatchedSize(name, declared, len(record)))
	}
}

func validateChecksum(record []byte, field span, name string, status *fault.Status) {
	if len(record) < field.end {
		status.Add(fault.NotEnoughData(name, field.end, len(record)))
		return
	}
	stored := binary.LittleEndian.Uint32(record[field.start:field.end])
	computed := computeChecksum(record, field)
	if stored != computed {
		status.Add(fault.InvalidChecksum(name, computed, stored))
	}
}

func validateHash(record []byte, field span, name string, status *fault.Status) {
	if len(record) < field.end {
		status.Add(fault.NotEnoughData(name, field.end, len(record)))
		return
	}
	stored := record[field.start:field.end]
	computed := computeHash(record, field)
	if !bytes.Equal(stored, computed) {
		status.Add(fault.InvalidHash(name, computed, stored))
	}
}

// the preceding metadata check has already reported a short record
func validateCompression(record []byte, offset int, name string, status *fault.Status) {
	if len(record) < offset {
		return
	}
	if _, err := inflate(record[offset:]); nil != err {
		status.Add(fault.Decompression(name, err))
	}
}
