// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watermarkrecord

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/watermark/fault"
)

// source name for events not tied to a variant
const source = "watermarkrecord"

// Packed - packed records are just a byte slice
type Packed []byte

// Record - one of the twelve variants over its packed bytes
//
// the packed bytes are shared with whatever the record was parsed
// from and must not be modified
type Record struct {
	tag    TagType
	packed Packed
}

// Tag - the variant of the record
func (r Record) Tag() TagType {
	return r.tag
}

// Bytes - the packed record
func (r Record) Bytes() []byte {
	return r.packed
}

// Len - number of packed bytes
func (r Record) Len() int {
	return len(r.packed)
}

// Equal - same variant and same bytes
func (r Record) Equal(other Record) bool {
	return r.tag == other.tag && bytes.Equal(r.packed, other.packed)
}

// String - for log output
func (r Record) String() string {
	return fmt.Sprintf("%s[%d]", r.tag, len(r.packed))
}

// GoString - variant name and hex bytes (for %#v)
func (r Record) GoString() string {
	return "<" + r.tag.String() + ":" + hex.EncodeToString(r.packed) + ">"
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}

// fetch a field, reporting when the record is too short to hold it
func (r Record) field(s span) ([]byte, *fault.Status) {
	if len(r.packed) < s.end {
		return nil, fault.StatusOf(fault.NotEnoughData(r.tag.String(), s.end, len(r.packed)))
	}
	return r.packed[s.start:s.end], fault.NewStatus()
}

// ExtractSize - the declared total length, sized variants only
func (r Record) ExtractSize() (uint32, *fault.Status) {
	l := r.tag.layout()
	if l.size.empty() {
		return 0, fault.StatusOf(fault.InvalidTag(r.tag.String(), uint8(r.tag|FlagSized), uint8(r.tag)))
	}
	b, status := r.field(l.size)
	if status.IsError() {
		return 0, status
	}
	return binary.LittleEndian.Uint32(b), status
}

// ExtractChecksum - the stored CRC-32, checksum variants only
func (r Record) ExtractChecksum() (uint32, *fault.Status) {
	l := r.tag.layout()
	if l.checksum.empty() {
		return 0, fault.StatusOf(fault.InvalidTag(r.tag.String(), uint8(r.tag|FlagChecksum), uint8(r.tag)))
	}
	b, status := r.field(l.checksum)
	if status.IsError() {
		return 0, status
	}
	return binary.LittleEndian.Uint32(b), status
}

// ExtractHash - the stored SHA3-256, hash variants only
func (r Record) ExtractHash() ([]byte, *fault.Status) {
	l := r.tag.layout()
	if l.hash.empty() {
		return nil, fault.StatusOf(fault.InvalidTag(r.tag.String(), uint8(r.tag|FlagHash), uint8(r.tag)))
	}
	return r.field(l.hash)
}

// Payload - the stored payload, still compressed for compressed variants
func (r Record) Payload() ([]byte, *fault.Status) {
	offset := r.tag.layout().payload
	if len(r.packed) < offset {
		return nil, fault.StatusOf(fault.NotEnoughData(r.tag.String(), offset, len(r.packed)))
	}
	return r.packed[offset:], fault.NewStatus()
}

// Content - the unwrapped payload as the caller originally supplied it
func (r Record) Content() ([]byte, *fault.Status) {
	payload, status := r.Payload()
	if status.IsError() || !r.tag.Has(FlagCompressed) {
		return payload, status
	}
	content, err := inflate(payload)
	if nil != err {
		status.Add(fault.Decompression(r.tag.String(), err))
		return nil, status
	}
	return content, status
}
