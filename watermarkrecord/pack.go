// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watermarkrecord

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/watermark/fault"
)

// New - build a record of the given variant around a payload
//
// the record is laid out with zeroed size/checksum/hash fields, the
// size is written directly and then, once every other byte is final,
// the checksum or hash is computed over the whole record (its own
// field still zero) and written into a copy that becomes the result
func New(tag TagType, payload []byte) (Record, error) {
	if !tag.Valid() {
		return Record{}, fault.ErrUnknownTag
	}
	l := tag.layout()

	stored := payload
	if tag.Has(FlagCompressed) {
		// only an in-memory writer is involved so the flate error
		// carries nothing a caller could act on
		compressed, err := deflate(payload)
		if nil != err {
			return Record{}, fault.ErrCompressionFailed
		}
		stored = compressed
	}

	total := l.payload + len(stored)
	if !l.size.empty() && uint64(total) > math.MaxUint32 {
		return Record{}, fault.ErrRecordTooLarge
	}

	buffer := make(Packed, total)
	buffer[0] = byte(tag)
	copy(buffer[l.payload:], stored)

	if !l.size.empty() {
		binary.LittleEndian.PutUint32(buffer[l.size.start:l.size.end], uint32(total))
	}

	switch {
	case !l.checksum.empty():
		sum := make([]byte, checksumLength)
		binary.LittleEndian.PutUint32(sum, computeChecksum(buffer, l.checksum))
		buffer = backfill(buffer, l.checksum, sum)

	case !l.hash.empty():
		buffer = backfill(buffer, l.hash, computeHash(buffer, l.hash))
	}

	return Record{tag: tag, packed: buffer}, nil
}

// NewRaw - payload only
func NewRaw(payload []byte) (Record, error) { return New(RawTag, payload) }

// NewSized - size field and payload
func NewSized(payload []byte) (Record, error) { return New(SizedTag, payload) }

// NewChecksum - CRC-32 field and payload
func NewChecksum(payload []byte) (Record, error) { return New(ChecksumTag, payload) }

// NewSizedChecksum - size and CRC-32 fields and payload
func NewSizedChecksum(payload []byte) (Record, error) { return New(SizedChecksumTag, payload) }

// NewHash - SHA3-256 field and payload
func NewHash(payload []byte) (Record, error) { return New(HashTag, payload) }

// NewSizedHash - size and SHA3-256 fields and payload
func NewSizedHash(payload []byte) (Record, error) { return New(SizedHashTag, payload) }

// NewCompressedRaw - compressed payload only
func NewCompressedRaw(payload []byte) (Record, error) { return New(CompressedRawTag, payload) }

// NewCompressedSized - size field and compressed payload
func NewCompressedSized(payload []byte) (Record, error) { return New(CompressedSizedTag, payload) }

// NewCompressedChecksum - CRC-32 field and compressed payload
func NewCompressedChecksum(payload []byte) (Record, error) {
	return New(CompressedChecksumTag, payload)
}

// NewCompressedSizedChecksum - size and CRC-32 fields and compressed payload
func NewCompressedSizedChecksum(payload []byte) (Record, error) {
	return New(CompressedSizedChecksumTag, payload)
}

// NewCompressedHash - SHA3-256 field and compressed payload
func NewCompressedHash(payload []byte) (Record, error) { return New(CompressedHashTag, payload) }

// NewCompressedSizedHash - size and SHA3-256 fields and compressed payload
func NewCompressedSizedHash(payload []byte) (Record, error) {
	return New(CompressedSizedHashTag, payload)
}

// Serialize - the bytes to store in an opaque container metadata field
func Serialize(tag TagType, payload []byte) ([]byte, error) {
	r, err := New(tag, payload)
	if nil != err {
		return nil, err
	}
	return r.Bytes(), nil
}

// copy of record with the field range overwritten
func backfill(record Packed, field span, value []byte) Packed {
	result := make(Packed, len(record))
	copy(result, record)
	copy(result[field.start:field.end], value)
	return result
}

// copy of record with the field range zeroed
func zeroed(record []byte, field span) []byte {
	buffer := make([]byte, len(record))
	copy(buffer, record)
	for i := field.start; i < field.end; i += 1 {
		buffer[i] = 0
	}
	return buffer
}

// CRC-32 (IEEE) of the whole record with the checksum field zeroed
func computeChecksum(record []byte, field span) uint32 {
	return crc32.ChecksumIEEE(zeroed(record, field))
}

// SHA3-256 of the whole record with the hash field zeroed
func computeHash(record []byte, field span) []byte {
	digest := sha3.Sum256(zeroed(record, field))
	return digest[:]
}
