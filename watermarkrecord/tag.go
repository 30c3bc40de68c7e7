// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watermarkrecord

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/watermark/fault"
)

// TagType - first byte of every record
type TagType uint8

// capability flags
const (
	FlagCompressed = TagType(0x40)
	FlagSized      = TagType(0x20)
	FlagChecksum   = TagType(0x10)
	FlagHash       = TagType(0x08)
)

// the defined record variants
const (
	RawTag                     = TagType(0x00)
	SizedTag                   = FlagSized
	ChecksumTag                = FlagChecksum
	SizedChecksumTag           = FlagSized | FlagChecksum
	HashTag                    = FlagHash
	SizedHashTag               = FlagSized | FlagHash
	CompressedRawTag           = FlagCompressed
	CompressedSizedTag         = FlagCompressed | FlagSized
	CompressedChecksumTag      = FlagCompressed | FlagChecksum
	CompressedSizedChecksumTag = FlagCompressed | FlagSized | FlagChecksum
	CompressedHashTag          = FlagCompressed | FlagHash
	CompressedSizedHashTag     = FlagCompressed | FlagSized | FlagHash
)

// byte sizes for the fields
const (
	tagLength      = 1
	sizeLength     = 4
	checksumLength = 4
	hashLength     = 32
)

// a half open byte range [start, end)
type span struct {
	start int
	end   int
}

func (s span) empty() bool {
	return s.start == s.end
}

// field positions of one variant
type layout struct {
	size     span
	checksum span
	hash     span
	payload  int // offset of the first payload byte
}

type variant struct {
	name   string
	layout layout
}

// one entry per defined tag
var variants = map[TagType]variant{}

// in tag table order
var tags = []TagType{
	RawTag,
	SizedTag,
	ChecksumTag,
	SizedChecksumTag,
	HashTag,
	SizedHashTag,
	CompressedRawTag,
	CompressedSizedTag,
	CompressedChecksumTag,
	CompressedSizedChecksumTag,
	CompressedHashTag,
	CompressedSizedHashTag,
}

func init() {
	for _, tag := range tags {
		variants[tag] = variant{
			name:   variantName(tag),
			layout: computeLayout(tag),
		}
	}
}

// fields always appear in the order: size, checksum, hash
func computeLayout(tag TagType) layout {
	l := layout{}
	offset := tagLength
	if tag.Has(FlagSized) {
		l.size = span{offset, offset + sizeLength}
		offset += sizeLength
	}
	if tag.Has(FlagChecksum) {
		l.checksum = span{offset, offset + checksumLength}
		offset += checksumLength
	}
	if tag.Has(FlagHash) {
		l.hash = span{offset, offset + hashLength}
		offset += hashLength
	}
	l.payload = offset
	return l
}

func variantName(tag TagType) string {
	name := ""
	if tag.Has(FlagCompressed) {
		name += "Compressed"
	}
	if tag.Has(FlagSized) {
		name += "Sized"
	}
	if tag.Has(FlagChecksum) {
		name += "Checksum"
	}
	if tag.Has(FlagHash) {
		name += "Hash"
	}
	if "" == name || "Compressed" == name {
		name += "Raw"
	}
	return name
}

// Tags - all defined tags in tag table order
func Tags() []TagType {
	result := make([]TagType, len(tags))
	copy(result, tags)
	return result
}

// Valid - check the tag is one of the defined variants
func (tag TagType) Valid() bool {
	_, ok := variants[tag]
	return ok
}

// Has - check if a capability flag is set
func (tag TagType) Has(flag TagType) bool {
	return 0 != flag && flag == tag&flag
}

// String - the variant name
func (tag TagType) String() string {
	if v, ok := variants[tag]; ok {
		return v.name
	}
	return fmt.Sprintf("Unknown(0x%02x)", uint8(tag))
}

func (tag TagType) layout() layout {
	return variants[tag].layout
}

// TagFromFlags - combine capability flags into a defined tag
func TagFromFlags(compressed bool, sized bool, checksum bool, hash bool) (TagType, error) {
	tag := RawTag
	if compressed {
		tag |= FlagCompressed
	}
	if sized {
		tag |= FlagSized
	}
	if checksum {
		tag |= FlagChecksum
	}
	if hash {
		tag |= FlagHash
	}
	if !tag.Valid() {
		return tag, fault.ErrUnknownTag
	}
	return tag, nil
}

// ParseTagName - accepts a variant name ("CompressedSizedHash") or a
// list of flag names joined by '+' or ',' ("compressed+sized+hash")
func ParseTagName(name string) (TagType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, tag := range tags {
		if strings.ToLower(tag.String()) == name {
			return tag, nil
		}
	}

	fields := strings.FieldsFunc(name, func(c rune) bool {
		return '+' == c || ',' == c || ' ' == c
	})
	if 0 == len(fields) {
		return RawTag, fault.ErrUnknownTagName
	}

	var compressed, sized, checksum, hash bool
	for _, f := range fields {
		switch f {
		case "raw":
		case "compressed":
			compressed = true
		case "sized":
			sized = true
		case "checksum", "crc32":
			checksum = true
		case "hash", "sha3", "sha3-256":
			hash = true
		default:
			return RawTag, fault.ErrUnknownTagName
		}
	}
	return TagFromFlags(compressed, sized, checksum, hash)
}
