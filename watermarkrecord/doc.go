// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package watermarkrecord - self describing binary watermark records
//
// A record starts with a one byte tag whose bits select the optional
// fields that follow it:
//
//	tag | size (4, LE) | checksum (4, LE) or hash (32) | payload
//
//	0x40  COMPRESSED  payload is deflate compressed
//	0x20  SIZED       total record length is stored
//	0x10  CHECKSUM    CRC-32 of the record with this field zeroed
//	0x08  HASH        SHA3-256 of the record with this field zeroed
//
// only twelve combinations are defined, checksum and hash are never
// combined
package watermarkrecord
