// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package textmark - hide byte watermarks in plain text
//
// A watermark is encoded into invisible characters (see the
// transcoding package), wrapped by a separator strategy and inserted
// immediately after the characters chosen by a placement function,
// by default every ASCII space.  The watermark is repeated as many
// times as the text has room for.
//
// Extraction reverses the process and reports any damage as events
// in a fault.Status rather than failing outright, so a truncated or
// edited text still yields whatever can be recovered.
package textmark
