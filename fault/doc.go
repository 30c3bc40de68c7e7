// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and diagnostic status
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Operations that can produce a usable but suspect result report
// through a Status: an accumulation of Warning and Error events, each
// rendered as "Error (<source>): <message>." or
// "Warning (<source>): <message>."
package fault
