// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  The file must
// return a table describing the watermark engine, for example:
//
//	local M = {}
//	M.data_directory = "."
//	M.alphabet = { 0x2008, 0x2009, 0x202F, 0x205F }
//	M.separator = { strategy = "single", characters = { 0x2007 } }
//	M.placement = "spaces"
//	M.format = "sized+checksum"
//	M.single_watermark = true
//	M.logging = { directory = "log", file = "watermark.log",
//	              levels = { DEFAULT = "info" } }
//	return M
package configuration
