// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlphabetTooSmall            = LengthError("alphabet must contain at least two characters")
	ErrCompressionFailed           = ProcessError("payload compression failed")
	ErrContentTooLarge             = LengthError("decompressed content exceeds maximum size")
	ErrDuplicateAlphabetCharacter  = InvalidError("alphabet contains a duplicate character")
	ErrDuplicateSeparatorCharacter = InvalidError("separator start and end characters are identical")
	ErrInvalidCodePoint            = InvalidError("invalid unicode code point")
	ErrInvalidLogLevel             = InvalidError("invalid log level")
	ErrInvalidPath                 = InvalidError("path is not a valid directory")
	ErrInvalidStructPointer        = InvalidError("invalid struct pointer")
	ErrMissingConfigurationTable   = InvalidError("configuration file did not return a table")
	ErrMissingSeparatorCharacter   = InvalidError("separator strategy requires characters")
	ErrNotFileName                 = InvalidError("path is not a plain file name")
	ErrRecordTooLarge              = LengthError("record exceeds maximum size")
	ErrSeparatorInAlphabet         = InvalidError("separator character is part of the transcoding alphabet")
	ErrUnknownPlacement            = NotFoundError("unknown placement name")
	ErrUnknownSeparator            = NotFoundError("unknown separator strategy")
	ErrUnknownTag                  = RecordError("unknown watermark tag")
	ErrUnknownTagName              = NotFoundError("unknown watermark format name")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
