// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"strings"
)

// Severity - how bad an event is
type Severity uint8

// severities in increasing order
const (
	Success = Severity(iota)
	Warning = Severity(iota)
	Error   = Severity(iota)
)

// String - name used in rendered events
func (s Severity) String() string {
	switch s {
	case Success:
		return "Success"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// Code - identifies the kind of a diagnostic event
type Code string

// diagnostic event codes
const (
	CodeNotEnoughData              = Code("NotEnoughData")
	CodeUnknownTag                 = Code("UnknownTag")
	CodeInvalidTag                 = Code("InvalidTag")
	CodeMismatchedSize             = Code("MismatchedSize")
	CodeInvalidChecksum            = Code("InvalidChecksum")
	CodeInvalidHash                = Code("InvalidHash")
	CodeDecompression              = Code("Decompression")
	CodeDecodingInvalidByte        = Code("DecodingInvalidByte")
	CodeIncompleteChunk            = Code("IncompleteChunk")
	CodeAlphabetInText             = Code("AlphabetInText")
	CodeOversizedWatermark         = Code("OversizedWatermark")
	CodeIncompleteWatermark        = Code("IncompleteWatermark")
	CodeRemoveWatermarksGetProblem = Code("RemoveWatermarksGetProblem")
	CodeMultipleMostFrequent       = Code("MultipleMostFrequent")
	CodeInvalidTextEncoding        = Code("InvalidTextEncoding")
	CodeSomeItemsFailed            = Code("SomeItemsFailed")
	CodeCarrierAccess              = Code("CarrierAccess")
)

// Event - a single diagnostic
//
// Message carries no trailing full stop, String() adds it.
type Event struct {
	Severity Severity
	Code     Code
	Source   string
	Message  string
}

// String - the stable rendering "<Severity> (<source>): <message>."
func (e Event) String() string {
	return fmt.Sprintf("%s (%s): %s.", e.Severity, e.Source, e.Message)
}

// Error - an event can be returned where an error is expected
func (e Event) Error() string {
	return e.String()
}

// NotEnoughData - fewer bytes than a field or record requires
func NotEnoughData(source string, required int, available int) Event {
	return Event{
		Severity: Error,
		Code:     CodeNotEnoughData,
		Source:   source,
		Message:  fmt.Sprintf("Not enough data, required: %d, but was: %d", required, available),
	}
}

// UnknownTag - tag byte matches no known record variant
func UnknownTag(source string, tag uint8) Event {
	return Event{
		Severity: Error,
		Code:     CodeUnknownTag,
		Source:   source,
		Message:  fmt.Sprintf("Unknown tag: %d", tag),
	}
}

// InvalidTag - tag byte differs from the one the variant expects
func InvalidTag(source string, expected uint8, actual uint8) Event {
	return Event{
		Severity: Error,
		Code:     CodeInvalidTag,
		Source:   source,
		Message:  fmt.Sprintf("Expected tag: %d, but was: %d", expected, actual),
	}
}

// MismatchedSize - declared size field differs from the record length
func MismatchedSize(source string, expected uint32, actual int) Event {
	return Event{
		Severity: Warning,
		Code:     CodeMismatchedSize,
		Source:   source,
		Message:  fmt.Sprintf("Expected size: %d, but was: %d", expected, actual),
	}
}

// InvalidChecksum - stored checksum differs from the computed one
func InvalidChecksum(source string, expected uint32, actual uint32) Event {
	return Event{
		Severity: Warning,
		Code:     CodeInvalidChecksum,
		Source:   source,
		Message:  fmt.Sprintf("Expected checksum: 0x%08x, but was: 0x%08x", expected, actual),
	}
}

// InvalidHash - stored hash differs from the computed one
func InvalidHash(source string, expected []byte, actual []byte) Event {
	return Event{
		Severity: Warning,
		Code:     CodeInvalidHash,
		Source:   source,
		Message:  fmt.Sprintf("Expected hash: %x, but was: %x", expected, actual),
	}
}

// Decompression - payload could not be inflated
func Decompression(source string, err error) Event {
	return Event{
		Severity: Error,
		Code:     CodeDecompression,
		Source:   source,
		Message:  fmt.Sprintf("Decompression failed: %v", err),
	}
}

// DecodingInvalidByte - a chunk of characters decoded outside 0..255
func DecodingInvalidByte(source string, value int) Event {
	return Event{
		Severity: Warning,
		Code:     CodeDecodingInvalidByte,
		Source:   source,
		Message:  fmt.Sprintf("Decoded value: %d is not a valid byte", value),
	}
}

// DecodingInvalidCharacter - a chunk held a character outside the alphabet
func DecodingInvalidCharacter(source string, c rune) Event {
	return Event{
		Severity: Warning,
		Code:     CodeDecodingInvalidByte,
		Source:   source,
		Message:  fmt.Sprintf("Character: %U is not part of the alphabet", c),
	}
}

// IncompleteChunk - trailing characters too few to form a byte
func IncompleteChunk(source string, length int, required int) Event {
	return Event{
		Severity: Warning,
		Code:     CodeIncompleteChunk,
		Source:   source,
		Message:  fmt.Sprintf("Dropped incomplete chunk of %d characters, required: %d", length, required),
	}
}

// AlphabetInText - carrier text already holds alphabet characters
func AlphabetInText(source string, characters []rune) Event {
	names := make([]string, len(characters))
	for i, c := range characters {
		names[i] = fmt.Sprintf("%U", c)
	}
	return Event{
		Severity: Error,
		Code:     CodeAlphabetInText,
		Source:   source,
		Message:  fmt.Sprintf("Text already contains alphabet characters: %s, it may already carry a watermark", strings.Join(names, ", ")),
	}
}

// OversizedWatermark - carrier has too few insert positions
func OversizedWatermark(source string, required int, available int) Event {
	return Event{
		Severity: Warning,
		Code:     CodeOversizedWatermark,
		Source:   source,
		Message:  fmt.Sprintf("Watermark requires: %d insert positions, but only: %d are available, embedding reduced watermark", required, available),
	}
}

// IncompleteWatermark - recovered watermark is likely truncated
func IncompleteWatermark(source string) Event {
	return Event{
		Severity: Warning,
		Code:     CodeIncompleteWatermark,
		Source:   source,
		Message:  "Watermark is incomplete, the text may have been truncated",
	}
}

// RemoveWatermarksGetProblem - extraction during removal was not clean
func RemoveWatermarksGetProblem(source string, problems string) Event {
	return Event{
		Severity: Warning,
		Code:     CodeRemoveWatermarksGetProblem,
		Source:   source,
		Message:  fmt.Sprintf("Watermarks removed, but getting them reported: %s", problems),
	}
}

// MultipleMostFrequent - several watermarks share the highest count
func MultipleMostFrequent(source string, groups int) Event {
	return Event{
		Severity: Warning,
		Code:     CodeMultipleMostFrequent,
		Source:   source,
		Message:  fmt.Sprintf("Found %d watermarks with the same highest frequency", groups),
	}
}

// InvalidTextEncoding - carrier bytes are not valid UTF-8
func InvalidTextEncoding(source string, offset int) Event {
	return Event{
		Severity: Error,
		Code:     CodeInvalidTextEncoding,
		Source:   source,
		Message:  fmt.Sprintf("Invalid UTF-8 sequence at byte offset: %d", offset),
	}
}

// SomeItemsFailed - summary appended by batch conversions
func SomeItemsFailed(source string, failed int, total int) Event {
	return Event{
		Severity: Warning,
		Code:     CodeSomeItemsFailed,
		Source:   source,
		Message:  fmt.Sprintf("%d of %d items failed", failed, total),
	}
}

// CarrierAccess - carrier content could not be read or replaced
func CarrierAccess(source string, err error) Event {
	return Event{
		Severity: Error,
		Code:     CodeCarrierAccess,
		Source:   source,
		Message:  fmt.Sprintf("Carrier access failed: %v", err),
	}
}
