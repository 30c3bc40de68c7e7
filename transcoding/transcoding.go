// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transcoding - map bytes to invisible characters and back
//
// each byte is written as a fixed number of base-K digits, least
// significant digit first, where K is the size of the alphabet and
// each digit is the alphabet character at that index
package transcoding

import (
	"github.com/bitmark-inc/watermark/fault"
)

// source name used in diagnostic events
const source = "transcoding"

// number of distinct byte values
const byteValues = 256

// DefaultAlphabet - four space variants that render as (near) blanks
var DefaultAlphabet = []rune{
	'\u2008', // punctuation space
	'\u2009', // thin space
	'\u202f', // narrow no-break space
	'\u205f', // medium mathematical space
}

// Transcoder - converts using one fixed alphabet
type Transcoder struct {
	alphabet      []rune
	digits        map[rune]int
	digitsPerByte int
}

// New - create a transcoder for an alphabet of at least two distinct
// characters
func New(alphabet []rune) (*Transcoder, error) {
	if len(alphabet) < 2 {
		return nil, fault.ErrAlphabetTooSmall
	}

	digits := make(map[rune]int, len(alphabet))
	for i, c := range alphabet {
		if _, ok := digits[c]; ok {
			return nil, fault.ErrDuplicateAlphabetCharacter
		}
		digits[c] = i
	}

	a := make([]rune, len(alphabet))
	copy(a, alphabet)

	return &Transcoder{
		alphabet:      a,
		digits:        digits,
		digitsPerByte: DigitsPerByte(len(alphabet)),
	}, nil
}

// DigitsPerByte - ceil(log(256) / log(k)) computed without floating point
func DigitsPerByte(k int) int {
	if k < 2 {
		return 0
	}
	n := 0
	for capacity := 1; capacity < byteValues; capacity *= k {
		n += 1
	}
	return n
}

// Alphabet - copy of the alphabet in digit order
func (t *Transcoder) Alphabet() []rune {
	a := make([]rune, len(t.alphabet))
	copy(a, t.alphabet)
	return a
}

// DigitsPerByte - characters used to encode one byte
func (t *Transcoder) DigitsPerByte() int {
	return t.digitsPerByte
}

// Contains - check if a character belongs to the alphabet
func (t *Transcoder) Contains(c rune) bool {
	_, ok := t.digits[c]
	return ok
}

// EncodedLength - number of characters Encode produces for n bytes
func (t *Transcoder) EncodedLength(n int) int {
	return n * t.digitsPerByte
}

// Encode - convert bytes to alphabet characters
func (t *Transcoder) Encode(data []byte) []rune {
	k := len(t.alphabet)
	result := make([]rune, 0, t.EncodedLength(len(data)))
	for _, b := range data {
		value := int(b)
		for i := 0; i < t.digitsPerByte; i += 1 {
			result = append(result, t.alphabet[value%k])
			value /= k
		}
	}
	return result
}

// Decode - convert alphabet characters back to bytes
//
// a chunk whose value is not a byte, or that holds a character outside
// the alphabet, is dropped with a warning and decoding continues; a
// trailing partial chunk is dropped with a warning
func (t *Transcoder) Decode(chars []rune) ([]byte, *fault.Status) {
	status := fault.NewStatus()
	k := len(t.alphabet)
	n := t.digitsPerByte

	result := make([]byte, 0, len(chars)/n)
	whole := len(chars) - len(chars)%n

chunks:
	for i := 0; i < whole; i += n {
		value := 0
		weight := 1
		for _, c := range chars[i : i+n] {
			digit, ok := t.digits[c]
			if !ok {
				status.Add(fault.DecodingInvalidCharacter(source, c))
				continue chunks
			}
			value += digit * weight
			weight *= k
		}
		if value >= byteValues {
			status.Add(fault.DecodingInvalidByte(source, value))
			continue
		}
		result = append(result, byte(value))
	}

	if whole != len(chars) {
		status.Add(fault.IncompleteChunk(source, len(chars)-whole, n))
	}
	return result, status
}
