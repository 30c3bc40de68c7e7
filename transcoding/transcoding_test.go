// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transcoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/watermark/fault"
	"github.com/bitmark-inc/watermark/transcoding"
)

func TestDigitsPerByte(t *testing.T) {
	items := []struct {
		k      int
		digits int
	}{
		{1, 0},
		{2, 8},
		{3, 6},
		{4, 4},
		{5, 4},
		{15, 3},
		{16, 2},
		{17, 2},
		{255, 2},
		{256, 1},
		{1000, 1},
	}
	for i, item := range items {
		assert.Equal(t, item.digits, transcoding.DigitsPerByte(item.k), "%d: k = %d", i, item.k)
	}

	tr, err := transcoding.New(transcoding.DefaultAlphabet)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.DigitsPerByte(), "default alphabet")
}

func TestInvalidAlphabets(t *testing.T) {
	_, err := transcoding.New(nil)
	assert.Equal(t, fault.ErrAlphabetTooSmall, err)

	_, err = transcoding.New([]rune{'a'})
	assert.Equal(t, fault.ErrAlphabetTooSmall, err)

	_, err = transcoding.New([]rune{'a', 'b', 'a'})
	assert.Equal(t, fault.ErrDuplicateAlphabetCharacter, err)
}

func TestEncodeLeastSignificantDigitFirst(t *testing.T) {
	tr, err := transcoding.New([]rune{'0', '1', '2', '3'})
	require.NoError(t, err)

	// 0x1b = 27 = 3 + 2*4 + 1*16 + 0*64
	assert.Equal(t, "3210", string(tr.Encode([]byte{0x1b})))
	assert.Equal(t, "0000", string(tr.Encode([]byte{0x00})))
	assert.Equal(t, "3333", string(tr.Encode([]byte{0xff})))
	assert.Equal(t, "10000010", string(tr.Encode([]byte{0x01, 0x10})))
	assert.Equal(t, 8, tr.EncodedLength(2))
}

func TestRoundTrip(t *testing.T) {
	alphabets := [][]rune{
		transcoding.DefaultAlphabet,
		{'a', 'b'},
		{'a', 'b', 'c'},
		{'\u200b', '\u200c', '\u200d', '\u2060', '\ufeff'},
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs := [][]byte{
		{},
		[]byte("Test"),
		all,
	}

	for i, alphabet := range alphabets {
		tr, err := transcoding.New(alphabet)
		require.NoError(t, err, "%d: alphabet", i)
		for j, input := range inputs {
			encoded := tr.Encode(input)
			assert.Equal(t, len(input)*tr.DigitsPerByte(), len(encoded), "%d/%d: encoded length", i, j)
			for _, c := range encoded {
				assert.True(t, tr.Contains(c), "%d/%d: %U not in alphabet", i, j, c)
			}
			decoded, status := tr.Decode(encoded)
			assert.True(t, status.IsSuccess(), "%d/%d: status: %s", i, j, status)
			assert.Equal(t, input, decoded, "%d/%d: round trip", i, j)
		}
	}
}

func TestEmpty(t *testing.T) {
	tr, err := transcoding.New(transcoding.DefaultAlphabet)
	require.NoError(t, err)

	assert.Equal(t, 0, len(tr.Encode(nil)))
	decoded, status := tr.Decode(nil)
	assert.Equal(t, 0, len(decoded))
	assert.True(t, status.IsSuccess())
}

func TestDecodeInvalidByteIsDropped(t *testing.T) {
	tr, err := transcoding.New([]rune{'0', '1', '2'})
	require.NoError(t, err)

	// "222222" = 728 which is not a byte
	chars := []rune("000100" + "222222" + "200000")
	decoded, status := tr.Decode(chars)
	assert.Equal(t, []byte{27, 2}, decoded)
	assert.True(t, status.IsWarning())
	assert.Equal(t, 1, status.Count(fault.CodeDecodingInvalidByte))
}

func TestDecodeForeignCharacter(t *testing.T) {
	tr, err := transcoding.New([]rune{'0', '1', '2', '3'})
	require.NoError(t, err)

	decoded, status := tr.Decode([]rune("3210" + "3x10" + "1000"))
	assert.Equal(t, []byte{0x1b, 0x01}, decoded)
	assert.Equal(t, 1, status.Count(fault.CodeDecodingInvalidByte))
	assert.Contains(t, status.Events()[0].Message, "U+0078")
}

func TestDecodeTrailingPartialChunk(t *testing.T) {
	tr, err := transcoding.New([]rune{'0', '1', '2', '3'})
	require.NoError(t, err)

	decoded, status := tr.Decode([]rune("3210" + "32"))
	assert.Equal(t, []byte{0x1b}, decoded)
	assert.True(t, status.IsWarning())
	assert.True(t, status.Contains(fault.CodeIncompleteChunk))
}

func TestAlphabetIsCopied(t *testing.T) {
	alphabet := []rune{'a', 'b', 'c', 'd'}
	tr, err := transcoding.New(alphabet)
	require.NoError(t, err)

	alphabet[0] = 'z'
	got := tr.Alphabet()
	assert.Equal(t, []rune{'a', 'b', 'c', 'd'}, got)
	got[1] = 'y'
	assert.True(t, tr.Contains('b'))
	assert.False(t, tr.Contains('z'))
}
