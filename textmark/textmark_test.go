// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textmark_test

import (
	"io/ioutil"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/watermark/aggregate"
	"github.com/bitmark-inc/watermark/fault"
	"github.com/bitmark-inc/watermark/fixtures"
	"github.com/bitmark-inc/watermark/separator"
	"github.com/bitmark-inc/watermark/textmark"
	"github.com/bitmark-inc/watermark/watermarkrecord"
)

// fixtures.Text has 68 spaces
const fixtureSpaces = 68

func strategies(t *testing.T) map[string]separator.Strategy {
	startEnd, err := separator.StartEnd(separator.DefaultStartChar, separator.DefaultEndChar)
	require.Nil(t, err, "start end")
	return map[string]separator.Strategy{
		"skip":      separator.Skip(),
		"single":    separator.Single(separator.DefaultSeparatorChar),
		"start-end": startEnd,
	}
}

func TestRoundTrip(t *testing.T) {
	watermark := []byte("Hi")

	for name, strategy := range strategies(t) {
		e, err := textmark.New(textmark.WithSeparator(strategy))
		require.Nil(t, err, name)

		marked, starts, status := e.AddWatermark(fixtures.Text, watermark)
		assert.True(t, status.IsSuccess(), "%s: add status: %s", name, status)

		expected := fixtureSpaces / e.MinimumInsertPositions(len(watermark))
		assert.Equal(t, expected, len(starts), "%s: copies", name)
		assert.Equal(t, 5, starts[0], "%s: first start", name)
		assert.NotEqual(t, fixtures.Text, marked, name)

		watermarks, status := e.GetWatermarks(marked)
		assert.True(t, status.IsSuccess(), "%s: get status: %s", name, status)
		require.Equal(t, expected, len(watermarks), name)
		for _, w := range watermarks {
			assert.Equal(t, watermark, w, name)
		}
	}
}

func TestCopyCounts(t *testing.T) {
	watermark := []byte("Hi")
	expected := map[string]int{
		"skip":      7,
		"single":    7,
		"start-end": 6,
	}

	for name, strategy := range strategies(t) {
		e, err := textmark.New(textmark.WithSeparator(strategy))
		require.Nil(t, err, name)

		_, starts, _ := e.AddWatermark(fixtures.Text, watermark)
		assert.Equal(t, expected[name], len(starts), name)
	}
}

func TestAddWatermarkInsertsAfterPositions(t *testing.T) {
	e, err := textmark.New(
		textmark.WithAlphabet([]rune("01")),
		textmark.WithSeparator(separator.Single('|')),
	)
	require.Nil(t, err, "new")

	// 0x05 = 00000101 least significant digit first
	marked, starts, status := e.AddWatermark("a b c d e f g h i j k l m n o p q r s", []byte{0x05})
	assert.True(t, status.IsSuccess(), "status: %s", status)
	assert.Equal(t, []int{1, 19}, starts, "starts")
	assert.Equal(t, "a |b 1c 0d 1e 0f 0g 0h 0i 0j |k 1l 0m 1n 0o 0p 0q 0r 0s", marked, "marked")
}

func TestNotEnoughPositions(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	text := "a a a a a a a a a a"
	watermark := []byte("Test")

	assert.Equal(t, 17, e.MinimumInsertPositions(len(watermark)), "minimum")

	marked, starts, status := e.AddWatermark(text, watermark)
	assert.True(t, status.IsWarning(), "add status: %s", status)
	assert.True(t, status.Contains(fault.CodeOversizedWatermark), "oversized")
	assert.Equal(t, []int{1}, starts, "starts")
	assert.Equal(t, len([]rune(text))+9, len([]rune(marked)), "inserted")

	watermarks, status := e.GetWatermarks(marked)
	assert.True(t, status.IsWarning(), "get status: %s", status)
	assert.True(t, status.Contains(fault.CodeIncompleteWatermark), "incomplete")
	assert.Equal(t, [][]byte{[]byte("Te")}, watermarks, "partial")
}

func TestAlphabetAlreadyInText(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	text := "some \u2008text with a \u2008 and \u2007 in it"
	marked, starts, status := e.AddWatermark(text, []byte("x"))

	assert.True(t, status.IsError(), "status")
	assert.True(t, status.Contains(fault.CodeAlphabetInText), "code")
	assert.Equal(t, 1, status.Len(), "one event")
	assert.Contains(t, status.Error(), "U+2008", "message")
	assert.Contains(t, status.Error(), "U+2007", "message")
	assert.Equal(t, 1, strings.Count(status.Error(), "U+2008"), "listed once")
	assert.Equal(t, text, marked, "unchanged")
	assert.Nil(t, starts, "starts")
}

func TestEmptyWatermark(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	marked, starts, status := e.AddWatermark(fixtures.Text, []byte{})
	assert.True(t, status.IsSuccess(), "status")
	assert.Equal(t, fixtures.Text, marked, "unchanged")
	assert.Equal(t, 0, len(starts), "starts")
}

func TestGetWatermarksPlainText(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	watermarks, status := e.GetWatermarks(fixtures.Text)
	assert.True(t, status.IsSuccess(), "status")
	assert.Equal(t, [][]byte{}, watermarks, "none")
}

func TestMinimumInsertPositions(t *testing.T) {
	expected := map[string]int{
		"skip":      17,
		"single":    17,
		"start-end": 18,
	}
	for name, strategy := range strategies(t) {
		e, err := textmark.New(textmark.WithSeparator(strategy))
		require.Nil(t, err, name)
		assert.Equal(t, expected[name], e.MinimumInsertPositions(4), name)
	}
}

func TestFullAlphabet(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	full := e.FullAlphabet()
	assert.Equal(t, []rune{'\u2007', '\u2008', '\u2009', '\u202f', '\u205f'}, full, "full")

	full[0] = 'x'
	assert.Equal(t, '\u2007', e.FullAlphabet()[0], "copy")
}

func TestNewInvalid(t *testing.T) {
	_, err := textmark.New(textmark.WithAlphabet([]rune{'\u2008'}))
	assert.Equal(t, fault.ErrAlphabetTooSmall, err, "small alphabet")

	_, err = textmark.New(textmark.WithSeparator(separator.Single('\u2009')))
	assert.Equal(t, fault.ErrSeparatorInAlphabet, err, "separator in alphabet")

	startEnd, err := separator.StartEnd('\u2062', '\u2008')
	require.Nil(t, err, "start end")
	_, err = textmark.New(textmark.WithSeparator(startEnd))
	assert.Equal(t, fault.ErrSeparatorInAlphabet, err, "end in alphabet")
}

func TestRemoveWatermarks(t *testing.T) {
	for name, strategy := range strategies(t) {
		e, err := textmark.New(textmark.WithSeparator(strategy))
		require.Nil(t, err, name)

		marked, starts, _ := e.AddWatermark(fixtures.Text, []byte("Hi"))

		cleaned, watermarks, status := e.RemoveWatermarks(marked)
		assert.True(t, status.IsSuccess(), "%s: status: %s", name, status)
		assert.Equal(t, len(starts), len(watermarks), name)
		assert.Equal(t, strings.Fields(fixtures.Text), strings.Fields(cleaned), name)

		for _, c := range e.FullAlphabet() {
			assert.False(t, strings.ContainsRune(cleaned, c), "%s: %U remains", name, c)
		}

		// cleaned text accepts a new watermark
		_, _, status = e.AddWatermark(cleaned, []byte("Yo"))
		assert.False(t, status.IsError(), "%s: re-mark: %s", name, status)
	}
}

func TestRemoveWatermarksReportsProblems(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	marked, _, _ := e.AddWatermark("a a a a a a a a a a", []byte("Test"))

	cleaned, watermarks, status := e.RemoveWatermarks(marked)
	assert.True(t, status.IsWarning(), "status")
	assert.Equal(t, 1, status.Len(), "summarised")
	assert.True(t, status.Contains(fault.CodeRemoveWatermarksGetProblem), "code")
	assert.Equal(t, [][]byte{[]byte("Te")}, watermarks, "watermarks")
	assert.Equal(t, strings.Fields("a a a a a a a a a a"), strings.Fields(cleaned), "cleaned")
}

func TestExtract(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	first, firstStarts, _ := e.AddWatermark(fixtures.Text, []byte("Hi"))
	second, secondStarts, _ := e.AddWatermark(" one two three four five six seven eight nine ten", []byte("Yo"))
	require.True(t, len(firstStarts) > len(secondStarts), "setup")

	text := first + second

	all, status := e.Extract(text, aggregate.Options{})
	assert.True(t, status.IsSuccess(), "status: %s", status)
	assert.Equal(t, len(firstStarts)+len(secondStarts), len(all), "all")

	single, status := e.Extract(text, aggregate.Options{SingleWatermark: true})
	assert.True(t, status.IsSuccess(), "status: %s", status)
	assert.Equal(t, len(firstStarts), len(single), "single")
	for _, w := range single {
		assert.Equal(t, []byte("Hi"), w, "most frequent")
	}

	squashed, status := e.Extract(text, aggregate.Options{SingleWatermark: true, Squash: true})
	assert.True(t, status.IsSuccess(), "status: %s", status)
	assert.Equal(t, [][]byte{[]byte("Hi")}, squashed, "squashed")

	distinct, _ := e.Extract(text, aggregate.Options{Squash: true})
	assert.Equal(t, [][]byte{[]byte("Hi"), []byte("Yo")}, distinct, "distinct")
}

func TestGetRecords(t *testing.T) {
	e, err := textmark.New()
	require.Nil(t, err, "new")

	record, err := watermarkrecord.NewChecksum([]byte("ok"))
	require.Nil(t, err, "record")

	marked, starts, status := e.AddWatermark(fixtures.Text, record.Bytes())
	require.True(t, status.IsSuccess(), "add")
	require.Equal(t, 2, len(starts), "copies")

	records, status := e.GetRecords(marked)
	assert.True(t, status.IsSuccess(), "status: %s", status)
	require.Equal(t, 2, len(records), "records")
	for _, r := range records {
		assert.True(t, record.Equal(r), "equal")
		content, s := r.Content()
		assert.True(t, s.IsSuccess(), "content status")
		assert.Equal(t, []byte("ok"), content, "content")
	}
}

func TestWhitespacePlacement(t *testing.T) {
	e, err := textmark.New(textmark.WithPlacement(textmark.WhitespacePositions))
	require.Nil(t, err, "new")

	text := strings.Replace(fixtures.Text, " ", "\n", 20)
	marked, starts, status := e.AddWatermark(text, []byte("Hi"))
	assert.True(t, status.IsSuccess(), "status")
	assert.Equal(t, 7, len(starts), "copies")

	watermarks, status := e.GetWatermarks(marked)
	assert.True(t, status.IsSuccess(), "status")
	assert.Equal(t, 7, len(watermarks), "watermarks")

	spaces, err := textmark.New()
	require.Nil(t, err, "new")
	_, starts, _ = spaces.AddWatermark(text, []byte("Hi"))
	assert.Equal(t, 5, len(starts), "spaces only")
}

func TestPlacementByName(t *testing.T) {
	for _, name := range []string{"", "spaces", "whitespace"} {
		p, err := textmark.PlacementByName(name)
		assert.Nil(t, err, name)
		assert.NotNil(t, p, name)
	}

	_, err := textmark.PlacementByName("commas")
	assert.Equal(t, fault.ErrUnknownPlacement, err, "unknown")
}

func TestCustomPlacement(t *testing.T) {
	// unsorted, duplicated and out of range indices are tolerated
	vowels := func(text []rune) []int {
		positions := []int{-1, len(text) + 3}
		for i := len(text) - 1; i >= 0; i -= 1 {
			if strings.ContainsRune("aeiou", text[i]) {
				positions = append(positions, i, i)
			}
		}
		return positions
	}

	e, err := textmark.New(textmark.WithPlacement(vowels))
	require.Nil(t, err, "new")

	marked, starts, status := e.AddWatermark(fixtures.Text, []byte("Hi"))
	assert.True(t, status.IsSuccess(), "status")
	assert.Equal(t, 1, starts[0], "first vowel")

	watermarks, status := e.GetWatermarks(marked)
	assert.True(t, status.IsSuccess(), "status")
	assert.Equal(t, len(starts), len(watermarks), "watermarks")
}

func TestWithLogger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	log := logger.New(fixtures.LogCategory)
	e, err := textmark.New(textmark.WithLogger(log))
	require.Nil(t, err, "new")

	marked, _, status := e.AddWatermark("a a a", []byte("Test"))
	assert.True(t, status.IsWarning(), "oversized")

	_, _, status = e.AddWatermark(marked, []byte("Test"))
	assert.True(t, status.IsError(), "already marked")

	_, _, status = e.RemoveWatermarks(marked)
	assert.True(t, status.IsWarning(), "remove")

	log.Flush()
	content, err := ioutil.ReadFile(fixtures.LogFile)
	require.Nil(t, err, "read log")

	text := string(content)
	assert.Contains(t, text, "add watermark: Warning (textmark): ", "oversized warning")
	assert.Contains(t, text, "add watermark: Error (textmark): ", "alphabet error")
	assert.Contains(t, text, "remove watermarks: Warning (textmark): ", "remove warning")
	assert.Contains(t, text, "U+2008", "offending character")
}

func TestTrailingPositionsUnused(t *testing.T) {
	e, err := textmark.New(
		textmark.WithAlphabet([]rune("01")),
		textmark.WithSeparator(separator.Single('|')),
	)
	require.Nil(t, err, "new")

	// 20 spaces hold two copies of nine positions each
	text := "a b c d e f g h i j k l m n o p q r s t u"
	marked, starts, status := e.AddWatermark(text, []byte{0x05})
	assert.True(t, status.IsSuccess(), "status: %s", status)
	assert.Equal(t, []int{1, 19}, starts, "starts")
	assert.Equal(t, len([]rune(text))+18, len([]rune(marked)), "inserted")
	assert.True(t, strings.HasSuffix(marked, " 0r 0s t u"), "trailing: %q", marked)
}
