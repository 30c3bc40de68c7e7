// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package carrier - text holders that watermarks are embedded into
package carrier

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/bitmark-inc/watermark/fault"
)

const source = "carrier"

// Carrier - get and replace the text content
type Carrier interface {
	Content() (string, error)
	SetContent(content string) error
}

// Text - an in-memory string carrier
type Text struct {
	content string
}

// NewText - create a carrier holding a string
func NewText(content string) *Text {
	return &Text{content: content}
}

// Content - current text
func (t *Text) Content() (string, error) {
	return t.content, nil
}

// SetContent - replace the text
func (t *Text) SetContent(content string) error {
	t.content = content
	return nil
}

// String - current text
func (t *Text) String() string {
	return t.content
}

// Bytes - a UTF-8 encoded byte buffer carrier
//
// in strict mode invalid UTF-8 is an InvalidTextEncoding error, in
// lenient mode invalid sequences decode to U+FFFD
type Bytes struct {
	data      []byte
	strict    bool
	normalise bool
}

// NewBytes - create a carrier over UTF-8 bytes, the slice is not copied
func NewBytes(data []byte, strict bool) *Bytes {
	return &Bytes{data: data, strict: strict}
}

// Normalise - compose the text to NFC when it is read
func (b *Bytes) Normalise() *Bytes {
	b.normalise = true
	return b
}

// Content - decoded text
func (b *Bytes) Content() (string, error) {
	var decoder transform.Transformer = unicode.UTF8.NewDecoder()
	if b.strict {
		decoder = encoding.UTF8Validator
	}

	text, n, err := transform.Bytes(decoder, b.data)
	if nil != err {
		return "", fault.StatusOf(fault.InvalidTextEncoding(source, n))
	}
	if b.normalise {
		text = norm.NFC.Bytes(text)
	}
	return string(text), nil
}

// SetContent - replace the buffer with the UTF-8 encoding of content
func (b *Bytes) SetContent(content string) error {
	b.data = []byte(content)
	return nil
}

// Data - current UTF-8 bytes
func (b *Bytes) Data() []byte {
	return b.data
}
