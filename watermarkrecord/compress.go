// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package watermarkrecord

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/bitmark-inc/watermark/fault"
)

// upper bound on inflated content
const maximumContentLength = 64 * 1024 * 1024

// raw deflate stream, no zlib or gzip framing
func deflate(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	w, err := flate.NewWriter(&buffer, flate.BestCompression)
	if nil != err {
		return nil, err
	}
	if _, err := w.Write(data); nil != err {
		return nil, err
	}
	if err := w.Close(); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()

	content, err := io.ReadAll(io.LimitReader(r, maximumContentLength+1))
	if nil != err {
		return nil, err
	}
	if len(content) > maximumContentLength {
		return nil, fault.ErrContentTooLarge
	}
	return content, nil
}
