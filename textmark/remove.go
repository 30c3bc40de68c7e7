// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textmark

import (
	"strings"

	"github.com/bitmark-inc/watermark/carrier"
	"github.com/bitmark-inc/watermark/fault"
)

// RemoveWatermarks - replace every invisible character with a space
//
// the watermarks found are also returned, any extraction problem is
// summarised into a single warning
func (e *Engine) RemoveWatermarks(text string) (string, [][]byte, *fault.Status) {
	watermarks, extraction := e.GetWatermarks(text)

	status := fault.NewStatus()
	if !extraction.IsSuccess() {
		events := extraction.Events()
		problems := make([]string, len(events))
		for i, event := range events {
			problems[i] = event.String()
		}
		status.Add(fault.RemoveWatermarksGetProblem(source, strings.Join(problems, " ")))
	}

	cleaned := strings.Map(func(c rune) rune {
		if e.isInvisible(c) {
			return ' '
		}
		return c
	}, text)

	e.report("remove watermarks", status)
	return cleaned, watermarks, status
}

// RemoveWatermarksFrom - clean a carrier's content in place
func (e *Engine) RemoveWatermarksFrom(c carrier.Carrier) ([][]byte, *fault.Status) {
	text, err := c.Content()
	if nil != err {
		return nil, carrierStatus(err)
	}

	cleaned, watermarks, status := e.RemoveWatermarks(text)
	err = c.SetContent(cleaned)
	if nil != err {
		status.Add(fault.CarrierAccess(source, err))
		return nil, status
	}
	return watermarks, status
}
