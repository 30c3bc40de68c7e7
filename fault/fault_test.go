// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/watermark/fault"
)

// test that the various error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{fault.ErrDuplicateAlphabetCharacter, true, false, false, false, false},
		{fault.ErrSeparatorInAlphabet, true, false, false, false, false},
		{fault.ErrMissingConfigurationTable, true, false, false, false, false},
		{fault.ErrAlphabetTooSmall, false, true, false, false, false},
		{fault.ErrRecordTooLarge, false, true, false, false, false},
		{fault.ErrContentTooLarge, false, true, false, false, false},
		{fault.ErrUnknownSeparator, false, false, true, false, false},
		{fault.ErrUnknownPlacement, false, false, true, false, false},
		{fault.ErrCompressionFailed, false, false, false, true, false},
		{fault.ErrUnknownTag, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' for err = %v", i, err)
		}
	}
}
