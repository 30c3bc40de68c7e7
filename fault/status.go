// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"strings"
)

// Status - accumulated diagnostics of one operation
//
// the zero value is a successful status with no events
type Status struct {
	events     []Event
	overridden bool
	severity   Severity
}

// NewStatus - create an empty (successful) status
func NewStatus() *Status {
	return &Status{}
}

// StatusOf - create a status holding the given events
func StatusOf(events ...Event) *Status {
	s := &Status{}
	for _, e := range events {
		s.Add(e)
	}
	return s
}

// Add - append an event
func (s *Status) Add(e Event) {
	s.events = append(s.events, e)
}

// Merge - append all events of another status
//
// an override on the other status is not carried over, its events
// keep their own severity
func (s *Status) Merge(other *Status) {
	if nil == other {
		return
	}
	s.events = append(s.events, other.events...)
}

// Events - a copy of the accumulated events in order of arrival
func (s *Status) Events() []Event {
	events := make([]Event, len(s.events))
	copy(events, s.events)
	return events
}

// Len - number of events
func (s *Status) Len() int {
	return len(s.events)
}

// Severity - the overridden severity if set, otherwise the worst event
func (s *Status) Severity() Severity {
	if s.overridden {
		return s.severity
	}
	worst := Success
	for _, e := range s.events {
		if e.Severity > worst {
			worst = e.Severity
		}
	}
	return worst
}

// OverrideSeverity - pin the reported severity regardless of events
func (s *Status) OverrideSeverity(severity Severity) {
	s.overridden = true
	s.severity = severity
}

// IsSuccess - no warnings or errors
func (s *Status) IsSuccess() bool { return Success == s.Severity() }

// IsWarning - a usable but suspect result
func (s *Status) IsWarning() bool { return Warning == s.Severity() }

// IsError - no usable result
func (s *Status) IsError() bool { return Error == s.Severity() }

// Contains - true if any event has the code
func (s *Status) Contains(code Code) bool {
	return s.Count(code) > 0
}

// Count - number of events with the code
func (s *Status) Count(code Code) int {
	n := 0
	for _, e := range s.events {
		if code == e.Code {
			n += 1
		}
	}
	return n
}

// Err - nil unless the severity is Error
func (s *Status) Err() error {
	if Error != s.Severity() {
		return nil
	}
	return s
}

// Error - all events rendered one per line
func (s *Status) Error() string {
	return s.String()
}

// String - all events rendered one per line
func (s *Status) String() string {
	if 0 == len(s.events) {
		return s.Severity().String()
	}
	lines := make([]string, len(s.events))
	for i, e := range s.events {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
