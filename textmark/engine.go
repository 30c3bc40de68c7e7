// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package textmark

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/watermark/fault"
	"github.com/bitmark-inc/watermark/separator"
	"github.com/bitmark-inc/watermark/transcoding"
)

const source = "textmark"

// Engine - embeds, extracts and removes watermarks
//
// an Engine is immutable after New and safe for concurrent use
type Engine struct {
	transcoder *transcoding.Transcoder
	separator  separator.Strategy
	placement  Placement
	full       []rune
	invisible  map[rune]struct{}
	log        *logger.L
}

type settings struct {
	alphabet  []rune
	separator separator.Strategy
	placement Placement
	log       *logger.L
}

// Option - adjust an engine setting
type Option func(*settings)

// WithAlphabet - characters used to encode watermark digits
func WithAlphabet(alphabet []rune) Option {
	return func(s *settings) {
		s.alphabet = alphabet
	}
}

// WithSeparator - how embedded copies are delimited
func WithSeparator(strategy separator.Strategy) Option {
	return func(s *settings) {
		s.separator = strategy
	}
}

// WithPlacement - where characters may be inserted
func WithPlacement(placement Placement) Option {
	return func(s *settings) {
		s.placement = placement
	}
}

// WithLogger - log operations and their problems, nil disables logging
func WithLogger(log *logger.L) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New - create an engine, defaults are the four character alphabet,
// a single U+2007 separator and space placement
func New(options ...Option) (*Engine, error) {
	s := settings{
		alphabet:  transcoding.DefaultAlphabet,
		separator: separator.Default(),
		placement: SpacePositions,
	}
	for _, option := range options {
		option(&s)
	}

	transcoder, err := transcoding.New(s.alphabet)
	if nil != err {
		return nil, err
	}
	for _, c := range s.separator.Characters() {
		if transcoder.Contains(c) {
			return nil, fault.ErrSeparatorInAlphabet
		}
	}

	if nil == s.placement {
		s.placement = SpacePositions
	}

	full := s.separator.FullAlphabet(transcoder.Alphabet())
	invisible := make(map[rune]struct{}, len(full))
	for _, c := range full {
		invisible[c] = struct{}{}
	}

	e := &Engine{
		transcoder: transcoder,
		separator:  s.separator,
		placement:  s.placement,
		full:       full,
		invisible:  invisible,
		log:        s.log,
	}

	if nil != e.log {
		e.log.Infof("alphabet: %q  separator: %s  digits per byte: %d", string(e.transcoder.Alphabet()), e.separator, e.transcoder.DigitsPerByte())
	}
	return e, nil
}

// Alphabet - the encoding characters
func (e *Engine) Alphabet() []rune {
	return e.transcoder.Alphabet()
}

// Separator - the separator strategy
func (e *Engine) Separator() separator.Strategy {
	return e.separator
}

// FullAlphabet - encoding characters plus separator characters
func (e *Engine) FullAlphabet() []rune {
	full := make([]rune, len(e.full))
	copy(full, e.full)
	return full
}

// MinimumInsertPositions - insert positions needed for one complete
// copy of a watermark of the given length
func (e *Engine) MinimumInsertPositions(watermarkLength int) int {
	encoded := e.transcoder.EncodedLength(watermarkLength)
	return e.separator.WrappedLength(encoded) + e.separator.ReservedPositions()
}

func (e *Engine) isInvisible(c rune) bool {
	_, ok := e.invisible[c]
	return ok
}

// log every event of a status, errors at error level
func (e *Engine) report(operation string, status *fault.Status) {
	if nil == e.log || status.IsSuccess() {
		return
	}
	for _, event := range status.Events() {
		switch event.Severity {
		case fault.Error:
			e.log.Errorf("%s: %s", operation, event)
		case fault.Warning:
			e.log.Warnf("%s: %s", operation, event)
		}
	}
}
