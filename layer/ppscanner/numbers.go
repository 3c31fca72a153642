// Copyright 2026 The libcparse-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ppscanner

import (
	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/event"
)

// dispatchNumber recognizes a preprocessing number: a digit followed by
// any run of digits, identifier characters, '.' and exponent markers
// ('e'/'E'/'p'/'P' each optionally followed by a sign). The scanner
// never validates the grammar of the number, only its shape, and never
// interprets its value -- that's left to a later translation phase.
//
// The shape rules it does enforce are the hexadecimal prefix ("0x"/"0X"
// must be followed by at least one hex digit, per the Integer DFA) and
// the exponent (an exponent marker, with or without a sign, must be
// followed by at least one digit; see finishNumber).
func (s *Scanner) dispatchNumber(evt event.Event) error {
	if s.state == stNumberHexPrefix {
		if evt.Kind == event.KindRawChar && isHexDigit(evt.Byte) {
			s.state = stNumber
			s.builder.WriteByte(evt.Byte)
			_ = s.tokenCache.Extend(evt.Cursor)
			return nil
		}
		return cparseerr.New(cparseerr.ErrPpScannerExpectingDigit, evt.Cursor)
	}

	if evt.Kind == event.KindRawChar {
		b := evt.Byte

		if s.numAfterZero {
			s.numAfterZero = false
			if b == 'x' || b == 'X' {
				s.state = stNumberHexPrefix
				s.builder.WriteByte(b)
				_ = s.tokenCache.Extend(evt.Cursor)
				return nil
			}
		}

		switch s.state {
		case stNumberExponentSign:
			if b == '+' || b == '-' {
				s.state = stNumberExponentDigits
				s.builder.WriteByte(b)
				_ = s.tokenCache.Extend(evt.Cursor)
				return nil
			}
			s.state = stNumberExponentDigits
			return s.dispatchNumber(evt)

		case stNumberExponentDigits, stNumber:
			if isExponentMarker(b) {
				s.sawFloatMarker = true
				s.state = stNumberExponentSign
				s.expDigitSeen = false
				s.builder.WriteByte(b)
				_ = s.tokenCache.Extend(evt.Cursor)
				return nil
			}
			if b == '.' {
				s.sawFloatMarker = true
				s.builder.WriteByte(b)
				_ = s.tokenCache.Extend(evt.Cursor)
				return nil
			}
			if isIdentCont(b) {
				if s.state == stNumberExponentDigits && isDigit(b) {
					s.expDigitSeen = true
				}
				s.builder.WriteByte(b)
				_ = s.tokenCache.Extend(evt.Cursor)
				return nil
			}
		}
	}

	return s.finishNumber(evt)
}

func isExponentMarker(b byte) bool {
	return b == 'e' || b == 'E' || b == 'p' || b == 'P'
}

func (s *Scanner) finishNumber(evt event.Event) error {
	// An exponent introducer with no digit after it ("1e", "1e+;") is a
	// malformed float, not a finished token.
	if s.state == stNumberExponentSign ||
		(s.state == stNumberExponentDigits && !s.expDigitSeen) {
		return cparseerr.New(cparseerr.ErrPpScannerExpectingDigit, evt.Cursor)
	}

	text := s.builder.Build()
	cur, _ := s.tokenCache.Get()
	s.tokenCache.Clear()
	s.state = stStart

	kind := event.KindRawInteger
	if s.sawFloatMarker {
		kind = event.KindRawFloat
	}
	if err := s.emit(event.Event{Kind: kind, Cursor: cur, Text: text}); err != nil {
		return err
	}
	return s.dispatch(evt)
}
