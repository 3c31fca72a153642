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

import "github.com/nanolith-go/libcparse/event"

// dispatchPunctuator resolves every multi-character punctuator. Each
// stAfter* state holds exactly one pending first character and decides,
// from the single next event, whether to extend into a two- or
// three-character punctuator or to finalize the pending one and
// reprocess the current event from Start.
func (s *Scanner) dispatchPunctuator(evt event.Event) error {
	b := byte(0)
	isRaw := evt.Kind == event.KindRawChar
	if isRaw {
		b = evt.Byte
	}

	switch s.state {
	case stAfterMinus:
		switch {
		case isRaw && b == '>':
			return s.finishPunct(event.KindArrow, evt)
		case isRaw && b == '-':
			return s.finishPunct(event.KindDecrement, evt)
		case isRaw && b == '=':
			return s.finishPunct(event.KindMinusEqual, evt)
		}
		return s.fallbackPunct(event.KindMinus, evt)

	case stAfterPlus:
		switch {
		case isRaw && b == '+':
			return s.finishPunct(event.KindIncrement, evt)
		case isRaw && b == '=':
			return s.finishPunct(event.KindPlusEqual, evt)
		}
		return s.fallbackPunct(event.KindPlus, evt)

	case stAfterStar:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindStarEqual, evt)
		}
		return s.fallbackPunct(event.KindStar, evt)

	case stAfterSlash:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindSlashEqual, evt)
		}
		return s.fallbackPunct(event.KindForwardSlash, evt)

	case stAfterPercent:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindPercentEqual, evt)
		}
		return s.fallbackPunct(event.KindPercent, evt)

	case stAfterAmp:
		switch {
		case isRaw && b == '&':
			return s.finishPunct(event.KindLogicalAnd, evt)
		case isRaw && b == '=':
			return s.finishPunct(event.KindAmpersandEqual, evt)
		}
		return s.fallbackPunct(event.KindAmpersand, evt)

	case stAfterPipe:
		switch {
		case isRaw && b == '|':
			return s.finishPunct(event.KindLogicalOr, evt)
		case isRaw && b == '=':
			return s.finishPunct(event.KindPipeEqual, evt)
		}
		return s.fallbackPunct(event.KindPipe, evt)

	case stAfterCaret:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindCaretEqual, evt)
		}
		return s.fallbackPunct(event.KindCaret, evt)

	case stAfterTilde:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindTildeEqual, evt)
		}
		return s.fallbackPunct(event.KindTilde, evt)

	case stAfterNot:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindNotEqualCompare, evt)
		}
		return s.fallbackPunct(event.KindNot, evt)

	case stAfterEqual:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindEqualCompare, evt)
		}
		return s.fallbackPunct(event.KindEqualAssign, evt)

	case stAfterLess:
		switch {
		case isRaw && b == '=':
			return s.finishPunct(event.KindLessThanEqual, evt)
		case isRaw && b == '<':
			s.state = stAfterLessLess
			return nil
		}
		return s.fallbackPunct(event.KindLessThan, evt)

	case stAfterLessLess:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindBitshiftLeftEqual, evt)
		}
		return s.fallbackPunct(event.KindBitshiftLeft, evt)

	case stAfterGreater:
		switch {
		case isRaw && b == '=':
			return s.finishPunct(event.KindGreaterThanEqual, evt)
		case isRaw && b == '>':
			s.state = stAfterGreaterGreater
			return nil
		}
		return s.fallbackPunct(event.KindGreaterThan, evt)

	case stAfterGreaterGreater:
		if isRaw && b == '=' {
			return s.finishPunct(event.KindBitshiftRightEqual, evt)
		}
		return s.fallbackPunct(event.KindBitshiftRight, evt)

	case stAfterHash:
		if isRaw && b == '#' {
			return s.finishPunct(event.KindPpStringConcat, evt)
		}
		return s.fallbackPunct(event.KindPpHash, evt)
	}
	return nil
}

// finishPunct consumes evt as the final character of a multi-character
// punctuator spanning from the pending first character through evt.
func (s *Scanner) finishPunct(kind event.Kind, evt event.Event) error {
	s.state = stStart
	cur := s.punctCursor.Extend(evt.Cursor)
	return s.emitPunct(kind, cur)
}

// fallbackPunct finalizes the pending single-character punctuator
// without consuming evt, then reprocesses evt from Start.
func (s *Scanner) fallbackPunct(kind event.Kind, evt event.Event) error {
	s.state = stStart
	if err := s.emitPunct(kind, s.punctCursor); err != nil {
		return err
	}
	return s.dispatch(evt)
}
