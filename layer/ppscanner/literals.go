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
	"strconv"

	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/cursor"
	"github.com/nanolith-go/libcparse/event"
)

// beginLiteral starts a character or string literal DFA. prefix is the
// already-consumed encoding prefix text (L, u, U, u8, or "" for none);
// quote is the opening quote byte just seen in evt; begin is where the
// token's range starts, which for a prefixed literal is the prefix's own
// cursor rather than the quote's.
func (s *Scanner) beginLiteral(evt event.Event, quote byte, prefix string, begin cursor.Cursor) error {
	s.state = stLiteralBody
	s.litQuote = quote
	s.builder.Clear()
	s.builder.WriteString(prefix)
	s.builder.WriteByte(quote)
	s.tokenCache.Clear()
	if err := s.tokenCache.Set(begin); err != nil {
		return err
	}
	return s.tokenCache.Extend(evt.Cursor)
}

// dispatchLiteral runs the body/escape sub-states of a char or string
// literal. Every simple escape ("\n", "\\", etc.) is accepted by shape
// only, without interpreting what it means; escape-sequence evaluation
// belongs to a later translation phase.
func (s *Scanner) dispatchLiteral(evt event.Event) error {
	if evt.Kind == event.KindEof || evt.Kind == event.KindNewline {
		return cparseerr.New(cparseerr.ErrPpScannerUnexpectedEof, evt.Cursor)
	}
	if evt.Kind != event.KindRawChar {
		// Whitespace/comment-boundary events never reach here: L6/L7
		// only synthesize those outside of raw-character runs, and a
		// literal's bytes arrive as a contiguous run of KindRawChar.
		return nil
	}

	b := evt.Byte

	switch s.state {
	case stLiteralBody:
		switch {
		case b == s.litQuote:
			return s.finishLiteral(evt)
		case b == '\\':
			s.state = stLiteralEscape
			s.builder.WriteByte(b)
			_ = s.tokenCache.Extend(evt.Cursor)
			return nil
		default:
			s.builder.WriteByte(b)
			_ = s.tokenCache.Extend(evt.Cursor)
			return nil
		}

	case stLiteralEscape:
		s.builder.WriteByte(b)
		_ = s.tokenCache.Extend(evt.Cursor)
		switch {
		case isOctalDigit(b):
			s.state = stLiteralEscapeOctal
			s.litEscDigits = 1
			return nil
		case b == 'x':
			s.state = stLiteralEscapeHex
			s.litHexDigitsN = 0
			return nil
		case b == 'u':
			s.state = stLiteralEscapeU
			s.litEscDigits = 0
			s.litEscNeeded = 4
			return nil
		case b == 'U':
			s.state = stLiteralEscapeUU
			s.litEscDigits = 0
			s.litEscNeeded = 8
			return nil
		default:
			// Simple escape: \n \t \\ \' \" \? \a \b \f \r \v and any
			// other single-char escape shape. Unknown letters pass; only
			// the two-character shape matters here.
			s.state = stLiteralBody
			return nil
		}

	case stLiteralEscapeOctal:
		if isOctalDigit(b) && s.litEscDigits < 3 {
			s.builder.WriteByte(b)
			_ = s.tokenCache.Extend(evt.Cursor)
			s.litEscDigits++
			return nil
		}
		s.state = stLiteralBody
		return s.dispatchLiteral(evt)

	case stLiteralEscapeHex:
		if isHexDigit(b) {
			s.builder.WriteByte(b)
			_ = s.tokenCache.Extend(evt.Cursor)
			s.litHexDigitsN++
			return nil
		}
		// A `\x` with no hex digit at all is a malformed escape shape,
		// not merely "more digits expected"; only a bare `0x` integer
		// reports ExpectingDigit.
		if s.litHexDigitsN == 0 {
			return cparseerr.New(cparseerr.ErrPpScannerUnexpectedCharacter, evt.Cursor)
		}
		s.state = stLiteralBody
		return s.dispatchLiteral(evt)

	case stLiteralEscapeU, stLiteralEscapeUU:
		if isHexDigit(b) {
			s.builder.WriteByte(b)
			_ = s.tokenCache.Extend(evt.Cursor)
			s.litEscValue[s.litEscDigits] = b
			s.litEscDigits++
			if s.litEscDigits == s.litEscNeeded {
				return s.finishUnicodeEscape(evt)
			}
			return nil
		}
		// `\u`/`\U` require exactly 4/8 hex digits; any other count
		// (including zero) is a malformed escape shape.
		return cparseerr.New(cparseerr.ErrPpScannerUnexpectedCharacter, evt.Cursor)
	}

	return nil
}

// finishUnicodeEscape validates that the just-completed \u/\U escape's
// hex digits denote a legal Unicode scalar value -- never a lone UTF-16
// surrogate -- without interpreting or storing the decoded value
// anywhere; the event still carries only the original hex digit text,
// matching the "shape, not value" discipline the rest of this scanner
// applies to every other literal.
func (s *Scanner) finishUnicodeEscape(evt event.Event) error {
	v, err := strconv.ParseUint(string(s.litEscValue[:s.litEscNeeded]), 16, 32)
	if err != nil || !validEscapeShape(uint32(v)) {
		return cparseerr.New(cparseerr.ErrPpScannerUnexpectedCharacter, evt.Cursor)
	}
	s.state = stLiteralBody
	return nil
}

func (s *Scanner) finishLiteral(evt event.Event) error {
	s.builder.WriteByte(evt.Byte)
	_ = s.tokenCache.Extend(evt.Cursor)
	text := s.builder.Build()
	cur, _ := s.tokenCache.Get()
	s.tokenCache.Clear()
	s.state = stStart

	kind := event.KindRawString
	if s.litQuote == '\'' {
		kind = event.KindRawCharacterLiteral
	}
	return s.emit(event.Event{Kind: kind, Cursor: cur, Text: text})
}
