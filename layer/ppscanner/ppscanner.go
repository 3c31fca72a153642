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

// Package ppscanner implements L8, the preprocessor token scanner: the
// full C punctuator/keyword/identifier/literal vocabulary plus the
// #-directive PpHash...PpEnd framing. It consumes L7's Whitespace/
// Newline/RawChar/Eof stream.
//
// Every multi-character token is recognized by an explicit DFA state
// rather than a pull-style "read next byte" loop, because events arrive
// one at a time through a push callback (onParentEvent) -- there is no
// synchronous "read the next byte" operation to block on. A state that
// needs to finalize a token and immediately start recognizing the next
// one from the same incoming event does so by resetting state to
// stStart and recursing into dispatch with that same event. This
// reprocess discipline is uniform across all token families.
package ppscanner

import (
	"strconv"

	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/cursor"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/reactor"
	"github.com/nanolith-go/libcparse/strbuilder"
)

type Parent interface {
	Subscribe(message.EventHandler)
	HandleMessage(message.Message) error
}

type state int

const (
	stStart state = iota
	stIdentifier
	stNumber
	stNumberHexPrefix
	stNumberExponentSign
	stNumberExponentDigits
	stDot
	stDotDot
	stLiteralBody
	stLiteralEscape
	stLiteralEscapeOctal
	stLiteralEscapeHex
	stLiteralEscapeU
	stLiteralEscapeUU
	stSystemString

	stAfterMinus
	stAfterPlus
	stAfterStar
	stAfterSlash
	stAfterPercent
	stAfterAmp
	stAfterPipe
	stAfterCaret
	stAfterTilde
	stAfterNot
	stAfterEqual
	stAfterLess
	stAfterLessLess
	stAfterGreater
	stAfterGreaterGreater
	stAfterHash
)

// Scanner is L8.
type Scanner struct {
	parent  Parent
	reactor reactor.Reactor

	state state

	inDirective bool
	atLineStart bool

	builder    strbuilder.Builder
	tokenCache cursor.PositionCache

	// lastKind tracks the previously emitted token, used to (a) decide
	// whether an identifier right after PpHash is a directive keyword
	// and (b) enter the system-string DFA only right after PpIdInclude.
	lastKind     event.Kind
	haveLastKind bool

	// lineDirective tracks a #line directive's two operands as they
	// stream past, so the line number and optional file name can be
	// delivered together as a single FileLineOverride message once the
	// directive's PpEnd is reached.
	lineDirective        bool
	lineDirectiveStage   int // 0: expect RawInteger, 1: expect optional RawString, 2: done
	lineDirectiveLine    int
	lineDirectiveFile    string
	lineDirectiveHasFile bool

	// numeric-literal bookkeeping
	sawFloatMarker bool // '.' or exponent seen => RawFloat, not RawInteger
	numAfterZero   bool // true for exactly the byte right after a leading '0'
	expDigitSeen   bool // at least one digit consumed since the exponent marker

	// literal-DFA bookkeeping
	litQuote      byte    // ' or "
	litEscDigits  int     // digits consumed so far in a fixed-width escape
	litEscNeeded  int     // digits required for \u (4) / \U (8)
	litEscValue   [8]byte // hex digits of the in-flight \u/\U escape
	litHexDigitsN int     // hex digits consumed for \x, to catch the 0-digit case

	// pending punctuator lookahead: the already-captured first
	// character's cursor, held until the second/third char's fate is
	// known.
	punctCursor     cursor.Cursor
	secondDotCursor cursor.Cursor

	eofSeen bool
}

func New(parent Parent) *Scanner {
	s := &Scanner{atLineStart: true}
	s.parent = parent
	parent.Subscribe(s.onParentEvent)
	return s
}

func (s *Scanner) Subscribe(h message.EventHandler) {
	s.reactor.Subscribe(h)
}

func (s *Scanner) HandleMessage(msg message.Message) error {
	if msg.Kind == message.KindSubscribe && msg.Target == message.LayerPreprocessorScanner {
		s.Subscribe(msg.Handler)
		return nil
	}
	return s.parent.HandleMessage(msg)
}

func (s *Scanner) onParentEvent(evt event.Event) error {
	return s.dispatch(evt)
}

// emit broadcasts evt and records it as the scanner's last emitted token
// kind (used for the PpHash/PpIdInclude lookahead rules), and feeds a
// #line directive's operands to the pending lineDirective accumulator.
func (s *Scanner) emit(evt event.Event) error {
	if err := s.trackLineDirective(evt); err != nil {
		return err
	}
	s.lastKind = evt.Kind
	s.haveLastKind = true
	return s.reactor.Broadcast(evt)
}

// trackLineDirective feeds a #line directive's operands to the pending
// accumulator. The line number must fit a signed 32-bit value -- the
// same bound the C preprocessor's own #line argument is held to -- so an
// operand like "99999999999" is rejected as a bad conversion rather than
// silently truncated.
func (s *Scanner) trackLineDirective(evt event.Event) error {
	if evt.Kind == event.KindPpIdLine {
		s.lineDirective = true
		s.lineDirectiveStage = 0
		s.lineDirectiveHasFile = false
		return nil
	}
	if !s.lineDirective {
		return nil
	}
	switch s.lineDirectiveStage {
	case 0:
		if evt.Kind == event.KindRawInteger {
			n, err := strconv.ParseInt(evt.Text, 10, 32)
			if err != nil {
				return cparseerr.New(cparseerr.ErrBadIntegerConversion, evt.Cursor)
			}
			s.lineDirectiveLine = int(n)
			s.lineDirectiveStage = 1
		}
	case 1:
		if evt.Kind == event.KindRawString {
			s.lineDirectiveFile = unquoteSimple(evt.Text)
			s.lineDirectiveHasFile = true
			s.lineDirectiveStage = 2
		}
	}
	return nil
}

// unquoteSimple strips a RawString's surrounding double quotes. It does
// not interpret escapes: the file name text is passed through as the
// scanner received it, the same "shape, not value" discipline applied to
// every other literal this layer produces.
func unquoteSimple(text string) string {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

func (s *Scanner) dispatch(evt event.Event) error {
	switch s.state {
	case stStart:
		return s.dispatchStart(evt)
	case stIdentifier:
		return s.dispatchIdentifier(evt)
	case stNumber, stNumberHexPrefix, stNumberExponentSign, stNumberExponentDigits:
		return s.dispatchNumber(evt)
	case stDot:
		return s.dispatchDot(evt)
	case stDotDot:
		return s.dispatchDotDot(evt)
	case stLiteralBody, stLiteralEscape, stLiteralEscapeOctal, stLiteralEscapeHex,
		stLiteralEscapeU, stLiteralEscapeUU:
		return s.dispatchLiteral(evt)
	case stSystemString:
		return s.dispatchSystemString(evt)
	case stAfterMinus, stAfterPlus, stAfterStar, stAfterSlash, stAfterPercent,
		stAfterAmp, stAfterPipe, stAfterCaret, stAfterTilde, stAfterNot,
		stAfterEqual, stAfterLess, stAfterLessLess, stAfterGreater,
		stAfterGreaterGreater, stAfterHash:
		return s.dispatchPunctuator(evt)
	}
	return nil
}

func (s *Scanner) dispatchStart(evt event.Event) error {
	switch evt.Kind {
	case event.KindWhitespace:
		return nil
	case event.KindNewline:
		return s.onNewline(evt)
	case event.KindEof:
		return s.onEof(evt)
	case event.KindRawChar:
		return s.dispatchStartByte(evt)
	}
	return nil
}

func (s *Scanner) onNewline(evt event.Event) error {
	if s.inDirective {
		if err := s.closeDirective(evt); err != nil {
			return err
		}
	}
	s.atLineStart = true
	return nil
}

func (s *Scanner) onEof(evt event.Event) error {
	if s.eofSeen {
		return nil
	}
	s.eofSeen = true
	if s.inDirective {
		if err := s.closeDirective(evt); err != nil {
			return err
		}
	}
	return s.emit(event.Event{Kind: event.KindEof, Cursor: evt.Cursor})
}

// closeDirective emits PpEnd for the directive in progress and, for a
// #line directive, delivers the accumulated (file, line) to L3 as a
// FileLineOverride control message walked down through the parent chain
// -- L8 has no direct reference to L3, only to L7 immediately below it,
// so the message travels the same parent.HandleMessage path every other
// unrecognized message takes until L3's HandleMessage claims it.
func (s *Scanner) closeDirective(evt event.Event) error {
	if err := s.emit(event.Event{Kind: event.KindPpEnd, Cursor: evt.Cursor}); err != nil {
		return err
	}
	s.inDirective = false

	if s.lineDirective {
		s.lineDirective = false
		// A #line with no integer operand has nothing to deliver.
		if s.lineDirectiveStage == 0 {
			return nil
		}
		file := evt.Cursor.File
		if s.lineDirectiveHasFile {
			file = s.lineDirectiveFile
		}
		if err := s.parent.HandleMessage(message.FileLineOverride(file, s.lineDirectiveLine)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) dispatchStartByte(evt event.Event) error {
	b := evt.Byte
	wasLineStart := s.atLineStart
	// Any non-whitespace byte ends "freshly at line start"; '#' itself
	// checks wasLineStart before this is cleared.
	s.atLineStart = false

	switch {
	case isIdentStart(b):
		s.state = stIdentifier
		s.builder.Clear()
		s.builder.WriteByte(b)
		s.tokenCache.Clear()
		_ = s.tokenCache.Set(evt.Cursor)
		return nil

	case isDigit(b):
		s.state = stNumber
		s.sawFloatMarker = false
		s.numAfterZero = b == '0'
		s.builder.Clear()
		s.builder.WriteByte(b)
		s.tokenCache.Clear()
		_ = s.tokenCache.Set(evt.Cursor)
		return nil

	case b == '.':
		s.state = stDot
		s.punctCursor = evt.Cursor
		return nil

	case b == '\'':
		return s.beginLiteral(evt, '\'', "", evt.Cursor)

	case b == '"':
		return s.beginLiteral(evt, '"', "", evt.Cursor)

	case b == '#':
		return s.beginHash(evt, wasLineStart)

	case b == '(':
		return s.emitPunct(event.KindLeftParen, evt.Cursor)
	case b == ')':
		return s.emitPunct(event.KindRightParen, evt.Cursor)
	case b == '{':
		return s.emitPunct(event.KindLeftBrace, evt.Cursor)
	case b == '}':
		return s.emitPunct(event.KindRightBrace, evt.Cursor)
	case b == '[':
		return s.emitPunct(event.KindLeftBracket, evt.Cursor)
	case b == ']':
		return s.emitPunct(event.KindRightBracket, evt.Cursor)
	case b == ',':
		return s.emitPunct(event.KindComma, evt.Cursor)
	case b == ':':
		return s.emitPunct(event.KindColon, evt.Cursor)
	case b == ';':
		return s.emitPunct(event.KindSemicolon, evt.Cursor)
	case b == '?':
		return s.emitPunct(event.KindQuestion, evt.Cursor)

	case b == '<':
		if s.haveLastKind && s.lastKind == event.KindPpIdInclude {
			s.state = stSystemString
			s.builder.Clear()
			s.builder.WriteByte('<')
			s.tokenCache.Clear()
			_ = s.tokenCache.Set(evt.Cursor)
			return nil
		}
		s.state = stAfterLess
		s.punctCursor = evt.Cursor
		return nil

	case b == '>':
		s.state = stAfterGreater
		s.punctCursor = evt.Cursor
		return nil
	case b == '-':
		s.state = stAfterMinus
		s.punctCursor = evt.Cursor
		return nil
	case b == '+':
		s.state = stAfterPlus
		s.punctCursor = evt.Cursor
		return nil
	case b == '*':
		s.state = stAfterStar
		s.punctCursor = evt.Cursor
		return nil
	case b == '/':
		s.state = stAfterSlash
		s.punctCursor = evt.Cursor
		return nil
	case b == '%':
		s.state = stAfterPercent
		s.punctCursor = evt.Cursor
		return nil
	case b == '&':
		s.state = stAfterAmp
		s.punctCursor = evt.Cursor
		return nil
	case b == '|':
		s.state = stAfterPipe
		s.punctCursor = evt.Cursor
		return nil
	case b == '^':
		s.state = stAfterCaret
		s.punctCursor = evt.Cursor
		return nil
	case b == '~':
		s.state = stAfterTilde
		s.punctCursor = evt.Cursor
		return nil
	case b == '!':
		s.state = stAfterNot
		s.punctCursor = evt.Cursor
		return nil
	case b == '=':
		s.state = stAfterEqual
		s.punctCursor = evt.Cursor
		return nil
	}

	return cparseerr.New(cparseerr.ErrPpScannerUnexpectedCharacter, evt.Cursor)
}

func (s *Scanner) emitPunct(kind event.Kind, cur cursor.Cursor) error {
	return s.emit(event.Event{Kind: kind, Cursor: cur})
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (s *Scanner) dispatchIdentifier(evt event.Event) error {
	if evt.Kind == event.KindRawChar && isIdentCont(evt.Byte) {
		s.builder.WriteByte(evt.Byte)
		_ = s.tokenCache.Extend(evt.Cursor)
		return nil
	}

	text := s.builder.Build()
	cur, _ := s.tokenCache.Get()
	s.tokenCache.Clear()
	s.state = stStart

	// A one-letter/two-letter prefix immediately followed by a quote is
	// a character/string literal prefix, not an identifier -- L, u, U,
	// or u8.
	if (text == "L" || text == "u" || text == "U" || text == "u8") &&
		evt.Kind == event.KindRawChar && (evt.Byte == '\'' || evt.Byte == '"') {
		return s.beginLiteral(evt, evt.Byte, text, cur)
	}

	if s.inDirective && s.haveLastKind && s.lastKind == event.KindPpHash {
		if kind, ok := event.DirectiveKeyword[text]; ok {
			if err := s.emit(event.Event{Kind: kind, Cursor: cur}); err != nil {
				return err
			}
			return s.dispatch(evt)
		}
	}
	if kind, ok := lookupKeyword(text); ok {
		if err := s.emit(event.Event{Kind: kind, Cursor: cur}); err != nil {
			return err
		}
		return s.dispatch(evt)
	}
	if err := s.emit(event.Event{Kind: event.KindIdentifier, Cursor: cur, Text: text}); err != nil {
		return err
	}
	return s.dispatch(evt)
}

// beginHash handles a '#' seen at Start. At line start it opens a
// directive and emits PpHash with in_directive framing; anywhere else it
// is just the PpHash punctuator (possibly the first half of "##").
func (s *Scanner) beginHash(evt event.Event, wasLineStart bool) error {
	s.state = stAfterHash
	s.punctCursor = evt.Cursor
	if wasLineStart {
		s.inDirective = true
	}
	return nil
}
