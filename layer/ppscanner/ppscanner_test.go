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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/layer/commentfilter"
	"github.com/nanolith-go/libcparse/layer/commentscanner"
	"github.com/nanolith-go/libcparse/layer/lineoverride"
	"github.com/nanolith-go/libcparse/layer/linewrap"
	"github.com/nanolith-go/libcparse/layer/rawstack"
	"github.com/nanolith-go/libcparse/layer/wsfilter"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/stream"
)

// buildScanner wires L1-L8 together the way the facade does, so a #line
// directive's FileLineOverride message has L3 present to claim it.
func buildScanner(t *testing.T, input string) (*Scanner, *rawstack.Scanner) {
	t.Helper()
	rs := rawstack.New()
	lo := lineoverride.New(rs)
	lw := linewrap.New(lo)
	cs := commentscanner.New(lw)
	cf := commentfilter.New(cs)
	ws := wsfilter.New(cf)
	pp := New(ws)
	rs.Push("a.c", stream.FromString(input))
	return pp, rs
}

func runTokens(t *testing.T, input string) ([]event.Event, error) {
	t.Helper()
	pp, rs := buildScanner(t, input)
	var events []event.Event
	pp.Subscribe(func(evt event.Event) error {
		events = append(events, evt)
		return nil
	})
	return events, rs.Run()
}

func kindsOf(events []event.Event) []event.Kind {
	var kinds []event.Kind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestScanner_IdentifierAndParen(t *testing.T) {
	events, err := runTokens(t, "foo(x)")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindLeftParen, event.KindIdentifier,
		event.KindRightParen, event.KindEof,
	}, kinds)
	assert.Equal(t, "foo", events[0].Text)
	assert.Equal(t, "x", events[2].Text)
}

func TestScanner_KeywordsAreDistinctFromIdentifiers(t *testing.T) {
	events, err := runTokens(t, "int x")
	require.NoError(t, err)
	assert.Equal(t, event.KindKeywordInt, events[0].Kind)
	assert.Equal(t, event.KindIdentifier, events[1].Kind)
}

func TestScanner_IntegerLiteral(t *testing.T) {
	events, err := runTokens(t, "42")
	require.NoError(t, err)
	require.Equal(t, event.KindRawInteger, events[0].Kind)
	assert.Equal(t, "42", events[0].Text)
}

func TestScanner_HexIntegerLiteral(t *testing.T) {
	events, err := runTokens(t, "0x1A")
	require.NoError(t, err)
	require.Equal(t, event.KindRawInteger, events[0].Kind)
	assert.Equal(t, "0x1A", events[0].Text)
}

func TestScanner_HexIntegerMissingDigitErrors(t *testing.T) {
	_, err := runTokens(t, "0x;")
	assert.ErrorIs(t, err, cparseerr.ErrPpScannerExpectingDigit)
}

func TestScanner_FloatWithExponent(t *testing.T) {
	events, err := runTokens(t, "1.5e10")
	require.NoError(t, err)
	require.Equal(t, event.KindRawFloat, events[0].Kind)
	assert.Equal(t, "1.5e10", events[0].Text)
}

func TestScanner_LeadingDotFloat(t *testing.T) {
	events, err := runTokens(t, ".5")
	require.NoError(t, err)
	require.Equal(t, event.KindRawFloat, events[0].Kind)
	assert.Equal(t, ".5", events[0].Text)
}

func TestScanner_DotDotIsTwoDots(t *testing.T) {
	events, err := runTokens(t, "a..b")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindDot, event.KindDot, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_Ellipsis(t *testing.T) {
	events, err := runTokens(t, "a...b")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindEllipsis, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_StringLiteralWithSimpleEscape(t *testing.T) {
	events, err := runTokens(t, `"a\nb"`)
	require.NoError(t, err)
	require.Equal(t, event.KindRawString, events[0].Kind)
	assert.Equal(t, `"a\nb"`, events[0].Text)
}

func TestScanner_CharacterLiteral(t *testing.T) {
	events, err := runTokens(t, `'x'`)
	require.NoError(t, err)
	require.Equal(t, event.KindRawCharacterLiteral, events[0].Kind)
	assert.Equal(t, `'x'`, events[0].Text)
}

func TestScanner_WidePrefixedStringLiteral(t *testing.T) {
	events, err := runTokens(t, `u8"hi"`)
	require.NoError(t, err)
	require.Equal(t, event.KindRawString, events[0].Kind)
	assert.Equal(t, `u8"hi"`, events[0].Text)
}

func TestScanner_UnterminatedStringErrors(t *testing.T) {
	_, err := runTokens(t, `"abc`)
	assert.ErrorIs(t, err, cparseerr.ErrPpScannerUnexpectedEof)
}

func TestScanner_HexEscapeWithNoDigitsErrors(t *testing.T) {
	_, err := runTokens(t, `"\x"`)
	assert.ErrorIs(t, err, cparseerr.ErrPpScannerUnexpectedCharacter)
}

func TestScanner_OctalEscapeStopsAtThreeDigits(t *testing.T) {
	events, err := runTokens(t, `"\1234"`)
	require.NoError(t, err)
	require.Equal(t, event.KindRawString, events[0].Kind)
	assert.Equal(t, `"\1234"`, events[0].Text)
}

func TestScanner_UnicodeEscapeWrongDigitCountErrors(t *testing.T) {
	_, err := runTokens(t, `"\u123"`)
	assert.ErrorIs(t, err, cparseerr.ErrPpScannerUnexpectedCharacter)
}

func TestScanner_UnicodeEscapeValidFourDigits(t *testing.T) {
	events, err := runTokens(t, `"\u0041"`)
	require.NoError(t, err)
	require.Equal(t, event.KindRawString, events[0].Kind)
	assert.Equal(t, `"\u0041"`, events[0].Text)
}

func TestScanner_UnicodeEscapeLoneSurrogateErrors(t *testing.T) {
	_, err := runTokens(t, `"\uD800"`)
	assert.ErrorIs(t, err, cparseerr.ErrPpScannerUnexpectedCharacter)
}

func TestScanner_IncludeSystemStringFraming(t *testing.T) {
	events, err := runTokens(t, "#include <stdio.h>\n")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindPpHash, event.KindPpIdInclude, event.KindRawSystemString,
		event.KindPpEnd, event.KindEof,
	}, kinds)
	assert.Equal(t, "<stdio.h>", events[2].Text)
}

func TestScanner_DirectiveKeywordOnlyRightAfterHash(t *testing.T) {
	events, err := runTokens(t, "#define X\n")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindPpHash, event.KindPpIdDefine, event.KindIdentifier,
		event.KindPpEnd, event.KindEof,
	}, kinds)
}

func TestScanner_HashNotAtLineStartIsJustPunctuator(t *testing.T) {
	events, err := runTokens(t, "a #b\n")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindPpHash, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_HashHashIsStringConcat(t *testing.T) {
	events, err := runTokens(t, "a##b")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindPpStringConcat, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_ArrowAndDecrementAndMinusEqual(t *testing.T) {
	events, err := runTokens(t, "a->b--c-=d")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindArrow, event.KindIdentifier, event.KindDecrement,
		event.KindIdentifier, event.KindMinusEqual, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_ShiftOperatorsAndCompoundForms(t *testing.T) {
	events, err := runTokens(t, "a<<=b>>=c<<d>>e")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindBitshiftLeftEqual,
		event.KindIdentifier, event.KindBitshiftRightEqual,
		event.KindIdentifier, event.KindBitshiftLeft,
		event.KindIdentifier, event.KindBitshiftRight,
		event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_LessThanNotFollowedByIncludeIsComparison(t *testing.T) {
	events, err := runTokens(t, "a<b")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{event.KindIdentifier, event.KindLessThan, event.KindIdentifier, event.KindEof}, kinds)
}

func TestScanner_LogicalAndBitwiseOperators(t *testing.T) {
	events, err := runTokens(t, "a&&b||c&d|e^f")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindLogicalAnd, event.KindIdentifier, event.KindLogicalOr,
		event.KindIdentifier, event.KindAmpersand, event.KindIdentifier, event.KindPipe,
		event.KindIdentifier, event.KindCaret, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_EqualityAndAssignment(t *testing.T) {
	events, err := runTokens(t, "a==b!=c=d")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{
		event.KindIdentifier, event.KindEqualCompare, event.KindIdentifier, event.KindNotEqualCompare,
		event.KindIdentifier, event.KindEqualAssign, event.KindIdentifier, event.KindEof,
	}, kinds)
}

func TestScanner_UnexpectedCharacterErrors(t *testing.T) {
	_, err := runTokens(t, "a$b")
	assert.ErrorIs(t, err, cparseerr.ErrPpScannerUnexpectedCharacter)
}

func TestScanner_LineDirectiveRewritesSubsequentCursors(t *testing.T) {
	pp, rs := buildScanner(t, "#line 100 \"other.c\"\nx\n")
	var fileAfter string
	var lineAfter int
	pp.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindIdentifier {
			fileAfter = evt.Cursor.File
			lineAfter = evt.Cursor.BeginLine
		}
		return nil
	})
	require.NoError(t, rs.Run())
	assert.Equal(t, "other.c", fileAfter)
	assert.Equal(t, 100, lineAfter)
}

func TestScanner_LineDirectiveOverflowingLineNumberErrors(t *testing.T) {
	_, err := runTokens(t, "#line 99999999999 \"other.c\"\n")
	assert.ErrorIs(t, err, cparseerr.ErrBadIntegerConversion)
}

func TestScanner_EmptyInputYieldsOnlyEof(t *testing.T) {
	events, err := runTokens(t, "")
	require.NoError(t, err)
	assert.Equal(t, []event.Kind{event.KindEof}, kindsOf(events))
}

func TestScanner_CommentsAreInvisibleToTokenStream(t *testing.T) {
	events, err := runTokens(t, "a/* c */b")
	require.NoError(t, err)
	kinds := kindsOf(events)
	assert.Equal(t, []event.Kind{event.KindIdentifier, event.KindIdentifier, event.KindEof}, kinds)
}

func TestScanner_LineContinuationSplicesInsideIdentifier(t *testing.T) {
	events, err := runTokens(t, "ab\\\ncd")
	require.NoError(t, err)
	require.Equal(t, event.KindIdentifier, events[0].Kind)
	assert.Equal(t, "abcd", events[0].Text)
}

func TestScanner_HandleMessage_SubscribeForwardsToBottomLayer(t *testing.T) {
	pp, rs := buildScanner(t, "z")
	var gotByte byte
	require.NoError(t, pp.HandleMessage(message.Subscribe(message.LayerRawStack, func(evt event.Event) error {
		if evt.Kind == event.KindRawChar {
			gotByte = evt.Byte
		}
		return nil
	})))
	require.NoError(t, rs.Run())
	assert.Equal(t, byte('z'), gotByte)
}
