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

// Package event defines the lexical event vocabulary shared by every
// layer: one tagged-union Event struct whose Kind discriminates the
// variant, with a Category grouping for handlers that dispatch on the
// broad family before the exact Kind.
package event

import "github.com/nanolith-go/libcparse/cursor"

// Kind discriminates an Event's variant.
type Kind int

// Category groups related Kinds into broad families; a handler typically
// switches on Category first, then Kind.
type Category int

const (
	CategoryRaw Category = iota
	CategoryWhitespace
	CategoryComment
	CategoryPunctuator
	CategoryIdentifier
	CategoryKeyword
	CategoryLiteral
	CategoryPreprocessor
	CategoryControl
)

const (
	KindRawChar Kind = iota
	KindEof

	KindWhitespace
	KindNewline

	KindCommentBlockBegin
	KindCommentBlockEnd
	KindCommentLineBegin
	KindCommentLineEnd

	// Punctuators.
	KindLeftParen
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindComma
	KindColon
	KindSemicolon
	KindDot
	KindEllipsis
	KindArrow
	KindPlus
	KindMinus
	KindStar
	KindForwardSlash
	KindPercent
	KindLogicalAnd
	KindLogicalOr
	KindAmpersand
	KindPipe
	KindCaret
	KindTilde
	KindQuestion
	KindNot
	KindEqualCompare
	KindNotEqualCompare
	KindEqualAssign
	KindPlusEqual
	KindMinusEqual
	KindStarEqual
	KindSlashEqual
	KindPercentEqual
	KindAmpersandEqual
	KindPipeEqual
	KindCaretEqual
	KindTildeEqual
	KindBitshiftLeftEqual
	KindBitshiftRightEqual
	KindBitshiftLeft
	KindBitshiftRight
	KindLessThan
	KindGreaterThan
	KindLessThanEqual
	KindGreaterThanEqual
	KindIncrement
	KindDecrement

	KindIdentifier

	// Keywords (C89/C99/C11, 44 entries -- see layer/ppscanner/keywords.go).
	KindKeywordAuto
	KindKeywordBreak
	KindKeywordCase
	KindKeywordChar
	KindKeywordConst
	KindKeywordContinue
	KindKeywordDefault
	KindKeywordDo
	KindKeywordDouble
	KindKeywordElse
	KindKeywordEnum
	KindKeywordExtern
	KindKeywordFloat
	KindKeywordFor
	KindKeywordGoto
	KindKeywordIf
	KindKeywordInline
	KindKeywordInt
	KindKeywordLong
	KindKeywordRegister
	KindKeywordRestrict
	KindKeywordReturn
	KindKeywordShort
	KindKeywordSigned
	KindKeywordSizeof
	KindKeywordStatic
	KindKeywordStruct
	KindKeywordSwitch
	KindKeywordTypedef
	KindKeywordUnion
	KindKeywordUnsigned
	KindKeywordVoid
	KindKeywordVolatile
	KindKeywordWhile
	KindKeywordAlignas
	KindKeywordAlignof
	KindKeywordAtomic
	KindKeywordBool
	KindKeywordComplex
	KindKeywordGeneric
	KindKeywordImaginary
	KindKeywordNoreturn
	KindKeywordStaticAssert
	KindKeywordThreadLocal

	// Raw (unparsed) literals.
	KindRawInteger
	KindRawFloat
	KindRawCharacterLiteral
	KindRawString
	KindRawSystemString

	// Preprocessor framing.
	KindPpHash
	KindPpStringConcat
	KindPpIdIf
	KindPpIdIfdef
	KindPpIdIfndef
	KindPpIdElif
	KindPpIdElse
	KindPpIdEndif
	KindPpIdInclude
	KindPpIdDefine
	KindPpIdUndef
	KindPpIdLine
	KindPpIdError
	KindPpIdPragma
	KindPpEnd
)

// Category reports which family a Kind belongs to.
func (k Kind) Category() Category {
	switch {
	case k == KindRawChar || k == KindEof:
		return CategoryRaw
	case k == KindWhitespace || k == KindNewline:
		return CategoryWhitespace
	case k >= KindCommentBlockBegin && k <= KindCommentLineEnd:
		return CategoryComment
	case k >= KindLeftParen && k <= KindDecrement:
		return CategoryPunctuator
	case k == KindIdentifier:
		return CategoryIdentifier
	case k >= KindKeywordAuto && k <= KindKeywordThreadLocal:
		return CategoryKeyword
	case k >= KindRawInteger && k <= KindRawSystemString:
		return CategoryLiteral
	case k >= KindPpHash && k <= KindPpEnd:
		return CategoryPreprocessor
	default:
		return CategoryControl
	}
}

// String names a Kind for diagnostics and syntax-highlighting output.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	KindRawChar: "RawChar", KindEof: "Eof",
	KindWhitespace: "Whitespace", KindNewline: "Newline",
	KindCommentBlockBegin: "CommentBlockBegin", KindCommentBlockEnd: "CommentBlockEnd",
	KindCommentLineBegin: "CommentLineBegin", KindCommentLineEnd: "CommentLineEnd",
	KindLeftParen: "LeftParen", KindRightParen: "RightParen",
	KindLeftBrace: "LeftBrace", KindRightBrace: "RightBrace",
	KindLeftBracket: "LeftBracket", KindRightBracket: "RightBracket",
	KindComma: "Comma", KindColon: "Colon", KindSemicolon: "Semicolon",
	KindDot: "Dot", KindEllipsis: "Ellipsis", KindArrow: "Arrow",
	KindPlus: "Plus", KindMinus: "Minus", KindStar: "Star",
	KindForwardSlash: "ForwardSlash", KindPercent: "Percent",
	KindLogicalAnd: "LogicalAnd", KindLogicalOr: "LogicalOr",
	KindAmpersand: "Ampersand", KindPipe: "Pipe", KindCaret: "Caret", KindTilde: "Tilde",
	KindQuestion: "Question", KindNot: "Not",
	KindEqualCompare: "EqualCompare", KindNotEqualCompare: "NotEqualCompare",
	KindEqualAssign: "EqualAssign",
	KindPlusEqual: "PlusEqual", KindMinusEqual: "MinusEqual", KindStarEqual: "StarEqual",
	KindSlashEqual: "SlashEqual", KindPercentEqual: "PercentEqual",
	KindAmpersandEqual: "AmpersandEqual", KindPipeEqual: "PipeEqual", KindCaretEqual: "CaretEqual",
	KindTildeEqual: "TildeEqual",
	KindBitshiftLeftEqual: "BitshiftLeftEqual", KindBitshiftRightEqual: "BitshiftRightEqual",
	KindBitshiftLeft: "BitshiftLeft", KindBitshiftRight: "BitshiftRight",
	KindLessThan: "LessThan", KindGreaterThan: "GreaterThan",
	KindLessThanEqual: "LessThanEqual", KindGreaterThanEqual: "GreaterThanEqual",
	KindIncrement: "Increment", KindDecrement: "Decrement",
	KindIdentifier: "Identifier",
	KindKeywordAuto: "auto", KindKeywordBreak: "break", KindKeywordCase: "case",
	KindKeywordChar: "char", KindKeywordConst: "const", KindKeywordContinue: "continue",
	KindKeywordDefault: "default", KindKeywordDo: "do", KindKeywordDouble: "double",
	KindKeywordElse: "else", KindKeywordEnum: "enum", KindKeywordExtern: "extern",
	KindKeywordFloat: "float", KindKeywordFor: "for", KindKeywordGoto: "goto",
	KindKeywordIf: "if", KindKeywordInline: "inline", KindKeywordInt: "int",
	KindKeywordLong: "long", KindKeywordRegister: "register", KindKeywordRestrict: "restrict",
	KindKeywordReturn: "return", KindKeywordShort: "short", KindKeywordSigned: "signed",
	KindKeywordSizeof: "sizeof", KindKeywordStatic: "static", KindKeywordStruct: "struct",
	KindKeywordSwitch: "switch", KindKeywordTypedef: "typedef", KindKeywordUnion: "union",
	KindKeywordUnsigned: "unsigned", KindKeywordVoid: "void", KindKeywordVolatile: "volatile",
	KindKeywordWhile: "while", KindKeywordAlignas: "_Alignas", KindKeywordAlignof: "_Alignof",
	KindKeywordAtomic: "_Atomic", KindKeywordBool: "_Bool", KindKeywordComplex: "_Complex",
	KindKeywordGeneric: "_Generic", KindKeywordImaginary: "_Imaginary",
	KindKeywordNoreturn: "_Noreturn", KindKeywordStaticAssert: "_Static_assert",
	KindKeywordThreadLocal: "_Thread_local",
	KindRawInteger:         "RawInteger", KindRawFloat: "RawFloat",
	KindRawCharacterLiteral: "RawCharacterLiteral", KindRawString: "RawString",
	KindRawSystemString:    "RawSystemString",
	KindPpHash:             "PpHash", KindPpStringConcat: "PpStringConcat",
	KindPpIdIf: "PpIdIf", KindPpIdIfdef: "PpIdIfdef", KindPpIdIfndef: "PpIdIfndef",
	KindPpIdElif: "PpIdElif", KindPpIdElse: "PpIdElse", KindPpIdEndif: "PpIdEndif",
	KindPpIdInclude: "PpIdInclude", KindPpIdDefine: "PpIdDefine", KindPpIdUndef: "PpIdUndef",
	KindPpIdLine: "PpIdLine", KindPpIdError: "PpIdError", KindPpIdPragma: "PpIdPragma",
	KindPpEnd: "PpEnd",
}

// DirectiveKeyword maps a directive keyword Kind back to the identifier
// text used to introduce it (e.g. KindPpIdIfdef -> "ifdef"), consumed by
// the preprocessor scanner's directive-keyword dispatch.
var DirectiveKeyword = map[string]Kind{
	"if": KindPpIdIf, "ifdef": KindPpIdIfdef, "ifndef": KindPpIdIfndef,
	"elif": KindPpIdElif, "else": KindPpIdElse, "endif": KindPpIdEndif,
	"include": KindPpIdInclude, "define": KindPpIdDefine, "undef": KindPpIdUndef,
	"line": KindPpIdLine, "error": KindPpIdError, "pragma": KindPpIdPragma,
}

// Event is the single struct carrying every variant's payload; Kind
// disambiguates which fields are meaningful. Cursor is always present.
type Event struct {
	Kind    Kind
	Cursor  cursor.Cursor
	Text    string // Identifier/keyword-adjacent text, raw literal text.
	Byte    byte   // RawChar payload.
	HasSign bool   // RawInteger/RawFloat: true if a unary sign was folded in.
}
