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
	"github.com/nanolith-go/libcparse/avl"
	"github.com/nanolith-go/libcparse/event"
)

// keywordTable is the C89/C99/C11 keyword lookup, built once at package
// init. Tested once per identifier, never on the hot per-byte path.
var keywordTable = buildKeywordTable()

func buildKeywordTable() *avl.Map[string, event.Kind] {
	m := avl.New[string, event.Kind](func(a, b string) bool { return a < b })
	for word, kind := range map[string]event.Kind{
		"auto": event.KindKeywordAuto, "break": event.KindKeywordBreak, "case": event.KindKeywordCase,
		"char": event.KindKeywordChar, "const": event.KindKeywordConst, "continue": event.KindKeywordContinue,
		"default": event.KindKeywordDefault, "do": event.KindKeywordDo, "double": event.KindKeywordDouble,
		"else": event.KindKeywordElse, "enum": event.KindKeywordEnum, "extern": event.KindKeywordExtern,
		"float": event.KindKeywordFloat, "for": event.KindKeywordFor, "goto": event.KindKeywordGoto,
		"if": event.KindKeywordIf, "inline": event.KindKeywordInline, "int": event.KindKeywordInt,
		"long": event.KindKeywordLong, "register": event.KindKeywordRegister, "restrict": event.KindKeywordRestrict,
		"return": event.KindKeywordReturn, "short": event.KindKeywordShort, "signed": event.KindKeywordSigned,
		"sizeof": event.KindKeywordSizeof, "static": event.KindKeywordStatic, "struct": event.KindKeywordStruct,
		"switch": event.KindKeywordSwitch, "typedef": event.KindKeywordTypedef, "union": event.KindKeywordUnion,
		"unsigned": event.KindKeywordUnsigned, "void": event.KindKeywordVoid, "volatile": event.KindKeywordVolatile,
		"while": event.KindKeywordWhile,
		"_Alignas": event.KindKeywordAlignas, "_Alignof": event.KindKeywordAlignof,
		"_Atomic": event.KindKeywordAtomic, "_Bool": event.KindKeywordBool,
		"_Complex": event.KindKeywordComplex, "_Generic": event.KindKeywordGeneric,
		"_Imaginary": event.KindKeywordImaginary, "_Noreturn": event.KindKeywordNoreturn,
		"_Static_assert": event.KindKeywordStaticAssert, "_Thread_local": event.KindKeywordThreadLocal,
	} {
		m.Insert(word, kind)
	}
	return m
}

// lookupKeyword reports the keyword Kind for text, if it is one.
func lookupKeyword(text string) (event.Kind, bool) {
	return keywordTable.Find(text)
}
