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
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// validEscapeShape reports whether v is shaped as a legal Unicode scalar
// value -- i.e. not a lone UTF-16 surrogate and not beyond U+10FFFF --
// without ever converting v into anything the scanner stores or emits.
// The \u/\U escape's text is passed through to the event verbatim either
// way; this only decides whether the digits are well-formed enough to
// accept, the same "shape, not value" rule the rest of the literal DFA
// applies to every other escape.
//
// Rather than hand-roll the surrogate-range comparison, this leans on
// encoding.UTF8Validator: encodeRawShape lays out v's bits as a UTF-8
// byte sequence without pre-filtering surrogates, and the validator is
// the one that rejects the ill-formed result a surrogate produces.
func validEscapeShape(v uint32) bool {
	if v > 0x10FFFF {
		return false
	}
	_, _, err := transform.Bytes(encoding.UTF8Validator, encodeRawShape(v))
	return err == nil
}

// encodeRawShape lays out v's bits in the UTF-8 pattern for its magnitude
// without checking scalar-value validity; surrogates land in the
// ED A0..BF range that strict validation rejects.
func encodeRawShape(v uint32) []byte {
	switch {
	case v < 0x80:
		return []byte{byte(v)}
	case v < 0x800:
		return []byte{
			0xC0 | byte(v>>6),
			0x80 | byte(v&0x3F),
		}
	case v < 0x10000:
		return []byte{
			0xE0 | byte(v>>12),
			0x80 | byte((v>>6)&0x3F),
			0x80 | byte(v&0x3F),
		}
	default:
		return []byte{
			0xF0 | byte(v>>18),
			0x80 | byte((v>>12)&0x3F),
			0x80 | byte((v>>6)&0x3F),
			0x80 | byte(v&0x3F),
		}
	}
}
