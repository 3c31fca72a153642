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

// dispatchSystemString recognizes the <header.h> form of an #include
// operand -- only entered right after a PpIdInclude token, per Start's
// dispatch. It has no escape handling: everything up to the closing '>'
// is part of the system-string text, matching a C preprocessor's
// treatment of its header-name token.
func (s *Scanner) dispatchSystemString(evt event.Event) error {
	if evt.Kind == event.KindEof || evt.Kind == event.KindNewline {
		return cparseerr.New(cparseerr.ErrPpScannerUnexpectedEof, evt.Cursor)
	}
	if evt.Kind != event.KindRawChar {
		return nil
	}

	s.builder.WriteByte(evt.Byte)
	_ = s.tokenCache.Extend(evt.Cursor)
	if evt.Byte != '>' {
		return nil
	}

	text := s.builder.Build()
	cur, _ := s.tokenCache.Get()
	s.tokenCache.Clear()
	s.state = stStart
	return s.emit(event.Event{Kind: event.KindRawSystemString, Cursor: cur, Text: text})
}
