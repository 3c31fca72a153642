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

// dispatchDot resolves a lone '.' seen at Start: a digit makes it the
// start of a preprocessing number (".5"), a second '.' opens the
// three-dot ellipsis lookahead, and anything else is just Dot.
func (s *Scanner) dispatchDot(evt event.Event) error {
	if evt.Kind == event.KindRawChar {
		switch {
		case isDigit(evt.Byte):
			s.state = stNumber
			s.sawFloatMarker = true
			s.numAfterZero = false
			s.builder.Clear()
			s.builder.WriteByte('.')
			s.builder.WriteByte(evt.Byte)
			s.tokenCache.Clear()
			_ = s.tokenCache.Set(s.punctCursor)
			_ = s.tokenCache.Extend(evt.Cursor)
			return nil
		case evt.Byte == '.':
			s.state = stDotDot
			s.secondDotCursor = evt.Cursor
			return nil
		}
	}

	s.state = stStart
	if err := s.emitPunct(event.KindDot, s.punctCursor); err != nil {
		return err
	}
	return s.dispatch(evt)
}

// dispatchDotDot resolves the second '.' of a potential ellipsis: a
// third '.' completes "...", anything else re-emits the first Dot and
// falls back to Start on the pending second '.' plus the current byte.
//
// Two lone dots in a row with no third ("a..b") are not valid C, but the
// scanner still has to produce *something*: it emits a single Dot for
// the first character and reprocesses from Start at the second, which
// then itself resolves as a fresh Dot (or ellipsis, if a third '.'
// follows immediately).
func (s *Scanner) dispatchDotDot(evt event.Event) error {
	if evt.Kind == event.KindRawChar && evt.Byte == '.' {
		s.state = stStart
		return s.emitPunct(event.KindEllipsis, s.punctCursor.Extend(evt.Cursor))
	}

	firstDotCursor := s.punctCursor
	s.state = stDot
	s.punctCursor = s.secondDotCursor
	if err := s.emitPunct(event.KindDot, firstDotCursor); err != nil {
		return err
	}
	return s.dispatch(evt)
}
