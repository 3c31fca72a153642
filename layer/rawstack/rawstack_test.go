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

package rawstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/stream"
)

func TestScanner_EmptyInputYieldsOnlyEof(t *testing.T) {
	s := New()
	var kinds []event.Kind
	s.Subscribe(func(evt event.Event) error {
		kinds = append(kinds, evt.Kind)
		return nil
	})
	s.Push("a.c", stream.FromString(""))
	require.NoError(t, s.Run())
	assert.Equal(t, []event.Kind{event.KindEof}, kinds)
}

func TestScanner_EmitsRawCharPerByteThenOneEof(t *testing.T) {
	s := New()
	var bytes []byte
	var eofCount int
	s.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindRawChar {
			bytes = append(bytes, evt.Byte)
		} else if evt.Kind == event.KindEof {
			eofCount++
		}
		return nil
	})
	s.Push("a.c", stream.FromString("ab\nc"))
	require.NoError(t, s.Run())
	assert.Equal(t, []byte("ab\nc"), bytes)
	assert.Equal(t, 1, eofCount)
}

func TestScanner_CursorAdvancesAcrossNewline(t *testing.T) {
	s := New()
	var cursors []string
	s.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindRawChar {
			cursors = append(cursors, evt.Cursor.String())
		}
		return nil
	})
	s.Push("a.c", stream.FromString("a\nb"))
	require.NoError(t, s.Run())
	require.Len(t, cursors, 3)
	assert.Equal(t, "a.c:1:1-1:2", cursors[0])
	assert.Equal(t, "a.c:1:2-2:1", cursors[1])
	assert.Equal(t, "a.c:2:1-2:2", cursors[2])
}

func TestScanner_StackPopsToOuterSourceOnEof(t *testing.T) {
	s := New()
	var names []string
	s.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindRawChar {
			names = append(names, evt.Cursor.File)
		}
		return nil
	})
	s.Push("outer.c", stream.FromString("AB"))
	s.Push("inner.c", stream.FromString("12"))
	require.NoError(t, s.Run())
	assert.Equal(t, []string{"inner.c", "inner.c", "outer.c", "outer.c"}, names)
}

func TestScanner_HandleMessage_PushInputStream(t *testing.T) {
	s := New()
	var gotByte byte
	s.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindRawChar {
			gotByte = evt.Byte
		}
		return nil
	})
	require.NoError(t, s.HandleMessage(message.PushInputStream("a.c", stream.FromString("z"))))
	require.NoError(t, s.Run())
	assert.Equal(t, byte('z'), gotByte)
}

func TestScanner_HandleMessage_UnknownIsUnhandled(t *testing.T) {
	s := New()
	err := s.HandleMessage(message.Message{Kind: message.KindFileLineOverride})
	assert.Error(t, err)
}

func TestScanner_RunIsIdempotentAfterEof(t *testing.T) {
	s := New()
	var eofCount int
	s.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindEof {
			eofCount++
		}
		return nil
	})
	s.Push("a.c", stream.FromString(""))
	require.NoError(t, s.Run())
	require.NoError(t, s.Run())
	assert.Equal(t, 1, eofCount)
}
