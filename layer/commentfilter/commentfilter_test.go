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

package commentfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/layer/commentscanner"
	"github.com/nanolith-go/libcparse/layer/rawstack"
	"github.com/nanolith-go/libcparse/stream"
)

func run(t *testing.T, input string) []event.Event {
	t.Helper()
	parent := rawstack.New()
	scanner := commentscanner.New(parent)
	f := New(scanner)
	var events []event.Event
	f.Subscribe(func(evt event.Event) error {
		events = append(events, evt)
		return nil
	})
	parent.Push("a.c", stream.FromString(input))
	require.NoError(t, parent.Run())
	return events
}

func TestFilter_BlockCommentBecomesSingleWhitespace(t *testing.T) {
	events := run(t, "a/* comment */b")
	var kinds []event.Kind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []event.Kind{event.KindRawChar, event.KindWhitespace, event.KindRawChar, event.KindEof}, kinds)
}

func TestFilter_WhitespaceCursorIsAtCommentBegin(t *testing.T) {
	events := run(t, "/* c */x")
	require.Equal(t, event.KindWhitespace, events[0].Kind)
	assert.Equal(t, 1, events[0].Cursor.BeginCol)
}

func TestFilter_LineCommentBecomesSingleWhitespaceThenNewlinePasses(t *testing.T) {
	events := run(t, "x//c\ny")
	var kinds []event.Kind
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []event.Kind{
		event.KindRawChar,
		event.KindWhitespace,
		event.KindRawChar, // the newline itself
		event.KindRawChar, // y
		event.KindEof,
	}, kinds)
}

func TestFilter_PlainTextUnaffected(t *testing.T) {
	events := run(t, "xy")
	require.Len(t, events, 3)
	assert.Equal(t, event.KindRawChar, events[0].Kind)
	assert.Equal(t, event.KindRawChar, events[1].Kind)
	assert.Equal(t, event.KindEof, events[2].Kind)
}
