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

package wsfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/layer/rawstack"
	"github.com/nanolith-go/libcparse/stream"
)

func collectKinds(t *testing.T, input string) []event.Kind {
	t.Helper()
	parent := rawstack.New()
	f := New(parent)
	var kinds []event.Kind
	f.Subscribe(func(evt event.Event) error {
		kinds = append(kinds, evt.Kind)
		return nil
	})
	parent.Push("a.c", stream.FromString(input))
	require.NoError(t, parent.Run())
	return kinds
}

func TestFilter_CoalescesSpacesIntoOneWhitespace(t *testing.T) {
	kinds := collectKinds(t, "a   b")
	assert.Equal(t, []event.Kind{event.KindRawChar, event.KindWhitespace, event.KindRawChar, event.KindEof}, kinds)
}

func TestFilter_MixedTabsAndSpacesCoalesce(t *testing.T) {
	kinds := collectKinds(t, "a \t\v\f b")
	assert.Equal(t, []event.Kind{event.KindRawChar, event.KindWhitespace, event.KindRawChar, event.KindEof}, kinds)
}

func TestFilter_NewlinePassesThroughIndividually(t *testing.T) {
	kinds := collectKinds(t, "a\n\nb")
	assert.Equal(t, []event.Kind{event.KindRawChar, event.KindNewline, event.KindNewline, event.KindRawChar, event.KindEof}, kinds)
}

func TestFilter_WhitespaceRunEndingAtEofIsFlushed(t *testing.T) {
	kinds := collectKinds(t, "a   ")
	assert.Equal(t, []event.Kind{event.KindRawChar, event.KindWhitespace, event.KindEof}, kinds)
}

func TestFilter_NoWhitespaceIsUnaffected(t *testing.T) {
	kinds := collectKinds(t, "ab")
	assert.Equal(t, []event.Kind{event.KindRawChar, event.KindRawChar, event.KindEof}, kinds)
}
