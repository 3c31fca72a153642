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

package linewrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/layer/rawstack"
	"github.com/nanolith-go/libcparse/stream"
)

func collectBytes(t *testing.T, input string) ([]byte, int) {
	t.Helper()
	parent := rawstack.New()
	f := New(parent)
	var bytes []byte
	var eofCount int
	f.Subscribe(func(evt event.Event) error {
		if evt.Kind == event.KindRawChar {
			bytes = append(bytes, evt.Byte)
		} else if evt.Kind == event.KindEof {
			eofCount++
		}
		return nil
	})
	parent.Push("a.c", stream.FromString(input))
	require.NoError(t, parent.Run())
	return bytes, eofCount
}

func TestFilter_PassesPlainTextThrough(t *testing.T) {
	bytes, eofCount := collectBytes(t, "abc")
	assert.Equal(t, []byte("abc"), bytes)
	assert.Equal(t, 1, eofCount)
}

func TestFilter_SplicesBackslashNewline(t *testing.T) {
	bytes, _ := collectBytes(t, "a\\\nb")
	assert.Equal(t, []byte("ab"), bytes)
}

func TestFilter_LoneBackslashNotFollowedByNewlinePassesBothThrough(t *testing.T) {
	bytes, _ := collectBytes(t, "a\\bc")
	assert.Equal(t, []byte("a\\bc"), bytes)
}

func TestFilter_TrailingBackslashAtEofEmitsBackslashThenEof(t *testing.T) {
	bytes, eofCount := collectBytes(t, "a\\")
	assert.Equal(t, []byte("a\\"), bytes)
	assert.Equal(t, 1, eofCount)
}

func TestFilter_MultipleSplicesInSequence(t *testing.T) {
	bytes, _ := collectBytes(t, "a\\\nb\\\nc")
	assert.Equal(t, []byte("abc"), bytes)
}
