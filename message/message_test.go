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

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/stream"
)

func TestSubscribe_BuildsSubscribeMessage(t *testing.T) {
	h := func(event.Event) error { return nil }
	msg := Subscribe(LayerCommentFilter, h)
	assert.Equal(t, KindSubscribe, msg.Kind)
	assert.Equal(t, LayerCommentFilter, msg.Target)
	assert.NotNil(t, msg.Handler)
}

func TestPushInputStream_BuildsPushMessage(t *testing.T) {
	s := stream.FromString("x")
	msg := PushInputStream("a.c", s)
	assert.Equal(t, KindPushInputStream, msg.Kind)
	assert.Equal(t, "a.c", msg.StreamName)
	assert.Equal(t, s, msg.Stream)
}

func TestFileLineOverride_BuildsOverrideMessage(t *testing.T) {
	msg := FileLineOverride("other.c", 42)
	assert.Equal(t, KindFileLineOverride, msg.Kind)
	assert.Equal(t, "other.c", msg.File)
	assert.Equal(t, 42, msg.Line)
}
