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

package strbuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BuildEmpty(t *testing.T) {
	var b Builder
	assert.Equal(t, "", b.Build())
	assert.Equal(t, 0, b.Len())
}

func TestBuilder_WriteByteAndString(t *testing.T) {
	var b Builder
	b.WriteByte('h')
	b.WriteString("ello")
	assert.Equal(t, "hello", b.Build())
	assert.Equal(t, 5, b.Len())
}

func TestBuilder_ClearResetsForReuse(t *testing.T) {
	var b Builder
	b.WriteString("first")
	b.Clear()
	b.WriteString("second")
	assert.Equal(t, "second", b.Build())
}

func TestBuilder_SpansMultipleChunks(t *testing.T) {
	var b Builder
	want := strings.Repeat("x", 250)
	b.WriteString(want)
	assert.Equal(t, want, b.Build())
	assert.Equal(t, 250, b.Len())
}

func TestBuilder_ClearThenSpansMultipleChunksAgain(t *testing.T) {
	var b Builder
	b.WriteString(strings.Repeat("a", 150))
	b.Clear()
	want := strings.Repeat("b", 210)
	b.WriteString(want)
	assert.Equal(t, want, b.Build())
}
