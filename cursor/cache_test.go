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

package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanolith-go/libcparse/cparseerr"
)

func TestPositionCache_SetGetClear(t *testing.T) {
	var c PositionCache
	assert.False(t, c.IsSet())

	require.NoError(t, c.Set(New("a.c", 1, 1)))
	assert.True(t, c.IsSet())

	got, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, "a.c", got.File)

	c.Clear()
	assert.False(t, c.IsSet())
}

func TestPositionCache_SetTwiceErrors(t *testing.T) {
	var c PositionCache
	require.NoError(t, c.Set(New("a.c", 1, 1)))
	err := c.Set(New("a.c", 1, 1))
	assert.ErrorIs(t, err, cparseerr.ErrFilePositionCacheAlreadySet)
}

func TestPositionCache_GetEmptyErrors(t *testing.T) {
	var c PositionCache
	_, err := c.Get()
	assert.ErrorIs(t, err, cparseerr.ErrFilePositionCacheNotSet)
}

func TestPositionCache_ExtendEmptyErrors(t *testing.T) {
	var c PositionCache
	err := c.Extend(New("a.c", 1, 1))
	assert.ErrorIs(t, err, cparseerr.ErrFilePositionCacheNotSet)
}

func TestPositionCache_ExtendGrowsRange(t *testing.T) {
	var c PositionCache
	require.NoError(t, c.Set(New("a.c", 1, 1)))
	require.NoError(t, c.Extend(New("a.c", 1, 2)))
	got, err := c.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, got.BeginCol)
	assert.Equal(t, 2, got.EndCol)
}

func TestPositionCache_ClearIsIdempotent(t *testing.T) {
	var c PositionCache
	c.Clear()
	c.Clear()
	assert.False(t, c.IsSet())
}
