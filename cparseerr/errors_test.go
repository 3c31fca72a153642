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

package cparseerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanolith-go/libcparse/cursor"
)

func TestNew_MatchesSentinelViaErrorsIs(t *testing.T) {
	err := New(ErrOutOfBounds, cursor.New("a.c", 3, 4))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.NotErrorIs(t, err, ErrFileOpenError)
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := errors.New("disk exploded")
	err := Wrap(ErrInputStreamReadError, cursor.Cursor{}, cause)
	assert.ErrorIs(t, err, ErrInputStreamReadError)
	assert.ErrorIs(t, err, cause)
}

func TestError_MessageIncludesCursorAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrFileOpenError, cursor.New("a.c", 1, 1), cause)
	msg := err.Error()
	assert.Contains(t, msg, "a.c")
	assert.Contains(t, msg, "boom")
}

func TestError_MessageWithoutCauseOmitsColon(t *testing.T) {
	err := New(ErrOutOfBounds, cursor.New("a.c", 1, 1))
	assert.NotContains(t, err.Error(), "<nil>")
}
