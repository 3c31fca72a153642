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

import "github.com/nanolith-go/libcparse/cparseerr"

// PositionCache accumulates the range covered by a multi-character token
// being assembled one raw character at a time. It is either empty or
// holds exactly one cursor; Set on a non-empty cache and Get on an empty
// one are both programmer errors surfaced as cparseerr errors rather
// than panics.
type PositionCache struct {
	cur *Cursor
}

// Set captures the first character's cursor. It errors if a range is
// already in flight.
func (c *PositionCache) Set(cur Cursor) error {
	if c.cur != nil {
		return cparseerr.New(cparseerr.ErrFilePositionCacheAlreadySet, cur)
	}
	v := cur
	c.cur = &v
	return nil
}

// Extend grows the in-flight range to also cover cur. It errors if no
// range has been started yet.
func (c *PositionCache) Extend(cur Cursor) error {
	if c.cur == nil {
		return cparseerr.New(cparseerr.ErrFilePositionCacheNotSet, cur)
	}
	extended := c.cur.Extend(cur)
	c.cur = &extended
	return nil
}

// Get returns the in-flight range without clearing it.
func (c *PositionCache) Get() (Cursor, error) {
	if c.cur == nil {
		return Cursor{}, cparseerr.New(cparseerr.ErrFilePositionCacheNotSet, Cursor{})
	}
	return *c.cur, nil
}

// Clear discards the in-flight range. Clearing an empty cache is a no-op.
func (c *PositionCache) Clear() {
	c.cur = nil
}

// IsSet reports whether a range is currently in flight.
func (c *PositionCache) IsSet() bool {
	return c.cur != nil
}
