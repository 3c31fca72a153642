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

// Package strbuilder implements the token-text accumulator every scanner
// layer uses while assembling a multi-character lexeme.
package strbuilder

const chunkSize = 100

// chunk is one fixed-size node of the builder's backing list.
type chunk struct {
	bytes [chunkSize]byte
	next  *chunk
}

// Builder is an append-only byte accumulator organized as a singly linked
// list of fixed-size chunks plus a write offset into the tail chunk,
// giving amortized O(1) WriteByte. Build() copies the accumulated bytes
// into one contiguous string; Clear() resets the builder for reuse,
// keeping the first chunk and dropping the rest of the chain, so a
// scanner that tokenizes many short identifiers in a row reuses the same
// head chunk run after run.
type Builder struct {
	head, tail *chunk
	tailOffset int
	length     int
}

// WriteByte appends a single byte. It never fails (Builder has no error
// path; Go's allocator is the only failure mode and it panics on its own).
func (b *Builder) WriteByte(c byte) {
	if b.tail == nil {
		b.head = &chunk{}
		b.tail = b.head
		b.tailOffset = 0
	} else if b.tailOffset == chunkSize {
		next := &chunk{}
		b.tail.next = next
		b.tail = next
		b.tailOffset = 0
	}
	b.tail.bytes[b.tailOffset] = c
	b.tailOffset++
	b.length++
}

// WriteString appends every byte of s in order.
func (b *Builder) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
	}
}

// Len reports the number of bytes accumulated since the last Clear.
func (b *Builder) Len() int {
	return b.length
}

// Build materializes the accumulated bytes as a contiguous string. It does
// not clear the builder; callers that want to reuse it call Clear
// explicitly.
func (b *Builder) Build() string {
	if b.length == 0 {
		return ""
	}
	out := make([]byte, 0, b.length)
	for c := b.head; c != nil; c = c.next {
		if c == b.tail {
			out = append(out, c.bytes[:b.tailOffset]...)
		} else {
			out = append(out, c.bytes[:]...)
		}
	}
	return string(out)
}

// Clear resets the builder to empty, retaining the first chunk of its
// backing chain for the next token.
func (b *Builder) Clear() {
	if b.head != nil {
		b.head.next = nil
	}
	b.tail = b.head
	b.tailOffset = 0
	b.length = 0
}
