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

// Package stream implements L0: the polymorphic byte source every named
// input is read through. Stream is an interface with exactly two
// implementations, descriptor-backed and in-memory; the descriptor
// variant's Close delegates to *os.File's own Close.
package stream

import (
	"errors"
	"io"
	"os"

	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/cursor"
)

// Stream is read sequentially; seeking is not supported.
type Stream interface {
	// ReadByte returns the next byte, or an error wrapping
	// cparseerr.ErrInputStreamEof at end of input and
	// cparseerr.ErrInputStreamReadError on any other failure.
	ReadByte() (byte, error)
	// Close releases the stream. It is idempotent and safe to call more
	// than once.
	Close() error
}

// fdStream reads from an *os.File it owns; Close closes the handle.
type fdStream struct {
	f      *os.File
	reader io.ByteReader
	closed bool
}

// FromDescriptor wraps an already-open *os.File, taking ownership of it:
// Close on the returned Stream closes f.
func FromDescriptor(f *os.File) Stream {
	return &fdStream{f: f, reader: newByteReader(f)}
}

// Open opens path for reading and wraps it as a descriptor-backed Stream.
func Open(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cparseerr.Wrap(cparseerr.ErrFileOpenError, cursor.Cursor{}, err)
	}
	return FromDescriptor(f), nil
}

func (s *fdStream) ReadByte() (byte, error) {
	b, err := s.reader.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, cparseerr.Wrap(cparseerr.ErrInputStreamEof, cursor.Cursor{}, err)
		}
		return 0, cparseerr.Wrap(cparseerr.ErrInputStreamReadError, cursor.Cursor{}, err)
	}
	return b, nil
}

func (s *fdStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.f.Close(); err != nil {
		return cparseerr.Wrap(cparseerr.ErrInputStreamDescriptorClose, cursor.Cursor{}, err)
	}
	return nil
}

// stringStream reads from an in-memory buffer it owns. Close zeroizes
// the buffer so secrets fed in as in-memory sources (e.g. a generated
// translation unit) don't linger in the heap past release.
type stringStream struct {
	buf    []byte
	idx    int
	closed bool
}

// FromString copies s's bytes into an owned buffer and wraps them as a
// Stream.
func FromString(s string) Stream {
	buf := make([]byte, len(s))
	copy(buf, s)
	return &stringStream{buf: buf}
}

func (s *stringStream) ReadByte() (byte, error) {
	if s.idx >= len(s.buf) {
		return 0, cparseerr.Wrap(cparseerr.ErrInputStreamEof, cursor.Cursor{}, io.EOF)
	}
	b := s.buf[s.idx]
	s.idx++
	return b, nil
}

func (s *stringStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.buf = nil
	return nil
}

func newByteReader(f *os.File) io.ByteReader {
	return &bufferedFile{f: f}
}

// bufferedFile satisfies io.ByteReader over an *os.File with one
// read-ahead block, so the scanner's byte-at-a-time traversal doesn't
// become a syscall per byte.
type bufferedFile struct {
	f   *os.File
	buf [4096]byte
	n   int
	pos int
}

func (b *bufferedFile) ReadByte() (byte, error) {
	if b.pos >= b.n {
		n, err := b.f.Read(b.buf[:])
		if n == 0 {
			if err == nil {
				err = io.EOF
			}
			return 0, err
		}
		b.n = n
		b.pos = 0
	}
	c := b.buf[b.pos]
	b.pos++
	return c, nil
}

