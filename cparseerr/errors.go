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

// Package cparseerr defines the exhaustive set of error kinds a libcparse-go
// component can return, as sentinel values so callers can match them with
// errors.Is. Components wrap a sentinel in *Error to attach a cursor and,
// where relevant, the underlying cause.
package cparseerr

import (
	"errors"
	"fmt"

	"github.com/nanolith-go/libcparse/cursor"
)

// Sentinel error kinds. Compare with errors.Is, never with ==, since a
// kind is always wrapped in *Error before it leaves a layer.
var (
	ErrOutOfMemory = errors.New("out of memory")

	ErrFileOpenError  = errors.New("file open error")
	ErrFileCloseError = errors.New("file close error")
	ErrFileSeek       = errors.New("file seek error")
	ErrFileTell       = errors.New("file tell error")

	// ErrInputStreamEof is internal and non-fatal: it drives input-stack
	// pop, never bubbles out of Parser.Run on its own.
	ErrInputStreamEof = errors.New("input stream eof")

	ErrInputStreamReadError         = errors.New("input stream read error")
	ErrInputStreamDescriptorClose   = errors.New("input stream descriptor close error")
	ErrUnhandledMessage             = errors.New("unhandled message")
	ErrOutOfBounds                  = errors.New("cursor out of bounds")
	ErrBadIntegerConversion         = errors.New("bad integer conversion")
	ErrFilePositionCacheNotSet      = errors.New("file position cache not set")
	ErrFilePositionCacheAlreadySet  = errors.New("file position cache already set")
	ErrPpScannerUnexpectedCharacter = errors.New("preprocessor scanner: unexpected character")
	ErrPpScannerExpectingDigit      = errors.New("preprocessor scanner: expecting digit")
	ErrPpScannerUnexpectedEof       = errors.New("preprocessor scanner: unexpected eof")
	// ErrEventCopyUnsupportedCategory is reserved for deep-copy helpers
	// over the event vocabulary; no layer in the core produces it.
	ErrEventCopyUnsupportedCategory = errors.New("event copy: unsupported event category")

	ErrAvlTreeElementNotFound = errors.New("avl tree: element not found")

	// ErrUnterminatedBlockComment wraps ErrPpScannerUnexpectedEof: a
	// block comment still open at end of input surfaces to callers as an
	// unexpected-eof failure, with the comment-specific kind preserved
	// for anyone matching more precisely.
	ErrUnterminatedBlockComment = fmt.Errorf("unterminated block comment: %w", ErrPpScannerUnexpectedEof)
)

// Error wraps a sentinel kind with the cursor where it was detected and,
// optionally, the error it was caused by (e.g. an underlying I/O error).
type Error struct {
	Kind   error
	Cursor cursor.Cursor
	Cause  error
}

func New(kind error, cur cursor.Cursor) *Error {
	return &Error{Kind: kind, Cursor: cur}
}

func Wrap(kind error, cur cursor.Cursor, cause error) *Error {
	return &Error{Kind: kind, Cursor: cur, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at %s: %v", e.Kind, e.Cursor, e.Cause)
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Cursor)
}

// Unwrap exposes Cause so errors.Is/errors.As can keep walking into the
// underlying I/O error, if any; Is below handles matching against Kind.
func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}
