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

// Package rawstack implements L1 (input stack) and L2 (raw stack
// scanner): a LIFO stack of named input streams concatenated as one
// logical byte source, emitting RawChar and a single terminal Eof event.
package rawstack

import (
	"errors"

	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/cursor"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/reactor"
	"github.com/nanolith-go/libcparse/stream"
)

// entry is one pushed input source: its stream, its name, and its own
// cursor so popping it restores the outer source's position exactly.
type entry struct {
	stream stream.Stream
	name   string
	cur    cursor.Cursor
}

// Scanner is the bottom-of-stack layer: it owns no parent (it *is* the
// byte source) and exposes the RawChar/Eof event vocabulary plus the
// PushInputStream/Subscribe message targets.
type Scanner struct {
	reactor reactor.Reactor
	stack   []*entry
	last    cursor.Cursor // position of the most recent read, for the terminal Eof
	eofSent bool
}

// New creates an empty scanner; streams are added with Push or by
// routing a PushInputStream message to it.
func New() *Scanner {
	return &Scanner{}
}

// Subscribe registers h to receive RawChar/Eof events.
func (s *Scanner) Subscribe(h message.EventHandler) {
	s.reactor.Subscribe(h)
}

// Push makes name/stream the new top-of-stack source; its cursor starts
// at (1,1,1,1).
func (s *Scanner) Push(name string, st stream.Stream) {
	s.stack = append(s.stack, &entry{stream: st, name: name, cur: cursor.Start(name)})
}

// HandleMessage consumes PushInputStream and Subscribe(LayerRawStack);
// it is the bottom of the chain, so anything else is unhandled.
func (s *Scanner) HandleMessage(msg message.Message) error {
	switch msg.Kind {
	case message.KindPushInputStream:
		s.Push(msg.StreamName, msg.Stream)
		return nil
	case message.KindSubscribe:
		if msg.Target == message.LayerRawStack {
			s.Subscribe(msg.Handler)
			return nil
		}
	}
	return cparseerr.ErrUnhandledMessage
}

// Run drives the pipeline to completion: on each tick it reads one byte
// from the top stream, broadcasts RawChar and advances that stream's
// cursor; on that stream's Eof it is popped (and closed) and the next
// source (if any) continues; once the stack is empty exactly one
// terminal Eof event is broadcast and Run returns.
func (s *Scanner) Run() error {
	for {
		if len(s.stack) == 0 {
			return s.emitTerminalEof()
		}
		top := s.stack[len(s.stack)-1]
		b, err := top.stream.ReadByte()
		if err != nil {
			if errors.Is(err, cparseerr.ErrInputStreamEof) {
				if closeErr := top.stream.Close(); closeErr != nil {
					return closeErr
				}
				s.last = top.cur
				s.stack = s.stack[:len(s.stack)-1]
				continue
			}
			return err
		}
		next := top.cur.AdvanceByte(b)
		top.cur = next
		s.last = next
		if err := s.reactor.Broadcast(event.Event{Kind: event.KindRawChar, Cursor: next, Byte: b}); err != nil {
			return err
		}
	}
}

func (s *Scanner) emitTerminalEof() error {
	if s.eofSent {
		return nil
	}
	s.eofSent = true
	return s.reactor.Broadcast(event.Event{Kind: event.KindEof, Cursor: s.last})
}
