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

// Package commentscanner implements L5: recognizes /* */ and // comments
// in the raw character stream and emits begin/end boundary events
// interleaved with the non-comment raw characters. It does not strip
// anything -- that's L6 (commentfilter).
package commentscanner

import (
	"github.com/nanolith-go/libcparse/cparseerr"
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/reactor"
)

type Parent interface {
	Subscribe(message.EventHandler)
	HandleMessage(message.Message) error
}

type state int

const (
	stateInit state = iota
	stateSlash
	stateInBlock
	stateInBlockStar
	stateInLine
)

// Scanner is L5.
type Scanner struct {
	parent  Parent
	reactor reactor.Reactor
	state   state
	pending event.Event // the raw '/' event held while we decide Slash's fate
}

func New(parent Parent) *Scanner {
	s := &Scanner{parent: parent}
	parent.Subscribe(s.onParentEvent)
	return s
}

func (s *Scanner) Subscribe(h message.EventHandler) {
	s.reactor.Subscribe(h)
}

func (s *Scanner) HandleMessage(msg message.Message) error {
	if msg.Kind == message.KindSubscribe && msg.Target == message.LayerCommentScanner {
		s.Subscribe(msg.Handler)
		return nil
	}
	return s.parent.HandleMessage(msg)
}

func (s *Scanner) onParentEvent(evt event.Event) error {
	switch s.state {
	case stateInit:
		return s.handleInit(evt)
	case stateSlash:
		return s.handleSlash(evt)
	case stateInBlock:
		return s.handleInBlock(evt)
	case stateInBlockStar:
		return s.handleInBlockStar(evt)
	case stateInLine:
		return s.handleInLine(evt)
	}
	return nil
}

func (s *Scanner) handleInit(evt event.Event) error {
	if evt.Kind == event.KindRawChar && evt.Byte == '/' {
		s.pending = evt
		s.state = stateSlash
		return nil
	}
	return s.reactor.Broadcast(evt)
}

func (s *Scanner) handleSlash(evt event.Event) error {
	switch {
	case evt.Kind == event.KindRawChar && evt.Byte == '*':
		s.state = stateInBlock
		return s.reactor.Broadcast(event.Event{Kind: event.KindCommentBlockBegin, Cursor: s.pending.Cursor.Extend(evt.Cursor)})
	case evt.Kind == event.KindRawChar && evt.Byte == '/':
		s.state = stateInLine
		return s.reactor.Broadcast(event.Event{Kind: event.KindCommentLineBegin, Cursor: s.pending.Cursor.Extend(evt.Cursor)})
	default:
		s.state = stateInit
		if err := s.reactor.Broadcast(s.pending); err != nil {
			return err
		}
		return s.handleInit(evt)
	}
}

func (s *Scanner) handleInBlock(evt event.Event) error {
	if evt.Kind == event.KindEof {
		return cparseerr.New(cparseerr.ErrUnterminatedBlockComment, evt.Cursor)
	}
	if evt.Kind == event.KindRawChar && evt.Byte == '*' {
		s.state = stateInBlockStar
	}
	return nil
}

func (s *Scanner) handleInBlockStar(evt event.Event) error {
	switch {
	case evt.Kind == event.KindEof:
		return cparseerr.New(cparseerr.ErrUnterminatedBlockComment, evt.Cursor)
	case evt.Kind == event.KindRawChar && evt.Byte == '/':
		s.state = stateInit
		return s.reactor.Broadcast(event.Event{Kind: event.KindCommentBlockEnd, Cursor: evt.Cursor})
	case evt.Kind == event.KindRawChar && evt.Byte == '*':
		return nil
	default:
		s.state = stateInBlock
		return nil
	}
}

func (s *Scanner) handleInLine(evt event.Event) error {
	if evt.Kind == event.KindEof {
		if err := s.reactor.Broadcast(event.Event{Kind: event.KindCommentLineEnd, Cursor: evt.Cursor}); err != nil {
			return err
		}
		s.state = stateInit
		return s.reactor.Broadcast(evt)
	}
	if evt.Kind == event.KindRawChar && evt.Byte == '\n' {
		if err := s.reactor.Broadcast(event.Event{Kind: event.KindCommentLineEnd, Cursor: evt.Cursor}); err != nil {
			return err
		}
		s.state = stateInit
		return s.reactor.Broadcast(evt)
	}
	return nil
}
