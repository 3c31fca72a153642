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

// Package commentfilter implements L6: strips comment interiors between
// the boundary events L5 emits, replacing each comment with a single
// synthetic Whitespace event at the comment's begin cursor.
package commentfilter

import (
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/reactor"
)

type Parent interface {
	Subscribe(message.EventHandler)
	HandleMessage(message.Message) error
}

// Filter is L6.
type Filter struct {
	parent     Parent
	reactor    reactor.Reactor
	inComment  bool
	beginEvent event.Event
}

func New(parent Parent) *Filter {
	f := &Filter{parent: parent}
	parent.Subscribe(f.onParentEvent)
	return f
}

func (f *Filter) Subscribe(h message.EventHandler) {
	f.reactor.Subscribe(h)
}

func (f *Filter) HandleMessage(msg message.Message) error {
	if msg.Kind == message.KindSubscribe && msg.Target == message.LayerCommentFilter {
		f.Subscribe(msg.Handler)
		return nil
	}
	return f.parent.HandleMessage(msg)
}

func (f *Filter) onParentEvent(evt event.Event) error {
	switch evt.Kind {
	case event.KindCommentBlockBegin, event.KindCommentLineBegin:
		f.inComment = true
		f.beginEvent = evt
		return nil
	case event.KindCommentBlockEnd:
		f.inComment = false
		return f.reactor.Broadcast(event.Event{Kind: event.KindWhitespace, Cursor: f.beginEvent.Cursor})
	case event.KindCommentLineEnd:
		f.inComment = false
		return f.reactor.Broadcast(event.Event{Kind: event.KindWhitespace, Cursor: f.beginEvent.Cursor})
	}

	if f.inComment {
		// L5 already withholds raw characters between Begin and End; this
		// guards against broadcasting anything else that might slip
		// through (e.g. a future L5 event kind neither Begin nor End).
		return nil
	}
	return f.reactor.Broadcast(evt)
}
