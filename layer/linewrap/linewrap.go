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

// Package linewrap implements L4: splices backslash-newline line
// continuations out of the raw character stream so a logical line that
// spans several physical lines looks contiguous to every layer above.
package linewrap

import (
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
)

// Filter is L4. It only ever needs to remember the one pending '\'
// RawChar event, since a splice is exactly a two-character lookahead.
type Filter struct {
	parent  Parent
	reactor reactor.Reactor
	state   state
	pending event.Event
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
	if msg.Kind == message.KindSubscribe && msg.Target == message.LayerLineWrap {
		f.Subscribe(msg.Handler)
		return nil
	}
	return f.parent.HandleMessage(msg)
}

func (f *Filter) onParentEvent(evt event.Event) error {
	switch f.state {
	case stateInit:
		if evt.Kind == event.KindRawChar && evt.Byte == '\\' {
			f.pending = evt
			f.state = stateSlash
			return nil
		}
		return f.reactor.Broadcast(evt)

	case stateSlash:
		f.state = stateInit
		if evt.Kind == event.KindRawChar && evt.Byte == '\n' {
			// Line continuation: both characters vanish, including
			// their cursor, so the logical line reads as contiguous.
			return nil
		}
		if evt.Kind == event.KindEof {
			if err := f.reactor.Broadcast(f.pending); err != nil {
				return err
			}
			return f.reactor.Broadcast(evt)
		}
		if err := f.reactor.Broadcast(f.pending); err != nil {
			return err
		}
		return f.reactor.Broadcast(evt)
	}
	return nil
}
