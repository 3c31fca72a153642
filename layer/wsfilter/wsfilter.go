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

// Package wsfilter implements L7: coalesces runs of non-newline
// whitespace into at most one Whitespace event per run, while passing
// Newline events through individually -- the physical line structure
// the preprocessor scanner's directive framing depends on.
package wsfilter

import (
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/reactor"
)

type Parent interface {
	Subscribe(message.EventHandler)
	HandleMessage(message.Message) error
}

func isNonNewlineWhitespaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f':
		return true
	default:
		return false
	}
}

// Filter is L7.
type Filter struct {
	parent  Parent
	reactor reactor.Reactor
	run     *event.Event // in-flight coalesced Whitespace span, nil when not in a run
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
	if msg.Kind == message.KindSubscribe && msg.Target == message.LayerNewlinePreservingWhitespace {
		f.Subscribe(msg.Handler)
		return nil
	}
	return f.parent.HandleMessage(msg)
}

func (f *Filter) onParentEvent(evt event.Event) error {
	isWhitespaceByte := evt.Kind == event.KindRawChar && isNonNewlineWhitespaceByte(evt.Byte)
	isSyntheticWhitespace := evt.Kind == event.KindWhitespace
	isRunMember := isWhitespaceByte || isSyntheticWhitespace

	if isRunMember {
		if f.run == nil {
			span := event.Event{Kind: event.KindWhitespace, Cursor: evt.Cursor}
			f.run = &span
		} else {
			f.run.Cursor = f.run.Cursor.Extend(evt.Cursor)
		}
		return nil
	}

	if err := f.flush(); err != nil {
		return err
	}

	if evt.Kind == event.KindRawChar && evt.Byte == '\n' {
		return f.reactor.Broadcast(event.Event{Kind: event.KindNewline, Cursor: evt.Cursor})
	}
	return f.reactor.Broadcast(evt)
}

func (f *Filter) flush() error {
	if f.run == nil {
		return nil
	}
	span := *f.run
	f.run = nil
	return f.reactor.Broadcast(span)
}
