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

// Package lineoverride implements L3: rewrites cursors to the file/line
// a #line directive requested, served by the preprocessor scanner (L8)
// sending a FileLineOverride message.
package lineoverride

import (
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/reactor"
)

// Parent is what L3 owns: anything exposing Subscribe/HandleMessage, so
// this layer composes over L1+L2 (rawstack.Scanner) without importing it
// directly and creating a cycle.
type Parent interface {
	Subscribe(message.EventHandler)
	HandleMessage(message.Message) error
}

// override holds the pending (file, next_line) remap. delta is computed
// lazily from the first event seen after the override is set: since every
// subsequent physical newline advances the original and the remapped
// line number in lockstep, a single delta computed once covers every
// later event until the next override.
type override struct {
	file     string
	nextLine int
	delta    int
	deltaSet bool
}

// Filter is L3.
type Filter struct {
	parent   Parent
	reactor  reactor.Reactor
	override *override
}

// New wraps parent, subscribing to its event stream immediately.
func New(parent Parent) *Filter {
	f := &Filter{parent: parent}
	parent.Subscribe(f.onParentEvent)
	return f
}

// Subscribe registers h on this layer's own reactor.
func (f *Filter) Subscribe(h message.EventHandler) {
	f.reactor.Subscribe(h)
}

// HandleMessage consumes FileLineOverride and Subscribe(LayerRawFileLineOverride);
// everything else is forwarded to the parent's message handler.
func (f *Filter) HandleMessage(msg message.Message) error {
	switch msg.Kind {
	case message.KindFileLineOverride:
		f.override = &override{file: msg.File, nextLine: msg.Line}
		return nil
	case message.KindSubscribe:
		if msg.Target == message.LayerRawFileLineOverride {
			f.Subscribe(msg.Handler)
			return nil
		}
	}
	return f.parent.HandleMessage(msg)
}

func (f *Filter) onParentEvent(evt event.Event) error {
	if f.override == nil {
		return f.reactor.Broadcast(evt)
	}

	if !f.override.deltaSet {
		f.override.delta = f.override.nextLine - evt.Cursor.BeginLine
		f.override.deltaSet = true
	}
	rewritten := evt
	rewritten.Cursor.File = f.override.file
	rewritten.Cursor.BeginLine = evt.Cursor.BeginLine + f.override.delta
	rewritten.Cursor.EndLine = evt.Cursor.EndLine + f.override.delta

	return f.reactor.Broadcast(rewritten)
}
