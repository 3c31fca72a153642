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

// Package message defines the upward control-message vocabulary and the
// chain-of-responsibility handler type every layer participates in.
package message

import (
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/stream"
)

// Kind discriminates a Message's variant.
type Kind int

const (
	KindSubscribe Kind = iota
	KindPushInputStream
	KindFileLineOverride
)

// Layer names the pipeline stage a Subscribe message targets.
type Layer int

const (
	LayerRawStack Layer = iota
	LayerRawFileLineOverride
	LayerLineWrap
	LayerCommentScanner
	LayerCommentFilter
	LayerNewlinePreservingWhitespace
	LayerPreprocessorScanner
)

// EventHandler is the callback shape every event subscriber registers.
// Closures capture whatever context the subscriber needs; only
// event.Event values ever flow through a reactor, so the handler takes
// the event directly rather than an interface it would have to downcast.
type EventHandler func(event.Event) error

// Handler is the callback shape for upward control messages. Each layer's
// HandleMessage services the messages it recognizes and passes any other
// message to its parent's HandleMessage, so an unrecognized message keeps
// walking toward the bottom of the stack.
type Handler func(Message) error

// Message is the single struct carrying every control-message variant.
type Message struct {
	Kind Kind

	// KindSubscribe
	Target  Layer
	Handler EventHandler

	// KindPushInputStream
	StreamName string
	Stream     stream.Stream

	// KindFileLineOverride
	File string
	Line int
}

func Subscribe(target Layer, handler EventHandler) Message {
	return Message{Kind: KindSubscribe, Target: target, Handler: handler}
}

func PushInputStream(name string, s stream.Stream) Message {
	return Message{Kind: KindPushInputStream, StreamName: name, Stream: s}
}

func FileLineOverride(file string, line int) Message {
	return Message{Kind: KindFileLineOverride, File: file, Line: line}
}
