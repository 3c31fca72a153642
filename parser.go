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

// Package libcparse is the public facade: it wires the full layer stack
// into one pipeline and exposes the subscription/driver API every
// collaborator (cmd/cparse's subcommands, or a caller's own code) uses.
// Parser holds a typed reference to each layer; every control message
// enters at the top of the stack and walks the handler chain downward
// until a layer claims it.
package libcparse

import (
	"github.com/nanolith-go/libcparse/layer/commentfilter"
	"github.com/nanolith-go/libcparse/layer/commentscanner"
	"github.com/nanolith-go/libcparse/layer/lineoverride"
	"github.com/nanolith-go/libcparse/layer/linewrap"
	"github.com/nanolith-go/libcparse/layer/ppscanner"
	"github.com/nanolith-go/libcparse/layer/rawstack"
	"github.com/nanolith-go/libcparse/layer/wsfilter"
	"github.com/nanolith-go/libcparse/message"
	"github.com/nanolith-go/libcparse/stream"
)

// Parser owns the full layer stack, leaves-first: each field owns the
// one before it.
type Parser struct {
	rawStack       *rawstack.Scanner
	lineOverride   *lineoverride.Filter
	lineWrap       *linewrap.Filter
	commentScanner *commentscanner.Scanner
	commentFilter  *commentfilter.Filter
	wsFilter       *wsfilter.Filter
	ppScanner      *ppscanner.Scanner
}

// New builds the full L1-L8 pipeline, subscribing each layer to its
// parent's event stream immediately the way each layer's own New does.
func New() *Parser {
	rs := rawstack.New()
	lo := lineoverride.New(rs)
	lw := linewrap.New(lo)
	cs := commentscanner.New(lw)
	cf := commentfilter.New(cs)
	ws := wsfilter.New(cf)
	pp := ppscanner.New(ws)
	return &Parser{
		rawStack:       rs,
		lineOverride:   lo,
		lineWrap:       lw,
		commentScanner: cs,
		commentFilter:  cf,
		wsFilter:       ws,
		ppScanner:      pp,
	}
}

// PushInputStream makes name/stream the next source to read, LIFO: if a
// source is already running, the new one takes over until it hits EOF,
// then the previous one resumes.
func (p *Parser) PushInputStream(name string, s stream.Stream) error {
	return p.ppScanner.HandleMessage(message.PushInputStream(name, s))
}

// SubscribeRawStack receives L1+L2's RawChar/Eof vocabulary.
func (p *Parser) SubscribeRawStack(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerRawStack, h))
}

// SubscribeRawFileLineOverride receives L3's cursor-rewritten stream.
func (p *Parser) SubscribeRawFileLineOverride(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerRawFileLineOverride, h))
}

// SubscribeLineWrap receives L4's splice-free character stream.
func (p *Parser) SubscribeLineWrap(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerLineWrap, h))
}

// SubscribeCommentScanner receives L5's comment-boundary-annotated stream.
func (p *Parser) SubscribeCommentScanner(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerCommentScanner, h))
}

// SubscribeCommentFilter receives L6's comment-stripped stream.
func (p *Parser) SubscribeCommentFilter(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerCommentFilter, h))
}

// SubscribeNewlinePreservingWhitespace receives L7's coalesced-whitespace
// stream.
func (p *Parser) SubscribeNewlinePreservingWhitespace(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerNewlinePreservingWhitespace, h))
}

// SubscribePreprocessorScanner receives L8's full preprocessor-token
// vocabulary -- the layer most collaborators subscribe to.
func (p *Parser) SubscribePreprocessorScanner(h message.EventHandler) error {
	return p.ppScanner.HandleMessage(message.Subscribe(message.LayerPreprocessorScanner, h))
}

// Run drives the pipeline to completion. It returns Ok iff the terminal
// Eof was emitted by L2 and every handler in every reactor it passed
// through returned nil.
func (p *Parser) Run() error {
	return p.rawStack.Run()
}
