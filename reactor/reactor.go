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

// Package reactor implements the fan-out event broadcaster shared by
// every layer: an ordered list of handlers invoked in registration order,
// with the first non-nil error aborting the broadcast.
package reactor

import (
	"github.com/nanolith-go/libcparse/event"
	"github.com/nanolith-go/libcparse/message"
)

// Reactor holds an ordered set of event handlers. Handlers are added but
// never removed; a Reactor is torn down along with its owning layer
// (nothing to release explicitly -- Go's GC reclaims the slice).
type Reactor struct {
	handlers []message.EventHandler
}

// Subscribe registers h to receive every future Broadcast call.
func (r *Reactor) Subscribe(h message.EventHandler) {
	r.handlers = append(r.handlers, h)
}

// Broadcast invokes every registered handler in registration order. The
// first handler to return a non-nil error aborts the broadcast; handlers
// registered after it do not see the event.
func (r *Reactor) Broadcast(evt event.Event) error {
	for _, h := range r.handlers {
		if err := h(evt); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of registered handlers, used by tests asserting
// subscription wiring.
func (r *Reactor) Len() int {
	return len(r.handlers)
}
