// Copyright (c) 2017 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"reflect"
	"sync"

	"go.fd.io/govpp/api"
)

// HandlerFunc handles one decoded inbound message.
type HandlerFunc func(in *Inbound) error

type handlerEntry struct {
	id      uint16
	kind    string
	plugin  string
	msgType reflect.Type
	apiType api.MessageType
	handler HandlerFunc
	noop    bool
}

func (e *handlerEntry) newMessage() api.Message {
	return reflect.New(e.msgType).Interface().(api.Message)
}

// DispatchTable maps wire identifiers to handlers. Static entries are
// added once at construction; plugin entries are bound when the plugin's
// base is resolved and unbound when the session ends.
type DispatchTable struct {
	mu      sync.RWMutex
	entries map[uint16]*handlerEntry
}

// NewDispatchTable returns an empty table.
func NewDispatchTable() *DispatchTable {
	return &DispatchTable{entries: make(map[uint16]*handlerEntry)}
}

// Register binds id to h, decoding inbound bytes into msg's type. A nil
// handler registers the kind as seen but ignored.
func (t *DispatchTable) Register(id uint16, msg api.Message, h HandlerFunc) error {
	return t.register(id, msg, "", h)
}

func (t *DispatchTable) register(id uint16, msg api.Message, plugin string, h HandlerFunc) error {
	typ := reflect.TypeOf(msg)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	entry := &handlerEntry{
		id:      id,
		kind:    msg.GetMessageName(),
		plugin:  plugin,
		msgType: typ,
		apiType: msg.GetMessageType(),
		handler: h,
		noop:    h == nil,
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if other, ok := t.entries[id]; ok {
		return &DuplicateIdentifierError{Kind: entry.kind, ID: id, Existing: other.kind}
	}
	t.entries[id] = entry
	return nil
}

func (t *DispatchTable) lookup(id uint16) (*handlerEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[id]
	return e, ok
}

func (t *DispatchTable) unbindPlugin(plugin string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, e := range t.entries {
		if e.plugin == plugin {
			delete(t.entries, id)
		}
	}
}

// Bound reports whether id has an entry.
func (t *DispatchTable) Bound(id uint16) bool {
	_, ok := t.lookup(id)
	return ok
}

// Len returns the number of bound identifiers.
func (t *DispatchTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
