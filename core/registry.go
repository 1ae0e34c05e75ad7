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
	"fmt"
	"sort"
	"sync"

	"go.fd.io/govpp/api"
)

// KindInfo describes a registered message kind.
type KindInfo struct {
	Name    string
	Message api.Message
	// Plugin is empty for static kinds.
	Plugin string
	// ID is the wire identifier of a static kind, or the offset from the
	// plugin base of a plugin-relative kind.
	ID uint16
}

// Static reports whether the kind has a fixed wire identifier.
func (k KindInfo) Static() bool {
	return k.Plugin == ""
}

// Registry maps message kinds to wire identifiers. Static kinds carry a
// fixed identifier; plugin-relative kinds carry an offset that is added
// to the plugin base resolved for a session.
type Registry struct {
	mu        sync.RWMutex
	kinds     map[string]KindInfo
	staticIDs map[uint16]string
	offsets   map[string]map[uint16]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:     make(map[string]KindInfo),
		staticIDs: make(map[uint16]string),
		offsets:   make(map[string]map[uint16]string),
	}
}

// RegisterStatic binds msg's kind to a fixed wire identifier.
func (r *Registry) RegisterStatic(msg api.Message, id uint16) error {
	name := msg.GetMessageName()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[name]; ok {
		return &DuplicateIdentifierError{Kind: name, ID: id, Existing: name}
	}
	if other, ok := r.staticIDs[id]; ok {
		return &DuplicateIdentifierError{Kind: name, ID: id, Existing: other}
	}
	r.kinds[name] = KindInfo{Name: name, Message: msg, ID: id}
	r.staticIDs[id] = name
	return nil
}

// RegisterPluginRelative binds msg's kind to an offset within plugin's
// message range.
func (r *Registry) RegisterPluginRelative(msg api.Message, plugin string, offset uint16) error {
	if plugin == "" {
		return fmt.Errorf("register %s: empty plugin name", msg.GetMessageName())
	}
	name := msg.GetMessageName()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[name]; ok {
		return &DuplicateIdentifierError{Kind: name, ID: offset, Existing: name}
	}
	offsets := r.offsets[plugin]
	if offsets == nil {
		offsets = make(map[uint16]string)
		r.offsets[plugin] = offsets
	}
	if other, ok := offsets[offset]; ok {
		return &DuplicateIdentifierError{Kind: name, ID: offset, Existing: other}
	}
	r.kinds[name] = KindInfo{Name: name, Message: msg, Plugin: plugin, ID: offset}
	offsets[offset] = name
	return nil
}

// Lookup returns the registration of a kind.
func (r *Registry) Lookup(kind string) (KindInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[kind]
	return k, ok
}

// WireIDFor returns the wire identifier of kind within session s. It
// never performs a round-trip: plugin-relative kinds whose plugin has not
// been resolved for s fail with ErrUnresolvedNamespace.
func (r *Registry) WireIDFor(s *Session, kind string) (uint16, error) {
	k, ok := r.Lookup(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if k.Static() {
		return k.ID, nil
	}
	base, ok := s.Base(k.Plugin)
	if !ok {
		return 0, fmt.Errorf("%w: %s (plugin %s)", ErrUnresolvedNamespace, kind, k.Plugin)
	}
	return base + k.ID, nil
}

// Plugins returns the names of all plugins with registered kinds, sorted.
func (r *Registry) Plugins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugins := make([]string, 0, len(r.offsets))
	for p := range r.offsets {
		plugins = append(plugins, p)
	}
	sort.Strings(plugins)
	return plugins
}
