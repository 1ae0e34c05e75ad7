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
	"sync"
	"sync/atomic"
)

// Feature is a session-level subscription toggled by request/reply pairs.
type Feature uint32

const (
	// FeatureInterfaceEvents is set while interface link events are enabled.
	FeatureInterfaceEvents Feature = 1 << iota
	// FeatureStats is set while periodic counter dumps are enabled.
	FeatureStats
)

func (f Feature) String() string {
	switch f {
	case FeatureInterfaceEvents:
		return "interface-events"
	case FeatureStats:
		return "stats"
	}
	return "features"
}

// SessionInfo is a snapshot of a session.
type SessionInfo struct {
	ClientIndex uint32
	Bases       map[string]uint16
	Features    Feature
}

// Session holds per-connection identity: the client index assigned by the
// engine, resolved plugin bases and feature toggles. It is created on
// connect and cleared on disconnect.
type Session struct {
	mu          sync.RWMutex
	connected   bool
	clientIndex uint32
	bases       map[string]uint16
	features    Feature

	// epoch counts opens; a lookup started in one epoch must not bind
	// into another.
	epoch uint64

	context atomic.Uint32
}

func newSession() *Session {
	return &Session{bases: make(map[string]uint16)}
}

func (s *Session) open(clientIndex uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = true
	s.epoch++
	s.clientIndex = clientIndex
	s.bases = make(map[string]uint16)
	s.features = 0
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = false
	s.clientIndex = 0
	s.bases = make(map[string]uint16)
	s.features = 0
}

// Connected reports whether the session is open.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Session) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// openIn reports whether the session is still open in epoch.
func (s *Session) openIn(epoch uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected && s.epoch == epoch
}

// ClientIndex returns the index the engine assigned on connect.
func (s *Session) ClientIndex() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientIndex
}

// Base returns the resolved first message id of a plugin.
func (s *Session) Base(plugin string) (uint16, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	base, ok := s.bases[plugin]
	return base, ok
}

func (s *Session) setBase(plugin string, base uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bases[plugin] = base
}

// SetFeature records a feature toggle.
func (s *Session) SetFeature(f Feature, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.features |= f
	} else {
		s.features &^= f
	}
}

// HasFeature reports whether a feature is enabled.
func (s *Session) HasFeature(f Feature) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.features&f != 0
}

// NextContext returns a fresh context token. Zero is never returned.
func (s *Session) NextContext() uint32 {
	for {
		if v := s.context.Add(1); v != 0 {
			return v
		}
	}
}

// Info returns a snapshot of the session.
func (s *Session) Info() SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bases := make(map[string]uint16, len(s.bases))
	for k, v := range s.bases {
		bases[k] = v
	}
	return SessionInfo{
		ClientIndex: s.clientIndex,
		Bases:       bases,
		Features:    s.features,
	}
}
