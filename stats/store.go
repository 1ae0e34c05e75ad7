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

// Package stats folds counter batches into per-interface and per-prefix
// totals.
package stats

import (
	"net/netip"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fdio-stack/go-vpp/core"
)

var (
	debug = strings.Contains(os.Getenv("DEBUG_GOVPP"), "stats")

	log logrus.FieldLogger
)

// SetLogger sets global logger.
func SetLogger(logger logrus.FieldLogger) {
	log = logger
}

func init() {
	logger := logrus.New()
	if debug {
		logger.Level = logrus.DebugLevel
		logger.Debug("govpp: debug level enabled for stats")
	}
	log = logger.WithField("logger", "govpp/stats")
}

// PacketBytes is one combined counter.
type PacketBytes struct {
	Packets uint64
	Bytes   uint64
}

// InterfaceCounters are the latest counter values of one interface.
type InterfaceCounters struct {
	SwIfIndex uint32
	Updated   time.Time
	// Simple holds simple counters by name, e.g. "drop" or "rx_miss".
	Simple map[string]uint64
	// Combined holds combined counters by name, "rx" or "tx".
	Combined map[string]PacketBytes
}

func (c *InterfaceCounters) clone() InterfaceCounters {
	out := InterfaceCounters{
		SwIfIndex: c.SwIfIndex,
		Updated:   c.Updated,
		Simple:    make(map[string]uint64, len(c.Simple)),
		Combined:  make(map[string]PacketBytes, len(c.Combined)),
	}
	for k, v := range c.Simple {
		out.Simple[k] = v
	}
	for k, v := range c.Combined {
		out.Combined[k] = v
	}
	return out
}

// FibCounters are the latest counter values of one FIB entry.
type FibCounters struct {
	VrfID   uint32
	Prefix  netip.Prefix
	Updated time.Time
	PacketBytes
}

type fibKey struct {
	vrf    uint32
	prefix netip.Prefix
}

// Store is a Sink that keeps the latest value of every counter it has
// seen. Counters are absolute, so a newer batch overwrites older values.
// Batches are released once folded.
type Store struct {
	core.NopSink

	mu         sync.RWMutex
	interfaces map[uint32]*InterfaceCounters
	fibs       map[fibKey]*FibCounters
	batches    uint64
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		interfaces: make(map[uint32]*InterfaceCounters),
		fibs:       make(map[fibKey]*FibCounters),
	}
}

// RecordBatch folds b into the store and releases it.
func (s *Store) RecordBatch(b *core.RecordBatch) {
	defer b.Release()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches++
	switch b.Shape {
	case core.ShapeSimpleCounter, core.ShapeCombinedCounter:
		for _, r := range b.Counters {
			ic := s.interfaces[r.Index]
			if ic == nil {
				ic = &InterfaceCounters{
					SwIfIndex: r.Index,
					Simple:    make(map[string]uint64),
					Combined:  make(map[string]PacketBytes),
				}
				s.interfaces[r.Index] = ic
			}
			if b.Shape == core.ShapeCombinedCounter {
				ic.Combined[r.Name] = PacketBytes{Packets: r.Packets, Bytes: r.Bytes}
			} else {
				ic.Simple[r.Name] = r.Value
			}
			ic.Updated = r.Timestamp
		}
	case core.ShapeFibCounter:
		for _, r := range b.Fibs {
			k := fibKey{vrf: b.VrfID, prefix: r.Prefix}
			s.fibs[k] = &FibCounters{
				VrfID:       b.VrfID,
				Prefix:      r.Prefix,
				Updated:     r.Timestamp,
				PacketBytes: PacketBytes{Packets: r.Packets, Bytes: r.Bytes},
			}
		}
	default:
		log.Warnf("ignoring batch of unknown shape %v from %s", b.Shape, b.Kind)
		return
	}

	if debug {
		log.WithFields(logrus.Fields{
			"kind":    b.Kind,
			"shape":   b.Shape,
			"records": b.RecordCount,
		}).Debug("folded batch")
	}
}

// Interface returns the counters of one interface.
func (s *Store) Interface(swIfIndex uint32) (InterfaceCounters, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ic, ok := s.interfaces[swIfIndex]
	if !ok {
		return InterfaceCounters{}, false
	}
	return ic.clone(), true
}

// Interfaces returns the counters of every interface, ordered by index.
func (s *Store) Interfaces() []InterfaceCounters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]InterfaceCounters, 0, len(s.interfaces))
	for _, ic := range s.interfaces {
		list = append(list, ic.clone())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SwIfIndex < list[j].SwIfIndex })
	return list
}

// Fibs returns the counters of every FIB entry, ordered by VRF then prefix.
func (s *Store) Fibs() []FibCounters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]FibCounters, 0, len(s.fibs))
	for _, f := range s.fibs {
		list = append(list, *f)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].VrfID != list[j].VrfID {
			return list[i].VrfID < list[j].VrfID
		}
		if c := list[i].Prefix.Addr().Compare(list[j].Prefix.Addr()); c != 0 {
			return c < 0
		}
		return list[i].Prefix.Bits() < list[j].Prefix.Bits()
	})
	return list
}

// Batches returns how many batches have been folded.
func (s *Store) Batches() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.batches
}

// Reset drops every counter.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interfaces = make(map[uint32]*InterfaceCounters)
	s.fibs = make(map[fibKey]*FibCounters)
	s.batches = 0
}
