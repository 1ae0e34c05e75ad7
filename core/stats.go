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

import "sync/atomic"

// Stats is a snapshot of the connection's message counters.
type Stats struct {
	Sent       uint64
	Received   uint64
	Dispatched uint64
	Ignored    uint64
	Unknown    uint64
	Failed     uint64
	Truncated  uint64
}

type counters struct {
	sent       atomic.Uint64
	received   atomic.Uint64
	dispatched atomic.Uint64
	ignored    atomic.Uint64
	unknown    atomic.Uint64
	failed     atomic.Uint64
	truncated  atomic.Uint64
}

// Stats returns the current message counters.
func (c *Connection) Stats() Stats {
	return Stats{
		Sent:       c.stats.sent.Load(),
		Received:   c.stats.received.Load(),
		Dispatched: c.stats.dispatched.Load(),
		Ignored:    c.stats.ignored.Load(),
		Unknown:    c.stats.unknown.Load(),
		Failed:     c.stats.failed.Load(),
		Truncated:  c.stats.truncated.Load(),
	}
}
