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

package metrics

import (
	"encoding/binary"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdio-stack/go-vpp/core"
	"github.com/fdio-stack/go-vpp/stats"
)

type fixedStats core.Stats

func (f fixedStats) Stats() core.Stats { return core.Stats(f) }

func testStore(t *testing.T) *stats.Store {
	t.Helper()
	data := make([]byte, 16)
	binary.BigEndian.PutUint64(data[0:], 12)
	binary.BigEndian.PutUint64(data[8:], 3400)
	b, err := core.AggregateInterfaceCounters(core.CounterDump{
		Kind:       "vnet_interface_counters",
		Combined:   true,
		FirstIndex: 2,
		Count:      1,
		Data:       data,
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	s := stats.NewStore()
	s.RecordBatch(b)
	return s
}

func TestCollectorCount(t *testing.T) {
	c := NewCollector(fixedStats{Sent: 4, Dispatched: 3}, testStore(t))

	// 7 outcomes, rx packets and bytes, one batches counter
	assert.Equal(t, 10, testutil.CollectAndCount(c))
}

func TestCollectorNilSources(t *testing.T) {
	assert.Equal(t, 0, testutil.CollectAndCount(NewCollector(nil, nil)))
	assert.Equal(t, 7, testutil.CollectAndCount(NewCollector(fixedStats{}, nil)))
}

func TestHandler(t *testing.T) {
	c := NewCollector(fixedStats{Sent: 4, Truncated: 1}, testStore(t))
	srv := httptest.NewServer(Handler(c))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `vpp_client_messages_total{outcome="sent"} 4`)
	assert.Contains(t, text, `vpp_client_messages_total{outcome="truncated"} 1`)
	assert.Contains(t, text, `vpp_interface_packets_total{direction="rx",sw_if_index="2"} 12`)
	assert.Contains(t, text, `vpp_interface_bytes_total{direction="rx",sw_if_index="2"} 3400`)
	assert.Contains(t, text, `vpp_stats_batches_total 1`)
}
