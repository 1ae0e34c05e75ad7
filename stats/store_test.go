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

package stats

import (
	"encoding/binary"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdio-stack/go-vpp/core"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func combinedBatch(t *testing.T, counterType uint8, first uint32, values ...uint64) *core.RecordBatch {
	t.Helper()
	data := make([]byte, 8*len(values))
	for i, v := range values {
		binary.BigEndian.PutUint64(data[8*i:], v)
	}
	b, err := core.AggregateInterfaceCounters(core.CounterDump{
		Kind:        "vnet_interface_counters",
		CounterType: counterType,
		Combined:    true,
		FirstIndex:  first,
		Count:       uint32(len(values) / 2),
		Data:        data,
		Timestamp:   t0,
	})
	require.NoError(t, err)
	return b
}

func TestFoldCombined(t *testing.T) {
	s := NewStore()

	s.RecordBatch(combinedBatch(t, 0, 1, 10, 1000, 20, 2000))
	s.RecordBatch(combinedBatch(t, 1, 1, 5, 500))

	ic, ok := s.Interface(1)
	require.True(t, ok)
	assert.Equal(t, PacketBytes{Packets: 10, Bytes: 1000}, ic.Combined["rx"])
	assert.Equal(t, PacketBytes{Packets: 5, Bytes: 500}, ic.Combined["tx"])
	assert.Equal(t, t0, ic.Updated)

	ic, ok = s.Interface(2)
	require.True(t, ok)
	assert.Equal(t, PacketBytes{Packets: 20, Bytes: 2000}, ic.Combined["rx"])
	assert.Empty(t, ic.Combined["tx"])

	assert.Equal(t, uint64(2), s.Batches())
}

func TestFoldOverwrites(t *testing.T) {
	s := NewStore()

	s.RecordBatch(combinedBatch(t, 0, 3, 10, 1000))
	s.RecordBatch(combinedBatch(t, 0, 3, 15, 1500))

	ic, _ := s.Interface(3)
	assert.Equal(t, PacketBytes{Packets: 15, Bytes: 1500}, ic.Combined["rx"])
}

func TestFoldSimple(t *testing.T) {
	s := NewStore()

	data := make([]byte, 16)
	binary.BigEndian.PutUint64(data[0:], 7)
	binary.BigEndian.PutUint64(data[8:], 9)
	b, err := core.AggregateInterfaceCounters(core.CounterDump{
		Kind:        "vnet_interface_counters",
		CounterType: 0,
		FirstIndex:  4,
		Count:       2,
		Data:        data,
		Timestamp:   t0,
	})
	require.NoError(t, err)
	s.RecordBatch(b)

	list := s.Interfaces()
	require.Len(t, list, 2)
	assert.Equal(t, uint32(4), list[0].SwIfIndex)
	assert.Equal(t, uint64(7), list[0].Simple["drop"])
	assert.Equal(t, uint64(9), list[1].Simple["drop"])
}

func TestFoldFib(t *testing.T) {
	s := NewStore()

	rec := func(a [4]byte, plen uint8, pkts, bytes uint64) []byte {
		out := make([]byte, core.IP4FibCounterSize)
		copy(out, a[:])
		out[4] = plen
		binary.BigEndian.PutUint64(out[5:], pkts)
		binary.BigEndian.PutUint64(out[13:], bytes)
		return out
	}
	data := append(rec([4]byte{10, 0, 0, 0}, 8, 1, 100), rec([4]byte{10, 1, 0, 0}, 16, 2, 200)...)
	b, err := core.AggregateFibCounters(core.FibDump{
		Kind:      "vnet_ip4_fib_counters",
		VrfID:     3,
		Count:     2,
		Data:      data,
		Timestamp: t0,
	})
	require.NoError(t, err)
	s.RecordBatch(b)

	fibs := s.Fibs()
	require.Len(t, fibs, 2)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.0/8"), fibs[0].Prefix)
	assert.Equal(t, uint32(3), fibs[0].VrfID)
	assert.Equal(t, uint64(200), fibs[1].Bytes)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	s.RecordBatch(combinedBatch(t, 0, 1, 10, 1000))

	ic, _ := s.Interface(1)
	ic.Combined["rx"] = PacketBytes{}

	again, _ := s.Interface(1)
	assert.Equal(t, uint64(10), again.Combined["rx"].Packets)
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.RecordBatch(combinedBatch(t, 0, 1, 10, 1000))
	s.Reset()

	assert.Empty(t, s.Interfaces())
	assert.Empty(t, s.Fibs())
	assert.Zero(t, s.Batches())
}
