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
	"encoding/binary"
	"net/netip"
	"sync"
	"time"
)

// RecordShape selects the layout of the records in a batch.
type RecordShape uint8

const (
	// ShapeSimpleCounter records hold one u64 value.
	ShapeSimpleCounter RecordShape = iota
	// ShapeCombinedCounter records hold a packets/bytes pair.
	ShapeCombinedCounter
	// ShapeFibCounter records hold a prefix with packets/bytes.
	ShapeFibCounter
)

func (s RecordShape) String() string {
	switch s {
	case ShapeSimpleCounter:
		return "simple"
	case ShapeCombinedCounter:
		return "combined"
	case ShapeFibCounter:
		return "fib"
	}
	return "unknown"
}

// Wire sizes of one record.
const (
	SimpleCounterSize   = 8
	CombinedCounterSize = 16
	IP4FibCounterSize   = 4 + 1 + 8 + 8
	IP6FibCounterSize   = 16 + 1 + 8 + 8
)

var simpleCounterNames = [...]string{
	"drop",
	"punt",
	"ip4",
	"ip6",
	"rx_no_buf",
	"rx_miss",
	"rx_error",
	"tx_error_fifo_full",
}

var combinedCounterNames = [...]string{
	"rx",
	"tx",
}

// CounterName returns the name of an interface counter type.
func CounterName(counterType uint8, combined bool) string {
	names := simpleCounterNames[:]
	if combined {
		names = combinedCounterNames[:]
	}
	if int(counterType) < len(names) {
		return names[counterType]
	}
	return "bogus"
}

// CounterRecord is one interface counter.
type CounterRecord struct {
	Index     uint32
	Name      string
	Timestamp time.Time
	// Value is set for simple counters.
	Value uint64
	// Packets and Bytes are set for combined counters.
	Packets uint64
	Bytes   uint64
}

// FibRecord is one FIB entry counter.
type FibRecord struct {
	Index     uint32
	Prefix    netip.Prefix
	Timestamp time.Time
	Packets   uint64
	Bytes     uint64
}

// RecordBatch is the decoded content of one counter dump message.
type RecordBatch struct {
	Kind        string
	Shape       RecordShape
	CounterName string
	FirstIndex  uint32
	VrfID       uint32
	IPv6        bool
	Timestamp   time.Time
	RecordCount int

	Counters []CounterRecord
	Fibs     []FibRecord
}

var batchPool = sync.Pool{
	New: func() interface{} { return new(RecordBatch) },
}

func newBatch() *RecordBatch {
	b := batchPool.Get().(*RecordBatch)
	b.Counters = b.Counters[:0]
	b.Fibs = b.Fibs[:0]
	return b
}

// Release returns the batch to the pool. The batch and its record slices
// must not be used afterwards.
func (b *RecordBatch) Release() {
	if b == nil {
		return
	}
	counters, fibs := b.Counters[:0], b.Fibs[:0]
	*b = RecordBatch{Counters: counters, Fibs: fibs}
	batchPool.Put(b)
}

// CounterDump is the header and raw records of an interface counter dump.
type CounterDump struct {
	Kind        string
	CounterType uint8
	Combined    bool
	FirstIndex  uint32
	Count       uint32
	Data        []byte
	Timestamp   time.Time
}

// AggregateInterfaceCounters decodes all records of an interface counter
// dump into one batch. Record i gets index FirstIndex+i and the dump's
// timestamp. When Count records do not fit in Data nothing is decoded and
// a TruncatedMessageError is returned.
func AggregateInterfaceCounters(d CounterDump) (*RecordBatch, error) {
	size := uint64(SimpleCounterSize)
	shape := ShapeSimpleCounter
	if d.Combined {
		size = CombinedCounterSize
		shape = ShapeCombinedCounter
	}
	if err := checkSpan(d.Kind, d.Count, size, len(d.Data)); err != nil {
		return nil, err
	}

	b := newBatch()
	b.Kind = d.Kind
	b.Shape = shape
	b.CounterName = CounterName(d.CounterType, d.Combined)
	b.FirstIndex = d.FirstIndex
	b.Timestamp = d.Timestamp

	cur := cursor{data: d.Data}
	last := d.FirstIndex
	for i := uint32(0); i < d.Count; i++ {
		rec := CounterRecord{
			Index:     d.FirstIndex + i,
			Name:      b.CounterName,
			Timestamp: d.Timestamp,
		}
		if d.Combined {
			rec.Packets = cur.uint64()
			rec.Bytes = cur.uint64()
		} else {
			rec.Value = cur.uint64()
		}
		b.Counters = append(b.Counters, rec)
		last = rec.Index + 1
	}
	b.RecordCount = int(last - d.FirstIndex)
	return b, nil
}

// FibDump is the header and raw records of a FIB counter dump.
type FibDump struct {
	Kind      string
	VrfID     uint32
	IPv6      bool
	Count     uint32
	Data      []byte
	Timestamp time.Time
}

// AggregateFibCounters decodes all records of a FIB counter dump into one
// batch, with the same all-or-nothing policy as AggregateInterfaceCounters.
func AggregateFibCounters(d FibDump) (*RecordBatch, error) {
	size, addrLen := uint64(IP4FibCounterSize), 4
	if d.IPv6 {
		size, addrLen = IP6FibCounterSize, 16
	}
	if err := checkSpan(d.Kind, d.Count, size, len(d.Data)); err != nil {
		return nil, err
	}

	b := newBatch()
	b.Kind = d.Kind
	b.Shape = ShapeFibCounter
	b.VrfID = d.VrfID
	b.IPv6 = d.IPv6
	b.Timestamp = d.Timestamp

	cur := cursor{data: d.Data}
	for i := uint32(0); i < d.Count; i++ {
		addr := cur.address(addrLen)
		plen := int(cur.uint8())
		b.Fibs = append(b.Fibs, FibRecord{
			Index:     i,
			Prefix:    netip.PrefixFrom(addr, plen),
			Timestamp: d.Timestamp,
			Packets:   cur.uint64(),
			Bytes:     cur.uint64(),
		})
	}
	b.RecordCount = len(b.Fibs)
	return b, nil
}

func checkSpan(kind string, count uint32, recordSize uint64, have int) error {
	need := uint64(count) * recordSize
	if need > uint64(have) {
		return &TruncatedMessageError{Kind: kind, Need: need, Have: uint64(have)}
	}
	return nil
}

// cursor reads big-endian fields from a span already checked to be long
// enough.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) uint8() uint8 {
	v := c.data[c.pos]
	c.pos++
	return v
}

func (c *cursor) uint64() uint64 {
	v := binary.BigEndian.Uint64(c.data[c.pos:])
	c.pos += 8
	return v
}

func (c *cursor) address(n int) netip.Addr {
	var addr netip.Addr
	if n == 4 {
		addr = netip.AddrFrom4([4]byte(c.data[c.pos : c.pos+4]))
	} else {
		addr = netip.AddrFrom16([16]byte(c.data[c.pos : c.pos+16]))
	}
	c.pos += n
	return addr
}
