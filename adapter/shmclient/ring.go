// Copyright (c) 2024 Shared memory adapter implementation for GoVPP.
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

package shmclient

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

const (
	// RingBufferHeaderSize is the size of ring buffer header
	RingBufferHeaderSize = 64
	// MaxMessageSize is the maximum message size
	MaxMessageSize = 64 * 1024
)

// ErrRingFull is returned by Enqueue when the message does not fit.
var ErrRingFull = errors.New("ring buffer full")

// RingBuffer is a single-producer single-consumer queue of messages in
// shared memory. The 64-byte header holds the head (next write) and tail
// (next read) offsets; each message is a big-endian u32 length followed by
// its bytes and may wrap around the end of the data area. The producer
// publishes head only after the message is written. One byte is always
// left free so a full ring differs from an empty one.
type RingBuffer struct {
	data []byte
	head *uint32
	tail *uint32
	size uint32

	// serialise in-process producers and consumers
	wmu sync.Mutex
	rmu sync.Mutex
}

// NewRingBuffer lays out a ring over mem and resets it to empty.
func NewRingBuffer(mem []byte) *RingBuffer {
	rb := &RingBuffer{
		data: mem[RingBufferHeaderSize:],
		size: uint32(len(mem) - RingBufferHeaderSize),
		head: (*uint32)(unsafe.Pointer(&mem[0])),
		tail: (*uint32)(unsafe.Pointer(&mem[4])),
	}
	atomic.StoreUint32(rb.head, 0)
	atomic.StoreUint32(rb.tail, 0)
	return rb
}

func (rb *RingBuffer) used(head, tail uint32) uint32 {
	if head >= tail {
		return head - tail
	}
	return rb.size - tail + head
}

// Len returns the number of bytes queued.
func (rb *RingBuffer) Len() int {
	return int(rb.used(atomic.LoadUint32(rb.head), atomic.LoadUint32(rb.tail)))
}

// Enqueue appends one message.
func (rb *RingBuffer) Enqueue(msg []byte) error {
	if len(msg) == 0 || len(msg) > MaxMessageSize {
		return fmt.Errorf("invalid message size: %d", len(msg))
	}
	total := uint32(len(msg)) + 4

	rb.wmu.Lock()
	defer rb.wmu.Unlock()

	head := atomic.LoadUint32(rb.head)
	tail := atomic.LoadUint32(rb.tail)
	if free := rb.size - rb.used(head, tail) - 1; free < total {
		return ErrRingFull
	}

	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(msg)))
	pos := rb.copyIn(head, prefix[:])
	pos = rb.copyIn(pos, msg)

	atomic.StoreUint32(rb.head, pos)
	return nil
}

// Dequeue removes the oldest message. It returns nil, nil when the ring is
// empty. A corrupt length discards everything queued so the consumer does
// not stall on it.
func (rb *RingBuffer) Dequeue() ([]byte, error) {
	rb.rmu.Lock()
	defer rb.rmu.Unlock()

	head := atomic.LoadUint32(rb.head)
	tail := atomic.LoadUint32(rb.tail)
	used := rb.used(head, tail)
	if used == 0 {
		return nil, nil
	}
	if used < 4 {
		atomic.StoreUint32(rb.tail, head)
		return nil, fmt.Errorf("invalid ring state: %d bytes queued", used)
	}

	var prefix [4]byte
	pos := rb.copyOut(tail, prefix[:])
	n := binary.BigEndian.Uint32(prefix[:])
	if n == 0 || n > MaxMessageSize || n+4 > used {
		atomic.StoreUint32(rb.tail, head)
		return nil, fmt.Errorf("invalid message length: %d, dropped %d bytes", n, used)
	}

	msg := make([]byte, n)
	pos = rb.copyOut(pos, msg)

	atomic.StoreUint32(rb.tail, pos)
	return msg, nil
}

func (rb *RingBuffer) copyIn(pos uint32, b []byte) uint32 {
	n := copy(rb.data[pos:rb.size], b)
	if n < len(b) {
		copy(rb.data, b[n:])
	}
	return (pos + uint32(len(b))) % rb.size
}

func (rb *RingBuffer) copyOut(pos uint32, b []byte) uint32 {
	n := copy(b, rb.data[pos:rb.size])
	if n < len(b) {
		copy(b[n:], rb.data)
	}
	return (pos + uint32(len(b))) % rb.size
}
