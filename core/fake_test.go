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
	"sync"
	"sync/atomic"
	"time"

	"go.fd.io/govpp/adapter"
	"go.fd.io/govpp/codec"

	"github.com/fdio-stack/go-vpp/binapi/acl"
	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/binapi/vpe"
)

const (
	testFirstMsgID      = 72
	testFirstMsgIDReply = 73
	testPluginBase      = 1000
	testClientIndex     = 7
)

var testPlugin = acl.PluginName

func countersHandler(in *Inbound) error {
	m := in.Message.(*interfaces.VnetInterfaceCounters)
	b, err := AggregateInterfaceCounters(CounterDump{
		Kind:        in.Kind,
		CounterType: m.VnetCounterType,
		Combined:    m.IsCombined,
		FirstIndex:  m.FirstSwIfIndex,
		Count:       m.Count,
		Data:        m.Data,
		Timestamp:   in.Received,
	})
	if err != nil {
		return err
	}
	in.Sink.RecordBatch(b)
	return nil
}

func testCatalog() []MessageSpec {
	return []MessageSpec{
		{Message: &vpe.GetFirstMsgID{}, ID: testFirstMsgID, NoOp: true},
		{Message: &vpe.GetFirstMsgIDReply{}, ID: testFirstMsgIDReply, Handler: HandleFirstMsgIDReply},
		{Message: &interfaces.SwInterfaceSetFlags{}, ID: 20, Handler: EventHandler},
		{Message: &interfaces.SwInterfaceSetFlagsReply{}, ID: 21, Handler: ReplyHandler},
		{Message: &interfaces.WantInterfaceEvents{}, ID: 22, NoOp: true},
		{Message: &interfaces.WantInterfaceEventsReply{}, ID: 23, NoOp: true},
		{Message: &interfaces.VnetInterfaceCounters{}, ID: 42, Handler: countersHandler},
		{Message: &acl.ACLDel{}, ID: 4, Plugin: testPlugin, NoOp: true},
		{Message: &acl.ACLDelReply{}, ID: 5, Plugin: testPlugin, Handler: ReplyHandler},
	}
}

type recordingSink struct {
	mu        sync.Mutex
	connected []SessionInfo
	replies   []*Reply
	batches   []*RecordBatch
	events    []*Event
}

func (s *recordingSink) Connected(info SessionInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = append(s.connected, info)
}

func (s *recordingSink) SimpleReply(r *Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, r)
}

func (s *recordingSink) RecordBatch(b *RecordBatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, b)
}

func (s *recordingSink) Event(e *Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// deliveries counts sink calls made by the dispatch path.
func (s *recordingSink) deliveries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replies) + len(s.batches) + len(s.events)
}

// fakeTransport plays the engine side: it records sent messages and
// answers get_first_msg_id lookups from bases.
type fakeTransport struct {
	mu         sync.Mutex
	cb         adapter.MsgCallback
	connected  bool
	sent       [][]byte
	bases      map[string]uint16
	replyDelay time.Duration
	silent     bool
	connectErr error

	lookups atomic.Int32
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		bases: map[string]uint16{testPlugin: testPluginBase},
	}
}

func (f *fakeTransport) SetMsgCallback(cb adapter.MsgCallback) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cb = cb
}

func (f *fakeTransport) Connect() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true
	return nil
}

func (f *fakeTransport) Disconnect() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
	return nil
}

func (f *fakeTransport) ClientIndex() uint32 {
	return testClientIndex
}

func (f *fakeTransport) isConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeTransport) sentMessages() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.sent...)
}

func (f *fakeTransport) SendMsg(data []byte) error {
	f.mu.Lock()
	f.sent = append(f.sent, append([]byte(nil), data...))
	silent, delay := f.silent, f.replyDelay
	f.mu.Unlock()

	if binary.BigEndian.Uint16(data[0:2]) != testFirstMsgID {
		return nil
	}
	f.lookups.Add(1)
	if silent {
		return nil
	}

	req := new(vpe.GetFirstMsgID)
	if err := codec.DefaultCodec.DecodeMsg(data, req); err != nil {
		return err
	}
	reply := &vpe.GetFirstMsgIDReply{Retval: -1}
	if base, ok := f.bases[req.Name]; ok {
		reply = &vpe.GetFirstMsgIDReply{FirstMsgID: base}
	}
	b, err := codec.DefaultCodec.EncodeMsg(reply, testFirstMsgIDReply)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[2:6], binary.BigEndian.Uint32(data[6:10]))

	go func() {
		time.Sleep(delay)
		f.deliver(b)
	}()
	return nil
}

func (f *fakeTransport) deliver(b []byte) {
	f.mu.Lock()
	cb := f.cb
	f.mu.Unlock()
	cb(binary.BigEndian.Uint16(b[0:2]), b)
}
