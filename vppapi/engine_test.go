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

package vppapi

import (
	"encoding/binary"
	"sync"
	"testing"

	"go.fd.io/govpp/adapter"
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"

	"github.com/fdio-stack/go-vpp/binapi/acl"
	"github.com/fdio-stack/go-vpp/binapi/vpe"
	"github.com/fdio-stack/go-vpp/core"
)

const (
	testClientIndex = 3
	testACLBase     = 1000
)

// outMsg is a message the engine sends with its wire identifier.
type outMsg struct {
	id  uint16
	msg api.Message
}

type responder func(req []byte) []outMsg

// scriptedEngine is an in-process Transport that answers requests by wire
// identifier, in order, from a single delivery goroutine.
type scriptedEngine struct {
	t *testing.T

	mu         sync.Mutex
	cb         adapter.MsgCallback
	responders map[uint16]responder
	sent       [][]byte

	queue chan []byte
	quit  chan struct{}
	done  chan struct{}
}

func newScriptedEngine(t *testing.T) *scriptedEngine {
	e := &scriptedEngine{
		t:          t,
		responders: make(map[uint16]responder),
	}
	e.on(IDGetFirstMsgID, func(req []byte) []outMsg {
		m := new(vpe.GetFirstMsgID)
		if err := codec.DefaultCodec.DecodeMsg(req, m); err != nil {
			t.Errorf("decode get_first_msg_id: %v", err)
		}
		reply := &vpe.GetFirstMsgIDReply{Retval: -1}
		if m.Name == acl.PluginName {
			reply = &vpe.GetFirstMsgIDReply{FirstMsgID: testACLBase}
		}
		return []outMsg{{IDGetFirstMsgIDReply, reply}}
	})
	return e
}

// on scripts the answer to requests with wire identifier id.
func (e *scriptedEngine) on(id uint16, r responder) {
	e.mu.Lock()
	e.responders[id] = r
	e.mu.Unlock()
}

// reply scripts a single fixed reply.
func (e *scriptedEngine) reply(id uint16, replyID uint16, msg api.Message) {
	e.on(id, func([]byte) []outMsg { return []outMsg{{replyID, msg}} })
}

func (e *scriptedEngine) Connect() error {
	e.queue = make(chan []byte, 64)
	e.quit = make(chan struct{})
	e.done = make(chan struct{})
	go e.deliver()
	return nil
}

func (e *scriptedEngine) Disconnect() error {
	close(e.quit)
	<-e.done
	return nil
}

func (e *scriptedEngine) ClientIndex() uint32 { return testClientIndex }

func (e *scriptedEngine) SetMsgCallback(cb adapter.MsgCallback) {
	e.mu.Lock()
	e.cb = cb
	e.mu.Unlock()
}

func (e *scriptedEngine) SendMsg(data []byte) error {
	msg := append([]byte(nil), data...)
	id := binary.BigEndian.Uint16(msg[0:2])

	e.mu.Lock()
	e.sent = append(e.sent, msg)
	r := e.responders[id]
	e.mu.Unlock()

	if r == nil {
		return nil
	}
	context := binary.BigEndian.Uint32(msg[6:10])
	for _, out := range r(msg) {
		e.push(out, context)
	}
	return nil
}

// inject delivers an unsolicited message.
func (e *scriptedEngine) inject(id uint16, msg api.Message) {
	e.push(outMsg{id, msg}, 0)
}

func (e *scriptedEngine) push(out outMsg, context uint32) {
	data, err := codec.DefaultCodec.EncodeMsg(out.msg, out.id)
	if err != nil {
		e.t.Errorf("encode %s: %v", out.msg.GetMessageName(), err)
		return
	}
	if out.msg.GetMessageType() != api.OtherMessage {
		binary.BigEndian.PutUint32(data[2:6], context)
	}
	e.queue <- data
}

func (e *scriptedEngine) deliver() {
	defer close(e.done)
	for {
		select {
		case <-e.quit:
			return
		case data := <-e.queue:
			e.mu.Lock()
			cb := e.cb
			e.mu.Unlock()
			cb(binary.BigEndian.Uint16(data[0:2]), data)
		}
	}
}

// sentWithID returns the requests sent with wire identifier id.
func (e *scriptedEngine) sentWithID(id uint16) [][]byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out [][]byte
	for _, m := range e.sent {
		if binary.BigEndian.Uint16(m[0:2]) == id {
			out = append(out, m)
		}
	}
	return out
}

func (e *scriptedEngine) sentIDs() []uint16 {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]uint16, 0, len(e.sent))
	for _, m := range e.sent {
		ids = append(ids, binary.BigEndian.Uint16(m[0:2]))
	}
	return ids
}

// decodeSent decodes the only request sent with identifier id into msg.
func decodeSent(t *testing.T, e *scriptedEngine, id uint16, msg api.Message) {
	t.Helper()
	sent := e.sentWithID(id)
	if len(sent) != 1 {
		t.Fatalf("expected one message with id %d, got %d", id, len(sent))
	}
	if err := codec.DefaultCodec.DecodeMsg(sent[0], msg); err != nil {
		t.Fatalf("decode %s: %v", msg.GetMessageName(), err)
	}
}

type recordingSink struct {
	mu      sync.Mutex
	replies []*core.Reply
	batches []*core.RecordBatch
	events  []*core.Event
}

func (s *recordingSink) Connected(core.SessionInfo) {}

func (s *recordingSink) SimpleReply(r *core.Reply) {
	s.mu.Lock()
	s.replies = append(s.replies, r)
	s.mu.Unlock()
}

func (s *recordingSink) RecordBatch(b *core.RecordBatch) {
	s.mu.Lock()
	s.batches = append(s.batches, b)
	s.mu.Unlock()
}

func (s *recordingSink) Event(e *core.Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

func (s *recordingSink) counts() (replies, batches, events int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replies), len(s.batches), len(s.events)
}
