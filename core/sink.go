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
	"reflect"
	"time"

	"go.fd.io/govpp/api"
)

// Sink receives the outcomes of inbound messages. Each method is called at
// most once per inbound message, on the delivery path, and takes
// ownership of its argument. A sink that blocks stalls delivery of every
// subsequent message.
type Sink interface {
	// Connected is called once the session is established and ready.
	Connected(info SessionInfo)
	// SimpleReply is called for acknowledgement-style replies.
	SimpleReply(r *Reply)
	// RecordBatch is called with every aggregated counter dump. The sink
	// should call Release when done with the batch.
	RecordBatch(b *RecordBatch)
	// Event is called for asynchronous notifications and details messages.
	Event(e *Event)
}

// NopSink ignores all outcomes. Embed it to implement a subset of Sink.
type NopSink struct{}

func (NopSink) Connected(SessionInfo)      {}
func (NopSink) SimpleReply(*Reply)         {}
func (NopSink) RecordBatch(b *RecordBatch) { b.Release() }
func (NopSink) Event(*Event)               {}

// Reply is a decoded reply carrying a status code.
type Reply struct {
	Kind    string
	Context uint32
	Retval  int32
	Message api.Message
}

// Event is a decoded asynchronous message.
type Event struct {
	Kind     string
	Context  uint32
	Received time.Time
	Message  api.Message
}

// Inbound is one decoded message handed to a HandlerFunc.
type Inbound struct {
	ID       uint16
	Kind     string
	Context  uint32
	Message  api.Message
	Received time.Time
	Sink     Sink

	conn *Connection
}

// Session returns the session the message arrived on.
func (in *Inbound) Session() *Session {
	if in.conn == nil {
		return nil
	}
	return in.conn.session
}

// ReplyHandler forwards the message to Sink.SimpleReply with its Retval.
func ReplyHandler(in *Inbound) error {
	in.Sink.SimpleReply(&Reply{
		Kind:    in.Kind,
		Context: in.Context,
		Retval:  Retval(in.Message),
		Message: in.Message,
	})
	return nil
}

// EventHandler forwards the message to Sink.Event.
func EventHandler(in *Inbound) error {
	in.Sink.Event(&Event{
		Kind:     in.Kind,
		Context:  in.Context,
		Received: in.Received,
		Message:  in.Message,
	})
	return nil
}

// Retval returns the Retval field of a reply message, or 0 when the
// message has none.
func Retval(msg api.Message) int32 {
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return 0
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0
	}
	f := v.FieldByName("Retval")
	if !f.IsValid() || f.Kind() != reflect.Int32 {
		return 0
	}
	return int32(f.Int())
}
