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
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"
)

func headerSize(t api.MessageType) int {
	switch t {
	case api.RequestMessage:
		return 10
	case api.ReplyMessage, api.EventMessage:
		return 6
	}
	return 2
}

func contextOf(data []byte, t api.MessageType) uint32 {
	switch t {
	case api.RequestMessage:
		return binary.BigEndian.Uint32(data[6:10])
	case api.ReplyMessage, api.EventMessage:
		return binary.BigEndian.Uint32(data[2:6])
	}
	return 0
}

// onRawMessage is the transport callback.
func (c *Connection) onRawMessage(msgID uint16, data []byte) {
	if err := c.Dispatch(data); err != nil {
		log.WithFields(logrus.Fields{
			"msgID": msgID,
			"len":   len(data),
		}).Warnf("dispatch failed: %v", err)
	}
}

// Dispatch decodes one inbound message and runs its handler. Unknown
// identifiers and ignored kinds return nil. Errors affect only this
// message.
func (c *Connection) Dispatch(data []byte) (err error) {
	c.stats.received.Add(1)

	if len(data) < 2 {
		c.stats.truncated.Add(1)
		return &TruncatedMessageError{Kind: "header", Need: 2, Have: uint64(len(data))}
	}
	id := binary.BigEndian.Uint16(data[0:2])

	entry, ok := c.table.lookup(id)
	if !ok {
		c.stats.unknown.Add(1)
		if debug {
			log.Debugf("ignoring unknown message id %d (%d bytes)", id, len(data))
		}
		return nil
	}
	if entry.noop {
		c.stats.ignored.Add(1)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.stats.failed.Add(1)
			err = fmt.Errorf("handle %s: panic: %v", entry.kind, r)
		}
	}()

	msg := entry.newMessage()
	if m, ok := msg.(codec.Marshaler); ok {
		if need := headerSize(entry.apiType) + m.Size(); len(data) < need {
			c.stats.truncated.Add(1)
			return &TruncatedMessageError{Kind: entry.kind, Need: uint64(need), Have: uint64(len(data))}
		}
	}
	if err := codec.DefaultCodec.DecodeMsg(data, msg); err != nil {
		c.stats.failed.Add(1)
		return fmt.Errorf("decode %s: %w", entry.kind, err)
	}

	in := &Inbound{
		ID:       id,
		Kind:     entry.kind,
		Context:  contextOf(data, entry.apiType),
		Message:  msg,
		Received: c.now(),
		Sink:     c.sink,
		conn:     c,
	}
	if debug {
		log.WithFields(logrus.Fields{
			"msgName": entry.kind,
			"msgID":   id,
			"context": in.Context,
		}).Debug("dispatching")
	}
	if err := entry.handler(in); err != nil {
		if errors.Is(err, ErrTruncatedMessage) {
			c.stats.truncated.Add(1)
		} else {
			c.stats.failed.Add(1)
		}
		return fmt.Errorf("handle %s: %w", entry.kind, err)
	}
	c.stats.dispatched.Add(1)
	return nil
}
