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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"

	"github.com/fdio-stack/go-vpp/binapi/interfaces"
)

var testNow = time.Date(2017, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestConnection(t *testing.T, ft *fakeTransport, opts ...Option) (*Connection, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts = append([]Option{
		WithResolveTimeout(time.Second),
		WithClock(func() time.Time { return testNow }),
	}, opts...)
	c, err := NewConnection(ft, sink, testCatalog(), opts...)
	require.NoError(t, err)
	return c, sink
}

// encodeInbound frames msg as the engine would, with context in the
// reply header position.
func encodeInbound(t *testing.T, msg api.Message, id uint16, context uint32) []byte {
	t.Helper()
	b, err := codec.DefaultCodec.EncodeMsg(msg, id)
	require.NoError(t, err)
	if msg.GetMessageType() == api.RequestMessage {
		binary.BigEndian.PutUint32(b[6:10], context)
	} else {
		binary.BigEndian.PutUint32(b[2:6], context)
	}
	return b
}

func TestDispatchUnknownIdentifier(t *testing.T) {
	c, sink := newTestConnection(t, newFakeTransport())

	for _, id := range []uint16{0, 999, 1005, 0xFFFF} {
		data := make([]byte, 16)
		binary.BigEndian.PutUint16(data, id)
		assert.NoError(t, c.Dispatch(data), "id %d", id)
	}

	assert.Zero(t, sink.deliveries())
	assert.Equal(t, uint64(4), c.Stats().Unknown)
}

func TestDispatchNoOpIsIdempotent(t *testing.T) {
	c, sink := newTestConnection(t, newFakeTransport())

	data := encodeInbound(t, &interfaces.WantInterfaceEventsReply{Retval: 0}, 23, 1)
	for i := 0; i < 5; i++ {
		require.NoError(t, c.Dispatch(data))
	}
	// a no-op kind is never decoded, so a short message is ignored too
	require.NoError(t, c.Dispatch(data[:2]))

	assert.Zero(t, sink.deliveries())
	st := c.Stats()
	assert.Equal(t, uint64(6), st.Ignored)
	assert.Zero(t, st.Unknown)
	assert.Zero(t, st.Failed)
}

func TestDispatchSimpleReply(t *testing.T) {
	c, sink := newTestConnection(t, newFakeTransport())

	data := encodeInbound(t, &interfaces.SwInterfaceSetFlagsReply{Retval: -3}, 21, 42)
	require.NoError(t, c.Dispatch(data))

	require.Len(t, sink.replies, 1)
	r := sink.replies[0]
	assert.Equal(t, "sw_interface_set_flags_reply", r.Kind)
	assert.Equal(t, uint32(42), r.Context)
	assert.Equal(t, int32(-3), r.Retval)
	assert.IsType(t, &interfaces.SwInterfaceSetFlagsReply{}, r.Message)
	assert.Equal(t, uint64(1), c.Stats().Dispatched)
}

func TestDispatchEvent(t *testing.T) {
	c, sink := newTestConnection(t, newFakeTransport())

	ev := &interfaces.SwInterfaceSetFlags{SwIfIndex: 3, AdminUpDown: true, LinkUpDown: true}
	require.NoError(t, c.Dispatch(encodeInbound(t, ev, 20, 0)))

	require.Len(t, sink.events, 1)
	assert.Equal(t, ev, sink.events[0].Message)
	assert.Equal(t, testNow, sink.events[0].Received)
}

func TestDispatchTruncatedHeader(t *testing.T) {
	c, sink := newTestConnection(t, newFakeTransport())

	data := encodeInbound(t, &interfaces.SwInterfaceSetFlagsReply{}, 21, 1)
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"id only", data[:1]},
		{"missing body", data[:6]},
		{"short body", data[:8]},
		{"short counters header", encodeInbound(t, &interfaces.VnetInterfaceCounters{Count: 0}, 42, 1)[:10]},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := c.Dispatch(test.data)
			assert.ErrorIs(t, err, ErrTruncatedMessage)
		})
	}
	assert.Zero(t, sink.deliveries())
	assert.Equal(t, uint64(len(tests)), c.Stats().Truncated)
}

func TestDispatchIsolatesFailures(t *testing.T) {
	sink := &recordingSink{}
	specs := append(testCatalog(), MessageSpec{
		Message: &interfaces.SwInterfaceDetails{},
		ID:      25,
		Handler: func(in *Inbound) error { panic("boom") },
	})
	c, err := NewConnection(newFakeTransport(), sink, specs)
	require.NoError(t, err)

	err = c.Dispatch(encodeInbound(t, &interfaces.SwInterfaceDetails{SwIfIndex: 1}, 25, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")

	require.NoError(t, c.Dispatch(encodeInbound(t, &interfaces.SwInterfaceSetFlagsReply{}, 21, 9)))
	assert.Len(t, sink.replies, 1)
	assert.Equal(t, uint64(1), c.Stats().Failed)
}

func TestNewConnectionRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		extra MessageSpec
	}{
		{"static id", MessageSpec{Message: &interfaces.SwInterfaceDetails{}, ID: 21, Handler: EventHandler}},
		{"kind", MessageSpec{Message: &interfaces.SwInterfaceSetFlagsReply{}, ID: 99, Handler: ReplyHandler}},
		{"plugin offset", MessageSpec{Message: &interfaces.SwInterfaceDetails{}, ID: 5, Plugin: testPlugin, Handler: EventHandler}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewConnection(newFakeTransport(), nil, append(testCatalog(), test.extra))
			assert.ErrorIs(t, err, ErrDuplicateIdentifier)
		})
	}
}

func TestNewConnectionRequiresHandler(t *testing.T) {
	specs := []MessageSpec{{Message: &interfaces.SwInterfaceDetails{}, ID: 25}}
	_, err := NewConnection(newFakeTransport(), nil, specs)
	assert.Error(t, err)
}
