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
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"

	"github.com/fdio-stack/go-vpp/binapi/acl"
	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/binapi/ip"
	"github.com/fdio-stack/go-vpp/binapi/l2"
	"github.com/fdio-stack/go-vpp/binapi/vpe"
)

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestConnectResolvesPlugins(t *testing.T) {
	ft := newFakeTransport()
	c, sink := newTestConnection(t, ft)

	assert.False(t, isClosed(c.Ready()))
	require.NoError(t, c.Connect(context.Background()))
	assert.True(t, isClosed(c.Ready()))

	require.Len(t, sink.connected, 1)
	info := sink.connected[0]
	assert.Equal(t, uint32(testClientIndex), info.ClientIndex)
	assert.Equal(t, map[string]uint16{testPlugin: testPluginBase}, info.Bases)
	assert.Equal(t, int32(1), ft.lookups.Load())

	id, err := c.WireIDFor("acl_del")
	require.NoError(t, err)
	assert.Equal(t, uint16(testPluginBase+4), id)

	data := encodeInbound(t, &acl.ACLDelReply{Retval: -1}, testPluginBase+5, 11)
	require.NoError(t, c.Dispatch(data))
	require.Len(t, sink.replies, 1)
	assert.Equal(t, "acl_del_reply", sink.replies[0].Kind)
	assert.Equal(t, int32(-1), sink.replies[0].Retval)
}

func TestPluginKindsNotDispatchedBeforeResolution(t *testing.T) {
	ft := newFakeTransport()
	c, sink := newTestConnection(t, ft, WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	_, err := c.WireIDFor("acl_del")
	assert.ErrorIs(t, err, ErrUnresolvedNamespace)

	data := encodeInbound(t, &acl.ACLDelReply{}, testPluginBase+5, 1)
	require.NoError(t, c.Dispatch(data))
	assert.Zero(t, sink.deliveries())
	assert.Equal(t, uint64(1), c.Stats().Unknown)
	assert.Zero(t, ft.lookups.Load())
}

func TestConcurrentResolutionSingleRoundTrip(t *testing.T) {
	ft := newFakeTransport()
	ft.replyDelay = 20 * time.Millisecond
	c, _ := newTestConnection(t, ft, WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	const n = 16
	ids := make([]uint16, n)
	errs := make([]error, n)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			ids[i], errs[i] = c.ResolveWireID(context.Background(), "acl_del")
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, uint16(testPluginBase+4), ids[i])
	}
	assert.Equal(t, int32(1), ft.lookups.Load())
}

func TestResolveSharedLookupOutlivesCallerDeadline(t *testing.T) {
	ft := newFakeTransport()
	ft.replyDelay = 50 * time.Millisecond
	c, _ := newTestConnection(t, ft, WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	short, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var (
		wg         sync.WaitGroup
		shortErr   error
		patientID  uint16
		patientErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, shortErr = c.ResolveWireID(short, "acl_del")
	}()
	go func() {
		defer wg.Done()
		patientID, patientErr = c.ResolveWireID(context.Background(), "acl_del")
	}()
	wg.Wait()

	assert.ErrorIs(t, shortErr, context.DeadlineExceeded)
	require.NoError(t, patientErr)
	assert.Equal(t, uint16(testPluginBase+4), patientID)
	assert.Equal(t, int32(1), ft.lookups.Load())

	base, ok := c.Session().Base(testPlugin)
	assert.True(t, ok)
	assert.Equal(t, uint16(testPluginBase), base)
}

func TestLookupAfterDisconnectDoesNotBind(t *testing.T) {
	c, _ := newTestConnection(t, newFakeTransport(), WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	epoch := c.session.currentEpoch()
	require.NoError(t, c.Disconnect())

	_, err := c.commitBase(testPlugin, testPluginBase, epoch)
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.False(t, c.table.Bound(testPluginBase+5))

	// a reconnect in a later epoch rejects the stale reply too
	require.NoError(t, c.Connect(context.Background()))
	_, err = c.commitBase(testPlugin, testPluginBase, epoch)
	assert.ErrorIs(t, err, ErrNotConnected)

	base, err := c.ResolvePluginBase(context.Background(), testPlugin)
	require.NoError(t, err)
	assert.Equal(t, uint16(testPluginBase), base)
	assert.True(t, c.table.Bound(testPluginBase+5))
}

func TestResolvePluginNotFound(t *testing.T) {
	ft := newFakeTransport()
	ft.bases = map[string]uint16{}
	c, _ := newTestConnection(t, ft, WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	_, err := c.ResolvePluginBase(context.Background(), testPlugin)
	assert.ErrorIs(t, err, ErrPluginNotFound)
	assert.ErrorIs(t, err, ErrUnresolvedNamespace)

	// failures are not cached
	_, err = c.ResolvePluginBase(context.Background(), testPlugin)
	assert.ErrorIs(t, err, ErrPluginNotFound)
	assert.Equal(t, int32(2), ft.lookups.Load())

	_, err = c.Send(context.Background(), &acl.ACLDel{ACLIndex: 1})
	assert.ErrorIs(t, err, ErrPluginNotFound)
}

func TestConnectToleratesMissingPlugin(t *testing.T) {
	ft := newFakeTransport()
	ft.bases = map[string]uint16{}
	c, sink := newTestConnection(t, ft)

	require.NoError(t, c.Connect(context.Background()))
	assert.True(t, isClosed(c.Ready()))
	require.Len(t, sink.connected, 1)
	assert.Empty(t, sink.connected[0].Bases)
}

func TestResolveTimeout(t *testing.T) {
	ft := newFakeTransport()
	ft.silent = true
	c, _ := newTestConnection(t, ft, WithEagerResolution(false), WithResolveTimeout(50*time.Millisecond))
	require.NoError(t, c.Connect(context.Background()))

	_, err := c.ResolvePluginBase(context.Background(), testPlugin)
	assert.ErrorIs(t, err, ErrNamespaceResolutionTimeout)
}

func TestConnectFailsOnResolveTimeout(t *testing.T) {
	ft := newFakeTransport()
	ft.silent = true
	c, sink := newTestConnection(t, ft, WithResolveTimeout(50*time.Millisecond))

	err := c.Connect(context.Background())
	assert.ErrorIs(t, err, ErrNamespaceResolutionTimeout)
	assert.False(t, ft.isConnected())
	assert.False(t, c.Session().Connected())
	assert.False(t, isClosed(c.Ready()))
	assert.Empty(t, sink.connected)
}

func TestConnectTransportError(t *testing.T) {
	ft := newFakeTransport()
	ft.connectErr = errors.New("no engine")
	c, _ := newTestConnection(t, ft)

	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no engine")
	assert.False(t, c.Session().Connected())
}

func TestSendStampsHeader(t *testing.T) {
	ft := newFakeTransport()
	c, _ := newTestConnection(t, ft, WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	req := &interfaces.SwInterfaceSetFlags{SwIfIndex: 5, AdminUpDown: true}
	first, err := c.Send(context.Background(), req)
	require.NoError(t, err)
	second, err := c.Send(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.NotZero(t, first)

	sent := ft.sentMessages()
	require.Len(t, sent, 2)
	data := sent[0]
	assert.Equal(t, uint16(20), binary.BigEndian.Uint16(data[0:2]))
	assert.Equal(t, uint32(testClientIndex), binary.BigEndian.Uint32(data[2:6]))
	assert.Equal(t, first, binary.BigEndian.Uint32(data[6:10]))

	decoded := new(interfaces.SwInterfaceSetFlags)
	require.NoError(t, codec.DefaultCodec.DecodeMsg(data, decoded))
	assert.Equal(t, req, decoded)
	assert.Equal(t, uint64(2), c.Stats().Sent)
}

func TestSendResolvesPluginOnFirstUse(t *testing.T) {
	ft := newFakeTransport()
	c, _ := newTestConnection(t, ft, WithEagerResolution(false))
	require.NoError(t, c.Connect(context.Background()))

	require.NoError(t, c.SendContext(context.Background(), &acl.ACLDel{ACLIndex: 3}, 77))
	require.NoError(t, c.SendContext(context.Background(), &acl.ACLDel{ACLIndex: 4}, 78))

	sent := ft.sentMessages()
	require.Len(t, sent, 3)
	assert.Equal(t, uint16(testFirstMsgID), binary.BigEndian.Uint16(sent[0][0:2]))
	for _, data := range sent[1:] {
		assert.Equal(t, uint16(testPluginBase+4), binary.BigEndian.Uint16(data[0:2]))
	}
	assert.Equal(t, uint32(78), binary.BigEndian.Uint32(sent[2][6:10]))
	assert.Equal(t, int32(1), ft.lookups.Load())
}

func TestSendNotConnected(t *testing.T) {
	c, _ := newTestConnection(t, newFakeTransport())

	_, err := c.Send(context.Background(), &interfaces.SwInterfaceSetFlags{})
	assert.ErrorIs(t, err, ErrNotConnected)
	_, err = c.ResolvePluginBase(context.Background(), testPlugin)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestSendUnknownKind(t *testing.T) {
	c, _ := newTestConnection(t, newFakeTransport())
	require.NoError(t, c.Connect(context.Background()))

	_, err := c.Send(context.Background(), &l2.L2PatchAddDel{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDisconnect(t *testing.T) {
	ft := newFakeTransport()
	c, _ := newTestConnection(t, ft)
	require.NoError(t, c.Connect(context.Background()))

	require.NoError(t, c.Disconnect())
	assert.False(t, ft.isConnected())
	assert.False(t, c.Session().Connected())
	assert.False(t, isClosed(c.Ready()))
	assert.False(t, c.table.Bound(testPluginBase+5))

	_, err := c.WireIDFor("acl_del")
	assert.ErrorIs(t, err, ErrUnresolvedNamespace)
	_, err = c.Send(context.Background(), &interfaces.SwInterfaceSetFlags{})
	assert.ErrorIs(t, err, ErrNotConnected)

	// reconnect resolves again
	require.NoError(t, c.Connect(context.Background()))
	assert.Equal(t, int32(2), ft.lookups.Load())
	assert.True(t, c.table.Bound(testPluginBase+5))
}

func TestDisconnectFailsPendingResolution(t *testing.T) {
	ft := newFakeTransport()
	ft.silent = true
	c, _ := newTestConnection(t, ft, WithEagerResolution(false), WithResolveTimeout(5*time.Second))
	require.NoError(t, c.Connect(context.Background()))

	done := make(chan error, 1)
	go func() {
		_, err := c.ResolvePluginBase(context.Background(), testPlugin)
		done <- err
	}()

	require.Eventually(t, func() bool { return ft.lookups.Load() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, c.Disconnect())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrNotConnected)
	case <-time.After(time.Second):
		t.Fatal("resolution did not fail after disconnect")
	}
}

func TestLateFirstMsgIDReplyIsDropped(t *testing.T) {
	c, sink := newTestConnection(t, newFakeTransport())

	data := encodeInbound(t, &vpe.GetFirstMsgIDReply{FirstMsgID: 5}, testFirstMsgIDReply, 12345)
	require.NoError(t, c.Dispatch(data))
	assert.Zero(t, sink.deliveries())
}

func TestEncodeRoundTrip(t *testing.T) {
	var specs []MessageSpec
	id := uint16(100)
	for _, msgs := range [][]api.Message{
		interfaces.AllMessages(),
		ip.AllMessages(),
		l2.AllMessages(),
		vpe.AllMessages(),
		acl.AllMessages(),
	} {
		for _, msg := range msgs {
			specs = append(specs, MessageSpec{Message: msg, ID: id, NoOp: true})
			id++
		}
	}
	c, err := NewConnection(newFakeTransport(), nil, specs, WithEagerResolution(false))
	require.NoError(t, err)
	require.NoError(t, c.Connect(context.Background()))

	tests := []api.Message{
		&interfaces.SwInterfaceDetails{
			SwIfIndex:       4,
			L2AddressLength: 6,
			L2Address:       [8]byte{0xde, 0xad, 0xbe, 0xef, 0, 1},
			InterfaceName:   "host-veth0",
			AdminUpDown:     true,
			LinkMtu:         1500,
			Tag:             "uplink",
		},
		&interfaces.SwInterfaceAddDelAddress{
			SwIfIndex:     2,
			IsAdd:         true,
			AddressLength: 24,
			Address:       [16]byte{10, 1, 2, 3},
		},
		&interfaces.TapConnect{TapName: "tap0", MacAddress: [6]byte{2, 0, 0, 0, 0, 1}, CustomDevInstance: 9},
		&interfaces.CreateLoopbackReply{Retval: -2, SwIfIndex: 8},
		&interfaces.VnetInterfaceCounters{VnetCounterType: 1, IsCombined: true, FirstSwIfIndex: 3, Count: 1, Data: counterData(7, 8)},
		&ip.IPAddDelRoute{
			NextHopSwIfIndex: 1,
			TableID:          5,
			IsAdd:            true,
			IsMultipath:      true,
			NextHopWeight:    1,
			DstAddressLength: 16,
			DstAddress:       [16]byte{172, 16},
			NextHopAddress:   [16]byte{10, 0, 0, 1},
		},
		&ip.IPNeighborAddDel{VrfID: 1, SwIfIndex: 2, IsAdd: true, IsStatic: true, MacAddress: [6]byte{1, 2, 3, 4, 5, 6}, DstAddress: [16]byte{10, 0, 0, 9}},
		&ip.VnetIP4FibCounters{VrfID: 3, Count: 1, Data: make([]byte, IP4FibCounterSize)},
		&l2.BridgeDomainAddDel{BdID: 7, Flood: true, Learn: true, MacAge: 5, IsAdd: true},
		&l2.SwInterfaceSetL2Bridge{RxSwIfIndex: 3, BdID: 7, Shg: 1, Enable: true},
		&vpe.VnetSummaryStatsReply{Retval: 0, TotalPkts: [2]uint64{1, 2}, TotalBytes: [2]uint64{64, 128}, VectorRate: 1.5},
		&vpe.GetFirstMsgID{Name: testPlugin},
		&acl.ACLInterfaceAddDel{IsAdd: true, IsInput: true, SwIfIndex: 4, ACLIndex: 2},
		&acl.ACLPluginGetVersionReply{Major: 1, Minor: 3},
	}
	for _, msg := range tests {
		t.Run(msg.GetMessageName(), func(t *testing.T) {
			data, err := c.Encode(context.Background(), msg, 99)
			require.NoError(t, err)

			decoded := reflect.New(reflect.TypeOf(msg).Elem()).Interface().(api.Message)
			require.NoError(t, codec.DefaultCodec.DecodeMsg(data, decoded))
			assert.Equal(t, msg, decoded)
		})
	}
}

// fillMessage sets every field of msg to a non-zero value derived from seed.
func fillMessage(v reflect.Value, seed *int) {
	*seed++
	n := *seed
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				fillMessage(v.Field(i), seed)
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			fillMessage(v.Index(i), seed)
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, 16)
			for i := range b {
				b[i] = byte(n + i)
			}
			v.SetBytes(b)
		}
	case reflect.Bool:
		v.SetBool(true)
	case reflect.String:
		v.SetString(fmt.Sprintf("name-%d", n))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(n%200 + 1))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(-int64(n%100 + 1))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(n) + 0.5)
	}
}

func TestEncodeRoundTripAllKinds(t *testing.T) {
	var all []api.Message
	for _, msgs := range [][]api.Message{
		interfaces.AllMessages(),
		ip.AllMessages(),
		l2.AllMessages(),
		vpe.AllMessages(),
		acl.AllMessages(),
	} {
		all = append(all, msgs...)
	}
	specs := make([]MessageSpec, 0, len(all))
	for i, msg := range all {
		specs = append(specs, MessageSpec{Message: msg, ID: uint16(100 + i), NoOp: true})
	}
	c, err := NewConnection(newFakeTransport(), nil, specs, WithEagerResolution(false))
	require.NoError(t, err)
	require.NoError(t, c.Connect(context.Background()))

	seed := 0
	for _, proto := range all {
		t.Run(proto.GetMessageName(), func(t *testing.T) {
			msg := reflect.New(reflect.TypeOf(proto).Elem()).Interface().(api.Message)
			fillMessage(reflect.ValueOf(msg).Elem(), &seed)

			data, err := c.Encode(context.Background(), msg, 99)
			require.NoError(t, err)

			decoded := reflect.New(reflect.TypeOf(msg).Elem()).Interface().(api.Message)
			require.NoError(t, codec.DefaultCodec.DecodeMsg(data, decoded))
			assert.Equal(t, msg, decoded)
		})
	}
}
