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

// Package ip contains the routing, neighbor, proxy-arp and FIB counter
// messages of the VPP core API.
package ip

import (
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"
)

// APIVersion is the version of the ip API.
const APIVersion = 0x6f3ee8e3

// Per-record sizes of the FIB counter dumps: address, prefix length,
// packets and bytes.
const (
	IP4FibCounterSize = 4 + 1 + 8 + 8
	IP6FibCounterSize = 16 + 1 + 8 + 8
)

// IPAddDelRoute defines message 'ip_add_del_route'.
type IPAddDelRoute struct {
	NextHopSwIfIndex   uint32   `binapi:"u32,name=next_hop_sw_if_index" json:"next_hop_sw_if_index,omitempty"`
	TableID            uint32   `binapi:"u32,name=table_id" json:"table_id,omitempty"`
	ClassifyTableIndex uint32   `binapi:"u32,name=classify_table_index" json:"classify_table_index,omitempty"`
	NextHopTableID     uint32   `binapi:"u32,name=next_hop_table_id" json:"next_hop_table_id,omitempty"`
	CreateVrfIfNeeded  bool     `binapi:"bool,name=create_vrf_if_needed" json:"create_vrf_if_needed,omitempty"`
	IsAdd              bool     `binapi:"bool,name=is_add" json:"is_add,omitempty"`
	IsDrop             bool     `binapi:"bool,name=is_drop" json:"is_drop,omitempty"`
	IsUnreach          bool     `binapi:"bool,name=is_unreach" json:"is_unreach,omitempty"`
	IsProhibit         bool     `binapi:"bool,name=is_prohibit" json:"is_prohibit,omitempty"`
	IsIPv6             bool     `binapi:"bool,name=is_ipv6" json:"is_ipv6,omitempty"`
	IsLocal            bool     `binapi:"bool,name=is_local" json:"is_local,omitempty"`
	IsClassify         bool     `binapi:"bool,name=is_classify" json:"is_classify,omitempty"`
	IsMultipath        bool     `binapi:"bool,name=is_multipath" json:"is_multipath,omitempty"`
	IsResolveHost      bool     `binapi:"bool,name=is_resolve_host" json:"is_resolve_host,omitempty"`
	IsResolveAttached  bool     `binapi:"bool,name=is_resolve_attached" json:"is_resolve_attached,omitempty"`
	NotLast            bool     `binapi:"bool,name=not_last" json:"not_last,omitempty"`
	NextHopWeight      uint8    `binapi:"u8,name=next_hop_weight" json:"next_hop_weight,omitempty"`
	DstAddressLength   uint8    `binapi:"u8,name=dst_address_length" json:"dst_address_length,omitempty"`
	DstAddress         [16]byte `binapi:"u8[16],name=dst_address" json:"dst_address,omitempty"`
	NextHopAddress     [16]byte `binapi:"u8[16],name=next_hop_address" json:"next_hop_address,omitempty"`
}

func (m *IPAddDelRoute) Reset()                        { *m = IPAddDelRoute{} }
func (*IPAddDelRoute) GetMessageName() string          { return "ip_add_del_route" }
func (*IPAddDelRoute) GetCrcString() string            { return "3e4f9a1f" }
func (*IPAddDelRoute) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *IPAddDelRoute) Size() (size int) {
	if m == nil {
		return 0
	}
	size += 4 * 4  // indexes
	size += 1 * 12 // flags
	size += 1      // m.NextHopWeight
	size += 1      // m.DstAddressLength
	size += 16     // m.DstAddress
	size += 16     // m.NextHopAddress
	return size
}
func (m *IPAddDelRoute) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.NextHopSwIfIndex)
	buf.EncodeUint32(m.TableID)
	buf.EncodeUint32(m.ClassifyTableIndex)
	buf.EncodeUint32(m.NextHopTableID)
	buf.EncodeBool(m.CreateVrfIfNeeded)
	buf.EncodeBool(m.IsAdd)
	buf.EncodeBool(m.IsDrop)
	buf.EncodeBool(m.IsUnreach)
	buf.EncodeBool(m.IsProhibit)
	buf.EncodeBool(m.IsIPv6)
	buf.EncodeBool(m.IsLocal)
	buf.EncodeBool(m.IsClassify)
	buf.EncodeBool(m.IsMultipath)
	buf.EncodeBool(m.IsResolveHost)
	buf.EncodeBool(m.IsResolveAttached)
	buf.EncodeBool(m.NotLast)
	buf.EncodeUint8(m.NextHopWeight)
	buf.EncodeUint8(m.DstAddressLength)
	buf.EncodeBytes(m.DstAddress[:], 16)
	buf.EncodeBytes(m.NextHopAddress[:], 16)
	return buf.Bytes(), nil
}
func (m *IPAddDelRoute) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.NextHopSwIfIndex = buf.DecodeUint32()
	m.TableID = buf.DecodeUint32()
	m.ClassifyTableIndex = buf.DecodeUint32()
	m.NextHopTableID = buf.DecodeUint32()
	m.CreateVrfIfNeeded = buf.DecodeBool()
	m.IsAdd = buf.DecodeBool()
	m.IsDrop = buf.DecodeBool()
	m.IsUnreach = buf.DecodeBool()
	m.IsProhibit = buf.DecodeBool()
	m.IsIPv6 = buf.DecodeBool()
	m.IsLocal = buf.DecodeBool()
	m.IsClassify = buf.DecodeBool()
	m.IsMultipath = buf.DecodeBool()
	m.IsResolveHost = buf.DecodeBool()
	m.IsResolveAttached = buf.DecodeBool()
	m.NotLast = buf.DecodeBool()
	m.NextHopWeight = buf.DecodeUint8()
	m.DstAddressLength = buf.DecodeUint8()
	copy(m.DstAddress[:], buf.DecodeBytes(16))
	copy(m.NextHopAddress[:], buf.DecodeBytes(16))
	return nil
}

// IPAddDelRouteReply defines message 'ip_add_del_route_reply'.
type IPAddDelRouteReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *IPAddDelRouteReply) Reset()                        { *m = IPAddDelRouteReply{} }
func (*IPAddDelRouteReply) GetMessageName() string          { return "ip_add_del_route_reply" }
func (*IPAddDelRouteReply) GetCrcString() string            { return "e8d4e804" }
func (*IPAddDelRouteReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *IPAddDelRouteReply) Size() int                     { return retvalSize(m == nil) }
func (m *IPAddDelRouteReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *IPAddDelRouteReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// IPNeighborAddDel defines message 'ip_neighbor_add_del'.
type IPNeighborAddDel struct {
	VrfID      uint32   `binapi:"u32,name=vrf_id" json:"vrf_id,omitempty"`
	SwIfIndex  uint32   `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	IsAdd      bool     `binapi:"bool,name=is_add" json:"is_add,omitempty"`
	IsIPv6     bool     `binapi:"bool,name=is_ipv6" json:"is_ipv6,omitempty"`
	IsStatic   bool     `binapi:"bool,name=is_static" json:"is_static,omitempty"`
	MacAddress [6]byte  `binapi:"u8[6],name=mac_address" json:"mac_address,omitempty"`
	DstAddress [16]byte `binapi:"u8[16],name=dst_address" json:"dst_address,omitempty"`
}

func (m *IPNeighborAddDel) Reset()                        { *m = IPNeighborAddDel{} }
func (*IPNeighborAddDel) GetMessageName() string          { return "ip_neighbor_add_del" }
func (*IPNeighborAddDel) GetCrcString() string            { return "66f2112c" }
func (*IPNeighborAddDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *IPNeighborAddDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 4 + 1 + 1 + 1 + 6 + 16
}
func (m *IPNeighborAddDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.VrfID)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeBool(m.IsAdd)
	buf.EncodeBool(m.IsIPv6)
	buf.EncodeBool(m.IsStatic)
	buf.EncodeBytes(m.MacAddress[:], 6)
	buf.EncodeBytes(m.DstAddress[:], 16)
	return buf.Bytes(), nil
}
func (m *IPNeighborAddDel) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.VrfID = buf.DecodeUint32()
	m.SwIfIndex = buf.DecodeUint32()
	m.IsAdd = buf.DecodeBool()
	m.IsIPv6 = buf.DecodeBool()
	m.IsStatic = buf.DecodeBool()
	copy(m.MacAddress[:], buf.DecodeBytes(6))
	copy(m.DstAddress[:], buf.DecodeBytes(16))
	return nil
}

// IPNeighborAddDelReply defines message 'ip_neighbor_add_del_reply'.
type IPNeighborAddDelReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *IPNeighborAddDelReply) Reset()                        { *m = IPNeighborAddDelReply{} }
func (*IPNeighborAddDelReply) GetMessageName() string          { return "ip_neighbor_add_del_reply" }
func (*IPNeighborAddDelReply) GetCrcString() string            { return "e8d4e804" }
func (*IPNeighborAddDelReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *IPNeighborAddDelReply) Size() int                     { return retvalSize(m == nil) }
func (m *IPNeighborAddDelReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *IPNeighborAddDelReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// ProxyArpAddDel defines message 'proxy_arp_add_del'.
type ProxyArpAddDel struct {
	VrfID      uint32  `binapi:"u32,name=vrf_id" json:"vrf_id,omitempty"`
	IsAdd      bool    `binapi:"bool,name=is_add" json:"is_add,omitempty"`
	LowAddress [4]byte `binapi:"u8[4],name=low_address" json:"low_address,omitempty"`
	HiAddress  [4]byte `binapi:"u8[4],name=hi_address" json:"hi_address,omitempty"`
}

func (m *ProxyArpAddDel) Reset()                        { *m = ProxyArpAddDel{} }
func (*ProxyArpAddDel) GetMessageName() string          { return "proxy_arp_add_del" }
func (*ProxyArpAddDel) GetCrcString() string            { return "4bef9951" }
func (*ProxyArpAddDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *ProxyArpAddDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 1 + 4 + 4
}
func (m *ProxyArpAddDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.VrfID)
	buf.EncodeBool(m.IsAdd)
	buf.EncodeBytes(m.LowAddress[:], 4)
	buf.EncodeBytes(m.HiAddress[:], 4)
	return buf.Bytes(), nil
}
func (m *ProxyArpAddDel) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.VrfID = buf.DecodeUint32()
	m.IsAdd = buf.DecodeBool()
	copy(m.LowAddress[:], buf.DecodeBytes(4))
	copy(m.HiAddress[:], buf.DecodeBytes(4))
	return nil
}

// ProxyArpAddDelReply defines message 'proxy_arp_add_del_reply'.
type ProxyArpAddDelReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *ProxyArpAddDelReply) Reset()                        { *m = ProxyArpAddDelReply{} }
func (*ProxyArpAddDelReply) GetMessageName() string          { return "proxy_arp_add_del_reply" }
func (*ProxyArpAddDelReply) GetCrcString() string            { return "e8d4e804" }
func (*ProxyArpAddDelReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *ProxyArpAddDelReply) Size() int                     { return retvalSize(m == nil) }
func (m *ProxyArpAddDelReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *ProxyArpAddDelReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// ProxyArpIntfcEnableDisable defines message 'proxy_arp_intfc_enable_disable'.
type ProxyArpIntfcEnableDisable struct {
	SwIfIndex     uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	EnableDisable bool   `binapi:"bool,name=enable_disable" json:"enable_disable,omitempty"`
}

func (m *ProxyArpIntfcEnableDisable) Reset() { *m = ProxyArpIntfcEnableDisable{} }
func (*ProxyArpIntfcEnableDisable) GetMessageName() string {
	return "proxy_arp_intfc_enable_disable"
}
func (*ProxyArpIntfcEnableDisable) GetCrcString() string            { return "69d24598" }
func (*ProxyArpIntfcEnableDisable) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *ProxyArpIntfcEnableDisable) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 1
}
func (m *ProxyArpIntfcEnableDisable) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeBool(m.EnableDisable)
	return buf.Bytes(), nil
}
func (m *ProxyArpIntfcEnableDisable) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.SwIfIndex = buf.DecodeUint32()
	m.EnableDisable = buf.DecodeBool()
	return nil
}

// ProxyArpIntfcEnableDisableReply defines message 'proxy_arp_intfc_enable_disable_reply'.
type ProxyArpIntfcEnableDisableReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *ProxyArpIntfcEnableDisableReply) Reset() { *m = ProxyArpIntfcEnableDisableReply{} }
func (*ProxyArpIntfcEnableDisableReply) GetMessageName() string {
	return "proxy_arp_intfc_enable_disable_reply"
}
func (*ProxyArpIntfcEnableDisableReply) GetCrcString() string            { return "e8d4e804" }
func (*ProxyArpIntfcEnableDisableReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *ProxyArpIntfcEnableDisableReply) Size() int                     { return retvalSize(m == nil) }
func (m *ProxyArpIntfcEnableDisableReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *ProxyArpIntfcEnableDisableReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// ResetFib defines message 'reset_fib'.
type ResetFib struct {
	VrfID  uint32 `binapi:"u32,name=vrf_id" json:"vrf_id,omitempty"`
	IsIPv6 bool   `binapi:"bool,name=is_ipv6" json:"is_ipv6,omitempty"`
}

func (m *ResetFib) Reset()                        { *m = ResetFib{} }
func (*ResetFib) GetMessageName() string          { return "reset_fib" }
func (*ResetFib) GetCrcString() string            { return "8553ebd9" }
func (*ResetFib) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *ResetFib) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 1
}
func (m *ResetFib) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.VrfID)
	buf.EncodeBool(m.IsIPv6)
	return buf.Bytes(), nil
}
func (m *ResetFib) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.VrfID = buf.DecodeUint32()
	m.IsIPv6 = buf.DecodeBool()
	return nil
}

// ResetFibReply defines message 'reset_fib_reply'.
type ResetFibReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *ResetFibReply) Reset()                        { *m = ResetFibReply{} }
func (*ResetFibReply) GetMessageName() string          { return "reset_fib_reply" }
func (*ResetFibReply) GetCrcString() string            { return "e8d4e804" }
func (*ResetFibReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *ResetFibReply) Size() int                     { return retvalSize(m == nil) }
func (m *ResetFibReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *ResetFibReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// VnetIP4FibCounters defines message 'vnet_ip4_fib_counters'.
// Data carries Count records of IP4FibCounterSize bytes each.
type VnetIP4FibCounters struct {
	VrfID uint32 `binapi:"u32,name=vrf_id" json:"vrf_id,omitempty"`
	Count uint32 `binapi:"u32,name=count" json:"count,omitempty"`
	Data  []byte `binapi:"u8[],name=c" json:"c,omitempty"`
}

func (m *VnetIP4FibCounters) Reset()                        { *m = VnetIP4FibCounters{} }
func (*VnetIP4FibCounters) GetMessageName() string          { return "vnet_ip4_fib_counters" }
func (*VnetIP4FibCounters) GetCrcString() string            { return "57e3ee2e" }
func (*VnetIP4FibCounters) GetMessageType() api.MessageType { return api.EventMessage }
func (m *VnetIP4FibCounters) Size() int                     { return fibSize(m == nil, m.dataLen()) }
func (m *VnetIP4FibCounters) dataLen() int {
	if m == nil {
		return 0
	}
	return len(m.Data)
}
func (m *VnetIP4FibCounters) Marshal(b []byte) ([]byte, error) {
	return marshalFib(b, m.VrfID, m.Count, m.Data), nil
}
func (m *VnetIP4FibCounters) Unmarshal(b []byte) error {
	m.VrfID, m.Count, m.Data = unmarshalFib(b)
	return nil
}

// VnetIP6FibCounters defines message 'vnet_ip6_fib_counters'.
// Data carries Count records of IP6FibCounterSize bytes each.
type VnetIP6FibCounters struct {
	VrfID uint32 `binapi:"u32,name=vrf_id" json:"vrf_id,omitempty"`
	Count uint32 `binapi:"u32,name=count" json:"count,omitempty"`
	Data  []byte `binapi:"u8[],name=c" json:"c,omitempty"`
}

func (m *VnetIP6FibCounters) Reset()                        { *m = VnetIP6FibCounters{} }
func (*VnetIP6FibCounters) GetMessageName() string          { return "vnet_ip6_fib_counters" }
func (*VnetIP6FibCounters) GetCrcString() string            { return "3d8cf9ba" }
func (*VnetIP6FibCounters) GetMessageType() api.MessageType { return api.EventMessage }
func (m *VnetIP6FibCounters) Size() int                     { return fibSize(m == nil, m.dataLen()) }
func (m *VnetIP6FibCounters) dataLen() int {
	if m == nil {
		return 0
	}
	return len(m.Data)
}
func (m *VnetIP6FibCounters) Marshal(b []byte) ([]byte, error) {
	return marshalFib(b, m.VrfID, m.Count, m.Data), nil
}
func (m *VnetIP6FibCounters) Unmarshal(b []byte) error {
	m.VrfID, m.Count, m.Data = unmarshalFib(b)
	return nil
}

func retvalSize(isNil bool) int {
	if isNil {
		return 0
	}
	return 4
}

func marshalRetval(b []byte, retval int32) []byte {
	if b == nil {
		b = make([]byte, 4)
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(retval)
	return buf.Bytes()
}

func fibSize(isNil bool, dataLen int) int {
	if isNil {
		return 0
	}
	return 4 + 4 + dataLen
}

func marshalFib(b []byte, vrfID, count uint32, data []byte) []byte {
	if b == nil {
		b = make([]byte, 8+len(data))
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(vrfID)
	buf.EncodeUint32(count)
	if len(data) > 0 {
		buf.EncodeBytes(data, len(data))
	}
	return buf.Bytes()
}

func unmarshalFib(b []byte) (vrfID, count uint32, data []byte) {
	buf := codec.NewBuffer(b)
	vrfID = buf.DecodeUint32()
	count = buf.DecodeUint32()
	if len(b) > 8 {
		data = append([]byte(nil), b[8:]...)
	}
	return vrfID, count, data
}

// AllMessages returns all messages of the package.
func AllMessages() []api.Message {
	return []api.Message{
		(*IPAddDelRoute)(nil),
		(*IPAddDelRouteReply)(nil),
		(*IPNeighborAddDel)(nil),
		(*IPNeighborAddDelReply)(nil),
		(*ProxyArpAddDel)(nil),
		(*ProxyArpAddDelReply)(nil),
		(*ProxyArpIntfcEnableDisable)(nil),
		(*ProxyArpIntfcEnableDisableReply)(nil),
		(*ResetFib)(nil),
		(*ResetFibReply)(nil),
		(*VnetIP4FibCounters)(nil),
		(*VnetIP6FibCounters)(nil),
	}
}
