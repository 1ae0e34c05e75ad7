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

// Package interfaces contains the interface messages of the VPP core API:
// flags, addresses, tables, loopback/vlan/tap/af_packet creation, interface
// dumps and the per-interface counter events.
package interfaces

import (
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"
)

// APIVersion is the version of the interface API.
const APIVersion = 0x92be38ed

// SwInterfaceSetFlags defines message 'sw_interface_set_flags'.
// The engine also emits it as an event when link state changes.
type SwInterfaceSetFlags struct {
	SwIfIndex   uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	AdminUpDown bool   `binapi:"bool,name=admin_up_down" json:"admin_up_down,omitempty"`
	LinkUpDown  bool   `binapi:"bool,name=link_up_down" json:"link_up_down,omitempty"`
	Deleted     bool   `binapi:"bool,name=deleted" json:"deleted,omitempty"`
}

func (m *SwInterfaceSetFlags) Reset()                        { *m = SwInterfaceSetFlags{} }
func (*SwInterfaceSetFlags) GetMessageName() string          { return "sw_interface_set_flags" }
func (*SwInterfaceSetFlags) GetCrcString() string            { return "c230f9b1" }
func (*SwInterfaceSetFlags) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *SwInterfaceSetFlags) Size() (size int) {
	if m == nil {
		return 0
	}
	size += 4 // m.SwIfIndex
	size += 1 // m.AdminUpDown
	size += 1 // m.LinkUpDown
	size += 1 // m.Deleted
	return size
}
func (m *SwInterfaceSetFlags) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeBool(m.AdminUpDown)
	buf.EncodeBool(m.LinkUpDown)
	buf.EncodeBool(m.Deleted)
	return buf.Bytes(), nil
}
func (m *SwInterfaceSetFlags) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.SwIfIndex = buf.DecodeUint32()
	m.AdminUpDown = buf.DecodeBool()
	m.LinkUpDown = buf.DecodeBool()
	m.Deleted = buf.DecodeBool()
	return nil
}

// SwInterfaceSetFlagsReply defines message 'sw_interface_set_flags_reply'.
type SwInterfaceSetFlagsReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *SwInterfaceSetFlagsReply) Reset()                        { *m = SwInterfaceSetFlagsReply{} }
func (*SwInterfaceSetFlagsReply) GetMessageName() string          { return "sw_interface_set_flags_reply" }
func (*SwInterfaceSetFlagsReply) GetCrcString() string            { return "dfbf3afa" }
func (*SwInterfaceSetFlagsReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *SwInterfaceSetFlagsReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *SwInterfaceSetFlagsReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *SwInterfaceSetFlagsReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// WantInterfaceEvents defines message 'want_interface_events'.
type WantInterfaceEvents struct {
	EnableDisable uint32 `binapi:"u32,name=enable_disable" json:"enable_disable,omitempty"`
	PID           uint32 `binapi:"u32,name=pid" json:"pid,omitempty"`
}

func (m *WantInterfaceEvents) Reset()                        { *m = WantInterfaceEvents{} }
func (*WantInterfaceEvents) GetMessageName() string          { return "want_interface_events" }
func (*WantInterfaceEvents) GetCrcString() string            { return "a0cbf57e" }
func (*WantInterfaceEvents) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *WantInterfaceEvents) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *WantInterfaceEvents) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.EnableDisable)
	buf.EncodeUint32(m.PID)
	return buf.Bytes(), nil
}
func (m *WantInterfaceEvents) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.EnableDisable = buf.DecodeUint32()
	m.PID = buf.DecodeUint32()
	return nil
}

// WantInterfaceEventsReply defines message 'want_interface_events_reply'.
type WantInterfaceEventsReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *WantInterfaceEventsReply) Reset()                        { *m = WantInterfaceEventsReply{} }
func (*WantInterfaceEventsReply) GetMessageName() string          { return "want_interface_events_reply" }
func (*WantInterfaceEventsReply) GetCrcString() string            { return "33788c73" }
func (*WantInterfaceEventsReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *WantInterfaceEventsReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *WantInterfaceEventsReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *WantInterfaceEventsReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// SwInterfaceDump defines message 'sw_interface_dump'.
type SwInterfaceDump struct {
	NameFilterValid bool   `binapi:"bool,name=name_filter_valid" json:"name_filter_valid,omitempty"`
	NameFilter      string `binapi:"string[49],name=name_filter" json:"name_filter,omitempty"`
}

func (m *SwInterfaceDump) Reset()                        { *m = SwInterfaceDump{} }
func (*SwInterfaceDump) GetMessageName() string          { return "sw_interface_dump" }
func (*SwInterfaceDump) GetCrcString() string            { return "9a2f9d4d" }
func (*SwInterfaceDump) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *SwInterfaceDump) Size() (size int) {
	if m == nil {
		return 0
	}
	return 1 + 49
}
func (m *SwInterfaceDump) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeBool(m.NameFilterValid)
	buf.EncodeString(m.NameFilter, 49)
	return buf.Bytes(), nil
}
func (m *SwInterfaceDump) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.NameFilterValid = buf.DecodeBool()
	m.NameFilter = buf.DecodeString(49)
	return nil
}

// SwInterfaceDetails defines message 'sw_interface_details'.
type SwInterfaceDetails struct {
	SwIfIndex       uint32  `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	SupSwIfIndex    uint32  `binapi:"u32,name=sup_sw_if_index" json:"sup_sw_if_index,omitempty"`
	L2AddressLength uint32  `binapi:"u32,name=l2_address_length" json:"l2_address_length,omitempty"`
	L2Address       [8]byte `binapi:"u8[8],name=l2_address" json:"l2_address,omitempty"`
	InterfaceName   string  `binapi:"string[64],name=interface_name" json:"interface_name,omitempty"`
	AdminUpDown     bool    `binapi:"bool,name=admin_up_down" json:"admin_up_down,omitempty"`
	LinkUpDown      bool    `binapi:"bool,name=link_up_down" json:"link_up_down,omitempty"`
	LinkDuplex      uint8   `binapi:"u8,name=link_duplex" json:"link_duplex,omitempty"`
	LinkSpeed       uint8   `binapi:"u8,name=link_speed" json:"link_speed,omitempty"`
	LinkMtu         uint16  `binapi:"u16,name=link_mtu" json:"link_mtu,omitempty"`
	SubID           uint32  `binapi:"u32,name=sub_id" json:"sub_id,omitempty"`
	Tag             string  `binapi:"string[64],name=tag" json:"tag,omitempty"`
}

func (m *SwInterfaceDetails) Reset()                        { *m = SwInterfaceDetails{} }
func (*SwInterfaceDetails) GetMessageName() string          { return "sw_interface_details" }
func (*SwInterfaceDetails) GetCrcString() string            { return "be58e53e" }
func (*SwInterfaceDetails) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *SwInterfaceDetails) Size() (size int) {
	if m == nil {
		return 0
	}
	size += 4     // m.SwIfIndex
	size += 4     // m.SupSwIfIndex
	size += 4     // m.L2AddressLength
	size += 1 * 8 // m.L2Address
	size += 64    // m.InterfaceName
	size += 1     // m.AdminUpDown
	size += 1     // m.LinkUpDown
	size += 1     // m.LinkDuplex
	size += 1     // m.LinkSpeed
	size += 2     // m.LinkMtu
	size += 4     // m.SubID
	size += 64    // m.Tag
	return size
}
func (m *SwInterfaceDetails) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeUint32(m.SupSwIfIndex)
	buf.EncodeUint32(m.L2AddressLength)
	buf.EncodeBytes(m.L2Address[:], 8)
	buf.EncodeString(m.InterfaceName, 64)
	buf.EncodeBool(m.AdminUpDown)
	buf.EncodeBool(m.LinkUpDown)
	buf.EncodeUint8(m.LinkDuplex)
	buf.EncodeUint8(m.LinkSpeed)
	buf.EncodeUint16(m.LinkMtu)
	buf.EncodeUint32(m.SubID)
	buf.EncodeString(m.Tag, 64)
	return buf.Bytes(), nil
}
func (m *SwInterfaceDetails) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.SwIfIndex = buf.DecodeUint32()
	m.SupSwIfIndex = buf.DecodeUint32()
	m.L2AddressLength = buf.DecodeUint32()
	copy(m.L2Address[:], buf.DecodeBytes(8))
	m.InterfaceName = buf.DecodeString(64)
	m.AdminUpDown = buf.DecodeBool()
	m.LinkUpDown = buf.DecodeBool()
	m.LinkDuplex = buf.DecodeUint8()
	m.LinkSpeed = buf.DecodeUint8()
	m.LinkMtu = buf.DecodeUint16()
	m.SubID = buf.DecodeUint32()
	m.Tag = buf.DecodeString(64)
	return nil
}

// SwInterfaceAddDelAddress defines message 'sw_interface_add_del_address'.
type SwInterfaceAddDelAddress struct {
	SwIfIndex     uint32   `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	IsAdd         bool     `binapi:"bool,name=is_add" json:"is_add,omitempty"`
	IsIPv6        bool     `binapi:"bool,name=is_ipv6" json:"is_ipv6,omitempty"`
	DelAll        bool     `binapi:"bool,name=del_all" json:"del_all,omitempty"`
	AddressLength uint8    `binapi:"u8,name=address_length" json:"address_length,omitempty"`
	Address       [16]byte `binapi:"u8[16],name=address" json:"address,omitempty"`
}

func (m *SwInterfaceAddDelAddress) Reset()                        { *m = SwInterfaceAddDelAddress{} }
func (*SwInterfaceAddDelAddress) GetMessageName() string          { return "sw_interface_add_del_address" }
func (*SwInterfaceAddDelAddress) GetCrcString() string            { return "4e24d2df" }
func (*SwInterfaceAddDelAddress) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *SwInterfaceAddDelAddress) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 1 + 1 + 1 + 1 + 16
}
func (m *SwInterfaceAddDelAddress) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeBool(m.IsAdd)
	buf.EncodeBool(m.IsIPv6)
	buf.EncodeBool(m.DelAll)
	buf.EncodeUint8(m.AddressLength)
	buf.EncodeBytes(m.Address[:], 16)
	return buf.Bytes(), nil
}
func (m *SwInterfaceAddDelAddress) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.SwIfIndex = buf.DecodeUint32()
	m.IsAdd = buf.DecodeBool()
	m.IsIPv6 = buf.DecodeBool()
	m.DelAll = buf.DecodeBool()
	m.AddressLength = buf.DecodeUint8()
	copy(m.Address[:], buf.DecodeBytes(16))
	return nil
}

// SwInterfaceAddDelAddressReply defines message 'sw_interface_add_del_address_reply'.
type SwInterfaceAddDelAddressReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *SwInterfaceAddDelAddressReply) Reset() { *m = SwInterfaceAddDelAddressReply{} }
func (*SwInterfaceAddDelAddressReply) GetMessageName() string {
	return "sw_interface_add_del_address_reply"
}
func (*SwInterfaceAddDelAddressReply) GetCrcString() string            { return "abe29452" }
func (*SwInterfaceAddDelAddressReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *SwInterfaceAddDelAddressReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *SwInterfaceAddDelAddressReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *SwInterfaceAddDelAddressReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// SwInterfaceSetTable defines message 'sw_interface_set_table'.
type SwInterfaceSetTable struct {
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	IsIPv6    bool   `binapi:"bool,name=is_ipv6" json:"is_ipv6,omitempty"`
	VrfID     uint32 `binapi:"u32,name=vrf_id" json:"vrf_id,omitempty"`
}

func (m *SwInterfaceSetTable) Reset()                        { *m = SwInterfaceSetTable{} }
func (*SwInterfaceSetTable) GetMessageName() string          { return "sw_interface_set_table" }
func (*SwInterfaceSetTable) GetCrcString() string            { return "acb25d89" }
func (*SwInterfaceSetTable) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *SwInterfaceSetTable) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 1 + 4
}
func (m *SwInterfaceSetTable) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeBool(m.IsIPv6)
	buf.EncodeUint32(m.VrfID)
	return buf.Bytes(), nil
}
func (m *SwInterfaceSetTable) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.SwIfIndex = buf.DecodeUint32()
	m.IsIPv6 = buf.DecodeBool()
	m.VrfID = buf.DecodeUint32()
	return nil
}

// SwInterfaceSetTableReply defines message 'sw_interface_set_table_reply'.
type SwInterfaceSetTableReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *SwInterfaceSetTableReply) Reset()                        { *m = SwInterfaceSetTableReply{} }
func (*SwInterfaceSetTableReply) GetMessageName() string          { return "sw_interface_set_table_reply" }
func (*SwInterfaceSetTableReply) GetCrcString() string            { return "eb6a14ba" }
func (*SwInterfaceSetTableReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *SwInterfaceSetTableReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *SwInterfaceSetTableReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *SwInterfaceSetTableReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// CreateLoopback defines message 'create_loopback'.
type CreateLoopback struct {
	MacAddress [6]byte `binapi:"u8[6],name=mac_address" json:"mac_address,omitempty"`
}

func (m *CreateLoopback) Reset()                        { *m = CreateLoopback{} }
func (*CreateLoopback) GetMessageName() string          { return "create_loopback" }
func (*CreateLoopback) GetCrcString() string            { return "b2602de5" }
func (*CreateLoopback) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *CreateLoopback) Size() (size int) {
	if m == nil {
		return 0
	}
	return 6
}
func (m *CreateLoopback) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeBytes(m.MacAddress[:], 6)
	return buf.Bytes(), nil
}
func (m *CreateLoopback) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	copy(m.MacAddress[:], buf.DecodeBytes(6))
	return nil
}

// CreateLoopbackReply defines message 'create_loopback_reply'.
type CreateLoopbackReply struct {
	Retval    int32  `binapi:"i32,name=retval" json:"retval,omitempty"`
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
}

func (m *CreateLoopbackReply) Reset()                        { *m = CreateLoopbackReply{} }
func (*CreateLoopbackReply) GetMessageName() string          { return "create_loopback_reply" }
func (*CreateLoopbackReply) GetCrcString() string            { return "9520f804" }
func (*CreateLoopbackReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *CreateLoopbackReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *CreateLoopbackReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetvalIndex(b, m.Retval, m.SwIfIndex), nil
}
func (m *CreateLoopbackReply) Unmarshal(b []byte) error {
	m.Retval, m.SwIfIndex = unmarshalRetvalIndex(b)
	return nil
}

// CreateVlanSubif defines message 'create_vlan_subif'.
type CreateVlanSubif struct {
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	VlanID    uint32 `binapi:"u32,name=vlan_id" json:"vlan_id,omitempty"`
}

func (m *CreateVlanSubif) Reset()                        { *m = CreateVlanSubif{} }
func (*CreateVlanSubif) GetMessageName() string          { return "create_vlan_subif" }
func (*CreateVlanSubif) GetCrcString() string            { return "af9ae1e9" }
func (*CreateVlanSubif) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *CreateVlanSubif) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *CreateVlanSubif) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeUint32(m.VlanID)
	return buf.Bytes(), nil
}
func (m *CreateVlanSubif) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.SwIfIndex = buf.DecodeUint32()
	m.VlanID = buf.DecodeUint32()
	return nil
}

// CreateVlanSubifReply defines message 'create_vlan_subif_reply'.
type CreateVlanSubifReply struct {
	Retval    int32  `binapi:"i32,name=retval" json:"retval,omitempty"`
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
}

func (m *CreateVlanSubifReply) Reset()                        { *m = CreateVlanSubifReply{} }
func (*CreateVlanSubifReply) GetMessageName() string          { return "create_vlan_subif_reply" }
func (*CreateVlanSubifReply) GetCrcString() string            { return "8f36b888" }
func (*CreateVlanSubifReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *CreateVlanSubifReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *CreateVlanSubifReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetvalIndex(b, m.Retval, m.SwIfIndex), nil
}
func (m *CreateVlanSubifReply) Unmarshal(b []byte) error {
	m.Retval, m.SwIfIndex = unmarshalRetvalIndex(b)
	return nil
}

// TapConnect defines message 'tap_connect'.
type TapConnect struct {
	UseRandomMac      bool    `binapi:"bool,name=use_random_mac" json:"use_random_mac,omitempty"`
	TapName           string  `binapi:"string[64],name=tap_name" json:"tap_name,omitempty"`
	MacAddress        [6]byte `binapi:"u8[6],name=mac_address" json:"mac_address,omitempty"`
	Renumber          bool    `binapi:"bool,name=renumber" json:"renumber,omitempty"`
	CustomDevInstance uint32  `binapi:"u32,name=custom_dev_instance" json:"custom_dev_instance,omitempty"`
	Tag               string  `binapi:"string[64],name=tag" json:"tag,omitempty"`
}

func (m *TapConnect) Reset()                        { *m = TapConnect{} }
func (*TapConnect) GetMessageName() string          { return "tap_connect" }
func (*TapConnect) GetCrcString() string            { return "91720de3" }
func (*TapConnect) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *TapConnect) Size() (size int) {
	if m == nil {
		return 0
	}
	return 1 + 64 + 6 + 1 + 4 + 64
}
func (m *TapConnect) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeBool(m.UseRandomMac)
	buf.EncodeString(m.TapName, 64)
	buf.EncodeBytes(m.MacAddress[:], 6)
	buf.EncodeBool(m.Renumber)
	buf.EncodeUint32(m.CustomDevInstance)
	buf.EncodeString(m.Tag, 64)
	return buf.Bytes(), nil
}
func (m *TapConnect) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.UseRandomMac = buf.DecodeBool()
	m.TapName = buf.DecodeString(64)
	copy(m.MacAddress[:], buf.DecodeBytes(6))
	m.Renumber = buf.DecodeBool()
	m.CustomDevInstance = buf.DecodeUint32()
	m.Tag = buf.DecodeString(64)
	return nil
}

// TapConnectReply defines message 'tap_connect_reply'.
type TapConnectReply struct {
	Retval    int32  `binapi:"i32,name=retval" json:"retval,omitempty"`
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
}

func (m *TapConnectReply) Reset()                        { *m = TapConnectReply{} }
func (*TapConnectReply) GetMessageName() string          { return "tap_connect_reply" }
func (*TapConnectReply) GetCrcString() string            { return "d1d9d9a5" }
func (*TapConnectReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *TapConnectReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *TapConnectReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetvalIndex(b, m.Retval, m.SwIfIndex), nil
}
func (m *TapConnectReply) Unmarshal(b []byte) error {
	m.Retval, m.SwIfIndex = unmarshalRetvalIndex(b)
	return nil
}

// AfPacketCreate defines message 'af_packet_create'.
type AfPacketCreate struct {
	HostIfName      string  `binapi:"string[64],name=host_if_name" json:"host_if_name,omitempty"`
	HwAddr          [6]byte `binapi:"u8[6],name=hw_addr" json:"hw_addr,omitempty"`
	UseRandomHwAddr bool    `binapi:"bool,name=use_random_hw_addr" json:"use_random_hw_addr,omitempty"`
}

func (m *AfPacketCreate) Reset()                        { *m = AfPacketCreate{} }
func (*AfPacketCreate) GetMessageName() string          { return "af_packet_create" }
func (*AfPacketCreate) GetCrcString() string            { return "92768640" }
func (*AfPacketCreate) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *AfPacketCreate) Size() (size int) {
	if m == nil {
		return 0
	}
	return 64 + 6 + 1
}
func (m *AfPacketCreate) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeString(m.HostIfName, 64)
	buf.EncodeBytes(m.HwAddr[:], 6)
	buf.EncodeBool(m.UseRandomHwAddr)
	return buf.Bytes(), nil
}
func (m *AfPacketCreate) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.HostIfName = buf.DecodeString(64)
	copy(m.HwAddr[:], buf.DecodeBytes(6))
	m.UseRandomHwAddr = buf.DecodeBool()
	return nil
}

// AfPacketCreateReply defines message 'af_packet_create_reply'.
type AfPacketCreateReply struct {
	Retval    int32  `binapi:"i32,name=retval" json:"retval,omitempty"`
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
}

func (m *AfPacketCreateReply) Reset()                        { *m = AfPacketCreateReply{} }
func (*AfPacketCreateReply) GetMessageName() string          { return "af_packet_create_reply" }
func (*AfPacketCreateReply) GetCrcString() string            { return "718bac92" }
func (*AfPacketCreateReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *AfPacketCreateReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *AfPacketCreateReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetvalIndex(b, m.Retval, m.SwIfIndex), nil
}
func (m *AfPacketCreateReply) Unmarshal(b []byte) error {
	m.Retval, m.SwIfIndex = unmarshalRetvalIndex(b)
	return nil
}

// VnetInterfaceCounters defines message 'vnet_interface_counters'.
// Data carries Count records; each is one big-endian u64 for simple
// counters, or a packets/bytes u64 pair when IsCombined is set.
type VnetInterfaceCounters struct {
	VnetCounterType uint8  `binapi:"u8,name=vnet_counter_type" json:"vnet_counter_type,omitempty"`
	IsCombined      bool   `binapi:"bool,name=is_combined" json:"is_combined,omitempty"`
	FirstSwIfIndex  uint32 `binapi:"u32,name=first_sw_if_index" json:"first_sw_if_index,omitempty"`
	Count           uint32 `binapi:"u32,name=count" json:"count,omitempty"`
	Data            []byte `binapi:"u8[],name=data" json:"data,omitempty"`
}

func (m *VnetInterfaceCounters) Reset()                        { *m = VnetInterfaceCounters{} }
func (*VnetInterfaceCounters) GetMessageName() string          { return "vnet_interface_counters" }
func (*VnetInterfaceCounters) GetCrcString() string            { return "312082b4" }
func (*VnetInterfaceCounters) GetMessageType() api.MessageType { return api.EventMessage }

func (m *VnetInterfaceCounters) Size() (size int) {
	if m == nil {
		return 0
	}
	return 1 + 1 + 4 + 4 + len(m.Data)
}
func (m *VnetInterfaceCounters) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint8(m.VnetCounterType)
	buf.EncodeBool(m.IsCombined)
	buf.EncodeUint32(m.FirstSwIfIndex)
	buf.EncodeUint32(m.Count)
	buf.EncodeBytes(m.Data, len(m.Data))
	return buf.Bytes(), nil
}
func (m *VnetInterfaceCounters) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.VnetCounterType = buf.DecodeUint8()
	m.IsCombined = buf.DecodeBool()
	m.FirstSwIfIndex = buf.DecodeUint32()
	m.Count = buf.DecodeUint32()
	if len(b) > 10 {
		m.Data = append([]byte(nil), b[10:]...)
	}
	return nil
}

func marshalRetval(b []byte, retval int32) []byte {
	if b == nil {
		b = make([]byte, 4)
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(retval)
	return buf.Bytes()
}

func marshalRetvalIndex(b []byte, retval int32, swIfIndex uint32) []byte {
	if b == nil {
		b = make([]byte, 8)
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(retval)
	buf.EncodeUint32(swIfIndex)
	return buf.Bytes()
}

func unmarshalRetvalIndex(b []byte) (int32, uint32) {
	buf := codec.NewBuffer(b)
	return buf.DecodeInt32(), buf.DecodeUint32()
}

// AllMessages returns all messages of the package.
func AllMessages() []api.Message {
	return []api.Message{
		(*SwInterfaceSetFlags)(nil),
		(*SwInterfaceSetFlagsReply)(nil),
		(*WantInterfaceEvents)(nil),
		(*WantInterfaceEventsReply)(nil),
		(*SwInterfaceDump)(nil),
		(*SwInterfaceDetails)(nil),
		(*SwInterfaceAddDelAddress)(nil),
		(*SwInterfaceAddDelAddressReply)(nil),
		(*SwInterfaceSetTable)(nil),
		(*SwInterfaceSetTableReply)(nil),
		(*CreateLoopback)(nil),
		(*CreateLoopbackReply)(nil),
		(*CreateVlanSubif)(nil),
		(*CreateVlanSubifReply)(nil),
		(*TapConnect)(nil),
		(*TapConnectReply)(nil),
		(*AfPacketCreate)(nil),
		(*AfPacketCreateReply)(nil),
		(*VnetInterfaceCounters)(nil),
	}
}
