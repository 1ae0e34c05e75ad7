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

// Package l2 contains the bridge-domain, l2 patch and l2 fib messages of
// the VPP core API.
package l2

import (
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"
)

// APIVersion is the version of the l2 API.
const APIVersion = 0x2e4ba1ea

// BridgeDomainAddDel defines message 'bridge_domain_add_del'.
type BridgeDomainAddDel struct {
	BdID    uint32 `binapi:"u32,name=bd_id" json:"bd_id,omitempty"`
	Flood   bool   `binapi:"bool,name=flood" json:"flood,omitempty"`
	UuFlood bool   `binapi:"bool,name=uu_flood" json:"uu_flood,omitempty"`
	Forward bool   `binapi:"bool,name=forward" json:"forward,omitempty"`
	Learn   bool   `binapi:"bool,name=learn" json:"learn,omitempty"`
	ArpTerm bool   `binapi:"bool,name=arp_term" json:"arp_term,omitempty"`
	MacAge  uint8  `binapi:"u8,name=mac_age" json:"mac_age,omitempty"`
	IsAdd   bool   `binapi:"bool,name=is_add" json:"is_add,omitempty"`
}

func (m *BridgeDomainAddDel) Reset()                        { *m = BridgeDomainAddDel{} }
func (*BridgeDomainAddDel) GetMessageName() string          { return "bridge_domain_add_del" }
func (*BridgeDomainAddDel) GetCrcString() string            { return "c6360720" }
func (*BridgeDomainAddDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *BridgeDomainAddDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 7
}
func (m *BridgeDomainAddDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.BdID)
	buf.EncodeBool(m.Flood)
	buf.EncodeBool(m.UuFlood)
	buf.EncodeBool(m.Forward)
	buf.EncodeBool(m.Learn)
	buf.EncodeBool(m.ArpTerm)
	buf.EncodeUint8(m.MacAge)
	buf.EncodeBool(m.IsAdd)
	return buf.Bytes(), nil
}
func (m *BridgeDomainAddDel) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.BdID = buf.DecodeUint32()
	m.Flood = buf.DecodeBool()
	m.UuFlood = buf.DecodeBool()
	m.Forward = buf.DecodeBool()
	m.Learn = buf.DecodeBool()
	m.ArpTerm = buf.DecodeBool()
	m.MacAge = buf.DecodeUint8()
	m.IsAdd = buf.DecodeBool()
	return nil
}

// BridgeDomainAddDelReply defines message 'bridge_domain_add_del_reply'.
type BridgeDomainAddDelReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *BridgeDomainAddDelReply) Reset()                        { *m = BridgeDomainAddDelReply{} }
func (*BridgeDomainAddDelReply) GetMessageName() string          { return "bridge_domain_add_del_reply" }
func (*BridgeDomainAddDelReply) GetCrcString() string            { return "e8d4e804" }
func (*BridgeDomainAddDelReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *BridgeDomainAddDelReply) Size() int                     { return retvalSize(m == nil) }
func (m *BridgeDomainAddDelReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *BridgeDomainAddDelReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// BridgeDomainDump defines message 'bridge_domain_dump'.
type BridgeDomainDump struct {
	BdID uint32 `binapi:"u32,name=bd_id" json:"bd_id,omitempty"`
}

func (m *BridgeDomainDump) Reset()                        { *m = BridgeDomainDump{} }
func (*BridgeDomainDump) GetMessageName() string          { return "bridge_domain_dump" }
func (*BridgeDomainDump) GetCrcString() string            { return "c25fdce6" }
func (*BridgeDomainDump) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *BridgeDomainDump) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *BridgeDomainDump) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.BdID)
	return buf.Bytes(), nil
}
func (m *BridgeDomainDump) Unmarshal(b []byte) error {
	m.BdID = codec.NewBuffer(b).DecodeUint32()
	return nil
}

// BridgeDomainDetails defines message 'bridge_domain_details'.
type BridgeDomainDetails struct {
	BdID         uint32 `binapi:"u32,name=bd_id" json:"bd_id,omitempty"`
	Flood        bool   `binapi:"bool,name=flood" json:"flood,omitempty"`
	UuFlood      bool   `binapi:"bool,name=uu_flood" json:"uu_flood,omitempty"`
	Forward      bool   `binapi:"bool,name=forward" json:"forward,omitempty"`
	Learn        bool   `binapi:"bool,name=learn" json:"learn,omitempty"`
	ArpTerm      bool   `binapi:"bool,name=arp_term" json:"arp_term,omitempty"`
	MacAge       uint8  `binapi:"u8,name=mac_age" json:"mac_age,omitempty"`
	BviSwIfIndex uint32 `binapi:"u32,name=bvi_sw_if_index" json:"bvi_sw_if_index,omitempty"`
	NSwIfs       uint32 `binapi:"u32,name=n_sw_ifs" json:"n_sw_ifs,omitempty"`
}

func (m *BridgeDomainDetails) Reset()                        { *m = BridgeDomainDetails{} }
func (*BridgeDomainDetails) GetMessageName() string          { return "bridge_domain_details" }
func (*BridgeDomainDetails) GetCrcString() string            { return "f9da7e2a" }
func (*BridgeDomainDetails) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *BridgeDomainDetails) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 6 + 4 + 4
}
func (m *BridgeDomainDetails) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.BdID)
	buf.EncodeBool(m.Flood)
	buf.EncodeBool(m.UuFlood)
	buf.EncodeBool(m.Forward)
	buf.EncodeBool(m.Learn)
	buf.EncodeBool(m.ArpTerm)
	buf.EncodeUint8(m.MacAge)
	buf.EncodeUint32(m.BviSwIfIndex)
	buf.EncodeUint32(m.NSwIfs)
	return buf.Bytes(), nil
}
func (m *BridgeDomainDetails) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.BdID = buf.DecodeUint32()
	m.Flood = buf.DecodeBool()
	m.UuFlood = buf.DecodeBool()
	m.Forward = buf.DecodeBool()
	m.Learn = buf.DecodeBool()
	m.ArpTerm = buf.DecodeBool()
	m.MacAge = buf.DecodeUint8()
	m.BviSwIfIndex = buf.DecodeUint32()
	m.NSwIfs = buf.DecodeUint32()
	return nil
}

// BridgeDomainSwIfDetails defines message 'bridge_domain_sw_if_details'.
type BridgeDomainSwIfDetails struct {
	BdID      uint32 `binapi:"u32,name=bd_id" json:"bd_id,omitempty"`
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	Shg       uint8  `binapi:"u8,name=shg" json:"shg,omitempty"`
}

func (m *BridgeDomainSwIfDetails) Reset()                        { *m = BridgeDomainSwIfDetails{} }
func (*BridgeDomainSwIfDetails) GetMessageName() string          { return "bridge_domain_sw_if_details" }
func (*BridgeDomainSwIfDetails) GetCrcString() string            { return "d128fc5b" }
func (*BridgeDomainSwIfDetails) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *BridgeDomainSwIfDetails) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 4 + 1
}
func (m *BridgeDomainSwIfDetails) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.BdID)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeUint8(m.Shg)
	return buf.Bytes(), nil
}
func (m *BridgeDomainSwIfDetails) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.BdID = buf.DecodeUint32()
	m.SwIfIndex = buf.DecodeUint32()
	m.Shg = buf.DecodeUint8()
	return nil
}

// L2fibAddDel defines message 'l2fib_add_del'.
type L2fibAddDel struct {
	Mac       [6]byte `binapi:"u8[6],name=mac" json:"mac,omitempty"`
	BdID      uint32  `binapi:"u32,name=bd_id" json:"bd_id,omitempty"`
	SwIfIndex uint32  `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	IsAdd     bool    `binapi:"bool,name=is_add" json:"is_add,omitempty"`
	StaticMac bool    `binapi:"bool,name=static_mac" json:"static_mac,omitempty"`
	FilterMac bool    `binapi:"bool,name=filter_mac" json:"filter_mac,omitempty"`
	BviMac    bool    `binapi:"bool,name=bvi_mac" json:"bvi_mac,omitempty"`
}

func (m *L2fibAddDel) Reset()                        { *m = L2fibAddDel{} }
func (*L2fibAddDel) GetMessageName() string          { return "l2fib_add_del" }
func (*L2fibAddDel) GetCrcString() string            { return "eddda487" }
func (*L2fibAddDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *L2fibAddDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 6 + 4 + 4 + 4
}
func (m *L2fibAddDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeBytes(m.Mac[:], 6)
	buf.EncodeUint32(m.BdID)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeBool(m.IsAdd)
	buf.EncodeBool(m.StaticMac)
	buf.EncodeBool(m.FilterMac)
	buf.EncodeBool(m.BviMac)
	return buf.Bytes(), nil
}
func (m *L2fibAddDel) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	copy(m.Mac[:], buf.DecodeBytes(6))
	m.BdID = buf.DecodeUint32()
	m.SwIfIndex = buf.DecodeUint32()
	m.IsAdd = buf.DecodeBool()
	m.StaticMac = buf.DecodeBool()
	m.FilterMac = buf.DecodeBool()
	m.BviMac = buf.DecodeBool()
	return nil
}

// SwInterfaceSetL2Bridge defines message 'sw_interface_set_l2_bridge'.
type SwInterfaceSetL2Bridge struct {
	RxSwIfIndex uint32 `binapi:"u32,name=rx_sw_if_index" json:"rx_sw_if_index,omitempty"`
	BdID        uint32 `binapi:"u32,name=bd_id" json:"bd_id,omitempty"`
	Shg         uint8  `binapi:"u8,name=shg" json:"shg,omitempty"`
	Bvi         bool   `binapi:"bool,name=bvi" json:"bvi,omitempty"`
	Enable      bool   `binapi:"bool,name=enable" json:"enable,omitempty"`
}

func (m *SwInterfaceSetL2Bridge) Reset()                        { *m = SwInterfaceSetL2Bridge{} }
func (*SwInterfaceSetL2Bridge) GetMessageName() string          { return "sw_interface_set_l2_bridge" }
func (*SwInterfaceSetL2Bridge) GetCrcString() string            { return "5579f809" }
func (*SwInterfaceSetL2Bridge) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *SwInterfaceSetL2Bridge) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 4 + 1 + 1 + 1
}
func (m *SwInterfaceSetL2Bridge) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.RxSwIfIndex)
	buf.EncodeUint32(m.BdID)
	buf.EncodeUint8(m.Shg)
	buf.EncodeBool(m.Bvi)
	buf.EncodeBool(m.Enable)
	return buf.Bytes(), nil
}
func (m *SwInterfaceSetL2Bridge) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.RxSwIfIndex = buf.DecodeUint32()
	m.BdID = buf.DecodeUint32()
	m.Shg = buf.DecodeUint8()
	m.Bvi = buf.DecodeBool()
	m.Enable = buf.DecodeBool()
	return nil
}

// SwInterfaceSetL2BridgeReply defines message 'sw_interface_set_l2_bridge_reply'.
type SwInterfaceSetL2BridgeReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *SwInterfaceSetL2BridgeReply) Reset() { *m = SwInterfaceSetL2BridgeReply{} }
func (*SwInterfaceSetL2BridgeReply) GetMessageName() string {
	return "sw_interface_set_l2_bridge_reply"
}
func (*SwInterfaceSetL2BridgeReply) GetCrcString() string            { return "e8d4e804" }
func (*SwInterfaceSetL2BridgeReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *SwInterfaceSetL2BridgeReply) Size() int                     { return retvalSize(m == nil) }
func (m *SwInterfaceSetL2BridgeReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *SwInterfaceSetL2BridgeReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// L2PatchAddDel defines message 'l2_patch_add_del'.
type L2PatchAddDel struct {
	RxSwIfIndex uint32 `binapi:"u32,name=rx_sw_if_index" json:"rx_sw_if_index,omitempty"`
	TxSwIfIndex uint32 `binapi:"u32,name=tx_sw_if_index" json:"tx_sw_if_index,omitempty"`
	IsAdd       bool   `binapi:"bool,name=is_add" json:"is_add,omitempty"`
}

func (m *L2PatchAddDel) Reset()                        { *m = L2PatchAddDel{} }
func (*L2PatchAddDel) GetMessageName() string          { return "l2_patch_add_del" }
func (*L2PatchAddDel) GetCrcString() string            { return "62506e63" }
func (*L2PatchAddDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *L2PatchAddDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 4 + 1
}
func (m *L2PatchAddDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.RxSwIfIndex)
	buf.EncodeUint32(m.TxSwIfIndex)
	buf.EncodeBool(m.IsAdd)
	return buf.Bytes(), nil
}
func (m *L2PatchAddDel) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.RxSwIfIndex = buf.DecodeUint32()
	m.TxSwIfIndex = buf.DecodeUint32()
	m.IsAdd = buf.DecodeBool()
	return nil
}

// L2PatchAddDelReply defines message 'l2_patch_add_del_reply'.
type L2PatchAddDelReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *L2PatchAddDelReply) Reset()                        { *m = L2PatchAddDelReply{} }
func (*L2PatchAddDelReply) GetMessageName() string          { return "l2_patch_add_del_reply" }
func (*L2PatchAddDelReply) GetCrcString() string            { return "e8d4e804" }
func (*L2PatchAddDelReply) GetMessageType() api.MessageType { return api.ReplyMessage }
func (m *L2PatchAddDelReply) Size() int                     { return retvalSize(m == nil) }
func (m *L2PatchAddDelReply) Marshal(b []byte) ([]byte, error) {
	return marshalRetval(b, m.Retval), nil
}
func (m *L2PatchAddDelReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
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

// AllMessages returns all messages of the package.
func AllMessages() []api.Message {
	return []api.Message{
		(*BridgeDomainAddDel)(nil),
		(*BridgeDomainAddDelReply)(nil),
		(*BridgeDomainDump)(nil),
		(*BridgeDomainDetails)(nil),
		(*BridgeDomainSwIfDetails)(nil),
		(*L2fibAddDel)(nil),
		(*SwInterfaceSetL2Bridge)(nil),
		(*SwInterfaceSetL2BridgeReply)(nil),
		(*L2PatchAddDel)(nil),
		(*L2PatchAddDelReply)(nil),
	}
}
