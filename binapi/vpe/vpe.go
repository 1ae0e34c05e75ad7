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

// Package vpe contains the control, statistics subscription and plugin
// lookup messages of the VPP core API.
package vpe

import (
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"
)

// APIVersion is the version of the vpe API.
const APIVersion = 0x9a4f1a0e

// WantStats defines message 'want_stats'.
type WantStats struct {
	EnableDisable uint32 `binapi:"u32,name=enable_disable" json:"enable_disable,omitempty"`
	PID           uint32 `binapi:"u32,name=pid" json:"pid,omitempty"`
}

func (m *WantStats) Reset()                        { *m = WantStats{} }
func (*WantStats) GetMessageName() string          { return "want_stats" }
func (*WantStats) GetCrcString() string            { return "4f2effb4" }
func (*WantStats) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *WantStats) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *WantStats) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.EnableDisable)
	buf.EncodeUint32(m.PID)
	return buf.Bytes(), nil
}
func (m *WantStats) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.EnableDisable = buf.DecodeUint32()
	m.PID = buf.DecodeUint32()
	return nil
}

// WantStatsReply defines message 'want_stats_reply'.
type WantStatsReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *WantStatsReply) Reset()                        { *m = WantStatsReply{} }
func (*WantStatsReply) GetMessageName() string          { return "want_stats_reply" }
func (*WantStatsReply) GetCrcString() string            { return "e8d4e804" }
func (*WantStatsReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *WantStatsReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *WantStatsReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(m.Retval)
	return buf.Bytes(), nil
}
func (m *WantStatsReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// VnetGetSummaryStats defines message 'vnet_get_summary_stats'.
type VnetGetSummaryStats struct{}

func (m *VnetGetSummaryStats) Reset()                        { *m = VnetGetSummaryStats{} }
func (*VnetGetSummaryStats) GetMessageName() string          { return "vnet_get_summary_stats" }
func (*VnetGetSummaryStats) GetCrcString() string            { return "51077d14" }
func (*VnetGetSummaryStats) GetMessageType() api.MessageType { return api.RequestMessage }
func (*VnetGetSummaryStats) Size() int                       { return 0 }
func (m *VnetGetSummaryStats) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, 0)
	}
	return b, nil
}
func (*VnetGetSummaryStats) Unmarshal([]byte) error { return nil }

// VnetSummaryStatsReply defines message 'vnet_summary_stats_reply'.
type VnetSummaryStatsReply struct {
	Retval     int32     `binapi:"i32,name=retval" json:"retval,omitempty"`
	TotalPkts  [2]uint64 `binapi:"u64[2],name=total_pkts" json:"total_pkts,omitempty"`
	TotalBytes [2]uint64 `binapi:"u64[2],name=total_bytes" json:"total_bytes,omitempty"`
	VectorRate float64   `binapi:"f64,name=vector_rate" json:"vector_rate,omitempty"`
}

func (m *VnetSummaryStatsReply) Reset()                        { *m = VnetSummaryStatsReply{} }
func (*VnetSummaryStatsReply) GetMessageName() string          { return "vnet_summary_stats_reply" }
func (*VnetSummaryStatsReply) GetCrcString() string            { return "2fa07e35" }
func (*VnetSummaryStatsReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *VnetSummaryStatsReply) Size() (size int) {
	if m == nil {
		return 0
	}
	size += 4     // m.Retval
	size += 8 * 2 // m.TotalPkts
	size += 8 * 2 // m.TotalBytes
	size += 8     // m.VectorRate
	return size
}
func (m *VnetSummaryStatsReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(m.Retval)
	for i := range m.TotalPkts {
		buf.EncodeUint64(m.TotalPkts[i])
	}
	for i := range m.TotalBytes {
		buf.EncodeUint64(m.TotalBytes[i])
	}
	buf.EncodeFloat64(m.VectorRate)
	return buf.Bytes(), nil
}
func (m *VnetSummaryStatsReply) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.Retval = buf.DecodeInt32()
	for i := range m.TotalPkts {
		m.TotalPkts[i] = buf.DecodeUint64()
	}
	for i := range m.TotalBytes {
		m.TotalBytes[i] = buf.DecodeUint64()
	}
	m.VectorRate = buf.DecodeFloat64()
	return nil
}

// ControlPing defines message 'control_ping'.
type ControlPing struct{}

func (m *ControlPing) Reset()                        { *m = ControlPing{} }
func (*ControlPing) GetMessageName() string          { return "control_ping" }
func (*ControlPing) GetCrcString() string            { return "51077d14" }
func (*ControlPing) GetMessageType() api.MessageType { return api.RequestMessage }
func (*ControlPing) Size() int                       { return 0 }
func (m *ControlPing) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, 0)
	}
	return b, nil
}
func (*ControlPing) Unmarshal([]byte) error { return nil }

// ControlPingReply defines message 'control_ping_reply'.
type ControlPingReply struct {
	Retval      int32  `binapi:"i32,name=retval" json:"retval,omitempty"`
	ClientIndex uint32 `binapi:"u32,name=client_index" json:"client_index,omitempty"`
	VpePID      uint32 `binapi:"u32,name=vpe_pid" json:"vpe_pid,omitempty"`
}

func (m *ControlPingReply) Reset()                        { *m = ControlPingReply{} }
func (*ControlPingReply) GetMessageName() string          { return "control_ping_reply" }
func (*ControlPingReply) GetCrcString() string            { return "f6b0b8ca" }
func (*ControlPingReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *ControlPingReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 12
}
func (m *ControlPingReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(m.Retval)
	buf.EncodeUint32(m.ClientIndex)
	buf.EncodeUint32(m.VpePID)
	return buf.Bytes(), nil
}
func (m *ControlPingReply) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.Retval = buf.DecodeInt32()
	m.ClientIndex = buf.DecodeUint32()
	m.VpePID = buf.DecodeUint32()
	return nil
}

// GetFirstMsgID defines message 'get_first_msg_id'.
type GetFirstMsgID struct {
	Name string `binapi:"string[64],name=name" json:"name,omitempty"`
}

func (m *GetFirstMsgID) Reset()                        { *m = GetFirstMsgID{} }
func (*GetFirstMsgID) GetMessageName() string          { return "get_first_msg_id" }
func (*GetFirstMsgID) GetCrcString() string            { return "ebf79a66" }
func (*GetFirstMsgID) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *GetFirstMsgID) Size() (size int) {
	if m == nil {
		return 0
	}
	return 64
}
func (m *GetFirstMsgID) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeString(m.Name, 64)
	return buf.Bytes(), nil
}
func (m *GetFirstMsgID) Unmarshal(b []byte) error {
	m.Name = codec.NewBuffer(b).DecodeString(64)
	return nil
}

// GetFirstMsgIDReply defines message 'get_first_msg_id_reply'.
type GetFirstMsgIDReply struct {
	Retval     int32  `binapi:"i32,name=retval" json:"retval,omitempty"`
	FirstMsgID uint16 `binapi:"u16,name=first_msg_id" json:"first_msg_id,omitempty"`
}

func (m *GetFirstMsgIDReply) Reset()                        { *m = GetFirstMsgIDReply{} }
func (*GetFirstMsgIDReply) GetMessageName() string          { return "get_first_msg_id_reply" }
func (*GetFirstMsgIDReply) GetCrcString() string            { return "7d337472" }
func (*GetFirstMsgIDReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *GetFirstMsgIDReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 2
}
func (m *GetFirstMsgIDReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(m.Retval)
	buf.EncodeUint16(m.FirstMsgID)
	return buf.Bytes(), nil
}
func (m *GetFirstMsgIDReply) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.Retval = buf.DecodeInt32()
	m.FirstMsgID = buf.DecodeUint16()
	return nil
}

// AllMessages returns all messages of the package.
func AllMessages() []api.Message {
	return []api.Message{
		(*WantStats)(nil),
		(*WantStatsReply)(nil),
		(*VnetGetSummaryStats)(nil),
		(*VnetSummaryStatsReply)(nil),
		(*ControlPing)(nil),
		(*ControlPingReply)(nil),
		(*GetFirstMsgID)(nil),
		(*GetFirstMsgIDReply)(nil),
	}
}
