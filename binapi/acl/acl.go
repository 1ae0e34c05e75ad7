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

// Package acl contains the messages of the ACL plugin. Their wire
// identifiers are relative to the plugin's first message id, which is
// looked up at run time under the name acl_<APIVersion as %08x>.
package acl

import (
	"fmt"

	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"
)

// APIVersion is the version of the acl plugin API.
const APIVersion = 0x3cd02d84

// PluginName is the name the engine registers the plugin's message range under.
var PluginName = fmt.Sprintf("acl_%08x", APIVersion)

// ACLPluginGetVersion defines message 'acl_plugin_get_version'.
type ACLPluginGetVersion struct{}

func (m *ACLPluginGetVersion) Reset()                        { *m = ACLPluginGetVersion{} }
func (*ACLPluginGetVersion) GetMessageName() string          { return "acl_plugin_get_version" }
func (*ACLPluginGetVersion) GetCrcString() string            { return "51077d14" }
func (*ACLPluginGetVersion) GetMessageType() api.MessageType { return api.RequestMessage }
func (*ACLPluginGetVersion) Size() int                       { return 0 }
func (m *ACLPluginGetVersion) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, 0)
	}
	return b, nil
}
func (*ACLPluginGetVersion) Unmarshal([]byte) error { return nil }

// ACLPluginGetVersionReply defines message 'acl_plugin_get_version_reply'.
type ACLPluginGetVersionReply struct {
	Major uint32 `binapi:"u32,name=major" json:"major,omitempty"`
	Minor uint32 `binapi:"u32,name=minor" json:"minor,omitempty"`
}

func (m *ACLPluginGetVersionReply) Reset()                        { *m = ACLPluginGetVersionReply{} }
func (*ACLPluginGetVersionReply) GetMessageName() string          { return "acl_plugin_get_version_reply" }
func (*ACLPluginGetVersionReply) GetCrcString() string            { return "9b32cf86" }
func (*ACLPluginGetVersionReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *ACLPluginGetVersionReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 8
}
func (m *ACLPluginGetVersionReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.Major)
	buf.EncodeUint32(m.Minor)
	return buf.Bytes(), nil
}
func (m *ACLPluginGetVersionReply) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.Major = buf.DecodeUint32()
	m.Minor = buf.DecodeUint32()
	return nil
}

// ACLDel defines message 'acl_del'.
type ACLDel struct {
	ACLIndex uint32 `binapi:"u32,name=acl_index" json:"acl_index,omitempty"`
}

func (m *ACLDel) Reset()                        { *m = ACLDel{} }
func (*ACLDel) GetMessageName() string          { return "acl_del" }
func (*ACLDel) GetCrcString() string            { return "ef34fea4" }
func (*ACLDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *ACLDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *ACLDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.ACLIndex)
	return buf.Bytes(), nil
}
func (m *ACLDel) Unmarshal(b []byte) error {
	m.ACLIndex = codec.NewBuffer(b).DecodeUint32()
	return nil
}

// ACLDelReply defines message 'acl_del_reply'.
type ACLDelReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *ACLDelReply) Reset()                        { *m = ACLDelReply{} }
func (*ACLDelReply) GetMessageName() string          { return "acl_del_reply" }
func (*ACLDelReply) GetCrcString() string            { return "e8d4e804" }
func (*ACLDelReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *ACLDelReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *ACLDelReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(m.Retval)
	return buf.Bytes(), nil
}
func (m *ACLDelReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// ACLInterfaceAddDel defines message 'acl_interface_add_del'.
type ACLInterfaceAddDel struct {
	IsAdd     bool   `binapi:"bool,name=is_add" json:"is_add,omitempty"`
	IsInput   bool   `binapi:"bool,name=is_input" json:"is_input,omitempty"`
	SwIfIndex uint32 `binapi:"u32,name=sw_if_index" json:"sw_if_index,omitempty"`
	ACLIndex  uint32 `binapi:"u32,name=acl_index" json:"acl_index,omitempty"`
}

func (m *ACLInterfaceAddDel) Reset()                        { *m = ACLInterfaceAddDel{} }
func (*ACLInterfaceAddDel) GetMessageName() string          { return "acl_interface_add_del" }
func (*ACLInterfaceAddDel) GetCrcString() string            { return "0b2aedd1" }
func (*ACLInterfaceAddDel) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *ACLInterfaceAddDel) Size() (size int) {
	if m == nil {
		return 0
	}
	return 1 + 1 + 4 + 4
}
func (m *ACLInterfaceAddDel) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeBool(m.IsAdd)
	buf.EncodeBool(m.IsInput)
	buf.EncodeUint32(m.SwIfIndex)
	buf.EncodeUint32(m.ACLIndex)
	return buf.Bytes(), nil
}
func (m *ACLInterfaceAddDel) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.IsAdd = buf.DecodeBool()
	m.IsInput = buf.DecodeBool()
	m.SwIfIndex = buf.DecodeUint32()
	m.ACLIndex = buf.DecodeUint32()
	return nil
}

// ACLInterfaceAddDelReply defines message 'acl_interface_add_del_reply'.
type ACLInterfaceAddDelReply struct {
	Retval int32 `binapi:"i32,name=retval" json:"retval,omitempty"`
}

func (m *ACLInterfaceAddDelReply) Reset()                        { *m = ACLInterfaceAddDelReply{} }
func (*ACLInterfaceAddDelReply) GetMessageName() string          { return "acl_interface_add_del_reply" }
func (*ACLInterfaceAddDelReply) GetCrcString() string            { return "e8d4e804" }
func (*ACLInterfaceAddDelReply) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *ACLInterfaceAddDelReply) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *ACLInterfaceAddDelReply) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeInt32(m.Retval)
	return buf.Bytes(), nil
}
func (m *ACLInterfaceAddDelReply) Unmarshal(b []byte) error {
	m.Retval = codec.NewBuffer(b).DecodeInt32()
	return nil
}

// ACLDump defines message 'acl_dump'.
type ACLDump struct {
	ACLIndex uint32 `binapi:"u32,name=acl_index" json:"acl_index,omitempty"`
}

func (m *ACLDump) Reset()                        { *m = ACLDump{} }
func (*ACLDump) GetMessageName() string          { return "acl_dump" }
func (*ACLDump) GetCrcString() string            { return "ef34fea4" }
func (*ACLDump) GetMessageType() api.MessageType { return api.RequestMessage }

func (m *ACLDump) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4
}
func (m *ACLDump) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.ACLIndex)
	return buf.Bytes(), nil
}
func (m *ACLDump) Unmarshal(b []byte) error {
	m.ACLIndex = codec.NewBuffer(b).DecodeUint32()
	return nil
}

// ACLDetails defines message 'acl_details'. Rules follow Count on the wire
// and are not decoded.
type ACLDetails struct {
	ACLIndex uint32 `binapi:"u32,name=acl_index" json:"acl_index,omitempty"`
	Tag      string `binapi:"string[64],name=tag" json:"tag,omitempty"`
	Count    uint32 `binapi:"u32,name=count" json:"count,omitempty"`
}

func (m *ACLDetails) Reset()                        { *m = ACLDetails{} }
func (*ACLDetails) GetMessageName() string          { return "acl_details" }
func (*ACLDetails) GetCrcString() string            { return "f89d7a88" }
func (*ACLDetails) GetMessageType() api.MessageType { return api.ReplyMessage }

func (m *ACLDetails) Size() (size int) {
	if m == nil {
		return 0
	}
	return 4 + 64 + 4
}
func (m *ACLDetails) Marshal(b []byte) ([]byte, error) {
	if b == nil {
		b = make([]byte, m.Size())
	}
	buf := codec.NewBuffer(b)
	buf.EncodeUint32(m.ACLIndex)
	buf.EncodeString(m.Tag, 64)
	buf.EncodeUint32(m.Count)
	return buf.Bytes(), nil
}
func (m *ACLDetails) Unmarshal(b []byte) error {
	buf := codec.NewBuffer(b)
	m.ACLIndex = buf.DecodeUint32()
	m.Tag = buf.DecodeString(64)
	m.Count = buf.DecodeUint32()
	return nil
}

// AllMessages returns all messages of the package.
func AllMessages() []api.Message {
	return []api.Message{
		(*ACLPluginGetVersion)(nil),
		(*ACLPluginGetVersionReply)(nil),
		(*ACLDel)(nil),
		(*ACLDelReply)(nil),
		(*ACLInterfaceAddDel)(nil),
		(*ACLInterfaceAddDelReply)(nil),
		(*ACLDump)(nil),
		(*ACLDetails)(nil),
	}
}
