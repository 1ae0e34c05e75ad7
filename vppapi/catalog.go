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
	"github.com/fdio-stack/go-vpp/binapi/acl"
	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/binapi/ip"
	"github.com/fdio-stack/go-vpp/binapi/l2"
	"github.com/fdio-stack/go-vpp/binapi/vpe"
	"github.com/fdio-stack/go-vpp/core"
)

// Static wire identifiers of the core API, as assigned by the engine build
// this catalog targets.
const (
	IDSwInterfaceSetFlags           = 20
	IDSwInterfaceSetFlagsReply      = 21
	IDWantInterfaceEvents           = 22
	IDWantInterfaceEventsReply      = 23
	IDSwInterfaceDetails            = 24
	IDSwInterfaceDump               = 25
	IDSwInterfaceAddDelAddress      = 26
	IDSwInterfaceAddDelAddressReply = 27
	IDSwInterfaceSetTable           = 28
	IDSwInterfaceSetTableReply      = 29
	IDCreateLoopback                = 30
	IDCreateLoopbackReply           = 31
	IDCreateVlanSubif               = 32
	IDCreateVlanSubifReply          = 33
	IDTapConnect                    = 34
	IDTapConnectReply               = 35
	IDAfPacketCreate                = 36
	IDAfPacketCreateReply           = 37

	IDWantStats             = 40
	IDWantStatsReply        = 41
	IDVnetInterfaceCounters = 42
	IDVnetIP4FibCounters    = 43
	IDVnetIP6FibCounters    = 44
	IDVnetGetSummaryStats   = 45
	IDVnetSummaryStatsReply = 46

	IDIPAddDelRoute                   = 50
	IDIPAddDelRouteReply              = 51
	IDIPNeighborAddDel                = 52
	IDIPNeighborAddDelReply           = 53
	IDProxyArpAddDel                  = 54
	IDProxyArpAddDelReply             = 55
	IDProxyArpIntfcEnableDisable      = 56
	IDProxyArpIntfcEnableDisableReply = 57
	IDResetFib                        = 58
	IDResetFibReply                   = 59

	IDBridgeDomainAddDel          = 60
	IDBridgeDomainAddDelReply     = 61
	IDBridgeDomainDump            = 62
	IDBridgeDomainDetails         = 63
	IDBridgeDomainSwIfDetails     = 64
	IDL2fibAddDel                 = 65
	IDSwInterfaceSetL2Bridge      = 66
	IDSwInterfaceSetL2BridgeReply = 67
	IDL2PatchAddDel               = 68
	IDL2PatchAddDelReply          = 69

	IDControlPing        = 70
	IDControlPingReply   = 71
	IDGetFirstMsgID      = 72
	IDGetFirstMsgIDReply = 73
)

// Offsets of the ACL plugin messages within the plugin's identifier range.
const (
	OffsetACLPluginGetVersion      = 0
	OffsetACLPluginGetVersionReply = 1
	OffsetACLDel                   = 4
	OffsetACLDelReply              = 5
	OffsetACLInterfaceAddDel       = 6
	OffsetACLInterfaceAddDelReply  = 7
	OffsetACLDump                  = 10
	OffsetACLDetails               = 11
)

// Catalog returns every message kind the client knows. Requests are
// registered as no-op kinds: the engine never sends them, and an echo
// must not be reported as unknown.
func Catalog() []core.MessageSpec {
	return []core.MessageSpec{
		{Message: &interfaces.SwInterfaceSetFlags{}, ID: IDSwInterfaceSetFlags, Handler: core.EventHandler},
		{Message: &interfaces.SwInterfaceSetFlagsReply{}, ID: IDSwInterfaceSetFlagsReply, Handler: core.ReplyHandler},
		{Message: &interfaces.WantInterfaceEvents{}, ID: IDWantInterfaceEvents, NoOp: true},
		{Message: &interfaces.WantInterfaceEventsReply{}, ID: IDWantInterfaceEventsReply, NoOp: true},
		{Message: &interfaces.SwInterfaceDetails{}, ID: IDSwInterfaceDetails, Handler: core.ReplyHandler},
		{Message: &interfaces.SwInterfaceDump{}, ID: IDSwInterfaceDump, NoOp: true},
		{Message: &interfaces.SwInterfaceAddDelAddress{}, ID: IDSwInterfaceAddDelAddress, NoOp: true},
		{Message: &interfaces.SwInterfaceAddDelAddressReply{}, ID: IDSwInterfaceAddDelAddressReply, Handler: core.ReplyHandler},
		{Message: &interfaces.SwInterfaceSetTable{}, ID: IDSwInterfaceSetTable, NoOp: true},
		{Message: &interfaces.SwInterfaceSetTableReply{}, ID: IDSwInterfaceSetTableReply, Handler: core.ReplyHandler},
		{Message: &interfaces.CreateLoopback{}, ID: IDCreateLoopback, NoOp: true},
		{Message: &interfaces.CreateLoopbackReply{}, ID: IDCreateLoopbackReply, Handler: core.ReplyHandler},
		{Message: &interfaces.CreateVlanSubif{}, ID: IDCreateVlanSubif, NoOp: true},
		{Message: &interfaces.CreateVlanSubifReply{}, ID: IDCreateVlanSubifReply, Handler: core.ReplyHandler},
		{Message: &interfaces.TapConnect{}, ID: IDTapConnect, NoOp: true},
		{Message: &interfaces.TapConnectReply{}, ID: IDTapConnectReply, Handler: core.ReplyHandler},
		{Message: &interfaces.AfPacketCreate{}, ID: IDAfPacketCreate, NoOp: true},
		{Message: &interfaces.AfPacketCreateReply{}, ID: IDAfPacketCreateReply, Handler: core.ReplyHandler},

		{Message: &vpe.WantStats{}, ID: IDWantStats, NoOp: true},
		{Message: &vpe.WantStatsReply{}, ID: IDWantStatsReply, Handler: core.ReplyHandler},
		{Message: &interfaces.VnetInterfaceCounters{}, ID: IDVnetInterfaceCounters, Handler: handleInterfaceCounters},
		{Message: &ip.VnetIP4FibCounters{}, ID: IDVnetIP4FibCounters, Handler: handleIP4FibCounters},
		{Message: &ip.VnetIP6FibCounters{}, ID: IDVnetIP6FibCounters, Handler: handleIP6FibCounters},
		{Message: &vpe.VnetGetSummaryStats{}, ID: IDVnetGetSummaryStats, NoOp: true},
		{Message: &vpe.VnetSummaryStatsReply{}, ID: IDVnetSummaryStatsReply, Handler: core.ReplyHandler},

		{Message: &ip.IPAddDelRoute{}, ID: IDIPAddDelRoute, NoOp: true},
		{Message: &ip.IPAddDelRouteReply{}, ID: IDIPAddDelRouteReply, Handler: core.ReplyHandler},
		{Message: &ip.IPNeighborAddDel{}, ID: IDIPNeighborAddDel, NoOp: true},
		{Message: &ip.IPNeighborAddDelReply{}, ID: IDIPNeighborAddDelReply, Handler: core.ReplyHandler},
		{Message: &ip.ProxyArpAddDel{}, ID: IDProxyArpAddDel, NoOp: true},
		{Message: &ip.ProxyArpAddDelReply{}, ID: IDProxyArpAddDelReply, Handler: core.ReplyHandler},
		{Message: &ip.ProxyArpIntfcEnableDisable{}, ID: IDProxyArpIntfcEnableDisable, NoOp: true},
		{Message: &ip.ProxyArpIntfcEnableDisableReply{}, ID: IDProxyArpIntfcEnableDisableReply, Handler: core.ReplyHandler},
		{Message: &ip.ResetFib{}, ID: IDResetFib, NoOp: true},
		{Message: &ip.ResetFibReply{}, ID: IDResetFibReply, Handler: core.ReplyHandler},

		{Message: &l2.BridgeDomainAddDel{}, ID: IDBridgeDomainAddDel, NoOp: true},
		{Message: &l2.BridgeDomainAddDelReply{}, ID: IDBridgeDomainAddDelReply, Handler: core.ReplyHandler},
		{Message: &l2.BridgeDomainDump{}, ID: IDBridgeDomainDump, NoOp: true},
		{Message: &l2.BridgeDomainDetails{}, ID: IDBridgeDomainDetails, NoOp: true},
		{Message: &l2.BridgeDomainSwIfDetails{}, ID: IDBridgeDomainSwIfDetails, NoOp: true},
		{Message: &l2.L2fibAddDel{}, ID: IDL2fibAddDel, NoOp: true},
		{Message: &l2.SwInterfaceSetL2Bridge{}, ID: IDSwInterfaceSetL2Bridge, NoOp: true},
		{Message: &l2.SwInterfaceSetL2BridgeReply{}, ID: IDSwInterfaceSetL2BridgeReply, Handler: core.ReplyHandler},
		{Message: &l2.L2PatchAddDel{}, ID: IDL2PatchAddDel, NoOp: true},
		{Message: &l2.L2PatchAddDelReply{}, ID: IDL2PatchAddDelReply, Handler: core.ReplyHandler},

		{Message: &vpe.ControlPing{}, ID: IDControlPing, NoOp: true},
		{Message: &vpe.ControlPingReply{}, ID: IDControlPingReply, Handler: core.ReplyHandler},
		{Message: &vpe.GetFirstMsgID{}, ID: IDGetFirstMsgID, NoOp: true},
		{Message: &vpe.GetFirstMsgIDReply{}, ID: IDGetFirstMsgIDReply, Handler: core.HandleFirstMsgIDReply},

		{Message: &acl.ACLPluginGetVersion{}, ID: OffsetACLPluginGetVersion, Plugin: acl.PluginName, NoOp: true},
		{Message: &acl.ACLPluginGetVersionReply{}, ID: OffsetACLPluginGetVersionReply, Plugin: acl.PluginName, Handler: core.ReplyHandler},
		{Message: &acl.ACLDel{}, ID: OffsetACLDel, Plugin: acl.PluginName, NoOp: true},
		{Message: &acl.ACLDelReply{}, ID: OffsetACLDelReply, Plugin: acl.PluginName, Handler: core.ReplyHandler},
		{Message: &acl.ACLInterfaceAddDel{}, ID: OffsetACLInterfaceAddDel, Plugin: acl.PluginName, NoOp: true},
		{Message: &acl.ACLInterfaceAddDelReply{}, ID: OffsetACLInterfaceAddDelReply, Plugin: acl.PluginName, Handler: core.ReplyHandler},
		{Message: &acl.ACLDump{}, ID: OffsetACLDump, Plugin: acl.PluginName, NoOp: true},
		{Message: &acl.ACLDetails{}, ID: OffsetACLDetails, Plugin: acl.PluginName, NoOp: true},
	}
}

func handleInterfaceCounters(in *core.Inbound) error {
	m := in.Message.(*interfaces.VnetInterfaceCounters)
	b, err := core.AggregateInterfaceCounters(core.CounterDump{
		Kind:        in.Kind,
		CounterType: m.VnetCounterType,
		Combined:    m.IsCombined,
		FirstIndex:  m.FirstSwIfIndex,
		Count:       m.Count,
		Data:        m.Data,
		Timestamp:   in.Received,
	})
	if err != nil {
		return err
	}
	in.Sink.RecordBatch(b)
	return nil
}

func handleIP4FibCounters(in *core.Inbound) error {
	m := in.Message.(*ip.VnetIP4FibCounters)
	return deliverFib(in, m.VrfID, false, m.Count, m.Data)
}

func handleIP6FibCounters(in *core.Inbound) error {
	m := in.Message.(*ip.VnetIP6FibCounters)
	return deliverFib(in, m.VrfID, true, m.Count, m.Data)
}

func deliverFib(in *core.Inbound, vrf uint32, ipv6 bool, count uint32, data []byte) error {
	b, err := core.AggregateFibCounters(core.FibDump{
		Kind:      in.Kind,
		VrfID:     vrf,
		IPv6:      ipv6,
		Count:     count,
		Data:      data,
		Timestamp: in.Received,
	})
	if err != nil {
		return err
	}
	in.Sink.RecordBatch(b)
	return nil
}
