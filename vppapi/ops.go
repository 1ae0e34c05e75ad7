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
	"context"
	"fmt"
	"net"
	"net/netip"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fdio-stack/go-vpp/binapi/acl"
	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/binapi/ip"
	"github.com/fdio-stack/go-vpp/binapi/l2"
	"github.com/fdio-stack/go-vpp/binapi/vpe"
	"github.com/fdio-stack/go-vpp/core"
)

// AddAfPacketInterface attaches VPP to the host interface hostIf and
// returns the new sw_if_index. The host interface must exist.
func (c *Client) AddAfPacketInterface(ctx context.Context, hostIf string) (uint32, error) {
	if _, err := c.linkByName(hostIf); err != nil {
		return 0, fmt.Errorf("host interface %s: %w", hostIf, err)
	}

	reply, err := c.request(ctx, &interfaces.AfPacketCreate{
		HostIfName:      hostIf,
		UseRandomHwAddr: true,
	})
	if err != nil {
		return 0, err
	}
	idx := reply.(*interfaces.AfPacketCreateReply).SwIfIndex

	c.mu.Lock()
	c.interfaces[hostIf] = &Interface{Name: hostIf, SwIfIndex: idx}
	c.mu.Unlock()

	log.WithFields(logrus.Fields{
		"hostIf":    hostIf,
		"swIfIndex": idx,
	}).Info("af_packet interface created")
	return idx, nil
}

// SetInterfaceAdminUp sets a managed interface administratively up.
func (c *Client) SetInterfaceAdminUp(ctx context.Context, hostIf string) error {
	i, err := c.lookupInterface(hostIf)
	if err != nil {
		return err
	}
	if _, err := c.request(ctx, &interfaces.SwInterfaceSetFlags{
		SwIfIndex:   i.SwIfIndex,
		AdminUpDown: true,
	}); err != nil {
		return err
	}
	c.noteAdminState(i.SwIfIndex, true)
	return nil
}

// AddInterfaceIP assigns prefix to a managed interface, setting it up
// first when needed.
func (c *Client) AddInterfaceIP(ctx context.Context, hostIf string, prefix netip.Prefix) error {
	i, err := c.lookupInterface(hostIf)
	if err != nil {
		return err
	}
	if !i.AdminUp {
		log.Debugf("%s is not up, setting it up", hostIf)
		if err := c.SetInterfaceAdminUp(ctx, hostIf); err != nil {
			return err
		}
	}
	if err := c.AddDelInterfaceAddress(ctx, i.SwIfIndex, prefix, true); err != nil {
		return err
	}

	c.mu.Lock()
	if rec, ok := c.interfaces[hostIf]; ok {
		rec.Address = prefix.String()
	}
	c.mu.Unlock()
	return nil
}

// AddDelInterfaceAddress adds or removes one address of an interface.
func (c *Client) AddDelInterfaceAddress(ctx context.Context, swIfIndex uint32, prefix netip.Prefix, isAdd bool) error {
	addr, ipv6 := addressBytes(prefix.Addr())
	_, err := c.request(ctx, &interfaces.SwInterfaceAddDelAddress{
		SwIfIndex:     swIfIndex,
		IsAdd:         isAdd,
		IsIPv6:        ipv6,
		AddressLength: uint8(prefix.Bits()),
		Address:       addr,
	})
	return err
}

// DeleteAllInterfaceAddresses removes every address of an interface.
func (c *Client) DeleteAllInterfaceAddresses(ctx context.Context, swIfIndex uint32) error {
	_, err := c.request(ctx, &interfaces.SwInterfaceAddDelAddress{
		SwIfIndex: swIfIndex,
		DelAll:    true,
	})
	return err
}

// SetInterfaceTable moves an interface into a VRF.
func (c *Client) SetInterfaceTable(ctx context.Context, swIfIndex, vrfID uint32, ipv6 bool) error {
	_, err := c.request(ctx, &interfaces.SwInterfaceSetTable{
		SwIfIndex: swIfIndex,
		IsIPv6:    ipv6,
		VrfID:     vrfID,
	})
	return err
}

// CreateVlanSubif creates a VLAN sub-interface and returns its sw_if_index.
func (c *Client) CreateVlanSubif(ctx context.Context, swIfIndex, vlanID uint32) (uint32, error) {
	reply, err := c.request(ctx, &interfaces.CreateVlanSubif{
		SwIfIndex: swIfIndex,
		VlanID:    vlanID,
	})
	if err != nil {
		return 0, err
	}
	return reply.(*interfaces.CreateVlanSubifReply).SwIfIndex, nil
}

// CreateLoopback creates a loopback interface. A nil mac lets VPP pick one.
func (c *Client) CreateLoopback(ctx context.Context, mac net.HardwareAddr) (uint32, error) {
	req := &interfaces.CreateLoopback{}
	copy(req.MacAddress[:], mac)
	reply, err := c.request(ctx, req)
	if err != nil {
		return 0, err
	}
	return reply.(*interfaces.CreateLoopbackReply).SwIfIndex, nil
}

// TapConnect creates a tap interface. A nil mac requests a random one.
func (c *Client) TapConnect(ctx context.Context, name string, mac net.HardwareAddr) (uint32, error) {
	req := &interfaces.TapConnect{
		TapName:      name,
		UseRandomMac: mac == nil,
	}
	copy(req.MacAddress[:], mac)
	reply, err := c.request(ctx, req)
	if err != nil {
		return 0, err
	}
	return reply.(*interfaces.TapConnectReply).SwIfIndex, nil
}

// Route is an IPv4 route through a next hop.
type Route struct {
	Dst              netip.Prefix
	NextHop          netip.Addr
	NextHopSwIfIndex uint32
	TableID          uint32
}

// AddDelIP4Route adds or removes an IPv4 route.
func (c *Client) AddDelIP4Route(ctx context.Context, r Route, isAdd bool) error {
	if !r.Dst.Addr().Is4() || (r.NextHop.IsValid() && !r.NextHop.Is4()) {
		return fmt.Errorf("ip_add_del_route: %v via %v is not IPv4", r.Dst, r.NextHop)
	}
	dst, _ := addressBytes(r.Dst.Addr())
	req := &ip.IPAddDelRoute{
		NextHopSwIfIndex:  r.NextHopSwIfIndex,
		TableID:           r.TableID,
		CreateVrfIfNeeded: true,
		IsAdd:             isAdd,
		NextHopWeight:     1,
		DstAddressLength:  uint8(r.Dst.Bits()),
		DstAddress:        dst,
	}
	if r.NextHop.IsValid() {
		req.NextHopAddress, _ = addressBytes(r.NextHop)
	}
	_, err := c.request(ctx, req)
	return err
}

// AddDelProxyARP adds or removes a proxy ARP range.
func (c *Client) AddDelProxyARP(ctx context.Context, vrfID uint32, low, high netip.Addr, isAdd bool) error {
	if !low.Is4() || !high.Is4() {
		return fmt.Errorf("proxy_arp_add_del: %v-%v is not an IPv4 range", low, high)
	}
	_, err := c.request(ctx, &ip.ProxyArpAddDel{
		VrfID:      vrfID,
		IsAdd:      isAdd,
		LowAddress: low.As4(),
		HiAddress:  high.As4(),
	})
	return err
}

// ProxyARPInterfaceEnableDisable toggles proxy ARP on an interface.
func (c *Client) ProxyARPInterfaceEnableDisable(ctx context.Context, swIfIndex uint32, enable bool) error {
	_, err := c.request(ctx, &ip.ProxyArpIntfcEnableDisable{
		SwIfIndex:     swIfIndex,
		EnableDisable: enable,
	})
	return err
}

// Neighbor is a static IPv4 neighbor entry.
type Neighbor struct {
	VrfID     uint32
	SwIfIndex uint32
	IP        netip.Addr
	MAC       net.HardwareAddr
	Static    bool
}

// AddDelIP4Neighbor adds or removes an IPv4 neighbor.
func (c *Client) AddDelIP4Neighbor(ctx context.Context, n Neighbor, isAdd bool) error {
	if !n.IP.Is4() {
		return fmt.Errorf("ip_neighbor_add_del: %v is not IPv4", n.IP)
	}
	req := &ip.IPNeighborAddDel{
		VrfID:     n.VrfID,
		SwIfIndex: n.SwIfIndex,
		IsAdd:     isAdd,
		IsStatic:  n.Static,
	}
	copy(req.MacAddress[:], n.MAC)
	req.DstAddress, _ = addressBytes(n.IP)
	_, err := c.request(ctx, req)
	return err
}

// ResetFib flushes a FIB table.
func (c *Client) ResetFib(ctx context.Context, vrfID uint32, ipv6 bool) error {
	_, err := c.request(ctx, &ip.ResetFib{
		VrfID:  vrfID,
		IsIPv6: ipv6,
	})
	return err
}

// L2PatchAddDel cross-connects two interfaces.
func (c *Client) L2PatchAddDel(ctx context.Context, rxSwIfIndex, txSwIfIndex uint32, isAdd bool) error {
	_, err := c.request(ctx, &l2.L2PatchAddDel{
		RxSwIfIndex: rxSwIfIndex,
		TxSwIfIndex: txSwIfIndex,
		IsAdd:       isAdd,
	})
	return err
}

// AddBridgeDomain creates a flooding, learning bridge domain and returns
// its id. Ids are allocated sequentially from 1; a name already known
// returns its existing id.
func (c *Client) AddBridgeDomain(ctx context.Context, name string) (uint32, error) {
	c.mu.Lock()
	if b, ok := c.bridges[name]; ok {
		c.mu.Unlock()
		return b.ID, nil
	}
	bdID := c.nextBdID
	c.nextBdID++
	c.mu.Unlock()

	if _, err := c.request(ctx, &l2.BridgeDomainAddDel{
		BdID:    bdID,
		Flood:   true,
		UuFlood: true,
		Forward: true,
		Learn:   true,
		IsAdd:   true,
	}); err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.bridges[name] = &Bridge{Name: name, ID: bdID}
	c.mu.Unlock()
	return bdID, nil
}

// SetInterfaceL2Bridge adds a managed interface to a bridge domain.
func (c *Client) SetInterfaceL2Bridge(ctx context.Context, bridge, hostIf string) error {
	b, ok := c.Bridge(bridge)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownBridge, bridge)
	}
	i, err := c.lookupInterface(hostIf)
	if err != nil {
		return err
	}
	if _, err := c.request(ctx, &l2.SwInterfaceSetL2Bridge{
		RxSwIfIndex: i.SwIfIndex,
		BdID:        b.ID,
		Enable:      true,
	}); err != nil {
		return err
	}

	c.mu.Lock()
	if rec, ok := c.bridges[bridge]; ok {
		rec.HasInterface = true
	}
	c.mu.Unlock()
	return nil
}

// EnableStats subscribes to periodic counter dumps.
func (c *Client) EnableStats(ctx context.Context, enable bool) error {
	if _, err := c.request(ctx, &vpe.WantStats{
		EnableDisable: boolToUint(enable),
		PID:           uint32(os.Getpid()),
	}); err != nil {
		return err
	}
	c.conn.Session().SetFeature(core.FeatureStats, enable)
	return nil
}

// EnableInterfaceEvents subscribes to interface state events. The reply
// carries nothing and is not waited for.
func (c *Client) EnableInterfaceEvents(ctx context.Context, enable bool) error {
	if _, err := c.conn.Send(ctx, &interfaces.WantInterfaceEvents{
		EnableDisable: boolToUint(enable),
		PID:           uint32(os.Getpid()),
	}); err != nil {
		return err
	}
	c.conn.Session().SetFeature(core.FeatureInterfaceEvents, enable)
	return nil
}

// SummaryStats are the engine-wide packet and byte totals.
type SummaryStats struct {
	RxPackets  uint64
	RxBytes    uint64
	TxPackets  uint64
	TxBytes    uint64
	VectorRate float64
}

// GetSummaryStats queries the engine-wide totals.
func (c *Client) GetSummaryStats(ctx context.Context) (*SummaryStats, error) {
	reply, err := c.request(ctx, &vpe.VnetGetSummaryStats{})
	if err != nil {
		return nil, err
	}
	r := reply.(*vpe.VnetSummaryStatsReply)
	return &SummaryStats{
		RxPackets:  r.TotalPkts[0],
		RxBytes:    r.TotalBytes[0],
		TxPackets:  r.TotalPkts[1],
		TxBytes:    r.TotalBytes[1],
		VectorRate: r.VectorRate,
	}, nil
}

// Ping round-trips a control ping.
func (c *Client) Ping(ctx context.Context) (*vpe.ControlPingReply, error) {
	reply, err := c.request(ctx, &vpe.ControlPing{})
	if err != nil {
		return nil, err
	}
	return reply.(*vpe.ControlPingReply), nil
}

// DumpInterfaces lists every interface of the engine and refreshes the
// records of those the client knows by name.
func (c *Client) DumpInterfaces(ctx context.Context) ([]*interfaces.SwInterfaceDetails, error) {
	res, err := c.do(ctx, &interfaces.SwInterfaceDump{}, true)
	if err != nil {
		return nil, err
	}
	list := make([]*interfaces.SwInterfaceDetails, 0, len(res.details))
	for _, m := range res.details {
		if d, ok := m.(*interfaces.SwInterfaceDetails); ok {
			list = append(list, d)
		}
	}
	return list, nil
}

// ACLPluginGetVersion returns the ACL plugin version.
func (c *Client) ACLPluginGetVersion(ctx context.Context) (major, minor uint32, err error) {
	reply, err := c.request(ctx, &acl.ACLPluginGetVersion{})
	if err != nil {
		return 0, 0, err
	}
	r := reply.(*acl.ACLPluginGetVersionReply)
	return r.Major, r.Minor, nil
}

// ACLDel deletes an ACL.
func (c *Client) ACLDel(ctx context.Context, aclIndex uint32) error {
	_, err := c.request(ctx, &acl.ACLDel{ACLIndex: aclIndex})
	return err
}

// ACLInterfaceAddDel binds an ACL to, or unbinds it from, an interface.
func (c *Client) ACLInterfaceAddDel(ctx context.Context, isAdd, isInput bool, swIfIndex, aclIndex uint32) error {
	_, err := c.request(ctx, &acl.ACLInterfaceAddDel{
		IsAdd:     isAdd,
		IsInput:   isInput,
		SwIfIndex: swIfIndex,
		ACLIndex:  aclIndex,
	})
	return err
}

// DumpACL requests a dump of an ACL. The details are not collected.
func (c *Client) DumpACL(ctx context.Context, aclIndex uint32) error {
	_, err := c.conn.Send(ctx, &acl.ACLDump{ACLIndex: aclIndex})
	return err
}

func addressBytes(a netip.Addr) (b [16]byte, ipv6 bool) {
	if a.Is4() {
		v := a.As4()
		copy(b[:], v[:])
		return b, false
	}
	return a.As16(), true
}

func boolToUint(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
