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

package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/vppapi"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Round-trip a control ping",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *vppapi.Client) error {
			reply, err := c.Ping(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "vpp pid %d, client index %d\n", reply.VpePID, reply.ClientIndex)
			return nil
		})
	},
}

var interfacesCmd = &cobra.Command{
	Use:     "interfaces",
	Aliases: []string{"intf"},
	Short:   "List interfaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *vppapi.Client) error {
			list, err := c.DumpInterfaces(ctx)
			if err != nil {
				return err
			}
			return writeInterfaces(cmd.OutOrStdout(), list)
		})
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show engine-wide packet totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *vppapi.Client) error {
			s, err := c.GetSummaryStats(ctx)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), s)
		})
	},
}

var aclCmd = &cobra.Command{
	Use:   "acl-version",
	Short: "Show the ACL plugin version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(ctx context.Context, c *vppapi.Client) error {
			major, minor, err := c.ACLPluginGetVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "acl plugin %d.%d\n", major, minor)
			return nil
		})
	},
}

func writeInterfaces(w io.Writer, list []*interfaces.SwInterfaceDetails) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tADMIN\tLINK\tMTU\tMAC")
	for _, d := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
			d.SwIfIndex, d.InterfaceName, upDown(d.AdminUpDown), upDown(d.LinkUpDown),
			d.LinkMtu, macString(d.L2Address, d.L2AddressLength))
	}
	return tw.Flush()
}

func writeSummary(w io.Writer, s *vppapi.SummaryStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tPACKETS\tBYTES")
	fmt.Fprintf(tw, "rx\t%d\t%d\n", s.RxPackets, s.RxBytes)
	fmt.Fprintf(tw, "tx\t%d\t%d\n", s.TxPackets, s.TxBytes)
	fmt.Fprintf(tw, "vector rate\t%.2f\t\n", s.VectorRate)
	return tw.Flush()
}

func upDown(up bool) string {
	if up {
		return "up"
	}
	return "down"
}

func macString(addr [8]byte, n uint32) string {
	if n == 0 || n > uint32(len(addr)) {
		return "-"
	}
	return net.HardwareAddr(addr[:n]).String()
}
