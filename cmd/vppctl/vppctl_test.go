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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/vppapi"
)

func TestWriteInterfaces(t *testing.T) {
	var buf bytes.Buffer
	err := writeInterfaces(&buf, []*interfaces.SwInterfaceDetails{
		{SwIfIndex: 0, InterfaceName: "local0"},
		{
			SwIfIndex:       1,
			InterfaceName:   "host-veth0",
			AdminUpDown:     true,
			LinkUpDown:      true,
			LinkMtu:         1500,
			L2AddressLength: 6,
			L2Address:       [8]byte{0x02, 0xfe, 0x00, 0x00, 0x00, 0x01},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "INDEX")
	assert.Equal(t, []string{"0", "local0", "down", "down", "0", "-"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1", "host-veth0", "up", "up", "1500", "02:fe:00:00:00:01"}, strings.Fields(lines[2]))
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, &vppapi.SummaryStats{
		RxPackets:  10,
		RxBytes:    1000,
		TxPackets:  4,
		TxBytes:    400,
		VectorRate: 1.5,
	}))

	out := buf.String()
	assert.Contains(t, out, "1.50")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"rx", "10", "1000"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"tx", "4", "400"}, strings.Fields(lines[2]))
}

func TestSetupOverrides(t *testing.T) {
	t.Setenv("VPPCTL_VPP_CLIENT_NAME", "agent")
	target, logLevel, configFile = "tcp://127.0.0.1:5002", "debug", ""
	defer func() { target, logLevel = "", "" }()

	require.NoError(t, setup(rootCmd, nil))
	defer logCloser.Close()

	assert.Equal(t, "tcp://127.0.0.1:5002", cfg.VPP.Target)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "agent", cfg.VPP.ClientName)
}

func TestDialRefused(t *testing.T) {
	configFile, target = "", "unix:///run/vpp/api.sock"
	defer func() { target = "" }()
	require.NoError(t, setup(rootCmd, nil))
	defer logCloser.Close()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	_, err := dial(ctx)
	assert.Error(t, err)
}
