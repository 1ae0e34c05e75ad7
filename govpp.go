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

// Package govpp connects a vppapi.Client to VPP over the transport named by
// a target string.
package govpp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fdio-stack/go-vpp/adapter/shmclient"
	"github.com/fdio-stack/go-vpp/adapter/tcpclient"
	"github.com/fdio-stack/go-vpp/core"
	"github.com/fdio-stack/go-vpp/internal/version"
	"github.com/fdio-stack/go-vpp/vppapi"
)

// Connect connects to the VPP API at target using a new transport created
// with NewTransport.
//
// This call blocks until VPP is connected and plugin namespaces are
// resolved, or an error occurs. Only one connection attempt is performed.
//
// The target parameter accepts the following formats:
//   - "tcp://host:port" - TCP connection
//   - "shm://segment_name" - Shared memory connection
//   - "host:port" - TCP connection (contains a colon and no scheme)
//   - "segment_name" - Shared memory connection
func Connect(ctx context.Context, target string, opts ...vppapi.Option) (*vppapi.Client, error) {
	t, err := NewTransport(target)
	if err != nil {
		return nil, err
	}
	c, err := vppapi.NewClient(t, opts...)
	if err != nil {
		return nil, err
	}
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// NewTransport returns a new transport for target.
// It selects the transport based on the target format.
var NewTransport = func(target string) (core.Transport, error) {
	switch {
	case target == "":
		return nil, fmt.Errorf("empty target")

	case strings.HasPrefix(target, "tcp://"):
		return tcpclient.NewVppClient(strings.TrimPrefix(target, "tcp://")), nil

	case strings.HasPrefix(target, "shm://"):
		return shmclient.NewVppClient(strings.TrimPrefix(target, "shm://")), nil

	case strings.Contains(target, "://"):
		return nil, fmt.Errorf("unsupported target scheme: %s", target)

	case strings.Contains(target, ":") && !strings.HasPrefix(target, "/"):
		// "localhost:5002" or "192.168.1.1:5002"
		return tcpclient.NewVppClient(target), nil

	default:
		return shmclient.NewVppClient(target), nil
	}
}

// TransportSettings are applied to a transport by Configure. Zero fields
// keep the transport's defaults.
type TransportSettings struct {
	ClientName        string
	ConnectTimeout    time.Duration
	DisconnectTimeout time.Duration
	PollInterval      time.Duration
	SHMPrefix         string
}

// Configure applies s to every setting t supports.
func Configure(t core.Transport, s TransportSettings) {
	if x, ok := t.(interface{ SetClientName(string) }); ok && s.ClientName != "" {
		x.SetClientName(s.ClientName)
	}
	if x, ok := t.(interface{ SetConnectTimeout(time.Duration) }); ok && s.ConnectTimeout > 0 {
		x.SetConnectTimeout(s.ConnectTimeout)
	}
	if x, ok := t.(interface{ SetDisconnectTimeout(time.Duration) }); ok && s.DisconnectTimeout > 0 {
		x.SetDisconnectTimeout(s.DisconnectTimeout)
	}
	if x, ok := t.(interface{ SetPollInterval(time.Duration) }); ok && s.PollInterval > 0 {
		x.SetPollInterval(s.PollInterval)
	}
	if x, ok := t.(interface{ SetSHMPrefix(string) }); ok && s.SHMPrefix != "" {
		x.SetSHMPrefix(s.SHMPrefix)
	}
}

// Version returns version of the library.
func Version() string {
	return version.Version()
}
