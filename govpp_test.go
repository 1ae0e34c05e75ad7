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

package govpp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdio-stack/go-vpp/adapter/shmclient"
	"github.com/fdio-stack/go-vpp/adapter/tcpclient"
	"github.com/fdio-stack/go-vpp/core"
)

func TestNewTransport(t *testing.T) {
	tests := []struct {
		target  string
		wantTCP bool
		wantSHM bool
		wantErr bool
	}{
		{target: "tcp://localhost:5002", wantTCP: true},
		{target: "10.0.0.1:5002", wantTCP: true},
		{target: "shm://vpp1", wantSHM: true},
		{target: "default", wantSHM: true},
		{target: "unix:///run/vpp/api.sock", wantErr: true},
		{target: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			tr, err := NewTransport(tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isTCP := tr.(*tcpclient.Client)
			_, isSHM := tr.(*shmclient.Client)
			assert.Equal(t, tt.wantTCP, isTCP)
			assert.Equal(t, tt.wantSHM, isSHM)
		})
	}
}

type settingsRecorder struct {
	core.Transport
	name    string
	connect time.Duration
	poll    time.Duration
	prefix  string
}

func (r *settingsRecorder) SetClientName(n string)            { r.name = n }
func (r *settingsRecorder) SetConnectTimeout(d time.Duration) { r.connect = d }
func (r *settingsRecorder) SetPollInterval(d time.Duration)   { r.poll = d }
func (r *settingsRecorder) SetSHMPrefix(p string)             { r.prefix = p }

func TestConfigure(t *testing.T) {
	r := &settingsRecorder{}
	Configure(r, TransportSettings{
		ClientName:     "vppctl",
		ConnectTimeout: time.Second,
		PollInterval:   time.Millisecond,
	})
	assert.Equal(t, "vppctl", r.name)
	assert.Equal(t, time.Second, r.connect)
	assert.Equal(t, time.Millisecond, r.poll)
	assert.Empty(t, r.prefix)

	// Unsupported settings are skipped.
	Configure(tcpclient.NewVppClient("localhost:5002"), TransportSettings{SHMPrefix: "/tmp/vpp_"})
}
