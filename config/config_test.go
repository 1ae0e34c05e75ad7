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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vppctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "shm://default", cfg.VPP.Target)
	assert.Equal(t, "vppctl", cfg.VPP.ClientName)
	assert.Equal(t, 5*time.Second, cfg.VPP.ConnectTimeout)
	assert.Equal(t, 3*time.Second, cfg.VPP.RequestTimeout)
	assert.Equal(t, time.Millisecond, cfg.VPP.PollInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":9482", cfg.Metrics.Listen)
	assert.True(t, cfg.Stats.Enabled)
	assert.Empty(t, cfg.VPP.SHMPrefix())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
vpp:
  target: tcp://10.0.0.1:5002
  request_timeout: 750ms
  shm_dir: /dev/shm
log:
  level: debug
  format: json
  file: /var/log/vppctl.log
metrics:
  listen: 127.0.0.1:9100
stats:
  enabled: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tcp://10.0.0.1:5002", cfg.VPP.Target)
	assert.Equal(t, 750*time.Millisecond, cfg.VPP.RequestTimeout)
	assert.Equal(t, "/dev/shm/vpp_api_", cfg.VPP.SHMPrefix())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/var/log/vppctl.log", cfg.Log.File)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Listen)
	assert.False(t, cfg.Stats.Enabled)

	// untouched keys keep their defaults
	assert.Equal(t, "vppctl", cfg.VPP.ClientName)
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "vpp:\n  target: shm://vpp1\n")
	t.Setenv("VPPCTL_VPP_TARGET", "localhost:5002")
	t.Setenv("VPPCTL_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:5002", cfg.VPP.Target)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty target", body: "vpp:\n  target: \"\"\n"},
		{name: "zero request timeout", body: "vpp:\n  request_timeout: 0s\n"},
		{name: "bad log format", body: "log:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
