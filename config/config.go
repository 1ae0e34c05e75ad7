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

// Package config loads vppctl settings from a YAML file, VPPCTL_ environment
// variables and built-in defaults, in that order of precedence: environment
// first, then file, then defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. VPPCTL_VPP_TARGET.
const EnvPrefix = "VPPCTL"

// Config is the complete vppctl configuration.
type Config struct {
	VPP     VPPConfig     `mapstructure:"vpp"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Stats   StatsConfig   `mapstructure:"stats"`
}

// VPPConfig selects and tunes the API connection.
type VPPConfig struct {
	Target            string        `mapstructure:"target"`
	ClientName        string        `mapstructure:"client_name"`
	ConnectTimeout    time.Duration `mapstructure:"connect_timeout"`
	DisconnectTimeout time.Duration `mapstructure:"disconnect_timeout"`
	ResolveTimeout    time.Duration `mapstructure:"resolve_timeout"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	PollInterval      time.Duration `mapstructure:"poll_interval"`
	SHMDir            string        `mapstructure:"shm_dir"`
}

// LogConfig configures logrus. An empty File logs to stderr.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Listen string `mapstructure:"listen"`
	Path   string `mapstructure:"path"`
}

// StatsConfig configures the counter stream.
type StatsConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	InterfaceEvents bool `mapstructure:"interface_events"`
}

// SHMPrefix returns the path prefix shared memory segments are opened with.
func (c VPPConfig) SHMPrefix() string {
	if c.SHMDir == "" {
		return ""
	}
	return filepath.Join(c.SHMDir, "vpp_api_")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("vpp.target", "shm://default")
	v.SetDefault("vpp.client_name", "vppctl")
	v.SetDefault("vpp.connect_timeout", 5*time.Second)
	v.SetDefault("vpp.disconnect_timeout", 100*time.Millisecond)
	v.SetDefault("vpp.resolve_timeout", 3*time.Second)
	v.SetDefault("vpp.request_timeout", 3*time.Second)
	v.SetDefault("vpp.poll_interval", time.Millisecond)
	v.SetDefault("vpp.shm_dir", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("metrics.listen", ":9482")
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("stats.enabled", true)
	v.SetDefault("stats.interface_events", true)
}

// Load reads the configuration at path. An empty path yields the defaults
// with environment overrides applied.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if path != "" {
		filename := filepath.Base(path)
		fileExt := filepath.Ext(filename)
		v.SetConfigName(strings.TrimSuffix(filename, fileExt))
		v.SetConfigType(strings.TrimPrefix(fileExt, "."))
		v.AddConfigPath(filepath.Dir(path))

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.VPP.Target == "" {
		return fmt.Errorf("vpp.target must be set")
	}
	if c.VPP.ConnectTimeout <= 0 {
		return fmt.Errorf("vpp.connect_timeout must be positive, got %v", c.VPP.ConnectTimeout)
	}
	if c.VPP.RequestTimeout <= 0 {
		return fmt.Errorf("vpp.request_timeout must be positive, got %v", c.VPP.RequestTimeout)
	}
	if c.VPP.PollInterval <= 0 {
		return fmt.Errorf("vpp.poll_interval must be positive, got %v", c.VPP.PollInterval)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
