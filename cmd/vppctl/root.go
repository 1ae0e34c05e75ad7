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
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	govpp "github.com/fdio-stack/go-vpp"
	"github.com/fdio-stack/go-vpp/config"
	"github.com/fdio-stack/go-vpp/core"
	"github.com/fdio-stack/go-vpp/internal/logging"
	"github.com/fdio-stack/go-vpp/internal/version"
	"github.com/fdio-stack/go-vpp/vppapi"
)

var (
	// Global flags
	configFile string
	target     string
	logLevel   string

	cfg       *config.Config
	log       logrus.FieldLogger = logrus.StandardLogger()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "vppctl",
	Short: "vppctl - VPP binary API client",
	Long: `vppctl talks to a VPP instance over its binary API.

Targets:
  shm://name         shared memory segment (default shm://default)
  tcp://host:port    TCP socket
  host:port          TCP socket`,
	Version:           version.Info(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (YAML)")
	rootCmd.PersistentFlags().StringVarP(&target, "target", "t", "",
		"VPP API target, overrides vpp.target")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level, overrides log.level")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(interfacesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(aclCmd)
	rootCmd.AddCommand(serveCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(configFile); err != nil {
		return err
	}
	if target != "" {
		cfg.VPP.Target = target
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	log = logger.WithField("logger", "vppctl")
	logCloser = closer
	return nil
}

// dial connects a client to the configured target.
func dial(ctx context.Context, opts ...vppapi.Option) (*vppapi.Client, error) {
	t, err := govpp.NewTransport(cfg.VPP.Target)
	if err != nil {
		return nil, err
	}
	govpp.Configure(t, govpp.TransportSettings{
		ClientName:        cfg.VPP.ClientName,
		ConnectTimeout:    cfg.VPP.ConnectTimeout,
		DisconnectTimeout: cfg.VPP.DisconnectTimeout,
		PollInterval:      cfg.VPP.PollInterval,
		SHMPrefix:         cfg.VPP.SHMPrefix(),
	})

	opts = append([]vppapi.Option{
		vppapi.WithRequestTimeout(cfg.VPP.RequestTimeout),
		vppapi.WithConnectionOptions(
			core.WithClientName(cfg.VPP.ClientName),
			core.WithResolveTimeout(cfg.VPP.ResolveTimeout),
		),
	}, opts...)

	client, err := vppapi.NewClient(t, opts...)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	log.WithField("target", cfg.VPP.Target).Debug("connected")
	return client, nil
}

// withClient runs fn against a connected client and disconnects afterwards.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *vppapi.Client) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := dial(ctx)
	if err != nil {
		return err
	}
	defer client.Disconnect()
	return fn(ctx, client)
}
