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
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fdio-stack/go-vpp/metrics"
	"github.com/fdio-stack/go-vpp/stats"
	"github.com/fdio-stack/go-vpp/vppapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream counters and serve them as Prometheus metrics",
	Long: `Subscribe to the interface counter stream and expose the folded
counters together with client message statistics on an HTTP endpoint.

Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	store := stats.NewStore()
	client, err := dial(ctx, vppapi.WithSink(store))
	if err != nil {
		return err
	}
	defer client.Disconnect()

	if cfg.Stats.Enabled {
		if err := client.EnableStats(ctx, true); err != nil {
			return err
		}
	}
	if cfg.Stats.InterfaceEvents {
		if err := client.EnableInterfaceEvents(ctx, true); err != nil {
			return err
		}
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler(metrics.NewCollector(client, store)))
	srv := &http.Server{
		Addr:              cfg.Metrics.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"listen": cfg.Metrics.Listen,
			"path":   cfg.Metrics.Path,
		}).Info("serving metrics")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
