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

// Package metrics exposes client and interface counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fdio-stack/go-vpp/core"
	"github.com/fdio-stack/go-vpp/stats"
)

// StatsSource provides the dispatch counters of a connection.
type StatsSource interface {
	Stats() core.Stats
}

// Collector implements prometheus.Collector, reading the dispatch counters
// and the counter store on each scrape.
type Collector struct {
	src   StatsSource
	store *stats.Store

	messagesTotal *prometheus.Desc
	batchesTotal  *prometheus.Desc

	ifacePacketsTotal *prometheus.Desc
	ifaceBytesTotal   *prometheus.Desc
	ifaceCounterTotal *prometheus.Desc

	fibPacketsTotal *prometheus.Desc
	fibBytesTotal   *prometheus.Desc
}

// NewCollector returns a collector over src and store. Either may be nil.
func NewCollector(src StatsSource, store *stats.Store) *Collector {
	return &Collector{
		src:   src,
		store: store,

		messagesTotal: prometheus.NewDesc(
			"vpp_client_messages_total",
			"Messages handled by the client, by outcome.",
			[]string{"outcome"}, nil,
		),
		batchesTotal: prometheus.NewDesc(
			"vpp_stats_batches_total",
			"Counter batches folded into the store.",
			nil, nil,
		),
		ifacePacketsTotal: prometheus.NewDesc(
			"vpp_interface_packets_total",
			"Packets per interface.",
			[]string{"sw_if_index", "direction"}, nil,
		),
		ifaceBytesTotal: prometheus.NewDesc(
			"vpp_interface_bytes_total",
			"Bytes per interface.",
			[]string{"sw_if_index", "direction"}, nil,
		),
		ifaceCounterTotal: prometheus.NewDesc(
			"vpp_interface_counter_total",
			"Simple interface counters.",
			[]string{"sw_if_index", "counter"}, nil,
		),
		fibPacketsTotal: prometheus.NewDesc(
			"vpp_fib_packets_total",
			"Packets per FIB entry.",
			[]string{"vrf", "prefix"}, nil,
		),
		fibBytesTotal: prometheus.NewDesc(
			"vpp_fib_bytes_total",
			"Bytes per FIB entry.",
			[]string{"vrf", "prefix"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.messagesTotal
	ch <- c.batchesTotal
	ch <- c.ifacePacketsTotal
	ch <- c.ifaceBytesTotal
	ch <- c.ifaceCounterTotal
	ch <- c.fibPacketsTotal
	ch <- c.fibBytesTotal
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.src != nil {
		c.collectMessages(ch, c.src.Stats())
	}
	if c.store != nil {
		c.collectInterfaces(ch)
		c.collectFibs(ch)
		ch <- prometheus.MustNewConstMetric(c.batchesTotal, prometheus.CounterValue,
			float64(c.store.Batches()))
	}
}

func (c *Collector) collectMessages(ch chan<- prometheus.Metric, s core.Stats) {
	for _, o := range []struct {
		outcome string
		value   uint64
	}{
		{"sent", s.Sent},
		{"received", s.Received},
		{"dispatched", s.Dispatched},
		{"ignored", s.Ignored},
		{"unknown", s.Unknown},
		{"failed", s.Failed},
		{"truncated", s.Truncated},
	} {
		ch <- prometheus.MustNewConstMetric(c.messagesTotal, prometheus.CounterValue,
			float64(o.value), o.outcome)
	}
}

func (c *Collector) collectInterfaces(ch chan<- prometheus.Metric) {
	for _, ic := range c.store.Interfaces() {
		idx := strconv.FormatUint(uint64(ic.SwIfIndex), 10)
		for dir, pb := range ic.Combined {
			ch <- prometheus.MustNewConstMetric(c.ifacePacketsTotal, prometheus.CounterValue,
				float64(pb.Packets), idx, dir)
			ch <- prometheus.MustNewConstMetric(c.ifaceBytesTotal, prometheus.CounterValue,
				float64(pb.Bytes), idx, dir)
		}
		for name, v := range ic.Simple {
			ch <- prometheus.MustNewConstMetric(c.ifaceCounterTotal, prometheus.CounterValue,
				float64(v), idx, name)
		}
	}
}

func (c *Collector) collectFibs(ch chan<- prometheus.Metric) {
	for _, f := range c.store.Fibs() {
		vrf := strconv.FormatUint(uint64(f.VrfID), 10)
		prefix := f.Prefix.String()
		ch <- prometheus.MustNewConstMetric(c.fibPacketsTotal, prometheus.CounterValue,
			float64(f.Packets), vrf, prefix)
		ch <- prometheus.MustNewConstMetric(c.fibBytesTotal, prometheus.CounterValue,
			float64(f.Bytes), vrf, prefix)
	}
}

// Handler serves the collector from an isolated registry.
func Handler(c *Collector) http.Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(c)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
