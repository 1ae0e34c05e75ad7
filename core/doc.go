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

// Package core implements the client side of the VPP binary API: the
// registry mapping message kinds to wire identifiers, run-time resolution
// of plugin message ranges, the inbound dispatch table, the send path
// stamping client index and context, and the record aggregator for
// counter dumps.
//
// A Connection is built from a Transport, a Sink and a catalog of
// MessageSpec values:
//
//	conn, err := core.NewConnection(transport, sink, catalog)
//	if err != nil {
//	    // duplicate identifiers in the catalog
//	}
//	if err := conn.Connect(ctx); err != nil {
//	    // handshake or plugin resolution failed
//	}
//	defer conn.Disconnect()
//
// Inbound messages are delivered one at a time by the transport and
// handled synchronously. Handlers report outcomes through the Sink; any
// value handed to a sink is owned by the sink from then on.
package core
