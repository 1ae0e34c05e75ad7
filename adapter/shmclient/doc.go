// Copyright (c) 2024 Shared memory adapter implementation for GoVPP.
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

// Package shmclient provides an adapter for VPP binary API over shared memory.
//
// # Shared Memory Connection
//
// The segment is a memory-mapped file split into two rings: the first half
// carries messages from the client to the engine, the second half carries
// replies and events back. Each ring is a single-producer single-consumer
// queue of length-prefixed messages.
//
// # Configuration
//
// To use shared memory connection in VPP, configure the API segment:
//
//	api-segment {
//	    prefix vpp_api_
//	}
//
// # Usage
//
//	client := shmclient.NewVppClient("default")
//	conn, err := core.NewConnection(client, sink, specs)
//	if err != nil {
//	    // handle error
//	}
//	if err := conn.Connect(ctx); err != nil {
//	    // handle error
//	}
//	defer conn.Disconnect()
//
// Or use the connection string format:
//
//	client, err := govpp.Connect(ctx, "shm://default", vppapi.WithSink(sink))
//
// # Limitations
//
//   - Only works for local VPP instances
//   - Requires shared memory access permissions
//   - Memory consumption scales with segment size
//   - Inbound messages are polled at the configured interval
package shmclient
