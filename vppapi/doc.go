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

// Package vppapi is the request side of the client: the message catalog,
// per-kind handlers, and one method per VPP operation. Every request waits
// for the reply carrying its context token.
//
//	client, err := vppapi.NewClient(tcpclient.NewVppClient("localhost:5002"))
//	if err != nil {
//	    // handle error
//	}
//	if err := client.Connect(ctx); err != nil {
//	    // handle error
//	}
//	defer client.Disconnect()
//
//	idx, err := client.AddAfPacketInterface(ctx, "veth0")
package vppapi
