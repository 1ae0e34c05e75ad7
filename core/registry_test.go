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

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fd.io/govpp/api"

	"github.com/fdio-stack/go-vpp/binapi/acl"
	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/binapi/ip"
)

func TestRegistryStaticIDs(t *testing.T) {
	tests := []struct {
		msg api.Message
		id  uint16
	}{
		{&interfaces.SwInterfaceSetFlags{}, 20},
		{&interfaces.SwInterfaceDetails{}, 25},
		{&interfaces.VnetInterfaceCounters{}, 42},
		{&ip.IPAddDelRoute{}, 50},
	}

	r := NewRegistry()
	for _, test := range tests {
		require.NoError(t, r.RegisterStatic(test.msg, test.id))
	}

	s := newSession()
	for _, test := range tests {
		t.Run(test.msg.GetMessageName(), func(t *testing.T) {
			id, err := r.WireIDFor(s, test.msg.GetMessageName())
			require.NoError(t, err)
			assert.Equal(t, test.id, id)
		})
	}
}

func TestRegistryPluginRelative(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterPluginRelative(&acl.ACLDel{}, testPlugin, 4))
	require.NoError(t, r.RegisterPluginRelative(&acl.ACLDelReply{}, testPlugin, 5))

	s := newSession()
	_, err := r.WireIDFor(s, "acl_del")
	assert.ErrorIs(t, err, ErrUnresolvedNamespace)

	s.setBase(testPlugin, 1000)
	first, err := r.WireIDFor(s, "acl_del")
	require.NoError(t, err)
	assert.Equal(t, uint16(1004), first)

	second, err := r.WireIDFor(s, "acl_del")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	reply, err := r.WireIDFor(s, "acl_del_reply")
	require.NoError(t, err)
	assert.Equal(t, uint16(1005), reply)

	assert.Equal(t, []string{testPlugin}, r.Plugins())
}

func TestRegistryDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		register func(r *Registry) error
	}{
		{
			name: "same kind twice",
			register: func(r *Registry) error {
				return r.RegisterStatic(&interfaces.SwInterfaceSetFlags{}, 99)
			},
		},
		{
			name: "same static id",
			register: func(r *Registry) error {
				return r.RegisterStatic(&interfaces.SwInterfaceSetFlagsReply{}, 20)
			},
		},
		{
			name: "same plugin offset",
			register: func(r *Registry) error {
				return r.RegisterPluginRelative(&acl.ACLDelReply{}, testPlugin, 4)
			},
		},
		{
			name: "static kind as plugin kind",
			register: func(r *Registry) error {
				return r.RegisterPluginRelative(&interfaces.SwInterfaceSetFlags{}, testPlugin, 9)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := NewRegistry()
			require.NoError(t, r.RegisterStatic(&interfaces.SwInterfaceSetFlags{}, 20))
			require.NoError(t, r.RegisterPluginRelative(&acl.ACLDel{}, testPlugin, 4))

			err := test.register(r)
			require.ErrorIs(t, err, ErrDuplicateIdentifier)

			var dup *DuplicateIdentifierError
			assert.True(t, errors.As(err, &dup))
		})
	}
}

func TestRegistryUnknownKind(t *testing.T) {
	r := NewRegistry()
	_, err := r.WireIDFor(newSession(), "no_such_message")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
