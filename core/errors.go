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
	"fmt"
)

var (
	// ErrUnresolvedNamespace is returned when a plugin-relative kind is
	// used before its plugin's message range has been resolved.
	ErrUnresolvedNamespace = errors.New("plugin namespace not resolved")
	// ErrPluginNotFound is returned when the engine does not know the plugin.
	ErrPluginNotFound = fmt.Errorf("%w: plugin not found", ErrUnresolvedNamespace)
	// ErrDuplicateIdentifier is returned when a kind or wire identifier is
	// registered twice.
	ErrDuplicateIdentifier = errors.New("duplicate message identifier")
	// ErrTruncatedMessage is returned when a message is shorter than its
	// declared contents.
	ErrTruncatedMessage = errors.New("truncated message")
	// ErrNamespaceResolutionTimeout is returned when the plugin lookup
	// round-trip does not complete in time.
	ErrNamespaceResolutionTimeout = errors.New("namespace resolution timed out")
	// ErrNotConnected is returned by operations requiring a session.
	ErrNotConnected = errors.New("not connected")
	// ErrUnknownKind is returned for a message kind missing from the registry.
	ErrUnknownKind = errors.New("unknown message kind")
)

// DuplicateIdentifierError describes a registration conflict.
type DuplicateIdentifierError struct {
	Kind     string
	ID       uint16
	Existing string
}

func (e *DuplicateIdentifierError) Error() string {
	if e.Existing == e.Kind {
		return fmt.Sprintf("duplicate message identifier: kind %s already registered", e.Kind)
	}
	return fmt.Sprintf("duplicate message identifier: %d for %s already bound to %s", e.ID, e.Kind, e.Existing)
}

func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}

// TruncatedMessageError describes a message whose declared size exceeds
// the received bytes.
type TruncatedMessageError struct {
	Kind string
	Need uint64
	Have uint64
}

func (e *TruncatedMessageError) Error() string {
	return fmt.Sprintf("truncated message %s: need %d bytes, have %d", e.Kind, e.Need, e.Have)
}

func (e *TruncatedMessageError) Is(target error) bool {
	return target == ErrTruncatedMessage
}
